package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"

	"paint-quote/internal/storage"
)

const errDuplicateEntry = 1062

func (s *Storage) GetCustomCategories(ctx context.Context) ([]storage.CustomCategory, error) {
	const op = "storage.mysql.GetCustomCategories"

	rows, err := s.db.QueryContext(ctx, `SELECT id, name FROM custom_categories ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	categories := []storage.CustomCategory{}
	for rows.Next() {
		var c storage.CustomCategory
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("%s: scan row: %w", op, err)
		}
		categories = append(categories, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, err)
	}

	return categories, nil
}

func (s *Storage) CreateCustomCategory(ctx context.Context, name string) (int64, error) {
	const op = "storage.mysql.CreateCustomCategory"

	res, err := s.db.ExecContext(ctx, `INSERT INTO custom_categories (name) VALUES (?)`, name)
	if err != nil {
		if isDuplicate(err) {
			return 0, fmt.Errorf("%s: %q: %w", op, name, storage.ErrCategoryExists)
		}
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return res.LastInsertId()
}

func (s *Storage) RenameCustomCategory(ctx context.Context, id int64, name string) error {
	const op = "storage.mysql.RenameCustomCategory"

	res, err := s.db.ExecContext(ctx, `UPDATE custom_categories SET name = ? WHERE id = ?`, name, id)
	if err != nil {
		if isDuplicate(err) {
			return fmt.Errorf("%s: %q: %w", op, name, storage.ErrCategoryExists)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	return requireAffected(op, res, id)
}

// DeleteCustomCategory refuses while any of the category's products has a
// price row. Otherwise the category and its unpriced products go together.
func (s *Storage) DeleteCustomCategory(ctx context.Context, id int64) error {
	const op = "storage.mysql.DeleteCustomCategory"

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: begin transaction: %w", op, err)
	}

	defer tx.Rollback()

	var priced int
	err = tx.QueryRowContext(ctx, `
		SELECT COUNT(*)
		FROM custom_products cp
		JOIN product_prices pp ON pp.product_name = cp.name
		WHERE cp.category_id = ?
	`, id).Scan(&priced)
	if err != nil {
		return fmt.Errorf("%s: count priced products: %w", op, err)
	}
	if priced > 0 {
		return fmt.Errorf("%s: category id=%d has %d priced products: %w", op, id, priced, storage.ErrCategoryInUse)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM custom_products WHERE category_id = ?`, id); err != nil {
		return fmt.Errorf("%s: delete products: %w", op, err)
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM custom_categories WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("%s: delete category: %w", op, err)
	}
	if err := requireAffected(op, res, id); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: commit: %w", op, err)
	}

	return nil
}

func (s *Storage) CreateCustomProduct(ctx context.Context, p storage.CustomProduct) (int64, error) {
	const op = "storage.mysql.CreateCustomProduct"

	var exists int
	err := s.db.QueryRowContext(ctx, `SELECT 1 FROM custom_categories WHERE id = ?`, p.CategoryID).Scan(&exists)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, fmt.Errorf("%s: category id=%d: %w", op, p.CategoryID, storage.ErrNotFound)
		}
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	res, err := s.db.ExecContext(ctx, `INSERT INTO custom_products (category_id, name) VALUES (?, ?)`, p.CategoryID, p.Name)
	if err != nil {
		if isDuplicate(err) {
			return 0, fmt.Errorf("%s: product %q: %w", op, p.Name, storage.ErrProductExists)
		}
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return res.LastInsertId()
}

func isDuplicate(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == errDuplicateEntry
}

func requireAffected(op string, res sql.Result, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: rows affected: %w", op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: id=%d: %w", op, id, storage.ErrNotFound)
	}
	return nil
}
