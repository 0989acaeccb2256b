package mysql

import (
	"context"
	"fmt"

	"paint-quote/internal/storage"
)

// GetCoverageSpecs returns the coverage text of the named products. Products
// without a catalog row are simply absent.
func (s *Storage) GetCoverageSpecs(ctx context.Context, names []string) ([]storage.CoverageSpec, error) {
	const op = "storage.mysql.GetCoverageSpecs"

	specs := []storage.CoverageSpec{}
	if len(names) == 0 {
		return specs, nil
	}

	query := `SELECT product_name, coverage_range FROM product_coverage WHERE product_name IN (` + placeholders(len(names)) + `)`

	rows, err := s.db.QueryContext(ctx, query, stringArgs(names)...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	for rows.Next() {
		var spec storage.CoverageSpec
		if err := rows.Scan(&spec.ProductName, &spec.CoverageRangeText); err != nil {
			return nil, fmt.Errorf("%s: scan row: %w", op, err)
		}
		specs = append(specs, spec)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, err)
	}

	return specs, nil
}

func (s *Storage) GetPackPrices(ctx context.Context, names []string) ([]storage.PackPrice, error) {
	const op = "storage.mysql.GetPackPrices"

	prices := []storage.PackPrice{}
	if len(names) == 0 {
		return prices, nil
	}

	query := `
		SELECT product_name, size_label, price
		FROM product_prices
		WHERE product_name IN (` + placeholders(len(names)) + `)
		ORDER BY product_name, size_label
	`

	rows, err := s.db.QueryContext(ctx, query, stringArgs(names)...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	for rows.Next() {
		var p storage.PackPrice
		if err := rows.Scan(&p.ProductName, &p.SizeLabel, &p.Price); err != nil {
			return nil, fmt.Errorf("%s: scan row: %w", op, err)
		}
		prices = append(prices, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, err)
	}

	return prices, nil
}
