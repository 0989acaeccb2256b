package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"paint-quote/internal/storage"
)

func (s *Storage) GetProject(ctx context.Context, id int64) (*storage.Project, error) {
	const op = "storage.mysql.GetProject"

	query := `
		SELECT id, quotation_no, name, customer, dealer_id, margin_percent, workers, working_hours, labour_rate_per_day
		FROM projects
		WHERE id = ?
	`

	p := &storage.Project{}
	var margin sql.NullFloat64
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID,
		&p.QuotationNo,
		&p.Name,
		&p.Customer,
		&p.DealerID,
		&margin,
		&p.Workers,
		&p.WorkingHours,
		&p.LabourRatePerDay,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: project id=%d: %w", op, id, storage.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if margin.Valid {
		p.MarginPercent = &margin.Float64
	}

	return p, nil
}

func (s *Storage) GetAreaConfigs(ctx context.Context, projectID int64) ([]storage.AreaConfig, error) {
	const op = "storage.mysql.GetAreaConfigs"

	query := `
		SELECT config_id, area_type, painting_system, area, per_sq_ft_rate, selected_materials, coats,
		       paint_type_category, section_name, label, display_order
		FROM area_configs
		WHERE project_id = ?
		ORDER BY sort_index ASC
	`

	rows, err := s.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	configs := []storage.AreaConfig{}

	for rows.Next() {
		var (
			c             storage.AreaConfig
			materialsJSON sql.NullString
			coatsJSON     sql.NullString
		)

		err := rows.Scan(&c.ID, &c.AreaType, &c.PaintingSystem, &c.Area, &c.PerSqFtRate, &materialsJSON, &coatsJSON,
			&c.PaintTypeCategory, &c.SectionName, &c.Label, &c.DisplayOrder)
		if err != nil {
			return nil, fmt.Errorf("%s: scan row: %w", op, err)
		}

		if materialsJSON.Valid && materialsJSON.String != "" {
			if err := json.Unmarshal([]byte(materialsJSON.String), &c.SelectedMaterials); err != nil {
				return nil, fmt.Errorf("%s: config %s selected materials: %w", op, c.ID, err)
			}
		}
		if coatsJSON.Valid && coatsJSON.String != "" {
			if err := json.Unmarshal([]byte(coatsJSON.String), &c.Coats); err != nil {
				return nil, fmt.Errorf("%s: config %s coats: %w", op, c.ID, err)
			}
		}

		configs = append(configs, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, err)
	}

	return configs, nil
}

// SaveAreaConfigs replaces the project's configs with the given list, keeping
// the list order as the creation index.
func (s *Storage) SaveAreaConfigs(ctx context.Context, projectID int64, configs []storage.AreaConfig) error {
	const op = "storage.mysql.SaveAreaConfigs"

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: begin transaction: %w", op, err)
	}

	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM area_configs WHERE project_id = ?`, projectID); err != nil {
		return fmt.Errorf("%s: clear configs: %w", op, err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO area_configs
			(project_id, config_id, area_type, painting_system, area, per_sq_ft_rate, selected_materials, coats,
			 paint_type_category, section_name, label, display_order, sort_index)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("%s: prepare statement: %w", op, err)
	}
	defer stmt.Close()

	for i, c := range configs {
		materialsJSON, err := json.Marshal(c.SelectedMaterials)
		if err != nil {
			return fmt.Errorf("%s: config %s selected materials: %w", op, c.ID, err)
		}
		coatsJSON, err := json.Marshal(c.Coats)
		if err != nil {
			return fmt.Errorf("%s: config %s coats: %w", op, c.ID, err)
		}

		_, err = stmt.ExecContext(ctx, projectID, c.ID, c.AreaType, c.PaintingSystem, c.Area, c.PerSqFtRate,
			string(materialsJSON), string(coatsJSON), c.PaintTypeCategory, c.SectionName, c.Label, c.DisplayOrder, i)
		if err != nil {
			return fmt.Errorf("%s: insert config %s: %w", op, c.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: commit: %w", op, err)
	}

	return nil
}
