package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"paint-quote/internal/storage"
)

func (s *Storage) GetProjectRooms(ctx context.Context, projectID int64) ([]storage.Room, error) {
	const op = "storage.mysql.GetProjectRooms"

	query := `
		SELECT id, project_id, name, length, width, height, openings, extra_surfaces, door_window_grills
		FROM project_rooms
		WHERE project_id = ?
		ORDER BY id ASC
	`

	rows, err := s.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	rooms := []storage.Room{}

	for rows.Next() {
		var (
			r                          storage.Room
			openings, extra, doorGrill sql.NullString
		)

		err := rows.Scan(&r.ID, &r.ProjectID, &r.Name, &r.Dimensions.Length, &r.Dimensions.Width, &r.Dimensions.Height,
			&openings, &extra, &doorGrill)
		if err != nil {
			return nil, fmt.Errorf("%s: scan row: %w", op, err)
		}

		if r.Openings, err = decodeAdjustments(openings); err != nil {
			return nil, fmt.Errorf("%s: room %d openings: %w", op, r.ID, err)
		}
		if r.ExtraSurfaces, err = decodeAdjustments(extra); err != nil {
			return nil, fmt.Errorf("%s: room %d extra surfaces: %w", op, r.ID, err)
		}
		if r.DoorWindowGrills, err = decodeAdjustments(doorGrill); err != nil {
			return nil, fmt.Errorf("%s: room %d door/window/grills: %w", op, r.ID, err)
		}

		rooms = append(rooms, r)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, err)
	}

	return rooms, nil
}

// decodeAdjustments treats NULL and empty columns as an empty list.
func decodeAdjustments(col sql.NullString) ([]storage.AreaAdjustment, error) {
	list := []storage.AreaAdjustment{}
	if !col.Valid || col.String == "" {
		return list, nil
	}
	if err := json.Unmarshal([]byte(col.String), &list); err != nil {
		return nil, err
	}
	return list, nil
}
