package quote

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"paint-quote/internal/service/estimate"
	"paint-quote/internal/storage"
)

// RoomAreas is the computed surface areas of one stored room.
type RoomAreas struct {
	RoomID int64  `json:"room_id"`
	Name   string `json:"name"`
	estimate.RoomAreaResult
}

func (s *QuoteService) RoomAreas(ctx context.Context, projectID int64, opts estimate.AreaOptions) ([]RoomAreas, error) {
	const op = "service.quote.RoomAreas"

	rooms, err := s.storage.GetProjectRooms(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	res := make([]RoomAreas, 0, len(rooms))
	for _, r := range rooms {
		res = append(res, RoomAreas{
			RoomID:         r.ID,
			Name:           r.Name,
			RoomAreaResult: estimate.RoomArea(estimate.RoomFromStorage(r), opts),
		})
	}

	return res, nil
}

func (s *QuoteService) SortedConfigs(ctx context.Context, projectID int64) ([]storage.AreaConfig, error) {
	const op = "service.quote.SortedConfigs"

	configs, err := s.storage.GetAreaConfigs(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return estimate.SortByGlobalDisplayOrder(configs), nil
}

// SaveAreaConfigs gives new configs an id, orders the list for display and
// stores it. The stored list is returned.
func (s *QuoteService) SaveAreaConfigs(ctx context.Context, projectID int64, configs []storage.AreaConfig) ([]storage.AreaConfig, error) {
	const op = "service.quote.SaveAreaConfigs"

	if _, err := s.storage.GetProject(ctx, projectID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	withIDs := make([]storage.AreaConfig, len(configs))
	for i, c := range configs {
		if c.ID == "" {
			c.ID = uuid.NewString()
		}
		withIDs[i] = c
	}

	sorted := estimate.SortByGlobalDisplayOrder(withIDs)
	if err := s.storage.SaveAreaConfigs(ctx, projectID, sorted); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return sorted, nil
}
