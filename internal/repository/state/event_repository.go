package state

import (
	"context"

	"github.com/bagdasarian/team-calendar/internal/domain"
	"github.com/bagdasarian/team-calendar/internal/storage"
)

type eventRecord struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Date   string `json:"date"`
	Color  string `json:"color"`
	TeamID string `json:"teamId,omitempty"`
}

type eventRepository struct {
	store storage.Store
}

func NewEventRepository(store storage.Store) *eventRepository {
	return &eventRepository{store: store}
}

func (r *eventRepository) List(ctx context.Context) ([]domain.Event, error) {
	var records []eventRecord
	if err := readJSON(ctx, r.store, storage.KeyEvents, &records); err != nil {
		return nil, err
	}

	events := make([]domain.Event, 0, len(records))
	for _, record := range records {
		events = append(events, domain.Event{
			ID:     record.ID,
			Name:   record.Name,
			Date:   record.Date,
			Color:  record.Color,
			TeamID: record.TeamID,
		})
	}
	return events, nil
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	events, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, event := range events {
		if event.ID == id {
			return &event, nil
		}
	}
	return nil, domain.NewNotFoundError("event with id " + id)
}

func (r *eventRepository) Save(ctx context.Context, events []domain.Event) error {
	records := make([]eventRecord, 0, len(events))
	for _, event := range events {
		records = append(records, eventRecord{
			ID:     event.ID,
			Name:   event.Name,
			Date:   event.Date,
			Color:  event.Color,
			TeamID: event.TeamID,
		})
	}
	return writeJSON(ctx, r.store, storage.KeyEvents, records)
}
