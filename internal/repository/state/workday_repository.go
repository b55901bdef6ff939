package state

import (
	"context"

	"github.com/bagdasarian/team-calendar/internal/domain"
	"github.com/bagdasarian/team-calendar/internal/storage"
)

type workdayRecord struct {
	UserID   string `json:"userId"`
	Date     string `json:"date"`
	Location string `json:"location"`
}

type workdayRepository struct {
	store storage.Store
}

func NewWorkdayRepository(store storage.Store) *workdayRepository {
	return &workdayRepository{store: store}
}

func (r *workdayRepository) List(ctx context.Context) ([]domain.WorkDay, error) {
	var records []workdayRecord
	if err := readJSON(ctx, r.store, storage.KeyWorkdays, &records); err != nil {
		return nil, err
	}

	workdays := make([]domain.WorkDay, 0, len(records))
	for _, record := range records {
		workdays = append(workdays, domain.WorkDay{
			UserID:   record.UserID,
			Date:     record.Date,
			Location: domain.Location(record.Location),
		})
	}
	return workdays, nil
}

func (r *workdayRepository) Save(ctx context.Context, workdays []domain.WorkDay) error {
	records := make([]workdayRecord, 0, len(workdays))
	for _, workday := range workdays {
		records = append(records, workdayRecord{
			UserID:   workday.UserID,
			Date:     workday.Date,
			Location: string(workday.Location),
		})
	}
	return writeJSON(ctx, r.store, storage.KeyWorkdays, records)
}

func (r *workdayRepository) DeleteByUserID(ctx context.Context, userID string) error {
	workdays, err := r.List(ctx)
	if err != nil {
		return err
	}

	kept := make([]domain.WorkDay, 0, len(workdays))
	for _, workday := range workdays {
		if workday.UserID != userID {
			kept = append(kept, workday)
		}
	}
	return r.Save(ctx, kept)
}
