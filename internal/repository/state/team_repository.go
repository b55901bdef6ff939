package state

import (
	"context"

	"github.com/bagdasarian/team-calendar/internal/domain"
	"github.com/bagdasarian/team-calendar/internal/storage"
)

type teamRecord struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type teamRepository struct {
	store storage.Store
}

func NewTeamRepository(store storage.Store) *teamRepository {
	return &teamRepository{store: store}
}

func (r *teamRepository) List(ctx context.Context) ([]domain.Team, error) {
	var records []teamRecord
	if err := readJSON(ctx, r.store, storage.KeyTeams, &records); err != nil {
		return nil, err
	}

	teams := make([]domain.Team, 0, len(records))
	for _, record := range records {
		teams = append(teams, domain.Team{ID: record.ID, Name: record.Name})
	}
	return teams, nil
}

func (r *teamRepository) GetByID(ctx context.Context, id string) (*domain.Team, error) {
	teams, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, team := range teams {
		if team.ID == id {
			return &team, nil
		}
	}
	return nil, domain.NewNotFoundError("team with id " + id)
}

func (r *teamRepository) Save(ctx context.Context, teams []domain.Team) error {
	records := make([]teamRecord, 0, len(teams))
	for _, team := range teams {
		records = append(records, teamRecord{ID: team.ID, Name: team.Name})
	}
	return writeJSON(ctx, r.store, storage.KeyTeams, records)
}
