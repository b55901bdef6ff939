package state

import (
	"context"

	"github.com/bagdasarian/team-calendar/internal/domain"
	"github.com/bagdasarian/team-calendar/internal/storage"
)

type memberRecord struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Color  string `json:"color"`
	TeamID string `json:"teamId"`
}

type memberRepository struct {
	store storage.Store
}

func NewMemberRepository(store storage.Store) *memberRepository {
	return &memberRepository{store: store}
}

func (r *memberRepository) List(ctx context.Context) ([]domain.Member, error) {
	var records []memberRecord
	if err := readJSON(ctx, r.store, storage.KeyMembers, &records); err != nil {
		return nil, err
	}

	members := make([]domain.Member, 0, len(records))
	for _, record := range records {
		members = append(members, domain.Member{
			ID:     record.ID,
			Name:   record.Name,
			Color:  record.Color,
			TeamID: record.TeamID,
		})
	}
	return members, nil
}

func (r *memberRepository) GetByID(ctx context.Context, id string) (*domain.Member, error) {
	members, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, member := range members {
		if member.ID == id {
			return &member, nil
		}
	}
	return nil, domain.NewNotFoundError("member with id " + id)
}

func (r *memberRepository) Save(ctx context.Context, members []domain.Member) error {
	records := make([]memberRecord, 0, len(members))
	for _, member := range members {
		records = append(records, memberRecord{
			ID:     member.ID,
			Name:   member.Name,
			Color:  member.Color,
			TeamID: member.TeamID,
		})
	}
	return writeJSON(ctx, r.store, storage.KeyMembers, records)
}
