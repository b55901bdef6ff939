package repository

import (
	"context"

	"github.com/bagdasarian/team-calendar/internal/domain"
)

type TeamRepository interface {
	List(ctx context.Context) ([]domain.Team, error)
	GetByID(ctx context.Context, id string) (*domain.Team, error)
	Save(ctx context.Context, teams []domain.Team) error
}
