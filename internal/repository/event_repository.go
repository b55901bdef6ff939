package repository

import (
	"context"

	"github.com/bagdasarian/team-calendar/internal/domain"
)

type EventRepository interface {
	List(ctx context.Context) ([]domain.Event, error)
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	Save(ctx context.Context, events []domain.Event) error
}
