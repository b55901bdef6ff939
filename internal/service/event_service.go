package service

import (
	"context"

	"github.com/bagdasarian/team-calendar/internal/domain"
)

type EventService interface {
	AddEvent(ctx context.Context, actor domain.Actor, name, date, color, teamID string) (*domain.Event, error)
	RemoveEvent(ctx context.Context, actor domain.Actor, id string) error
	MoveEvent(ctx context.Context, actor domain.Actor, id, newDate string) (*domain.Event, error)
	EventsOn(ctx context.Context, date, activeTeamID string) ([]domain.Event, error)
}
