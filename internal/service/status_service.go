package service

import (
	"context"

	"github.com/bagdasarian/team-calendar/internal/domain"
)

type StatusService interface {
	SetStatus(ctx context.Context, actor domain.Actor, userID, date string, location domain.Location) (*domain.WorkDay, error)
	// ToggleStatus переводит статус к следующему значению цикла
	// unset -> office -> home -> vacation -> other -> unset.
	ToggleStatus(ctx context.Context, actor domain.Actor, userID, date string) (*domain.WorkDay, error)
	StatusOf(ctx context.Context, userID, date string) (domain.Location, error)
}
