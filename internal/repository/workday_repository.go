package repository

import (
	"context"

	"github.com/bagdasarian/team-calendar/internal/domain"
)

type WorkdayRepository interface {
	List(ctx context.Context) ([]domain.WorkDay, error)
	Save(ctx context.Context, workdays []domain.WorkDay) error
	// DeleteByUserID убирает все записи участника (каскад при удалении)
	DeleteByUserID(ctx context.Context, userID string) error
}
