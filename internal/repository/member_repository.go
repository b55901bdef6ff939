package repository

import (
	"context"

	"github.com/bagdasarian/team-calendar/internal/domain"
)

type MemberRepository interface {
	List(ctx context.Context) ([]domain.Member, error)
	GetByID(ctx context.Context, id string) (*domain.Member, error)
	Save(ctx context.Context, members []domain.Member) error
}
