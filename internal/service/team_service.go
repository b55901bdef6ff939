package service

import (
	"context"

	"github.com/bagdasarian/team-calendar/internal/domain"
)

type TeamService interface {
	CreateTeam(ctx context.Context, actor domain.Actor, name string) (*domain.Team, error)
	RenameTeam(ctx context.Context, actor domain.Actor, id, name string) (*domain.Team, error)
	RemoveTeam(ctx context.Context, actor domain.Actor, id string) error
	ListTeams(ctx context.Context) ([]domain.Team, error)
}
