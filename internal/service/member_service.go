package service

import (
	"context"

	"github.com/bagdasarian/team-calendar/internal/domain"
)

type MemberService interface {
	AddMember(ctx context.Context, actor domain.Actor, name, color, teamID string) (*domain.Member, error)
	RemoveMember(ctx context.Context, actor domain.Actor, id string) error
	ListMembers(ctx context.Context, teamID string) ([]domain.Member, error)
}
