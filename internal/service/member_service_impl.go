package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/bagdasarian/team-calendar/internal/auth"
	"github.com/bagdasarian/team-calendar/internal/domain"
	"github.com/bagdasarian/team-calendar/internal/repository"
	"github.com/bagdasarian/team-calendar/internal/schedule"
)

type memberService struct {
	memberRepo  repository.MemberRepository
	teamRepo    repository.TeamRepository
	workdayRepo repository.WorkdayRepository
}

// NewMemberService создает новый экземпляр MemberService
func NewMemberService(
	memberRepo repository.MemberRepository,
	teamRepo repository.TeamRepository,
	workdayRepo repository.WorkdayRepository,
) MemberService {
	return &memberService{
		memberRepo:  memberRepo,
		teamRepo:    teamRepo,
		workdayRepo: workdayRepo,
	}
}

// AddMember добавляет участника в существующую команду. Только для
// администратора.
func (s *memberService) AddMember(ctx context.Context, actor domain.Actor, name, color, teamID string) (*domain.Member, error) {
	if err := auth.CanPerform(actor, auth.ActionManageMembers, ""); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, domain.NewValidationError("member name is required")
	}
	if teamID == "" || teamID == domain.TeamAll {
		return nil, domain.NewValidationError("member must belong to a specific team")
	}

	if _, err := s.teamRepo.GetByID(ctx, teamID); err != nil {
		return nil, err
	}

	members, err := s.memberRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	member := domain.Member{
		ID:     uuid.NewString(),
		Name:   name,
		Color:  color,
		TeamID: teamID,
	}

	if err := s.memberRepo.Save(ctx, append(members, member)); err != nil {
		return nil, err
	}

	return &member, nil
}

// RemoveMember удаляет участника и каскадно все его статусы.
func (s *memberService) RemoveMember(ctx context.Context, actor domain.Actor, id string) error {
	if err := auth.CanPerform(actor, auth.ActionManageMembers, ""); err != nil {
		return err
	}

	members, err := s.memberRepo.List(ctx)
	if err != nil {
		return err
	}

	kept := make([]domain.Member, 0, len(members))
	found := false
	for _, member := range members {
		if member.ID == id {
			found = true
			continue
		}
		kept = append(kept, member)
	}
	if !found {
		return domain.NewNotFoundError("member with id " + id)
	}

	if err := s.memberRepo.Save(ctx, kept); err != nil {
		return err
	}

	return s.workdayRepo.DeleteByUserID(ctx, id)
}

func (s *memberService) ListMembers(ctx context.Context, teamID string) ([]domain.Member, error) {
	members, err := s.memberRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if teamID == "" {
		teamID = domain.TeamAll
	}
	return schedule.MembersOfTeam(members, teamID), nil
}
