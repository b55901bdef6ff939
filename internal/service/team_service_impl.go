package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/bagdasarian/team-calendar/internal/auth"
	"github.com/bagdasarian/team-calendar/internal/domain"
	"github.com/bagdasarian/team-calendar/internal/repository"
)

type teamService struct {
	teamRepo   repository.TeamRepository
	memberRepo repository.MemberRepository
}

// NewTeamService создает новый экземпляр TeamService
func NewTeamService(teamRepo repository.TeamRepository, memberRepo repository.MemberRepository) TeamService {
	return &teamService{
		teamRepo:   teamRepo,
		memberRepo: memberRepo,
	}
}

// CreateTeam создает команду. Только для администратора.
func (s *teamService) CreateTeam(ctx context.Context, actor domain.Actor, name string) (*domain.Team, error) {
	if err := auth.CanPerform(actor, auth.ActionManageTeams, ""); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, domain.NewValidationError("team name is required")
	}

	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	team := domain.Team{
		ID:   "team-" + uuid.NewString(),
		Name: name,
	}

	if err := s.teamRepo.Save(ctx, append(teams, team)); err != nil {
		return nil, err
	}

	return &team, nil
}

// RenameTeam переименовывает команду. Только для администратора.
func (s *teamService) RenameTeam(ctx context.Context, actor domain.Actor, id, name string) (*domain.Team, error) {
	if err := auth.CanPerform(actor, auth.ActionManageTeams, ""); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, domain.NewValidationError("team name is required")
	}

	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	for i := range teams {
		if teams[i].ID == id {
			teams[i].Name = name
			if err := s.teamRepo.Save(ctx, teams); err != nil {
				return nil, err
			}
			return &teams[i], nil
		}
	}

	return nil, domain.NewNotFoundError("team with id " + id)
}

// RemoveTeam удаляет команду. Запрещено, пока на команду ссылается
// хотя бы один участник.
func (s *teamService) RemoveTeam(ctx context.Context, actor domain.Actor, id string) error {
	if err := auth.CanPerform(actor, auth.ActionManageTeams, ""); err != nil {
		return err
	}

	members, err := s.memberRepo.List(ctx)
	if err != nil {
		return err
	}
	for _, member := range members {
		if member.TeamID == id {
			return domain.ErrTeamHasMembers
		}
	}

	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return err
	}

	kept := make([]domain.Team, 0, len(teams))
	found := false
	for _, team := range teams {
		if team.ID == id {
			found = true
			continue
		}
		kept = append(kept, team)
	}
	if !found {
		return domain.NewNotFoundError("team with id " + id)
	}

	return s.teamRepo.Save(ctx, kept)
}

func (s *teamService) ListTeams(ctx context.Context) ([]domain.Team, error) {
	return s.teamRepo.List(ctx)
}
