package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bagdasarian/team-calendar/internal/domain"
)

var (
	adminActor = domain.Actor{UserID: "admin", Admin: true, ActiveTeamID: domain.TeamAll}
	plainActor = domain.Actor{UserID: "u1", ActiveTeamID: "team-1"}
)

func TestTeamService_CreateTeam(t *testing.T) {
	t.Run("успешное создание команды", func(t *testing.T) {
		mockTeamRepo := new(MockTeamRepository)
		mockMemberRepo := new(MockMemberRepository)

		service := NewTeamService(mockTeamRepo, mockMemberRepo)
		ctx := context.Background()

		existing := []domain.Team{{ID: "team-1", Name: "Team 1"}}
		mockTeamRepo.On("List", mock.Anything).Return(existing, nil).Once()
		mockTeamRepo.On("Save", mock.Anything, mock.MatchedBy(func(teams []domain.Team) bool {
			return len(teams) == 2 && teams[1].Name == "Backend"
		})).Return(nil).Once()

		team, err := service.CreateTeam(ctx, adminActor, "Backend")

		require.NoError(t, err)
		assert.Equal(t, "Backend", team.Name)
		assert.NotEmpty(t, team.ID)
		mockTeamRepo.AssertExpectations(t)
	})

	t.Run("ошибка: не администратор", func(t *testing.T) {
		mockTeamRepo := new(MockTeamRepository)
		mockMemberRepo := new(MockMemberRepository)

		service := NewTeamService(mockTeamRepo, mockMemberRepo)

		team, err := service.CreateTeam(context.Background(), plainActor, "Backend")

		require.Error(t, err)
		assert.Nil(t, team)
		assert.True(t, errors.Is(err, domain.ErrPermissionDenied))
		mockTeamRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("ошибка: пустое имя", func(t *testing.T) {
		mockTeamRepo := new(MockTeamRepository)
		mockMemberRepo := new(MockMemberRepository)

		service := NewTeamService(mockTeamRepo, mockMemberRepo)

		team, err := service.CreateTeam(context.Background(), adminActor, "")

		require.Error(t, err)
		assert.Nil(t, team)
		assert.True(t, errors.Is(err, domain.ErrValidation))
	})
}

func TestTeamService_RemoveTeam(t *testing.T) {
	t.Run("ошибка: в команде еще есть участники", func(t *testing.T) {
		mockTeamRepo := new(MockTeamRepository)
		mockMemberRepo := new(MockMemberRepository)

		service := NewTeamService(mockTeamRepo, mockMemberRepo)

		mockMemberRepo.On("List", mock.Anything).Return([]domain.Member{
			{ID: "m1", Name: "Alice", TeamID: "team-1"},
		}, nil).Once()

		err := service.RemoveTeam(context.Background(), adminActor, "team-1")

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrTeamHasMembers))
		// Состояние не изменилось: запись не выполнялась.
		mockTeamRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		mockMemberRepo.AssertExpectations(t)
	})

	t.Run("успешное удаление пустой команды", func(t *testing.T) {
		mockTeamRepo := new(MockTeamRepository)
		mockMemberRepo := new(MockMemberRepository)

		service := NewTeamService(mockTeamRepo, mockMemberRepo)

		mockMemberRepo.On("List", mock.Anything).Return([]domain.Member{
			{ID: "m1", Name: "Alice", TeamID: "team-2"},
		}, nil).Once()
		mockTeamRepo.On("List", mock.Anything).Return([]domain.Team{
			{ID: "team-1", Name: "Team 1"},
			{ID: "team-2", Name: "Team 2"},
		}, nil).Once()
		mockTeamRepo.On("Save", mock.Anything, []domain.Team{
			{ID: "team-2", Name: "Team 2"},
		}).Return(nil).Once()

		err := service.RemoveTeam(context.Background(), adminActor, "team-1")

		require.NoError(t, err)
		mockTeamRepo.AssertExpectations(t)
		mockMemberRepo.AssertExpectations(t)
	})

	t.Run("ошибка: команда не найдена", func(t *testing.T) {
		mockTeamRepo := new(MockTeamRepository)
		mockMemberRepo := new(MockMemberRepository)

		service := NewTeamService(mockTeamRepo, mockMemberRepo)

		mockMemberRepo.On("List", mock.Anything).Return([]domain.Member{}, nil).Once()
		mockTeamRepo.On("List", mock.Anything).Return([]domain.Team{}, nil).Once()

		err := service.RemoveTeam(context.Background(), adminActor, "team-x")

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})
}

func TestTeamService_RenameTeam(t *testing.T) {
	t.Run("успешное переименование", func(t *testing.T) {
		mockTeamRepo := new(MockTeamRepository)
		mockMemberRepo := new(MockMemberRepository)

		service := NewTeamService(mockTeamRepo, mockMemberRepo)

		mockTeamRepo.On("List", mock.Anything).Return([]domain.Team{
			{ID: "team-1", Name: "Team 1"},
		}, nil).Once()
		mockTeamRepo.On("Save", mock.Anything, []domain.Team{
			{ID: "team-1", Name: "Platform"},
		}).Return(nil).Once()

		team, err := service.RenameTeam(context.Background(), adminActor, "team-1", "Platform")

		require.NoError(t, err)
		assert.Equal(t, "Platform", team.Name)
		mockTeamRepo.AssertExpectations(t)
	})

	t.Run("ошибка: команда не найдена", func(t *testing.T) {
		mockTeamRepo := new(MockTeamRepository)
		mockMemberRepo := new(MockMemberRepository)

		service := NewTeamService(mockTeamRepo, mockMemberRepo)

		mockTeamRepo.On("List", mock.Anything).Return([]domain.Team{}, nil).Once()

		team, err := service.RenameTeam(context.Background(), adminActor, "team-x", "Platform")

		require.Error(t, err)
		assert.Nil(t, team)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})
}
