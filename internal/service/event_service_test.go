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

func TestEventService_AddEvent(t *testing.T) {
	t.Run("успешное создание события команды", func(t *testing.T) {
		mockEventRepo := new(MockEventRepository)
		mockTeamRepo := new(MockTeamRepository)

		service := NewEventService(mockEventRepo, mockTeamRepo)
		ctx := context.Background()

		mockTeamRepo.On("GetByID", mock.Anything, "team-1").Return(&domain.Team{ID: "team-1", Name: "Team 1"}, nil).Once()
		mockEventRepo.On("List", mock.Anything).Return([]domain.Event{}, nil).Once()
		mockEventRepo.On("Save", mock.Anything, mock.MatchedBy(func(events []domain.Event) bool {
			return len(events) == 1 && events[0].Name == "Team Meeting" && events[0].TeamID == "team-1"
		})).Return(nil).Once()

		event, err := service.AddEvent(ctx, adminActor, "Team Meeting", "2025-05-20", "#F59E0B", "team-1")

		require.NoError(t, err)
		assert.Equal(t, "Team Meeting", event.Name)
		mockEventRepo.AssertExpectations(t)
	})

	t.Run("общее событие не требует команды", func(t *testing.T) {
		mockEventRepo := new(MockEventRepository)
		mockTeamRepo := new(MockTeamRepository)

		service := NewEventService(mockEventRepo, mockTeamRepo)

		mockEventRepo.On("List", mock.Anything).Return([]domain.Event{}, nil).Once()
		mockEventRepo.On("Save", mock.Anything, mock.Anything).Return(nil).Once()

		event, err := service.AddEvent(context.Background(), adminActor, "Feiertag", "2025-05-21", "#EF4444", "")

		require.NoError(t, err)
		assert.True(t, event.CrossTeam())
		assert.True(t, event.IsHoliday())
		mockTeamRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("ошибка: пустое имя или дата", func(t *testing.T) {
		mockEventRepo := new(MockEventRepository)
		mockTeamRepo := new(MockTeamRepository)

		service := NewEventService(mockEventRepo, mockTeamRepo)

		_, err := service.AddEvent(context.Background(), adminActor, "", "2025-05-20", "", "")
		assert.True(t, errors.Is(err, domain.ErrValidation))

		_, err = service.AddEvent(context.Background(), adminActor, "Team Meeting", "", "", "")
		assert.True(t, errors.Is(err, domain.ErrValidation))
	})

	t.Run("ошибка: не администратор", func(t *testing.T) {
		mockEventRepo := new(MockEventRepository)
		mockTeamRepo := new(MockTeamRepository)

		service := NewEventService(mockEventRepo, mockTeamRepo)

		_, err := service.AddEvent(context.Background(), plainActor, "Team Meeting", "2025-05-20", "", "")
		assert.True(t, errors.Is(err, domain.ErrPermissionDenied))
	})
}

func TestEventService_MoveEvent(t *testing.T) {
	t.Run("успешный перенос на новую дату", func(t *testing.T) {
		mockEventRepo := new(MockEventRepository)
		mockTeamRepo := new(MockTeamRepository)

		service := NewEventService(mockEventRepo, mockTeamRepo)

		mockEventRepo.On("List", mock.Anything).Return([]domain.Event{
			{ID: "e1", Name: "Team Meeting", Date: "2025-05-20", TeamID: "team-1"},
		}, nil).Once()
		mockEventRepo.On("Save", mock.Anything, []domain.Event{
			{ID: "e1", Name: "Team Meeting", Date: "2025-05-22", TeamID: "team-1"},
		}).Return(nil).Once()

		event, err := service.MoveEvent(context.Background(), adminActor, "e1", "2025-05-22")

		require.NoError(t, err)
		assert.Equal(t, "2025-05-22", event.Date)
		mockEventRepo.AssertExpectations(t)
	})

	t.Run("ошибка: событие не найдено", func(t *testing.T) {
		mockEventRepo := new(MockEventRepository)
		mockTeamRepo := new(MockTeamRepository)

		service := NewEventService(mockEventRepo, mockTeamRepo)

		mockEventRepo.On("List", mock.Anything).Return([]domain.Event{}, nil).Once()

		event, err := service.MoveEvent(context.Background(), adminActor, "e1", "2025-05-22")

		require.Error(t, err)
		assert.Nil(t, event)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})
}

func TestEventService_RemoveEvent(t *testing.T) {
	t.Run("успешное удаление", func(t *testing.T) {
		mockEventRepo := new(MockEventRepository)
		mockTeamRepo := new(MockTeamRepository)

		service := NewEventService(mockEventRepo, mockTeamRepo)

		mockEventRepo.On("List", mock.Anything).Return([]domain.Event{
			{ID: "e1", Name: "Team Meeting", Date: "2025-05-20"},
		}, nil).Once()
		mockEventRepo.On("Save", mock.Anything, []domain.Event{}).Return(nil).Once()

		err := service.RemoveEvent(context.Background(), adminActor, "e1")

		require.NoError(t, err)
		mockEventRepo.AssertExpectations(t)
	})
}

func TestNotesService_SetNotes(t *testing.T) {
	t.Run("администратор полностью заменяет текст", func(t *testing.T) {
		mockNotesRepo := new(MockNotesRepository)

		service := NewNotesService(mockNotesRepo)

		mockNotesRepo.On("Set", mock.Anything, "standup at 10:00").Return(nil).Once()

		err := service.SetNotes(context.Background(), adminActor, "standup at 10:00")

		require.NoError(t, err)
		mockNotesRepo.AssertExpectations(t)
	})

	t.Run("ошибка: не администратор", func(t *testing.T) {
		mockNotesRepo := new(MockNotesRepository)

		service := NewNotesService(mockNotesRepo)

		err := service.SetNotes(context.Background(), plainActor, "hi")

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrPermissionDenied))
		mockNotesRepo.AssertNotCalled(t, "Set", mock.Anything, mock.Anything)
	})
}
