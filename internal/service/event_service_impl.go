package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/bagdasarian/team-calendar/internal/auth"
	"github.com/bagdasarian/team-calendar/internal/domain"
	"github.com/bagdasarian/team-calendar/internal/repository"
	"github.com/bagdasarian/team-calendar/internal/schedule"
)

type eventService struct {
	eventRepo repository.EventRepository
	teamRepo  repository.TeamRepository
}

// NewEventService создает новый экземпляр EventService
func NewEventService(eventRepo repository.EventRepository, teamRepo repository.TeamRepository) EventService {
	return &eventService{
		eventRepo: eventRepo,
		teamRepo:  teamRepo,
	}
}

// AddEvent создает событие. Пустой teamID означает событие для всех
// команд. Только для администратора.
func (s *eventService) AddEvent(ctx context.Context, actor domain.Actor, name, date, color, teamID string) (*domain.Event, error) {
	if err := auth.CanPerform(actor, auth.ActionManageEvents, ""); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, domain.NewValidationError("event name is required")
	}
	if err := validateDate(date); err != nil {
		return nil, err
	}
	if teamID != "" {
		if _, err := s.teamRepo.GetByID(ctx, teamID); err != nil {
			return nil, err
		}
	}

	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	event := domain.Event{
		ID:     "event-" + uuid.NewString(),
		Name:   name,
		Date:   date,
		Color:  color,
		TeamID: teamID,
	}

	if err := s.eventRepo.Save(ctx, append(events, event)); err != nil {
		return nil, err
	}

	return &event, nil
}

// RemoveEvent удаляет событие. Только для администратора.
func (s *eventService) RemoveEvent(ctx context.Context, actor domain.Actor, id string) error {
	if err := auth.CanPerform(actor, auth.ActionManageEvents, ""); err != nil {
		return err
	}

	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return err
	}

	kept := make([]domain.Event, 0, len(events))
	found := false
	for _, event := range events {
		if event.ID == id {
			found = true
			continue
		}
		kept = append(kept, event)
	}
	if !found {
		return domain.NewNotFoundError("event with id " + id)
	}

	return s.eventRepo.Save(ctx, kept)
}

// MoveEvent переносит событие на другую дату (drag-and-drop в
// календаре). Только для администратора.
func (s *eventService) MoveEvent(ctx context.Context, actor domain.Actor, id, newDate string) (*domain.Event, error) {
	if err := auth.CanPerform(actor, auth.ActionManageEvents, ""); err != nil {
		return nil, err
	}
	if err := validateDate(newDate); err != nil {
		return nil, err
	}

	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	for i := range events {
		if events[i].ID == id {
			events[i].Date = newDate
			if err := s.eventRepo.Save(ctx, events); err != nil {
				return nil, err
			}
			return &events[i], nil
		}
	}

	return nil, domain.NewNotFoundError("event with id " + id)
}

func (s *eventService) EventsOn(ctx context.Context, date, activeTeamID string) ([]domain.Event, error) {
	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if activeTeamID == "" {
		activeTeamID = domain.TeamAll
	}
	return schedule.EventsOn(events, date, activeTeamID), nil
}
