package state

import (
	"context"

	"github.com/bagdasarian/team-calendar/internal/domain"
	"github.com/bagdasarian/team-calendar/internal/storage"
)

// EnsureSeed записывает демонстрационный набор данных при первом
// запуске. Срабатывает только если ключ команд еще не существует.
func EnsureSeed(ctx context.Context, store storage.Store) error {
	_, ok, err := store.Get(ctx, storage.KeyTeams)
	if err != nil {
		return err
	}
	if ok {
		return nil
	}

	teams := []domain.Team{
		{ID: "team-1", Name: "Team 1"},
		{ID: "team-2", Name: "Team 2"},
	}
	members := []domain.Member{
		{ID: "1", Name: "John Doe", Color: "#3B82F6", TeamID: "team-1"},
		{ID: "2", Name: "Jane Smith", Color: "#EC4899", TeamID: "team-1"},
		{ID: "3", Name: "Bob Johnson", Color: "#10B981", TeamID: "team-1"},
		{ID: "4", Name: "Sarah Williams", Color: "#F59E0B", TeamID: "team-2"},
		{ID: "5", Name: "Mike Brown", Color: "#6366F1", TeamID: "team-2"},
	}
	events := []domain.Event{
		{ID: "event-1", Name: "Team Meeting", Date: "2025-05-20", Color: "#F59E0B", TeamID: "team-1"},
		{ID: "event-2", Name: domain.HolidayName, Date: "2025-05-21", Color: "#EF4444"},
	}

	if err := NewTeamRepository(store).Save(ctx, teams); err != nil {
		return err
	}
	if err := NewMemberRepository(store).Save(ctx, members); err != nil {
		return err
	}
	return NewEventRepository(store).Save(ctx, events)
}
