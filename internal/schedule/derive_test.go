package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bagdasarian/team-calendar/internal/domain"
)

var (
	testMembers = []domain.Member{
		{ID: "a", Name: "Alice", TeamID: "team-1"},
		{ID: "b", Name: "Bob", TeamID: "team-1"},
		{ID: "c", Name: "Charlie", TeamID: "team-2"},
		{ID: "d", Name: "Dave", TeamID: "team-2"},
	}
	testDate = "2025-05-20"
)

func TestStatusOf(t *testing.T) {
	t.Run("возвращает статус при наличии записи", func(t *testing.T) {
		workdays := []domain.WorkDay{
			{UserID: "a", Date: testDate, Location: domain.LocationOffice},
			{UserID: "a", Date: "2025-05-21", Location: domain.LocationHome},
		}

		assert.Equal(t, domain.LocationOffice, StatusOf(workdays, "a", testDate))
		assert.Equal(t, domain.LocationHome, StatusOf(workdays, "a", "2025-05-21"))
	})

	t.Run("пустое значение без записи", func(t *testing.T) {
		assert.Equal(t, domain.LocationUnset, StatusOf(nil, "a", testDate))
		assert.Equal(t, domain.LocationUnset, StatusOf([]domain.WorkDay{
			{UserID: "b", Date: testDate, Location: domain.LocationOffice},
		}, "a", testDate))
	})
}

func TestEventsOn(t *testing.T) {
	events := []domain.Event{
		{ID: "e1", Name: "Team Meeting", Date: testDate, TeamID: "team-1"},
		{ID: "e2", Name: "Feiertag", Date: testDate},
		{ID: "e3", Name: "All Hands", Date: testDate},
		{ID: "e4", Name: "Retro", Date: testDate, TeamID: "team-2"},
		{ID: "e5", Name: "Planning", Date: "2025-05-21", TeamID: "team-1"},
	}

	t.Run("режим all: только общие события и праздники", func(t *testing.T) {
		visible := EventsOn(events, testDate, domain.TeamAll)

		ids := eventIDs(visible)
		assert.ElementsMatch(t, []string{"e2", "e3"}, ids)
	})

	t.Run("режим команды: общие, праздники и свои", func(t *testing.T) {
		visible := EventsOn(events, testDate, "team-1")

		ids := eventIDs(visible)
		assert.ElementsMatch(t, []string{"e1", "e2", "e3"}, ids)
	})

	t.Run("чужая дата не попадает", func(t *testing.T) {
		visible := EventsOn(events, "2025-05-22", "team-1")
		assert.Empty(t, visible)
	})
}

func TestIsHoliday(t *testing.T) {
	t.Run("имя Feiertag без учета регистра", func(t *testing.T) {
		events := []domain.Event{
			{ID: "e1", Name: "feiertag", Date: testDate},
		}

		assert.True(t, IsHoliday(events, testDate))
		assert.False(t, IsHoliday(events, "2025-05-21"))
	})

	t.Run("обычное событие не делает дату праздником", func(t *testing.T) {
		events := []domain.Event{
			{ID: "e1", Name: "Team Meeting", Date: testDate},
		}

		assert.False(t, IsHoliday(events, testDate))
	})
}

func TestMembersOfTeam(t *testing.T) {
	t.Run("all возвращает всех", func(t *testing.T) {
		assert.Len(t, MembersOfTeam(testMembers, domain.TeamAll), 4)
	})

	t.Run("фильтр по команде", func(t *testing.T) {
		members := MembersOfTeam(testMembers, "team-2")

		assert.Len(t, members, 2)
		for _, member := range members {
			assert.Equal(t, "team-2", member.TeamID)
		}
	})

	t.Run("неизвестная команда - пусто", func(t *testing.T) {
		assert.Empty(t, MembersOfTeam(testMembers, "team-x"))
	})
}

func TestIsDayEmpty(t *testing.T) {
	t.Run("праздник никогда не пустой", func(t *testing.T) {
		events := []domain.Event{
			{ID: "e1", Name: "Feiertag", Date: testDate},
		}

		// Никто не в офисе, но день праздничный.
		assert.False(t, IsDayEmpty(testMembers, nil, events, testDate, "team-1"))
		assert.False(t, IsDayEmpty(testMembers, nil, events, testDate, domain.TeamAll))
	})

	t.Run("команда без людей в офисе - пустой день", func(t *testing.T) {
		workdays := []domain.WorkDay{
			{UserID: "a", Date: testDate, Location: domain.LocationHome},
		}

		assert.True(t, IsDayEmpty(testMembers, workdays, nil, testDate, "team-1"))
	})

	t.Run("хотя бы один в офисе - день не пустой", func(t *testing.T) {
		workdays := []domain.WorkDay{
			{UserID: "a", Date: testDate, Location: domain.LocationOffice},
		}

		assert.False(t, IsDayEmpty(testMembers, workdays, nil, testDate, "team-1"))
	})

	t.Run("режим all: пусто, если хотя бы одна команда без офиса", func(t *testing.T) {
		// Team 1: Alice в офисе. Team 2: никого.
		workdays := []domain.WorkDay{
			{UserID: "a", Date: testDate, Location: domain.LocationOffice},
		}

		assert.True(t, IsDayEmpty(testMembers, workdays, nil, testDate, domain.TeamAll))
		assert.False(t, IsDayEmpty(testMembers, workdays, nil, testDate, "team-1"))
	})

	t.Run("режим all: не пусто, когда в каждой команде кто-то в офисе", func(t *testing.T) {
		workdays := []domain.WorkDay{
			{UserID: "a", Date: testDate, Location: domain.LocationOffice},
			{UserID: "d", Date: testDate, Location: domain.LocationOffice},
		}

		assert.False(t, IsDayEmpty(testMembers, workdays, nil, testDate, domain.TeamAll))
	})
}

func eventIDs(events []domain.Event) []string {
	ids := make([]string, 0, len(events))
	for _, event := range events {
		ids = append(ids, event.ID)
	}
	return ids
}
