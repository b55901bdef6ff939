// Package schedule содержит чистые проекции над плоскими коллекциями:
// статус участника на дату, видимые события, признаки праздника и
// "пустого" дня. Пересчитываются на каждый запрос, без кеширования -
// объемы данных одной организации малы.
package schedule

import "github.com/bagdasarian/team-calendar/internal/domain"

// StatusOf возвращает статус участника на дату. По инварианту upsert
// для пары (userID, date) существует не более одной записи.
func StatusOf(workdays []domain.WorkDay, userID, date string) domain.Location {
	for _, workday := range workdays {
		if workday.UserID == userID && workday.Date == date {
			return workday.Location
		}
	}
	return domain.LocationUnset
}

// EventsOn отбирает события на дату с учетом области просмотра:
// в режиме "all" видны только общие события и праздники, в режиме
// конкретной команды - общие, праздники и события этой команды.
func EventsOn(events []domain.Event, date, activeTeamID string) []domain.Event {
	visible := make([]domain.Event, 0)
	for _, event := range events {
		if event.Date != date {
			continue
		}
		if event.CrossTeam() || event.IsHoliday() {
			visible = append(visible, event)
			continue
		}
		if activeTeamID != domain.TeamAll && event.TeamID == activeTeamID {
			visible = append(visible, event)
		}
	}
	return visible
}

// IsHoliday - дата является праздником, если на нее есть событие
// с именем "Feiertag" (без учета регистра).
func IsHoliday(events []domain.Event, date string) bool {
	for _, event := range events {
		if event.Date == date && event.IsHoliday() {
			return true
		}
	}
	return false
}

// MembersOfTeam возвращает участников команды; "all" - всех.
func MembersOfTeam(members []domain.Member, teamID string) []domain.Member {
	if teamID == domain.TeamAll {
		return members
	}
	filtered := make([]domain.Member, 0)
	for _, member := range members {
		if member.TeamID == teamID {
			filtered = append(filtered, member)
		}
	}
	return filtered
}

// IsDayEmpty - день "пустой", если в офисе никого нет. Праздники
// пустыми не считаются. Для конкретной команды: ни один ее участник
// не в офисе. Для режима "all": хотя бы одна команда (по TeamID
// участников) осталась без единого человека в офисе.
func IsDayEmpty(members []domain.Member, workdays []domain.WorkDay, events []domain.Event, date, teamID string) bool {
	if IsHoliday(events, date) {
		return false
	}

	if teamID == domain.TeamAll {
		seen := make(map[string]bool)
		for _, member := range members {
			if seen[member.TeamID] {
				continue
			}
			seen[member.TeamID] = true
			if !anyInOffice(MembersOfTeam(members, member.TeamID), workdays, date) {
				return true
			}
		}
		return false
	}

	return !anyInOffice(MembersOfTeam(members, teamID), workdays, date)
}

func anyInOffice(members []domain.Member, workdays []domain.WorkDay, date string) bool {
	for _, member := range members {
		if StatusOf(workdays, member.ID, date) == domain.LocationOffice {
			return true
		}
	}
	return false
}
