package domain

import "strings"

// HolidayName - событие с таким именем помечает дату как праздник
const HolidayName = "Feiertag"

type Event struct {
	ID     string
	Name   string
	Date   string // YYYY-MM-DD
	Color  string
	TeamID string // пустая строка = событие для всех команд
}

func (e Event) IsHoliday() bool {
	return strings.EqualFold(e.Name, HolidayName)
}

func (e Event) CrossTeam() bool {
	return e.TeamID == ""
}
