package service

import (
	"context"

	"github.com/bagdasarian/team-calendar/internal/domain"
)

// MemberStatus - участник вместе с его статусом на конкретную дату.
type MemberStatus struct {
	Member   domain.Member
	Location domain.Location
}

// DayView - производное представление одного дня для области
// просмотра: видимые события, признаки праздника и "пустого" дня,
// статусы участников.
type DayView struct {
	Date     string
	Holiday  bool
	Empty    bool
	Events   []domain.Event
	Statuses []MemberStatus
}

type WeekView struct {
	StartDate string
	TeamID    string
	Days      []DayView
}

type CalendarService interface {
	Day(ctx context.Context, date, teamID string) (*DayView, error)
	// Week строит семь последовательных дней начиная со startDate.
	Week(ctx context.Context, startDate, teamID string) (*WeekView, error)
	// ExportICS отдает видимые события области просмотра в формате iCalendar.
	ExportICS(ctx context.Context, teamID string) (string, error)
}
