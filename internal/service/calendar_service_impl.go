package service

import (
	"context"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/bagdasarian/team-calendar/internal/domain"
	"github.com/bagdasarian/team-calendar/internal/repository"
	"github.com/bagdasarian/team-calendar/internal/schedule"
)

type calendarService struct {
	memberRepo  repository.MemberRepository
	workdayRepo repository.WorkdayRepository
	eventRepo   repository.EventRepository
}

// NewCalendarService создает новый экземпляр CalendarService
func NewCalendarService(
	memberRepo repository.MemberRepository,
	workdayRepo repository.WorkdayRepository,
	eventRepo repository.EventRepository,
) CalendarService {
	return &calendarService{
		memberRepo:  memberRepo,
		workdayRepo: workdayRepo,
		eventRepo:   eventRepo,
	}
}

func (s *calendarService) Day(ctx context.Context, date, teamID string) (*DayView, error) {
	if err := validateDate(date); err != nil {
		return nil, err
	}
	if teamID == "" {
		teamID = domain.TeamAll
	}

	members, err := s.memberRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	workdays, err := s.workdayRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	return buildDayView(members, workdays, events, date, teamID), nil
}

func (s *calendarService) Week(ctx context.Context, startDate, teamID string) (*WeekView, error) {
	if err := validateDate(startDate); err != nil {
		return nil, err
	}
	if teamID == "" {
		teamID = domain.TeamAll
	}

	members, err := s.memberRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	workdays, err := s.workdayRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	start, _ := time.Parse("2006-01-02", startDate)

	week := &WeekView{
		StartDate: startDate,
		TeamID:    teamID,
		Days:      make([]DayView, 0, 7),
	}
	for i := 0; i < 7; i++ {
		date := start.AddDate(0, 0, i).Format("2006-01-02")
		week.Days = append(week.Days, *buildDayView(members, workdays, events, date, teamID))
	}

	return week, nil
}

func buildDayView(members []domain.Member, workdays []domain.WorkDay, events []domain.Event, date, teamID string) *DayView {
	visible := schedule.MembersOfTeam(members, teamID)
	statuses := make([]MemberStatus, 0, len(visible))
	for _, member := range visible {
		statuses = append(statuses, MemberStatus{
			Member:   member,
			Location: schedule.StatusOf(workdays, member.ID, date),
		})
	}

	return &DayView{
		Date:     date,
		Holiday:  schedule.IsHoliday(events, date),
		Empty:    schedule.IsDayEmpty(members, workdays, events, date, teamID),
		Events:   schedule.EventsOn(events, date, teamID),
		Statuses: statuses,
	}
}

func (s *calendarService) ExportICS(ctx context.Context, teamID string) (string, error) {
	if teamID == "" {
		teamID = domain.TeamAll
	}

	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return "", err
	}

	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId("-//team-calendar//EN")

	now := time.Now()
	for _, event := range events {
		if !event.CrossTeam() && !event.IsHoliday() && !(teamID != domain.TeamAll && event.TeamID == teamID) {
			continue
		}
		day, err := time.Parse("2006-01-02", event.Date)
		if err != nil {
			continue
		}

		ve := cal.AddEvent(event.ID)
		ve.SetSummary(event.Name)
		ve.SetDtStampTime(now)
		ve.SetAllDayStartAt(day)
		ve.SetAllDayEndAt(day.AddDate(0, 0, 1))
	}

	return cal.Serialize(), nil
}
