package service

import (
	"context"
	"time"

	"github.com/bagdasarian/team-calendar/internal/auth"
	"github.com/bagdasarian/team-calendar/internal/domain"
	"github.com/bagdasarian/team-calendar/internal/repository"
	"github.com/bagdasarian/team-calendar/internal/schedule"
)

type statusService struct {
	workdayRepo repository.WorkdayRepository
	memberRepo  repository.MemberRepository
	eventRepo   repository.EventRepository
}

// NewStatusService создает новый экземпляр StatusService
func NewStatusService(
	workdayRepo repository.WorkdayRepository,
	memberRepo repository.MemberRepository,
	eventRepo repository.EventRepository,
) StatusService {
	return &statusService{
		workdayRepo: workdayRepo,
		memberRepo:  memberRepo,
		eventRepo:   eventRepo,
	}
}

func validateDate(date string) error {
	if date == "" {
		return domain.NewValidationError("date is required")
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return domain.NewValidationError("date must be in YYYY-MM-DD format")
	}
	return nil
}

// SetStatus выставляет статус участника на дату (upsert по паре
// userID+date). В праздничный день любая правка отклоняется, включая
// сброс в пустое значение.
func (s *statusService) SetStatus(ctx context.Context, actor domain.Actor, userID, date string, location domain.Location) (*domain.WorkDay, error) {
	if err := auth.CanPerform(actor, auth.ActionSetStatus, userID); err != nil {
		return nil, err
	}
	if err := validateDate(date); err != nil {
		return nil, err
	}
	if !location.Valid() {
		return nil, domain.NewValidationError("unknown work location " + string(location))
	}

	if _, err := s.memberRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if schedule.IsHoliday(events, date) {
		return nil, domain.ErrHolidayLocked
	}

	workdays, err := s.workdayRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	entry := domain.WorkDay{UserID: userID, Date: date, Location: location}

	updated := false
	for i := range workdays {
		if workdays[i].UserID == userID && workdays[i].Date == date {
			workdays[i] = entry
			updated = true
			break
		}
	}
	if !updated {
		workdays = append(workdays, entry)
	}

	if err := s.workdayRepo.Save(ctx, workdays); err != nil {
		return nil, err
	}

	return &entry, nil
}

// ToggleStatus - клик по ячейке календаря: следующий статус цикла.
func (s *statusService) ToggleStatus(ctx context.Context, actor domain.Actor, userID, date string) (*domain.WorkDay, error) {
	if err := validateDate(date); err != nil {
		return nil, err
	}

	workdays, err := s.workdayRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	current := schedule.StatusOf(workdays, userID, date)
	return s.SetStatus(ctx, actor, userID, date, current.Next())
}

func (s *statusService) StatusOf(ctx context.Context, userID, date string) (domain.Location, error) {
	workdays, err := s.workdayRepo.List(ctx)
	if err != nil {
		return domain.LocationUnset, err
	}
	return schedule.StatusOf(workdays, userID, date), nil
}
