package service

import (
	"context"

	"github.com/bagdasarian/team-calendar/internal/domain"
)

// SharedData - снимок календаря для ссылки "только чтение".
type SharedData struct {
	Teams    []domain.Team
	Members  []domain.Member
	Workdays []domain.WorkDay
	Events   []domain.Event
}

type ShareService interface {
	// CreateLink выпускает непрозрачный токен и возвращает ссылку
	// вида <baseURL>/shared/<token>. Токен не привязан к данным и
	// не истекает: любая выданная ссылка показывает один и тот же
	// календарь.
	CreateLink(ctx context.Context, baseURL string) (string, error)
	SharedView(ctx context.Context, token string) (*SharedData, error)
}
