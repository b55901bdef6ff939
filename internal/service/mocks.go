package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/bagdasarian/team-calendar/internal/domain"
)

type MockTeamRepository struct {
	mock.Mock
}

func (m *MockTeamRepository) List(ctx context.Context) ([]domain.Team, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Team), args.Error(1)
}

func (m *MockTeamRepository) GetByID(ctx context.Context, id string) (*domain.Team, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Team), args.Error(1)
}

func (m *MockTeamRepository) Save(ctx context.Context, teams []domain.Team) error {
	args := m.Called(ctx, teams)
	return args.Error(0)
}

type MockMemberRepository struct {
	mock.Mock
}

func (m *MockMemberRepository) List(ctx context.Context) ([]domain.Member, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Member), args.Error(1)
}

func (m *MockMemberRepository) GetByID(ctx context.Context, id string) (*domain.Member, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}

func (m *MockMemberRepository) Save(ctx context.Context, members []domain.Member) error {
	args := m.Called(ctx, members)
	return args.Error(0)
}

type MockWorkdayRepository struct {
	mock.Mock
}

func (m *MockWorkdayRepository) List(ctx context.Context) ([]domain.WorkDay, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WorkDay), args.Error(1)
}

func (m *MockWorkdayRepository) Save(ctx context.Context, workdays []domain.WorkDay) error {
	args := m.Called(ctx, workdays)
	return args.Error(0)
}

func (m *MockWorkdayRepository) DeleteByUserID(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) List(ctx context.Context) ([]domain.Event, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Event), args.Error(1)
}

func (m *MockEventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Event), args.Error(1)
}

func (m *MockEventRepository) Save(ctx context.Context, events []domain.Event) error {
	args := m.Called(ctx, events)
	return args.Error(0)
}

type MockNotesRepository struct {
	mock.Mock
}

func (m *MockNotesRepository) Get(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockNotesRepository) Set(ctx context.Context, notes string) error {
	args := m.Called(ctx, notes)
	return args.Error(0)
}
