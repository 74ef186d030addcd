package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"campushub/internal/model"
	"campushub/internal/service"
)

type MockStatusService struct {
	mock.Mock
}

func (m *MockStatusService) Get(ctx context.Context) (*model.StatusDocument, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.StatusDocument), args.Error(1)
}

func (m *MockStatusService) Update(ctx context.Context, in service.UpdateStatusInput) (*model.StatusDocument, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.StatusDocument), args.Error(1)
}

type MockMonitorService struct {
	mock.Mock
}

func (m *MockMonitorService) RunSweep(ctx context.Context) (*service.SweepResult, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SweepResult), args.Error(1)
}

type MockSubmissionService struct {
	mock.Mock
}

func (m *MockSubmissionService) Create(ctx context.Context, in service.CreateSubmissionInput) (*model.Submission, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Submission), args.Error(1)
}

func (m *MockSubmissionService) Review(ctx context.Context, id string, action model.ReviewAction, note *string) (*model.Submission, error) {
	args := m.Called(ctx, id, action, note)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Submission), args.Error(1)
}

func (m *MockSubmissionService) ListPublic(ctx context.Context) ([]model.PublicSubmission, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PublicSubmission), args.Error(1)
}

func (m *MockSubmissionService) ListAll(ctx context.Context) ([]model.Submission, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Submission), args.Error(1)
}

func (m *MockSubmissionService) Rate(ctx context.Context, id string, rating int) (*service.RatingSummary, error) {
	args := m.Called(ctx, id, rating)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.RatingSummary), args.Error(1)
}

type MockCalendarService struct {
	mock.Mock
}

func (m *MockCalendarService) GetEvents(ctx context.Context) (*service.CalendarResult, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.CalendarResult), args.Error(1)
}
