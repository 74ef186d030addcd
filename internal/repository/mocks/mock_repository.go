package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"campushub/internal/model"
)

type MockStatusRepository struct {
	mock.Mock
}

func (m *MockStatusRepository) Get(ctx context.Context) (*model.StatusDocument, bool, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*model.StatusDocument), args.Bool(1), args.Error(2)
}

func (m *MockStatusRepository) Save(ctx context.Context, doc *model.StatusDocument) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

type MockSubmissionRepository struct {
	mock.Mock
}

func (m *MockSubmissionRepository) List(ctx context.Context) ([]model.Submission, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Submission), args.Error(1)
}

func (m *MockSubmissionRepository) SaveAll(ctx context.Context, subs []model.Submission) error {
	args := m.Called(ctx, subs)
	return args.Error(0)
}

type MockRatingRepository struct {
	mock.Mock
}

func (m *MockRatingRepository) Get(ctx context.Context) (map[string]model.Rating, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]model.Rating), args.Error(1)
}

func (m *MockRatingRepository) Save(ctx context.Context, ratings map[string]model.Rating) error {
	args := m.Called(ctx, ratings)
	return args.Error(0)
}

type MockCalendarCacheRepository struct {
	mock.Mock
}

func (m *MockCalendarCacheRepository) Get(ctx context.Context) (*model.CalendarCacheEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CalendarCacheEntry), args.Error(1)
}

func (m *MockCalendarCacheRepository) Save(ctx context.Context, entry *model.CalendarCacheEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}
