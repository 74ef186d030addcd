package repository

import (
	"context"

	"campushub/internal/model"
)

// Package repository contains the persistence abstractions for the portal documents.
// Each repository owns exactly one key in the blob store and reads or replaces it whole.

// Store keys.
const (
	KeyStatus      = "hub-state"
	KeySubmissions = "submissions"
	KeyRatings     = "submission-ratings"
	KeyCalendar    = "calendar-cache"
)

// StatusRepository persists the singleton status document.
type StatusRepository interface {
	// Get returns the stored document and false if none has been written yet.
	Get(ctx context.Context) (*model.StatusDocument, bool, error)
	// Save replaces the stored document.
	Save(ctx context.Context, doc *model.StatusDocument) error
}

// SubmissionRepository persists the ordered submission sequence, most recent first.
type SubmissionRepository interface {
	// List returns every submission in stored order; an empty store yields an empty slice.
	List(ctx context.Context) ([]model.Submission, error)
	// SaveAll replaces the stored sequence.
	SaveAll(ctx context.Context, subs []model.Submission) error
}

// RatingRepository persists accumulated ratings keyed by submission id.
type RatingRepository interface {
	Get(ctx context.Context) (map[string]model.Rating, error)
	Save(ctx context.Context, ratings map[string]model.Rating) error
}

// CalendarCacheRepository persists the calendar snapshot.
type CalendarCacheRepository interface {
	// Get returns nil without error when no snapshot exists.
	Get(ctx context.Context) (*model.CalendarCacheEntry, error)
	Save(ctx context.Context, entry *model.CalendarCacheEntry) error
}
