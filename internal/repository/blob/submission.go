package blob

import (
	"context"

	"campushub/internal/model"
	"campushub/internal/repository"
	"campushub/internal/storage"
)

// SubmissionBlob stores all submissions as one JSON array under repository.KeySubmissions.
type SubmissionBlob struct {
	store storage.Store
}

// NewSubmissionBlob creates a new SubmissionBlob repository.
func NewSubmissionBlob(store storage.Store) *SubmissionBlob {
	return &SubmissionBlob{store: store}
}

var _ repository.SubmissionRepository = (*SubmissionBlob)(nil)

func (r *SubmissionBlob) List(ctx context.Context) ([]model.Submission, error) {
	subs := make([]model.Submission, 0)
	if _, err := storage.GetJSON(ctx, r.store, repository.KeySubmissions, &subs); err != nil {
		return nil, err
	}
	if subs == nil {
		subs = make([]model.Submission, 0)
	}
	return subs, nil
}

func (r *SubmissionBlob) SaveAll(ctx context.Context, subs []model.Submission) error {
	return storage.SetJSON(ctx, r.store, repository.KeySubmissions, subs)
}

// RatingBlob stores the rating tallies under repository.KeyRatings.
type RatingBlob struct {
	store storage.Store
}

// NewRatingBlob creates a new RatingBlob repository.
func NewRatingBlob(store storage.Store) *RatingBlob {
	return &RatingBlob{store: store}
}

var _ repository.RatingRepository = (*RatingBlob)(nil)

func (r *RatingBlob) Get(ctx context.Context) (map[string]model.Rating, error) {
	ratings := make(map[string]model.Rating)
	if _, err := storage.GetJSON(ctx, r.store, repository.KeyRatings, &ratings); err != nil {
		return nil, err
	}
	if ratings == nil {
		ratings = make(map[string]model.Rating)
	}
	return ratings, nil
}

func (r *RatingBlob) Save(ctx context.Context, ratings map[string]model.Rating) error {
	return storage.SetJSON(ctx, r.store, repository.KeyRatings, ratings)
}
