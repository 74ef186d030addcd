package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"campushub/internal/apperr"
	"campushub/internal/model"
	"campushub/internal/repository"
)

// CreateSubmissionInput is the anonymous submit form.
type CreateSubmissionInput struct {
	Title    string
	Course   string
	Category string
	FileURL  string
}

// RatingSummary is returned after a rating is recorded.
type RatingSummary struct {
	ID          string  `json:"id"`
	Rating      float64 `json:"rating"`
	RatingCount int     `json:"ratingCount"`
}

// SubmissionService implements the moderation lifecycle:
// pending -> approved | rejected, with approved and rejected terminal.
type SubmissionService interface {
	Create(ctx context.Context, in CreateSubmissionInput) (*model.Submission, error)
	Review(ctx context.Context, id string, action model.ReviewAction, note *string) (*model.Submission, error)
	ListPublic(ctx context.Context) ([]model.PublicSubmission, error)
	ListAll(ctx context.Context) ([]model.Submission, error)
	Rate(ctx context.Context, id string, rating int) (*RatingSummary, error)
}

type submissionService struct {
	repo    repository.SubmissionRepository
	ratings repository.RatingRepository
	log     *zap.Logger
	now     func() time.Time
	newID   func() string
}

// NewSubmissionService constructs a new SubmissionService.
func NewSubmissionService(repo repository.SubmissionRepository, ratings repository.RatingRepository, log *zap.Logger) SubmissionService {
	return &submissionService{
		repo:    repo,
		ratings: ratings,
		log:     log,
		now:     time.Now,
		newID:   newSubmissionID,
	}
}

// newSubmissionID returns a time-ordered random id (UUIDv7).
func newSubmissionID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

func (s *submissionService) Create(ctx context.Context, in CreateSubmissionInput) (*model.Submission, error) {
	title := strings.TrimSpace(in.Title)
	course := strings.TrimSpace(in.Course)
	category := model.Category(strings.TrimSpace(in.Category))
	fileURL := strings.TrimSpace(in.FileURL)

	if title == "" || course == "" || category == "" || fileURL == "" {
		return nil, apperr.Validation("Required: title, course, category, fileUrl")
	}
	if !category.Valid() {
		return nil, apperr.Validation("category must be one of: notes, exam, study-guide, other")
	}

	subs, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load submissions: %w", err)
	}

	sub := model.Submission{
		ID:        s.newID(),
		Title:     title,
		Course:    course,
		Category:  category,
		FileURL:   fileURL,
		Status:    model.StatusPending,
		CreatedAt: s.now().UTC(),
	}

	updated := make([]model.Submission, 0, len(subs)+1)
	updated = append(updated, sub)
	updated = append(updated, subs...)

	if err := s.repo.SaveAll(ctx, updated); err != nil {
		return nil, fmt.Errorf("save submissions: %w", err)
	}

	s.log.Info("submission created", zap.String("id", sub.ID), zap.String("category", string(sub.Category)))
	return &sub, nil
}

func (s *submissionService) Review(ctx context.Context, id string, action model.ReviewAction, note *string) (*model.Submission, error) {
	id = strings.TrimSpace(id)
	if id == "" || action == "" {
		return nil, apperr.Validation("Required: id, action")
	}

	var status model.SubmissionStatus
	switch action {
	case model.ActionApprove:
		status = model.StatusApproved
	case model.ActionReject:
		status = model.StatusRejected
	default:
		return nil, apperr.Validation("action must be approve or reject")
	}

	subs, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load submissions: %w", err)
	}

	idx := indexOf(subs, id)
	if idx < 0 {
		return nil, apperr.NotFound("Submission not found.")
	}
	if subs[idx].Status != model.StatusPending {
		return nil, apperr.Conflict(fmt.Sprintf("submission already %s", subs[idx].Status))
	}

	reviewedAt := s.now().UTC()
	sub := subs[idx]
	sub.Status = status
	sub.ReviewedAt = &reviewedAt
	sub.ReviewerNote = truncateNote(note)

	updated := make([]model.Submission, len(subs))
	copy(updated, subs)
	updated[idx] = sub

	if err := s.repo.SaveAll(ctx, updated); err != nil {
		return nil, fmt.Errorf("save submissions: %w", err)
	}

	s.log.Info("submission reviewed", zap.String("id", id), zap.String("status", string(status)))
	return &sub, nil
}

func (s *submissionService) ListPublic(ctx context.Context) ([]model.PublicSubmission, error) {
	subs, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load submissions: %w", err)
	}
	ratings, err := s.ratings.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("load ratings: %w", err)
	}

	out := make([]model.PublicSubmission, 0, len(subs))
	for _, sub := range subs {
		if sub.Status != model.StatusApproved {
			continue
		}
		r := ratings[sub.ID]
		out = append(out, model.PublicSubmission{
			Submission:  sub,
			Rating:      r.Average(),
			RatingCount: r.Count,
		})
	}
	return out, nil
}

func (s *submissionService) ListAll(ctx context.Context) ([]model.Submission, error) {
	subs, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load submissions: %w", err)
	}
	return subs, nil
}

func (s *submissionService) Rate(ctx context.Context, id string, rating int) (*RatingSummary, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, apperr.Validation("Required: id, rating")
	}
	if rating < 1 || rating > 5 {
		return nil, apperr.Validation("rating must be between 1 and 5")
	}

	subs, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load submissions: %w", err)
	}
	idx := indexOf(subs, id)
	if idx < 0 || subs[idx].Status != model.StatusApproved {
		return nil, apperr.NotFound("Submission not found.")
	}

	ratings, err := s.ratings.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("load ratings: %w", err)
	}
	r := ratings[id]
	r.Count++
	r.Total += rating
	ratings[id] = r

	if err := s.ratings.Save(ctx, ratings); err != nil {
		return nil, fmt.Errorf("save ratings: %w", err)
	}
	return &RatingSummary{ID: id, Rating: r.Average(), RatingCount: r.Count}, nil
}

func indexOf(subs []model.Submission, id string) int {
	for i := range subs {
		if subs[i].ID == id {
			return i
		}
	}
	return -1
}

// truncateNote bounds the note to MaxReviewerNoteLen characters. Empty notes are dropped.
func truncateNote(note *string) *string {
	if note == nil || *note == "" {
		return nil
	}
	r := []rune(*note)
	if len(r) > model.MaxReviewerNoteLen {
		r = r[:model.MaxReviewerNoteLen]
	}
	out := string(r)
	return &out
}
