package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"campushub/internal/apperr"
	"campushub/internal/model"
	"campushub/internal/repository"
)

// UpdateStatusInput carries the fields an admin wants to replace. Nil fields are left
// untouched; supplied slices replace the stored ones wholesale, so callers must send
// every item they want to keep.
type UpdateStatusInput struct {
	ManualItems *[]model.ManualStatusItem
	Monitors    *[]model.Monitor
	// Revision, when set, must match the stored revision or the update is rejected.
	Revision *int64
}

// StatusService reads and edits the status document.
type StatusService interface {
	// Get returns the current document, seeding and persisting the default on first use.
	Get(ctx context.Context) (*model.StatusDocument, error)
	// Update replaces manual items and/or monitors. Monitor results and the last sweep
	// time are never touched here.
	Update(ctx context.Context, in UpdateStatusInput) (*model.StatusDocument, error)
}

type statusService struct {
	repo repository.StatusRepository
	log  *zap.Logger
	now  func() time.Time
}

// NewStatusService constructs a new StatusService.
func NewStatusService(repo repository.StatusRepository, log *zap.Logger) StatusService {
	return &statusService{repo: repo, log: log, now: time.Now}
}

func (s *statusService) Get(ctx context.Context) (*model.StatusDocument, error) {
	doc, found, err := s.repo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("load status: %w", err)
	}
	if found {
		return doc, nil
	}

	doc = model.DefaultStatusDocument()
	if err := s.repo.Save(ctx, doc); err != nil {
		return nil, fmt.Errorf("seed status: %w", err)
	}
	s.log.Info("status document seeded", zap.Int("monitors", len(doc.Monitors)))
	return doc, nil
}

func (s *statusService) Update(ctx context.Context, in UpdateStatusInput) (*model.StatusDocument, error) {
	if in.ManualItems == nil && in.Monitors == nil {
		doc, err := s.Get(ctx)
		if err != nil {
			return nil, err
		}
		if in.Revision != nil && *in.Revision != doc.Revision {
			return nil, revisionConflict(doc.Revision)
		}
		return doc, nil
	}
	if in.ManualItems != nil {
		if dup := duplicateID(len(*in.ManualItems), func(i int) string { return (*in.ManualItems)[i].ID }); dup != "" {
			return nil, apperr.Validation(fmt.Sprintf("duplicate manual item id %q", dup))
		}
	}
	if in.Monitors != nil {
		if dup := duplicateID(len(*in.Monitors), func(i int) string { return (*in.Monitors)[i].ID }); dup != "" {
			return nil, apperr.Validation(fmt.Sprintf("duplicate monitor id %q", dup))
		}
	}

	doc, found, err := s.repo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("load status: %w", err)
	}
	if !found {
		doc = model.DefaultStatusDocument()
	}

	if in.Revision != nil && *in.Revision != doc.Revision {
		return nil, revisionConflict(doc.Revision)
	}

	if in.ManualItems != nil {
		now := s.now().UTC()
		items := make([]model.ManualStatusItem, len(*in.ManualItems))
		copy(items, *in.ManualItems)
		for i := range items {
			if items[i].UpdatedAt.IsZero() {
				items[i].UpdatedAt = now
			}
		}
		doc.ManualItems = items
	}
	if in.Monitors != nil {
		monitors := make([]model.Monitor, len(*in.Monitors))
		copy(monitors, *in.Monitors)
		doc.Monitors = monitors
	}
	doc.Revision++
	doc.Normalize()

	if err := s.repo.Save(ctx, doc); err != nil {
		return nil, fmt.Errorf("save status: %w", err)
	}

	s.log.Info("status document updated",
		zap.Bool("manual_items", in.ManualItems != nil),
		zap.Bool("monitors", in.Monitors != nil),
		zap.Int64("revision", doc.Revision),
	)
	return doc, nil
}

func revisionConflict(current int64) error {
	return apperr.Conflict(fmt.Sprintf("status document is at revision %d, reload and retry", current))
}

func duplicateID(n int, id func(int) string) string {
	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		k := id(i)
		if _, ok := seen[k]; ok {
			return k
		}
		seen[k] = struct{}{}
	}
	return ""
}
