package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"campushub/internal/apperr"
	"campushub/internal/calendar"
	"campushub/internal/model"
	"campushub/internal/repository"
)

const (
	SourceCache = "cache"
	SourceLive  = "live"
)

// CalendarResult is the event list and where it came from.
type CalendarResult struct {
	Source string
	Events []model.CalendarEvent
}

// CalendarService serves near-term events from a TTL-gated cache of the upstream feed.
type CalendarService interface {
	GetEvents(ctx context.Context) (*CalendarResult, error)
}

type calendarService struct {
	cache   repository.CalendarCacheRepository
	fetcher calendar.Fetcher
	ttl     time.Duration
	loc     *time.Location
	log     *zap.Logger
	now     func() time.Time
}

// NewCalendarService constructs a new CalendarService. A nil fetcher means no feed is
// configured and every cache miss fails.
func NewCalendarService(cache repository.CalendarCacheRepository, fetcher calendar.Fetcher, ttl time.Duration, loc *time.Location, log *zap.Logger) CalendarService {
	if loc == nil {
		loc = time.UTC
	}
	return &calendarService{
		cache:   cache,
		fetcher: fetcher,
		ttl:     ttl,
		loc:     loc,
		log:     log,
		now:     time.Now,
	}
}

func (s *calendarService) GetEvents(ctx context.Context) (*CalendarResult, error) {
	if s.fetcher == nil {
		return nil, apperr.Clone(apperr.ErrConfig, "Missing ICAL_URL")
	}

	entry, err := s.cache.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("load calendar cache: %w", err)
	}
	now := s.now()
	if entry != nil && now.Sub(entry.FetchedAt) < s.ttl {
		return &CalendarResult{Source: SourceCache, Events: nonNil(entry.Events)}, nil
	}

	raw, err := s.fetcher.Fetch(ctx)
	if err != nil {
		var se *calendar.StatusError
		if errors.As(err, &se) {
			return nil, apperr.Upstream(err, fmt.Sprintf("iCal fetch failed: %d", se.StatusCode))
		}
		return nil, apperr.Upstream(err, "iCal fetch failed")
	}

	parsed, skipped := calendar.Parse(raw, s.loc)
	if skipped > 0 {
		s.log.Warn("calendar entries skipped", zap.Int("skipped", skipped), zap.Int("parsed", len(parsed)))
	}
	events := calendar.Upcoming(parsed, now, s.loc)

	fresh := &model.CalendarCacheEntry{FetchedAt: now.UTC(), Events: events}
	if err := s.cache.Save(ctx, fresh); err != nil {
		return nil, fmt.Errorf("save calendar cache: %w", err)
	}

	s.log.Info("calendar refreshed", zap.Int("events", len(events)))
	return &CalendarResult{Source: SourceLive, Events: events}, nil
}

func nonNil(events []model.CalendarEvent) []model.CalendarEvent {
	if events == nil {
		return []model.CalendarEvent{}
	}
	return events
}
