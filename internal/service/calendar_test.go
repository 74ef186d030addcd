package service

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"campushub/internal/apperr"
	"campushub/internal/calendar"
	"campushub/internal/model"
	"campushub/internal/repository/blob"
	repoMocks "campushub/internal/repository/mocks"
	"campushub/internal/storage"
)

type fakeFetcher struct {
	body  []byte
	err   error
	calls atomic.Int32
}

func (f *fakeFetcher) Fetch(context.Context) ([]byte, error) {
	f.calls.Add(1)
	return f.body, f.err
}

func feed(events ...string) []byte {
	lines := []string{"BEGIN:VCALENDAR", "VERSION:2.0", "PRODID:-//Campus//Test//EN"}
	lines = append(lines, events...)
	lines = append(lines, "END:VCALENDAR")
	return []byte(strings.Join(lines, "\r\n") + "\r\n")
}

func vevent(uid, start, summary string) []string {
	return []string{"BEGIN:VEVENT", "UID:" + uid, "DTSTART:" + start, "SUMMARY:" + summary, "END:VEVENT"}
}

func flatten(groups ...[]string) []string {
	var out []string
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

func newMemoryCalendarService(t *testing.T, f calendar.Fetcher, now time.Time) (*calendarService, *blob.CalendarBlob) {
	t.Helper()
	cache := blob.NewCalendarBlob(storage.NewMemory())
	svc := NewCalendarService(cache, f, 15*time.Minute, time.UTC, zap.NewNop()).(*calendarService)
	svc.now = func() time.Time { return now }
	return svc, cache
}

func TestCalendarService_AllDayEventsUseCampusZone(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	now := time.Date(2026, 10, 16, 14, 0, 0, 0, ny)

	f := &fakeFetcher{body: feed(
		"BEGIN:VEVENT", "UID:today", "DTSTART;VALUE=DATE:20261016", "SUMMARY:Fall Break", "END:VEVENT",
		"BEGIN:VEVENT", "UID:later", "DTSTART;VALUE=DATE:20261024", "SUMMARY:Homecoming", "END:VEVENT",
	)}
	svc := NewCalendarService(blob.NewCalendarBlob(storage.NewMemory()), f, 15*time.Minute, ny, zap.NewNop()).(*calendarService)
	svc.now = func() time.Time { return now }

	res, err := svc.GetEvents(context.Background())
	require.NoError(t, err)
	require.Len(t, res.Events, 1)
	assert.Equal(t, "Fall Break", res.Events[0].Title)
	assert.True(t, res.Events[0].Start.Equal(time.Date(2026, 10, 16, 0, 0, 0, 0, ny)))
}

func TestCalendarService_GetEventsCachesWithinTTL(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 10, 16, 10, 0, 0, 0, time.UTC)
	f := &fakeFetcher{body: feed(flatten(
		vevent("3", "20261020T090000Z", "Advising Week"),
		vevent("1", "20261016T000000Z", "Midnight Start"),
		vevent("past", "20261015T235959Z", "Yesterday"),
		vevent("2", "20261023T235959Z", "Last Day In Window"),
		vevent("late", "20261024T000000Z", "Too Late"),
	)...)}
	svc, cache := newMemoryCalendarService(t, f, now)

	first, err := svc.GetEvents(ctx)
	require.NoError(t, err)
	assert.Equal(t, SourceLive, first.Source)
	require.Len(t, first.Events, 3)
	assert.Equal(t, "Midnight Start", first.Events[0].Title)
	assert.Equal(t, "Advising Week", first.Events[1].Title)
	assert.Equal(t, "Last Day In Window", first.Events[2].Title)

	entry, err := cache.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, now, entry.FetchedAt)

	svc.now = func() time.Time { return now.Add(14*time.Minute + 59*time.Second) }
	second, err := svc.GetEvents(ctx)
	require.NoError(t, err)
	assert.Equal(t, SourceCache, second.Source)
	assert.Equal(t, first.Events, second.Events)
	assert.Equal(t, int32(1), f.calls.Load(), "cache hit does not contact upstream")

	svc.now = func() time.Time { return now.Add(15 * time.Minute) }
	third, err := svc.GetEvents(ctx)
	require.NoError(t, err)
	assert.Equal(t, SourceLive, third.Source)
	assert.Equal(t, int32(2), f.calls.Load())
}

func TestCalendarService_GetEventsKeepsFirstThirty(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 10, 16, 10, 0, 0, 0, time.UTC)

	var events [][]string
	for i := 0; i < 40; i++ {
		start := now.Add(time.Duration(40-i) * time.Hour).Format("20060102T150405Z")
		events = append(events, vevent(strings.Repeat("x", i+1), start, "Event"))
	}
	svc, _ := newMemoryCalendarService(t, &fakeFetcher{body: feed(flatten(events...)...)}, now)

	res, err := svc.GetEvents(ctx)
	require.NoError(t, err)
	require.Len(t, res.Events, calendar.MaxEvents)
	for i := 1; i < len(res.Events); i++ {
		assert.False(t, res.Events[i].Start.Before(res.Events[i-1].Start), "sorted by start")
	}
	assert.Equal(t, now.Add(time.Hour), res.Events[0].Start)
}

func TestCalendarService_GetEventsSkipsMalformedEntries(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 10, 16, 10, 0, 0, 0, time.UTC)
	body := feed(flatten(
		vevent("ok", "20261017T120000Z", "Good"),
		[]string{"BEGIN:VEVENT", "UID:bad", "DTSTART:garbage", "SUMMARY:Bad", "END:VEVENT"},
	)...)
	svc, _ := newMemoryCalendarService(t, &fakeFetcher{body: body}, now)

	res, err := svc.GetEvents(ctx)
	require.NoError(t, err)
	require.Len(t, res.Events, 1)
	assert.Equal(t, "Good", res.Events[0].Title)
}

func TestCalendarService_GetEventsErrors(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 10, 16, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		fetcher  calendar.Fetcher
		cached   *model.CalendarCacheEntry
		wantKind *apperr.Error
		wantMsg  string
	}{
		{
			name:     "no feed configured",
			wantKind: apperr.ErrConfig,
			wantMsg:  "Missing ICAL_URL",
		},
		{
			name:     "upstream status",
			fetcher:  &fakeFetcher{err: &calendar.StatusError{StatusCode: 503}},
			wantKind: apperr.ErrUpstream,
			wantMsg:  "iCal fetch failed: 503",
		},
		{
			name:     "stale cache is not served on failure",
			fetcher:  &fakeFetcher{err: errors.New("connection reset")},
			cached:   &model.CalendarCacheEntry{FetchedAt: now.Add(-time.Hour), Events: []model.CalendarEvent{{Title: "Old"}}},
			wantKind: apperr.ErrUpstream,
			wantMsg:  "iCal fetch failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, cache := newMemoryCalendarService(t, tt.fetcher, now)
			if tt.cached != nil {
				require.NoError(t, cache.Save(ctx, tt.cached))
			}

			res, err := svc.GetEvents(ctx)
			assert.Nil(t, res)
			require.ErrorIs(t, err, tt.wantKind)
			assert.Equal(t, tt.wantMsg, apperr.FromError(err).Message)

			if tt.cached != nil {
				entry, _ := cache.Get(ctx)
				assert.Equal(t, tt.cached.FetchedAt, entry.FetchedAt, "cache is left as is")
			}
		})
	}
}

func TestCalendarService_GetEventsStoreFailure(t *testing.T) {
	ctx := context.Background()
	m := new(repoMocks.MockCalendarCacheRepository)
	m.On("Get", ctx).Return(nil, nil)
	m.On("Save", ctx, mock.Anything).Return(errors.New("write denied"))

	svc := NewCalendarService(m, &fakeFetcher{body: feed()}, time.Minute, time.UTC, zap.NewNop())
	_, err := svc.GetEvents(ctx)
	assert.EqualError(t, err, "save calendar cache: write denied")
	assert.NotErrorIs(t, err, apperr.ErrUpstream)
	m.AssertExpectations(t)
}
