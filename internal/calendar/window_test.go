package calendar

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campushub/internal/model"
)

func TestWindow(t *testing.T) {
	loc := time.FixedZone("EST", -5*3600)
	now := time.Date(2026, 10, 16, 2, 30, 0, 0, time.UTC) // 21:30 on Oct 15 in loc

	from, to := Window(now, loc)

	assert.Equal(t, time.Date(2026, 10, 15, 0, 0, 0, 0, loc), from)
	assert.Equal(t, time.Date(2026, 10, 22, 23, 59, 59, 999999999, loc), to)
}

func TestUpcoming(t *testing.T) {
	loc := time.UTC
	now := time.Date(2026, 10, 16, 12, 0, 0, 0, loc)
	from, to := Window(now, loc)

	events := []model.CalendarEvent{
		{Title: "late", Start: to},
		{Title: "too late", Start: to.Add(time.Nanosecond)},
		{Title: "start of day", Start: from},
		{Title: "yesterday", Start: from.Add(-time.Nanosecond)},
		{Title: "midweek", Start: from.AddDate(0, 0, 3)},
	}

	got := Upcoming(events, now, loc)

	require.Len(t, got, 3)
	assert.Equal(t, "start of day", got[0].Title)
	assert.Equal(t, "midweek", got[1].Title)
	assert.Equal(t, "late", got[2].Title)
}

func TestUpcoming_TruncatesAndSorts(t *testing.T) {
	loc := time.UTC
	now := time.Date(2026, 10, 16, 12, 0, 0, 0, loc)
	from, to := Window(now, loc)

	var events []model.CalendarEvent
	for i := 0; i < 50; i++ {
		events = append(events, model.CalendarEvent{
			Title: fmt.Sprintf("e%02d", i),
			Start: from.Add(time.Duration(50-i) * time.Hour),
		})
	}

	got := Upcoming(events, now, loc)

	require.Len(t, got, MaxEvents)
	for i := 1; i < len(got); i++ {
		assert.False(t, got[i].Start.Before(got[i-1].Start))
	}
	for _, ev := range got {
		assert.False(t, ev.Start.Before(from))
		assert.False(t, ev.Start.After(to))
	}
	assert.Equal(t, "e49", got[0].Title)
}
