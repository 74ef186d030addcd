package calendar

import (
	"sort"
	"time"

	"campushub/internal/model"
)

// MaxEvents is the number of events kept after filtering and sorting.
const MaxEvents = 30

// WindowDays is how many days past today the window reaches.
const WindowDays = 7

// Window returns [today 00:00:00, today+7 23:59:59.999999999] in loc.
func Window(now time.Time, loc *time.Location) (from, to time.Time) {
	local := now.In(loc)
	y, m, d := local.Date()
	from = time.Date(y, m, d, 0, 0, 0, 0, loc)
	to = time.Date(y, m, d+WindowDays, 23, 59, 59, int(time.Second-time.Nanosecond), loc)
	return from, to
}

// Upcoming keeps events starting inside the window, sorted ascending by start,
// truncated to MaxEvents.
func Upcoming(events []model.CalendarEvent, now time.Time, loc *time.Location) []model.CalendarEvent {
	from, to := Window(now, loc)

	out := make([]model.CalendarEvent, 0, len(events))
	for _, ev := range events {
		if ev.Start.Before(from) || ev.Start.After(to) {
			continue
		}
		out = append(out, ev)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Start.Before(out[j].Start)
	})

	if len(out) > MaxEvents {
		out = out[:MaxEvents]
	}
	return out
}
