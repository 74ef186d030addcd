package model

import "time"

// CalendarEvent is one near-term event taken from the upstream feed.
type CalendarEvent struct {
	Title    string     `json:"title"`
	Start    time.Time  `json:"start"`
	End      *time.Time `json:"end,omitempty"`
	Location string     `json:"location,omitempty"`
}

// CalendarCacheEntry is the persisted calendar snapshot. It is replaced wholesale on refresh.
type CalendarCacheEntry struct {
	FetchedAt time.Time       `json:"fetchedAt"`
	Events    []CalendarEvent `json:"events"`
}
