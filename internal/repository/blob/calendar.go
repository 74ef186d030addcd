package blob

import (
	"context"

	"campushub/internal/model"
	"campushub/internal/repository"
	"campushub/internal/storage"
)

// CalendarBlob stores the calendar snapshot under repository.KeyCalendar.
type CalendarBlob struct {
	store storage.Store
}

// NewCalendarBlob creates a new CalendarBlob repository.
func NewCalendarBlob(store storage.Store) *CalendarBlob {
	return &CalendarBlob{store: store}
}

var _ repository.CalendarCacheRepository = (*CalendarBlob)(nil)

func (r *CalendarBlob) Get(ctx context.Context) (*model.CalendarCacheEntry, error) {
	var entry model.CalendarCacheEntry
	found, err := storage.GetJSON(ctx, r.store, repository.KeyCalendar, &entry)
	if err != nil || !found {
		return nil, err
	}
	return &entry, nil
}

func (r *CalendarBlob) Save(ctx context.Context, entry *model.CalendarCacheEntry) error {
	return storage.SetJSON(ctx, r.store, repository.KeyCalendar, entry)
}
