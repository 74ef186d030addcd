package blob

import (
	"context"

	"campushub/internal/model"
	"campushub/internal/repository"
	"campushub/internal/storage"
)

// StatusBlob stores the status document under repository.KeyStatus.
type StatusBlob struct {
	store storage.Store
}

// NewStatusBlob creates a new StatusBlob repository.
func NewStatusBlob(store storage.Store) *StatusBlob {
	return &StatusBlob{store: store}
}

var _ repository.StatusRepository = (*StatusBlob)(nil)

func (r *StatusBlob) Get(ctx context.Context) (*model.StatusDocument, bool, error) {
	var doc model.StatusDocument
	found, err := storage.GetJSON(ctx, r.store, repository.KeyStatus, &doc)
	if err != nil || !found {
		return nil, false, err
	}
	doc.Normalize()
	return &doc, true, nil
}

func (r *StatusBlob) Save(ctx context.Context, doc *model.StatusDocument) error {
	return storage.SetJSON(ctx, r.store, repository.KeyStatus, doc)
}
