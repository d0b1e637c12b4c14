package record

import "context"

type Repository interface {
	List(ctx context.Context) ([]WorkRecord, error)
	GetByID(ctx context.Context, id string) (WorkRecord, error)
	Upsert(ctx context.Context, rec WorkRecord) error
	Delete(ctx context.Context, id string) error

	// Subscribe registers fn to be called with the full collection
	// contents whenever the collection changes.
	Subscribe(fn func(ctx context.Context, records []WorkRecord))
}
