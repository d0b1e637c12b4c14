package worktype

import "context"

type Repository interface {
	List(ctx context.Context) ([]WorkType, error)
	GetByID(ctx context.Context, id string) (WorkType, error)
	Upsert(ctx context.Context, wt WorkType) error
	Delete(ctx context.Context, id string) error

	// Subscribe registers fn to be called with the full collection
	// contents whenever the collection changes.
	Subscribe(fn func(ctx context.Context, workTypes []WorkType))
}
