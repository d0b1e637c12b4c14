package dashboard

import "context"

type Service interface {
	// GetOverview builds the admin overview; actorID is excluded from the
	// team-member count.
	GetOverview(ctx context.Context, actorID string) (Overview, error)

	// ListActivity returns the most recent records as display rows.
	// Rows submitted by actorID are labeled "You".
	ListActivity(ctx context.Context, actorID string, limit int) ([]ActivityRow, error)
}
