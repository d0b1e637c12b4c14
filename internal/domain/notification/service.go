package notification

import "context"

type Service interface {
	// ListNotifications recomputes the list for the given view as of now.
	ListNotifications(ctx context.Context, policy ViewPolicy) ([]Notification, error)

	// Subscribe returns a channel of full-snapshot pushes for the view
	// plus a cleanup function. An initial snapshot is delivered first;
	// later pushes follow store changes.
	Subscribe(ctx context.Context, userID string, policy ViewPolicy) (<-chan SnapshotEvent, func(), error)
}
