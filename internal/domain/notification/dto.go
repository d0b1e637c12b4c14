package notification

// ListNotificationsResponse wraps a computed notification list
type ListNotificationsResponse struct {
	Notifications []Notification `json:"notifications"`
	Total         int            `json:"total"`
}

// SnapshotEvent is one push on a live notification stream: the full
// recomputed list for the subscriber's view, last write wins.
type SnapshotEvent struct {
	Event         string         `json:"event"`
	Notifications []Notification `json:"notifications"`
}
