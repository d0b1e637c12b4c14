package notification

import "github.com/officehub/officehub-backend-go/internal/domain/worktype"

// Severity grades how pressing a deadline entry is
type Severity string

const (
	SeverityUrgent  Severity = "urgent"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// ViewPolicy selects which audience a notification list is computed for.
// The two views use different inclusion windows, severities and wording.
type ViewPolicy string

const (
	// PolicyAdminOverview is the compact team-wide deadline list
	PolicyAdminOverview ViewPolicy = "admin_overview"
	// PolicyEmployeeDetailed is the verbose per-record list
	PolicyEmployeeDetailed ViewPolicy = "employee_detailed"
)

// Notification is a derived deadline entry. Notifications are computed on
// demand from records and work types and are never persisted; the ID is
// deterministic so recomputation yields stable identities.
type Notification struct {
	ID               string                    `json:"id"`
	RecordID         string                    `json:"recordId"`
	WorkTypeName     string                    `json:"workTypeName"`
	PrimaryValue     string                    `json:"primaryValue"`
	FieldID          string                    `json:"fieldId"`
	FieldLabel       string                    `json:"fieldLabel"`
	DateValue        string                    `json:"dateValue"`
	DaysRemaining    int                       `json:"daysRemaining"`
	Severity         Severity                  `json:"type"`
	NotificationType worktype.NotificationType `json:"notificationType"`
	Message          string                    `json:"message"`
}
