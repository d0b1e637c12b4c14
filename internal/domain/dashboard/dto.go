package dashboard

import "github.com/officehub/officehub-backend-go/internal/domain/notification"

// Overview is the admin landing view: team-wide counts plus the
// admin-policy deadline list. CriticalDeadlines counts entries due within
// a week (or overdue).
type Overview struct {
	TeamMembers       int                         `json:"teamMembers"`
	WorkTypes         int                         `json:"workTypes"`
	TotalRecords      int                         `json:"totalRecords"`
	CriticalDeadlines int                         `json:"criticalDeadlines"`
	Notifications     []notification.Notification `json:"notifications"`
}

// ActivityRow is one line of the recent-activity table
type ActivityRow struct {
	RecordID     string `json:"recordId"`
	WorkTypeName string `json:"workTypeName"`
	DisplayTitle string `json:"displayTitle"`
	ExpiryDate   string `json:"expiryDate,omitempty"`
	SubmittedBy  string `json:"submittedBy"`
	CreatedAt    int64  `json:"createdAt"`
}
