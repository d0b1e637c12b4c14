package notification

import (
	"fmt"
	"sort"
	"time"

	"github.com/officehub/officehub-backend-go/internal/domain/notification"
	"github.com/officehub/officehub-backend-go/internal/domain/record"
	"github.com/officehub/officehub-backend-go/internal/domain/worktype"
	"github.com/officehub/officehub-backend-go/internal/pkg/validator"
)

// Inclusion windows in days. Alert fields surface close to the deadline;
// expiry fields surface a month out.
const (
	alertWindowDays  = 10
	expiryWindowDays = 30

	// expiry entries within this many days escalate from info to warning
	// on the employee view
	expiryWarningDays = 15

	// admin entries within this many days escalate from info to warning
	adminWarningDays = 7
)

// Engine derives deadline notifications from records and their schemas.
// It is a pure calculator: no storage access, no clock access (the
// caller supplies asOf), and identical inputs always produce identical
// output. Malformed data never errors; the offending record or field is
// skipped and the rest of the computation proceeds.
type Engine struct{}

func NewEngine() *Engine {
	return &Engine{}
}

// Compute derives the notification list for one view policy. Per record
// and notification-bearing field it applies the skip rules (no
// notification type, absent value, suppressed field, unparseable date,
// dangling work-type reference), computes whole calendar days remaining
// relative to asOf, and emits an entry when the field's window includes
// the date. The result is sorted ascending by days remaining; ties keep
// their encounter order (records, then schema field order).
func (e *Engine) Compute(
	records []record.WorkRecord,
	workTypes []worktype.WorkType,
	asOf time.Time,
	policy notification.ViewPolicy,
) []notification.Notification {
	typesByID := make(map[string]worktype.WorkType, len(workTypes))
	for _, wt := range workTypes {
		typesByID[wt.ID] = wt
	}

	notifications := []notification.Notification{}
	for _, rec := range records {
		wt, ok := typesByID[rec.WorkTypeID]
		if !ok {
			// work type deleted; record contributes nothing
			continue
		}
		primaryValue := rec.DisplayTitle(wt)

		for _, field := range wt.Fields {
			if field.NotificationType == worktype.NotifyNone || field.NotificationType == "" {
				continue
			}
			dateStr := rec.StringValue(field.ID)
			if dateStr == "" {
				continue
			}
			if rec.IsFieldDeactivated(field.ID) {
				continue
			}
			target, err := validator.ParseISODate(dateStr)
			if err != nil {
				// unparseable date, skip just this pair
				continue
			}
			days := daysUntil(asOf, target)

			var entry notification.Notification
			if policy == notification.PolicyAdminOverview {
				entry, ok = adminEntry(rec, wt, field, primaryValue, dateStr, days)
			} else {
				entry, ok = employeeEntry(rec, wt, field, primaryValue, dateStr, days)
			}
			if ok {
				notifications = append(notifications, entry)
			}
		}
	}

	sort.SliceStable(notifications, func(i, j int) bool {
		return notifications[i].DaysRemaining < notifications[j].DaysRemaining
	})
	return notifications
}

// adminEntry builds the compact overview entry. Both alert and expiry
// fields share one message format; severity steps urgent/warning/info.
func adminEntry(
	rec record.WorkRecord,
	wt worktype.WorkType,
	field worktype.FieldDefinition,
	primaryValue string,
	dateStr string,
	days int,
) (notification.Notification, bool) {
	include := (field.NotificationType == worktype.NotifyAlert && days <= alertWindowDays) ||
		(field.NotificationType == worktype.NotifyExpiry && days <= expiryWindowDays)
	if !include {
		return notification.Notification{}, false
	}

	severity := notification.SeverityInfo
	if days < 0 {
		severity = notification.SeverityUrgent
	} else if days <= adminWarningDays {
		severity = notification.SeverityWarning
	}

	var message string
	switch {
	case days < 0:
		message = field.Label + ": Expired"
	case days == 0:
		message = field.Label + ": Today"
	default:
		message = fmt.Sprintf("%s: %d days left", field.Label, days)
	}

	return notification.Notification{
		ID:               rec.ID + "-" + field.ID + "-admin",
		RecordID:         rec.ID,
		WorkTypeName:     wt.Name,
		PrimaryValue:     primaryValue,
		FieldID:          field.ID,
		FieldLabel:       field.Label,
		DateValue:        dateStr,
		DaysRemaining:    days,
		Severity:         severity,
		NotificationType: field.NotificationType,
		Message:          message,
	}, true
}

// employeeEntry builds the detailed per-record entry. Alert and expiry
// fields have distinct wording and severity ladders; note that a day-zero
// alert is already urgent here while the admin view keeps it warning.
func employeeEntry(
	rec record.WorkRecord,
	wt worktype.WorkType,
	field worktype.FieldDefinition,
	primaryValue string,
	dateStr string,
	days int,
) (notification.Notification, bool) {
	switch field.NotificationType {
	case worktype.NotifyAlert:
		if days > alertWindowDays {
			return notification.Notification{}, false
		}
		severity := notification.SeverityWarning
		if days <= 0 {
			severity = notification.SeverityUrgent
		}
		var message string
		switch {
		case days < 0:
			message = "Alert: " + field.Label + " was on"
		case days == 0:
			message = "Alert: " + field.Label + " is TODAY"
		default:
			message = fmt.Sprintf("Alert: %s in %d days", field.Label, days)
		}
		return notification.Notification{
			ID:               rec.ID + "-" + field.ID + "-alert",
			RecordID:         rec.ID,
			WorkTypeName:     wt.Name,
			PrimaryValue:     primaryValue,
			FieldID:          field.ID,
			FieldLabel:       field.Label,
			DateValue:        dateStr,
			DaysRemaining:    days,
			Severity:         severity,
			NotificationType: field.NotificationType,
			Message:          message,
		}, true

	case worktype.NotifyExpiry:
		if days > expiryWindowDays {
			return notification.Notification{}, false
		}
		severity := notification.SeverityInfo
		message := "Expiry: " + field.Label + " is approaching"
		switch {
		case days < 0:
			severity = notification.SeverityUrgent
			message = "Expired: " + field.Label + " has passed!"
		case days == 0:
			severity = notification.SeverityUrgent
			message = "Expiry: " + field.Label + " expires TODAY!"
		case days <= expiryWarningDays:
			severity = notification.SeverityWarning
			message = fmt.Sprintf("Expiry: %s expires in %d days", field.Label, days)
		}
		return notification.Notification{
			ID:               rec.ID + "-" + field.ID + "-expiry",
			RecordID:         rec.ID,
			WorkTypeName:     wt.Name,
			PrimaryValue:     primaryValue,
			FieldID:          field.ID,
			FieldLabel:       field.Label,
			DateValue:        dateStr,
			DaysRemaining:    days,
			Severity:         severity,
			NotificationType: field.NotificationType,
			Message:          message,
		}, true
	}

	return notification.Notification{}, false
}

// daysUntil counts whole calendar days from asOf to target. Both sides
// are rebuilt as UTC midnights first so the division is exact regardless
// of the wall-clock time or zone either value carries.
func daysUntil(asOf, target time.Time) int {
	return int(midnightUTC(target).Sub(midnightUTC(asOf)).Hours() / 24)
}

func midnightUTC(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
