package worktype

import "strings"

// FieldType enumerates the input kinds a form field can declare
type FieldType string

const (
	FieldText     FieldType = "text"
	FieldTextarea FieldType = "textarea"
	FieldNumber   FieldType = "number"
	FieldDate     FieldType = "date"
	FieldSelect   FieldType = "select"
	FieldCheckbox FieldType = "checkbox"
)

// AllFieldTypes returns all valid field types
func AllFieldTypes() []FieldType {
	return []FieldType{
		FieldText,
		FieldTextarea,
		FieldNumber,
		FieldDate,
		FieldSelect,
		FieldCheckbox,
	}
}

func (t FieldType) Valid() bool {
	for _, ft := range AllFieldTypes() {
		if t == ft {
			return true
		}
	}
	return false
}

// NotificationType declares how a date field participates in deadline
// notifications
type NotificationType string

const (
	NotifyNone   NotificationType = "none"
	NotifyAlert  NotificationType = "alert"
	NotifyExpiry NotificationType = "expiry"
)

// AllNotificationTypes returns all valid notification types
func AllNotificationTypes() []NotificationType {
	return []NotificationType{NotifyNone, NotifyAlert, NotifyExpiry}
}

func (t NotificationType) Valid() bool {
	for _, nt := range AllNotificationTypes() {
		if t == nt {
			return true
		}
	}
	return false
}

// FieldDefinition describes one field of a work-type form schema
type FieldDefinition struct {
	ID               string           `json:"id"`
	Label            string           `json:"label"`
	Type             FieldType        `json:"type"`
	Required         bool             `json:"required"`
	NotificationType NotificationType `json:"notificationType"`
	IsExpiry         bool             `json:"isExpiry"`
	IsSearchable     bool             `json:"isSearchable"`
	IsPrimary        bool             `json:"isPrimary"`
	Options          []string         `json:"options,omitempty"`
}

// WorkType is an admin-defined record category with an ordered field schema
type WorkType struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Fields      []FieldDefinition `json:"fields"`
	CreatedAt   int64             `json:"createdAt"`
}

// PrimaryField resolves the field whose value names a record: the field
// marked IsPrimary, else the first field in schema order.
func (w WorkType) PrimaryField() (FieldDefinition, error) {
	if len(w.Fields) == 0 {
		return FieldDefinition{}, ErrNoFieldsDefined
	}
	for _, f := range w.Fields {
		if f.IsPrimary {
			return f, nil
		}
	}
	return w.Fields[0], nil
}

// ExpiryField resolves the field shown in expiry columns. Resolution order:
// explicit IsExpiry flag, then expiry notification type, then alert
// notification type, then any date field labeled as an expiry.
func (w WorkType) ExpiryField() (FieldDefinition, bool) {
	for _, f := range w.Fields {
		if f.IsExpiry {
			return f, true
		}
	}
	for _, f := range w.Fields {
		if f.NotificationType == NotifyExpiry {
			return f, true
		}
	}
	for _, f := range w.Fields {
		if f.NotificationType == NotifyAlert {
			return f, true
		}
	}
	for _, f := range w.Fields {
		if f.Type == FieldDate && strings.Contains(strings.ToLower(f.Label), "expiry") {
			return f, true
		}
	}
	return FieldDefinition{}, false
}

// FieldByID looks a field up by its schema id
func (w WorkType) FieldByID(id string) (FieldDefinition, bool) {
	for _, f := range w.Fields {
		if f.ID == id {
			return f, true
		}
	}
	return FieldDefinition{}, false
}

// SearchableFields returns the fields flagged for text search
func (w WorkType) SearchableFields() []FieldDefinition {
	var fields []FieldDefinition
	for _, f := range w.Fields {
		if f.IsSearchable {
			fields = append(fields, f)
		}
	}
	return fields
}
