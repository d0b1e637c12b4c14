package record

import (
	"fmt"

	"github.com/officehub/officehub-backend-go/internal/domain/worktype"
)

// UnnamedRecord is the display title used when a record has no value for
// its work type's primary field.
const UnnamedRecord = "Unnamed Record"

// DeletedTypeName labels records whose work type no longer exists.
const DeletedTypeName = "Deleted Type"

// WorkRecord is a submitted form instance. Data maps field ids to raw
// values whose shapes follow the declared field types; dates are stored
// as "YYYY-MM-DD" strings. WorkTypeID may reference a deleted work type.
type WorkRecord struct {
	ID                string         `json:"id"`
	WorkTypeID        string         `json:"workTypeId"`
	EmployeeID        string         `json:"employeeId"`
	Data              map[string]any `json:"data"`
	DeactivatedFields []string       `json:"deactivatedFields"`
	CreatedAt         int64          `json:"createdAt"`
	LastUpdated       int64          `json:"lastUpdated"`
}

// IsFieldDeactivated reports whether notifications for the field are
// suppressed on this record.
func (r WorkRecord) IsFieldDeactivated(fieldID string) bool {
	for _, id := range r.DeactivatedFields {
		if id == fieldID {
			return true
		}
	}
	return false
}

// ToggleSuppression returns a copy of the record with fieldID's presence
// in DeactivatedFields flipped. The field id is not checked against any
// schema; toggling a stale id is a harmless no-op pair. Applying the
// toggle twice restores the original set.
func (r WorkRecord) ToggleSuppression(fieldID string) WorkRecord {
	updated := r
	if r.IsFieldDeactivated(fieldID) {
		kept := make([]string, 0, len(r.DeactivatedFields)-1)
		for _, id := range r.DeactivatedFields {
			if id != fieldID {
				kept = append(kept, id)
			}
		}
		updated.DeactivatedFields = kept
		return updated
	}
	updated.DeactivatedFields = append(append([]string{}, r.DeactivatedFields...), fieldID)
	return updated
}

// StringValue returns the record's value for a field rendered as a
// string, or "" when absent.
func (r WorkRecord) StringValue(fieldID string) string {
	v, ok := r.Data[fieldID]
	if !ok || v == nil {
		return ""
	}
	switch val := v.(type) {
	case string:
		return val
	case bool:
		if val {
			return "true"
		}
		return "false"
	case float64:
		// JSON numbers decode as float64; render integers without a
		// trailing ".0"
		if val == float64(int64(val)) {
			return fmt.Sprintf("%d", int64(val))
		}
		return fmt.Sprintf("%v", val)
	default:
		return fmt.Sprintf("%v", val)
	}
}

// DisplayTitle resolves the record's human-readable name from its work
// type's primary field, falling back to a placeholder when the schema has
// no fields or the value is empty.
func (r WorkRecord) DisplayTitle(wt worktype.WorkType) string {
	primary, err := wt.PrimaryField()
	if err != nil {
		return UnnamedRecord
	}
	if v := r.StringValue(primary.ID); v != "" {
		return v
	}
	return UnnamedRecord
}
