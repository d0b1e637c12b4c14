package record

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/officehub/officehub-backend-go/internal/domain/worktype"
)

func TestToggleSuppression_AddsAndRemoves(t *testing.T) {
	rec := WorkRecord{ID: "rec-1", DeactivatedFields: []string{}}

	suppressed := rec.ToggleSuppression("f-1")
	assert.True(t, suppressed.IsFieldDeactivated("f-1"))

	restored := suppressed.ToggleSuppression("f-1")
	assert.False(t, restored.IsFieldDeactivated("f-1"))
	assert.Equal(t, rec.DeactivatedFields, restored.DeactivatedFields)
}

func TestToggleSuppression_DoesNotMutateOriginal(t *testing.T) {
	rec := WorkRecord{ID: "rec-1", DeactivatedFields: []string{"f-old"}}

	updated := rec.ToggleSuppression("f-new")

	assert.Equal(t, []string{"f-old"}, rec.DeactivatedFields)
	assert.ElementsMatch(t, []string{"f-old", "f-new"}, updated.DeactivatedFields)
}

func TestToggleSuppression_OnlyTargetFieldAffected(t *testing.T) {
	rec := WorkRecord{DeactivatedFields: []string{"f-a", "f-b", "f-c"}}

	updated := rec.ToggleSuppression("f-b")

	assert.Equal(t, []string{"f-a", "f-c"}, updated.DeactivatedFields)
}

func TestToggleSuppression_StaleFieldIDIsHarmless(t *testing.T) {
	rec := WorkRecord{DeactivatedFields: []string{}}

	once := rec.ToggleSuppression("f-gone")
	twice := once.ToggleSuppression("f-gone")

	assert.Equal(t, rec.DeactivatedFields, twice.DeactivatedFields)
}

func TestDisplayTitle(t *testing.T) {
	wt := worktype.WorkType{
		Fields: []worktype.FieldDefinition{
			{ID: "f-code", Label: "Code", Type: worktype.FieldText},
			{ID: "f-name", Label: "Name", Type: worktype.FieldText, IsPrimary: true},
		},
	}

	named := WorkRecord{Data: map[string]any{"f-name": "Alpha", "f-code": "A1"}}
	assert.Equal(t, "Alpha", named.DisplayTitle(wt))

	// Missing primary value falls back to the placeholder
	blank := WorkRecord{Data: map[string]any{"f-code": "A1"}}
	assert.Equal(t, UnnamedRecord, blank.DisplayTitle(wt))

	// A schema without fields cannot name anything
	empty := WorkRecord{Data: map[string]any{}}
	assert.Equal(t, UnnamedRecord, empty.DisplayTitle(worktype.WorkType{}))
}

func TestStringValue_RendersScalars(t *testing.T) {
	rec := WorkRecord{Data: map[string]any{
		"f-text": "hello",
		"f-num":  float64(42),
		"f-dec":  float64(2.5),
		"f-bool": true,
	}}

	assert.Equal(t, "hello", rec.StringValue("f-text"))
	assert.Equal(t, "42", rec.StringValue("f-num"))
	assert.Equal(t, "2.5", rec.StringValue("f-dec"))
	assert.Equal(t, "true", rec.StringValue("f-bool"))
	assert.Equal(t, "", rec.StringValue("f-missing"))
}
