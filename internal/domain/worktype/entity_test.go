package worktype

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrimaryField(t *testing.T) {
	wt := WorkType{Fields: []FieldDefinition{
		{ID: "f-1", Label: "First"},
		{ID: "f-2", Label: "Second", IsPrimary: true},
	}}

	primary, err := wt.PrimaryField()
	require.NoError(t, err)
	assert.Equal(t, "f-2", primary.ID)
}

func TestPrimaryField_DefaultsToFirst(t *testing.T) {
	wt := WorkType{Fields: []FieldDefinition{
		{ID: "f-1", Label: "First"},
		{ID: "f-2", Label: "Second"},
	}}

	primary, err := wt.PrimaryField()
	require.NoError(t, err)
	assert.Equal(t, "f-1", primary.ID)
}

func TestPrimaryField_NoFields(t *testing.T) {
	_, err := WorkType{}.PrimaryField()
	assert.ErrorIs(t, err, ErrNoFieldsDefined)
}

func TestExpiryField_ResolutionOrder(t *testing.T) {
	// Explicit flag wins over notification types
	wt := WorkType{Fields: []FieldDefinition{
		{ID: "f-alert", NotificationType: NotifyAlert},
		{ID: "f-exp", NotificationType: NotifyExpiry},
		{ID: "f-flag", IsExpiry: true},
	}}
	field, ok := wt.ExpiryField()
	require.True(t, ok)
	assert.Equal(t, "f-flag", field.ID)

	// Without the flag, expiry notification type wins over alert
	wt = WorkType{Fields: []FieldDefinition{
		{ID: "f-alert", NotificationType: NotifyAlert},
		{ID: "f-exp", NotificationType: NotifyExpiry},
	}}
	field, ok = wt.ExpiryField()
	require.True(t, ok)
	assert.Equal(t, "f-exp", field.ID)

	// Fall back to a date field labeled as an expiry
	wt = WorkType{Fields: []FieldDefinition{
		{ID: "f-name", Type: FieldText, Label: "Name"},
		{ID: "f-date", Type: FieldDate, Label: "License Expiry"},
	}}
	field, ok = wt.ExpiryField()
	require.True(t, ok)
	assert.Equal(t, "f-date", field.ID)

	_, ok = WorkType{}.ExpiryField()
	assert.False(t, ok)
}

func TestFieldTypeAndNotificationTypeValidation(t *testing.T) {
	assert.True(t, FieldSelect.Valid())
	assert.False(t, FieldType("dropdown").Valid())
	assert.True(t, NotifyExpiry.Valid())
	assert.False(t, NotificationType("reminder").Valid())
}
