package record

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/officehub/officehub-backend-go/internal/domain/record"
	"github.com/officehub/officehub-backend-go/internal/domain/worktype"
)

type fakeWorkTypeRepo struct {
	items map[string]worktype.WorkType
}

func (f *fakeWorkTypeRepo) List(ctx context.Context) ([]worktype.WorkType, error) {
	var all []worktype.WorkType
	for _, wt := range f.items {
		all = append(all, wt)
	}
	return all, nil
}

func (f *fakeWorkTypeRepo) GetByID(ctx context.Context, id string) (worktype.WorkType, error) {
	wt, ok := f.items[id]
	if !ok {
		return worktype.WorkType{}, worktype.ErrWorkTypeNotFound
	}
	return wt, nil
}

func (f *fakeWorkTypeRepo) Upsert(ctx context.Context, wt worktype.WorkType) error {
	f.items[wt.ID] = wt
	return nil
}

func (f *fakeWorkTypeRepo) Delete(ctx context.Context, id string) error {
	delete(f.items, id)
	return nil
}

func (f *fakeWorkTypeRepo) Subscribe(fn func(ctx context.Context, workTypes []worktype.WorkType)) {
}

type fakeRecordRepo struct {
	items map[string]record.WorkRecord
}

func (f *fakeRecordRepo) List(ctx context.Context) ([]record.WorkRecord, error) {
	var all []record.WorkRecord
	for _, rec := range f.items {
		all = append(all, rec)
	}
	return all, nil
}

func (f *fakeRecordRepo) GetByID(ctx context.Context, id string) (record.WorkRecord, error) {
	rec, ok := f.items[id]
	if !ok {
		return record.WorkRecord{}, record.ErrRecordNotFound
	}
	return rec, nil
}

func (f *fakeRecordRepo) Upsert(ctx context.Context, rec record.WorkRecord) error {
	f.items[rec.ID] = rec
	return nil
}

func (f *fakeRecordRepo) Delete(ctx context.Context, id string) error {
	delete(f.items, id)
	return nil
}

func (f *fakeRecordRepo) Subscribe(fn func(ctx context.Context, records []record.WorkRecord)) {
}

func permitWorkType() worktype.WorkType {
	return worktype.WorkType{
		ID:   "wt-permit",
		Name: "Permits",
		Fields: []worktype.FieldDefinition{
			{ID: "f-holder", Label: "Holder", Type: worktype.FieldText, Required: true, IsPrimary: true, IsSearchable: true},
			{ID: "f-kind", Label: "Kind", Type: worktype.FieldSelect, Options: []string{"parking", "building"}},
			{ID: "f-count", Label: "Count", Type: worktype.FieldNumber},
			{ID: "f-active", Label: "Active", Type: worktype.FieldCheckbox},
			{ID: "f-valid", Label: "Valid Until", Type: worktype.FieldDate, NotificationType: worktype.NotifyExpiry},
		},
	}
}

func newTestService() (record.Service, *fakeRecordRepo, *fakeWorkTypeRepo) {
	records := &fakeRecordRepo{items: map[string]record.WorkRecord{}}
	workTypes := &fakeWorkTypeRepo{items: map[string]worktype.WorkType{"wt-permit": permitWorkType()}}
	svc := NewRecordService(records, workTypes, slog.Default())
	return svc, records, workTypes
}

func TestCreateRecord_Valid(t *testing.T) {
	svc, records, _ := newTestService()

	rec, err := svc.CreateRecord(context.Background(), "emp-1", record.CreateRecordRequest{
		WorkTypeID: "wt-permit",
		Data: map[string]any{
			"f-holder": "Acme Ltd",
			"f-kind":   "parking",
			"f-count":  float64(3),
			"f-active": true,
			"f-valid":  "2027-01-31",
		},
	})

	require.NoError(t, err)
	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, "emp-1", rec.EmployeeID)
	assert.NotNil(t, rec.DeactivatedFields)
	assert.Empty(t, rec.DeactivatedFields)
	assert.Greater(t, rec.CreatedAt, int64(0))
	assert.Contains(t, records.items, rec.ID)
}

func TestCreateRecord_MissingRequiredField(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.CreateRecord(context.Background(), "emp-1", record.CreateRecordRequest{
		WorkTypeID: "wt-permit",
		Data:       map[string]any{"f-kind": "parking"},
	})

	assert.ErrorIs(t, err, record.ErrValidationFailed)
}

func TestCreateRecord_RejectsMistypedValues(t *testing.T) {
	svc, _, _ := newTestService()

	cases := []map[string]any{
		{"f-holder": "Acme", "f-valid": "31-01-2027"},   // wrong date format
		{"f-holder": "Acme", "f-kind": "fishing"},       // not in options
		{"f-holder": "Acme", "f-count": "not-a-number"}, // non-numeric
		{"f-holder": "Acme", "f-active": "yes"},         // checkbox wants bool
		{"f-holder": "Acme", "f-ghost": "x"},            // undeclared field
		{"f-holder": float64(7)},                        // text wants string
	}
	for i, data := range cases {
		_, err := svc.CreateRecord(context.Background(), "emp-1", record.CreateRecordRequest{
			WorkTypeID: "wt-permit",
			Data:       data,
		})
		assert.ErrorIs(t, err, record.ErrValidationFailed, "case %d", i)
	}
}

func TestCreateRecord_NumberAcceptsNumericString(t *testing.T) {
	svc, _, _ := newTestService()

	// Number inputs arrive as strings from forms
	_, err := svc.CreateRecord(context.Background(), "emp-1", record.CreateRecordRequest{
		WorkTypeID: "wt-permit",
		Data:       map[string]any{"f-holder": "Acme", "f-count": "-2.5"},
	})

	assert.NoError(t, err)
}

func TestCreateRecord_UnknownWorkType(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.CreateRecord(context.Background(), "emp-1", record.CreateRecordRequest{
		WorkTypeID: "wt-gone",
		Data:       map[string]any{},
	})

	assert.ErrorIs(t, err, worktype.ErrWorkTypeNotFound)
}

func TestToggleSuppression_PersistsAndRoundTrips(t *testing.T) {
	svc, records, _ := newTestService()
	records.items["rec-1"] = record.WorkRecord{
		ID:                "rec-1",
		WorkTypeID:        "wt-permit",
		Data:              map[string]any{"f-holder": "Acme"},
		DeactivatedFields: []string{},
	}

	suppressed, err := svc.ToggleSuppression(context.Background(), "rec-1", "f-valid")
	require.NoError(t, err)
	assert.True(t, suppressed.IsFieldDeactivated("f-valid"))
	assert.True(t, records.items["rec-1"].IsFieldDeactivated("f-valid"))

	restored, err := svc.ToggleSuppression(context.Background(), "rec-1", "f-valid")
	require.NoError(t, err)
	assert.False(t, restored.IsFieldDeactivated("f-valid"))
}

func TestToggleSuppression_RecordNotFound(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.ToggleSuppression(context.Background(), "rec-missing", "f-valid")

	assert.ErrorIs(t, err, record.ErrRecordNotFound)
}

func TestListRecords_DeletedTypeLabeled(t *testing.T) {
	svc, records, _ := newTestService()
	records.items["rec-orphan"] = record.WorkRecord{
		ID:         "rec-orphan",
		WorkTypeID: "wt-deleted",
		Data:       map[string]any{},
	}

	got, err := svc.ListRecords(context.Background(), record.ListRecordsRequest{})

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, record.DeletedTypeName, got[0].WorkTypeName)
	assert.Equal(t, record.UnnamedRecord, got[0].DisplayTitle)
}

func TestListRecords_FilterAndSearch(t *testing.T) {
	svc, records, workTypes := newTestService()
	workTypes.items["wt-other"] = worktype.WorkType{
		ID:     "wt-other",
		Name:   "Other",
		Fields: []worktype.FieldDefinition{{ID: "f-x", Label: "X", Type: worktype.FieldText}},
	}
	records.items["rec-1"] = record.WorkRecord{
		ID: "rec-1", WorkTypeID: "wt-permit",
		Data: map[string]any{"f-holder": "Acme Ltd"},
	}
	records.items["rec-2"] = record.WorkRecord{
		ID: "rec-2", WorkTypeID: "wt-permit",
		Data: map[string]any{"f-holder": "Globex"},
	}
	records.items["rec-3"] = record.WorkRecord{
		ID: "rec-3", WorkTypeID: "wt-other",
		Data: map[string]any{"f-x": "acme adjacent"},
	}

	// Type filter only
	got, err := svc.ListRecords(context.Background(), record.ListRecordsRequest{WorkTypeID: "wt-permit"})
	require.NoError(t, err)
	assert.Len(t, got, 2)

	// With a type selected, search runs over its searchable fields
	got, err = svc.ListRecords(context.Background(), record.ListRecordsRequest{WorkTypeID: "wt-permit", Query: "acme"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "rec-1", got[0].ID)

	// Under all types, search matches each record's primary field
	got, err = svc.ListRecords(context.Background(), record.ListRecordsRequest{Query: "acme"})
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestUpdateRecord_ValidatesAgainstSchema(t *testing.T) {
	svc, records, _ := newTestService()
	records.items["rec-1"] = record.WorkRecord{
		ID: "rec-1", WorkTypeID: "wt-permit",
		Data: map[string]any{"f-holder": "Acme"},
	}

	_, err := svc.UpdateRecord(context.Background(), "rec-1", record.UpdateRecordRequest{
		Data: map[string]any{"f-holder": "Acme", "f-valid": "bogus"},
	})
	assert.ErrorIs(t, err, record.ErrValidationFailed)

	updated, err := svc.UpdateRecord(context.Background(), "rec-1", record.UpdateRecordRequest{
		Data: map[string]any{"f-holder": "Acme Renewed"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Acme Renewed", updated.Data["f-holder"])
}
