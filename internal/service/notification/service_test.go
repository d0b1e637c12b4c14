package notification

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/officehub/officehub-backend-go/internal/domain/notification"
	"github.com/officehub/officehub-backend-go/internal/domain/record"
	"github.com/officehub/officehub-backend-go/internal/domain/worktype"
	"github.com/officehub/officehub-backend-go/internal/pkg/sse"
)

type fakeRecordRepo struct {
	records  []record.WorkRecord
	onChange func(ctx context.Context, records []record.WorkRecord)
}

func (f *fakeRecordRepo) List(ctx context.Context) ([]record.WorkRecord, error) {
	return f.records, nil
}

func (f *fakeRecordRepo) GetByID(ctx context.Context, id string) (record.WorkRecord, error) {
	return record.WorkRecord{}, record.ErrRecordNotFound
}

func (f *fakeRecordRepo) Upsert(ctx context.Context, rec record.WorkRecord) error { return nil }

func (f *fakeRecordRepo) Delete(ctx context.Context, id string) error { return nil }

func (f *fakeRecordRepo) Subscribe(fn func(ctx context.Context, records []record.WorkRecord)) {
	f.onChange = fn
}

type fakeWorkTypeRepo struct {
	workTypes []worktype.WorkType
	onChange  func(ctx context.Context, workTypes []worktype.WorkType)
}

func (f *fakeWorkTypeRepo) List(ctx context.Context) ([]worktype.WorkType, error) {
	return f.workTypes, nil
}

func (f *fakeWorkTypeRepo) GetByID(ctx context.Context, id string) (worktype.WorkType, error) {
	return worktype.WorkType{}, worktype.ErrWorkTypeNotFound
}

func (f *fakeWorkTypeRepo) Upsert(ctx context.Context, wt worktype.WorkType) error { return nil }

func (f *fakeWorkTypeRepo) Delete(ctx context.Context, id string) error { return nil }

func (f *fakeWorkTypeRepo) Subscribe(fn func(ctx context.Context, workTypes []worktype.WorkType)) {
	f.onChange = fn
}

func expiringFixture(daysAhead int) ([]record.WorkRecord, []worktype.WorkType) {
	due := time.Now().UTC().AddDate(0, 0, daysAhead).Format("2006-01-02")
	wts := []worktype.WorkType{{
		ID:   "wt-1",
		Name: "Licenses",
		Fields: []worktype.FieldDefinition{
			{ID: "f-name", Label: "Name", Type: worktype.FieldText, IsPrimary: true},
			{ID: "f-until", Label: "Valid Until", Type: worktype.FieldDate, NotificationType: worktype.NotifyExpiry},
		},
	}}
	recs := []record.WorkRecord{{
		ID:         "rec-1",
		WorkTypeID: "wt-1",
		Data:       map[string]any{"f-name": "Forklift", "f-until": due},
	}}
	return recs, wts
}

func newTestService() (notification.Service, *fakeRecordRepo, *fakeWorkTypeRepo) {
	recs, wts := expiringFixture(3)
	recordRepo := &fakeRecordRepo{records: recs}
	workTypeRepo := &fakeWorkTypeRepo{workTypes: wts}
	svc := NewNotificationService(recordRepo, workTypeRepo, NewEngine(), sse.NewHub(), slog.Default())
	return svc, recordRepo, workTypeRepo
}

func receiveEvent(t *testing.T, ch <-chan notification.SnapshotEvent) notification.SnapshotEvent {
	t.Helper()
	select {
	case event, ok := <-ch:
		require.True(t, ok, "channel closed before event arrived")
		return event
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a snapshot event")
		return notification.SnapshotEvent{}
	}
}

func TestListNotifications_PolicyShapesOutput(t *testing.T) {
	svc, _, _ := newTestService()

	adminList, err := svc.ListNotifications(context.Background(), notification.PolicyAdminOverview)
	require.NoError(t, err)
	require.Len(t, adminList, 1)
	assert.Contains(t, adminList[0].Message, "days left")

	employeeList, err := svc.ListNotifications(context.Background(), notification.PolicyEmployeeDetailed)
	require.NoError(t, err)
	require.Len(t, employeeList, 1)
	assert.Contains(t, employeeList[0].Message, "expires in")
}

func TestSubscribe_DeliversInitialSnapshot(t *testing.T) {
	svc, _, _ := newTestService()

	ch, cleanup, err := svc.Subscribe(context.Background(), "user-1", notification.PolicyEmployeeDetailed)
	require.NoError(t, err)
	defer cleanup()

	event := receiveEvent(t, ch)
	assert.Equal(t, "notifications", event.Event)
	require.Len(t, event.Notifications, 1)
	assert.Equal(t, "rec-1-f-until-expiry", event.Notifications[0].ID)
}

func TestSubscribe_PushesOnCollectionChange(t *testing.T) {
	svc, recordRepo, _ := newTestService()

	ch, cleanup, err := svc.Subscribe(context.Background(), "user-1", notification.PolicyEmployeeDetailed)
	require.NoError(t, err)
	defer cleanup()

	receiveEvent(t, ch) // initial

	// A second record lands; the feed hands over the new collection
	recs, _ := expiringFixture(3)
	recs = append(recs, record.WorkRecord{
		ID:         "rec-2",
		WorkTypeID: "wt-1",
		Data:       map[string]any{"f-name": "Crane", "f-until": time.Now().UTC().Format("2006-01-02")},
	})
	recordRepo.onChange(context.Background(), recs)

	event := receiveEvent(t, ch)
	assert.Len(t, event.Notifications, 2)
}

func TestSubscribe_EachViewRecomputesIndependently(t *testing.T) {
	svc, recordRepo, _ := newTestService()

	adminCh, adminCleanup, err := svc.Subscribe(context.Background(), "admin-1", notification.PolicyAdminOverview)
	require.NoError(t, err)
	defer adminCleanup()
	employeeCh, employeeCleanup, err := svc.Subscribe(context.Background(), "emp-1", notification.PolicyEmployeeDetailed)
	require.NoError(t, err)
	defer employeeCleanup()

	receiveEvent(t, adminCh)
	receiveEvent(t, employeeCh)

	recs, _ := expiringFixture(3)
	recordRepo.onChange(context.Background(), recs)

	adminEvent := receiveEvent(t, adminCh)
	employeeEvent := receiveEvent(t, employeeCh)
	require.Len(t, adminEvent.Notifications, 1)
	require.Len(t, employeeEvent.Notifications, 1)
	assert.NotEqual(t, adminEvent.Notifications[0].Message, employeeEvent.Notifications[0].Message)
}

func TestSubscribe_WorkTypeChangeAlsoPushes(t *testing.T) {
	svc, _, workTypeRepo := newTestService()

	ch, cleanup, err := svc.Subscribe(context.Background(), "user-1", notification.PolicyEmployeeDetailed)
	require.NoError(t, err)
	defer cleanup()

	receiveEvent(t, ch) // initial

	// Schema deleted; its records stop producing notifications
	workTypeRepo.onChange(context.Background(), nil)

	event := receiveEvent(t, ch)
	assert.Empty(t, event.Notifications)
}

func TestSubscribe_CleanupClosesChannel(t *testing.T) {
	svc, _, _ := newTestService()

	ch, cleanup, err := svc.Subscribe(context.Background(), "user-1", notification.PolicyEmployeeDetailed)
	require.NoError(t, err)

	receiveEvent(t, ch)
	cleanup()

	select {
	case _, open := <-ch:
		assert.False(t, open)
	case <-time.After(2 * time.Second):
		t.Fatal("channel not closed after cleanup")
	}
}
