package notification

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/officehub/officehub-backend-go/internal/domain/notification"
	"github.com/officehub/officehub-backend-go/internal/domain/record"
	"github.com/officehub/officehub-backend-go/internal/domain/worktype"
	"github.com/officehub/officehub-backend-go/internal/pkg/sse"
)

const snapshotEventName = "notifications"

// snapshot carries the collections a push was computed from. Subscribers
// re-run the engine against it for their own view.
type snapshot struct {
	records   []record.WorkRecord
	workTypes []worktype.WorkType
}

type service struct {
	records   record.Repository
	workTypes worktype.Repository
	engine    *Engine
	hub       *sse.Hub
	logger    *slog.Logger
}

// NewNotificationService wires the engine to the store's change feed:
// whenever records or work types change, every connected subscriber gets
// a freshly recomputed list for its view. Nothing is cached between
// pushes; each one is an independent recomputation.
func NewNotificationService(
	records record.Repository,
	workTypes worktype.Repository,
	engine *Engine,
	hub *sse.Hub,
	logger *slog.Logger,
) notification.Service {
	s := &service{
		records:   records,
		workTypes: workTypes,
		engine:    engine,
		hub:       hub,
		logger:    logger,
	}

	records.Subscribe(func(ctx context.Context, recs []record.WorkRecord) {
		wts, err := s.workTypes.List(ctx)
		if err != nil {
			s.logger.Error("notification push skipped: load work types", "error", err)
			return
		}
		s.broadcast(snapshot{records: recs, workTypes: wts})
	})
	workTypes.Subscribe(func(ctx context.Context, wts []worktype.WorkType) {
		recs, err := s.records.List(ctx)
		if err != nil {
			s.logger.Error("notification push skipped: load records", "error", err)
			return
		}
		s.broadcast(snapshot{records: recs, workTypes: wts})
	})

	return s
}

func (s *service) broadcast(snap snapshot) {
	s.hub.Broadcast(sse.Event{
		Event: snapshotEventName,
		Data:  snap,
	})
}

func (s *service) ListNotifications(ctx context.Context, policy notification.ViewPolicy) ([]notification.Notification, error) {
	recs, err := s.records.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	wts, err := s.workTypes.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list work types: %w", err)
	}
	return s.engine.Compute(recs, wts, time.Now(), policy), nil
}

func (s *service) Subscribe(ctx context.Context, userID string, policy notification.ViewPolicy) (<-chan notification.SnapshotEvent, func(), error) {
	initial, err := s.ListNotifications(ctx, policy)
	if err != nil {
		return nil, nil, err
	}

	events, cleanup := s.hub.Subscribe(userID)
	out := make(chan notification.SnapshotEvent, 10)

	go func() {
		defer close(out)
		out <- notification.SnapshotEvent{
			Event:         snapshotEventName,
			Notifications: initial,
		}
		for event := range events {
			snap, ok := event.Data.(snapshot)
			if !ok {
				continue
			}
			list := s.engine.Compute(snap.records, snap.workTypes, time.Now(), policy)
			select {
			case out <- notification.SnapshotEvent{Event: snapshotEventName, Notifications: list}:
			default:
				// slow consumer; newer snapshots supersede dropped ones
			}
		}
	}()

	return out, cleanup, nil
}
