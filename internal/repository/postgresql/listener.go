package postgresql

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/officehub/officehub-backend-go/internal/pkg/database"
)

const changeChannel = "officehub_changes"

// ChangeFeed turns Postgres LISTEN/NOTIFY into per-collection change
// callbacks. Triggers NOTIFY the table name; registered handlers then
// re-read their collection, so consumers always see full contents
// rather than deltas.
type ChangeFeed struct {
	db     *database.DB
	logger *slog.Logger

	mu       sync.RWMutex
	handlers map[string][]func(ctx context.Context)

	cancel context.CancelFunc
	done   chan struct{}
}

func NewChangeFeed(db *database.DB, logger *slog.Logger) *ChangeFeed {
	return &ChangeFeed{
		db:       db,
		logger:   logger,
		handlers: make(map[string][]func(ctx context.Context)),
	}
}

// Register adds a handler for one collection (table name). Must be
// called before Start.
func (f *ChangeFeed) Register(collection string, fn func(ctx context.Context)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.handlers[collection] = append(f.handlers[collection], fn)
}

// Start begins listening in the background until Stop or parent context
// cancellation.
func (f *ChangeFeed) Start(parent context.Context) {
	ctx, cancel := context.WithCancel(parent)
	f.cancel = cancel
	f.done = make(chan struct{})

	go func() {
		defer close(f.done)
		for {
			if err := f.listen(ctx); err != nil {
				if ctx.Err() != nil {
					return
				}
				f.logger.Error("change feed disconnected, retrying", "error", err)
				select {
				case <-time.After(3 * time.Second):
				case <-ctx.Done():
					return
				}
			}
		}
	}()
}

func (f *ChangeFeed) Stop() {
	if f.cancel != nil {
		f.cancel()
		<-f.done
	}
}

// listen holds one dedicated connection and dispatches notifications
// until the connection or context dies.
func (f *ChangeFeed) listen(ctx context.Context) error {
	conn, err := f.db.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, "LISTEN "+changeChannel); err != nil {
		return err
	}
	f.logger.Info("change feed listening", "channel", changeChannel)

	for {
		notification, err := conn.Conn().WaitForNotification(ctx)
		if err != nil {
			return err
		}
		f.dispatch(ctx, notification.Payload)
	}
}

func (f *ChangeFeed) dispatch(ctx context.Context, collection string) {
	f.mu.RLock()
	handlers := f.handlers[collection]
	f.mu.RUnlock()

	for _, fn := range handlers {
		fn(ctx)
	}
}
