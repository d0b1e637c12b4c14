package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"github.com/officehub/officehub-backend-go/internal/domain/record"
	"github.com/officehub/officehub-backend-go/internal/pkg/database"
)

type recordRepository struct {
	db     *database.DB
	feed   *ChangeFeed
	logger *slog.Logger
}

func NewRecordRepository(db *database.DB, feed *ChangeFeed, logger *slog.Logger) record.Repository {
	return &recordRepository{db: db, feed: feed, logger: logger}
}

func (r *recordRepository) List(ctx context.Context) ([]record.WorkRecord, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT doc FROM work_records ORDER BY (doc->>'createdAt')::bigint DESC`)
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}
	defer rows.Close()

	var records []record.WorkRecord
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		rec, err := unmarshalRecord(doc)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *recordRepository) GetByID(ctx context.Context, id string) (record.WorkRecord, error) {
	q := GetQuerier(ctx, r.db)

	var doc []byte
	if err := q.QueryRow(ctx, `SELECT doc FROM work_records WHERE id = $1`, id).Scan(&doc); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return record.WorkRecord{}, record.ErrRecordNotFound
		}
		return record.WorkRecord{}, fmt.Errorf("query record: %w", err)
	}
	return unmarshalRecord(doc)
}

func (r *recordRepository) Upsert(ctx context.Context, rec record.WorkRecord) error {
	q := GetQuerier(ctx, r.db)

	doc, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}
	_, err = q.Exec(ctx, `
		INSERT INTO work_records (id, doc) VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET doc = EXCLUDED.doc, updated_at = now()`,
		rec.ID, doc,
	)
	if err != nil {
		return fmt.Errorf("upsert record: %w", err)
	}
	return nil
}

func (r *recordRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM work_records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return record.ErrRecordNotFound
	}
	return nil
}

// Subscribe re-reads the whole collection on every change notification
// and hands the full contents to fn.
func (r *recordRepository) Subscribe(fn func(ctx context.Context, records []record.WorkRecord)) {
	r.feed.Register("work_records", func(ctx context.Context) {
		records, err := r.List(ctx)
		if err != nil {
			r.logger.Error("record snapshot re-read failed", "error", err)
			return
		}
		fn(ctx, records)
	})
}

// unmarshalRecord decodes a stored doc, normalizing legacy documents
// that predate the deactivatedFields key to an empty set.
func unmarshalRecord(doc []byte) (record.WorkRecord, error) {
	var rec record.WorkRecord
	if err := json.Unmarshal(doc, &rec); err != nil {
		return record.WorkRecord{}, fmt.Errorf("unmarshal record: %w", err)
	}
	if rec.DeactivatedFields == nil {
		rec.DeactivatedFields = []string{}
	}
	if rec.Data == nil {
		rec.Data = map[string]any{}
	}
	return rec, nil
}
