package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"github.com/officehub/officehub-backend-go/internal/domain/worktype"
	"github.com/officehub/officehub-backend-go/internal/pkg/database"
)

type workTypeRepository struct {
	db     *database.DB
	feed   *ChangeFeed
	logger *slog.Logger
}

func NewWorkTypeRepository(db *database.DB, feed *ChangeFeed, logger *slog.Logger) worktype.Repository {
	return &workTypeRepository{db: db, feed: feed, logger: logger}
}

func (r *workTypeRepository) List(ctx context.Context) ([]worktype.WorkType, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT doc FROM work_types ORDER BY (doc->>'createdAt')::bigint`)
	if err != nil {
		return nil, fmt.Errorf("query work types: %w", err)
	}
	defer rows.Close()

	var workTypes []worktype.WorkType
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, fmt.Errorf("scan work type: %w", err)
		}
		var wt worktype.WorkType
		if err := json.Unmarshal(doc, &wt); err != nil {
			return nil, fmt.Errorf("unmarshal work type: %w", err)
		}
		workTypes = append(workTypes, wt)
	}
	return workTypes, rows.Err()
}

func (r *workTypeRepository) GetByID(ctx context.Context, id string) (worktype.WorkType, error) {
	q := GetQuerier(ctx, r.db)

	var doc []byte
	if err := q.QueryRow(ctx, `SELECT doc FROM work_types WHERE id = $1`, id).Scan(&doc); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return worktype.WorkType{}, worktype.ErrWorkTypeNotFound
		}
		return worktype.WorkType{}, fmt.Errorf("query work type: %w", err)
	}
	var wt worktype.WorkType
	if err := json.Unmarshal(doc, &wt); err != nil {
		return worktype.WorkType{}, fmt.Errorf("unmarshal work type: %w", err)
	}
	return wt, nil
}

func (r *workTypeRepository) Upsert(ctx context.Context, wt worktype.WorkType) error {
	q := GetQuerier(ctx, r.db)

	doc, err := json.Marshal(wt)
	if err != nil {
		return fmt.Errorf("marshal work type: %w", err)
	}
	_, err = q.Exec(ctx, `
		INSERT INTO work_types (id, doc) VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET doc = EXCLUDED.doc, updated_at = now()`,
		wt.ID, doc,
	)
	if err != nil {
		return fmt.Errorf("upsert work type: %w", err)
	}
	return nil
}

func (r *workTypeRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM work_types WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete work type: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return worktype.ErrWorkTypeNotFound
	}
	return nil
}

// Subscribe re-reads the whole collection on every change notification
// and hands the full contents to fn.
func (r *workTypeRepository) Subscribe(fn func(ctx context.Context, workTypes []worktype.WorkType)) {
	r.feed.Register("work_types", func(ctx context.Context) {
		workTypes, err := r.List(ctx)
		if err != nil {
			r.logger.Error("work type snapshot re-read failed", "error", err)
			return
		}
		fn(ctx, workTypes)
	})
}
