package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/officehub/officehub-backend-go/internal/domain/dashboard"
	domainnotification "github.com/officehub/officehub-backend-go/internal/domain/notification"
	"github.com/officehub/officehub-backend-go/internal/domain/record"
	"github.com/officehub/officehub-backend-go/internal/domain/user"
	"github.com/officehub/officehub-backend-go/internal/domain/worktype"
	"github.com/officehub/officehub-backend-go/internal/service/notification"
)

const criticalDeadlineDays = 7

type service struct {
	users     user.Repository
	workTypes worktype.Repository
	records   record.Repository
	engine    *notification.Engine
	logger    *slog.Logger
}

func NewDashboardService(
	users user.Repository,
	workTypes worktype.Repository,
	records record.Repository,
	engine *notification.Engine,
	logger *slog.Logger,
) dashboard.Service {
	return &service{
		users:     users,
		workTypes: workTypes,
		records:   records,
		engine:    engine,
		logger:    logger,
	}
}

func (s *service) GetOverview(ctx context.Context, actorID string) (dashboard.Overview, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return dashboard.Overview{}, fmt.Errorf("list users: %w", err)
	}
	wts, err := s.workTypes.List(ctx)
	if err != nil {
		return dashboard.Overview{}, fmt.Errorf("list work types: %w", err)
	}
	recs, err := s.records.List(ctx)
	if err != nil {
		return dashboard.Overview{}, fmt.Errorf("list records: %w", err)
	}

	notifications := s.engine.Compute(recs, wts, time.Now(), domainnotification.PolicyAdminOverview)
	critical := 0
	for _, n := range notifications {
		if n.DaysRemaining <= criticalDeadlineDays {
			critical++
		}
	}

	teamMembers := 0
	for _, u := range users {
		if u.ID != actorID {
			teamMembers++
		}
	}

	return dashboard.Overview{
		TeamMembers:       teamMembers,
		WorkTypes:         len(wts),
		TotalRecords:      len(recs),
		CriticalDeadlines: critical,
		Notifications:     notifications,
	}, nil
}

func (s *service) ListActivity(ctx context.Context, actorID string, limit int) ([]dashboard.ActivityRow, error) {
	recs, err := s.records.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	wts, err := s.workTypes.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list work types: %w", err)
	}
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	typesByID := make(map[string]worktype.WorkType, len(wts))
	for _, wt := range wts {
		typesByID[wt.ID] = wt
	}
	namesByID := make(map[string]string, len(users))
	for _, u := range users {
		namesByID[u.ID] = u.Name
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].CreatedAt > recs[j].CreatedAt
	})
	if limit > 0 && len(recs) > limit {
		recs = recs[:limit]
	}

	rows := make([]dashboard.ActivityRow, 0, len(recs))
	for _, rec := range recs {
		row := dashboard.ActivityRow{
			RecordID:     rec.ID,
			WorkTypeName: record.DeletedTypeName,
			DisplayTitle: record.UnnamedRecord,
			SubmittedBy:  namesByID[rec.EmployeeID],
			CreatedAt:    rec.CreatedAt,
		}
		if rec.EmployeeID == actorID {
			row.SubmittedBy = "You"
		} else if row.SubmittedBy == "" {
			row.SubmittedBy = "Unknown"
		}
		if wt, ok := typesByID[rec.WorkTypeID]; ok {
			row.WorkTypeName = wt.Name
			row.DisplayTitle = rec.DisplayTitle(wt)
			if expiry, ok := wt.ExpiryField(); ok {
				row.ExpiryDate = rec.StringValue(expiry.ID)
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
