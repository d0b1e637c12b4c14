package worktype

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/officehub/officehub-backend-go/internal/domain/suggestion"
	"github.com/officehub/officehub-backend-go/internal/domain/worktype"
	"github.com/officehub/officehub-backend-go/internal/pkg/validator"
)

type service struct {
	workTypes   worktype.Repository
	suggestions suggestion.Service
	logger      *slog.Logger
}

func NewWorkTypeService(
	workTypes worktype.Repository,
	suggestions suggestion.Service,
	logger *slog.Logger,
) worktype.Service {
	return &service{
		workTypes:   workTypes,
		suggestions: suggestions,
		logger:      logger,
	}
}

func (s *service) ListWorkTypes(ctx context.Context) ([]worktype.WorkType, error) {
	return s.workTypes.List(ctx)
}

func (s *service) GetWorkType(ctx context.Context, id string) (worktype.WorkType, error) {
	return s.workTypes.GetByID(ctx, id)
}

func (s *service) CreateWorkType(ctx context.Context, req worktype.CreateWorkTypeRequest) (worktype.WorkType, error) {
	fields := normalizeFields(req.Fields)
	if verrs := validateSchema(req.Name, fields); len(verrs) > 0 {
		return worktype.WorkType{}, fmt.Errorf("%w: %s", worktype.ErrValidationFailed, verrs.Error())
	}

	wt := worktype.WorkType{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Description: req.Description,
		Fields:      fields,
		CreatedAt:   time.Now().UnixMilli(),
	}
	if err := s.workTypes.Upsert(ctx, wt); err != nil {
		return worktype.WorkType{}, fmt.Errorf("create work type: %w", err)
	}

	s.logger.Info("work type created", "work_type_id", wt.ID, "name", wt.Name)
	return wt, nil
}

func (s *service) UpdateWorkType(ctx context.Context, id string, req worktype.UpdateWorkTypeRequest) (worktype.WorkType, error) {
	existing, err := s.workTypes.GetByID(ctx, id)
	if err != nil {
		return worktype.WorkType{}, err
	}

	fields := normalizeFields(req.Fields)
	if verrs := validateSchema(req.Name, fields); len(verrs) > 0 {
		return worktype.WorkType{}, fmt.Errorf("%w: %s", worktype.ErrValidationFailed, verrs.Error())
	}

	existing.Name = req.Name
	existing.Description = req.Description
	existing.Fields = fields
	if err := s.workTypes.Upsert(ctx, existing); err != nil {
		return worktype.WorkType{}, fmt.Errorf("update work type: %w", err)
	}
	return existing, nil
}

func (s *service) DeleteWorkType(ctx context.Context, id string) error {
	if _, err := s.workTypes.GetByID(ctx, id); err != nil {
		return err
	}
	// Records keep their workTypeId; they list under a deleted-type label
	// and stop producing notifications.
	if err := s.workTypes.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete work type: %w", err)
	}
	return nil
}

// SuggestFields asks the AI collaborator for a starter schema and maps
// the suggestions into field definitions. An expiry suggestion becomes an
// expiry-notification date field; a primary suggestion is searchable.
func (s *service) SuggestFields(ctx context.Context, name string) ([]worktype.FieldDefinition, error) {
	if validator.IsEmpty(name) {
		return nil, fmt.Errorf("%w: name is required", worktype.ErrValidationFailed)
	}

	proposals, err := s.suggestions.SuggestFields(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("suggest fields: %w", err)
	}

	fields := make([]worktype.FieldDefinition, 0, len(proposals))
	for i, p := range proposals {
		fieldType := worktype.FieldType(p.Type)
		if !fieldType.Valid() {
			fieldType = worktype.FieldText
		}
		notifType := worktype.NotifyNone
		if p.IsExpiry {
			notifType = worktype.NotifyExpiry
		}
		fields = append(fields, worktype.FieldDefinition{
			ID:               fmt.Sprintf("field-ai-%d-%s", i, uuid.New().String()[:8]),
			Label:            p.Label,
			Type:             fieldType,
			Required:         p.Required,
			NotificationType: notifType,
			IsExpiry:         p.IsExpiry,
			IsSearchable:     p.IsPrimary,
			IsPrimary:        p.IsPrimary,
		})
	}
	return fields, nil
}

// normalizeFields fills generated ids and keeps the expiry flag in sync
// with the notification type.
func normalizeFields(fields []worktype.FieldDefinition) []worktype.FieldDefinition {
	normalized := make([]worktype.FieldDefinition, len(fields))
	for i, f := range fields {
		if validator.IsEmpty(f.ID) {
			f.ID = "field-" + uuid.New().String()
		}
		if f.NotificationType == "" {
			f.NotificationType = worktype.NotifyNone
		}
		f.IsExpiry = f.NotificationType == worktype.NotifyExpiry
		if f.IsPrimary {
			f.IsSearchable = true
		}
		normalized[i] = f
	}
	return normalized
}

func validateSchema(name string, fields []worktype.FieldDefinition) validator.ValidationErrors {
	var verrs validator.ValidationErrors

	if validator.IsEmpty(name) {
		verrs = append(verrs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if len(fields) == 0 {
		verrs = append(verrs, validator.ValidationError{Field: "fields", Message: "at least one field is required"})
		return verrs
	}

	seen := make(map[string]struct{}, len(fields))
	primaries := 0
	for i, f := range fields {
		key := fmt.Sprintf("fields[%d]", i)
		if validator.IsEmpty(f.Label) {
			verrs = append(verrs, validator.ValidationError{Field: key + ".label", Message: "label is required"})
		}
		if !f.Type.Valid() {
			verrs = append(verrs, validator.ValidationError{Field: key + ".type", Message: "unknown field type"})
		}
		if !f.NotificationType.Valid() {
			verrs = append(verrs, validator.ValidationError{Field: key + ".notificationType", Message: "unknown notification type"})
		}
		if _, dup := seen[f.ID]; dup {
			verrs = append(verrs, validator.ValidationError{Field: key + ".id", Message: "duplicate field id"})
		}
		seen[f.ID] = struct{}{}
		if f.IsPrimary {
			primaries++
		}
		if f.Type == worktype.FieldSelect && len(f.Options) == 0 {
			verrs = append(verrs, validator.ValidationError{Field: key + ".options", Message: "select fields need options"})
		}
	}
	if primaries > 1 {
		verrs = append(verrs, validator.ValidationError{Field: "fields", Message: "at most one primary field"})
	}
	return verrs
}
