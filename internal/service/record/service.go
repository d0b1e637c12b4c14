package record

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/officehub/officehub-backend-go/internal/domain/record"
	"github.com/officehub/officehub-backend-go/internal/domain/worktype"
	"github.com/officehub/officehub-backend-go/internal/pkg/validator"
)

type service struct {
	records   record.Repository
	workTypes worktype.Repository
	logger    *slog.Logger
}

func NewRecordService(
	records record.Repository,
	workTypes worktype.Repository,
	logger *slog.Logger,
) record.Service {
	return &service{
		records:   records,
		workTypes: workTypes,
		logger:    logger,
	}
}

// ListRecords returns display rows, newest first, optionally filtered by
// work type and a search query. With a type selected the query matches
// its searchable fields; under "all types" it matches each record's
// primary field. Records whose work type was deleted still list, labeled
// accordingly.
func (s *service) ListRecords(ctx context.Context, req record.ListRecordsRequest) ([]record.RecordResponse, error) {
	recs, err := s.records.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	wts, err := s.workTypes.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list work types: %w", err)
	}
	typesByID := make(map[string]worktype.WorkType, len(wts))
	for _, wt := range wts {
		typesByID[wt.ID] = wt
	}

	query := strings.ToLower(strings.TrimSpace(req.Query))
	responses := []record.RecordResponse{}
	for _, rec := range recs {
		if req.WorkTypeID != "" && rec.WorkTypeID != req.WorkTypeID {
			continue
		}
		wt, known := typesByID[rec.WorkTypeID]
		if query != "" && !matchesQuery(rec, wt, known, req.WorkTypeID != "", query) {
			continue
		}
		responses = append(responses, buildResponse(rec, wt, known))
	}
	return responses, nil
}

func (s *service) GetRecord(ctx context.Context, id string) (record.RecordResponse, error) {
	rec, err := s.records.GetByID(ctx, id)
	if err != nil {
		return record.RecordResponse{}, err
	}
	wt, wtErr := s.workTypes.GetByID(ctx, rec.WorkTypeID)
	return buildResponse(rec, wt, wtErr == nil), nil
}

func (s *service) CreateRecord(ctx context.Context, employeeID string, req record.CreateRecordRequest) (record.WorkRecord, error) {
	wt, err := s.workTypes.GetByID(ctx, req.WorkTypeID)
	if err != nil {
		return record.WorkRecord{}, err
	}
	if verrs := validateData(wt, req.Data); len(verrs) > 0 {
		return record.WorkRecord{}, fmt.Errorf("%w: %s", record.ErrValidationFailed, verrs.Error())
	}

	now := time.Now().UnixMilli()
	rec := record.WorkRecord{
		ID:                uuid.New().String(),
		WorkTypeID:        wt.ID,
		EmployeeID:        employeeID,
		Data:              req.Data,
		DeactivatedFields: []string{},
		CreatedAt:         now,
		LastUpdated:       now,
	}
	if err := s.records.Upsert(ctx, rec); err != nil {
		return record.WorkRecord{}, fmt.Errorf("create record: %w", err)
	}

	s.logger.Info("record created", "record_id", rec.ID, "work_type_id", wt.ID, "employee_id", employeeID)
	return rec, nil
}

func (s *service) UpdateRecord(ctx context.Context, id string, req record.UpdateRecordRequest) (record.WorkRecord, error) {
	rec, err := s.records.GetByID(ctx, id)
	if err != nil {
		return record.WorkRecord{}, err
	}
	// Validate against the schema when it still exists; a record of a
	// deleted type can only be deleted, not edited.
	wt, err := s.workTypes.GetByID(ctx, rec.WorkTypeID)
	if err != nil {
		return record.WorkRecord{}, err
	}
	if verrs := validateData(wt, req.Data); len(verrs) > 0 {
		return record.WorkRecord{}, fmt.Errorf("%w: %s", record.ErrValidationFailed, verrs.Error())
	}

	rec.Data = req.Data
	rec.LastUpdated = time.Now().UnixMilli()
	if err := s.records.Upsert(ctx, rec); err != nil {
		return record.WorkRecord{}, fmt.Errorf("update record: %w", err)
	}
	return rec, nil
}

func (s *service) DeleteRecord(ctx context.Context, id string) error {
	if _, err := s.records.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.records.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete record: %w", err)
	}
	return nil
}

// ToggleSuppression flips per-record notification suppression for one
// field and persists the result. The field id is deliberately not
// validated against the schema.
func (s *service) ToggleSuppression(ctx context.Context, recordID string, fieldID string) (record.WorkRecord, error) {
	rec, err := s.records.GetByID(ctx, recordID)
	if err != nil {
		return record.WorkRecord{}, err
	}

	updated := rec.ToggleSuppression(fieldID)
	updated.LastUpdated = time.Now().UnixMilli()
	if err := s.records.Upsert(ctx, updated); err != nil {
		return record.WorkRecord{}, fmt.Errorf("toggle suppression: %w", err)
	}

	s.logger.Info("notification suppression toggled",
		"record_id", recordID,
		"field_id", fieldID,
		"suppressed", updated.IsFieldDeactivated(fieldID),
	)
	return updated, nil
}

func buildResponse(rec record.WorkRecord, wt worktype.WorkType, known bool) record.RecordResponse {
	resp := record.RecordResponse{
		WorkRecord:   rec,
		WorkTypeName: record.DeletedTypeName,
		DisplayTitle: record.UnnamedRecord,
	}
	if !known {
		return resp
	}
	resp.WorkTypeName = wt.Name
	resp.DisplayTitle = rec.DisplayTitle(wt)
	if expiry, ok := wt.ExpiryField(); ok {
		resp.ExpiryDate = rec.StringValue(expiry.ID)
	}
	return resp
}

func matchesQuery(rec record.WorkRecord, wt worktype.WorkType, known bool, typeSelected bool, query string) bool {
	if !known {
		return strings.Contains(strings.ToLower(record.DeletedTypeName), query)
	}
	if typeSelected {
		for _, f := range wt.SearchableFields() {
			if strings.Contains(strings.ToLower(rec.StringValue(f.ID)), query) {
				return true
			}
		}
		return false
	}
	return strings.Contains(strings.ToLower(rec.DisplayTitle(wt)), query)
}

// validateData checks submitted values against the declared field types
// so everything downstream (including notification derivation) sees
// well-shaped data.
func validateData(wt worktype.WorkType, data map[string]any) validator.ValidationErrors {
	var verrs validator.ValidationErrors

	for _, field := range wt.Fields {
		value, present := data[field.ID]
		empty := !present || value == nil
		if str, ok := value.(string); ok && validator.IsEmpty(str) {
			empty = true
		}
		if field.Required && empty {
			verrs = append(verrs, validator.ValidationError{Field: field.ID, Message: field.Label + " is required"})
			continue
		}
		if empty {
			continue
		}

		switch field.Type {
		case worktype.FieldText, worktype.FieldTextarea:
			if _, ok := value.(string); !ok {
				verrs = append(verrs, validator.ValidationError{Field: field.ID, Message: field.Label + " must be text"})
			}
		case worktype.FieldNumber:
			switch v := value.(type) {
			case float64:
				// already numeric
			case string:
				if !validator.IsNumeric(v) {
					verrs = append(verrs, validator.ValidationError{Field: field.ID, Message: field.Label + " must be a number"})
				}
			default:
				verrs = append(verrs, validator.ValidationError{Field: field.ID, Message: field.Label + " must be a number"})
			}
		case worktype.FieldDate:
			str, ok := value.(string)
			if !ok {
				verrs = append(verrs, validator.ValidationError{Field: field.ID, Message: field.Label + " must be a date string"})
				break
			}
			if _, ok := validator.IsValidDate(str); !ok {
				verrs = append(verrs, validator.ValidationError{Field: field.ID, Message: field.Label + " must be a YYYY-MM-DD date"})
			}
		case worktype.FieldSelect:
			str, ok := value.(string)
			if !ok || !validator.IsInSlice(str, field.Options) {
				verrs = append(verrs, validator.ValidationError{Field: field.ID, Message: field.Label + " must be one of the listed options"})
			}
		case worktype.FieldCheckbox:
			if _, ok := value.(bool); !ok {
				verrs = append(verrs, validator.ValidationError{Field: field.ID, Message: field.Label + " must be true or false"})
			}
		}
	}

	// Reject values for fields the schema does not declare
	for id := range data {
		if _, ok := wt.FieldByID(id); !ok {
			verrs = append(verrs, validator.ValidationError{Field: id, Message: "unknown field"})
		}
	}
	return verrs
}
