package record

import "context"

type Service interface {
	ListRecords(ctx context.Context, req ListRecordsRequest) ([]RecordResponse, error)
	GetRecord(ctx context.Context, id string) (RecordResponse, error)
	CreateRecord(ctx context.Context, employeeID string, req CreateRecordRequest) (WorkRecord, error)
	UpdateRecord(ctx context.Context, id string, req UpdateRecordRequest) (WorkRecord, error)
	DeleteRecord(ctx context.Context, id string) error
	ToggleSuppression(ctx context.Context, recordID string, fieldID string) (WorkRecord, error)
}
