package worktype

import "context"

type Service interface {
	ListWorkTypes(ctx context.Context) ([]WorkType, error)
	GetWorkType(ctx context.Context, id string) (WorkType, error)
	CreateWorkType(ctx context.Context, req CreateWorkTypeRequest) (WorkType, error)
	UpdateWorkType(ctx context.Context, id string, req UpdateWorkTypeRequest) (WorkType, error)
	DeleteWorkType(ctx context.Context, id string) error
	SuggestFields(ctx context.Context, name string) ([]FieldDefinition, error)
}
