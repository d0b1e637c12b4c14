package suggestion

import "context"

// Service proposes starter fields for a new work type. Implementations
// must degrade to an empty slice (not an error) when the AI backend is
// unavailable or returns garbage.
type Service interface {
	SuggestFields(ctx context.Context, workTypeName string) ([]FieldSuggestion, error)
}
