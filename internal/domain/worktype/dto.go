package worktype

// CreateWorkTypeRequest carries a full schema for a new work type
type CreateWorkTypeRequest struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Fields      []FieldDefinition `json:"fields"`
}

// UpdateWorkTypeRequest replaces the schema of an existing work type
type UpdateWorkTypeRequest struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Fields      []FieldDefinition `json:"fields"`
}

// SuggestFieldsRequest asks the AI collaborator for a starter schema
type SuggestFieldsRequest struct {
	Name string `json:"name"`
}

// SuggestFieldsResponse returns ready-to-edit field definitions
type SuggestFieldsResponse struct {
	Fields []FieldDefinition `json:"fields"`
}
