package record

// CreateRecordRequest submits a new record against a work type
type CreateRecordRequest struct {
	WorkTypeID string         `json:"workTypeId"`
	Data       map[string]any `json:"data"`
}

// UpdateRecordRequest replaces a record's data
type UpdateRecordRequest struct {
	Data map[string]any `json:"data"`
}

// ListRecordsRequest filters the record listing. An empty WorkTypeID
// means all types. Query is matched against searchable fields when a
// type is selected, otherwise against each record's primary field.
type ListRecordsRequest struct {
	WorkTypeID string
	Query      string
}

// RecordResponse is a record enriched with its resolved work-type name
// and display columns
type RecordResponse struct {
	WorkRecord
	WorkTypeName string `json:"workTypeName"`
	DisplayTitle string `json:"displayTitle"`
	ExpiryDate   string `json:"expiryDate,omitempty"`
}
