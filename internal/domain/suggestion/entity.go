package suggestion

// FieldSuggestion is one AI-proposed form field. The shape mirrors the
// JSON the model is asked to produce.
type FieldSuggestion struct {
	Label     string `json:"label"`
	Type      string `json:"type"`
	Required  bool   `json:"required"`
	IsExpiry  bool   `json:"isExpiry"`
	IsPrimary bool   `json:"isPrimary"`
}
