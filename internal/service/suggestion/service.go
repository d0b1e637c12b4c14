package suggestion

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/officehub/officehub-backend-go/internal/domain/suggestion"
	"github.com/officehub/officehub-backend-go/internal/pkg/genai"
)

type service struct {
	client *genai.Client
	logger *slog.Logger
}

func NewSuggestionService(client *genai.Client, logger *slog.Logger) suggestion.Service {
	return &service{client: client, logger: logger}
}

// SuggestFields asks the model for a starter schema. Every failure mode
// (no API key, transport error, malformed output) degrades to an empty
// list: suggestions are a convenience, never a hard dependency.
func (s *service) SuggestFields(ctx context.Context, workTypeName string) ([]suggestion.FieldSuggestion, error) {
	if !s.client.Configured() {
		s.logger.Debug("field suggestions disabled: no api key")
		return []suggestion.FieldSuggestion{}, nil
	}

	raw, err := s.client.GenerateJSON(ctx, buildPrompt(workTypeName))
	if err != nil {
		s.logger.Warn("field suggestion request failed", "work_type", workTypeName, "error", err)
		return []suggestion.FieldSuggestion{}, nil
	}

	var proposals []suggestion.FieldSuggestion
	if err := json.Unmarshal(raw, &proposals); err != nil {
		s.logger.Warn("field suggestion response unparseable", "work_type", workTypeName, "error", err)
		return []suggestion.FieldSuggestion{}, nil
	}
	if proposals == nil {
		proposals = []suggestion.FieldSuggestion{}
	}
	return proposals, nil
}

func buildPrompt(workTypeName string) string {
	return fmt.Sprintf(`I am building a database table for a professional office task called "%s". `+
		`Suggest a JSON list of 5-8 essential fields for this form. `+
		`Each item must be an object with keys: `+
		`"label" (string), "type" (one of: "text", "number", "date", "select"), `+
		`"required" (boolean), "isExpiry" (boolean, true if the field is an expiration date), `+
		`"isPrimary" (boolean, true for the single field that best identifies a record). `+
		`Respond with the JSON array only.`, workTypeName)
}
