package port

import (
	"context"
	"encoding/json"
)

// ExtractInput carries normalized document text to the extraction provider.
type ExtractInput struct {
	DocumentText string
}

// ExtractOutput contains the raw structured result from the LLM extractor.
type ExtractOutput struct {
	// Fields is the JSON object returned by the model, before normalization.
	Fields     json.RawMessage
	ModelUsed  string
	PromptUsed string
}

// FieldExtractor abstracts LLM-based structured field extraction.
type FieldExtractor interface {
	Extract(ctx context.Context, input ExtractInput) (*ExtractOutput, error)
}
