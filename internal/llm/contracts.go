package llm

import "context"

// Extractor is the structured-extraction backend the pipeline depends on.
// Implementations return the model's JSON payload as an untrusted generic
// object; all field-level invariants are established by the normalizers.
type Extractor interface {
	ExtractResume(ctx context.Context, rawText string) (map[string]any, error)
	ExtractJob(ctx context.Context, rawText string) (map[string]any, error)
}
