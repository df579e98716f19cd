package openai

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dan404cipher/hireaccel-v2-sub006/internal/common"
	"github.com/dan404cipher/hireaccel-v2-sub006/internal/llm"
)

// ExtractResume implements llm.Extractor using text-only chat/completions
// with a JSON-object response constraint.
func (c *Client) ExtractResume(ctx context.Context, rawText string) (map[string]any, error) {
	return c.extract(ctx, "resume",
		llm.BuildResumeSystemPrompt(), llm.BuildResumeJSONSchema(), rawText, nil)
}

// ExtractJob implements llm.Extractor for job postings. Title and description
// are hard requirements of the reply.
func (c *Client) ExtractJob(ctx context.Context, rawText string) (map[string]any, error) {
	return c.extract(ctx, "job",
		llm.BuildJobSystemPrompt(), llm.BuildJobJSONSchema(), rawText, []string{"title", "description"})
}

func (c *Client) extract(ctx context.Context, kind, system string, schema map[string]any, rawText string, required []string) (map[string]any, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.logger.Info("llm.extract.start",
		"req_id", rid,
		"kind", kind,
		"model", c.cfg.Model,
		"temp", c.cfg.Temperature,
		"text_len", len(rawText),
	)

	body := map[string]any{
		"model":           c.cfg.Model,
		"temperature":     c.cfg.Temperature,
		"response_format": map[string]any{"type": "json_object"},
		"messages": []map[string]any{
			{"role": "system", "content": system},
			{"role": "user", "content": llm.BuildUserPrompt(rawText, schema)},
		},
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	headers := map[string]string{"Authorization": "Bearer " + c.cfg.APIKey}
	raw, _, err := llm.SendJSON(ctx, c.http, endpoint, body, headers, c.logger)
	if err != nil {
		c.logger.Error("llm.extract.http_error", "req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds())
		return nil, common.NewAppError(common.ErrNoModelOutput, "completion request failed", err)
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		c.logger.Error("llm.extract.decode_error", "req_id", rid, "error", err, "raw_bytes", len(raw))
		return nil, common.NewAppError(common.ErrInvalidModelResponse, "decode completion envelope", err)
	}
	if len(cc.Choices) == 0 || strings.TrimSpace(cc.Choices[0].Message.Content) == "" {
		c.logger.Error("llm.extract.no_content", "req_id", rid, "raw", string(raw))
		return nil, common.NewAppError(common.ErrNoModelOutput, "completion returned no content", nil)
	}

	content := llm.StripCodeFence(cc.Choices[0].Message.Content)

	var payload any
	if err := json.Unmarshal([]byte(content), &payload); err != nil {
		// Log the raw content for diagnosis; callers only see the kind.
		c.logger.Error("llm.extract.invalid_json", "req_id", rid, "error", err, "content", content)
		return nil, common.NewAppError(common.ErrInvalidModelResponse, "response is not valid JSON", err)
	}
	obj, ok := payload.(map[string]any)
	if !ok {
		c.logger.Error("llm.extract.not_object", "req_id", rid, "content", content)
		return nil, common.NewAppError(common.ErrInvalidModelResponse, "response is not a JSON object", nil)
	}

	// Shape drift is diagnostic only; the normalizer owns field enforcement.
	if err := llm.ValidateAgainstSchema(schema, []byte(content)); err != nil {
		c.logger.Warn("llm.extract.schema_mismatch", "req_id", rid, "kind", kind, "error", err)
	}

	var missing []string
	for _, k := range required {
		if s, _ := obj[k].(string); strings.TrimSpace(s) == "" {
			missing = append(missing, k)
		}
	}
	if len(missing) > 0 {
		c.logger.Error("llm.extract.missing_required", "req_id", rid, "kind", kind, "fields", missing)
		return nil, common.NewAppError(common.ErrMissingRequiredFields,
			"response lacks "+strings.Join(missing, ", "), nil)
	}

	c.logger.Info("llm.extract.ok",
		"req_id", rid,
		"kind", kind,
		"keys", len(obj),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return obj, nil
}
