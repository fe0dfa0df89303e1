package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/campushr/docparser/internal/common"
	"github.com/campushr/docparser/internal/nlp"
)

const maxNERChars = 6000

// DetectEntities implements nlp.EntityRecognizer via chat/completions with a
// JSON-schema-constrained response. Spans come back in order of appearance.
func (c *Client) DetectEntities(ctx context.Context, text string) ([]nlp.Entity, error) {
	rid := uuid.New().String()
	start := time.Now()

	if len(text) > maxNERChars {
		text = text[:maxNERChars]
	}

	c.log.Info("nlp.ner.start",
		"req_id", rid,
		"model", c.cfg.ChatModel,
		"text_len", len(text),
	)

	schema := entitiesJSONSchema()
	body := map[string]any{
		"model":           c.cfg.ChatModel,
		"temperature":     c.cfg.Temperature,
		"response_format": map[string]any{"type": "json_object"},
		"messages": []map[string]any{
			{"role": "system", "content": systemPrompt()},
			{"role": "user", "content": text + "\n\nReturn ONLY JSON that matches the provided schema."},
			{"role": "system", "content": "JSON Schema:\n" + mustJSON(schema)},
		},
	}

	raw, err := c.post(ctx, c.endpoint("/chat/completions"), body)
	if err != nil {
		c.log.Error("nlp.ner.http_error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, fmt.Errorf("ner: %v: %w", err, common.ErrCapabilityUnavailable)
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		return nil, fmt.Errorf("decode openai response: %w", err)
	}
	if len(cc.Choices) == 0 {
		return nil, fmt.Errorf("no choices in openai response")
	}
	content := []byte(strings.TrimSpace(cc.Choices[0].Message.Content))

	if err := validateJSONAgainstSchema(schema, content); err != nil {
		c.log.Error("nlp.ner.schema_validation_failed",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	var out struct {
		Entities []nlp.Entity `json:"entities"`
	}
	if err := json.Unmarshal(content, &out); err != nil {
		return nil, fmt.Errorf("unmarshal entities: %w", err)
	}

	c.log.Info("nlp.ner.ok",
		"req_id", rid,
		"entities", len(out.Entities),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out.Entities, nil
}

func systemPrompt() string {
	return strings.Join([]string{
		"You are a named-entity recognizer for HR documents.",
		"Extract PERSON, GPE and LOC spans from the user's text.",
		"List spans in order of appearance, verbatim as they occur.",
		"Return ONLY JSON matching the schema. Never output null.",
	}, " ")
}

func entitiesJSONSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"required":             []string{"entities"},
		"properties": map[string]any{
			"entities": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":                 "object",
					"additionalProperties": false,
					"required":             []string{"text", "label"},
					"properties": map[string]any{
						"text": map[string]any{"type": "string", "minLength": 1},
						"label": map[string]any{
							"type": "string",
							"enum": []string{nlp.LabelPerson, nlp.LabelGPE, nlp.LabelLocation},
						},
					},
				},
			},
		},
	}
}
