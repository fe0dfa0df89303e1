package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/campushr/docparser/internal/common"
)

const (
	maxSummaryInputChars = 12000
	maxSummaryTokens     = 300
)

// Summarize implements nlp.Summarizer via chat/completions. Portfolio
// sections run long; the summary is capped so it fits a review table cell.
func (c *Client) Summarize(ctx context.Context, text string) (string, error) {
	rid := uuid.New().String()
	start := time.Now()

	if len(text) > maxSummaryInputChars {
		text = text[:maxSummaryInputChars]
	}

	c.log.Info("nlp.summarize.start",
		"req_id", rid,
		"model", c.cfg.ChatModel,
		"text_len", len(text),
	)

	body := map[string]any{
		"model":       c.cfg.ChatModel,
		"temperature": c.cfg.Temperature,
		"max_tokens":  maxSummaryTokens,
		"messages": []map[string]any{
			{"role": "system", "content": summaryPrompt()},
			{"role": "user", "content": text},
		},
	}

	raw, err := c.post(ctx, c.endpoint("/chat/completions"), body)
	if err != nil {
		c.log.Error("nlp.summarize.http_error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return "", fmt.Errorf("summarize: %v: %w", err, common.ErrCapabilityUnavailable)
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		return "", fmt.Errorf("decode openai response: %w", err)
	}
	if len(cc.Choices) == 0 {
		return "", fmt.Errorf("no choices in openai response")
	}
	summary := strings.TrimSpace(cc.Choices[0].Message.Content)
	if summary == "" {
		return "", fmt.Errorf("empty summary in openai response")
	}

	c.log.Info("nlp.summarize.ok",
		"req_id", rid,
		"summary_len", len(summary),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return summary, nil
}

func summaryPrompt() string {
	return strings.Join([]string{
		"You summarize sections of university teaching portfolios.",
		"Write a faithful prose summary of the user's text in two to four sentences.",
		"Keep concrete course names, methods and outcomes. No preamble, no bullet points.",
	}, " ")
}
