package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/campushr/docparser/internal/common"
)

// Similarity implements nlp.SimilarityScorer as the cosine similarity of the
// two texts' embeddings, mapped into [0,1].
func (c *Client) Similarity(ctx context.Context, a, b string) (float64, error) {
	start := time.Now()

	body := map[string]any{
		"model": c.cfg.EmbeddingModel,
		"input": []string{a, b},
	}
	raw, err := c.post(ctx, c.endpoint("/embeddings"), body)
	if err != nil {
		return 0, fmt.Errorf("embeddings: %v: %w", err, common.ErrCapabilityUnavailable)
	}

	var er struct {
		Data []struct {
			Embedding []float64 `json:"embedding"`
		} `json:"data"`
	}
	if err := json.Unmarshal(raw, &er); err != nil {
		return 0, fmt.Errorf("decode embeddings response: %w", err)
	}
	if len(er.Data) != 2 {
		return 0, fmt.Errorf("expected 2 embeddings, got %d", len(er.Data))
	}

	score := (cosine(er.Data[0].Embedding, er.Data[1].Embedding) + 1) / 2

	c.log.Debug("nlp.embed.ok",
		"model", c.cfg.EmbeddingModel,
		"score", score,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return score, nil
}

func cosine(x, y []float64) float64 {
	if len(x) != len(y) || len(x) == 0 {
		return 0
	}
	var dot, nx, ny float64
	for i := range x {
		dot += x[i] * y[i]
		nx += x[i] * x[i]
		ny += y[i] * y[i]
	}
	if nx == 0 || ny == 0 {
		return 0
	}
	return dot / (math.Sqrt(nx) * math.Sqrt(ny))
}
