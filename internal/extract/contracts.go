package extract

import (
	"context"
	"time"
)

// TextExtractor is stage 1: document -> text.
type TextExtractor interface {
	Extract(ctx context.Context, path string) (Result, error)
}

// Result carries the concatenated page text plus extraction metadata.
// PageTexts keeps per-page strings in document order; a page that yielded
// nothing is an empty string, not an error.
type Result struct {
	Text      string
	PageTexts []string
	Pages     int
	Method    string // "pdf-text" | "plain-text"
	Duration  time.Duration
	Warnings  []string
}
