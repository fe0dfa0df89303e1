package parser

import (
	"context"
	"log/slog"
	"strings"

	"github.com/campushr/docparser/internal/nlp"
)

// applyEntities fills name and address from recognized spans. The first
// multi-token PERSON span becomes first/last name; GPE and LOC spans join
// into one comma-separated address in order of appearance. A nil recognizer
// or a recognizer error leaves the fields empty.
func applyEntities(ctx context.Context, ner nlp.EntityRecognizer, text string, c *Contact, logger *slog.Logger) {
	if ner == nil {
		return
	}
	entities, err := ner.DetectEntities(ctx, text)
	if err != nil {
		logger.Warn("parser.entities.unavailable", "error", err)
		return
	}

	var addressParts []string
	for _, ent := range entities {
		switch ent.Label {
		case nlp.LabelPerson:
			if c.FirstName != "" {
				continue
			}
			parts := strings.Fields(ent.Text)
			if len(parts) >= 2 {
				c.FirstName = parts[0]
				c.LastName = strings.Join(parts[1:], " ")
			}
		case nlp.LabelGPE, nlp.LabelLocation:
			addressParts = append(addressParts, ent.Text)
		}
	}
	c.Address = strings.Join(addressParts, ", ")
}
