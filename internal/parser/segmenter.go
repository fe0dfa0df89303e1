package parser

import "strings"

// Segment walks the document line by line with a current-section cursor and
// accumulates content into the record's buckets.
//
// Rules of the walk:
//   - a line matching a catalog rule is a header transition: the buffer is
//     flushed into the previous section and the line itself is discarded;
//   - a non-matching line is appended to the current section's buffer, or
//     dropped when no header has been seen yet;
//   - buckets are cumulative: re-triggering a section later in the document
//     appends to the same bucket.
//
// A document with zero recognized headers yields all-empty buckets; that is
// not an error.
func Segment(text string, cat *Catalog, rec *Record) {
	var current string
	var buffer []string

	flush := func() {
		if current != "" && len(buffer) > 0 {
			rec.Sections[current] = append(rec.Sections[current], buffer...)
		}
		buffer = nil
	}

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if rule, ok := cat.Match(line); ok {
			flush()
			current = rule.Name
			continue
		}

		if current != "" {
			buffer = append(buffer, line)
		}
	}
	flush()
}
