package tracker

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/campushr/docparser/constants"
	"github.com/campushr/docparser/internal/nlp"
)

// Record is one appraisal's research view: two newline-delimited item blobs
// and the appraisal's creation time.
type Record struct {
	Ongoing string
	History string
	Date    time.Time
}

// Item is a tracked research item. Text is the canonical label: the
// first-seen phrasing, kept stable while later similar phrasings only move
// status and timestamp.
type Item struct {
	Text        string
	Status      constants.ResearchStatus
	LastUpdated time.Time

	record int // index of the record that last wrote this item
}

// Outcome partitions all tracked items by final status, newline-joined, in
// tracker insertion order.
type Outcome struct {
	History string
	Ongoing string
}

// Tracker follows research items across a batch of time-ordered appraisal
// records. A tracker lives for one Process call; items are never deleted
// within that lifetime.
type Tracker struct {
	matcher *nlp.Matcher
	logger  *slog.Logger
	items   []*Item // insertion order is the scan and output order
}

func New(matcher *nlp.Matcher, logger *slog.Logger) *Tracker {
	if matcher == nil {
		matcher = nlp.NewMatcher(nil, logger)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Tracker{matcher: matcher, logger: logger}
}

// Process walks the records oldest-first and resolves each item's final
// status. Within one record, history items are processed before ongoing
// ones, so an item listed under both ends up ongoing.
func (t *Tracker) Process(ctx context.Context, records []Record) Outcome {
	sorted := make([]Record, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	for ri, rec := range sorted {
		for _, item := range SplitItems(rec.History) {
			t.processItem(ctx, item, constants.ResearchHistory, rec.Date, ri)
		}
		for _, item := range SplitItems(rec.Ongoing) {
			t.processItem(ctx, item, constants.ResearchOngoing, rec.Date, ri)
		}
	}

	return t.outcome()
}

// Items exposes the tracked items in insertion order.
func (t *Tracker) Items() []Item {
	out := make([]Item, len(t.items))
	for i, it := range t.items {
		out[i] = *it
	}
	return out
}

func (t *Tracker) processItem(ctx context.Context, text string, status constants.ResearchStatus, date time.Time, record int) {
	for _, existing := range t.items {
		if !t.matcher.Similar(ctx, text, existing.Text) {
			continue
		}
		// First match wins; no multi-match merging. Across records only a
		// strictly newer one may move the item; within one record the ongoing
		// pass overrides what its own history pass just wrote, since both
		// share the record's timestamp.
		if date.After(existing.LastUpdated) || record == existing.record {
			t.logger.Debug("tracker.item.updated",
				"item", existing.Text,
				"from", string(existing.Status),
				"to", string(status),
			)
			existing.Status = status
			existing.LastUpdated = date
			existing.record = record
		}
		return
	}

	t.items = append(t.items, &Item{Text: text, Status: status, LastUpdated: date, record: record})
	t.logger.Debug("tracker.item.added", "item", text, "status", string(status))
}

func (t *Tracker) outcome() Outcome {
	var history, ongoing []string
	for _, it := range t.items {
		if it.Status == constants.ResearchHistory {
			history = append(history, it.Text)
		} else {
			ongoing = append(ongoing, it.Text)
		}
	}
	return Outcome{
		History: strings.Join(history, "\n"),
		Ongoing: strings.Join(ongoing, "\n"),
	}
}

// SplitItems breaks a newline-delimited blob into trimmed, non-empty items.
func SplitItems(text string) []string {
	if text == "" {
		return nil
	}
	var items []string
	for _, line := range strings.Split(text, "\n") {
		if item := strings.TrimSpace(line); item != "" {
			items = append(items, item)
		}
	}
	return items
}
