package parser

import (
	"context"
	"log/slog"

	"github.com/campushr/docparser/constants"
	"github.com/campushr/docparser/internal/nlp"
)

// Profile binds a section catalog to the field extractors a document type
// needs. The catalog is configuration: a profile is built once and reused
// across parse calls, each call owning its own segmenter state.
type Profile struct {
	Type     constants.DocType
	Catalog  *Catalog
	Ratings  bool // scan for "<category> rating: <n>" pairs
	Comments bool // scan for comments/remarks blocks
	Contact  bool // scan for email/phone/staff no and NER name/address
}

// AppraisalProfile parses performance appraisal documents.
func AppraisalProfile() *Profile {
	return &Profile{
		Type:     constants.Appraisal,
		Catalog:  AppraisalCatalog(),
		Ratings:  true,
		Comments: true,
	}
}

// ResumeProfile parses staff resumes.
func ResumeProfile() *Profile {
	return &Profile{
		Type:    constants.Resume,
		Catalog: ResumeCatalog(),
		Contact: true,
	}
}

// PortfolioProfile parses teaching portfolio documents.
func PortfolioProfile() *Profile {
	return &Profile{
		Type:    constants.TeachingPortfolio,
		Catalog: PortfolioCatalog(),
	}
}

// ProfileFor returns the parse profile for a document type.
func ProfileFor(t constants.DocType) *Profile {
	switch t {
	case constants.Resume:
		return ResumeProfile()
	case constants.TeachingPortfolio:
		return PortfolioProfile()
	default:
		return AppraisalProfile()
	}
}

// Parse runs the section segmenter and the profile's field extractors over
// already-extracted text, merging their outputs into one Record. Field
// extractors are independent: one extractor finding nothing (or the NER
// backend being absent) never aborts the others. Parsing the same text twice
// yields the same Record.
func (p *Profile) Parse(ctx context.Context, text string, ner nlp.EntityRecognizer, logger *slog.Logger) Record {
	if logger == nil {
		logger = slog.Default()
	}
	rec := NewRecord(p.Catalog)

	Segment(text, p.Catalog, &rec)

	if p.Ratings {
		rec.Ratings = ExtractRatings(text)
	}
	if p.Comments {
		rec.Comments = ExtractComments(text)
	}
	if p.Contact {
		rec.Contact.Email = ExtractEmail(text)
		rec.Contact.Phone = ExtractPhone(text)
		rec.Contact.StaffNo = ExtractStaffNo(text)
		applyEntities(ctx, ner, text, &rec.Contact, logger)
	}

	logger.Debug("parser.parse.done",
		"doc_type", string(p.Type),
		"sections", len(rec.Sections),
		"ratings", len(rec.Ratings),
		"empty", rec.Empty(),
	)
	return rec
}
