package processor

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/campushr/docparser/constants"
	"github.com/campushr/docparser/internal/common"
)

// Processor coordinates text extraction then record structuring.
type Processor struct {
	Logger  *slog.Logger
	Extract *ExtractStage
	Parse   *ParseStage
}

func NewProcessor(logger *slog.Logger, extract *ExtractStage, parse *ParseStage) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{Logger: logger, Extract: extract, Parse: parse}
}

// ProcessFile runs extraction for a fileID (creating/advancing parse_job),
// then structures the extracted text into a record and persists it.
// Returns the final jobID (same one started by extraction).
func (p *Processor) ProcessFile(ctx context.Context, fileID uuid.UUID, docType constants.DocType) (uuid.UUID, error) {
	logger := p.Logger
	if rid := common.RequestIDFromContext(ctx); rid != "" {
		logger = logger.With("request_id", rid)
	}

	jobID, res, err := p.Extract.Run(ctx, fileID, docType)
	if err != nil {
		logger.Error("processor.extract.failed", "file_id", fileID, "err", err)
		return jobID, err
	}
	logger.Info("processor.extract.ok",
		"file_id", fileID,
		"job_id", jobID,
		"method", res.Method,
		"pages", res.Pages,
	)

	if _, err := p.Parse.Run(ctx, jobID); err != nil {
		logger.Error("processor.parse.failed", "job_id", jobID, "err", err)
		return jobID, err
	}
	logger.Info("processor.parse.ok", "job_id", jobID)
	return jobID, nil
}
