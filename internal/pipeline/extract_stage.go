package processor

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/campushr/docparser/constants"
	"github.com/campushr/docparser/internal/extract"
	"github.com/campushr/docparser/internal/repository"
)

type ExtractStage struct {
	FilesRepo     repository.DocumentFileRepository
	JobsRepo      repository.ParseJobRepository
	TextExtractor extract.TextExtractor
	Logger        *slog.Logger
}

func NewExtractStage(files repository.DocumentFileRepository, jobs repository.ParseJobRepository, tx extract.TextExtractor, logger *slog.Logger) *ExtractStage {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExtractStage{FilesRepo: files, JobsRepo: jobs, TextExtractor: tx, Logger: logger}
}

// Run starts a parse_job, extracts text from the file, and persists it.
// Returns the job ID and the extraction summary. The parse stage is NOT called.
func (p *ExtractStage) Run(ctx context.Context, fileID uuid.UUID, docType constants.DocType) (uuid.UUID, extract.Result, error) {
	row, err := p.FilesRepo.GetByID(ctx, fileID)
	if err != nil {
		return uuid.Nil, extract.Result{}, fmt.Errorf("get file: %w", err)
	}

	format := constants.MapExtToFormat(row.FileExt)
	if format == "" {
		return uuid.Nil, extract.Result{}, fmt.Errorf("unsupported format: %s", row.FileExt)
	}

	job, err := p.JobsRepo.Start(ctx, row.ID, docType, format)
	if err != nil {
		return uuid.Nil, extract.Result{}, err
	}

	res, err := p.TextExtractor.Extract(ctx, row.SourcePath)
	if err != nil {
		_ = p.JobsRepo.FinishFailure(ctx, job.ID, err.Error())
		return job.ID, res, err
	}

	for _, w := range res.Warnings {
		p.Logger.Warn("extraction warning", "file_id", fileID, "job_id", job.ID, "warning", w)
	}

	if err := p.JobsRepo.FinishExtract(ctx, job.ID, res.Text, res.Method, res.Pages); err != nil {
		return job.ID, res, err
	}

	return job.ID, res, nil
}
