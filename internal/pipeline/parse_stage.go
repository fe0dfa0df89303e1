package processor

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/campushr/docparser/constants"
	"github.com/campushr/docparser/internal/nlp"
	"github.com/campushr/docparser/internal/parser"
	"github.com/campushr/docparser/internal/repository"
)

type ParseStage struct {
	Logger         *slog.Logger
	JobsRepo       repository.ParseJobRepository
	FilesRepo      repository.DocumentFileRepository
	EmployeesRepo  repository.EmployeeRepository
	AppraisalsRepo repository.AppraisalRepository
	PortfoliosRepo repository.PortfolioRepository
	Recognizer     nlp.EntityRecognizer // nil disables name/address detection
}

func NewParseStage(
	logger *slog.Logger,
	jobs repository.ParseJobRepository,
	files repository.DocumentFileRepository,
	employees repository.EmployeeRepository,
	appraisals repository.AppraisalRepository,
	portfolios repository.PortfolioRepository,
	ner nlp.EntityRecognizer,
) *ParseStage {
	if logger == nil {
		logger = slog.Default()
	}
	return &ParseStage{
		Logger:         logger,
		JobsRepo:       jobs,
		FilesRepo:      files,
		EmployeesRepo:  employees,
		AppraisalsRepo: appraisals,
		PortfoliosRepo: portfolios,
		Recognizer:     ner,
	}
}

// Run executes the structuring stage for a job that already has extracted
// text. It segments the text with the job's document profile, persists the
// resulting record, and, depending on the document type, creates an
// appraisal or portfolio row or enriches the employee's contact fields.
// A parse that finds no structure still succeeds; the job is marked with
// empty_record instead of FAILED.
func (p *ParseStage) Run(ctx context.Context, jobID uuid.UUID) (uuid.UUID, error) {
	job, err := p.JobsRepo.GetByID(ctx, jobID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("load job: %w", err)
	}
	if job.Status == nil || *job.Status != string(constants.JobStatusExtractOK) || job.ExtractedText == nil {
		return job.ID, fmt.Errorf("job not ready for parse: status=%v", job.Status)
	}

	file, err := p.FilesRepo.GetByID(ctx, job.FileID)
	if err != nil {
		return job.ID, fmt.Errorf("load file: %w", err)
	}

	docType, ok := constants.ParseDocType(job.DocType)
	if !ok {
		docType = constants.Appraisal
	}
	prof := parser.ProfileFor(docType)

	p.Logger.Info("parse start",
		"job_id", job.ID, "file_id", file.ID,
		"doc_type", string(docType), "text_bytes", len(*job.ExtractedText),
	)

	rec := prof.Parse(ctx, *job.ExtractedText, p.Recognizer, p.Logger)
	raw, err := json.Marshal(rec)
	if err != nil {
		_ = p.JobsRepo.FinishFailure(ctx, job.ID, err.Error())
		return job.ID, fmt.Errorf("encode record: %w", err)
	}

	if rec.Empty() {
		p.Logger.Warn("no recognizable structure in document", "job_id", job.ID, "file_id", file.ID)
		if err := p.JobsRepo.FinishParseSuccess(ctx, job.ID, nil, raw, true); err != nil {
			return job.ID, err
		}
		return job.ID, nil
	}

	var appraisalID *uuid.UUID
	switch docType {
	case constants.Appraisal:
		appr, err := p.AppraisalsRepo.CreateFromRecord(ctx, file.EmployeeID, &rec, file.UploadedAt)
		if err != nil {
			_ = p.JobsRepo.FinishFailure(ctx, job.ID, err.Error())
			return job.ID, fmt.Errorf("create appraisal: %w", err)
		}
		appraisalID = &appr.ID
	case constants.TeachingPortfolio:
		if _, err := p.PortfoliosRepo.CreateFromRecord(ctx, file.EmployeeID, &rec); err != nil {
			_ = p.JobsRepo.FinishFailure(ctx, job.ID, err.Error())
			return job.ID, fmt.Errorf("create portfolio: %w", err)
		}
	case constants.Resume:
		if _, err := p.EmployeesRepo.EnrichContact(ctx, file.EmployeeID, rec.Contact); err != nil {
			p.Logger.Warn("contact enrichment failed", "job_id", job.ID, "employee_id", file.EmployeeID, "err", err)
		}
	}

	if err := p.JobsRepo.FinishParseSuccess(ctx, job.ID, appraisalID, raw, false); err != nil {
		return job.ID, err
	}

	p.Logger.Info("parsed document successfully",
		"job_id", job.ID, "employee_id", file.EmployeeID,
		"doc_type", string(docType),
		"ratings", len(rec.Ratings), "comments", len(rec.Comments),
	)
	return job.ID, nil
}
