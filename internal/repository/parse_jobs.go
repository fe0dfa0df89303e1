package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/campushr/docparser/constants"
	"github.com/campushr/docparser/gen/ent"
	"github.com/campushr/docparser/internal/entity"
)

type ParseJobRepository interface {
	Start(ctx context.Context, fileID uuid.UUID, docType constants.DocType, format string) (*entity.ParseJob, error)
	FinishExtract(ctx context.Context, jobID uuid.UUID, text, method string, pages int) error
	FinishParseSuccess(ctx context.Context, jobID uuid.UUID, appraisalID *uuid.UUID, recordJSON []byte, emptyRecord bool) error
	FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error
	GetByID(ctx context.Context, jobID uuid.UUID) (*entity.ParseJob, error)
}

type parseJobRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewParseJobRepository(entc *ent.Client, log *slog.Logger) ParseJobRepository {
	return &parseJobRepo{ent: entc, log: log}
}

func (r *parseJobRepo) Start(ctx context.Context, fileID uuid.UUID, docType constants.DocType, format string) (*entity.ParseJob, error) {
	job, err := r.ent.ParseJob.
		Create().
		SetFileID(fileID).
		SetDocType(string(docType)).
		SetFormat(format).
		SetStatus(string(constants.JobStatusRunning)).
		Save(ctx)
	if err != nil {
		r.log.Error("parse_job start failed", "file_id", fileID, "err", err)
		return nil, err
	}
	r.log.Info("parse_job started", "job_id", job.ID, "file_id", fileID, "doc_type", docType, "format", format)
	return toParseJob(job), nil
}

func (r *parseJobRepo) FinishExtract(ctx context.Context, jobID uuid.UUID, text, method string, pages int) error {
	_, err := r.ent.ParseJob.
		UpdateOneID(jobID).
		SetExtractedText(text).
		SetExtractMethod(method).
		SetPages(pages).
		SetStatus(string(constants.JobStatusExtractOK)).
		Save(ctx)
	if err != nil {
		r.log.Error("parse_job finish(EXTRACT_OK) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Info("parse_job text extracted", "job_id", jobID, "method", method, "pages", pages)
	return nil
}

func (r *parseJobRepo) FinishParseSuccess(ctx context.Context, jobID uuid.UUID, appraisalID *uuid.UUID, recordJSON []byte, emptyRecord bool) error {
	upd := r.ent.ParseJob.
		UpdateOneID(jobID).
		SetRecordJSON(json.RawMessage(recordJSON)).
		SetEmptyRecord(emptyRecord).
		SetFinishedAt(time.Now()).
		SetStatus(string(constants.JobStatusParsed))
	if appraisalID != nil {
		upd.SetAppraisalID(*appraisalID)
	}
	_, err := upd.Save(ctx)
	if err != nil {
		r.log.Error("parse_job finish(PARSED) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Info("parse_job finished (PARSED)", "job_id", jobID, "empty_record", emptyRecord)
	return nil
}

func (r *parseJobRepo) FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error {
	_, err := r.ent.ParseJob.
		UpdateOneID(jobID).
		SetFinishedAt(time.Now()).
		SetStatus(string(constants.JobStatusFailed)).
		SetErrorMessage(message).
		Save(ctx)
	if err != nil {
		r.log.Error("parse_job finish(FAILED) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Warn("parse_job finished (FAILED)", "job_id", jobID, "error", message)
	return nil
}

func (r *parseJobRepo) GetByID(ctx context.Context, jobID uuid.UUID) (*entity.ParseJob, error) {
	job, err := r.ent.ParseJob.Get(ctx, jobID)
	if err != nil {
		return nil, err
	}
	return toParseJob(job), nil
}
