package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/campushr/docparser/constants"
	"github.com/campushr/docparser/internal/common"
	"github.com/campushr/docparser/internal/entity"
	"github.com/campushr/docparser/internal/ingest"
	"github.com/campushr/docparser/internal/nlp"
	"github.com/campushr/docparser/internal/parser"
	"github.com/campushr/docparser/internal/tracker"
)

// Pipeline runs the extract+parse stages for an ingested file.
type Pipeline interface {
	ProcessFile(ctx context.Context, fileID uuid.UUID, docType constants.DocType) (uuid.UUID, error)
}

// JobReader loads parse jobs for the status endpoint.
type JobReader interface {
	GetByID(ctx context.Context, jobID uuid.UUID) (*entity.ParseJob, error)
}

// StatusResolver computes an employee's research status.
type StatusResolver interface {
	ResearchStatus(ctx context.Context, employeeID uuid.UUID) (tracker.Outcome, error)
}

// Exporter produces XLSX workbooks.
type Exporter interface {
	ExportAppraisalsXLSX(ctx context.Context, employeeID uuid.UUID, from, to *time.Time) ([]byte, error)
}

// PortfolioReader loads stored portfolios for the summarize endpoint.
type PortfolioReader interface {
	GetLatestByEmployee(ctx context.Context, employeeID uuid.UUID) (*entity.TeachingPortfolio, error)
}

// Handler handles HTTP requests for the document parsing API.
type Handler struct {
	ingestor   ingest.Ingestor
	pipeline   Pipeline
	jobs       JobReader
	status     StatusResolver
	exporter   Exporter
	portfolios PortfolioReader
	summarizer nlp.Summarizer
	dbPing     func(ctx context.Context) error
	logger     *slog.Logger
}

func NewHandler(
	ingestor ingest.Ingestor,
	pipeline Pipeline,
	jobs JobReader,
	status StatusResolver,
	exporter Exporter,
	portfolios PortfolioReader,
	summarizer nlp.Summarizer,
	dbPing func(ctx context.Context) error,
	logger *slog.Logger,
) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		ingestor:   ingestor,
		pipeline:   pipeline,
		jobs:       jobs,
		status:     status,
		exporter:   exporter,
		portfolios: portfolios,
		summarizer: summarizer,
		dbPing:     dbPing,
		logger:     logger,
	}
}

// Parse handles POST /api/v1/parse. The document arrives either as a
// multipart upload or as a JSON body naming a server-side path.
func (h *Handler) Parse(c *gin.Context) {
	var req ParseRequest
	if c.ContentType() == "multipart/form-data" {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "file part is required"})
			return
		}
		dir, err := os.MkdirTemp("", "docparser-upload-")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "cannot stage upload"})
			return
		}
		// The pipeline runs synchronously below, so the staged copy can go
		// as soon as the request finishes.
		defer func() { _ = os.RemoveAll(dir) }()

		dst := filepath.Join(dir, filepath.Base(fileHeader.Filename))
		if err := c.SaveUploadedFile(fileHeader, dst); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "cannot stage upload"})
			return
		}
		req = ParseRequest{
			EmployeeID: c.PostForm("employee_id"),
			Path:       dst,
			DocType:    c.PostForm("doc_type"),
		}
	} else if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid parse request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	docType, ok := constants.ParseDocType(req.DocType)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unknown doc_type %q", req.DocType)})
		return
	}
	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid employee_id"})
		return
	}

	res, err := h.ingestor.IngestPath(c.Request.Context(), employeeID, req.Path)
	if err != nil {
		h.logger.Error("ingest failed", "path", req.Path, "error", err)
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	fileID, err := uuid.Parse(res.FileID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "bad file id"})
		return
	}

	jobID, err := h.pipeline.ProcessFile(c.Request.Context(), fileID, docType)
	if err != nil {
		// The job row carries the failure detail; report both.
		c.JSON(http.StatusUnprocessableEntity, ParseResponse{
			JobID:        jobID.String(),
			FileID:       res.FileID,
			Deduplicated: res.Deduplicated,
			Error:        err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, ParseResponse{
		JobID:        jobID.String(),
		FileID:       res.FileID,
		Deduplicated: res.Deduplicated,
	})
}

// GetJob handles GET /api/v1/jobs/:id.
func (h *Handler) GetJob(c *gin.Context) {
	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid job id"})
		return
	}

	job, err := h.jobs.GetByID(c.Request.Context(), jobID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "job not found"})
		return
	}

	c.JSON(http.StatusOK, toJobResponse(job))
}

// IngestDirectory handles POST /api/v1/ingest/directory.
func (h *Handler) IngestDirectory(c *gin.Context) {
	var req IngestDirectoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid directory ingest request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid employee_id"})
		return
	}
	docType := constants.Appraisal
	if req.DocType != "" {
		t, ok := constants.ParseDocType(req.DocType)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unknown doc_type %q", req.DocType)})
			return
		}
		docType = t
	}

	results, stats, err := h.ingestor.IngestDirectory(c.Request.Context(), employeeID, req.RootPath, req.SkipHidden)
	if err != nil {
		h.logger.Error("directory ingest failed", "root", req.RootPath, "error", err)
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	jobIDs := make([]string, 0, len(results))
	for _, r := range results {
		if r.Err != "" || r.FileID == "" {
			continue
		}
		fileID, err := uuid.Parse(r.FileID)
		if err != nil {
			continue
		}
		jobID, err := h.pipeline.ProcessFile(c.Request.Context(), fileID, docType)
		if err != nil {
			h.logger.Warn("pipeline failed for ingested file", "file_id", r.FileID, "error", err)
			continue
		}
		jobIDs = append(jobIDs, jobID.String())
	}

	h.logger.Info("directory ingested",
		"root", req.RootPath,
		"matched", stats.Matched,
		"succeeded", stats.Succeeded,
		"deduplicated", stats.Deduplicated,
		"failed", stats.Failed,
	)

	c.JSON(http.StatusOK, IngestDirectoryResponse{
		Results: results,
		Stats:   stats,
		JobIDs:  jobIDs,
	})
}

// GetResearchStatus handles GET /api/v1/employees/:id/research-status.
func (h *Handler) GetResearchStatus(c *gin.Context) {
	employeeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid employee id"})
		return
	}

	out, err := h.status.ResearchStatus(c.Request.Context(), employeeID)
	if err != nil {
		h.logger.Error("research status failed", "employee_id", employeeID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, toResearchStatusResponse(employeeID.String(), out))
}

// Summarize handles POST /api/v1/summarize. Callers pass raw text, or an
// employee plus section name to summarize the latest stored portfolio.
func (h *Handler) Summarize(c *gin.Context) {
	var req SummarizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	text := strings.TrimSpace(req.Text)
	if text == "" && req.EmployeeID != "" && req.Section != "" {
		employeeID, err := uuid.Parse(req.EmployeeID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid employee_id"})
			return
		}
		portfolio, err := h.portfolios.GetLatestByEmployee(c.Request.Context(), employeeID)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "no portfolio for employee"})
			return
		}
		text = portfolioSectionText(portfolio, req.Section)
	}
	if text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no text provided"})
		return
	}

	if h.summarizer == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "summarization backend not configured"})
		return
	}
	summary, err := h.summarizer.Summarize(c.Request.Context(), text)
	if err != nil {
		h.logger.Error("summarize failed", "error", err)
		if errors.Is(err, common.ErrCapabilityUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, SummarizeResponse{Summary: summary})
}

func portfolioSectionText(p *entity.TeachingPortfolio, section string) string {
	buckets := map[string][]string{}
	if len(p.Sections) > 0 {
		_ = json.Unmarshal(p.Sections, &buckets)
	}
	if lines, ok := buckets[section]; ok && len(lines) > 0 {
		return strings.Join(lines, "\n")
	}
	switch section {
	case parser.SectionTeachingPhilosophy:
		return p.TeachingPhilosophy
	case parser.SectionFutureGoals:
		return p.FutureTeachingGoals
	}
	return ""
}

// ExportAppraisals handles GET /api/v1/export/appraisals.
func (h *Handler) ExportAppraisals(c *gin.Context) {
	employeeID, err := uuid.Parse(c.Query("employee_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "employee_id query parameter is required"})
		return
	}

	var from, to *time.Time
	if v := c.Query("from"); v != "" {
		t, err := time.ParseInLocation("2006-01-02", v, time.UTC)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from date"})
			return
		}
		from = &t
	}
	if v := c.Query("to"); v != "" {
		t, err := time.ParseInLocation("2006-01-02", v, time.UTC)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid to date"})
			return
		}
		to = &t
	}

	data, err := h.exporter.ExportAppraisalsXLSX(c.Request.Context(), employeeID, from, to)
	if err != nil {
		h.logger.Error("export failed", "employee_id", employeeID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	filename := fmt.Sprintf("appraisals-%s.xlsx", employeeID)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

// HealthCheck handles GET /health.
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// ReadyCheck handles GET /ready. Ready means the database answers.
func (h *Handler) ReadyCheck(c *gin.Context) {
	if h.dbPing != nil {
		if err := h.dbPing(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "error": err.Error()})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
