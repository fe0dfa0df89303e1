package api

import (
	"time"

	"github.com/campushr/docparser/internal/entity"
	"github.com/campushr/docparser/internal/ingest"
	"github.com/campushr/docparser/internal/tracker"
)

// ParseRequest asks the daemon to ingest one document and run it through
// the pipeline.
type ParseRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
	Path       string `json:"path" binding:"required"`
	DocType    string `json:"doc_type" binding:"required"`
}

// ParseResponse reports the job created for a parse request.
type ParseResponse struct {
	JobID        string `json:"job_id"`
	FileID       string `json:"file_id"`
	Deduplicated bool   `json:"deduplicated"`
	Error        string `json:"error,omitempty"`
}

// JobResponse is the API view of a parse job.
type JobResponse struct {
	ID           string     `json:"id"`
	FileID       string     `json:"file_id"`
	AppraisalID  *string    `json:"appraisal_id,omitempty"`
	DocType      string     `json:"doc_type"`
	Format       string     `json:"format"`
	Status       string     `json:"status"`
	StartedAt    time.Time  `json:"started_at"`
	FinishedAt   *time.Time `json:"finished_at,omitempty"`
	ErrorMessage string     `json:"error_message,omitempty"`
	Pages        *int       `json:"pages,omitempty"`
	EmptyRecord  bool       `json:"empty_record"`
}

// IngestDirectoryRequest asks the daemon to walk a directory for an employee.
type IngestDirectoryRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
	RootPath   string `json:"root_path" binding:"required"`
	DocType    string `json:"doc_type"`
	SkipHidden bool   `json:"skip_hidden"`
}

// IngestDirectoryResponse reports per-file and aggregate ingest outcomes.
type IngestDirectoryResponse struct {
	Results []ingest.IngestionResult `json:"results"`
	Stats   ingest.DirStats          `json:"stats"`
	JobIDs  []string                 `json:"job_ids"`
}

// SummarizeRequest carries either raw text or a pointer to a stored
// portfolio section.
type SummarizeRequest struct {
	Text       string `json:"text"`
	EmployeeID string `json:"employee_id"`
	Section    string `json:"section"`
}

// SummarizeResponse carries the condensed text.
type SummarizeResponse struct {
	Summary string `json:"summary"`
}

// ResearchStatusResponse is the partitioned research outcome for an employee.
type ResearchStatusResponse struct {
	EmployeeID string `json:"employee_id"`
	Ongoing    string `json:"ongoing_research"`
	History    string `json:"research_history"`
}

func toJobResponse(j *entity.ParseJob) JobResponse {
	out := JobResponse{
		ID:          j.ID.String(),
		FileID:      j.FileID.String(),
		DocType:     j.DocType,
		Format:      j.Format,
		StartedAt:   j.StartedAt,
		FinishedAt:  j.FinishedAt,
		Pages:       j.Pages,
		EmptyRecord: j.EmptyRecord,
	}
	if j.AppraisalID != nil {
		s := j.AppraisalID.String()
		out.AppraisalID = &s
	}
	if j.Status != nil {
		out.Status = *j.Status
	}
	if j.ErrorMessage != nil {
		out.ErrorMessage = *j.ErrorMessage
	}
	return out
}

func toResearchStatusResponse(employeeID string, o tracker.Outcome) ResearchStatusResponse {
	return ResearchStatusResponse{
		EmployeeID: employeeID,
		Ongoing:    o.Ongoing,
		History:    o.History,
	}
}
