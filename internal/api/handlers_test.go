package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushr/docparser/constants"
	"github.com/campushr/docparser/internal/entity"
	"github.com/campushr/docparser/internal/ingest"
	"github.com/campushr/docparser/internal/tracker"
)

type mockIngestor struct {
	result ingest.IngestionResult
	err    error
}

func (m *mockIngestor) IngestPath(context.Context, uuid.UUID, string) (ingest.IngestionResult, error) {
	return m.result, m.err
}

func (m *mockIngestor) IngestDirectory(context.Context, uuid.UUID, string, bool) ([]ingest.IngestionResult, ingest.DirStats, error) {
	if m.err != nil {
		return nil, ingest.DirStats{}, m.err
	}
	return []ingest.IngestionResult{m.result}, ingest.DirStats{Scanned: 1, Matched: 1, Succeeded: 1}, nil
}

type mockPipeline struct {
	jobID uuid.UUID
	err   error
	calls int
}

func (m *mockPipeline) ProcessFile(context.Context, uuid.UUID, constants.DocType) (uuid.UUID, error) {
	m.calls++
	return m.jobID, m.err
}

type mockJobReader struct {
	job *entity.ParseJob
	err error
}

func (m *mockJobReader) GetByID(context.Context, uuid.UUID) (*entity.ParseJob, error) {
	return m.job, m.err
}

type mockStatusResolver struct {
	out tracker.Outcome
	err error
}

func (m *mockStatusResolver) ResearchStatus(context.Context, uuid.UUID) (tracker.Outcome, error) {
	return m.out, m.err
}

type mockExporter struct {
	data []byte
	err  error
}

func (m *mockExporter) ExportAppraisalsXLSX(context.Context, uuid.UUID, *time.Time, *time.Time) ([]byte, error) {
	return m.data, m.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func setupRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	SetupRoutes(router, h)
	return router
}

func TestHealthCheck(t *testing.T) {
	h := NewHandler(nil, nil, nil, nil, nil, nil, nil, nil, testLogger())
	router := setupRouter(h)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestReadyCheckReportsDBFailure(t *testing.T) {
	h := NewHandler(nil, nil, nil, nil, nil, nil, nil, func(context.Context) error {
		return errors.New("connection refused")
	}, testLogger())
	router := setupRouter(h)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/ready", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestParseSuccess(t *testing.T) {
	fileID := uuid.New()
	jobID := uuid.New()
	ing := &mockIngestor{result: ingest.IngestionResult{FileID: fileID.String()}}
	pipe := &mockPipeline{jobID: jobID}
	h := NewHandler(ing, pipe, nil, nil, nil, nil, nil, nil, testLogger())
	router := setupRouter(h)

	body, _ := json.Marshal(ParseRequest{
		EmployeeID: uuid.New().String(),
		Path:       "/drop/appraisal.pdf",
		DocType:    "appraisal",
	})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/parse", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	var resp ParseResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, jobID.String(), resp.JobID)
	assert.Equal(t, fileID.String(), resp.FileID)
	assert.Equal(t, 1, pipe.calls)
}

func TestParseRejectsUnknownDocType(t *testing.T) {
	h := NewHandler(&mockIngestor{}, &mockPipeline{}, nil, nil, nil, nil, nil, nil, testLogger())
	router := setupRouter(h)

	body, _ := json.Marshal(ParseRequest{
		EmployeeID: uuid.New().String(),
		Path:       "/drop/x.pdf",
		DocType:    "invoice",
	})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/parse", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestParseIngestFailure(t *testing.T) {
	ing := &mockIngestor{err: errors.New("unsupported or missing extension")}
	h := NewHandler(ing, &mockPipeline{}, nil, nil, nil, nil, nil, nil, testLogger())
	router := setupRouter(h)

	body, _ := json.Marshal(ParseRequest{
		EmployeeID: uuid.New().String(),
		Path:       "/drop/x.exe",
		DocType:    "appraisal",
	})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/parse", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestGetJob(t *testing.T) {
	jobID := uuid.New()
	status := string(constants.JobStatusParsed)
	jobs := &mockJobReader{job: &entity.ParseJob{
		ID:      jobID,
		FileID:  uuid.New(),
		DocType: string(constants.Appraisal),
		Format:  "PDF",
		Status:  &status,
	}}
	h := NewHandler(nil, nil, jobs, nil, nil, nil, nil, nil, testLogger())
	router := setupRouter(h)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/jobs/"+jobID.String(), nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp JobResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, jobID.String(), resp.ID)
	assert.Equal(t, "PARSED", resp.Status)
}

func TestGetJobInvalidID(t *testing.T) {
	h := NewHandler(nil, nil, &mockJobReader{}, nil, nil, nil, nil, nil, testLogger())
	router := setupRouter(h)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/jobs/not-a-uuid", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetResearchStatus(t *testing.T) {
	resolver := &mockStatusResolver{out: tracker.Outcome{
		Ongoing: "Thesis on solar cells",
		History: "Survey of battery storage",
	}}
	h := NewHandler(nil, nil, nil, resolver, nil, nil, nil, nil, testLogger())
	router := setupRouter(h)

	employeeID := uuid.New()
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/employees/"+employeeID.String()+"/research-status", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp ResearchStatusResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, employeeID.String(), resp.EmployeeID)
	assert.Equal(t, "Thesis on solar cells", resp.Ongoing)
	assert.Equal(t, "Survey of battery storage", resp.History)
}

func TestIngestDirectory(t *testing.T) {
	fileID := uuid.New()
	ing := &mockIngestor{result: ingest.IngestionResult{FileID: fileID.String()}}
	pipe := &mockPipeline{jobID: uuid.New()}
	h := NewHandler(ing, pipe, nil, nil, nil, nil, nil, nil, testLogger())
	router := setupRouter(h)

	body, _ := json.Marshal(IngestDirectoryRequest{
		EmployeeID: uuid.New().String(),
		RootPath:   "/drop/import",
	})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/ingest/directory", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp IngestDirectoryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.JobIDs, 1)
	assert.Equal(t, uint32(1), resp.Stats.Succeeded)
}

func TestExportAppraisals(t *testing.T) {
	exp := &mockExporter{data: []byte("xlsx-bytes")}
	h := NewHandler(nil, nil, nil, nil, exp, nil, nil, nil, testLogger())
	router := setupRouter(h)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/export/appraisals?employee_id="+uuid.New().String(), nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "xlsx-bytes", w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
}

func TestExportAppraisalsRequiresEmployee(t *testing.T) {
	h := NewHandler(nil, nil, nil, nil, &mockExporter{}, nil, nil, nil, testLogger())
	router := setupRouter(h)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/export/appraisals", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

type mockSummarizer struct {
	summary string
	err     error
	gotText string
}

func (m *mockSummarizer) Summarize(_ context.Context, text string) (string, error) {
	m.gotText = text
	return m.summary, m.err
}

type mockPortfolioReader struct {
	portfolio *entity.TeachingPortfolio
	err       error
}

func (m *mockPortfolioReader) GetLatestByEmployee(context.Context, uuid.UUID) (*entity.TeachingPortfolio, error) {
	return m.portfolio, m.err
}

func TestSummarizeText(t *testing.T) {
	sum := &mockSummarizer{summary: "A concise account of the teaching record."}
	h := NewHandler(nil, nil, nil, nil, nil, nil, sum, nil, testLogger())
	router := setupRouter(h)

	body, _ := json.Marshal(SummarizeRequest{Text: "Long portfolio prose about courses and outcomes."})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/summarize", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp SummarizeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "A concise account of the teaching record.", resp.Summary)
}

func TestSummarizePortfolioSection(t *testing.T) {
	portfolios := &mockPortfolioReader{portfolio: &entity.TeachingPortfolio{
		Sections: []byte(`{"teaching_philosophy":["Students learn by doing.","Feedback early and often."]}`),
	}}
	sum := &mockSummarizer{summary: "Hands-on, feedback-driven teaching."}
	h := NewHandler(nil, nil, nil, nil, nil, portfolios, sum, nil, testLogger())
	router := setupRouter(h)

	body, _ := json.Marshal(SummarizeRequest{
		EmployeeID: uuid.New().String(),
		Section:    "teaching_philosophy",
	})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/summarize", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Students learn by doing.\nFeedback early and often.", sum.gotText)
}

func TestSummarizeWithoutBackend(t *testing.T) {
	h := NewHandler(nil, nil, nil, nil, nil, nil, nil, nil, testLogger())
	router := setupRouter(h)

	body, _ := json.Marshal(SummarizeRequest{Text: "Some text"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/summarize", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestSummarizeRequiresText(t *testing.T) {
	h := NewHandler(nil, nil, nil, nil, nil, nil, &mockSummarizer{}, nil, testLogger())
	router := setupRouter(h)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/summarize", bytes.NewBufferString("{}"))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestParseMultipartUpload(t *testing.T) {
	fileID := uuid.New()
	ing := &mockIngestor{result: ingest.IngestionResult{FileID: fileID.String()}}
	pipe := &mockPipeline{jobID: uuid.New()}
	h := NewHandler(ing, pipe, nil, nil, nil, nil, nil, nil, testLogger())
	router := setupRouter(h)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("employee_id", uuid.New().String()))
	require.NoError(t, mw.WriteField("doc_type", "appraisal"))
	part, err := mw.CreateFormFile("file", "appraisal.pdf")
	require.NoError(t, err)
	_, err = part.Write([]byte("%PDF-1.4 test"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/parse", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	var resp ParseResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, fileID.String(), resp.FileID)
	assert.Equal(t, 1, pipe.calls)
}

func TestParseMultipartMissingFile(t *testing.T) {
	h := NewHandler(&mockIngestor{}, &mockPipeline{}, nil, nil, nil, nil, nil, nil, testLogger())
	router := setupRouter(h)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("employee_id", uuid.New().String()))
	require.NoError(t, mw.Close())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/parse", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
