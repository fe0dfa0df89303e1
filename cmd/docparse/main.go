package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/campushr/docparser/constants"
	"github.com/campushr/docparser/internal/common"
	"github.com/campushr/docparser/internal/export"
	"github.com/campushr/docparser/internal/extract"
	"github.com/campushr/docparser/internal/ingest"
	"github.com/campushr/docparser/internal/nlp"
	"github.com/campushr/docparser/internal/nlp/openai"
	processor "github.com/campushr/docparser/internal/pipeline"
	repo "github.com/campushr/docparser/internal/repository"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		inmem    = flag.Bool("inmem", false, "use in-memory SQLite database")
		dir      = flag.String("dir", "", "directory to process documents from (required)")
		docType  = flag.String("type", "appraisal", "document type: appraisal, resume or portfolio")
		employee = flag.String("employee", "Local Batch", "employee name the documents belong to")
		out      = flag.String("out", "", "output XLSX file path (optional, defaults to parent directory)")
		fromStr  = flag.String("from", "", "from date YYYY-MM-DD")
		toStr    = flag.String("to", "", "to date YYYY-MM-DD")
	)
	flag.Parse()

	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}
	dt, ok := constants.ParseDocType(*docType)
	if !ok {
		printError("Error: unknown --type %q\n", *docType)
		os.Exit(1)
	}

	if *out == "" {
		parentDir := filepath.Dir(*dir)
		*out = filepath.Join(parentDir, "appraisals.xlsx")
	}

	var from, to *time.Time
	if *fromStr != "" {
		if parsed, err := time.Parse("2006-01-02", *fromStr); err != nil {
			printError("Error: invalid --from date format, use YYYY-MM-DD: %v\n", err)
			os.Exit(1)
		} else {
			from = &parsed
		}
	}
	if *toStr != "" {
		if parsed, err := time.Parse("2006-01-02", *toStr); err != nil {
			printError("Error: invalid --to date format, use YYYY-MM-DD: %v\n", err)
			os.Exit(1)
		} else {
			to = &parsed
		}
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()
	cfg := common.LoadConfig()

	dbResult, err := repo.InitDatabase(ctx, cfg, *inmem, logger)
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer dbResult.Cleanup()
	entc := dbResult.Client

	employeesRepo := repo.NewEmployeeRepository(entc, logger)
	filesRepo := repo.NewDocumentFileRepository(entc, logger)
	jobsRepo := repo.NewParseJobRepository(entc, logger)
	appraisalsRepo := repo.NewAppraisalRepository(entc, logger)
	portfoliosRepo := repo.NewPortfolioRepository(entc, logger)

	first, last, _ := strings.Cut(strings.TrimSpace(*employee), " ")
	emp, err := employeesRepo.Create(ctx, first, last)
	if err != nil {
		logger.Error("failed to create employee", "error", err)
		os.Exit(1)
	}
	logger.Info("using employee", "id", emp.ID, "name", *employee)

	extractor := extract.NewExtractor(extract.Config{
		Pdftotext: cfg.Extract.Pdftotext,
		MaxPages:  cfg.Extract.MaxPages,
		TmpDir:    cfg.Extract.TmpDir,
	}, logger)

	// Entity detection only when a key is around; the parse degrades cleanly
	// without it.
	var recognizer nlp.EntityRecognizer
	if cfg.NLP.APIKey != "" {
		recognizer = openai.NewClient(openai.Config{
			APIKey:         cfg.NLP.APIKey,
			BaseURL:        cfg.NLP.BaseURL,
			ChatModel:      cfg.NLP.ChatModel,
			EmbeddingModel: cfg.NLP.EmbeddingModel,
			Timeout:        cfg.NLP.Timeout,
		}, logger)
		logger.Info("OpenAI client initialized", "model", cfg.NLP.ChatModel)
	} else {
		logger.Warn("OpenAI API key not configured, entity detection will be skipped")
	}

	extractStage := processor.NewExtractStage(filesRepo, jobsRepo, extractor, logger)
	parseStage := processor.NewParseStage(logger, jobsRepo, filesRepo, employeesRepo, appraisalsRepo, portfoliosRepo, recognizer)
	pipe := processor.NewProcessor(logger, extractStage, parseStage)

	ingestor := ingest.NewFSIngestor(employeesRepo, filesRepo)

	logger.Info("starting ingestion", "dir", *dir, "employee", emp.ID)
	ingestionResults, stats, err := ingestor.IngestDirectory(ctx, emp.ID, *dir, true)
	if err != nil {
		logger.Error("failed to ingest directory", "error", err)
		os.Exit(1)
	}

	var ingested []uuid.UUID
	for _, result := range ingestionResults {
		if result.Err == "" {
			fileID, err := uuid.Parse(result.FileID)
			if err != nil {
				logger.Error("failed to parse file ID", "file_id", result.FileID, "error", err)
				continue
			}
			ingested = append(ingested, fileID)
		}
	}
	logger.Info("ingestion complete",
		"files_ingested", len(ingested),
		"scanned", stats.Scanned,
		"matched", stats.Matched,
		"succeeded", stats.Succeeded,
		"failed", stats.Failed,
		"deduplicated", stats.Deduplicated)

	processed := 0
	failures := 0
	for _, fileID := range ingested {
		logger.Info("processing file", "file_id", fileID)
		if _, err := pipe.ProcessFile(ctx, fileID, dt); err != nil {
			logger.Error("failed to process file", "file_id", fileID, "error", err)
			failures++
		} else {
			processed++
		}
	}

	logger.Info("exporting to XLSX", "output", *out)
	exportService := export.NewService(appraisalsRepo, employeesRepo, logger)

	xlsxBytes, err := exportService.ExportAppraisalsXLSX(ctx, emp.ID, from, to)
	if err != nil {
		logger.Error("failed to export appraisals", "error", err)
		os.Exit(1)
	}

	if err := os.WriteFile(*out, xlsxBytes, 0644); err != nil {
		logger.Error("failed to write output file", "error", err)
		os.Exit(1)
	}

	logger.Info("batch processing complete",
		"files_ingested", len(ingested),
		"files_processed", processed,
		"failures", failures,
		"output_file", *out)

	fmt.Printf("Batch processing complete!\n")
	fmt.Printf("- Files ingested: %d\n", len(ingested))
	fmt.Printf("- Files processed: %d\n", processed)
	fmt.Printf("- Failures: %d\n", failures)
	fmt.Printf("- Output: %s\n", *out)
}
