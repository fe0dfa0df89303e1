package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/campushr/docparser/constants"
	"github.com/campushr/docparser/internal/api"
	"github.com/campushr/docparser/internal/common"
	"github.com/campushr/docparser/internal/export"
	"github.com/campushr/docparser/internal/extract"
	"github.com/campushr/docparser/internal/ingest"
	"github.com/campushr/docparser/internal/nlp"
	"github.com/campushr/docparser/internal/nlp/openai"
	processor "github.com/campushr/docparser/internal/pipeline"
	"github.com/campushr/docparser/internal/pipeline/async"
	repo "github.com/campushr/docparser/internal/repository"
	"github.com/campushr/docparser/internal/tracker"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	// Repositories
	employeesRepo := repo.NewEmployeeRepository(entc, logger)
	filesRepo := repo.NewDocumentFileRepository(entc, logger)
	jobsRepo := repo.NewParseJobRepository(entc, logger)
	appraisalsRepo := repo.NewAppraisalRepository(entc, logger)
	portfoliosRepo := repo.NewPortfolioRepository(entc, logger)

	// Extraction
	extractor := extract.NewExtractor(extract.Config{
		Pdftotext: cfg.Extract.Pdftotext,
		MaxPages:  cfg.Extract.MaxPages,
		TmpDir:    cfg.Extract.TmpDir,
	}, logger)

	// NLP backends (graceful if no API key)
	var recognizer nlp.EntityRecognizer
	var summarizer nlp.Summarizer
	var scorer nlp.SimilarityScorer = nlp.NewLexicalScorer()
	if cfg.NLP.APIKey != "" {
		client := openai.NewClient(openai.Config{
			APIKey:         cfg.NLP.APIKey,
			BaseURL:        cfg.NLP.BaseURL,
			ChatModel:      cfg.NLP.ChatModel,
			EmbeddingModel: cfg.NLP.EmbeddingModel,
			Timeout:        cfg.NLP.Timeout,
		}, logger)
		recognizer = client
		scorer = client
		summarizer = client
		logger.Info("OpenAI backends initialized", "chat_model", cfg.NLP.ChatModel)
	} else {
		logger.Warn("OPENAI_API_KEY not configured; using lexical similarity and no entity detection")
	}
	matcher := nlp.NewMatcher(scorer, logger).WithThreshold(cfg.NLP.SimilarityThreshold)

	// Pipeline
	extractStage := processor.NewExtractStage(filesRepo, jobsRepo, extractor, logger)
	parseStage := processor.NewParseStage(logger, jobsRepo, filesRepo, employeesRepo, appraisalsRepo, portfoliosRepo, recognizer)
	pipe := processor.NewProcessor(logger, extractStage, parseStage)

	// Background workers for watcher-driven files
	queue := async.NewProcessorQueue(pipe, logger,
		async.WithWorkers(cfg.Watch.Workers),
		async.WithProcessTimeout(cfg.Server.ParseTimeout),
	)
	defer func() {
		drainCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		queue.Shutdown(drainCtx)
	}()

	// Services
	ingestor := ingest.NewFSIngestor(employeesRepo, filesRepo)

	if len(cfg.Watch.Dirs) > 0 && cfg.Watch.EmployeeID != "" {
		if err := startWatch(ctx, cfg, ingestor, queue, logger); err != nil {
			logger.Error("failed to start drop-folder watcher", "error", err)
			os.Exit(1)
		}
	}
	statusSvc := tracker.NewService(appraisalsRepo, matcher, logger)
	exportSvc := export.NewService(appraisalsRepo, employeesRepo, logger)

	handler := api.NewHandler(
		ingestor,
		pipe,
		jobsRepo,
		statusSvc,
		exportSvc,
		portfoliosRepo,
		summarizer,
		func(ctx context.Context) error {
			return repo.HealthCheck(ctx, pool, time.Second, logger)
		},
		logger,
	)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	api.SetupRoutes(router, handler)

	srv := &http.Server{
		Addr:         cfg.Server.HTTPAddr,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Info("http server listening", "addr", cfg.Server.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown failed", "error", err)
	}
	logger.Info("shutdown complete")
}

// startWatch feeds drop-folder files through ingest and into the worker queue.
func startWatch(ctx context.Context, cfg *common.Config, ingestor ingest.Ingestor, queue async.Queue, logger *slog.Logger) error {
	employeeID, err := uuid.Parse(cfg.Watch.EmployeeID)
	if err != nil {
		return fmt.Errorf("WATCH_EMPLOYEE_ID: %w", err)
	}
	docType, ok := constants.ParseDocType(cfg.Watch.DocType)
	if !ok {
		return fmt.Errorf("WATCH_DOC_TYPE: unknown doc type %q", cfg.Watch.DocType)
	}

	evCh, errCh, err := ingest.StartWatcher(ctx, ingest.WatchConfig{
		Roots:       cfg.Watch.Dirs,
		InitialScan: true,
		Debounce:    cfg.Watch.Debounce,
	})
	if err != nil {
		return err
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case path, open := <-evCh:
				if !open {
					return
				}
				res, err := ingestor.IngestPath(ctx, employeeID, path)
				if err != nil {
					logger.Error("watched file ingest failed", "path", path, "error", err)
					continue
				}
				if res.Deduplicated {
					logger.Info("watched file already known", "path", path, "file_id", res.FileID)
					continue
				}
				fileID, err := uuid.Parse(res.FileID)
				if err != nil {
					continue
				}
				_ = queue.Enqueue(ctx, async.Job{
					FileID:      fileID,
					DocType:     docType,
					SubmittedAt: time.Now(),
					TraceID:     uuid.NewString(),
				})
			case err, open := <-errCh:
				if !open {
					return
				}
				logger.Error("watcher error", "error", err)
			}
		}
	}()

	logger.Info("watching drop folders", "dirs", cfg.Watch.Dirs, "employee_id", employeeID, "doc_type", docType)
	return nil
}
