package extract

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/campushr/docparser/constants"
	"github.com/campushr/docparser/internal/common"
)

type Config struct {
	Pdftotext string // binary name or absolute path; if empty -> "pdftotext"
	MaxPages  int    // 0 = no limit
	TmpDir    string // scratch dir for byte-stream input; "" -> os default
}

// Extractor pulls text out of paginated documents via pdftotext.
// It implements TextExtractor.
type Extractor struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewExtractor(cfg Config, logger *slog.Logger) *Extractor {
	if cfg.Pdftotext == "" {
		cfg.Pdftotext = "pdftotext"
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{cfg: cfg, runner: execRunner{}, logger: logger}
}

// NewExtractorWithRunner is used by tests to stub the external command.
func NewExtractorWithRunner(cfg Config, r Runner, logger *slog.Logger) *Extractor {
	e := NewExtractor(cfg, logger)
	e.runner = r
	return e
}

// Extract picks a strategy based on file extension. A document that cannot be
// decoded at all fails with common.ErrDocumentUnreadable; pages that decode to
// nothing contribute an empty string and a warning.
func (e *Extractor) Extract(ctx context.Context, path string) (Result, error) {
	start := time.Now()
	ext := constants.NormalizeExt(filepath.Ext(path))
	e.logger.Debug("starting text extraction", "path", path, "ext", ext)

	var res Result
	var err error
	switch constants.MapExtToFormat(ext) {
	case "PDF":
		res, err = e.extractPDF(ctx, path)
	case "TXT":
		res, err = e.extractPlain(path)
	default:
		return Result{}, fmt.Errorf("unsupported extension %q: %w", ext, common.ErrInvalidInput)
	}
	res.Duration = time.Since(start)
	if err != nil {
		return res, err
	}

	e.logger.Info("text extraction ok",
		"path", path,
		"method", res.Method,
		"pages", res.Pages,
		"bytes", len(res.Text),
		"duration_ms", res.Duration.Milliseconds(),
	)
	return res, nil
}

// ExtractBytes writes a caller-supplied byte stream to scratch storage,
// extracts it, and removes the scratch file on every exit path.
func (e *Extractor) ExtractBytes(ctx context.Context, data []byte, ext string) (Result, error) {
	f, err := os.CreateTemp(e.cfg.TmpDir, "docparse-*."+constants.NormalizeExt(ext))
	if err != nil {
		return Result{}, fmt.Errorf("create scratch file: %w", err)
	}
	tmpPath := f.Name()
	defer func() {
		if rmErr := os.Remove(tmpPath); rmErr != nil {
			e.logger.Warn("failed to remove scratch file", "path", tmpPath, "error", rmErr)
		}
	}()

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return Result{}, fmt.Errorf("write scratch file: %w", err)
	}
	if err := f.Close(); err != nil {
		return Result{}, fmt.Errorf("close scratch file: %w", err)
	}
	return e.Extract(ctx, tmpPath)
}

func (e *Extractor) extractPDF(ctx context.Context, path string) (Result, error) {
	// pdftotext -layout -enc UTF-8 -eol unix <path> -
	args := []string{"-layout", "-enc", "UTF-8", "-eol", "unix"}
	if e.cfg.MaxPages > 0 {
		args = append(args, "-l", fmt.Sprintf("%d", e.cfg.MaxPages))
	}
	args = append(args, path, "-")

	out, errb, err := e.runner.Run(ctx, e.cfg.Pdftotext, args...)
	if err != nil {
		return Result{Warnings: []string{string(errb)}},
			fmt.Errorf("pdftotext %s: %v: %w", path, err, common.ErrDocumentUnreadable)
	}

	// A form-feed \f separates pages in pdftotext output. Empty page text is
	// substituted with "" so downstream sees the same page count.
	pageTexts := strings.Split(strings.TrimSuffix(string(out), "\f"), "\f")
	var warns []string
	for i, p := range pageTexts {
		if strings.TrimSpace(p) == "" {
			pageTexts[i] = ""
			warns = append(warns, fmt.Sprintf("page %d: no extractable text", i+1))
		}
	}

	return Result{
		Text:      strings.Join(pageTexts, ""),
		PageTexts: pageTexts,
		Pages:     len(pageTexts),
		Method:    "pdf-text",
		Warnings:  warns,
	}, nil
}

func (e *Extractor) extractPlain(path string) (Result, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("read %s: %v: %w", path, err, common.ErrDocumentUnreadable)
	}
	text := string(b)
	return Result{
		Text:      text,
		PageTexts: []string{text},
		Pages:     1,
		Method:    "plain-text",
	}, nil
}
