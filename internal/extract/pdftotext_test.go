package extract

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushr/docparser/internal/common"
)

type stubRunner struct {
	stdout []byte
	stderr []byte
	err    error

	gotName string
	gotArgs []string
}

func (s *stubRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	s.gotName = name
	s.gotArgs = args
	return s.stdout, s.stderr, s.err
}

func TestExtractPDFSplitsPages(t *testing.T) {
	r := &stubRunner{stdout: []byte("page one\fpage two\f")}
	e := NewExtractorWithRunner(Config{}, r, nil)

	res, err := e.Extract(context.Background(), "/docs/appraisal.pdf")
	require.NoError(t, err)

	assert.Equal(t, "pdf-text", res.Method)
	assert.Equal(t, 2, res.Pages)
	assert.Equal(t, []string{"page one", "page two"}, res.PageTexts)
	assert.Equal(t, "page onepage two", res.Text)
	assert.Empty(t, res.Warnings)
	assert.Equal(t, "pdftotext", r.gotName)
	assert.Contains(t, r.gotArgs, "-layout")
	assert.Equal(t, "-", r.gotArgs[len(r.gotArgs)-1])
}

func TestExtractPDFEmptyPageKeepsPageCount(t *testing.T) {
	r := &stubRunner{stdout: []byte("page one\f   \fpage three\f")}
	e := NewExtractorWithRunner(Config{}, r, nil)

	res, err := e.Extract(context.Background(), "/docs/appraisal.pdf")
	require.NoError(t, err)

	assert.Equal(t, 3, res.Pages)
	assert.Equal(t, []string{"page one", "", "page three"}, res.PageTexts)
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "page 2")
}

func TestExtractPDFFailureIsUnreadable(t *testing.T) {
	r := &stubRunner{stderr: []byte("Syntax Error: corrupt file"), err: errors.New("exit status 1")}
	e := NewExtractorWithRunner(Config{}, r, nil)

	_, err := e.Extract(context.Background(), "/docs/broken.pdf")
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrDocumentUnreadable))
}

func TestExtractMaxPagesFlag(t *testing.T) {
	r := &stubRunner{stdout: []byte("text")}
	e := NewExtractorWithRunner(Config{MaxPages: 3}, r, nil)

	_, err := e.Extract(context.Background(), "/docs/a.pdf")
	require.NoError(t, err)
	assert.Contains(t, r.gotArgs, "-l")
	assert.Contains(t, r.gotArgs, "3")
}

func TestExtractPlainText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello world"), 0o600))

	e := NewExtractor(Config{}, nil)
	res, err := e.Extract(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "plain-text", res.Method)
	assert.Equal(t, 1, res.Pages)
	assert.Equal(t, "hello world", res.Text)
}

func TestExtractUnsupportedExtension(t *testing.T) {
	e := NewExtractor(Config{}, nil)
	_, err := e.Extract(context.Background(), "/docs/photo.png")
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrInvalidInput))
}

func TestExtractBytesCleansUpScratchFile(t *testing.T) {
	dir := t.TempDir()
	e := NewExtractor(Config{TmpDir: dir}, nil)

	res, err := e.ExtractBytes(context.Background(), []byte("raw text"), ".txt")
	require.NoError(t, err)
	assert.Equal(t, "raw text", res.Text)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
