package ingest

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAllowedExt(t *testing.T) {
	assert.True(t, AllowedExt("pdf"))
	assert.True(t, AllowedExt(".PDF"))
	assert.True(t, AllowedExt("txt"))
	assert.False(t, AllowedExt("png"))
	assert.False(t, AllowedExt(""))
}

func TestIsHidden(t *testing.T) {
	assert.True(t, IsHidden("/drop/.DS_Store"))
	assert.True(t, IsHidden(".git"))
	assert.False(t, IsHidden("/drop/appraisal.pdf"))
}

func TestIngestDirectoryRequiresRoot(t *testing.T) {
	i := NewFSIngestor(nil, nil)
	_, _, err := i.IngestDirectory(context.Background(), uuid.Nil, "   ", true)
	assert.Error(t, err)
}
