package async

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/campushr/docparser/constants"
)

// Job is the smallest useful unit. Extend as needed later (retry, trace, priority).
type Job struct {
	FileID      uuid.UUID
	DocType     constants.DocType
	Force       bool // enqueue even if deduplicated
	SubmittedAt time.Time
	TraceID     string
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}
