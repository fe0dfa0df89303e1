package constants

// JobStatus is the canonical status for rows in parse_job.
type JobStatus string

// Stable values (store these exact strings in DB).
const (
	JobStatusQueued    JobStatus = "QUEUED"     // queued for processing
	JobStatusRunning   JobStatus = "RUNNING"    // in progress
	JobStatusExtractOK JobStatus = "EXTRACT_OK" // stage 1 completed (text extracted)
	JobStatusParsed    JobStatus = "PARSED"     // stage 2 completed (record built)
	JobStatusFailed    JobStatus = "FAILED"     // terminal failure
)

// ResearchStatus is the lifecycle state of a tracked research item.
type ResearchStatus string

const (
	ResearchOngoing ResearchStatus = "ongoing"
	ResearchHistory ResearchStatus = "history"
)
