package constants

// JobStatus is the canonical status for rows in extract_job.
type JobStatus string

// Stable values (store these exact strings in DB).
const (
	JobStatusQueued   JobStatus = "QUEUED"   // queued for processing
	JobStatusRunning  JobStatus = "RUNNING"  // in progress
	JobStatusTextOK   JobStatus = "TEXT_OK"  // text recovery completed
	JobStatusAnalyzed JobStatus = "ANALYZED" // contract info extracted
	JobStatusFailed   JobStatus = "FAILED"   // terminal failure
)
