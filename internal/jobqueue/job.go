// Package jobqueue tracks render-and-print jobs through their lifecycle:
// queued, rendering, transporting, completed or failed. Grounded on the
// teacher's model.DeviceOperation — a UUID-identified unit of work with
// a status enum, timestamps, retry count, and a correlation ID — but
// scoped to one concern (rendering + transport of a single document)
// instead of the teacher's general device-operation taxonomy.
package jobqueue

import (
	"time"

	"github.com/google/uuid"

	"escp2render/internal/node"
)

// Status mirrors the teacher's OperationStatus enum, trimmed to the
// states a render-and-print job actually passes through.
type Status string

const (
	StatusQueued      Status = "QUEUED"
	StatusRendering   Status = "RENDERING"
	StatusTransporting Status = "TRANSPORTING"
	StatusCompleted   Status = "COMPLETED"
	StatusFailed      Status = "FAILED"
	StatusCancelled   Status = "CANCELLED"
)

// IsTerminal reports whether status ends the job's lifecycle.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusFailed || s == StatusCancelled
}

// Job is one render-and-print request moving through the pipeline.
type Job struct {
	ID            uuid.UUID
	CorrelationID *uuid.UUID
	Document      node.Node
	TransportKind string
	Status        Status
	RetryCount    int
	MaxRetries    int
	ErrorMessage  string
	RenderedBytes []byte
	CreatedAt     time.Time
	StartedAt     *time.Time
	CompletedAt   *time.Time
}

// New builds a queued Job for the given document, to be sent over the
// named transport.
func New(doc node.Node, transportKind string) *Job {
	return &Job{
		ID:            uuid.New(),
		Document:      doc,
		TransportKind: transportKind,
		Status:        StatusQueued,
		MaxRetries:    3,
		CreatedAt:     time.Now(),
	}
}

// Duration returns how long the job has been running, or ran in total
// once completed.
func (j *Job) Duration() time.Duration {
	if j.StartedAt == nil {
		return 0
	}
	end := time.Now()
	if j.CompletedAt != nil {
		end = *j.CompletedAt
	}
	return end.Sub(*j.StartedAt)
}

// CanRetry reports whether the job has retries remaining after a
// transport failure.
func (j *Job) CanRetry() bool {
	return j.RetryCount < j.MaxRetries
}
