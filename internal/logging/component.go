package logging

import (
	"time"

	"go.uber.org/zap"
)

// RenderLogger scopes a base logger to one render job, reporting the
// measure/position/emit pipeline's timing and outcome — the render-domain
// analogue of the teacher's DeviceLogger.LogOperation.
type RenderLogger struct {
	logger *zap.Logger
	jobID  string
	start  time.Time
}

// NewRenderLogger returns a logger scoped to jobID.
func NewRenderLogger(base *zap.Logger, jobID string) *RenderLogger {
	return &RenderLogger{
		logger: base.With(zap.String("job_id", jobID), zap.String("component", "render")),
		jobID:  jobID,
		start:  time.Now(),
	}
}

// Phase logs completion of one pipeline phase (measure, position, emit).
func (r *RenderLogger) Phase(name string, elapsed time.Duration) {
	r.logger.Info("render phase completed",
		zap.String("phase", name),
		zap.Duration("elapsed", elapsed),
	)
}

// Done logs the overall outcome of the render job.
func (r *RenderLogger) Done(byteCount int, err error) {
	fields := []zap.Field{
		zap.Duration("total_duration", time.Since(r.start)),
		zap.Int("byte_count", byteCount),
	}
	if err != nil {
		r.logger.Error("render job failed", append(fields, zap.Error(err))...)
		return
	}
	r.logger.Info("render job completed", fields...)
}

// TransportLogger scopes a base logger to one printer connection,
// reporting open/write/close events — the analogue of the teacher's
// DeviceLogger.LogConnection.
type TransportLogger struct {
	logger *zap.Logger
}

// NewTransportLogger returns a logger scoped to a named transport
// (e.g. "serial:/dev/ttyUSB0", "tcp:192.168.1.40:9100").
func NewTransportLogger(base *zap.Logger, transportName string) *TransportLogger {
	return &TransportLogger{
		logger: base.With(zap.String("transport", transportName), zap.String("component", "transport")),
	}
}

// Opened logs a successful connection open.
func (t *TransportLogger) Opened() {
	t.logger.Info("transport opened")
}

// Write logs one write call's size and outcome.
func (t *TransportLogger) Write(byteCount int, err error) {
	if err != nil {
		t.logger.Error("transport write failed", zap.Int("byte_count", byteCount), zap.Error(err))
		return
	}
	t.logger.Debug("transport write", zap.Int("byte_count", byteCount))
}

// Closed logs connection teardown.
func (t *TransportLogger) Closed(err error) {
	if err != nil {
		t.logger.Warn("transport close reported error", zap.Error(err))
		return
	}
	t.logger.Info("transport closed")
}

// QueueLogger reports job-queue lifecycle events, the analogue of the
// teacher's OperationLogger.
type QueueLogger struct {
	logger *zap.Logger
}

// NewQueueLogger returns a logger scoped to the job queue component.
func NewQueueLogger(base *zap.Logger) *QueueLogger {
	return &QueueLogger{logger: base.With(zap.String("component", "jobqueue"))}
}

// Enqueued logs a job entering the queue.
func (q *QueueLogger) Enqueued(jobID string, depth int) {
	q.logger.Info("job enqueued", zap.String("job_id", jobID), zap.Int("queue_depth", depth))
}

// StateChanged logs a job transitioning between states.
func (q *QueueLogger) StateChanged(jobID, from, to string) {
	q.logger.Info("job state changed",
		zap.String("job_id", jobID),
		zap.String("from", from),
		zap.String("to", to),
	)
}
