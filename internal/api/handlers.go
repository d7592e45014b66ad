package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"escp2render/internal/api/docjson"
	"escp2render/internal/jobqueue"
	"escp2render/internal/jobstore"
	"escp2render/internal/logging"
	"escp2render/internal/sampledoc"
	"escp2render/internal/ws"
)

// Handler serves the render/print/job-status routes, grounded on the
// teacher's OperationHandler: bind request, run the domain operation
// through its service, translate the outcome to the standard envelope.
type Handler struct {
	env       RenderEnv
	queue     *jobqueue.Queue
	processor *jobqueue.Processor
	store     *jobstore.Store
	hub       *ws.Hub
	logger    *zap.Logger
	timeout   time.Duration
}

// NewHandler wires a Handler from its collaborators. store and hub may be
// nil: without storage, jobs live only in the in-memory queue; without a
// hub, status changes simply aren't broadcast.
func NewHandler(env RenderEnv, queue *jobqueue.Queue, processor *jobqueue.Processor, store *jobstore.Store, hub *ws.Hub, logger *zap.Logger, timeout time.Duration) *Handler {
	return &Handler{env: env, queue: queue, processor: processor, store: store, hub: hub, logger: logger, timeout: timeout}
}

// RenderRequest is the POST /v1/render body: the document tree only.
// Paper geometry, charset and default style come from the RenderEnv.
type RenderRequest struct {
	Document docjson.Doc `json:"document" binding:"required"`
}

// Render measures, positions and emits the submitted document and
// returns the raw ESC/P2 byte stream, without enqueueing a job or
// touching a transport. Useful for previewing what a print would send.
//
// @Router /v1/render [post]
func (h *Handler) Render(c *gin.Context) {
	var req RenderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Failure(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	doc, err := req.Document.ToNode()
	if err != nil {
		Failure(c, http.StatusBadRequest, "invalid document", err)
		return
	}

	bytes, elapsed, err := h.env.render(doc)
	if err != nil {
		h.logger.Error("render failed", zap.Error(err))
		Failure(c, http.StatusUnprocessableEntity, "render failed", err)
		return
	}

	Success(c, http.StatusOK, "rendered", gin.H{
		"bytes_base64":  bytes,
		"byte_count":    len(bytes),
		"elapsed_millis": elapsed.Milliseconds(),
	})
}

// PrintRequest is the POST /v1/print body.
type PrintRequest struct {
	Document docjson.Doc `json:"document" binding:"required"`
	// Transport is recorded on the job as its transport kind, e.g.
	// "serial", "tcp", "usb". It does not pick the connection: output
	// always goes to the single printer built from transport.default.
	Transport string `json:"transport" binding:"required"`
}

// Print enqueues a render-and-transport job, runs it to completion (the
// teacher's ExecuteOperation is likewise synchronous from the caller's
// point of view), persists the outcome if storage is configured, and
// publishes the status transitions to any subscribed WebSocket clients.
//
// @Router /v1/print [post]
func (h *Handler) Print(c *gin.Context) {
	var req PrintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Failure(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	doc, err := req.Document.ToNode()
	if err != nil {
		Failure(c, http.StatusBadRequest, "invalid document", err)
		return
	}

	job := jobqueue.New(doc, req.Transport)
	h.queue.Push(job)

	if h.store != nil {
		if err := h.store.Create(c.Request.Context(), job); err != nil {
			h.logger.Warn("failed to persist job record", zap.Error(err), zap.String("job_id", job.ID.String()))
		}
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	renderLog := logging.NewRenderLogger(h.logger, job.ID.String())
	procErr := h.processor.Process(ctx, job, renderLog)

	h.publish(job)
	if h.store != nil {
		if err := h.store.UpdateStatus(c.Request.Context(), job); err != nil {
			h.logger.Warn("failed to update job record", zap.Error(err), zap.String("job_id", job.ID.String()))
		}
	}

	if procErr != nil {
		Failure(c, http.StatusUnprocessableEntity, "print failed", procErr)
		return
	}

	Success(c, http.StatusOK, "print completed", jobView(job))
}

// RenderSample runs the named spec.md §8 scenario through the render
// pipeline and returns the resulting bytes, letting an operator sanity-
// check a fresh printer config against known-good output without
// constructing a document by hand.
//
// @Router /v1/samples/{name} [get]
func (h *Handler) RenderSample(c *gin.Context) {
	doc, err := sampledoc.Build(sampledoc.Name(c.Param("name")))
	if err != nil {
		Failure(c, http.StatusNotFound, "unknown sample", err)
		return
	}

	bytes, elapsed, err := h.env.render(doc)
	if err != nil {
		h.logger.Error("sample render failed", zap.Error(err))
		Failure(c, http.StatusUnprocessableEntity, "render failed", err)
		return
	}

	Success(c, http.StatusOK, "rendered", gin.H{
		"bytes_base64":   bytes,
		"byte_count":     len(bytes),
		"elapsed_millis": elapsed.Milliseconds(),
	})
}

// GetJob reports a previously submitted job's current status.
//
// @Router /v1/jobs/{job_id} [get]
func (h *Handler) GetJob(c *gin.Context) {
	id, err := uuid.Parse(c.Param("job_id"))
	if err != nil {
		Failure(c, http.StatusBadRequest, "invalid job id", err)
		return
	}

	job, ok := h.queue.Get(id)
	if !ok {
		Failure(c, http.StatusNotFound, "job not found", nil)
		return
	}

	Success(c, http.StatusOK, "job retrieved", jobView(job))
}

func (h *Handler) publish(job *jobqueue.Job) {
	if h.hub == nil {
		return
	}
	var errMsg string
	if job.ErrorMessage != "" {
		errMsg = job.ErrorMessage
	}
	h.hub.Publish(ws.Update{
		JobID:     job.ID,
		Status:    job.Status,
		Error:     errMsg,
		Timestamp: time.Now(),
	})
}

// jobView is the JSON shape returned for a job, deliberately omitting
// RenderedBytes — callers that want the bytes use POST /v1/render.
func jobView(j *jobqueue.Job) gin.H {
	return gin.H{
		"job_id":         j.ID,
		"status":         j.Status,
		"transport":      j.TransportKind,
		"retry_count":    j.RetryCount,
		"error":          j.ErrorMessage,
		"created_at":     j.CreatedAt,
		"started_at":     j.StartedAt,
		"completed_at":   j.CompletedAt,
		"rendered_bytes": len(j.RenderedBytes),
	}
}
