package jobqueue

import (
	"context"
	"fmt"
	"time"

	"escp2render/internal/charset"
	"escp2render/internal/layout"
	"escp2render/internal/logging"
	"escp2render/internal/node"
	"escp2render/internal/paper"
	"escp2render/internal/render"
	"escp2render/internal/transport"
)

// Processor runs one job through measure, position, flatten, and emit,
// then hands the resulting bytes to a transport.Printer — the
// render-domain analogue of the teacher's OperationService.ExecuteOperation:
// create/track a record, run the work under a timeout, update status on
// success or failure.
type Processor struct {
	Queue     *Queue
	Paper     paper.Config
	Charset   charset.Charset
	Table     charset.Table
	Style     node.Resolved
	Transport transport.Printer
	Timeout   time.Duration
}

// Process renders j.Document and writes the result to p.Transport,
// updating j.Status and j.RenderedBytes along the way. It never panics on
// a render or transport failure — the error is recorded on the job and
// also returned, matching the teacher's pattern of both logging the
// failure on the operation record and propagating it to the caller.
func (p *Processor) Process(ctx context.Context, j *Job, log *logging.RenderLogger) error {
	execCtx, cancel := context.WithTimeout(ctx, p.Timeout)
	defer cancel()

	now := time.Now()
	j.StartedAt = &now
	p.Queue.SetStatus(j.ID, StatusRendering)

	measureStart := time.Now()
	measured, err := layout.Measure(j.Document, p.Paper.ContentWidthDots(), p.Paper.ContentHeightDots(), p.Style)
	if err != nil {
		return p.fail(j, log, fmt.Errorf("measure: %w", err))
	}
	log.Phase("measure", time.Since(measureStart))

	positionStart := time.Now()
	placed := layout.Position(measured, p.Paper.Margins.Left, p.Paper.Margins.Top)
	log.Phase("position", time.Since(positionStart))

	emitStart := time.Now()
	items := render.Flatten(placed)
	bytes, _, err := render.Emit(items, render.Params{Charset: p.Charset, Table: p.Table, Paper: p.Paper}, p.Style)
	if err != nil {
		return p.fail(j, log, fmt.Errorf("emit: %w", err))
	}
	log.Phase("emit", time.Since(emitStart))

	j.RenderedBytes = bytes
	p.Queue.SetStatus(j.ID, StatusTransporting)

	if err := p.send(execCtx, bytes); err != nil {
		return p.fail(j, log, fmt.Errorf("transport: %w", err))
	}

	completed := time.Now()
	j.CompletedAt = &completed
	p.Queue.SetStatus(j.ID, StatusCompleted)
	log.Done(len(bytes), nil)
	return nil
}

func (p *Processor) send(ctx context.Context, data []byte) error {
	if !p.Transport.IsOpen() {
		if err := p.Transport.Open(ctx); err != nil {
			return err
		}
	}
	return p.Transport.Write(ctx, data)
}

func (p *Processor) fail(j *Job, log *logging.RenderLogger, err error) error {
	j.ErrorMessage = err.Error()
	completed := time.Now()
	j.CompletedAt = &completed
	p.Queue.SetStatus(j.ID, StatusFailed)
	log.Done(len(j.RenderedBytes), err)
	return err
}
