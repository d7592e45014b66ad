package jobqueue

import (
	"context"
	"errors"
	"testing"
	"time"

	"escp2render/internal/charset"
	"escp2render/internal/config"
	"escp2render/internal/logging"
	"escp2render/internal/node"
	"escp2render/internal/paper"
)

// fakeTransport is an in-memory transport.Printer for processor tests.
type fakeTransport struct {
	open     bool
	written  []byte
	writeErr error
	openErr  error
}

func (f *fakeTransport) Open(ctx context.Context) error {
	if f.openErr != nil {
		return f.openErr
	}
	f.open = true
	return nil
}
func (f *fakeTransport) Close() error       { f.open = false; return nil }
func (f *fakeTransport) IsOpen() bool       { return f.open }
func (f *fakeTransport) Write(ctx context.Context, data []byte) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.written = append(f.written, data...)
	return nil
}

func testProcessor(t *testing.T, tr *fakeTransport) *Processor {
	t.Helper()
	return &Processor{
		Queue:     testQueue(t),
		Paper:     paper.Config{WidthInches: 8.5, HeightInches: 11, Margins: paper.Margins{Top: 0, Bottom: 0, Left: 0, Right: 0}, LinesPerPage: 66},
		Charset:   charset.USA,
		Table:     charset.PC437,
		Style:     node.Resolved{CPI: node.CPI10},
		Transport: tr,
		Timeout:   5 * time.Second,
	}
}

func testLoggerForProcessor(t *testing.T) *logging.RenderLogger {
	t.Helper()
	base, err := logging.New(&config.LoggingConfig{Level: "info", Format: "json", Output: "stdout"})
	if err != nil {
		t.Fatalf("logging.New: %v", err)
	}
	return logging.NewRenderLogger(base, "test-job")
}

func TestProcessCompletesJobAndWritesBytes(t *testing.T) {
	tr := &fakeTransport{}
	p := testProcessor(t, tr)
	j := New(&node.Text{Content: "Hi"}, "serial")
	p.Queue.Push(j)

	if err := p.Process(context.Background(), j, testLoggerForProcessor(t)); err != nil {
		t.Fatalf("Process: %v", err)
	}
	if j.Status != StatusCompleted {
		t.Errorf("Status = %v, want StatusCompleted", j.Status)
	}
	if len(tr.written) == 0 {
		t.Error("expected bytes written to transport")
	}
	if j.CompletedAt == nil {
		t.Error("expected CompletedAt to be set")
	}
}

func TestProcessFailsJobOnTransportError(t *testing.T) {
	tr := &fakeTransport{writeErr: errors.New("printer offline")}
	p := testProcessor(t, tr)
	j := New(&node.Text{Content: "Hi"}, "serial")
	p.Queue.Push(j)

	err := p.Process(context.Background(), j, testLoggerForProcessor(t))
	if err == nil {
		t.Fatal("expected error from transport failure")
	}
	if j.Status != StatusFailed {
		t.Errorf("Status = %v, want StatusFailed", j.Status)
	}
	if j.ErrorMessage == "" {
		t.Error("expected ErrorMessage to be recorded")
	}
}
