// Package transport sends a rendered ESC/P2 byte stream to a physical
// printer over serial, TCP, or USB, following the teacher's
// internal/protocol connection family: one small interface, one
// implementation per physical transport, each guarding its state behind
// a mutex and reporting through a component logger instead of bare zap
// calls directly.
package transport

import "context"

// Printer is the write side of a printer connection. Render output is
// one-directional (spec.md never reads status bytes back), so unlike the
// teacher's DeviceProtocol this has no Read method.
type Printer interface {
	Open(ctx context.Context) error
	Close() error
	IsOpen() bool
	Write(ctx context.Context, data []byte) error
}

// Stats mirrors the teacher's ProtocolStats: simple write-side counters
// each printer keeps internally. No method exposes them to callers.
type Stats struct {
	BytesWritten   int64
	OperationCount int64
	ErrorCount     int64
}
