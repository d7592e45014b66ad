package logging

import (
	"testing"

	"escp2render/internal/config"
)

func TestNewRejectsInvalidLevel(t *testing.T) {
	_, err := New(&config.LoggingConfig{Level: "shout", Format: "json", Output: "stdout"})
	if err == nil {
		t.Fatal("expected error for invalid level")
	}
}

func TestNewBuildsJSONLoggerToStdout(t *testing.T) {
	logger, err := New(&config.LoggingConfig{Level: "info", Format: "json", Output: "stdout"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if logger == nil {
		t.Fatal("expected non-nil logger")
	}
	logger.Info("smoke test")
}

func TestNewBuildsConsoleLogger(t *testing.T) {
	logger, err := New(&config.LoggingConfig{Level: "debug", Format: "console", Output: "stderr"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Debug("smoke test")
}

func TestComponentLoggersDoNotPanic(t *testing.T) {
	base, err := New(&config.LoggingConfig{Level: "info", Format: "json", Output: "stdout"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	r := NewRenderLogger(base, "job-1")
	r.Phase("measure", 0)
	r.Done(128, nil)

	tr := NewTransportLogger(base, "serial:/dev/ttyUSB0")
	tr.Opened()
	tr.Write(64, nil)
	tr.Closed(nil)

	q := NewQueueLogger(base)
	q.Enqueued("job-1", 1)
	q.StateChanged("job-1", "queued", "running")
}
