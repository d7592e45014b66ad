package jobqueue

import (
	"testing"

	"escp2render/internal/config"
	"escp2render/internal/logging"
	"escp2render/internal/node"
)

func testQueue(t *testing.T) *Queue {
	t.Helper()
	base, err := logging.New(&config.LoggingConfig{Level: "info", Format: "json", Output: "stdout"})
	if err != nil {
		t.Fatalf("logging.New: %v", err)
	}
	return NewQueue(logging.NewQueueLogger(base))
}

func TestPushAssignsIncreasingPositions(t *testing.T) {
	q := testQueue(t)
	j1 := New(&node.Text{Content: "a"}, "serial")
	j2 := New(&node.Text{Content: "b"}, "serial")

	if pos := q.Push(j1); pos != 1 {
		t.Errorf("first push position = %d, want 1", pos)
	}
	if pos := q.Push(j2); pos != 2 {
		t.Errorf("second push position = %d, want 2", pos)
	}
	if q.Len() != 2 {
		t.Errorf("Len() = %d, want 2", q.Len())
	}
}

func TestPopReturnsFIFOOrder(t *testing.T) {
	q := testQueue(t)
	j1 := New(&node.Text{Content: "a"}, "serial")
	j2 := New(&node.Text{Content: "b"}, "serial")
	q.Push(j1)
	q.Push(j2)

	if got := q.Pop(); got.ID != j1.ID {
		t.Error("expected first popped job to be j1")
	}
	if got := q.Pop(); got.ID != j2.ID {
		t.Error("expected second popped job to be j2")
	}
	if got := q.Pop(); got != nil {
		t.Error("expected nil from empty queue")
	}
}

func TestGetFindsJobAfterPop(t *testing.T) {
	q := testQueue(t)
	j := New(&node.Text{Content: "a"}, "serial")
	q.Push(j)
	q.Pop()

	got, ok := q.Get(j.ID)
	if !ok || got.ID != j.ID {
		t.Fatal("expected to find job by ID after it was popped")
	}
}

func TestSetStatusTransitionsAndErrorsOnUnknownJob(t *testing.T) {
	q := testQueue(t)
	j := New(&node.Text{Content: "a"}, "serial")
	q.Push(j)

	if err := q.SetStatus(j.ID, StatusRendering); err != nil {
		t.Fatalf("SetStatus: %v", err)
	}
	got, _ := q.Get(j.ID)
	if got.Status != StatusRendering {
		t.Errorf("Status = %v, want StatusRendering", got.Status)
	}

	other := New(&node.Text{Content: "b"}, "serial")
	if err := q.SetStatus(other.ID, StatusRendering); err == nil {
		t.Error("expected error for unknown job ID")
	}
}

func TestStatusIsTerminal(t *testing.T) {
	cases := map[Status]bool{
		StatusQueued:    false,
		StatusRendering: false,
		StatusCompleted: true,
		StatusFailed:    true,
		StatusCancelled: true,
	}
	for status, want := range cases {
		if got := status.IsTerminal(); got != want {
			t.Errorf("Status(%s).IsTerminal() = %v, want %v", status, got, want)
		}
	}
}

func TestCanRetryRespectsMaxRetries(t *testing.T) {
	j := New(&node.Text{Content: "a"}, "serial")
	j.MaxRetries = 2
	if !j.CanRetry() {
		t.Error("expected CanRetry true at RetryCount 0")
	}
	j.RetryCount = 2
	if j.CanRetry() {
		t.Error("expected CanRetry false once RetryCount reaches MaxRetries")
	}
}
