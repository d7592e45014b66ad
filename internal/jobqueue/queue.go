package jobqueue

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"escp2render/internal/logging"
)

// Queue is an in-memory FIFO of jobs awaiting processing, guarded by a
// mutex the way the teacher's connection types guard their own state
// (this package has no repository layer of its own — internal/jobstore
// persists each job at submission and updates its row once processed).
type Queue struct {
	mutex sync.Mutex
	items []*Job
	byID  map[uuid.UUID]*Job
	log   *logging.QueueLogger
}

// NewQueue returns an empty queue.
func NewQueue(log *logging.QueueLogger) *Queue {
	return &Queue{
		byID: make(map[uuid.UUID]*Job),
		log:  log,
	}
}

// Push enqueues a job and returns its position (1-based) in the queue.
func (q *Queue) Push(j *Job) int {
	q.mutex.Lock()
	defer q.mutex.Unlock()
	q.items = append(q.items, j)
	q.byID[j.ID] = j
	q.log.Enqueued(j.ID.String(), len(q.items))
	return len(q.items)
}

// Pop removes and returns the oldest queued job, or nil if empty.
func (q *Queue) Pop() *Job {
	q.mutex.Lock()
	defer q.mutex.Unlock()
	if len(q.items) == 0 {
		return nil
	}
	j := q.items[0]
	q.items = q.items[1:]
	return j
}

// Get looks up a job by ID, including ones already popped (so status
// polling works after processing starts).
func (q *Queue) Get(id uuid.UUID) (*Job, bool) {
	q.mutex.Lock()
	defer q.mutex.Unlock()
	j, ok := q.byID[id]
	return j, ok
}

// SetStatus transitions a job's status and logs the change, mirroring
// the teacher's operationRepo.UpdateStatus calls.
func (q *Queue) SetStatus(id uuid.UUID, status Status) error {
	q.mutex.Lock()
	defer q.mutex.Unlock()
	j, ok := q.byID[id]
	if !ok {
		return fmt.Errorf("job %s not found", id)
	}
	from := j.Status
	j.Status = status
	q.log.StateChanged(id.String(), string(from), string(status))
	return nil
}

// Len returns the number of jobs still queued (not yet popped).
func (q *Queue) Len() int {
	q.mutex.Lock()
	defer q.mutex.Unlock()
	return len(q.items)
}
