// Package jobstore persists print_jobs rows with lib/pq, grounded on the
// teacher's internal/repository operation_repository.go: one struct
// wrapping *sql.DB, parameterized queries, the same
// sql.ErrNoRows-to-domain-error translation.
package jobstore

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"escp2render/internal/config"
	"escp2render/internal/jobqueue"
)

// DB wraps a *sql.DB connection pool, sized from config.StorageConfig —
// the connection object the teacher's repository layer expected to find
// in internal/database but never itself defined.
type DB struct {
	*sql.DB
}

// Open connects to Postgres using the given storage configuration.
func Open(cfg config.StorageConfig) (*DB, error) {
	conn, err := sql.Open("postgres", dsn(cfg))
	if err != nil {
		return nil, fmt.Errorf("open postgres connection: %w", err)
	}
	conn.SetMaxOpenConns(cfg.MaxOpenConns)
	conn.SetMaxIdleConns(cfg.MaxIdleConns)
	return &DB{DB: conn}, nil
}

func dsn(cfg config.StorageConfig) string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode)
}

// Store persists job records for later lookup (status polling, audit),
// separate from jobqueue.Queue's in-memory working set.
type Store struct {
	db *DB
}

// NewStore wraps db in a Store.
func NewStore(db *DB) *Store {
	return &Store{db: db}
}

// Create inserts a new job row.
func (s *Store) Create(ctx context.Context, j *jobqueue.Job) error {
	const query = `
		INSERT INTO print_jobs (
			id, correlation_id, transport_kind, status, retry_count,
			max_retries, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := s.db.ExecContext(ctx, query,
		j.ID, j.CorrelationID, j.TransportKind, j.Status, j.RetryCount,
		j.MaxRetries, j.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create job: %w", err)
	}
	return nil
}

// Record is the persisted view of a job — a subset of jobqueue.Job that
// excludes the in-memory-only Document tree.
type Record struct {
	ID            string
	CorrelationID *string
	TransportKind string
	Status        string
	RetryCount    int
	ErrorMessage  string
	CreatedAt     time.Time
	StartedAt     *time.Time
	CompletedAt   *time.Time
}

// GetByID retrieves a job's persisted record.
func (s *Store) GetByID(ctx context.Context, id string) (*Record, error) {
	const query = `
		SELECT id, correlation_id, transport_kind, status, retry_count,
		       error_message, created_at, started_at, completed_at
		FROM print_jobs WHERE id = $1
	`
	r := &Record{}
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&r.ID, &r.CorrelationID, &r.TransportKind, &r.Status, &r.RetryCount,
		&r.ErrorMessage, &r.CreatedAt, &r.StartedAt, &r.CompletedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("job not found: %s", id)
		}
		return nil, fmt.Errorf("get job: %w", err)
	}
	return r, nil
}

// UpdateStatus updates a job's status and, on terminal transitions, its
// completion fields.
func (s *Store) UpdateStatus(ctx context.Context, j *jobqueue.Job) error {
	const query = `
		UPDATE print_jobs SET
			status = $2, retry_count = $3, error_message = $4,
			started_at = $5, completed_at = $6
		WHERE id = $1
	`
	var errMsg interface{}
	if j.ErrorMessage != "" {
		errMsg = j.ErrorMessage
	}
	_, err := s.db.ExecContext(ctx, query,
		j.ID, j.Status, j.RetryCount, errMsg, j.StartedAt, j.CompletedAt,
	)
	if err != nil {
		return fmt.Errorf("update job status: %w", err)
	}
	return nil
}
