package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	// Registers the "postgres" driver with database/sql.
	_ "github.com/lib/pq"
	"github.com/lib/pq"
)

// writeTimeout bounds one insert so a stalled database cannot hold
// goroutines hostage.
const writeTimeout = 3 * time.Second

// Postgres persists search history rows into the search_history table.
type Postgres struct {
	db *sql.DB
}

// NewPostgres opens a connection pool for the given DSN and verifies it.
func NewPostgres(dsn string) (*Postgres, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open search history database: %w", err)
	}
	db.SetMaxOpenConns(4)
	db.SetConnMaxIdleTime(time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping search history database: %w", err)
	}
	return &Postgres{db: db}, nil
}

// NewPostgresFromDB wraps an existing pool. Useful for tests.
func NewPostgresFromDB(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

// LogSearch implements Recorder.
func (p *Postgres) LogSearch(ctx context.Context, entry Entry) error {
	params, err := json.Marshal(entry.SearchParams)
	if err != nil {
		return fmt.Errorf("encode search params: %w", err)
	}

	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	_, err = p.db.ExecContext(ctx, `
		INSERT INTO search_history
			(search_type, search_params, results_count, best_price, providers_searched, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		entry.SearchType,
		params,
		entry.ResultsCount,
		entry.BestPrice,
		pq.Array(entry.ProvidersSearched),
		entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert search history: %w", err)
	}
	return nil
}

// Close releases the connection pool.
func (p *Postgres) Close() error {
	return p.db.Close()
}

// Ensure Postgres implements Recorder at compile time.
var _ Recorder = (*Postgres)(nil)
