package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// EnsureEventPartitions creates monthly range partitions of webhook_events
// starting at the month containing from, for the next n months. Idempotent;
// safe to call from multiple replicas.
func EnsureEventPartitions(ctx context.Context, db *sql.DB, from time.Time, n int) error {
	month := time.Date(from.Year(), from.Month(), 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		start := month.AddDate(0, i, 0)
		end := start.AddDate(0, 1, 0)
		name := fmt.Sprintf("webhook_events_%s", start.Format("2006_01"))

		stmt := fmt.Sprintf(
			`CREATE TABLE IF NOT EXISTS %s PARTITION OF webhook_events
			 FOR VALUES FROM ('%s') TO ('%s')`,
			name, start.Format("2006-01-02"), end.Format("2006-01-02"),
		)
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create partition %s: %w", name, err)
		}
	}
	return nil
}

// CreatePartialUniqueIndexes creates the partial unique indexes that enforce
// the single-running invariants. The SQL migration creates these in
// production; tests that build the schema with Ent need them separately,
// because Ent's schema DSL cannot express partial indexes.
func CreatePartialUniqueIndexes(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE UNIQUE INDEX IF NOT EXISTS run_single_running_per_task
		 ON runs (task_id) WHERE status = 'running'`,
		`CREATE UNIQUE INDEX IF NOT EXISTS queueentry_single_running_per_item
		 ON queue_entries (external_item_id) WHERE status = 'running'`,
	}
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create partial unique index: %w", err)
		}
	}
	return nil
}

// DropEventPartitionsBefore drops monthly webhook_events partitions whose
// range ends before the cutoff. Returns the names of dropped partitions.
func DropEventPartitionsBefore(ctx context.Context, db *sql.DB, cutoff time.Time) ([]string, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT c.relname
		FROM pg_inherits i
		JOIN pg_class c ON c.oid = i.inhrelid
		JOIN pg_class p ON p.oid = i.inhparent
		WHERE p.relname = 'webhook_events'
		  AND c.relname ~ '^webhook_events_[0-9]{4}_[0-9]{2}$'`)
	if err != nil {
		return nil, fmt.Errorf("failed to list event partitions: %w", err)
	}
	defer rows.Close()

	var candidates []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan partition name: %w", err)
		}
		candidates = append(candidates, name)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	var dropped []string
	for _, name := range candidates {
		var start time.Time
		if _, err := fmt.Sscanf(name, "webhook_events_%d_", new(int)); err != nil {
			continue
		}
		start, err = time.Parse("2006_01", name[len("webhook_events_"):])
		if err != nil {
			continue
		}
		if start.AddDate(0, 1, 0).After(cutoff) {
			continue
		}
		if _, err := db.ExecContext(ctx, fmt.Sprintf(`DROP TABLE IF EXISTS %s`, name)); err != nil {
			return dropped, fmt.Errorf("failed to drop partition %s: %w", name, err)
		}
		dropped = append(dropped, name)
	}
	return dropped, nil
}
