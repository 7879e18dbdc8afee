// Package history persists microgrid power commands to PostgreSQL. It is an
// audit log for operators: every SetPower issued through the CLI (or any
// caller that wires in a Store) is recorded with its outcome.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

// PowerCommand is one recorded SetPower call.
type PowerCommand struct {
	ID          int64
	Target      string
	ComponentID uint64
	PowerW      int64
	// Status is the gRPC status code string of the outcome, "OK" on success.
	Status   string
	IssuedAt time.Time
}

// Store wraps a PostgreSQL connection for recording power commands.
type Store struct {
	conn   *sql.DB
	config *Config
}

// NewStore opens a connection pool using the provided configuration.
func NewStore(config *Config) (*Store, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	conn, err := sql.Open("postgres", config.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(2)
	conn.SetConnMaxLifetime(5 * time.Minute)

	return &Store{
		conn:   conn,
		config: config,
	}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.conn != nil {
		return s.conn.Close()
	}
	return nil
}

// Ping checks if the database connection is alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.conn.PingContext(ctx)
}

// InitSchema creates the command history table if it does not exist.
func (s *Store) InitSchema(ctx context.Context) error {
	schema := `
	CREATE TABLE IF NOT EXISTS microgrid_power_commands (
		id BIGSERIAL PRIMARY KEY,
		target VARCHAR(255) NOT NULL,
		component_id BIGINT NOT NULL,
		power_w BIGINT NOT NULL,
		status VARCHAR(64) NOT NULL,
		issued_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_microgrid_power_commands_component
		ON microgrid_power_commands(component_id, issued_at);
	CREATE INDEX IF NOT EXISTS idx_microgrid_power_commands_issued_at
		ON microgrid_power_commands(issued_at);
	`

	if _, err := s.conn.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}
	return nil
}

// RecordPowerCommand inserts one command with its outcome status.
func (s *Store) RecordPowerCommand(ctx context.Context, target string, componentID uint64, powerW int64, status string) error {
	const query = `
		INSERT INTO microgrid_power_commands (target, component_id, power_w, status)
		VALUES ($1, $2, $3, $4)`

	if _, err := s.conn.ExecContext(ctx, query, target, int64(componentID), powerW, status); err != nil {
		return fmt.Errorf("failed to record power command: %w", err)
	}
	return nil
}

// ListPowerCommands returns up to limit commands, most recent first.
func (s *Store) ListPowerCommands(ctx context.Context, limit int) ([]PowerCommand, error) {
	if limit <= 0 {
		limit = 100
	}

	const query = `
		SELECT id, target, component_id, power_w, status, issued_at
		FROM microgrid_power_commands
		ORDER BY issued_at DESC, id DESC
		LIMIT $1`

	rows, err := s.conn.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list power commands: %w", err)
	}
	defer rows.Close()

	var commands []PowerCommand
	for rows.Next() {
		var cmd PowerCommand
		var componentID int64
		if err := rows.Scan(&cmd.ID, &cmd.Target, &componentID, &cmd.PowerW, &cmd.Status, &cmd.IssuedAt); err != nil {
			return nil, fmt.Errorf("failed to scan power command: %w", err)
		}
		cmd.ComponentID = uint64(componentID)
		commands = append(commands, cmd)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate power commands: %w", err)
	}
	return commands, nil
}
