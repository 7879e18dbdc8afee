package history

import (
	"context"
	"os"
	"testing"
)

// skipIfNoPostgres skips the test if PostgreSQL is not available.
func skipIfNoPostgres(t *testing.T) *Config {
	t.Helper()

	if os.Getenv("SKIP_POSTGRES_TESTS") == "1" {
		t.Skip("Skipping PostgreSQL integration test (SKIP_POSTGRES_TESTS=1)")
	}

	config := &Config{
		Host:     getEnvOrDefault("POSTGRES_HOST", "localhost"),
		Port:     5432,
		User:     getEnvOrDefault("POSTGRES_USER", "postgres"),
		Password: getEnvOrDefault("POSTGRES_PASSWORD", "postgres"),
		Database: getEnvOrDefault("POSTGRES_DB", "postgres"),
		SSLMode:  "disable",
	}
	return config
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func setupStore(t *testing.T) *Store {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping long-running integration test in short mode")
	}
	config := skipIfNoPostgres(t)

	store, err := NewStore(config)
	if err != nil {
		t.Fatalf("NewStore() failed: %v", err)
	}

	ctx := context.Background()
	if err := store.Ping(ctx); err != nil {
		store.Close()
		t.Skipf("Skipping test: PostgreSQL not responding: %v", err)
	}
	if err := store.InitSchema(ctx); err != nil {
		store.Close()
		t.Fatalf("InitSchema() failed: %v", err)
	}

	t.Cleanup(func() {
		_, err := store.conn.ExecContext(ctx, "DELETE FROM microgrid_power_commands")
		if err != nil {
			t.Logf("Warning: failed to cleanup test table: %v", err)
		}
		store.Close()
	})
	return store
}

func TestRecordAndListPowerCommands_Integration(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	commands := []struct {
		componentID uint64
		powerW      int64
		status      string
	}{
		{1, -100, "OK"},
		{1, 100, "OK"},
		{2, 5000, "DeadlineExceeded"},
	}
	for _, cmd := range commands {
		if err := store.RecordPowerCommand(ctx, "localhost:57809", cmd.componentID, cmd.powerW, cmd.status); err != nil {
			t.Fatalf("RecordPowerCommand() failed: %v", err)
		}
	}

	listed, err := store.ListPowerCommands(ctx, 10)
	if err != nil {
		t.Fatalf("ListPowerCommands() failed: %v", err)
	}
	if len(listed) != 3 {
		t.Fatalf("got %d commands, want 3", len(listed))
	}

	// Most recent first
	if listed[0].ComponentID != 2 || listed[0].Status != "DeadlineExceeded" {
		t.Errorf("newest command = %+v, want component 2 with DeadlineExceeded", listed[0])
	}
	if listed[2].PowerW != -100 {
		t.Errorf("oldest command PowerW = %d, want -100", listed[2].PowerW)
	}
}

func TestListPowerCommands_Limit_Integration(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	for i := int64(0); i < 5; i++ {
		if err := store.RecordPowerCommand(ctx, "localhost:57809", 1, i*100, "OK"); err != nil {
			t.Fatalf("RecordPowerCommand() failed: %v", err)
		}
	}

	listed, err := store.ListPowerCommands(ctx, 2)
	if err != nil {
		t.Fatalf("ListPowerCommands() failed: %v", err)
	}
	if len(listed) != 2 {
		t.Errorf("got %d commands, want 2", len(listed))
	}
}
