// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"testing"
)

func TestParseFlags_EnvVars(t *testing.T) {
	os.Setenv("PORT", "9000")
	os.Setenv("DATABASE_PATH", "env.db")
	os.Setenv("POLL_SECONDS", "20")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.DatabasePath != "env.db" {
		t.Errorf("expected env.db, got %s", cfg.DatabasePath)
	}
	if cfg.PollSeconds != 20 {
		t.Errorf("expected 20 poll seconds, got %d", cfg.PollSeconds)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	os.Setenv("PORT", "9000")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{"-p", "8080", "-d", "cli.db"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.DatabasePath != "cli.db" {
		t.Errorf("CLI should override env: expected cli.db, got %s", cfg.DatabasePath)
	}
}

func TestParseFlags_Defaults(t *testing.T) {
	os.Clearenv()

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 3000 {
		t.Errorf("expected default port 3000, got %d", cfg.Port)
	}
	if cfg.PollSeconds != 12 {
		t.Errorf("expected default 12 poll seconds, got %d", cfg.PollSeconds)
	}
	if cfg.SimulateRate != 6 {
		t.Errorf("expected default sim-rate 6, got %d", cfg.SimulateRate)
	}
}

func TestParseFlags_RejectsBadPollSeconds(t *testing.T) {
	os.Clearenv()

	if _, err := ParseFlags([]string{"-poll-seconds", "-3"}); err == nil {
		t.Error("expected error for negative poll-seconds")
	}
}
