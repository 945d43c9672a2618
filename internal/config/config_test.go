package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault_Validates(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("got addr %q, want default :8080", cfg.Server.Addr)
	}
	if cfg.Gate.WindowSize != 10 {
		t.Errorf("got window size %d, want default 10", cfg.Gate.WindowSize)
	}
}

func TestLoad_YAMLOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tutor.yaml")
	data := `
server:
  addr: ":9090"
gate:
  accuracy_threshold: 0.9
session:
  oracle_wait: 500ms
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Addr != ":9090" {
		t.Errorf("got addr %q, want :9090", cfg.Server.Addr)
	}
	if cfg.Gate.AccuracyThreshold != 0.9 {
		t.Errorf("got accuracy threshold %g, want 0.9", cfg.Gate.AccuracyThreshold)
	}
	if cfg.Session.OracleWait != 500*time.Millisecond {
		t.Errorf("got oracle wait %v, want 500ms", cfg.Session.OracleWait)
	}
	// Untouched keys keep their defaults.
	if cfg.Gate.WindowSize != 10 {
		t.Errorf("got window size %d, want default 10", cfg.Gate.WindowSize)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tutor.yaml")
	if err := os.WriteFile(path, []byte("database:\n  path: from-file.db\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("TUTOR_DB", "from-env.db")
	t.Setenv("TUTOR_ADDR", ":7070")
	t.Setenv("TUTOR_ORACLE_PROVIDER", "anthropic")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Database.Path != "from-env.db" {
		t.Errorf("got db path %q, want env override", cfg.Database.Path)
	}
	if cfg.Server.Addr != ":7070" {
		t.Errorf("got addr %q, want env override", cfg.Server.Addr)
	}
	if cfg.Oracle.Provider != "anthropic" {
		t.Errorf("got provider %q, want env override", cfg.Oracle.Provider)
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tutor.yaml")
	if err := os.WriteFile(path, []byte("server: [not a mapping"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error for malformed YAML")
	}
}

func TestLoad_BadDurationString(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tutor.yaml")
	if err := os.WriteFile(path, []byte("session:\n  oracle_wait: soon\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for unparseable duration")
	}
}

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"p_guess out of range", func(c *Config) { c.BKT.Default.PGuess = 1.5 }},
		{"p_slip negative", func(c *Config) { c.BKT.Default.PSlip = -0.1 }},
		{"thresholds not increasing", func(c *Config) { c.Levels.Developing = 0.3 }},
		{"threshold above 1", func(c *Config) { c.Levels.Advanced = 1.2 }},
		{"zero window", func(c *Config) { c.Gate.WindowSize = 0 }},
		{"speed bands inverted", func(c *Config) { c.Gate.SpeedImprovingMax = 1.2 }},
		{"no hour bands", func(c *Config) { c.Planner.HourBands = nil }},
		{"zero plan limit", func(c *Config) { c.Planner.MaxActivePlans = 0 }},
		{"zero struggle streak", func(c *Config) { c.Session.StruggleWrongStreak = 0 }},
		{"zero velocity window", func(c *Config) { c.Planner.VelocityWindow = 0 }},
	}
	for _, tt := range tests {
		cfg := Default()
		tt.mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected validation error", tt.name)
		}
	}
}

func TestHourBandCeilings_Ascending(t *testing.T) {
	ceilings := Default().Planner.HourBandCeilings()
	if len(ceilings) != 5 {
		t.Fatalf("got %d ceilings, want 5", len(ceilings))
	}
	for i := 1; i < len(ceilings); i++ {
		if ceilings[i] <= ceilings[i-1] {
			t.Errorf("ceilings not ascending: %v", ceilings)
		}
	}
	if ceilings[0] != 2 || ceilings[4] != 10 {
		t.Errorf("got ceilings %v, want 2..10", ceilings)
	}
}
