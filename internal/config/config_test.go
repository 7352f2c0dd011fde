package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nvidal/clockfill/internal/config"
)

func TestLoadFile_FirstRunWritesTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg, err := config.LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Project != config.DefaultProject {
		t.Errorf("Project = %q, want %q", cfg.Project, config.DefaultProject)
	}
	if cfg.Timezone != config.DefaultTimezone {
		t.Errorf("Timezone = %q, want %q", cfg.Timezone, config.DefaultTimezone)
	}
	if cfg.Billable == nil || !*cfg.Billable {
		t.Error("Billable should default to true")
	}

	// The annotated template must have been created and be loadable again.
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("template not written: %v", err)
	}
	again, err := config.LoadFile(path)
	if err != nil {
		t.Fatalf("reloading template: %v", err)
	}
	if again.Project != config.DefaultProject {
		t.Errorf("reloaded Project = %q", again.Project)
	}
}

func TestLoadFile_PartialFileBackfilled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `// custom settings
{
  "project": "Internal",
  "billable": false
}
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := config.LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Project != "Internal" {
		t.Errorf("Project = %q, want Internal", cfg.Project)
	}
	if cfg.Billable == nil || *cfg.Billable {
		t.Error("explicit billable=false must not be backfilled to true")
	}
	if cfg.Tag != config.DefaultTag {
		t.Errorf("Tag = %q, want backfilled default %q", cfg.Tag, config.DefaultTag)
	}
	if len(cfg.Affirmatives) == 0 {
		t.Error("Affirmatives not backfilled")
	}
}

func TestLoadFile_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{broken"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := config.LoadFile(path); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestSchedule(t *testing.T) {
	cfg, err := config.LoadFile(filepath.Join(t.TempDir(), "config.json"))
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	s, err := cfg.Schedule()
	if err != nil {
		t.Fatalf("Schedule: %v", err)
	}
	if s.HoursPerDay() != 8.0 {
		t.Errorf("HoursPerDay = %v, want 8.0", s.HoursPerDay())
	}

	cfg.StartTime = "16:00"
	cfg.EndTime = "08:00"
	if _, err := cfg.Schedule(); err == nil {
		t.Error("expected error for end before start")
	}
}
