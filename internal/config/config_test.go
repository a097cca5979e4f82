package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Service.BaseURL != "http://localhost:5000" {
		t.Errorf("expected default base_url, got %s", cfg.Service.BaseURL)
	}
	if cfg.Service.TimeoutSeconds != 30 {
		t.Errorf("expected 30s timeout, got %d", cfg.Service.TimeoutSeconds)
	}
	if len(cfg.Roster.Days) != 5 {
		t.Errorf("expected 5 default days, got %d", len(cfg.Roster.Days))
	}
	if cfg.UI.Theme != "frappe" {
		t.Errorf("expected theme frappe, got %s", cfg.UI.Theme)
	}
}

func TestLoadFrom_FileNotExists(t *testing.T) {
	cfg, err := LoadFrom("/nonexistent/path/config.toml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Service.BaseURL != "http://localhost:5000" {
		t.Errorf("expected default base_url, got %s", cfg.Service.BaseURL)
	}
}

func TestLoadFrom_ValidFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	content := `
[service]
base_url = "http://scheduler:5000"
timeout_seconds = 10

[roster]
days = ["Mon", "Tue"]
time_slots = ["9-10", "10-11"]
classrooms = ["R1", "R2"]
semesters = ["S1"]

[[roster.teachers]]
name = "Ada"
subjects = ["Math"]

[[roster.teachers]]
name = "Grace"
subjects = ["CS"]
[roster.teachers.availability]
Mon = ["9-10"]

[[roster.subjects]]
name = "Math"
semester = "S1"
sessions_per_week = 3

[storage]
db_path = "/tmp/slate-test.db"

[ui]
theme = "latte"
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Service.BaseURL != "http://scheduler:5000" {
		t.Errorf("base_url not loaded: %s", cfg.Service.BaseURL)
	}
	if len(cfg.Roster.Teachers) != 2 {
		t.Fatalf("expected 2 teachers, got %d", len(cfg.Roster.Teachers))
	}
	if cfg.Roster.Teachers[1].Availability["Mon"][0] != "9-10" {
		t.Errorf("availability not loaded: %+v", cfg.Roster.Teachers[1].Availability)
	}
	if cfg.Roster.Subjects[0].SessionsPerWeek != 3 {
		t.Errorf("sessions_per_week not loaded: %d", cfg.Roster.Subjects[0].SessionsPerWeek)
	}
	if cfg.UI.Theme != "latte" {
		t.Errorf("theme not loaded: %s", cfg.UI.Theme)
	}
}

func TestLoadFrom_EnvOverrides(t *testing.T) {
	t.Setenv("SLATE_SERVICE_URL", "http://override:9000")
	t.Setenv("SLATE_UI_THEME", "mocha")

	cfg, err := LoadFrom("/nonexistent/config.toml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Service.BaseURL != "http://override:9000" {
		t.Errorf("env override not applied: %s", cfg.Service.BaseURL)
	}
	if cfg.UI.Theme != "mocha" {
		t.Errorf("env override not applied: %s", cfg.UI.Theme)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid defaults", func(c *Config) {}, false},
		{"empty base_url", func(c *Config) { c.Service.BaseURL = "" }, true},
		{"negative timeout", func(c *Config) { c.Service.TimeoutSeconds = -1 }, true},
		{"empty db_path", func(c *Config) { c.Storage.DBPath = "" }, true},
		{"duplicate day", func(c *Config) { c.Roster.Days = []string{"Mon", "Mon"} }, true},
		{"empty slot name", func(c *Config) { c.Roster.TimeSlots = []string{""} }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestRosterReady(t *testing.T) {
	cfg := Default()
	if err := cfg.RosterReady(); err == nil {
		t.Error("default roster should not be generation-ready")
	}

	cfg.Roster.Teachers = []TeacherConfig{{Name: "Ada", Subjects: []string{"Math"}}}
	cfg.Roster.Subjects = []SubjectConfig{{Name: "Math"}}
	cfg.Roster.Classrooms = []string{"R1"}
	if err := cfg.RosterReady(); err != nil {
		t.Errorf("expected ready roster, got %v", err)
	}
}

func TestWireRoster(t *testing.T) {
	cfg := Default()
	cfg.Roster.Teachers = []TeacherConfig{{Name: "Ada", Subjects: []string{"Math"}, Availability: map[string][]string{"Monday": {"09:00-10:00"}}}}
	cfg.Roster.Subjects = []SubjectConfig{{Name: "Math", Semester: "S1", SessionsPerWeek: 2}}
	cfg.Roster.Classrooms = []string{"R1"}

	r := cfg.WireRoster()
	if len(r.Teachers) != 1 || r.Teachers[0].Name != "Ada" {
		t.Errorf("teachers not converted: %+v", r.Teachers)
	}
	if r.Teachers[0].Availability["Monday"][0] != "09:00-10:00" {
		t.Errorf("availability not converted: %+v", r.Teachers[0].Availability)
	}
	if r.Subjects[0].SessionsPerWeek != 2 {
		t.Errorf("subjects not converted: %+v", r.Subjects)
	}
	if len(r.Days) != 5 || len(r.TimeSlots) != 5 {
		t.Errorf("grid dimensions not carried: %d days, %d slots", len(r.Days), len(r.TimeSlots))
	}
}
