// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"slate/internal/sched"
)

// Config holds the application configuration.
type Config struct {
	Service ServiceConfig `toml:"service"`
	Roster  RosterConfig  `toml:"roster"`
	Storage StorageConfig `toml:"storage"`
	UI      UIConfig      `toml:"ui"`
}

// ServiceConfig holds scheduling-service connection settings.
type ServiceConfig struct {
	BaseURL        string `toml:"base_url"`        // e.g., "http://localhost:5000"
	TimeoutSeconds int    `toml:"timeout_seconds"` // per-call HTTP timeout
}

// Timeout returns the configured HTTP timeout as a duration.
func (s ServiceConfig) Timeout() time.Duration {
	return time.Duration(s.TimeoutSeconds) * time.Second
}

// TeacherConfig describes one teacher in the roster. Availability maps
// a day name to the time slots the teacher can take; leaving a day out
// means fully available that day.
type TeacherConfig struct {
	Name         string              `toml:"name"`
	Subjects     []string            `toml:"subjects"`
	Availability map[string][]string `toml:"availability"`
}

// SubjectConfig describes one subject in the roster.
type SubjectConfig struct {
	Name            string `toml:"name"`
	Semester        string `toml:"semester"`
	SessionsPerWeek int    `toml:"sessions_per_week"`
}

// RosterConfig holds the full roster sent to the scheduling service.
type RosterConfig struct {
	Teachers   []TeacherConfig `toml:"teachers"`
	Subjects   []SubjectConfig `toml:"subjects"`
	Classrooms []string        `toml:"classrooms"`
	TimeSlots  []string        `toml:"time_slots"`
	Days       []string        `toml:"days"`
	Semesters  []string        `toml:"semesters"`
}

// StorageConfig holds database settings.
type StorageConfig struct {
	DBPath string `toml:"db_path"`
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Theme string `toml:"theme"` // "mocha", "macchiato", "frappe", "latte"
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Service: ServiceConfig{
			BaseURL:        "http://localhost:5000",
			TimeoutSeconds: 30,
		},
		Roster: RosterConfig{
			Days:      []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"},
			TimeSlots: []string{"09:00-10:00", "10:00-11:00", "11:00-12:00", "13:00-14:00", "14:00-15:00"},
		},
		Storage: StorageConfig{
			DBPath: defaultDBPath(),
		},
		UI: UIConfig{
			Theme: "frappe",
		},
	}
}

// defaultDBPath returns the default database path.
func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "slate.db"
	}
	return filepath.Join(home, ".local", "share", "slate", "slate.db")
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "slate", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	cfg.Storage.DBPath = expandPath(cfg.Storage.DBPath)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("SLATE_SERVICE_URL"); v != "" {
		cfg.Service.BaseURL = v
	}
	if v := os.Getenv("SLATE_DB_PATH"); v != "" {
		cfg.Storage.DBPath = v
	}
	if v := os.Getenv("SLATE_UI_THEME"); v != "" {
		cfg.UI.Theme = v
	}
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Service.BaseURL == "" {
		return errors.New("service base_url must be set")
	}
	if c.Service.TimeoutSeconds < 0 {
		return errors.New("timeout_seconds cannot be negative")
	}
	if c.Storage.DBPath == "" {
		return errors.New("db_path must be set")
	}

	seen := make(map[string]bool)
	for _, d := range c.Roster.Days {
		if d == "" {
			return errors.New("roster days cannot contain empty names")
		}
		if seen[d] {
			return fmt.Errorf("duplicate roster day: %s", d)
		}
		seen[d] = true
	}
	seen = make(map[string]bool)
	for _, s := range c.Roster.TimeSlots {
		if s == "" {
			return errors.New("roster time slots cannot contain empty names")
		}
		if seen[s] {
			return fmt.Errorf("duplicate time slot: %s", s)
		}
		seen[s] = true
	}
	return nil
}

// RosterReady reports whether the roster is complete enough to request
// a generation. Mirrors the required-data check the service applies.
func (c *Config) RosterReady() error {
	r := c.Roster
	switch {
	case len(r.Teachers) == 0:
		return errors.New("roster has no teachers")
	case len(r.Subjects) == 0:
		return errors.New("roster has no subjects")
	case len(r.Classrooms) == 0:
		return errors.New("roster has no classrooms")
	case len(r.TimeSlots) == 0:
		return errors.New("roster has no time slots")
	case len(r.Days) == 0:
		return errors.New("roster has no days")
	}
	return nil
}

// WireRoster converts the roster config into the service wire shape.
func (c *Config) WireRoster() sched.Roster {
	teachers := make([]sched.Teacher, 0, len(c.Roster.Teachers))
	for _, t := range c.Roster.Teachers {
		teachers = append(teachers, sched.Teacher{
			Name:         t.Name,
			Subjects:     t.Subjects,
			Availability: t.Availability,
		})
	}
	subjects := make([]sched.Subject, 0, len(c.Roster.Subjects))
	for _, s := range c.Roster.Subjects {
		subjects = append(subjects, sched.Subject{
			Name:            s.Name,
			Semester:        s.Semester,
			SessionsPerWeek: s.SessionsPerWeek,
		})
	}
	return sched.Roster{
		Teachers:   teachers,
		Subjects:   subjects,
		Classrooms: c.Roster.Classrooms,
		TimeSlots:  c.Roster.TimeSlots,
		Days:       c.Roster.Days,
		Semesters:  c.Roster.Semesters,
	}
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
