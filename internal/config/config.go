// Package config loads the clockfill configuration from
// ~/.clockfill/config.json. The file supports single-line // comments for
// documentation purposes. The loaded Config is immutable for the run and
// passed explicitly to every component.
package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nvidal/clockfill/internal/plan"
)

// Config holds the fixed work schedule and remote identifiers.
type Config struct {
	// Workspace is the Clockify workspace name. Empty uses the first
	// workspace of the account.
	Workspace string `json:"workspace"`
	// Project is the Clockify project entries are created under.
	Project string `json:"project"`
	// Tag is the tag applied to regular work-day entries.
	Tag string `json:"tag"`
	// HolidayTag is the tag applied to public-holiday entries.
	HolidayTag string `json:"holiday_tag"`
	// Timezone is the IANA timezone the daily schedule is expressed in.
	Timezone string `json:"timezone"`
	// StartTime and EndTime bound the daily work window (HH:MM).
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	// Billable marks created entries as billable.
	Billable *bool `json:"billable"`
	// Affirmatives are the answers accepted as "yes" at the confirmation
	// prompt, compared case-insensitively.
	Affirmatives []string `json:"affirmatives"`
}

// The default timezone is Colombian while the holiday calendar is
// Argentine; that combination is deliberate for remote work across the two.
const (
	DefaultProject    = "NexStar"
	DefaultTag        = "PHP"
	DefaultHolidayTag = "Vacation/Holiday"
	DefaultTimezone   = "America/Bogota"
	DefaultStartTime  = "08:00"
	DefaultEndTime    = "16:00"
)

func defaultAffirmatives() []string {
	return []string{"y", "yes", "s", "si", "sí"}
}

func defaultConfig() Config {
	billable := true
	return Config{
		Project:      DefaultProject,
		Tag:          DefaultTag,
		HolidayTag:   DefaultHolidayTag,
		Timezone:     DefaultTimezone,
		StartTime:    DefaultStartTime,
		EndTime:      DefaultEndTime,
		Billable:     &billable,
		Affirmatives: defaultAffirmatives(),
	}
}

// configTemplate is the annotated config written on first run.
// Lines whose trimmed content starts with // are stripped before JSON parsing,
// allowing human-readable documentation inside the file.
const configTemplate = `// clockfill configuration – ~/.clockfill/config.json
//
// All settings are optional; the built-in defaults shown below are used for
// any field left empty. Edit this file to customise clockfill behaviour.
{
  // Clockify workspace name. Leave empty to use the first workspace.
  "workspace": "",

  // Clockify project the generated entries belong to.
  "project": "NexStar",

  // Tag applied to regular work-day entries.
  "tag": "PHP",

  // Tag applied to public-holiday entries.
  "holiday_tag": "Vacation/Holiday",

  // IANA timezone the daily schedule below is expressed in.
  "timezone": "America/Bogota",

  // Daily work window. Hours per day = end - start.
  "start_time": "08:00",
  "end_time": "16:00",

  // Whether created entries are marked billable.
  "billable": true,

  // Answers accepted as "yes" at the confirmation prompt.
  "affirmatives": ["y", "yes", "s", "si", "sí"]
}
`

// configFilePath returns the path to ~/.clockfill/config.json.
func configFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".clockfill", "config.json"), nil
}

// stripLineComments removes lines whose leading non-whitespace content starts
// with //. Only full-line comments are handled; inline comments are not stripped.
func stripLineComments(data []byte) []byte {
	var out []byte
	for _, line := range bytes.Split(data, []byte("\n")) {
		if bytes.HasPrefix(bytes.TrimLeft(line, " \t"), []byte("//")) {
			continue
		}
		out = append(out, line...)
		out = append(out, '\n')
	}
	return out
}

// Load reads ~/.clockfill/config.json, creating it with annotated defaults
// on first run.
func Load() (Config, error) {
	path, err := configFilePath()
	if err != nil {
		return defaultConfig(), err
	}
	return LoadFile(path)
}

// LoadFile reads the configuration from an explicit path. A missing file
// yields defaults and writes the annotated template there.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		// First run: write the annotated template so users can discover options.
		if writeErr := writeDefault(path); writeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not create config file %s: %v\n", path, writeErr)
		}
		return defaultConfig(), nil
	}
	if err != nil {
		return defaultConfig(), fmt.Errorf("reading config file %s: %w", path, err)
	}

	cleaned := stripLineComments(data)
	var cfg Config
	if err := json.Unmarshal(cleaned, &cfg); err != nil {
		return defaultConfig(), fmt.Errorf("parsing config file %s: %w\nTip: delete the file to regenerate defaults", path, err)
	}

	// Fill zero-value fields with built-in defaults so callers always get
	// a usable Config even if the user only partially fills in the file.
	if cfg.Project == "" {
		cfg.Project = DefaultProject
	}
	if cfg.Tag == "" {
		cfg.Tag = DefaultTag
	}
	if cfg.HolidayTag == "" {
		cfg.HolidayTag = DefaultHolidayTag
	}
	if cfg.Timezone == "" {
		cfg.Timezone = DefaultTimezone
	}
	if cfg.StartTime == "" {
		cfg.StartTime = DefaultStartTime
	}
	if cfg.EndTime == "" {
		cfg.EndTime = DefaultEndTime
	}
	if cfg.Billable == nil {
		billable := true
		cfg.Billable = &billable
	}
	if len(cfg.Affirmatives) == 0 {
		cfg.Affirmatives = defaultAffirmatives()
	}

	return cfg, nil
}

// Schedule builds the validated daily schedule from the configured times.
func (c Config) Schedule() (plan.Schedule, error) {
	start, err := plan.ParseClock(c.StartTime)
	if err != nil {
		return plan.Schedule{}, fmt.Errorf("start_time: %w", err)
	}
	end, err := plan.ParseClock(c.EndTime)
	if err != nil {
		return plan.Schedule{}, fmt.Errorf("end_time: %w", err)
	}
	s := plan.Schedule{Start: start, End: end, Timezone: c.Timezone}
	if err := s.Validate(); err != nil {
		return plan.Schedule{}, err
	}
	return s, nil
}

// writeDefault creates the config directory and writes the annotated default
// config template.
func writeDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(configTemplate), 0o600); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}
	return nil
}
