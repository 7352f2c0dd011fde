// Package cache stores per-year holiday calendar snapshots on disk so
// repeated runs within a week do not re-fetch the holiday API.
package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/nvidal/clockfill/internal/timecalc"
)

// maxSnapshotAge is how long a current- or future-year snapshot is trusted.
// Past years are immutable and never expire.
const maxSnapshotAge = 7 * 24 * time.Hour

// Store reads and writes snapshots under a base directory.
type Store struct {
	dir string
}

// Dir returns the default cache directory (~/.clockfill/cache).
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".clockfill", "cache"), nil
}

// New creates a Store rooted at dir.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// snapshot is the on-disk file format.
type snapshot struct {
	Year      int       `json:"year"`
	FetchedAt time.Time `json:"fetched_at"`
	Dates     []string  `json:"dates"`
}

func (s *Store) path(year int) string {
	return filepath.Join(s.dir, fmt.Sprintf("holidays-%d.json", year))
}

// Load returns the cached holiday dates for year, with ok=false on a miss.
// A corrupt file is backed up with a .corrupt suffix and treated as a miss.
func (s *Store) Load(year int) ([]time.Time, bool, error) {
	path := s.path(year)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache error reading %s: %w", path, err)
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		backupPath := path + ".corrupt"
		_ = os.Rename(path, backupPath)
		return nil, false, nil
	}

	if stale(snap, time.Now()) {
		return nil, false, nil
	}

	dates := make([]time.Time, 0, len(snap.Dates))
	for _, ds := range snap.Dates {
		d, err := time.Parse("2006-01-02", ds)
		if err != nil {
			// Unparseable content is handled like corruption.
			backupPath := path + ".corrupt"
			_ = os.Rename(path, backupPath)
			return nil, false, nil
		}
		dates = append(dates, timecalc.DateOf(d))
	}
	return dates, true, nil
}

// stale reports whether a snapshot should be re-fetched. Holiday calendars
// for finished years never change; the current year's can gain decreed days.
func stale(snap snapshot, now time.Time) bool {
	if snap.Year < now.Year() {
		return false
	}
	return now.Sub(snap.FetchedAt) > maxSnapshotAge
}

// Save atomically writes the holiday dates for year.
func (s *Store) Save(year int, dates []time.Time) error {
	snap := snapshot{Year: year, FetchedAt: time.Now()}
	for _, d := range dates {
		snap.Dates = append(snap.Dates, d.Format("2006-01-02"))
	}

	path := s.path(year)
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("cache error creating directories: %w", err)
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("cache error marshalling JSON: %w", err)
	}

	// Atomic write: write to temp file then rename.
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o600); err != nil {
		return fmt.Errorf("cache error writing temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("cache error renaming temp file: %w", err)
	}
	return nil
}
