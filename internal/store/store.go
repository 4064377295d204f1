package store

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	dirName        = ".lister"
	sqliteFileName = "notes.sqlite"
)

// Store is a notes directory. The zero Dir is invalid; use DefaultDir.
type Store struct {
	Dir string
}

// DiscoverDir walks up from start looking for a .lister directory.
func DiscoverDir(start string) (string, bool) {
	dir := start
	for {
		candidate := filepath.Join(dir, dirName)
		if st, err := os.Stat(candidate); err == nil && st.IsDir() {
			return candidate, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// DefaultDir returns LISTER_DIR if set, else the nearest .lister directory
// above the working directory, else ./.lister.
func DefaultDir() (string, error) {
	if v := strings.TrimSpace(os.Getenv("LISTER_DIR")); v != "" {
		return v, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	if found, ok := DiscoverDir(cwd); ok {
		return found, nil
	}
	return filepath.Join(cwd, dirName), nil
}

func (s Store) Ensure() error {
	return os.MkdirAll(s.Dir, 0o755)
}

func (s Store) sqlitePath() string {
	return filepath.Join(s.Dir, sqliteFileName)
}

// Path is the database file the store reads and writes.
func (s Store) Path() string { return s.sqlitePath() }

// Exists reports whether the database file has been created.
func (s Store) Exists() bool {
	_, err := os.Stat(s.sqlitePath())
	return err == nil
}
