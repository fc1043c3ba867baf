// Package filex holds filesystem helpers for on-disk boards.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// SQLitePath returns the file a SQLite DSN points at, or "" for in-memory
// databases.
func SQLitePath(dsn string) string {
	if strings.Contains(dsn, "mode=memory") {
		return ""
	}
	p, _, _ := strings.Cut(strings.TrimPrefix(dsn, "file:"), "?")
	if p == "" || p == ":memory:" {
		return ""
	}
	return p
}

// EnsureParentDir creates the directory that will contain path.
func EnsureParentDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o770); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return nil
}
