// Package naming implements the numbered-copy convention used when a save
// target already exists: files are prefixed "00007_" with the number one
// past the highest existing copy in the directory.
package naming

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// Exists reports whether any file in dir matches *name.
func Exists(dir, name string) bool {
	matches, err := filepath.Glob(filepath.Join(dir, "*"+name))
	return err == nil && len(matches) > 0
}

// NextIndex scans dir for files of the form *_name* and returns the next
// free copy number. An unreadable or empty directory yields 0.
func NextIndex(dir, name string) int {
	matches, err := filepath.Glob(filepath.Join(dir, "*_"+name+"*"))
	if err != nil || len(matches) == 0 {
		return 0
	}
	sort.Strings(matches)
	last := filepath.Base(matches[len(matches)-1])
	n, err := strconv.Atoi(strings.SplitN(last, "_", 2)[0])
	if err != nil {
		return 0
	}
	return n + 1
}

// Numbered returns the next numbered-copy filename for name in dir, with
// suffix appended (e.g. "00003_Body1.stp" for suffix ".stp").
func Numbered(dir, name, suffix string) string {
	return fmt.Sprintf("%05d_%s%s", NextIndex(dir, name), name, suffix)
}

// EnsureDir creates dir (and parents) if it does not exist.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("naming: create %s: %w", dir, err)
	}
	return nil
}
