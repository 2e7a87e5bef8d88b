package naming

import (
	"os"
	"path/filepath"
	"testing"
)

func touch(t *testing.T, dir, name string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), nil, 0644); err != nil {
		t.Fatal(err)
	}
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	if Exists(dir, "part.ipt") {
		t.Error("Exists true in empty dir")
	}
	touch(t, dir, "part.ipt")
	if !Exists(dir, "part.ipt") {
		t.Error("Exists false for present file")
	}
	if !Exists(dir, ".ipt") {
		t.Error("Exists false for suffix match")
	}
	if Exists(dir, "other.ipt") {
		t.Error("Exists true for absent file")
	}
}

func TestNextIndex(t *testing.T) {
	dir := t.TempDir()
	if got := NextIndex(dir, "part.ipt"); got != 0 {
		t.Errorf("NextIndex in empty dir = %d, want 0", got)
	}

	touch(t, dir, "00000_part.ipt")
	touch(t, dir, "00003_part.ipt")
	if got := NextIndex(dir, "part.ipt"); got != 4 {
		t.Errorf("NextIndex = %d, want 4", got)
	}

	// Unrelated files do not affect the count.
	touch(t, dir, "00009_other.ipt")
	if got := NextIndex(dir, "part.ipt"); got != 4 {
		t.Errorf("NextIndex with unrelated files = %d, want 4", got)
	}
}

func TestNumbered(t *testing.T) {
	dir := t.TempDir()
	if got := Numbered(dir, "Body1", ".stp"); got != "00000_Body1.stp" {
		t.Errorf("Numbered = %q, want 00000_Body1.stp", got)
	}
	touch(t, dir, "00000_Body1.stp")
	if got := Numbered(dir, "Body1", ".stp"); got != "00001_Body1.stp" {
		t.Errorf("Numbered = %q, want 00001_Body1.stp", got)
	}
}

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	if err := EnsureDir(dir); err != nil {
		t.Fatalf("EnsureDir: %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Fatalf("stat %s: %v", dir, err)
	}
	// Idempotent.
	if err := EnsureDir(dir); err != nil {
		t.Fatalf("EnsureDir twice: %v", err)
	}
}
