package batch

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteManifest(t *testing.T) {
	results := []Result{
		{File: "scope.iam", View: "front", Image: "out/scope_front.png", Success: true},
		{File: "scope.iam", View: "back", Error: "camera apply failed"},
		{File: "broken.iam", Error: "open failed"},
	}

	path := filepath.Join(t.TempDir(), "manifest.json")
	if err := WriteManifest(path, results); err != nil {
		t.Fatalf("WriteManifest: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var got []Result
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(got) != len(results) {
		t.Fatalf("got %d results, want %d", len(got), len(results))
	}
	for i := range results {
		if got[i] != results[i] {
			t.Errorf("result %d = %+v, want %+v", i, got[i], results[i])
		}
	}
}

func TestWriteManifestBadPath(t *testing.T) {
	err := WriteManifest(filepath.Join(t.TempDir(), "missing", "manifest.json"), nil)
	if err == nil {
		t.Error("WriteManifest into missing directory succeeded")
	}
}
