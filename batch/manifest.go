package batch

import (
	"encoding/json"
	"fmt"
	"os"
)

// WriteManifest writes the batch results as a JSON manifest so downstream
// tooling can pick up the produced image paths.
func WriteManifest(path string, results []Result) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("batch: marshal manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("batch: write %s: %w", path, err)
	}
	return nil
}
