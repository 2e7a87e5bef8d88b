// Package batch iterates whole folders of documents through the host
// application: perspective image export per assembly, and assembly builds
// from component tables. Everything runs serially; the host is a single
// exclusive automation server and each call blocks inside it.
package batch

import (
	"fmt"
	"path/filepath"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"

	"goinvent/grid"
	"goinvent/inventor"
	"goinvent/viewstyle"
)

// Result holds the outcome of one export in a batch run.
type Result struct {
	File    string `json:"file"`
	View    string `json:"view,omitempty"`
	Image   string `json:"image,omitempty"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// PerspectiveConfig holds the shared settings for a folder run.
type PerspectiveConfig struct {
	AssemblyDir string
	OutputDir   string // defaults to AssemblyDir
	Views       []viewstyle.View
	Format      viewstyle.Format
	Width       int
	Height      int
	Style       viewstyle.Style
}

// PerspectiveRun exports the requested perspectives for every assembly
// (*.iam) in a folder. A failed file or view is recorded and the run
// continues.
func PerspectiveRun(ses *inventor.Session, cfg PerspectiveConfig) ([]Result, error) {
	if cfg.OutputDir == "" {
		cfg.OutputDir = cfg.AssemblyDir
	}

	files, err := filepath.Glob(filepath.Join(cfg.AssemblyDir, "*.iam"))
	if err != nil {
		return nil, fmt.Errorf("batch: scan %s: %w", cfg.AssemblyDir, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("batch: no assembly files (*.iam) in %s", cfg.AssemblyDir)
	}

	var results []Result
	for _, f := range files {
		name := filepath.Base(f)
		base := strings.TrimSuffix(name, filepath.Ext(name))

		asm, err := ses.OpenAssembly(cfg.AssemblyDir, name, inventor.AssemblyOptions{})
		if err != nil {
			results = append(results, Result{File: name, Error: err.Error()})
			continue
		}

		exports := asm.PerspectiveImages(inventor.PerspectiveOptions{
			BaseName: base,
			OutDir:   cfg.OutputDir,
			Views:    cfg.Views,
			Format:   cfg.Format,
			Width:    cfg.Width,
			Height:   cfg.Height,
			Style:    cfg.Style,
		})
		for _, e := range exports {
			r := Result{File: name, View: string(e.View)}
			if e.Err != nil {
				r.Error = e.Err.Error()
			} else {
				r.Image = e.Path
				r.Success = true
			}
			results = append(results, r)
		}

		if err := asm.Close(false); err != nil {
			results = append(results, Result{File: name, Error: fmt.Sprintf("close: %v", err)})
		}
	}
	return results, nil
}

// BuildFromTable creates (or overwrites) an assembly document and places
// every component table entry on the grid, then saves. Per-entry failures
// do not stop the build.
func BuildFromTable(ses *inventor.Session, dir, name string, spacing r3.Vec, table []grid.Component) ([]inventor.PlaceResult, error) {
	asm, err := ses.OpenAssembly(dir, name, inventor.AssemblyOptions{
		Overwrite: true,
		Spacing:   spacing,
	})
	if err != nil {
		return nil, err
	}

	placed := asm.PlaceTable(table)

	if err := asm.Save(); err != nil {
		asm.Close(false)
		return placed, fmt.Errorf("batch: save %s: %w", name, err)
	}
	return placed, asm.Close(false)
}
