package grid

import (
	"encoding/json"
	"fmt"
	"os"

	"gonum.org/v1/gonum/spatial/r3"
)

// optikit-layout.json is the standardized OpenUC2 OptiKit exchange format:
// a top-level "uc2_components" array of {name, file, grid_pos, rotation}.
type layoutFile struct {
	Components []layoutComponent `json:"uc2_components"`
}

type layoutComponent struct {
	Name     string    `json:"name"`
	File     string    `json:"file"`
	GridPos  []int     `json:"grid_pos"`
	Rotation []float64 `json:"rotation"`
}

// ReadLayout loads a component table from an optikit-layout.json file.
func ReadLayout(path string) ([]Component, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("grid: read %s: %w", path, err)
	}

	var layout layoutFile
	if err := json.Unmarshal(raw, &layout); err != nil {
		return nil, fmt.Errorf("grid: parse %s: %w", path, err)
	}
	if layout.Components == nil {
		return nil, fmt.Errorf("grid: %s: missing uc2_components array", path)
	}

	table := make([]Component, 0, len(layout.Components))
	for i, lc := range layout.Components {
		if lc.File == "" {
			return nil, fmt.Errorf("grid: %s component %d: missing file", path, i)
		}
		if len(lc.GridPos) != 3 {
			return nil, fmt.Errorf("grid: %s component %d: grid_pos must have 3 entries", path, i)
		}
		c := Component{
			Name: lc.Name,
			File: lc.File,
			Pos:  Coord{X: lc.GridPos[0], Y: lc.GridPos[1], Z: lc.GridPos[2]},
		}
		if len(lc.Rotation) == 3 {
			c.Rotation = r3.Vec{X: lc.Rotation[0], Y: lc.Rotation[1], Z: lc.Rotation[2]}
		} else if lc.Rotation != nil {
			return nil, fmt.Errorf("grid: %s component %d: rotation must have 3 entries", path, i)
		}
		table = append(table, c)
	}
	return table, nil
}
