package grid

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"gonum.org/v1/gonum/spatial/r3"
)

// Header is the column layout for component table CSV files. The three
// rotation columns are optional on read and default to zero.
var Header = []string{"name", "file_path", "grid_x", "grid_y", "grid_z", "rot_x", "rot_y", "rot_z"}

// ReadCSV loads a component table from a CSV file with the Header columns.
func ReadCSV(path string) ([]Component, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("grid: open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("grid: parse %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("grid: %s: empty file", path)
	}

	col := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		col[name] = i
	}
	for _, required := range Header[:5] {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("grid: %s: missing column %q", path, required)
		}
	}

	var table []Component
	for n, row := range rows[1:] {
		c := Component{
			Name: row[col["name"]],
			File: row[col["file_path"]],
		}
		var err error
		if c.Pos.X, err = strconv.Atoi(row[col["grid_x"]]); err != nil {
			return nil, fmt.Errorf("grid: %s row %d: grid_x: %w", path, n+2, err)
		}
		if c.Pos.Y, err = strconv.Atoi(row[col["grid_y"]]); err != nil {
			return nil, fmt.Errorf("grid: %s row %d: grid_y: %w", path, n+2, err)
		}
		if c.Pos.Z, err = strconv.Atoi(row[col["grid_z"]]); err != nil {
			return nil, fmt.Errorf("grid: %s row %d: grid_z: %w", path, n+2, err)
		}
		c.Rotation, err = rotationColumns(row, col)
		if err != nil {
			return nil, fmt.Errorf("grid: %s row %d: %w", path, n+2, err)
		}
		table = append(table, c)
	}
	return table, nil
}

func rotationColumns(row []string, col map[string]int) (r3.Vec, error) {
	var rot r3.Vec
	for _, axis := range []struct {
		name string
		dst  *float64
	}{
		{"rot_x", &rot.X},
		{"rot_y", &rot.Y},
		{"rot_z", &rot.Z},
	} {
		i, ok := col[axis.name]
		if !ok || i >= len(row) || row[i] == "" {
			continue
		}
		v, err := strconv.ParseFloat(row[i], 64)
		if err != nil {
			return r3.Vec{}, fmt.Errorf("%s: %w", axis.name, err)
		}
		*axis.dst = v
	}
	return rot, nil
}

// WriteCSV saves a component table with the full Header.
func WriteCSV(path string, table []Component) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("grid: create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(Header); err != nil {
		return fmt.Errorf("grid: write %s: %w", path, err)
	}
	for _, c := range table {
		row := []string{
			c.Name,
			c.File,
			strconv.Itoa(c.Pos.X),
			strconv.Itoa(c.Pos.Y),
			strconv.Itoa(c.Pos.Z),
			formatAngle(c.Rotation.X),
			formatAngle(c.Rotation.Y),
			formatAngle(c.Rotation.Z),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("grid: write %s: %w", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("grid: write %s: %w", path, err)
	}
	return nil
}

func formatAngle(a float64) string {
	return strconv.FormatFloat(a, 'g', -1, 64)
}
