package inventor

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-ole/go-ole"
	"gonum.org/v1/gonum/spatial/r3"

	"goinvent/grid"
)

// Assembly is a handle to an open assembly document.
type Assembly struct {
	document
	compdef *ole.IDispatch
	spacing r3.Vec
}

// AssemblyOptions controls how an assembly document is opened.
type AssemblyOptions struct {
	Units     Units  // defaults to Metric
	Overwrite bool   // delete an existing dir/name before creating
	Spacing   r3.Vec // grid spacing; zero value means grid.DefaultSpacing
}

// OpenAssembly opens dir/name as an assembly document, or creates a new one
// when the file does not exist (or name is empty). The host's dialogs are
// suppressed around the open so stale assemblies update silently.
func (s *Session) OpenAssembly(dir, name string, opts AssemblyOptions) (*Assembly, error) {
	units := opts.Units
	if units == "" {
		units = Metric
	}
	if opts.Overwrite && name != "" {
		if err := s.removeIfExists(dir, name); err != nil {
			return nil, err
		}
	}

	s.SetSilentOperation(true)
	doc, err := s.openOrCreate(kAssemblyDocumentObject, dir, name)
	s.SetSilentOperation(false)
	if err != nil {
		return nil, err
	}

	a := &Assembly{
		document: document{ses: s, disp: doc, dir: dir, name: name},
		spacing:  opts.Spacing,
	}
	if a.spacing == (r3.Vec{}) {
		a.spacing = grid.DefaultSpacing
	}
	if err := a.setUnits(units); err != nil {
		doc.Release()
		return nil, err
	}
	a.compdef, err = getDisp(doc, "ComponentDefinition")
	if err != nil {
		doc.Release()
		return nil, err
	}
	return a, nil
}

// SetGridSpacing replaces the per-axis grid spacing. All components must be
// strictly positive.
func (a *Assembly) SetGridSpacing(s r3.Vec) error {
	if s.X <= 0 || s.Y <= 0 || s.Z <= 0 {
		return fmt.Errorf("inventor: grid spacing must be positive, got (%g, %g, %g)", s.X, s.Y, s.Z)
	}
	a.spacing = s
	return nil
}

// GridSpacing returns the current per-axis grid spacing.
func (a *Assembly) GridSpacing() r3.Vec { return a.spacing }

// Occurrence is a placed component instance inside an assembly document.
type Occurrence struct {
	disp *ole.IDispatch
}

// SetName renames the occurrence in the assembly browser.
func (o *Occurrence) SetName(name string) error {
	return put(o.disp, "Name", name)
}

// Name returns the occurrence's browser name.
func (o *Occurrence) Name() (string, error) {
	return getString(o.disp, "Name")
}

// Release drops the COM reference. The occurrence stays in the assembly.
func (o *Occurrence) Release() {
	if o.disp != nil {
		o.disp.Release()
		o.disp = nil
	}
}

// PlaceComponent places an occurrence of the component file at a world
// position (document units) with a Z-Y-X Euler rotation in degrees.
func (a *Assembly) PlaceComponent(file string, position, rotation r3.Vec) (*Occurrence, error) {
	if _, err := os.Stat(file); err != nil {
		return nil, fmt.Errorf("inventor: component file not found: %s", file)
	}

	rot := r3.Vec{
		X: toHostAngle(rotation.X),
		Y: toHostAngle(rotation.Y),
		Z: toHostAngle(rotation.Z),
	}
	pos := r3.Vec{
		X: a.units.toHostLength(position.X),
		Y: a.units.toHostLength(position.Y),
		Z: a.units.toHostLength(position.Z),
	}

	m, err := a.ses.transform(rot, pos)
	if err != nil {
		return nil, err
	}
	defer m.Release()

	occs, err := getDisp(a.compdef, "Occurrences")
	if err != nil {
		return nil, err
	}
	defer occs.Release()

	occ, err := callDisp(occs, "Add", file, m)
	if err != nil {
		return nil, fmt.Errorf("inventor: place %s: %w", file, err)
	}
	return &Occurrence{disp: occ}, nil
}

// PlaceAtGrid places a component at integer grid coordinates using the
// assembly's grid spacing.
func (a *Assembly) PlaceAtGrid(file string, c grid.Coord, rotation r3.Vec) (*Occurrence, error) {
	return a.PlaceComponent(file, grid.Position(c, a.spacing), rotation)
}

// PlaceResult records the outcome of placing one component table entry.
type PlaceResult struct {
	Name string
	File string
	Pos  grid.Coord
	Err  error
}

// PlaceTable places every entry of a component table, continuing past
// per-entry failures. Entries without a name get "Component_<n>".
func (a *Assembly) PlaceTable(table []grid.Component) []PlaceResult {
	results := make([]PlaceResult, 0, len(table))
	for i, c := range table {
		name := c.Name
		if name == "" {
			name = fmt.Sprintf("Component_%d", i+1)
		}
		res := PlaceResult{Name: name, File: c.File, Pos: c.Pos}

		occ, err := a.PlaceAtGrid(c.File, c.Pos, c.Rotation)
		if err != nil {
			res.Err = err
			a.ses.log.Warn("placement failed", "component", name, "error", err)
			results = append(results, res)
			continue
		}
		if err := occ.SetName(name); err != nil {
			// The occurrence is placed; a browser-name clash is not fatal.
			a.ses.log.Warn("could not rename occurrence", "component", name, "error", err)
		}
		occ.Release()
		a.ses.log.Debug("placed component", "component", name,
			"grid", fmt.Sprintf("(%d,%d,%d)", c.Pos.X, c.Pos.Y, c.Pos.Z))
		results = append(results, res)
	}
	return results
}

// Save writes the assembly in place: documents opened from a file save
// over it, fresh documents with a name get a SaveAs.
func (a *Assembly) Save() error {
	if a.name == "" {
		return call(a.disp, "Save")
	}
	if _, err := os.Stat(filepath.Join(a.dir, a.name)); err == nil {
		return call(a.disp, "Save")
	}
	_, err := a.save(a.dir, a.name)
	return err
}

// SaveAs writes the assembly to an explicit directory and name.
func (a *Assembly) SaveAs(dir, name string) (string, error) {
	return a.save(dir, name)
}

// Close closes the assembly document, saving first when save is true.
func (a *Assembly) Close(save bool) error {
	if a.compdef != nil {
		a.compdef.Release()
		a.compdef = nil
	}
	return a.close(save)
}
