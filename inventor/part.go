package inventor

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-ole/go-ole"
	"github.com/go-ole/go-ole/oleutil"

	"goinvent/internal/naming"
)

// Part is a handle to an open part document.
type Part struct {
	document
	compdef *ole.IDispatch
}

// PartOptions controls how a part document is opened.
type PartOptions struct {
	Units     Units // defaults to Metric
	Overwrite bool  // delete an existing dir/name before creating
}

// copyExtensions are the formats SaveCopyAs accepts, as the host's
// translators support them.
var copyExtensions = []string{"stp", "stl", "step", "stpz", "ste", "ipt", "igs", "ige", "iges"}

// OpenPart opens dir/name as a part document, or creates a new one when the
// file does not exist (or name is empty).
func (s *Session) OpenPart(dir, name string, opts PartOptions) (*Part, error) {
	units := opts.Units
	if units == "" {
		units = Metric
	}
	if opts.Overwrite && name != "" {
		if err := s.removeIfExists(dir, name); err != nil {
			return nil, err
		}
	}

	doc, err := s.openOrCreate(kPartDocumentObject, dir, name)
	if err != nil {
		return nil, err
	}
	p := &Part{document: document{ses: s, disp: doc, dir: dir, name: name}}
	if err := p.setUnits(units); err != nil {
		doc.Release()
		return nil, err
	}
	p.compdef, err = getDisp(doc, "ComponentDefinition")
	if err != nil {
		doc.Release()
		return nil, err
	}
	return p, nil
}

// SetParameter updates the named user parameter's expression, creating it
// as a length parameter if it does not exist. The value is in document
// units.
func (p *Part) SetParameter(name string, value float64) error {
	params, err := getDisp(p.compdef, "Parameters")
	if err != nil {
		return err
	}
	defer params.Release()
	user, err := getDisp(params, "UserParameters")
	if err != nil {
		return err
	}
	defer user.Release()

	if v, err := oleutil.GetProperty(user, "Item", name); err == nil {
		item := v.ToIDispatch()
		if item != nil {
			defer item.Release()
			return put(item, "Expression", strconv.FormatFloat(value, 'g', -1, 64))
		}
	}

	// Parameter does not exist yet; create it. The host takes the value in
	// its internal centimeters with the display unit declared alongside.
	if err := call(user, "AddByValue", name, p.units.toHostLength(value), p.units.lengthUnitsEnum()); err != nil {
		return fmt.Errorf("inventor: add parameter %s: %w", name, err)
	}
	return nil
}

// Bodies lists the names of all bodies in the part. Solids and surfaces
// both live in SurfaceBodies; SolidBodies is the fallback for hosts that
// reject the former.
func (p *Part) Bodies() ([]string, error) {
	names, err := p.bodyNames("SurfaceBodies")
	if err == nil {
		return names, nil
	}
	return p.bodyNames("SolidBodies")
}

func (p *Part) bodyNames(collection string) ([]string, error) {
	bodies, err := getDisp(p.compdef, collection)
	if err != nil {
		return nil, err
	}
	defer bodies.Release()
	count, err := getInt(bodies, "Count")
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, count)
	for i := 1; i <= count; i++ {
		body, err := getDisp(bodies, "Item", i)
		if err != nil {
			return nil, err
		}
		name, err := getString(body, "Name")
		body.Release()
		if err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, nil
}

// body returns the body dispatch matching name. The caller releases it.
func (p *Part) body(name string) (*ole.IDispatch, error) {
	bodies, err := getDisp(p.compdef, "SurfaceBodies")
	if err != nil {
		return nil, err
	}
	defer bodies.Release()
	count, err := getInt(bodies, "Count")
	if err != nil {
		return nil, err
	}
	for i := 1; i <= count; i++ {
		body, err := getDisp(bodies, "Item", i)
		if err != nil {
			return nil, err
		}
		bn, err := getString(body, "Name")
		if err != nil {
			body.Release()
			return nil, err
		}
		if bn == name {
			return body, nil
		}
		body.Release()
	}
	return nil, fmt.Errorf("inventor: no body named %q", name)
}

// ShowOnlyBody hides every body except the named one.
func (p *Part) ShowOnlyBody(name string) error {
	if _, err := p.body(name); err != nil {
		return err
	}
	return p.eachBody(func(bodyName string, body *ole.IDispatch) error {
		return put(body, "Visible", bodyName == name)
	})
}

// ShowAllBodies makes every body visible.
func (p *Part) ShowAllBodies() error {
	return p.eachBody(func(_ string, body *ole.IDispatch) error {
		return put(body, "Visible", true)
	})
}

func (p *Part) eachBody(fn func(name string, body *ole.IDispatch) error) error {
	bodies, err := getDisp(p.compdef, "SurfaceBodies")
	if err != nil {
		return err
	}
	defer bodies.Release()
	count, err := getInt(bodies, "Count")
	if err != nil {
		return err
	}
	for i := 1; i <= count; i++ {
		body, err := getDisp(bodies, "Item", i)
		if err != nil {
			return err
		}
		name, err := getString(body, "Name")
		if err == nil {
			err = fn(name, body)
		}
		body.Release()
		if err != nil {
			return err
		}
	}
	return nil
}

// ExportBodySTEP writes a single body to a STEP file by isolating its
// visibility, saving a copy, and restoring the previous visibility. An
// empty fileName defaults to "<body>.stp"; an existing target gets a
// numbered-copy name.
func (p *Part) ExportBodySTEP(bodyName, dir, fileName string) (string, error) {
	if fileName == "" {
		fileName = bodyName + ".stp"
	} else if !strings.HasSuffix(strings.ToLower(fileName), ".stp") {
		fileName += ".stp"
	}
	if dir == "" {
		if dir = p.dir; dir == "" {
			dir, _ = os.Getwd()
		}
	}
	if naming.Exists(dir, fileName) {
		fileName = naming.Numbered(dir, strings.TrimSuffix(fileName, ".stp"), ".stp")
	}
	full := filepath.Join(dir, fileName)

	// Record visibility so the part is left exactly as found.
	visible := map[string]bool{}
	err := p.eachBody(func(name string, body *ole.IDispatch) error {
		v, err := getBool(body, "Visible")
		if err != nil {
			return err
		}
		visible[name] = v
		return put(body, "Visible", name == bodyName)
	})
	if err != nil {
		return "", err
	}
	defer p.eachBody(func(name string, body *ole.IDispatch) error {
		if v, ok := visible[name]; ok {
			return put(body, "Visible", v)
		}
		return nil
	})

	if _, ok := visible[bodyName]; !ok {
		return "", fmt.Errorf("inventor: no body named %q", bodyName)
	}
	if err := call(p.disp, "SaveAs", full, true); err != nil {
		return "", fmt.Errorf("inventor: export %s: %w", full, err)
	}
	p.ses.log.Info("exported body", "body", bodyName, "path", full)
	return full, nil
}

// SaveCopyAs writes a translated copy of the part. ext selects the target
// format (stp, stl, igs, ...); empty keeps the name's own extension.
func (p *Part) SaveCopyAs(dir, copyName, ext string) (string, error) {
	if copyName == "" {
		copyName = p.name
	}
	if copyName == "" {
		return "", fmt.Errorf("inventor: save copy needs a file name")
	}
	if dir == "" {
		if dir = p.dir; dir == "" {
			dir, _ = os.Getwd()
		}
	}

	if ext != "" {
		have := strings.TrimPrefix(filepath.Ext(copyName), ".")
		if !validCopyExt(ext) || (have != "" && !validCopyExt(have)) {
			return "", fmt.Errorf("inventor: invalid copy extension %q (valid: %s)", ext, strings.Join(copyExtensions, ", "))
		}
		copyName = strings.TrimSuffix(copyName, filepath.Ext(copyName)) + "." + ext
	}
	if naming.Exists(dir, copyName) {
		copyName = naming.Numbered(dir, copyName, "")
	}

	full := filepath.Join(dir, copyName)
	if err := call(p.disp, "SaveAs", full, true); err != nil {
		return "", err
	}
	p.ses.log.Info("saved copy", "path", full)
	return full, nil
}

func validCopyExt(ext string) bool {
	ext = strings.ToLower(ext)
	for _, e := range copyExtensions {
		if e == ext {
			return true
		}
	}
	return false
}

// Save writes the part under its directory and name, using a numbered copy
// when the name is taken.
func (p *Part) Save() (string, error) {
	return p.save(p.dir, p.name)
}

// SaveTo writes the part to an explicit directory and name.
func (p *Part) SaveTo(dir, name string) (string, error) {
	return p.save(dir, name)
}

// Close closes the part document, saving first when save is true.
func (p *Part) Close(save bool) error {
	if p.compdef != nil {
		p.compdef.Release()
		p.compdef = nil
	}
	return p.close(save)
}
