package inventor

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-ole/go-ole"

	"goinvent/internal/naming"
)

// document is the state shared by part and assembly handles.
type document struct {
	ses   *Session
	disp  *ole.IDispatch
	dir   string
	name  string
	units Units
}

// openOrCreate opens dir/name if the file exists, verifying its document
// type, or adds a new visible document of the wanted type. An empty name
// always creates a new document.
func (s *Session) openOrCreate(docType int, dir, name string) (*ole.IDispatch, error) {
	docs, err := s.documents()
	if err != nil {
		return nil, err
	}
	defer docs.Release()

	full := filepath.Join(dir, name)
	if name != "" {
		if _, err := os.Stat(full); err == nil {
			doc, err := callDisp(docs, "Open", full)
			if err != nil {
				return nil, fmt.Errorf("inventor: open %s: %w", full, err)
			}
			dt, err := getInt(doc, "DocumentType")
			if err != nil {
				doc.Release()
				return nil, err
			}
			if dt != docType {
				doc.Release()
				return nil, fmt.Errorf("inventor: %s: wrong document type %d (want %d)", full, dt, docType)
			}
			return doc, nil
		}
	}

	doc, err := callDisp(docs, "Add", docType, "", true)
	if err != nil {
		return nil, fmt.Errorf("inventor: create document: %w", err)
	}
	return doc, nil
}

// setUnits applies the document's length and angle display units.
func (d *document) setUnits(u Units) error {
	uom, err := getDisp(d.disp, "UnitsOfMeasure")
	if err != nil {
		return err
	}
	defer uom.Release()
	if err := put(uom, "LengthUnits", u.lengthUnitsEnum()); err != nil {
		return err
	}
	if err := put(uom, "AngleUnits", u.angleUnitsEnum()); err != nil {
		return err
	}
	d.units = u
	return nil
}

// save writes the document under its directory and name, yielding to the
// numbered-copy convention when the target name is already taken.
func (d *document) save(dir, name string) (string, error) {
	if name == "" {
		name = d.name
	}
	if name == "" {
		return "", errors.New("inventor: document has no file name to save under")
	}
	if dir == "" {
		dir = d.dir
	}
	if dir == "" {
		dir, _ = os.Getwd()
	}
	if naming.Exists(dir, name) {
		name = naming.Numbered(dir, name, "")
	}
	full := filepath.Join(dir, name)
	if err := call(d.disp, "SaveAs", full, false); err != nil {
		return "", err
	}
	d.dir, d.name = dir, name
	return full, nil
}

// close closes the document, optionally saving first.
func (d *document) close(save bool) error {
	// Close(SkipSave)
	err := call(d.disp, "Close", !save)
	d.disp.Release()
	d.disp = nil
	return err
}
