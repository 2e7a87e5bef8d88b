package inventor

import (
	"github.com/go-ole/go-ole"
	"gonum.org/v1/gonum/spatial/r3"
)

// transform builds a host transformation matrix from Euler angles (radians,
// applied Z then Y then X) and a translation in host centimeters. It is the
// COM-side mirror of mathutil.Placement: the matrix object is created and
// composed by the host's transient geometry so the host owns the result.
func (s *Session) transform(rot, pos r3.Vec) (*ole.IDispatch, error) {
	tg, err := s.transientGeometry()
	if err != nil {
		return nil, err
	}
	defer tg.Release()

	m, err := callDisp(tg, "CreateMatrix")
	if err != nil {
		return nil, err
	}
	origin, err := callDisp(tg, "CreatePoint", 0.0, 0.0, 0.0)
	if err != nil {
		m.Release()
		return nil, err
	}
	defer origin.Release()

	rotate := func(angle, x, y, z float64, premultiply bool) error {
		axis, err := callDisp(tg, "CreateUnitVector", x, y, z)
		if err != nil {
			return err
		}
		defer axis.Release()
		if !premultiply {
			return call(m, "SetToRotation", angle, axis, origin)
		}
		rm, err := callDisp(tg, "CreateMatrix")
		if err != nil {
			return err
		}
		defer rm.Release()
		if err := call(rm, "SetToRotation", angle, axis, origin); err != nil {
			return err
		}
		return call(m, "PreMultiplyBy", rm)
	}

	// Z first, then Y and X premultiplied on top.
	if rot.Z != 0 {
		if err := rotate(rot.Z, 0, 0, 1, false); err != nil {
			m.Release()
			return nil, err
		}
	}
	if rot.Y != 0 {
		if err := rotate(rot.Y, 0, 1, 0, true); err != nil {
			m.Release()
			return nil, err
		}
	}
	if rot.X != 0 {
		if err := rotate(rot.X, 1, 0, 0, true); err != nil {
			m.Release()
			return nil, err
		}
	}

	trans, err := callDisp(tg, "CreateVector", pos.X, pos.Y, pos.Z)
	if err != nil {
		m.Release()
		return nil, err
	}
	defer trans.Release()
	if err := call(m, "SetTranslation", trans); err != nil {
		m.Release()
		return nil, err
	}
	return m, nil
}
