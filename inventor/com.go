package inventor

import (
	"errors"
	"fmt"

	"github.com/go-ole/go-ole"
	"github.com/go-ole/go-ole/oleutil"
)

// Thin wrappers over oleutil so the document code reads like the call
// sequences it forwards. All host failures are passed through verbatim.

func getDisp(d *ole.IDispatch, prop string, args ...interface{}) (*ole.IDispatch, error) {
	v, err := oleutil.GetProperty(d, prop, args...)
	if err != nil {
		return nil, fmt.Errorf("inventor: get %s: %w", prop, err)
	}
	disp := v.ToIDispatch()
	if disp == nil {
		return nil, fmt.Errorf("inventor: get %s: not an object", prop)
	}
	return disp, nil
}

func callDisp(d *ole.IDispatch, method string, args ...interface{}) (*ole.IDispatch, error) {
	v, err := oleutil.CallMethod(d, method, args...)
	if err != nil {
		return nil, fmt.Errorf("inventor: call %s: %w", method, err)
	}
	disp := v.ToIDispatch()
	if disp == nil {
		return nil, fmt.Errorf("inventor: call %s: not an object", method)
	}
	return disp, nil
}

func call(d *ole.IDispatch, method string, args ...interface{}) error {
	if _, err := oleutil.CallMethod(d, method, args...); err != nil {
		return fmt.Errorf("inventor: call %s: %w", method, err)
	}
	return nil
}

func put(d *ole.IDispatch, prop string, value interface{}) error {
	if _, err := oleutil.PutProperty(d, prop, value); err != nil {
		return fmt.Errorf("inventor: set %s: %w", prop, err)
	}
	return nil
}

func getInt(d *ole.IDispatch, prop string) (int, error) {
	v, err := oleutil.GetProperty(d, prop)
	if err != nil {
		return 0, fmt.Errorf("inventor: get %s: %w", prop, err)
	}
	return int(v.Val), nil
}

func getBool(d *ole.IDispatch, prop string) (bool, error) {
	v, err := oleutil.GetProperty(d, prop)
	if err != nil {
		return false, fmt.Errorf("inventor: get %s: %w", prop, err)
	}
	b, ok := v.Value().(bool)
	if !ok {
		return false, fmt.Errorf("inventor: get %s: not a bool", prop)
	}
	return b, nil
}

func getString(d *ole.IDispatch, prop string) (string, error) {
	v, err := oleutil.GetProperty(d, prop)
	if err != nil {
		return "", fmt.Errorf("inventor: get %s: %w", prop, err)
	}
	return v.ToString(), nil
}

// coInit initializes COM for this thread. S_FALSE (already initialized) is
// not an error.
func coInit() error {
	err := ole.CoInitialize(0)
	if err == nil {
		return nil
	}
	var oleErr *ole.OleError
	if errors.As(err, &oleErr) && oleErr.Code() == 1 { // S_FALSE
		return nil
	}
	return fmt.Errorf("inventor: CoInitialize: %w", err)
}
