// Package viewstyle maps the named camera perspectives and visual-style
// toggles onto the host application's enumeration values.
package viewstyle

import (
	"fmt"
	"strings"
)

// View is one of the fixed set of named camera orientations built into the
// host application.
type View string

const (
	Front  View = "front"
	Back   View = "back"
	Left   View = "left"
	Right  View = "right"
	Top    View = "top"
	Bottom View = "bottom"
	Iso    View = "iso"
)

// ViewOrientationTypeEnum values from the host API.
const (
	orientationBack        = 10755
	orientationBottom      = 10756
	orientationFront       = 10757
	orientationIsoTopRight = 10761
	orientationLeft        = 10762
	orientationRight       = 10763
	orientationTop         = 10764
)

var orientations = map[View]int{
	Front:  orientationFront,
	Back:   orientationBack,
	Left:   orientationLeft,
	Right:  orientationRight,
	Top:    orientationTop,
	Bottom: orientationBottom,
	Iso:    orientationIsoTopRight,
}

// Parse returns the View for a tag, case-insensitively. Any tag outside the
// documented set is an error.
func Parse(tag string) (View, error) {
	v := View(strings.ToLower(strings.TrimSpace(tag)))
	if _, ok := orientations[v]; !ok {
		return "", fmt.Errorf("viewstyle: unsupported view %q (valid: front, back, left, right, top, bottom, iso)", tag)
	}
	return v, nil
}

// Orientation returns the host camera orientation constant for the view.
func (v View) Orientation() (int, error) {
	o, ok := orientations[v]
	if !ok {
		return 0, fmt.Errorf("viewstyle: unsupported view %q", string(v))
	}
	return o, nil
}

// StandardViews is the six-perspective documentation set, in export order.
func StandardViews() []View {
	return []View{Front, Back, Left, Right, Top, Bottom}
}
