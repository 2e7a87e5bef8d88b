package viewstyle

// Style is the set of independent visual-style toggles forwarded to the
// host view. No consistency between the toggles is enforced locally; the
// host collapses them to a single display mode.
type Style struct {
	Shaded      bool
	Edges       bool
	HiddenEdges bool
	Realistic   bool
}

// DefaultStyle is shaded with visible edges, the documentation default.
func DefaultStyle() Style {
	return Style{Shaded: true, Edges: true}
}

// Wireframe is edges only, no shading.
func Wireframe() Style {
	return Style{Edges: true}
}

// DisplayModeEnum values from the host API. Realistic wins over all other
// toggles, matching the host UI behavior.
func (s Style) DisplayMode() int {
	if s.Realistic {
		return 8709
	}
	if s.Shaded {
		switch {
		case !s.Edges:
			return 8708
		case s.HiddenEdges:
			return 8707
		default:
			return 8710
		}
	}
	switch {
	case s.Edges && s.HiddenEdges:
		return 8712
	case s.Edges:
		return 8711
	default:
		return 8706
	}
}
