package viewstyle

import "testing"

func TestParse(t *testing.T) {
	cases := []struct {
		tag  string
		want View
	}{
		{"front", Front},
		{"back", Back},
		{"left", Left},
		{"right", Right},
		{"top", Top},
		{"bottom", Bottom},
		{"iso", Iso},
		{"FRONT", Front},
		{" Top ", Top},
	}
	for _, c := range cases {
		got, err := Parse(c.tag)
		if err != nil {
			t.Errorf("Parse(%q): %v", c.tag, err)
			continue
		}
		if got != c.want {
			t.Errorf("Parse(%q) = %q, want %q", c.tag, got, c.want)
		}
	}

	for _, bad := range []string{"diagonal", "isometric", ""} {
		if _, err := Parse(bad); err == nil {
			t.Errorf("Parse(%q) succeeded, want error", bad)
		}
	}
}

func TestOrientation(t *testing.T) {
	cases := []struct {
		v    View
		want int
	}{
		{Back, 10755},
		{Bottom, 10756},
		{Front, 10757},
		{Iso, 10761},
		{Left, 10762},
		{Right, 10763},
		{Top, 10764},
	}
	for _, c := range cases {
		got, err := c.v.Orientation()
		if err != nil {
			t.Errorf("%s.Orientation(): %v", c.v, err)
			continue
		}
		if got != c.want {
			t.Errorf("%s.Orientation() = %d, want %d", c.v, got, c.want)
		}
	}

	if _, err := View("sideways").Orientation(); err == nil {
		t.Error("Orientation() on unknown view succeeded, want error")
	}
}

func TestStandardViews(t *testing.T) {
	views := StandardViews()
	if len(views) != 6 {
		t.Fatalf("got %d views, want 6", len(views))
	}
	for _, v := range views {
		if v == Iso {
			t.Error("StandardViews includes iso")
		}
		if _, err := v.Orientation(); err != nil {
			t.Errorf("%s: %v", v, err)
		}
	}
}

func TestDisplayMode(t *testing.T) {
	cases := []struct {
		style Style
		want  int
	}{
		{Style{Realistic: true}, 8709},
		{Style{Realistic: true, Shaded: true, Edges: true}, 8709},
		{Style{Shaded: true}, 8708},
		{Style{Shaded: true, Edges: true, HiddenEdges: true}, 8707},
		{Style{Shaded: true, Edges: true}, 8710},
		{Style{Edges: true, HiddenEdges: true}, 8712},
		{Style{Edges: true}, 8711},
		{Style{}, 8706},
		{Style{HiddenEdges: true}, 8706},
	}
	for _, c := range cases {
		if got := c.style.DisplayMode(); got != c.want {
			t.Errorf("%+v DisplayMode() = %d, want %d", c.style, got, c.want)
		}
	}

	if got := DefaultStyle().DisplayMode(); got != 8710 {
		t.Errorf("DefaultStyle DisplayMode() = %d, want 8710", got)
	}
	if got := Wireframe().DisplayMode(); got != 8711 {
		t.Errorf("Wireframe DisplayMode() = %d, want 8711", got)
	}
}

func TestParseFormat(t *testing.T) {
	cases := []struct {
		name string
		want Format
	}{
		{"png", PNG},
		{"PNG", PNG},
		{"jpg", JPG},
		{"jpeg", JPG},
		{".jpeg", JPG},
		{"bmp", BMP},
		{"tif", TIF},
		{".TIFF", TIF},
		{"webp", WebP},
	}
	for _, c := range cases {
		got, err := ParseFormat(c.name)
		if err != nil {
			t.Errorf("ParseFormat(%q): %v", c.name, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", c.name, got, c.want)
		}
	}

	if _, err := ParseFormat("gif"); err == nil {
		t.Error("ParseFormat(\"gif\") succeeded, want error")
	}
}

func TestFormatHostNative(t *testing.T) {
	for _, f := range []Format{PNG, JPG, BMP, TIF} {
		if !f.HostNative() {
			t.Errorf("%s.HostNative() = false", f)
		}
	}
	if WebP.HostNative() {
		t.Error("webp.HostNative() = true")
	}
	if got := WebP.Ext(); got != ".webp" {
		t.Errorf("Ext() = %q, want .webp", got)
	}
}
