package inventor

import (
	"math"
	"testing"
)

func TestParseUnits(t *testing.T) {
	cases := []struct {
		name string
		want Units
	}{
		{"metric", Metric},
		{"imperial", Imperial},
		{"", Metric},
	}
	for _, c := range cases {
		got, err := ParseUnits(c.name)
		if err != nil {
			t.Errorf("ParseUnits(%q): %v", c.name, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseUnits(%q) = %q, want %q", c.name, got, c.want)
		}
	}

	if _, err := ParseUnits("furlongs"); err == nil {
		t.Error("ParseUnits accepted an unknown unit system")
	}
}

func TestToHostLength(t *testing.T) {
	// Metric documents take millimeters, the host stores centimeters.
	cases := []struct {
		u       Units
		in, out float64
	}{
		{Metric, 100, 10},
		{Metric, 50, 5},
		{Metric, 55, 5.5},
		{Metric, 0, 0},
		{Imperial, 1, 2.54},
		{Imperial, 3, 7.62},
		{Imperial, 0.5, 1.27},
	}
	for _, c := range cases {
		if got := c.u.toHostLength(c.in); got != c.out {
			t.Errorf("%s toHostLength(%g) = %v, want %v", c.u, c.in, got, c.out)
		}
	}
}

func TestFromHostLengthInverts(t *testing.T) {
	for _, u := range []Units{Metric, Imperial} {
		for _, v := range []float64{0, 1, 50, 55, 123.5} {
			back := u.fromHostLength(u.toHostLength(v))
			if math.Abs(back-v) > 1e-9 {
				t.Errorf("%s round trip %g -> %g", u, v, back)
			}
		}
	}
}

func TestUnitEnums(t *testing.T) {
	if got := Metric.lengthUnitsEnum(); got != kMillimeterLengthUnits {
		t.Errorf("metric length enum = %d", got)
	}
	if got := Imperial.lengthUnitsEnum(); got != kInchLengthUnits {
		t.Errorf("imperial length enum = %d", got)
	}
	if got := Metric.angleUnitsEnum(); got != kRadianAngleUnits {
		t.Errorf("metric angle enum = %d", got)
	}
	if got := Imperial.angleUnitsEnum(); got != kDegreeAngleUnits {
		t.Errorf("imperial angle enum = %d", got)
	}
}

func TestToHostAngle(t *testing.T) {
	if got := toHostAngle(90); got != math.Pi/2 {
		t.Errorf("toHostAngle(90) = %v, want π/2", got)
	}
	if got := toHostAngle(0); got != 0 {
		t.Errorf("toHostAngle(0) = %v, want 0", got)
	}
}
