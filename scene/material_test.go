package scene

import (
	"testing"

	"github.com/gogpu/sdfmarch"
)

func TestSolidColorMaterial(t *testing.T) {
	m := NewSolidColorMaterial(marcher.RGB(1, 0, 0))
	got := m.Sample(marcher.V3(5, 5, 5))
	if got != marcher.RGB(1, 0, 0) {
		t.Errorf("Sample() = %+v, want (1,0,0)", got)
	}
}

func TestCheckerMaterialParity(t *testing.T) {
	m := NewCheckerMaterial(marcher.RGB(1, 1, 1), marcher.RGB(0, 0, 0))

	tests := []struct {
		name string
		p    marcher.Vec3
		want marcher.Color
	}{
		{"origin even", marcher.V3(0, 0, 0), marcher.RGB(1, 1, 1)},
		{"one unit over odd", marcher.V3(1, 0, 0), marcher.RGB(0, 0, 0)},
		{"two units over even", marcher.V3(2, 0, 0), marcher.RGB(1, 1, 1)},
		{"two axes even", marcher.V3(1, 1, 0), marcher.RGB(1, 1, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.Sample(tt.p); got != tt.want {
				t.Errorf("Sample(%+v) = %+v, want %+v", tt.p, got, tt.want)
			}
		})
	}
}

func TestGradientMaterial(t *testing.T) {
	m := NewGradientMaterial(marcher.RGB(0, 0, 0), marcher.RGB(1, 1, 1))

	at0 := m.Sample(marcher.V3(0, 0, 0))
	if at0 != marcher.RGB(0, 0, 0) {
		t.Errorf("Sample(origin) = %+v, want (0,0,0)", at0)
	}

	atHalf := m.Sample(marcher.V3(0.5, 0, 0))
	if atHalf.R < 0.45 || atHalf.R > 0.55 {
		t.Errorf("Sample(0.5,0,0).R = %v, want ~0.5", atHalf.R)
	}
}

func TestCustomMaterial(t *testing.T) {
	m := NewCustomMaterial(func(p marcher.Vec3) marcher.Color {
		return marcher.RGB(p.X, p.Y, p.Z)
	})
	got := m.Sample(marcher.V3(0.1, 0.2, 0.3))
	want := marcher.RGB(0.1, 0.2, 0.3)
	if got != want {
		t.Errorf("Sample() = %+v, want %+v", got, want)
	}
}

func TestCustomMaterialNilFuncReturnsWhite(t *testing.T) {
	m := &Material{Kind: MaterialCustom, transform: marcher.Identity(), inverse: marcher.Identity()}
	if got := m.Sample(marcher.V3(1, 1, 1)); got != marcher.White {
		t.Errorf("Sample() with nil Fn = %+v, want white", got)
	}
}

func TestMaterialLocalSpaceSampling(t *testing.T) {
	m := NewCheckerMaterial(marcher.RGB(1, 1, 1), marcher.RGB(0, 0, 0))
	m.SetTransform(marcher.TranslateBy(marcher.V3(1, 0, 0)))

	// World point (1,0,0) maps to material-local (0,0,0): even sum -> C0.
	got := m.Sample(marcher.V3(1, 0, 0))
	if got != marcher.RGB(1, 1, 1) {
		t.Errorf("Sample() = %+v, want C0 after translation", got)
	}
}

func TestMaterialDegenerateTransformFallsBack(t *testing.T) {
	m := NewSolidColorMaterial(marcher.RGB(1, 0, 0))
	m.SetTransform(marcher.ScaleBy(marcher.V3(0, 1, 1)))
	if got := m.Sample(marcher.V3(0, 0, 0)); got != marcher.RGB(1, 0, 0) {
		t.Errorf("Sample() after degenerate SetTransform = %+v, want (1,0,0)", got)
	}
}
