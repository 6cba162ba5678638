package marcher

import "testing"

func TestColorArithmeticUnclamped(t *testing.T) {
	c := RGB(0.8, 0.8, 0.8).Add(RGB(0.8, 0.8, 0.8))
	if c.R <= 1 {
		t.Errorf("expected unclamped sum > 1, got %v", c.R)
	}
}

func TestColorClamp01(t *testing.T) {
	tests := []struct {
		name string
		in   Color
		want Color
	}{
		{"over", RGB(1.5, -0.5, 0.5), RGB(1, 0, 0.5)},
		{"in range", RGB(0.2, 0.3, 0.4), RGB(0.2, 0.3, 0.4)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Clamp01()
			if got != tt.want {
				t.Errorf("Clamp01() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestColorMulC(t *testing.T) {
	got := RGB(1, 0.5, 0).MulC(RGB(0.5, 0.5, 0.5))
	want := RGB(0.5, 0.25, 0)
	if got != want {
		t.Errorf("MulC() = %+v, want %+v", got, want)
	}
}

func TestColorLerp(t *testing.T) {
	a := RGB(0, 0, 0)
	b := RGB(1, 1, 1)
	if got := a.Lerp(b, 0); got != a {
		t.Errorf("Lerp(t=0) = %+v, want %+v", got, a)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Errorf("Lerp(t=1) = %+v, want %+v", got, b)
	}
}
