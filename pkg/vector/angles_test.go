package vector

import (
	"math"
	"testing"
)

func TestNormalize(t *testing.T) {
	p := Pack3[float32]{3, 4, 0}
	Normalize(&p)
	l := p.Magnitude()
	if l < 0.999 || l > 1.001 {
		t.Errorf("Normalize() length = %v, want ~1", l)
	}

	// Normalizing a unit vector keeps it a unit vector.
	Normalize(&p)
	l = p.Magnitude()
	if l < 0.999 || l > 1.001 {
		t.Errorf("repeated Normalize() length = %v, want ~1", l)
	}
}

func TestNormalizeZeroVector(t *testing.T) {
	p := Pack3[float32]{0, 0, 0}
	Normalize(&p)
	if p != (Pack3[float32]{0, 0, 1}) {
		t.Errorf("Normalize(zero) = %v, want (0, 0, 1)", p)
	}

	got := Normalized(Pack3[float64]{0, 0, 0})
	if got != (Pack3[float64]{0, 0, 1}) {
		t.Errorf("Normalized(zero) = %v, want (0, 0, 1)", got)
	}
}

func TestNormalizedLeavesReceiver(t *testing.T) {
	p := Pack3[float32]{3, 4, 0}
	_ = Normalized(p)
	if p != (Pack3[float32]{3, 4, 0}) {
		t.Errorf("Normalized() mutated its input: %v", p)
	}
}

func TestNormalizeAngle(t *testing.T) {
	tests := []struct {
		name string
		in   Pack3[float32]
		want Pack3[float32]
	}{
		{"wrap pitch", Pack3[float32]{370, 0, 0}, Pack3[float32]{10, 0, 0}},
		{"wrap negative yaw", Pack3[float32]{0, -190, 0}, Pack3[float32]{0, 170, 0}},
		{"roll forced to zero", Pack3[float32]{0, 0, 45}, Pack3[float32]{0, 0, 0}},
		{"in range unchanged", Pack3[float32]{-45, 90, 0}, Pack3[float32]{-45, 90, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.in
			NormalizeAngle(&p)
			if p != tt.want {
				t.Errorf("NormalizeAngle(%v) = %v, want %v", tt.in, p, tt.want)
			}
		})
	}
}

func TestNormalizeAngleNonFinite(t *testing.T) {
	nan := float32(math.NaN())
	inf := float32(math.Inf(1))
	p := Pack3[float32]{nan, inf, 0}
	NormalizeAngle(&p)
	if p != (Pack3[float32]{0, 0, 0}) {
		t.Errorf("NormalizeAngle(NaN, +Inf, 0) = %v, want (0, 0, 0)", p)
	}
}

func TestNormalizedAngleLeavesReceiver(t *testing.T) {
	p := Pack3[float32]{370, -190, 45}
	got := NormalizedAngle(p)
	if p != (Pack3[float32]{370, -190, 45}) {
		t.Errorf("NormalizedAngle() mutated its input: %v", p)
	}
	if got != (Pack3[float32]{10, 170, 0}) {
		t.Errorf("NormalizedAngle() = %v, want (10, 170, 0)", got)
	}
}

func TestClampAngle(t *testing.T) {
	tests := []struct {
		name string
		in   Pack3[float32]
		want Pack3[float32]
	}{
		{"pitch above limit", Pack3[float32]{120, 0, 0}, Pack3[float32]{89, 0, 0}},
		{"pitch below limit", Pack3[float32]{-120, 0, 0}, Pack3[float32]{-89, 0, 0}},
		{"yaw below limit", Pack3[float32]{0, -200, 0}, Pack3[float32]{0, -180, 0}},
		{"yaw above limit", Pack3[float32]{0, 270, 0}, Pack3[float32]{0, 180, 0}},
		{"roll forced to zero", Pack3[float32]{0, 0, 30}, Pack3[float32]{0, 0, 0}},
		{"in range unchanged", Pack3[float32]{45, -90, 0}, Pack3[float32]{45, -90, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.in
			ClampAngle(&p)
			if p != tt.want {
				t.Errorf("ClampAngle(%v) = %v, want %v", tt.in, p, tt.want)
			}
		})
	}
}

func TestDeriveAngleVertical(t *testing.T) {
	// No horizontal component: straight down for z <= 0, straight up
	// otherwise.
	if got := DeriveAngle(Pack3[float32]{0, 0, -5}); got != (Pack3[float32]{90, 0, 0}) {
		t.Errorf("DeriveAngle(0, 0, -5) = %v, want (90, 0, 0)", got)
	}
	if got := DeriveAngle(Pack3[float32]{0, 0, 0}); got != (Pack3[float32]{90, 0, 0}) {
		t.Errorf("DeriveAngle(0, 0, 0) = %v, want (90, 0, 0)", got)
	}
	if got := DeriveAngle(Pack3[float32]{0, 0, 5}); got != (Pack3[float32]{-90, 0, 0}) {
		t.Errorf("DeriveAngle(0, 0, 5) = %v, want (-90, 0, 0)", got)
	}
}

func TestDeriveAngleGeneral(t *testing.T) {
	tests := []struct {
		name      string
		in        Pack3[float64]
		wantPitch float64
		wantYaw   float64
	}{
		{"along x", Pack3[float64]{1, 0, 0}, 0, 0},
		{"along y", Pack3[float64]{0, 1, 0}, 0, 90},
		{"diagonal yaw", Pack3[float64]{1, 1, 0}, 0, 45},
		{"downward diagonal", Pack3[float64]{1, 0, 1}, -45, 0},
		{"upward diagonal", Pack3[float64]{1, 0, -1}, 45, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveAngle(tt.in)
			if math.Abs(got[Pitch]-tt.wantPitch) > 1e-9 {
				t.Errorf("pitch = %v, want %v", got[Pitch], tt.wantPitch)
			}
			if math.Abs(got[Yaw]-tt.wantYaw) > 1e-9 {
				t.Errorf("yaw = %v, want %v", got[Yaw], tt.wantYaw)
			}
			if got[Roll] != 0 {
				t.Errorf("roll = %v, want 0", got[Roll])
			}
		})
	}
}

func TestDeriveAngleLeavesInput(t *testing.T) {
	dir := Pack3[float32]{1, 2, 3}
	_ = DeriveAngle(dir)
	if dir != (Pack3[float32]{1, 2, 3}) {
		t.Errorf("DeriveAngle() mutated its input: %v", dir)
	}
}
