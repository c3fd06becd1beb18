// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package linear

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestInterpEndpoints(t *testing.T) {
	funcs := map[string]func(a, b, t float32) float32{
		"Lerp":          Lerp,
		"InterpCosine":  InterpCosine,
		"InterpSine":    InterpSine,
		"InterpCubic":   InterpCubic,
		"InterpQuintic": InterpQuintic,
		"SmoothStep":    SmoothStep,
	}
	const a, b = -2.5, 7
	for name, f := range funcs {
		if r := f(a, b, 0); !nearf(r, a, 1e-6) {
			t.Fatalf("%s t=0\nhave %v\nwant %v", name, r, float32(a))
		}
		if r := f(a, b, 1); !nearf(r, b, 1e-6) {
			t.Fatalf("%s t=1\nhave %v\nwant %v", name, r, float32(b))
		}
	}
}

func TestInterpMidpoints(t *testing.T) {
	if r := InterpCubic(0, 1, 0.5); r != 0.5 {
		t.Fatalf("InterpCubic t=0.5\nhave %v\nwant 0.5", r)
	}
	if r := InterpQuintic(0, 1, 0.5); r != 0.5 {
		t.Fatalf("InterpQuintic t=0.5\nhave %v\nwant 0.5", r)
	}
	if r := InterpCosine(0, 1, 0.5); !nearf(r, 0.5, 1e-6) {
		t.Fatalf("InterpCosine t=0.5\nhave %v\nwant ≈0.5", r)
	}
	if r := SmoothStep(0, 1, 0.5); r != 0.5 {
		t.Fatalf("SmoothStep t=0.5\nhave %v\nwant 0.5", r)
	}
}

func TestInterpClamped(t *testing.T) {
	// Unclamped forms extrapolate; clamped forms pin the endpoints.
	if r := InterpCubic(0, 1, 2); r == 1 {
		t.Fatalf("InterpCubic t=2\nhave %v\nwant extrapolated", r)
	}
	if r := InterpCubicClamped(0, 1, 2); r != 1 {
		t.Fatalf("InterpCubicClamped t=2\nhave %v\nwant 1", r)
	}
	if r := InterpQuinticClamped(0, 1, -1); r != 0 {
		t.Fatalf("InterpQuinticClamped t=-1\nhave %v\nwant 0", r)
	}
	if r := InterpCosineClamped(0, 1, 5); !nearf(r, 1, 1e-6) {
		t.Fatalf("InterpCosineClamped t=5\nhave %v\nwant ≈1", r)
	}
	if r := InterpSineClamped(0, 1, 5); !nearf(r, 1, 1e-6) {
		t.Fatalf("InterpSineClamped t=5\nhave %v\nwant ≈1", r)
	}
	if r := SmoothStep(0, 1, 2); r != 1 {
		t.Fatalf("SmoothStep t=2\nhave %v\nwant 1", r)
	}
	if r := SmoothStepCubic(0, 1, 2); r != -4 {
		t.Fatalf("SmoothStepCubic t=2\nhave %v\nwant -4", r)
	}
}

func TestHermite(t *testing.T) {
	// Endpoints are exact special cases.
	if r := Hermite(3, 10, 7, -10, 0); r != 3 {
		t.Fatalf("Hermite t=0\nhave %v\nwant 3", r)
	}
	if r := Hermite(3, 10, 7, -10, 1); r != 7 {
		t.Fatalf("Hermite t=1\nhave %v\nwant 7", r)
	}
	// Zero tangents reduce to the cubic blend.
	if r := Hermite(0, 0, 1, 0, 0.5); r != 0.5 {
		t.Fatalf("Hermite zero tangents t=0.5\nhave %v\nwant 0.5", r)
	}
	// Matching tangents on a line keep the line.
	for _, tt := range []float32{0.25, 0.5, 0.75} {
		if r := Hermite(0, 1, 1, 1, tt); !nearf(r, tt, 1e-6) {
			t.Fatalf("Hermite linear t=%v\nhave %v\nwant %v", tt, r, tt)
		}
	}
	// Extreme magnitude ratios stay finite thanks to the float64
	// intermediates.
	if r := Hermite(1e30, 1e-30, -1e30, 1e-30, 0.5); math32.IsNaN(r) || math32.IsInf(r, 0) {
		t.Fatalf("Hermite extreme\nhave %v\nwant finite", r)
	}
}

func TestCatmullRom(t *testing.T) {
	// Equally spaced collinear controls interpolate linearly.
	for _, tt := range []float32{0, 0.25, 0.5, 1} {
		if r := CatmullRom(0, 1, 2, 3, tt); !nearf(r, 1+tt, 1e-6) {
			t.Fatalf("CatmullRom collinear t=%v\nhave %v\nwant %v", tt, r, 1+tt)
		}
	}
	// The spline passes through the middle control points.
	if r := CatmullRom(-1, 4, 9, 2, 0); r != 4 {
		t.Fatalf("CatmullRom t=0\nhave %v\nwant 4", r)
	}
	if r := CatmullRom(-1, 4, 9, 2, 1); r != 9 {
		t.Fatalf("CatmullRom t=1\nhave %v\nwant 9", r)
	}
}

func TestLerpAngle(t *testing.T) {
	if r := LerpAngle(350, 10, 0.5); r != 360 {
		t.Fatalf("LerpAngle(350, 10, 0.5)\nhave %v\nwant 360", r)
	}
	if r := LerpAngle(0, 90, 0.5); r != 45 {
		t.Fatalf("LerpAngle(0, 90, 0.5)\nhave %v\nwant 45", r)
	}
	if r := LerpAngle(10, 350, 0.5); r != 0 {
		t.Fatalf("LerpAngle(10, 350, 0.5)\nhave %v\nwant 0", r)
	}
	// t clamps.
	if r := LerpAngle(0, 90, 2); r != 90 {
		t.Fatalf("LerpAngle(0, 90, 2)\nhave %v\nwant 90", r)
	}
	if r := LerpAngleRad(0, 3, 0.5); r != 1.5 {
		t.Fatalf("LerpAngleRad(0, 3, 0.5)\nhave %v\nwant 1.5", r)
	}
}

func TestMoveTowards(t *testing.T) {
	if r := MoveTowards(0, 10, 3); r != 3 {
		t.Fatalf("MoveTowards(0, 10, 3)\nhave %v\nwant 3", r)
	}
	if r := MoveTowards(0, -10, 3); r != -3 {
		t.Fatalf("MoveTowards(0, -10, 3)\nhave %v\nwant -3", r)
	}
	// Within reach: lands exactly on the target.
	if r := MoveTowards(0, 2, 5); r != 2 {
		t.Fatalf("MoveTowards(0, 2, 5)\nhave %v\nwant 2", r)
	}
	if r := MoveTowards(1, 1, 0); r != 1 {
		t.Fatalf("MoveTowards(1, 1, 0)\nhave %v\nwant 1", r)
	}
}

func TestMoveTowardsAngle(t *testing.T) {
	if r := MoveTowardsAngle(350, 10, 5); r != 355 {
		t.Fatalf("MoveTowardsAngle(350, 10, 5)\nhave %v\nwant 355", r)
	}
	// Within reach: the original target comes back unresolved.
	if r := MoveTowardsAngle(350, 10, 30); r != 10 {
		t.Fatalf("MoveTowardsAngle(350, 10, 30)\nhave %v\nwant 10", r)
	}
	if r := MoveTowardsAngle(10, 350, 5); r != 5 {
		t.Fatalf("MoveTowardsAngle(10, 350, 5)\nhave %v\nwant 5", r)
	}
}
