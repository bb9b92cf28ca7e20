package physics

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

func TestReflect(t *testing.T) {
	v := mgl32.Vec2{50, -30}

	if got := Reflect(v, SideLeft); got != (mgl32.Vec2{-50, -30}) {
		t.Errorf("Left: expected X negated, got %v", got)
	}
	if got := Reflect(v, SideRight); got != (mgl32.Vec2{-50, -30}) {
		t.Errorf("Right: expected X negated, got %v", got)
	}
	if got := Reflect(v, SideTop); got != (mgl32.Vec2{50, 30}) {
		t.Errorf("Top: expected Y negated, got %v", got)
	}
	if got := Reflect(v, SideBottom); got != (mgl32.Vec2{50, 30}) {
		t.Errorf("Bottom: expected Y negated, got %v", got)
	}
	if v != (mgl32.Vec2{50, -30}) {
		t.Errorf("Expected input vector untouched, got %v", v)
	}
}

func TestRotateAndTranslate(t *testing.T) {
	const dt = float32(1.0 / 64)

	if got := Rotate(1, 5, dt); got != 1+5*dt {
		t.Errorf("Expected orientation %v, got %v", 1+5*dt, got)
	}

	pos := Translate(mgl32.Vec2{10, -10}, mgl32.Vec2{64, -128}, dt)
	if pos != (mgl32.Vec2{11, -12}) {
		t.Errorf("Expected (11,-12), got %v", pos)
	}
}

func TestWrapAngle(t *testing.T) {
	tests := []struct {
		in, want float32
	}{
		{0, 0},
		{math32.Pi, math32.Pi},
		{-math32.Pi / 2, 3 * math32.Pi / 2},
		{5 * math32.Pi, math32.Pi},
	}
	for _, tt := range tests {
		got := WrapAngle(tt.in)
		if math32.Abs(got-tt.want) > 1e-4 {
			t.Errorf("WrapAngle(%v): expected %v, got %v", tt.in, tt.want, got)
		}
		if got < 0 || got >= 2*math32.Pi {
			t.Errorf("WrapAngle(%v) = %v out of [0, 2π)", tt.in, got)
		}
	}
}
