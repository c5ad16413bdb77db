package animation_test

import (
	"math"
	"testing"
	"time"

	"github.com/go-drift/slide/pkg/animation"
)

func stepUntilDone(t *testing.T, sim *animation.SpringSimulation) int {
	t.Helper()
	const dt = 1.0 / 60
	for i := 0; i < 10000; i++ {
		if sim.Step(dt) {
			return i + 1
		}
	}
	t.Fatalf("simulation did not settle; position=%v velocity=%v", sim.Position(), sim.Velocity())
	return 0
}

func TestSpringSettlesAtTarget(t *testing.T) {
	sim := animation.NewSpringSimulation(animation.DefaultSpring(), 240, 0, 0)
	stepUntilDone(t, sim)

	if sim.Position() != 0 {
		t.Errorf("expected exact snap to target, got %v", sim.Position())
	}
	if sim.Velocity() != 0 {
		t.Errorf("expected zero velocity at rest, got %v", sim.Velocity())
	}
	if !sim.IsDone() {
		t.Error("expected IsDone after settling")
	}
}

func TestSpringWithInitialVelocity(t *testing.T) {
	sim := animation.NewSpringSimulation(animation.BouncySpring(), 0, 500, 300)
	stepUntilDone(t, sim)

	if sim.Position() != 300 {
		t.Errorf("expected final position 300, got %v", sim.Position())
	}
}

func TestSpringCriticallyDampedDoesNotOvershoot(t *testing.T) {
	sim := animation.NewSpringSimulation(animation.IOSSpring(), 100, 0, 0)
	const dt = 1.0 / 60
	for i := 0; i < 10000 && !sim.Step(dt); i++ {
		if sim.Position() < -0.5 {
			t.Fatalf("critically damped spring overshot to %v", sim.Position())
		}
	}
}

func TestSpringUnderdampedOvershoots(t *testing.T) {
	sim := animation.NewSpringSimulation(animation.BouncySpring(), 100, 0, 0)
	const dt = 1.0 / 60
	overshot := false
	for i := 0; i < 10000 && !sim.Step(dt); i++ {
		if sim.Position() < -0.5 {
			overshot = true
		}
	}
	if !overshot {
		t.Error("expected a bouncy spring to overshoot the target")
	}
}

func TestSpringAlreadyAtRest(t *testing.T) {
	sim := animation.NewSpringSimulation(animation.DefaultSpring(), 0, 0, 0)
	if !sim.IsDone() {
		t.Error("expected a simulation starting at rest to be done")
	}
}

func TestSpringStepZeroDt(t *testing.T) {
	sim := animation.NewSpringSimulation(animation.DefaultSpring(), 50, 0, 0)
	before := sim.Position()
	sim.Step(0)
	sim.Step(-1)
	if sim.Position() != before {
		t.Error("expected non-positive dt to leave the simulation unchanged")
	}
}

func TestDampingRatio(t *testing.T) {
	if ratio := animation.IOSSpring().DampingRatio(); math.Abs(ratio-1) > 1e-9 {
		t.Errorf("IOSSpring damping ratio = %v, want 1", ratio)
	}
	if ratio := animation.BouncySpring().DampingRatio(); ratio >= 1 {
		t.Errorf("BouncySpring damping ratio = %v, want < 1", ratio)
	}
}

func TestSpringFromTuningTriple(t *testing.T) {
	desc := animation.Spring(15, 150, 1)
	if desc.Damping != 15 || desc.Stiffness != 150 || desc.Mass != 1 {
		t.Errorf("unexpected description: %+v", desc)
	}
}

// --- Ticker tests ---

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func TestTickerReportsElapsed(t *testing.T) {
	clk := &fakeClock{now: time.Unix(0, 0)}
	prev := animation.SetClock(clk)
	defer animation.SetClock(prev)

	var elapsed time.Duration
	ticker := animation.NewTicker(func(e time.Duration) { elapsed = e })
	ticker.Start()
	defer ticker.Stop()

	clk.now = clk.now.Add(32 * time.Millisecond)
	animation.StepTickers()

	if elapsed != 32*time.Millisecond {
		t.Errorf("elapsed = %v, want 32ms", elapsed)
	}
}

func TestTickerStopRemovesFromFrameLoop(t *testing.T) {
	clk := &fakeClock{now: time.Unix(0, 0)}
	prev := animation.SetClock(clk)
	defer animation.SetClock(prev)

	calls := 0
	ticker := animation.NewTicker(func(time.Duration) { calls++ })
	ticker.Start()
	ticker.Stop()

	clk.now = clk.now.Add(16 * time.Millisecond)
	animation.StepTickers()

	if calls != 0 {
		t.Errorf("expected no callbacks after Stop, got %d", calls)
	}
	if ticker.IsActive() {
		t.Error("expected ticker to be inactive")
	}
}
