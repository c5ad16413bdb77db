package slide

import (
	"testing"
	"time"

	"github.com/go-drift/slide/pkg/animation"
	"github.com/go-drift/slide/pkg/slidetest"
)

type tickLog struct {
	positions []float64
	done      bool
}

func (l *tickLog) tick(position float64, done bool) {
	l.positions = append(l.positions, position)
	if done {
		l.done = true
	}
}

func TestRestDriverSettlesAtZero(t *testing.T) {
	clk, restore := slidetest.InstallClock()
	defer restore()

	log := &tickLog{}
	driver := newRestDriver(log.tick)
	defer driver.stop()

	driver.start(200, 0, animation.DefaultSpring())
	if !driver.animating() {
		t.Fatal("driver must be animating after start")
	}

	if !slidetest.PumpUntilIdle(clk) {
		t.Fatal("spring never settled")
	}
	if driver.animating() {
		t.Error("driver must be idle after settling")
	}
	if !log.done {
		t.Error("final tick must report done")
	}
	if len(log.positions) == 0 {
		t.Fatal("expected position ticks")
	}
	if last := log.positions[len(log.positions)-1]; last != 0 {
		t.Errorf("final position = %v, want exactly 0", last)
	}
}

func TestRestDriverAlreadyAtRest(t *testing.T) {
	_, restore := slidetest.InstallClock()
	defer restore()

	log := &tickLog{}
	driver := newRestDriver(log.tick)

	driver.start(0, 0, animation.DefaultSpring())
	if driver.animating() {
		t.Error("start at rest must not animate")
	}
	if !log.done || len(log.positions) != 1 || log.positions[0] != 0 {
		t.Errorf("want a single immediate done tick at 0, got %v done=%v", log.positions, log.done)
	}
}

func TestRestDriverCapsStalledFrames(t *testing.T) {
	clk, restore := slidetest.InstallClock()
	defer restore()

	log := &tickLog{}
	driver := newRestDriver(log.tick)
	defer driver.stop()

	driver.start(200, 0, animation.DefaultSpring())

	// A single stalled one-second frame must integrate at most maxFrameDelta,
	// not teleport the thumb to rest.
	slidetest.Pump(clk, time.Second, 1)
	if log.done {
		t.Fatal("spring must not settle from one capped frame")
	}
	got := log.positions[len(log.positions)-1]

	// Reference: the same spring stepped by exactly maxFrameDelta.
	ref := animation.NewSpringSimulation(animation.DefaultSpring(), 200, 0, 0)
	ref.Step(maxFrameDelta)
	if got != ref.Position() {
		t.Errorf("capped frame position = %v, want %v", got, ref.Position())
	}
}

func TestRestDriverStopHaltsWithoutTick(t *testing.T) {
	clk, restore := slidetest.InstallClock()
	defer restore()

	log := &tickLog{}
	driver := newRestDriver(log.tick)

	driver.start(200, -50, animation.DefaultSpring())
	slidetest.Pump(clk, 16*time.Millisecond, 2)
	seen := len(log.positions)

	driver.stop()
	if driver.animating() {
		t.Error("driver must be idle after stop")
	}
	slidetest.Pump(clk, 16*time.Millisecond, 3)
	if len(log.positions) != seen {
		t.Error("stopped driver must not tick")
	}
}

func TestRestDriverRestartReplacesAnimation(t *testing.T) {
	clk, restore := slidetest.InstallClock()
	defer restore()

	log := &tickLog{}
	driver := newRestDriver(log.tick)
	defer driver.stop()

	driver.start(200, 0, animation.DefaultSpring())
	slidetest.Pump(clk, 16*time.Millisecond, 2)

	driver.start(40, 0, animation.DefaultSpring())
	if !slidetest.PumpUntilIdle(clk) {
		t.Fatal("replacement spring never settled")
	}
	if last := log.positions[len(log.positions)-1]; last != 0 {
		t.Errorf("final position = %v, want 0", last)
	}
}

func TestRestDriverZeroElapsedFrame(t *testing.T) {
	_, restore := slidetest.InstallClock()
	defer restore()

	log := &tickLog{}
	driver := newRestDriver(log.tick)
	defer driver.stop()

	driver.start(200, 0, animation.DefaultSpring())

	// Stepping without advancing the clock must not tick.
	animation.StepTickers()
	if len(log.positions) != 0 {
		t.Errorf("zero-dt frame produced %d ticks, want 0", len(log.positions))
	}
}
