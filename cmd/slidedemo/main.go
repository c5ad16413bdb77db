// Package main runs a headless slide-to-activate demo: it scripts a finger
// drag against each slider variant and prints the resulting progress trace,
// activation, and spring return. Useful for eyeballing tuning values from an
// optional slide.yaml in the working directory.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/go-drift/slide/pkg/animation"
	"github.com/go-drift/slide/pkg/geometry"
	"github.com/go-drift/slide/pkg/gestures"
	"github.com/go-drift/slide/pkg/slide"
	"github.com/go-drift/slide/pkg/slidetest"
)

var (
	width     = flag.Float64("width", 300, "control width in pixels")
	height    = flag.Float64("height", 60, "control height in pixels")
	thumb     = flag.Float64("thumb", 50, "thumb size in pixels")
	threshold = flag.Float64("threshold", 0, "activation threshold (0 = default)")
	vertical  = flag.Bool("vertical", false, "run the vertical variant")
	button    = flag.Bool("button", false, "run the slide-button variant")
)

// scriptedClock stands in for the host frame clock so the demo is
// deterministic and instant.
type scriptedClock struct{ now time.Time }

func (c *scriptedClock) Now() time.Time { return c.now }

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "slidedemo: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	clk := &scriptedClock{now: time.Now()}
	prev := animation.SetClock(clk)
	defer func() { animation.SetClock(prev) }()

	opts := slide.NewOptions(*width, *height, *thumb)
	if *threshold != 0 {
		opts.Threshold = *threshold
	}
	if *vertical {
		opts.Orientation = slide.Vertical
		opts.Width, opts.Height = *height, *width
	}

	tuning, err := slide.LoadTuning(".")
	if err != nil {
		return err
	}
	opts = tuning.Apply(opts)

	var slider *slide.Slider
	if *button {
		slider, err = slide.NewSlideButton(opts)
	} else {
		slider, err = slide.NewSliderInArena(opts, gestures.NewGestureArena())
	}
	if err != nil {
		return err
	}
	defer slider.Dispose()

	engine := slider.Engine()
	cfg := engine.Config()
	fmt.Printf("%s slider: travel %.0fpx, activates at %.0fpx (threshold %.2f)\n",
		cfg.Orientation, cfg.Travel, cfg.ActivationPoint(), cfg.Threshold)

	engine.OnActivate(func() {
		fmt.Printf("  *** ACTIVATED at progress %.3f\n", engine.Progress())
	})

	// Drag in even steps all the way across, one 16ms frame per step.
	ptr := slidetest.NewPointer(1, startPosition(cfg))
	slider.HandlePointer(ptr.Down())
	steps := 12
	for i := 0; i < steps; i++ {
		clk.now = clk.now.Add(16 * time.Millisecond)
		slider.HandlePointer(ptr.MoveBy(dragStep(cfg, steps)))
		fmt.Printf("  drag  t=%3dms  progress %.3f\n", (i+1)*16, engine.Progress())
	}
	slider.HandlePointer(ptr.Up())

	// Pump the return animation to rest.
	for frame := 0; animation.HasActiveTickers(); frame++ {
		clk.now = clk.now.Add(16 * time.Millisecond)
		animation.StepTickers()
		if frame%4 == 0 {
			fmt.Printf("  rest  t=%3dms  progress %.3f\n", (frame+1)*16, engine.Progress())
		}
		if frame > 1000 {
			return fmt.Errorf("return animation failed to settle")
		}
	}
	fmt.Printf("settled at progress %.3f\n", engine.Progress())
	return nil
}

// startPosition places the scripted finger on the thumb's rest position.
func startPosition(cfg slide.Config) geometry.Offset {
	if cfg.Orientation == slide.Vertical {
		return geometry.Offset{X: 30, Y: cfg.Travel + 30}
	}
	return geometry.Offset{X: 30, Y: 30}
}

// dragStep is one frame's worth of finger movement spanning the full travel.
func dragStep(cfg slide.Config, steps int) geometry.Offset {
	d := cfg.Travel / float64(steps)
	if cfg.Orientation == slide.Vertical {
		return geometry.Offset{Y: -d}
	}
	return geometry.Offset{X: d}
}
