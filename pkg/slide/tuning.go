package slide

import (
	stderrors "errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/slide/pkg/animation"
	"github.com/go-drift/slide/pkg/errors"
)

// Tuning is the optional slide.yaml configuration carrying app-wide slider
// defaults. Threshold and spring fill only the zero fields of Options; a
// haptic entry, when present, applies to every slider.
//
//	threshold: 0.85
//	spring:
//	  damping: 18
//	  stiffness: 170
//	  mass: 1
//	haptic: false
type Tuning struct {
	Threshold float64      `yaml:"threshold,omitempty"`
	Spring    SpringTuning `yaml:"spring,omitempty"`
	Haptic    *bool        `yaml:"haptic,omitempty"`
}

// SpringTuning is the yaml shape of a spring description.
type SpringTuning struct {
	Damping   float64 `yaml:"damping,omitempty"`
	Stiffness float64 `yaml:"stiffness,omitempty"`
	Mass      float64 `yaml:"mass,omitempty"`
}

// LoadTuning reads slide.yaml from dir if present. A missing file is not an
// error; an unparseable one is a config-kind error.
func LoadTuning(dir string) (*Tuning, error) {
	path := filepath.Join(dir, "slide.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return &Tuning{}, nil
		}
		return nil, errors.New("slide.LoadTuning", errors.KindConfig,
			"failed to read %s: %v", path, err)
	}

	var t Tuning
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, errors.New("slide.LoadTuning", errors.KindConfig,
			"failed to parse %s: %v", path, err)
	}
	return &t, nil
}

// Apply fills the zero fields of o from the tuning and returns the result.
func (t *Tuning) Apply(o Options) Options {
	if o.Threshold == 0 && t.Threshold != 0 {
		o.Threshold = t.Threshold
	}
	if o.Spring == (animation.SpringDescription{}) && t.Spring != (SpringTuning{}) {
		o.Spring = animation.Spring(t.Spring.Damping, t.Spring.Stiffness, t.Spring.Mass)
	}
	if t.Haptic != nil {
		o.Haptic = *t.Haptic
	}
	return o
}
