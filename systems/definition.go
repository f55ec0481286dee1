package systems

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/viritys/viritys"
)

type (
	// Definition describes one tuning system in a yaml definition file.
	// Kind selects the concrete system: "equal", "just" or "cents".
	Definition struct {
		ID             string    `yaml:"id"`
		Kind           string    `yaml:"kind"`
		Label          string    `yaml:"label,omitempty"`
		BaseFreq       float32   `yaml:"basefreq"`
		BaseIndex      int       `yaml:"baseindex"`
		StepsPerOctave int       `yaml:"stepsperoctave,omitempty"`
		Ratios         []float32 `yaml:"ratios,omitempty"`
		Cents          []float32 `yaml:"cents,omitempty"`
	}

	// DefinitionFile is the top-level structure of a definition file.
	DefinitionFile struct {
		Systems []Definition `yaml:"systems"`
	}

	// UnknownKindError reports a definition whose kind is not recognized.
	UnknownKindError struct {
		ID   string
		Kind string
	}
)

func (e *UnknownKindError) Error() string {
	return fmt.Sprintf("system %q has unknown kind %q", e.ID, e.Kind)
}

// LoadDefinitions reads a yaml definition file. Unknown fields are
// rejected so typos in definitions fail loudly.
func LoadDefinitions(r io.Reader) ([]Definition, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var file DefinitionFile
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load tuning definitions: %w", err)
	}
	return file.Systems, nil
}

// System constructs the tuning system the definition describes.
func (d Definition) System() (viritys.TuningSystem, error) {
	switch d.Kind {
	case "equal":
		et, err := NewEqualTemperament(d.StepsPerOctave, d.BaseFreq, d.BaseIndex)
		if err != nil {
			return nil, fmt.Errorf("system %q: %w", d.ID, err)
		}
		if d.Label != "" {
			et = et.WithLabel(d.Label)
		}
		return et, nil
	case "just":
		ji, err := NewJustIntonation(d.BaseFreq, d.BaseIndex, d.Ratios)
		if err != nil {
			return nil, fmt.Errorf("system %q: %w", d.ID, err)
		}
		if d.Label != "" {
			ji = ji.WithLabel(d.Label)
		}
		return ji, nil
	case "cents":
		cs, err := NewCentsScale(d.BaseFreq, d.BaseIndex, d.Cents)
		if err != nil {
			return nil, fmt.Errorf("system %q: %w", d.ID, err)
		}
		if d.Label != "" {
			cs = cs.WithLabel(d.Label)
		}
		return cs, nil
	}
	return nil, &UnknownKindError{ID: d.ID, Kind: d.Kind}
}

// Register builds every definition and registers it in the registry,
// failing on invalid definitions or duplicate identifiers.
func Register(registry *viritys.TuningRegistry, defs []Definition) error {
	for _, def := range defs {
		id, err := viritys.NewSystemID(def.ID)
		if err != nil {
			return fmt.Errorf("system %q: %w", def.ID, err)
		}
		system, err := def.System()
		if err != nil {
			return err
		}
		if err := registry.TryRegister(id, system); err != nil {
			return err
		}
	}
	return nil
}

//go:embed standard.yml
var standardDefinitions []byte

// Standard IDs registered by RegisterStandard.
const (
	StandardTwelveTET   viritys.SystemID = "12tet"
	StandardTwentyFour  viritys.SystemID = "24tet"
	StandardJustMajor   viritys.SystemID = "ji-major"
	StandardQuarterTone viritys.SystemID = "24edo"
)

// RegisterStandard registers the embedded standard tuning systems: twelve
// and twenty-four tone equal temperament, the 5-limit just major scale and
// the quarter-tone cent scale, all anchored at 440 Hz on index 69.
func RegisterStandard(registry *viritys.TuningRegistry) error {
	defs, err := LoadDefinitions(bytes.NewReader(standardDefinitions))
	if err != nil {
		return err
	}
	return Register(registry, defs)
}

// StandardRegistry builds a registry preloaded with the standard systems.
func StandardRegistry() (*viritys.TuningRegistry, error) {
	registry := viritys.NewTuningRegistry()
	if err := RegisterStandard(registry); err != nil {
		return nil, err
	}
	return registry, nil
}
