package systems_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/chewxy/math32"

	"github.com/viritys/viritys"
	"github.com/viritys/viritys/systems"
)

const definitionYaml = `
systems:
  - id: my-12tet
    kind: equal
    label: 12-TET
    basefreq: 440
    baseindex: 69
    stepsperoctave: 12
  - id: my-just
    kind: just
    basefreq: 440
    baseindex: 69
    ratios: [1.0, 1.5]
  - id: my-cents
    kind: cents
    basefreq: 440
    baseindex: 69
    cents: [0, 50]
`

func TestLoadDefinitions(t *testing.T) {
	defs, err := systems.LoadDefinitions(strings.NewReader(definitionYaml))
	if err != nil {
		t.Fatalf("LoadDefinitions failed: %v", err)
	}
	if len(defs) != 3 {
		t.Fatalf("%d definitions, want 3", len(defs))
	}
	if defs[0].ID != "my-12tet" || defs[0].Kind != "equal" || defs[0].StepsPerOctave != 12 {
		t.Errorf("first definition decoded as %+v", defs[0])
	}
}

func TestLoadDefinitionsRejectsUnknownFields(t *testing.T) {
	const bad = `
systems:
  - id: x
    kind: equal
    basefreq: 440
    baseindex: 69
    stepsperoctav: 12
`
	if _, err := systems.LoadDefinitions(strings.NewReader(bad)); err == nil {
		t.Error("typoed field accepted")
	}
}

func TestLoadDefinitionsEmptyInput(t *testing.T) {
	defs, err := systems.LoadDefinitions(strings.NewReader(""))
	if err != nil || defs != nil {
		t.Errorf("empty input gave %v, %v", defs, err)
	}
}

func TestDefinitionSystem(t *testing.T) {
	defs, err := systems.LoadDefinitions(strings.NewReader(definitionYaml))
	if err != nil {
		t.Fatal(err)
	}

	et, err := defs[0].System()
	if err != nil {
		t.Fatalf("equal definition failed: %v", err)
	}
	if got := et.ToFrequency(69); got != 440 {
		t.Errorf("equal system anchor %v", got)
	}

	just, err := defs[1].System()
	if err != nil {
		t.Fatalf("just definition failed: %v", err)
	}
	if got := just.ToFrequency(70); math32.Abs(got-660) > 0.001 {
		t.Errorf("just system index 70 → %v, want 660", got)
	}

	cents, err := defs[2].System()
	if err != nil {
		t.Fatalf("cents definition failed: %v", err)
	}
	if got := cents.ToFrequency(69); got != 440 {
		t.Errorf("cents system anchor %v", got)
	}
}

func TestDefinitionUnknownKind(t *testing.T) {
	def := systems.Definition{ID: "x", Kind: "pythagorean"}
	_, err := def.System()
	var unknown *systems.UnknownKindError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownKindError, got %v", err)
	}
	if unknown.Kind != "pythagorean" {
		t.Errorf("error carries kind %q", unknown.Kind)
	}
}

func TestRegisterDuplicateDefinition(t *testing.T) {
	registry := viritys.NewTuningRegistry()
	defs := []systems.Definition{
		{ID: "a", Kind: "equal", BaseFreq: 440, BaseIndex: 69, StepsPerOctave: 12},
		{ID: "a", Kind: "equal", BaseFreq: 440, BaseIndex: 69, StepsPerOctave: 24},
	}
	err := systems.Register(registry, defs)
	var dup viritys.DuplicateSystemError
	if !errors.As(err, &dup) {
		t.Fatalf("expected DuplicateSystemError, got %v", err)
	}
}

func TestRegisterStandard(t *testing.T) {
	registry, err := systems.StandardRegistry()
	if err != nil {
		t.Fatalf("StandardRegistry failed: %v", err)
	}
	for _, id := range []viritys.SystemID{
		systems.StandardTwelveTET,
		systems.StandardTwentyFour,
		systems.StandardJustMajor,
		systems.StandardQuarterTone,
	} {
		if !registry.Contains(id) {
			t.Errorf("standard registry missing %s", id)
		}
		freq, err := registry.ResolveFrequency(id, 69)
		if err != nil {
			t.Fatalf("%s: %v", id, err)
		}
		if freq != 440 {
			t.Errorf("%s anchor resolves to %v, want 440", id, freq)
		}
	}

	fifth, err := registry.ResolveFrequency(systems.StandardJustMajor, 76)
	if err != nil {
		t.Fatal(err)
	}
	if math32.Abs(fifth-660) > 0.001 {
		t.Errorf("just fifth resolves to %v, want 660", fifth)
	}
}
