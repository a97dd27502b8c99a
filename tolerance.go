package josa

import (
	"errors"
	"fmt"
	"strings"
)

// ToleranceStyle selects which tolerant spelling represents a particle
// when the coda of the preceding word cannot be determined.
type ToleranceStyle int

// The four canonical tolerant spellings, illustrated with 은/는.
const (
	Morph1OptionalMorph2 ToleranceStyle = iota // 은(는)
	OptionalMorph1Morph2                       // (은)는
	Morph2OptionalMorph1                       // 는(은)
	OptionalMorph2Morph1                       // (는)은
)

// DefaultToleranceStyle is used when no style is specified.
const DefaultToleranceStyle = Morph1OptionalMorph2

// ErrToleranceStyle reports a tolerance style literal that does not
// resolve to one of the four canonical forms of a catalog particle.
var ErrToleranceStyle = errors.New("josa: not a canonical tolerant form")

// generateTolerances synthesizes every reasonable tolerant spelling of
// a particle from its two morphs, in priority order. It returns no
// forms when the morphs are equal, one form when either morph is empty
// or one morph is a plain suffix of the other, and four forms
// otherwise.
func generateTolerances(morph1, morph2 string) []string {
	if morph1 == morph2 {
		// Tolerance not required.
		return nil
	}
	if morph1 == "" || morph2 == "" {
		// Null allomorph exists.
		if morph1 == "" {
			return []string{"(" + morph2 + ")"}
		}
		return []string{"(" + morph1 + ")"}
	}
	r1, r2 := []rune(morph1), []rune(morph2)
	if len(r1) != len(r2) {
		longer, shorter := morph1, morph2
		if len(r2) > len(r1) {
			longer, shorter = morph2, morph1
		}
		if strings.HasSuffix(longer, shorter) {
			// The longer differs only by an optional head.
			return []string{"(" + strings.TrimSuffix(longer, shorter) + ")" + shorter}
		}
	}
	// Split off the longest common trailing substring.
	x := 0
	for x < len(r1) && x < len(r2) && r1[len(r1)-1-x] == r2[len(r2)-1-x] {
		x++
	}
	suffix := string(r1[len(r1)-x:])
	p1, p2 := string(r1[:len(r1)-x]), string(r2[:len(r2)-x])
	return []string{
		p1 + "(" + p2 + ")" + suffix,
		"(" + p1 + ")" + p2 + suffix,
		p2 + "(" + p1 + ")" + suffix,
		"(" + p2 + ")" + p1 + suffix,
	}
}

// pickTolerance indexes a tolerance set by style; an out-of-range
// style clamps to the first form.
func pickTolerance(tolerances []string, style ToleranceStyle) string {
	if int(style) < 0 || int(style) >= len(tolerances) {
		style = 0
	}
	return tolerances[style]
}

// ParseToleranceStyle resolves a tolerance style from an example
// tolerant spelling, such as "은(는)" for Morph1OptionalMorph2. The
// example must be one of the four canonical forms of a particle known
// to the registry; anything else is a configuration error.
func ParseToleranceStyle(example string, registry *Registry) (ToleranceStyle, error) {
	if registry == nil {
		registry = DefaultRegistry
	}
	p := registry.Get(example)
	if len(p.tolerances) != 4 {
		return 0, fmt.Errorf("%w: %q", ErrToleranceStyle, example)
	}
	for i, form := range p.tolerances {
		if form == example {
			return ToleranceStyle(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrToleranceStyle, example)
}
