package josa

import (
	"fmt"
	"regexp"
	"strings"
)

// Registry indexes a fixed catalog of particles into one combined
// matcher, so an arbitrary written form resolves to its producing
// particle in a single pass. A Registry is built once and never
// mutated afterwards.
type Registry struct {
	def       *Particle
	particles []*Particle
	re        *regexp.Regexp
	groups    map[string]int
}

// NewRegistry indexes the given particles. Forms recognized by no
// particle resolve to def.
func NewRegistry(def *Particle, particles []*Particle) *Registry {
	patterns := make([]string, len(particles))
	groups := make(map[string]int, len(particles))
	for i, p := range particles {
		name := fmt.Sprintf("_%d", i)
		groups[name] = i
		patterns[i] = "(?P<" + name + ">" + p.pattern + ")"
	}
	return &Registry{
		def:       def,
		particles: particles,
		re:        regexp.MustCompile(strings.Join(patterns, "|")),
		groups:    groups,
	}
}

// Get returns the particle that owns the given written form, or the
// default particle when no catalog particle recognizes it.
func (r *Registry) Get(form string) *Particle {
	m := r.re.FindStringSubmatch(form)
	if m == nil {
		return r.def
	}
	for i, name := range r.re.SubexpNames() {
		if name == "" || m[i] == "" {
			continue
		}
		if x, ok := r.groups[name]; ok {
			return r.particles[x]
		}
	}
	return r.def
}

// Postfix attaches the resolved allomorph of form to word.
func (r *Registry) Postfix(word, form string, opts ...Option) string {
	p := r.Get(form)
	morph, ok := p.Allomorph(word, form, opts...)
	if !ok {
		return word + form
	}
	return word + morph
}

// Particles returns the catalog of this registry, in lookup order.
func (r *Registry) Particles() []*Particle {
	out := make([]*Particle, len(r.particles))
	copy(out, r.particles)
	return out
}

// Default returns the particle used for unrecognized forms.
func (r *Registry) Default() *Particle { return r.def }

var defaultCatalog = []*Particle{
	// Simple allomorphic rule:
	NewParticle("이", "가", true),
	NewParticle("을", "를", true),
	NewParticle("은", "는", false), // 은(는) also covers 은(는)커녕
	NewParticle("과", "와", false),
	// Vocative particles:
	NewParticle("아", "야", true),
	NewParticle("이여", "여", true),
	NewParticle("이시여", "시여", true),
	// Invariant particles:
	NewInvariant("의", true),
	NewInvariant("도", true),
	NewInvariant("만", false),
	NewInvariant("에", false),
	NewInvariant("께", false),
	NewInvariant("뿐", false),
	NewInvariant("하", false),
	NewInvariant("보다", false),
	NewInvariant("밖에", false),
	NewInvariant("같이", false),
	NewInvariant("부터", false),
	NewInvariant("까지", false),
	NewInvariant("마저", false),
	NewInvariant("조차", false),
	NewInvariant("마냥", false),
	NewInvariant("처럼", false),
	NewInvariant("커녕", false),
	// Special particles:
	Euro,
}

// DefaultCatalog returns the well-known particles, in catalog order.
func DefaultCatalog() []*Particle {
	out := make([]*Particle, len(defaultCatalog))
	copy(out, defaultCatalog)
	return out
}

// DefaultRegistry holds the well-known Korean particles.
var DefaultRegistry = NewRegistry(Ida, defaultCatalog)

// Get looks a form up in the default registry.
func Get(form string) *Particle {
	return DefaultRegistry.Get(form)
}

// Postfix attaches a particle from the default registry to word.
func Postfix(word, form string, opts ...Option) string {
	return DefaultRegistry.Postfix(word, form, opts...)
}
