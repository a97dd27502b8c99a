// Package josa selects the correct surface form of a Korean particle
// for a word that is only known at runtime. Particle choice depends on
// whether the word ends in a consonant or a vowel; when the ending
// cannot be determined the conventional bracketed spelling, such as
// 은(는), is used instead.
package josa

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/f3rmion/josa/hangul"
)

// Particle represents a Korean particle (조사) together with the rule
// that selects between its two allomorphs. All derived state is built
// at construction, so a Particle is immutable and safe for concurrent
// use.
type Particle struct {
	morph1   string // allomorph after a consonant
	morph2   string // allomorph after a vowel
	final    bool   // disallows a further suffix after the particle
	behavior behaviorTag

	tolerances []string
	morphs     []string // declared and tolerant spellings, longest first
	pattern    string
	re         *regexp.Regexp
}

// behaviorTag selects the resolution behavior of a particle. The
// catalog is fixed, so the two special cases are dispatch entries
// rather than subtypes.
type behaviorTag int

const (
	generic     behaviorTag = iota
	directional             // liaison after coda ㄹ (으로/로)
	copula                  // verbal 이다 with vowel-glide contraction
)

type behaviorFuncs struct {
	rule    func(p *Particle, coda string) string
	resolve func(p *Particle, word, form string, cfg *resolveConfig) (string, bool)
}

var behaviors map[behaviorTag]behaviorFuncs

func init() {
	behaviors = map[behaviorTag]behaviorFuncs{
		generic:     {rule: genericRule, resolve: genericResolve},
		directional: {rule: directionalRule, resolve: genericResolve},
		copula:      {rule: genericRule, resolve: copulaResolve},
	}
}

// Special catalog particles.
var (
	// Euro is 으로/로. Particles starting with 으로 keep the short
	// morph after coda ㄹ and can be extended with suffixes such as
	// 으로서 and 으로부터.
	Euro = newParticle("으로", "로", false, directional)

	// Ida is the verbal particle 이다. Like other Korean verbs it is
	// fusional, so it resolves with its own algorithm.
	Ida = newParticle("이", "", false, copula)
)

// NewParticle builds a particle from its allomorph after a consonant,
// its allomorph after a vowel, and whether it refuses a further
// suffix.
func NewParticle(morph1, morph2 string, final bool) *Particle {
	return newParticle(morph1, morph2, final, generic)
}

// NewInvariant builds a particle with a single spelling regardless of
// the preceding word.
func NewInvariant(morph string, final bool) *Particle {
	return newParticle(morph, morph, final, generic)
}

func newParticle(morph1, morph2 string, final bool, behavior behaviorTag) *Particle {
	p := &Particle{
		morph1:   morph1,
		morph2:   morph2,
		final:    final,
		behavior: behavior,
	}
	p.tolerances = generateTolerances(morph1, morph2)
	p.morphs = collectMorphs(morph1, morph2, p.tolerances)
	p.pattern = p.buildPattern()
	p.re = regexp.MustCompile(p.pattern)
	return p
}

// collectMorphs dedupes the declared morphs and tolerant spellings and
// orders them longest first, so the most specific spelling wins over a
// shorter one it contains.
func collectMorphs(morph1, morph2 string, tolerances []string) []string {
	seen := make(map[string]bool)
	var morphs []string
	for _, m := range append([]string{morph1, morph2}, tolerances...) {
		if m == "" || seen[m] {
			continue
		}
		seen[m] = true
		morphs = append(morphs, m)
	}
	sort.SliceStable(morphs, func(i, j int) bool {
		return utf8.RuneCountInString(morphs[i]) > utf8.RuneCountInString(morphs[j])
	})
	return morphs
}

// buildPattern compiles every known spelling into one alternation. A
// spelling ending in an open syllable is widened to a character range
// that also accepts the syllable with any coda, which covers inputs
// that pre-fused a following consonant into the particle (e.g. 완 for
// 와 plus a detached ㄴ). A final particle must consume the entire
// input, so its pattern stays literal and anchored at both ends.
func (p *Particle) buildPattern() string {
	if p.final {
		quoted := make([]string, len(p.morphs))
		for i, m := range p.morphs {
			quoted[i] = regexp.QuoteMeta(m)
		}
		return "^(?:" + strings.Join(quoted, "|") + ")$"
	}
	patterns := make([]string, len(p.morphs))
	for i, m := range p.morphs {
		patterns[i] = "(" + widen(m) + ")"
	}
	return "^(?:" + strings.Join(patterns, "|") + ")"
}

func widen(morph string) string {
	r := []rune(morph)
	last := r[len(r)-1]
	onset, nucleus, coda, err := hangul.Split(last)
	if err != nil || coda != 0 {
		return regexp.QuoteMeta(morph)
	}
	end, _ := hangul.Join(onset, nucleus, 'ㅎ')
	return regexp.QuoteMeta(string(r[:len(r)-1])) + "[" + string(last) + "-" + string(end) + "]"
}

// Morph1 returns the allomorph used after a consonant.
func (p *Particle) Morph1() string { return p.morph1 }

// Morph2 returns the allomorph used after a vowel.
func (p *Particle) Morph2() string { return p.morph2 }

// Final reports whether the particle disallows a further suffix.
func (p *Particle) Final() bool { return p.final }

// Tolerances returns every tolerant spelling of the particle.
func (p *Particle) Tolerances() []string {
	out := make([]string, len(p.tolerances))
	copy(out, p.tolerances)
	return out
}

// Tolerance returns the tolerant spelling for the given style. A
// particle without alternative allomorphs has no tolerant spelling and
// yields its single morph.
func (p *Particle) Tolerance(style ToleranceStyle) string {
	if len(p.tolerances) == 0 {
		return p.morph1
	}
	return pickTolerance(p.tolerances, style)
}

func (p *Particle) String() string {
	return p.Tolerance(DefaultToleranceStyle)
}

// Match recognizes any written spelling of the particle at the start
// of form and returns the remainder after it. When a widened pattern
// consumed an extra trailing consonant, that consonant is recovered as
// an implied coda and prepended to the remainder.
func (p *Particle) Match(form string) (suffix string, ok bool) {
	m := p.re.FindStringSubmatch(form)
	if m == nil {
		return "", false
	}
	matched := m[0]
	rest := form[len(matched):]
	if p.final {
		return rest, true
	}
	for i := 1; i < len(m); i++ {
		if m[i] == "" {
			continue
		}
		if m[i] == p.morphs[i-1] {
			// The matched text is exactly a declared spelling.
			return rest, true
		}
		break
	}
	r := []rune(matched)
	coda, ok := pickCodaFromLetter(r[len(r)-1])
	if !ok {
		return rest, true
	}
	return coda + rest, true
}

// resolveConfig carries per-call resolution options.
type resolveConfig struct {
	style    ToleranceStyle
	morph    string
	hasMorph bool
	guess    GuessFunc
}

// Option configures one resolution call.
type Option func(*resolveConfig)

// WithToleranceStyle selects the tolerant spelling used when the coda
// cannot be determined.
func WithToleranceStyle(style ToleranceStyle) Option {
	return func(cfg *resolveConfig) { cfg.style = style }
}

// WithToleranceMorph supplies a literal morph to use verbatim when the
// coda cannot be determined.
func WithToleranceMorph(morph string) Option {
	return func(cfg *resolveConfig) { cfg.morph, cfg.hasMorph = morph, true }
}

// WithGuesser replaces the default coda guesser.
func WithGuesser(guess GuessFunc) Option {
	return func(cfg *resolveConfig) { cfg.guess = guess }
}

func newResolveConfig(opts []Option) resolveConfig {
	cfg := resolveConfig{style: DefaultToleranceStyle, guess: GuessCoda}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Allomorph resolves the correct surface form of the particle, as
// written in form, for the given word. It reports false when form is
// not a spelling of this particle.
func (p *Particle) Allomorph(word, form string, opts ...Option) (string, bool) {
	cfg := newResolveConfig(opts)
	return behaviors[p.behavior].resolve(p, word, form, &cfg)
}

func genericRule(p *Particle, coda string) string {
	if coda != "" {
		return p.morph1
	}
	return p.morph2
}

func directionalRule(p *Particle, coda string) string {
	if coda != "" && coda != "ㄹ" {
		return p.morph1
	}
	return p.morph2
}

func genericResolve(p *Particle, word, form string, cfg *resolveConfig) (string, bool) {
	suffix, ok := p.Match(form)
	if !ok {
		return "", false
	}
	coda, known := cfg.guess(word)
	var morph string
	switch {
	case known:
		morph = behaviors[p.behavior].rule(p, coda)
	case cfg.hasMorph:
		morph = cfg.morph
	case suffix == "" || !hangul.IsConsonant(firstRune(suffix)):
		morph = p.Tolerance(cfg.style)
	default:
		// The suffix starts with a bare consonant that must fuse with
		// the morph, but the coda is unknown. Fuse the consonant onto
		// both candidates and tolerate over the fused pair; the result
		// already encodes the suffix.
		morph1 := fuseSuffix(p.morph1, suffix)
		morph2 := fuseSuffix(p.morph2, suffix)
		fused := generateTolerances(morph1, morph2)
		if len(fused) == 0 {
			return morph1, true
		}
		return pickTolerance(fused, cfg.style), true
	}
	return hangul.CombineWords(morph, suffix), true
}

func fuseSuffix(morph, suffix string) string {
	if morph == "" {
		_, size := utf8.DecodeRuneInString(suffix)
		return suffix[size:]
	}
	return hangul.CombineWords(morph, suffix)
}

// Vowels rewritten by /j/ injection when the copula fuses with its
// suffix, and the inverse mapping.
var (
	jInjections = map[rune]rune{'ㅓ': 'ㅕ', 'ㅔ': 'ㅖ'}
	jEjections  = map[rune]rune{'ㅕ': 'ㅓ', 'ㅖ': 'ㅔ'}
)

func copulaResolve(p *Particle, word, form string, cfg *resolveConfig) (string, bool) {
	// Normalize fused verbal spellings: strip a written 이 or (이).
	suffix := strings.TrimPrefix(form, "이")
	suffix = strings.ReplaceAll(suffix, "(이)", "")
	coda, known := cfg.guess(word)
	if suffix != "" {
		r := []rune(suffix)
		onset, nucleus, scoda, err := hangul.Split(r[0])
		if err == nil && onset == 'ㅇ' {
			if nucleus == 'ㅣ' {
				// Suffixes such as 입니다 already carry the 이 sound;
				// no allomorph is needed.
				return suffix, true
			}
			var mapped rune
			if known && coda == "" {
				// Squeeze 이어/이에 to 여/예 after a vowel.
				mapped = jInjections[nucleus]
			} else {
				// Lengthen 여/예 to 이어/이에 after a consonant, or
				// when the ending is unknown.
				mapped = jEjections[nucleus]
			}
			if mapped != 0 {
				letter, err := hangul.Join('ㅇ', mapped, scoda)
				if err == nil {
					suffix = string(letter) + string(r[1:])
				}
			}
		}
	}
	var morph string
	switch {
	case known:
		morph = genericRule(p, coda)
	case cfg.hasMorph:
		morph = cfg.morph
	default:
		morph = p.Tolerance(cfg.style)
	}
	return morph + suffix, true
}

func firstRune(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	return r
}
