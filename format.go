package josa

import (
	"regexp"
	"strconv"
)

// formatPattern matches markers such as {0:을} inside a template. The
// format spec must start with Hangul to be treated as a particle.
var formatPattern = regexp.MustCompile(`\{(\d+)(?::([^{}]+))?\}`)

var hangulSpec = regexp.MustCompile(`^[가-힣]`)

// Format expands positional markers in a template, attaching particles
// to their arguments:
//
//	Format("{0:은} {1:을} 얻었다", "키홀", "나오") // 키홀은 나오를 얻었다
//
// A marker without a particle spec inserts the argument verbatim, and
// a marker whose index is out of range is left untouched.
func (r *Registry) Format(template string, args ...string) string {
	return formatPattern.ReplaceAllStringFunc(template, func(marker string) string {
		m := formatPattern.FindStringSubmatch(marker)
		index, err := strconv.Atoi(m[1])
		if err != nil || index >= len(args) {
			return marker
		}
		if m[2] == "" {
			return args[index]
		}
		if !hangulSpec.MatchString(m[2]) {
			return marker
		}
		return r.Postfix(args[index], m[2])
	})
}

// Format expands a template against the default registry.
func Format(template string, args ...string) string {
	return DefaultRegistry.Format(template, args...)
}
