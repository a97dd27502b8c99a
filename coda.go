package josa

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/f3rmion/josa/hangul"
)

// GuessFunc guesses the coda of a word. It returns "" when the word
// ends in a vowel, a single jamo when it ends in that consonant, and
// ok=false when the ending cannot be determined.
type GuessFunc func(word string) (coda string, ok bool)

// decimalPattern matches a decimal at the end of a word.
var decimalPattern = regexp.MustCompile(`[0-9]+(\.[0-9]+)?$`)

// GuessCoda guesses the coda of the given word as correctly as
// possible. Insignificant trailing characters (punctuation, complete
// parenthesized groups) are ignored, and a trailing decimal is read
// aloud in native Korean numerals to find its final sound.
func GuessCoda(word string) (string, bool) {
	return guessCodaOfSignificant(filterOnlySignificant(word))
}

func guessCodaOfSignificant(word string) (string, bool) {
	if word == "" {
		return "", false
	}
	if m := decimalPattern.FindString(word); m != "" {
		return pickCodaFromDecimal(m)
	}
	r := []rune(word)
	return pickCodaFromLetter(r[len(r)-1])
}

// filterOnlySignificant removes insignificant letters at the end of
// the word: "넥슨(코리아)" becomes "넥슨", "메이플스토리..." becomes
// "메이플스토리". A word that is itself one parenthesized group is
// unwrapped first.
func filterOnlySignificant(word string) string {
	if word == "" {
		return word
	}
	r := []rune(word)
	if r[0] == '(' && r[len(r)-1] == ')' {
		return filterOnlySignificant(string(r[1 : len(r)-1]))
	}
	x := len(r)
	for x > 0 {
		x--
		l := r[x]
		// Skip a complete trailing parenthesized group.
		if l == ')' {
			if p := indexRune(r[:x], '('); p >= 0 {
				x = p
			}
			continue
		}
		// Skip unreadable characters such as punctuation.
		if isSignificant(l) {
			break
		}
	}
	return string(r[:x+1])
}

func indexRune(r []rune, target rune) int {
	for i, l := range r {
		if l == target {
			return i
		}
	}
	return -1
}

// Readable categories: letters, numbers, and currency/math/other
// symbols. Everything else (punctuation, marks, separators) has no
// spoken value at the end of a word.
func isSignificant(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r) ||
		unicode.In(r, unicode.Sc, unicode.Sm, unicode.So)
}

func pickCodaFromLetter(letter rune) (string, bool) {
	coda, err := hangul.Coda(letter)
	if err != nil {
		return "", false
	}
	if coda == 0 {
		return "", true
	}
	return string(coda), true
}

// Spoken digit names (0-9) and scale names by power of ten.
var (
	digitNames = []rune("영일이삼사오육칠팔구")
	digitCodas = make([]string, len(digitNames))

	scales = []struct {
		exp  int
		name string
	}{
		{1, "십"}, {2, "백"}, {3, "천"}, {4, "만"},
		{8, "억"}, {12, "조"}, {16, "경"}, {20, "해"},
		{24, "자"}, {28, "양"}, {32, "구"}, {36, "간"},
		{40, "정"}, {44, "재"}, {48, "극"}, {52, "항하사"},
		{56, "아승기"}, {60, "나유타"}, {64, "불가사의"}, {68, "무량대수"},
		{72, "겁"}, {76, "업"},
	}
	scaleCodas []string

	// The first power of ten past the largest named scale. Numbers
	// read at or above it have no conventional reading.
	unreadableExp int
)

func init() {
	for i, name := range digitNames {
		digitCodas[i], _ = pickCodaFromLetter(name)
	}
	scaleCodas = make([]string, len(scales))
	for i, s := range scales {
		r := []rune(s.name)
		scaleCodas[i], _ = pickCodaFromLetter(r[len(r)-1])
	}
	unreadableExp = scales[len(scales)-1].exp + 4
}

// pickCodaFromDecimal returns the coda of the given decimal literal as
// spoken in native Korean numerals.
func pickCodaFromDecimal(decimal string) (string, bool) {
	if strings.Contains(decimal, ".") {
		// A fractional value is read digit by digit; its sound ends
		// with the name of the last digit.
		return digitCodas[decimal[len(decimal)-1]-'0'], true
	}
	// Normalize to (digits, power-of-ten exponent).
	digits := strings.TrimRight(decimal, "0")
	exp := len(decimal) - len(digits)
	if digits == "" {
		digits, exp = "0", 0
	}
	if exp >= unreadableExp {
		return "", false
	}
	// Greatest named scale not exceeding the exponent.
	scale := -1
	for i := range scales {
		if scales[i].exp > exp {
			break
		}
		scale = i
	}
	if scale < 0 {
		// Ones place: the spoken word ends with the digit name.
		return digitCodas[digits[len(digits)-1]-'0'], true
	}
	return scaleCodas[scale], true
}
