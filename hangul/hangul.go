// Package hangul converts Hangul syllables to and from their phonemes.
//
// A precomposed syllable in U+AC00..U+D7A3 encodes an (onset, nucleus,
// coda) triple by pure arithmetic over three fixed alphabets, so no
// table lookup is needed beyond the alphabets themselves.
package hangul

import (
	"errors"
	"fmt"
)

// Jamo alphabets. Codas[0] is the placeholder for "no coda".
var (
	Onsets   = []rune{'ㄱ', 'ㄲ', 'ㄴ', 'ㄷ', 'ㄸ', 'ㄹ', 'ㅁ', 'ㅂ', 'ㅃ', 'ㅅ', 'ㅆ', 'ㅇ', 'ㅈ', 'ㅉ', 'ㅊ', 'ㅋ', 'ㅌ', 'ㅍ', 'ㅎ'}
	Nucleuses = []rune{'ㅏ', 'ㅐ', 'ㅑ', 'ㅒ', 'ㅓ', 'ㅔ', 'ㅕ', 'ㅖ', 'ㅗ', 'ㅘ', 'ㅙ', 'ㅚ', 'ㅛ', 'ㅜ', 'ㅝ', 'ㅞ', 'ㅟ', 'ㅠ', 'ㅡ', 'ㅢ', 'ㅣ'}
	Codas    = []rune{0, 'ㄱ', 'ㄲ', 'ㄳ', 'ㄴ', 'ㄵ', 'ㄶ', 'ㄷ', 'ㄹ', 'ㄺ', 'ㄻ', 'ㄼ', 'ㄽ', 'ㄾ', 'ㄿ', 'ㅀ', 'ㅁ', 'ㅂ', 'ㅄ', 'ㅅ', 'ㅆ', 'ㅇ', 'ㅈ', 'ㅊ', 'ㅋ', 'ㅌ', 'ㅍ', 'ㅎ'}
)

const (
	// SyllableBase is the code point of '가', the first precomposed syllable.
	SyllableBase = 0xAC00
	// SyllableLast is the code point of '힣', the last precomposed syllable.
	SyllableLast = 0xD7A3

	numNucleuses = 21
	numCodas     = 28
)

// ErrInvalidPhoneme reports input outside a syllable's phoneme alphabets.
var ErrInvalidPhoneme = errors.New("hangul: invalid phoneme input")

var (
	onsetIndex   = buildIndex(Onsets)
	nucleusIndex = buildIndex(Nucleuses)
	codaIndex    = buildIndex(Codas)
)

func buildIndex(list []rune) map[rune]int {
	idx := make(map[rune]int, len(list))
	for i, ch := range list {
		idx[ch] = i
	}
	return idx
}

// IsSyllable reports whether r is a precomposed Hangul syllable.
func IsSyllable(r rune) bool {
	return r >= SyllableBase && r <= SyllableLast
}

// IsConsonant reports whether r is a bare consonant jamo (ㄱ..ㅎ).
func IsConsonant(r rune) bool {
	return r >= 'ㄱ' && r <= 'ㅎ'
}

// Split decomposes a syllable into its onset, nucleus, and coda.
// The coda is 0 when the syllable is open.
func Split(letter rune) (onset, nucleus, coda rune, err error) {
	if !IsSyllable(letter) {
		return 0, 0, 0, fmt.Errorf("%w: %q is not a syllable", ErrInvalidPhoneme, letter)
	}
	offset := int(letter - SyllableBase)
	onset = Onsets[offset/(numNucleuses*numCodas)]
	nucleus = Nucleuses[(offset/numCodas)%numNucleuses]
	coda = Codas[offset%numCodas]
	return onset, nucleus, coda, nil
}

// Coda returns only the coda of a syllable, 0 when it has none.
func Coda(letter rune) (rune, error) {
	if !IsSyllable(letter) {
		return 0, fmt.Errorf("%w: %q is not a syllable", ErrInvalidPhoneme, letter)
	}
	return Codas[int(letter-SyllableBase)%numCodas], nil
}

// Join composes a syllable from phonemes. Pass coda 0 for an open
// syllable.
func Join(onset, nucleus, coda rune) (rune, error) {
	oi, ok := onsetIndex[onset]
	if !ok {
		return 0, fmt.Errorf("%w: %q is not an onset", ErrInvalidPhoneme, onset)
	}
	ni, ok := nucleusIndex[nucleus]
	if !ok {
		return 0, fmt.Errorf("%w: %q is not a nucleus", ErrInvalidPhoneme, nucleus)
	}
	ci, ok := codaIndex[coda]
	if !ok {
		return 0, fmt.Errorf("%w: %q is not a coda", ErrInvalidPhoneme, coda)
	}
	return rune(SyllableBase + (oi*numNucleuses+ni)*numCodas + ci), nil
}

// CombineWords concatenates two word fragments. When a ends with an
// open syllable and b starts with a bare consonant, the consonant is
// fused into a's last syllable as its coda:
//
//	CombineWords("다", "ㄺ")     // 닭
//	CombineWords("가오", "ㄴ누리") // 가온누리
func CombineWords(a, b string) string {
	if a == "" || b == "" {
		return a + b
	}
	br := []rune(b)
	if !IsConsonant(br[0]) {
		return a + b
	}
	ar := []rune(a)
	onset, nucleus, coda, err := Split(ar[len(ar)-1])
	if err != nil || coda != 0 {
		return a + b
	}
	glue, err := Join(onset, nucleus, br[0])
	if err != nil {
		return a + b
	}
	return string(ar[:len(ar)-1]) + string(glue) + string(br[1:])
}
