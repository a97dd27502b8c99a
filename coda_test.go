package josa

import "testing"

func TestGuessCoda(t *testing.T) {
	tests := []struct {
		word string
		coda string
		ok   bool
	}{
		{"나오", "", true},
		{"모리안", "ㄴ", true},
		{"키홀", "ㄹ", true},
		{"God", "", false},
		{"", "", false},

		// Insignificant trailing material.
		{"나오(Lv.25)", "", true},
		{"나오 (Lv.25)", "", true},
		{"나(?)오", "", true},
		{"헬로월드!", "", true},
		{"?_?", "", false},
		{"임창정,,,", "ㅇ", true},
		{"《듀랑고》", "", true},
		{"불완전괄호)", "", true},
		{"이상한괄호)))", "", true},
		{"이상한괄호)()", "", true},
		{"이상한괄호())", "", true},
		{"폭탄(가짜)...", "ㄴ", true},
		{"검색", "ㄱ", true}, // private use characters are unreadable

		// A word that is itself a parenthesized group is unwrapped.
		{"(1, 2)", "", true},
		{"(2, 3)", "ㅁ", true},

		// Trailing decimals are read in native Korean numerals.
		{"레벨30", "ㅂ", true},
		{"레벨34", "", true},
		{"레벨7", "ㄹ", true},
		{"16(7)?!", "ㄱ", true},
		{"7(16)?!", "ㄹ", true},

		// Onset-only jamo are letters but carry no coda reading.
		{"ㅋㅋㅋ", "", false},
	}
	for _, tt := range tests {
		coda, ok := GuessCoda(tt.word)
		if coda != tt.coda || ok != tt.ok {
			t.Fatalf("GuessCoda(%q) = (%q, %v), expected (%q, %v)",
				tt.word, coda, ok, tt.coda, tt.ok)
		}
	}
}

// GuessCoda is pure: repeated calls must agree.
func TestGuessCodaPure(t *testing.T) {
	for _, word := range []string{"나오", "레벨34", "폭탄(가짜)...", "God"} {
		c1, ok1 := GuessCoda(word)
		c2, ok2 := GuessCoda(word)
		if c1 != c2 || ok1 != ok2 {
			t.Fatalf("GuessCoda(%q) not deterministic: (%q, %v) vs (%q, %v)",
				word, c1, ok1, c2, ok2)
		}
	}
}

func TestPickCodaFromDecimal(t *testing.T) {
	tests := []struct {
		decimal string
		coda    string
		ok      bool
	}{
		{"1", "ㄹ", true},   // 일
		{"2", "", true},    // 이
		{"3", "ㅁ", true},   // 삼
		{"10", "ㅂ", true},  // 십
		{"16", "ㄱ", true},  // 십육
		{"19", "", true},   // 십구
		{"200", "ㄱ", true}, // 이백
		{"30000", "ㄴ", true},     // 삼만
		{"400000", "ㄴ", true},    // 사십만
		{"500000000", "ㄱ", true}, // 오억
		{"1" + zeros(50), "ㄱ", true}, // ...극
		{"1" + zeros(100), "", false}, // beyond the largest named scale
		{"0", "ㅇ", true},   // 영
		{"1.0", "ㅇ", true}, // fractional: read digit by digit
		{"1.234567890", "ㅇ", true},
		{"3.14", "", true},
	}
	for _, tt := range tests {
		coda, ok := pickCodaFromDecimal(tt.decimal)
		if coda != tt.coda || ok != tt.ok {
			t.Fatalf("pickCodaFromDecimal(%q) = (%q, %v), expected (%q, %v)",
				tt.decimal, coda, ok, tt.coda, tt.ok)
		}
	}
}

func zeros(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = '0'
	}
	return string(b)
}

func TestFilterOnlySignificant(t *testing.T) {
	tests := []struct {
		word string
		want string
	}{
		{"넥슨(코리아)", "넥슨"},
		{"메이플스토리...", "메이플스토리"},
		{"폭탄(가짜)...", "폭탄"},
		{"이상한괄호())", "이상한괄호"},
		{"이상한괄호)()", "이상한괄호"},
		{"불완전괄호)", "불완전괄호"},
		{"(1, 2)", "1, 2"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := filterOnlySignificant(tt.word); got != tt.want {
			t.Fatalf("filterOnlySignificant(%q) = %q, expected %q", tt.word, got, tt.want)
		}
	}
}
