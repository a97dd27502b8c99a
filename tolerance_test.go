package josa

import (
	"errors"
	"reflect"
	"testing"
)

func TestGenerateTolerances(t *testing.T) {
	tests := []struct {
		morph1 string
		morph2 string
		want   []string
	}{
		// Four forms when both morphs are distinct and unrelated.
		{"이", "가", []string{"이(가)", "(이)가", "가(이)", "(가)이"}},
		{"아", "야", []string{"아(야)", "(아)야", "야(아)", "(야)아"}},
		// Shared trailing substring is factored out.
		{"가나다", "나나다", []string{"가(나)나다", "(가)나나다", "나(가)나다", "(나)가나다"}},
		// No similarity at all.
		{"가나다", "마바사", []string{"가나다(마바사)", "(가나다)마바사", "마바사(가나다)", "(마바사)가나다"}},
		// One form when the longer morph ends with the shorter.
		{"으로", "로", []string{"(으)로"}},
		{"이여", "여", []string{"(이)여"}},
		{"이시여", "시여", []string{"(이)시여"}},
		// One form when a null allomorph exists.
		{"이", "", []string{"(이)"}},
		{"", "가", []string{"(가)"}},
		// No forms when tolerance is not required.
		{"도", "도", nil},
	}
	for _, tt := range tests {
		got := generateTolerances(tt.morph1, tt.morph2)
		if !reflect.DeepEqual(got, tt.want) {
			t.Fatalf("generateTolerances(%q, %q) = %v, expected %v",
				tt.morph1, tt.morph2, got, tt.want)
		}
	}
}

func TestPickToleranceClamps(t *testing.T) {
	tolerances := []string{"은(는)", "(은)는", "는(은)", "(는)은"}
	if got := pickTolerance(tolerances, OptionalMorph2Morph1); got != "(는)은" {
		t.Fatalf("expected (는)은, got %q", got)
	}
	// Out-of-range styles clamp to the first form.
	if got := pickTolerance(tolerances, ToleranceStyle(7)); got != "은(는)" {
		t.Fatalf("expected clamp to 은(는), got %q", got)
	}
	if got := pickTolerance([]string{"(이)시여"}, OptionalMorph2Morph1); got != "(이)시여" {
		t.Fatalf("expected (이)시여, got %q", got)
	}
}

func TestParseToleranceStyle(t *testing.T) {
	tests := []struct {
		example string
		style   ToleranceStyle
	}{
		{"은(는)", Morph1OptionalMorph2},
		{"(은)는", OptionalMorph1Morph2},
		{"는(은)", Morph2OptionalMorph1},
		{"(는)은", OptionalMorph2Morph1},
		{"을(를)", Morph1OptionalMorph2},
		{"(를)을", OptionalMorph2Morph1},
	}
	for _, tt := range tests {
		style, err := ParseToleranceStyle(tt.example, nil)
		if err != nil {
			t.Fatalf("ParseToleranceStyle(%q): %v", tt.example, err)
		}
		if style != tt.style {
			t.Fatalf("ParseToleranceStyle(%q) = %d, expected %d", tt.example, style, tt.style)
		}
	}
}

func TestParseToleranceStyleRejectsNonCanonical(t *testing.T) {
	// 이다 and 으로 generate a single tolerant form, 만 none, and 은 is
	// a plain morph rather than a tolerant spelling.
	for _, example := range []string{"이다", "(으)로", "만", "은"} {
		if _, err := ParseToleranceStyle(example, nil); !errors.Is(err, ErrToleranceStyle) {
			t.Fatalf("ParseToleranceStyle(%q): expected ErrToleranceStyle, got %v", example, err)
		}
	}
}
