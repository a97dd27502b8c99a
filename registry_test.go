package josa

import "testing"

func TestGetByAnySpelling(t *testing.T) {
	if Get("를") != eul || Get("을") != eul || Get("을(를)") != eul {
		t.Fatalf("expected every spelling of 을(를) to resolve to the same particle")
	}
	if Get("과") != gwa || Get("와는") != gwa {
		t.Fatalf("expected 과 spellings to resolve to the same particle")
	}
}

func TestGetUnrecognizedFormReturnsDefault(t *testing.T) {
	// 이다 and its conjugations are not in the catalog; they resolve
	// to the default copula particle.
	for _, form := range []string{"이다", "이었다", "입니다", "지만"} {
		if Get(form) != Ida {
			t.Fatalf("expected Get(%q) to return the default particle", form)
		}
	}
}

func TestPostfix(t *testing.T) {
	tests := []struct {
		word string
		form string
		want string
	}{
		// Simple rule.
		{"나오", "은", "나오는"},
		{"모리안", "은", "모리안은"},
		// Combined suffixes.
		{"이 방법", "만으로는", "이 방법만으로는"},
		{"나", "조차도", "나조차도"},
		{"그 친구", "과는", "그 친구와는"},
		{"그것", "와는", "그것과는"},
		{"사건", "과(와)는", "사건과는"},
		{"그 친구", "관", "그 친구완"},
		// Undeterminable codas.
		{"", "를", "을(를)"},
		{"ㅋㅋㅋ", "를", "ㅋㅋㅋ을(를)"},
		// Insignificant trailing material.
		{"나오(Lv.25)", "으로", "나오(Lv.25)로"},
		{"나오 (Lv.25)", "을", "나오 (Lv.25)를"},
		{"나(?)오", "으로", "나(?)오로"},
		{"헬로월드!", "으로", "헬로월드!로"},
		{"?_?", "으로", "?_?(으)로"},
		{"임창정,,,", "가", "임창정,,,이"},
		{"《듀랑고》", "을", "《듀랑고》를"},
		{"불완전괄호)", "은", "불완전괄호)는"},
		{"^_^", "이었다.", "^_^(이)었다."},
		{"웃는얼굴^_^", "이었다.", "웃는얼굴^_^이었다."},
		{"폭탄(가짜)...", "이었다.", "폭탄(가짜)...이었다."},
		{"16(7)?!", "으로", "16(7)?!으로"},
		{"7(16)?!", "으로", "7(16)?!로"},
		{"(1, 2)", "를", "(1, 2)를"},
		{"(2, 3)", "를", "(2, 3)을"},
		// Vocative particles.
		{"친구", "야", "친구야"},
		{"사랑", "야", "사랑아"},
		{"사랑", "아", "사랑아"},
		{"친구", "여", "친구여"},
		{"사랑", "여", "사랑이여"},
		{"하늘", "이시여", "하늘이시여"},
		{"바다", "이시여", "바다시여"},
		// Invariant particles.
		{"나오", "도", "나오도"},
		{"모리안", "도", "모리안도"},
		{"판교", "에서", "판교에서"},
		{"판교", "에서는", "판교에서는"},
		{"선생님", "께서도", "선생님께서도"},
		{"나오", "의", "나오의"},
		{"모리안", "만", "모리안만"},
		{"키홀", "하고", "키홀하고"},
		{"콩", "만큼", "콩만큼"},
		{"콩", "마냥", "콩마냥"},
		{"콩", "처럼", "콩처럼"},
		// Every tolerant spelling resolves once the coda is known.
		{"나오", "은(는)", "나오는"},
		{"나오", "(은)는", "나오는"},
		{"나오", "는(은)", "나오는"},
		{"나오", "(는)은", "나오는"},
		{"나오", "은", "나오는"},
		{"나오", "는", "나오는"},
		// Trailing decimals.
		{"레벨30", "이", "레벨30이"},
		{"레벨34", "이", "레벨34가"},
		{"레벨7", "으로", "레벨7로"},
		{"레벨42", "으로", "레벨42로"},
		{"레벨100", "으로", "레벨100으로"},
	}
	for _, tt := range tests {
		if got := Postfix(tt.word, tt.form); got != tt.want {
			t.Fatalf("Postfix(%q, %q) = %q, expected %q", tt.word, tt.form, got, tt.want)
		}
	}
}

func TestPostfixIda(t *testing.T) {
	tests := []struct {
		word string
		form string
		want string
	}{
		// Inject 이 or not.
		{"나오", "이다", "나오다"},
		{"키홀", "이다", "키홀이다"},
		// Squeeze with the following vowel as /j/.
		{"나오", "이에요", "나오예요"},
		{"키홀", "이에요", "키홀이에요"},
		// No allomorphs for 이-initial suffixes.
		{"나오", "입니다", "나오입니다"},
		{"키홀", "입니다", "키홀입니다"},
		// Give up selecting an allomorph.
		{"God", "이다", "God(이)다"},
		{"God", "이에요", "God(이)에요"},
		{"God", "입니다", "God입니다"},
		{"God", "였습니다", "God(이)었습니다"},
		// Conjugations.
		{"키홀", "였습니다", "키홀이었습니다"},
		{"나오", "였습니다", "나오였습니다"},
		{"나오", "이었다", "나오였다"},
		{"나오", "이었지만", "나오였지만"},
		{"나오", "이지만", "나오지만"},
		{"키홀", "이지만", "키홀이지만"},
		{"나오", "지만", "나오지만"},
		{"키홀", "지만", "키홀이지만"},
		{"나오", "다", "나오다"},
		{"키홀", "다", "키홀이다"},
		{"나오", "고", "나오고"},
		{"키홀", "고", "키홀이고"},
		{"모리안", "고", "모리안이고"},
		{"나오", "여서", "나오여서"},
		{"키홀", "여서", "키홀이어서"},
		{"나오", "이어서", "나오여서"},
		{"키홀", "라고라", "키홀이라고라"},
		{"키홀", "든지", "키홀이든지"},
		{"키홀", "던가", "키홀이던가"},
		{"키홀", "여도", "키홀이어도"},
		{"키홀", "야말로", "키홀이야말로"},
		{"키홀", "인양", "키홀인양"},
		{"나오", "인양", "나오인양"},
	}
	for _, tt := range tests {
		if got := Postfix(tt.word, tt.form); got != tt.want {
			t.Fatalf("Postfix(%q, %q) = %q, expected %q", tt.word, tt.form, got, tt.want)
		}
	}
}

// Conjunctive particles from I Gyu-ho, Classification and List of
// Conjunctive Particles (2006), p181-182 and p188-189.
func TestPostfixConjunctiveParticles(t *testing.T) {
	tests := []struct {
		form       string
		afterNam   string // 남 ends in a consonant
		afterNa    string // 나 ends in a vowel
	}{
		{"의", "남의", "나의"},
		{"과", "남과", "나와"},
		{"와", "남과", "나와"},
		{"하고", "남하고", "나하고"},
		{"이랑", "남이랑", "나랑"},
		{"이니", "남이니", "나니"},
		{"이다", "남이다", "나다"},
		{"이라든가", "남이라든가", "나라든가"},
		{"이라든지", "남이라든지", "나라든지"},
		{"이며", "남이며", "나며"},
		{"이야", "남이야", "나야"},
		{"이요", "남이요", "나요"},
		{"이랴", "남이랴", "나랴"},
		{"에", "남에", "나에"},
		{"하며", "남하며", "나하며"},
		{"커녕", "남커녕", "나커녕"},
		{"은커녕", "남은커녕", "나는커녕"},
		{"이고", "남이고", "나고"},
		{"이나", "남이나", "나나"},
		{"에다", "남에다", "나에다"},
		{"에다가", "남에다가", "나에다가"},
		{"이란", "남이란", "나란"},
		{"이면", "남이면", "나면"},
		{"이거나", "남이거나", "나거나"},
		{"이건", "남이건", "나건"},
		{"이든", "남이든", "나든"},
		{"이든가", "남이든가", "나든가"},
		{"이든지", "남이든지", "나든지"},
		{"인가", "남인가", "나인가"},
		{"인지", "남인지", "나인지"},
		{"인", "남인", "나인"},
		{"는", "남은", "나는"},
		{"이라는", "남이라는", "나라는"},
		{"이네", "남이네", "나네"},
		{"도", "남도", "나도"},
		{"이면서", "남이면서", "나면서"},
		{"이자", "남이자", "나자"},
		{"하고도", "남하고도", "나하고도"},
		{"이냐", "남이냐", "나냐"},
	}
	for _, tt := range tests {
		if got := Postfix("남", tt.form); got != tt.afterNam {
			t.Fatalf("Postfix(남, %q) = %q, expected %q", tt.form, got, tt.afterNam)
		}
		if got := Postfix("나", tt.form); got != tt.afterNa {
			t.Fatalf("Postfix(나, %q) = %q, expected %q", tt.form, got, tt.afterNa)
		}
	}
}

func TestCustomRegistry(t *testing.T) {
	rang := NewParticle("이랑", "랑", false)
	registry := NewRegistry(Ida, []*Particle{rang})
	if registry.Get("이랑") != rang {
		t.Fatalf("expected the custom particle to own its form")
	}
	if got := registry.Postfix("친구", "랑"); got != "친구랑" {
		t.Fatalf("expected 친구랑, got %q", got)
	}
	if got := registry.Postfix("남", "랑"); got != "남이랑" {
		t.Fatalf("expected 남이랑, got %q", got)
	}
}
