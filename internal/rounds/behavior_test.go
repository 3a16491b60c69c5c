package rounds

import (
	"strings"
	"testing"
)

func TestCheckAnswerWordKinds(t *testing.T) {
	r := Round{Kind: KindTraceOrType, Word: "Photosynthesis"}

	if !CheckAnswer(&r, "  photosynthesis ") {
		t.Fatal("expected trimmed, case-folded match to be correct")
	}
	if CheckAnswer(&r, "photosynthesi") {
		t.Fatal("expected near-miss to be incorrect")
	}
}

func TestCheckAnswerTranslation(t *testing.T) {
	r := Round{Kind: KindWordTranslationMatch, Word: "gato", Translation: "Cat"}

	if !CheckAnswer(&r, "cat") {
		t.Fatal("expected translation match")
	}
	if CheckAnswer(&r, "gato") {
		t.Fatal("the source word is not the answer")
	}
}

func TestCheckAnswerTrueFalse(t *testing.T) {
	r := Round{Kind: KindTrueFalseChallenge, Statement: "s", IsCorrect: false}

	if !CheckAnswer(&r, "false") {
		t.Fatal(`expected "false" to be correct`)
	}
	if CheckAnswer(&r, "true") {
		t.Fatal(`expected "true" to be incorrect`)
	}
	if CheckAnswer(&r, "maybe") {
		t.Fatal("unparseable submissions are incorrect")
	}
}

func TestCheckAnswerFormulaIgnoresWhitespace(t *testing.T) {
	r := Round{Kind: KindFormulaScramble, Formula: "E = m c^2"}

	if !CheckAnswer(&r, "E=mc^2") {
		t.Fatal("expected whitespace-insensitive match")
	}
	if !CheckAnswer(&r, "e = M C^2") {
		t.Fatal("expected case-insensitive match")
	}
	if CheckAnswer(&r, "m=Ec^2") {
		t.Fatal("expected wrong assembly to be incorrect")
	}
}

func TestCheckAnswerTimelineOrder(t *testing.T) {
	r := Round{
		Kind:         KindTimelineTeaser,
		CorrectOrder: []string{"Stone Age", "Roman Empire", "World War II"},
	}

	good := strings.Join([]string{"stone age", "Roman Empire", " world war ii "}, OrderSeparator)
	if !CheckAnswer(&r, good) {
		t.Fatal("expected element-for-element match")
	}

	bad := strings.Join([]string{"Roman Empire", "Stone Age", "World War II"}, OrderSeparator)
	if CheckAnswer(&r, bad) {
		t.Fatal("expected reordered submission to be incorrect")
	}

	short := strings.Join([]string{"Stone Age", "Roman Empire"}, OrderSeparator)
	if CheckAnswer(&r, short) {
		t.Fatal("expected incomplete submission to be incorrect")
	}
}

func TestCanonicalAnswer(t *testing.T) {
	tf := Round{Kind: KindTrueFalseChallenge, IsCorrect: true}
	if got := CanonicalAnswer(&tf); got != "true" {
		t.Fatalf("canonical = %q, want %q", got, "true")
	}

	tl := Round{Kind: KindTimelineTeaser, CorrectOrder: []string{"a", "b"}}
	if got := CanonicalAnswer(&tl); got != "a -> b" {
		t.Fatalf("canonical = %q, want %q", got, "a -> b")
	}
}

func TestBehaviorForImageFlag(t *testing.T) {
	for _, k := range AllKinds() {
		b, ok := BehaviorFor(k)
		if !ok {
			t.Fatalf("no behavior registered for %s", k)
		}
		wantImage := k == KindWordImageMatch
		if b.NeedsImage != wantImage {
			t.Fatalf("kind %s: NeedsImage = %v, want %v", k, b.NeedsImage, wantImage)
		}
	}
}
