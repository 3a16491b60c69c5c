package gamegen

import (
	"reflect"
	"testing"

	"github.com/adwitiya/lexio/internal/rounds"
)

func TestRepairPoolDropsUnformableWords(t *testing.T) {
	p := &rounds.WordPool{
		Letters:   []string{"c", "a", "t", "s"},
		MainWords: []string{"cats", "cat", "star"},
	}
	RepairPool(p)

	// "star" needs an 'r' the pool does not contain.
	want := []string{"cats", "cat"}
	if !reflect.DeepEqual(p.MainWords, want) {
		t.Errorf("main words = %v, want %v", p.MainWords, want)
	}
}

func TestRepairPoolRespectsLetterRepeats(t *testing.T) {
	p := &rounds.WordPool{
		Letters:   []string{"a", "p", "l", "e"},
		MainWords: []string{"apple", "pale"},
	}
	RepairPool(p)

	// "apple" needs two p's; the pool has one.
	want := []string{"pale"}
	if !reflect.DeepEqual(p.MainWords, want) {
		t.Errorf("main words = %v, want %v", p.MainWords, want)
	}
}

func TestRepairPoolDeduplicatesCaseInsensitively(t *testing.T) {
	p := &rounds.WordPool{
		Letters:    []string{"c", "a", "t", "s"},
		MainWords:  []string{"cat", "Cat", "CAT"},
		BonusWords: []string{"act", "Act", "cats"},
	}
	RepairPool(p)

	if want := []string{"cat"}; !reflect.DeepEqual(p.MainWords, want) {
		t.Errorf("main words = %v, want %v", p.MainWords, want)
	}
	// "Act" duplicates "act"; "cats" stays because it is not a main word.
	if want := []string{"act", "cats"}; !reflect.DeepEqual(p.BonusWords, want) {
		t.Errorf("bonus words = %v, want %v", p.BonusWords, want)
	}
}

func TestRepairPoolRemovesBonusOverlap(t *testing.T) {
	p := &rounds.WordPool{
		Letters:    []string{"c", "a", "t", "s"},
		MainWords:  []string{"cats", "cat"},
		BonusWords: []string{"CATS", "act", "sat"},
	}
	RepairPool(p)

	if want := []string{"act", "sat"}; !reflect.DeepEqual(p.BonusWords, want) {
		t.Errorf("bonus words = %v, want %v", p.BonusWords, want)
	}
}

func TestRepairPoolIdempotent(t *testing.T) {
	p := &rounds.WordPool{
		Letters:    []string{"s", "t", "a", "r", "e"},
		MainWords:  []string{"star", "rate", "Rate", "stare", "bogus"},
		BonusWords: []string{"tear", "STAR", "ears", "tear"},
	}
	RepairPool(p)

	first := rounds.WordPool{
		Letters:    append([]string(nil), p.Letters...),
		MainWords:  append([]string(nil), p.MainWords...),
		BonusWords: append([]string(nil), p.BonusWords...),
	}
	RepairPool(p)

	if !reflect.DeepEqual(p.MainWords, first.MainWords) {
		t.Errorf("second repair changed main words: %v vs %v", p.MainWords, first.MainWords)
	}
	if !reflect.DeepEqual(p.BonusWords, first.BonusWords) {
		t.Errorf("second repair changed bonus words: %v vs %v", p.BonusWords, first.BonusWords)
	}
}
