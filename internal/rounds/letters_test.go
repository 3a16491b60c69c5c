package rounds

import "testing"

func TestIsFormable(t *testing.T) {
	tests := []struct {
		name    string
		word    string
		letters []string
		want    bool
	}{
		{"exact letters", "apple", []string{"a", "p", "p", "l", "e"}, true},
		{"repeated letter short one", "apple", []string{"a", "p", "l", "e"}, false},
		{"subset", "cat", []string{"c", "a", "t", "s"}, true},
		{"missing letter", "star", []string{"c", "a", "t", "s"}, false},
		{"case insensitive word", "CATS", []string{"c", "a", "t", "s"}, true},
		{"case insensitive letters", "cats", []string{"C", "A", "T", "S"}, true},
		{"empty word", "", []string{"a", "b"}, false},
		{"empty pool", "a", nil, false},
		{"surplus letters", "tea", []string{"t", "e", "a", "m", "s"}, true},
		{"double needed double given", "sees", []string{"s", "e", "e", "s"}, true},
		{"double needed single given", "sees", []string{"s", "e", "s"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsFormable(tt.word, tt.letters); got != tt.want {
				t.Fatalf("IsFormable(%q, %v) = %v, want %v", tt.word, tt.letters, got, tt.want)
			}
		})
	}
}

func TestIsFormableDoesNotConsumePool(t *testing.T) {
	letters := []string{"c", "a", "t"}
	if !IsFormable("cat", letters) {
		t.Fatal("expected cat to be formable")
	}
	// Same pool slice again — the check must not mutate its input.
	if !IsFormable("cat", letters) {
		t.Fatal("expected cat to still be formable on second call")
	}
}
