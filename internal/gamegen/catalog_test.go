package gamegen

import "testing"

func TestGamesForCategory(t *testing.T) {
	tests := []struct {
		category string
		want     []string
	}{
		{
			category: "Science",
			want:     []string{GamePersonalizedPractice, GameFormulaScramble, GameWordGrid},
		},
		{
			category: "History & Social Science",
			want:     []string{GamePersonalizedPractice, GameTimelineTeaser, GameWordGrid},
		},
		{
			category: "Computer Science & Coding",
			want:     []string{GamePersonalizedPractice, GameCodeCompletion, GameWordGrid},
		},
		{
			category: "General & Other",
			want:     []string{GamePersonalizedPractice, GameWordGrid},
		},
	}

	for _, tt := range tests {
		games := GamesForCategory(tt.category)
		var names []string
		for _, g := range games {
			names = append(names, g.Name)
		}
		if len(names) != len(tt.want) {
			t.Errorf("%s: games = %v, want %v", tt.category, names, tt.want)
			continue
		}
		for i := range names {
			if names[i] != tt.want[i] {
				t.Errorf("%s: games = %v, want %v", tt.category, names, tt.want)
				break
			}
		}
	}
}

func TestGameByName(t *testing.T) {
	g := GameByName(GameWordGrid)
	if g == nil {
		t.Fatal("expected catalog entry for word grid")
	}
	if !g.Pool {
		t.Error("word grid must be a pool game")
	}
	if GameByName("Nonexistent") != nil {
		t.Error("expected nil for unknown game")
	}
}

func TestDifficultyValid(t *testing.T) {
	for _, d := range []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard} {
		if !d.Valid() {
			t.Errorf("%s should be valid", d)
		}
	}
	if Difficulty("extreme").Valid() {
		t.Error("unknown difficulty should be invalid")
	}
}
