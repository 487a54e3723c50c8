package chatbot

import "testing"

func TestScore(t *testing.T) {
	redNecklace := Item{
		Name:        "Red Necklace",
		Category:    "necklaces",
		Description: "a red gem",
	}

	tests := []struct {
		name   string
		item   Item
		tokens []string
		want   int
	}{
		{"name and description hit", redNecklace, []string{"red"}, 11},
		{"category hit", redNecklace, []string{"necklace"}, 15},
		{"no hit", redNecklace, []string{"bracelet"}, 0},
		{"repeated token scores twice", redNecklace, []string{"red", "red"}, 22},
		{"empty fields treated as empty strings", Item{Name: "Ring"}, []string{"ring"}, 10},
		{"no tokens", redNecklace, nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Score(tt.item, tt.tokens); got != tt.want {
				t.Errorf("Score(%v, %v) = %d, want %d", tt.item, tt.tokens, got, tt.want)
			}
			// Scoring is pure: a second call must agree.
			if again := Score(tt.item, tt.tokens); again != tt.want {
				t.Errorf("second Score call returned %d, want %d", again, tt.want)
			}
		})
	}
}

func TestRank(t *testing.T) {
	catalog := []Item{
		{ID: "1", Name: "Gold Ring", Category: "rings"},
		{ID: "2", Name: "Silver Necklace", Category: "necklaces", Description: "shiny silver chain"},
		{ID: "3", Name: "Silver Ring", Category: "rings", Description: "a silver band"},
		{ID: "4", Name: "Pearl Earrings", Category: "earrings"},
	}

	t.Run("orders by descending score", func(t *testing.T) {
		ranked := Rank(catalog, []string{"silver"}, 3)
		if len(ranked) != 2 {
			t.Fatalf("got %d results, want 2", len(ranked))
		}
		// Both score name+description hits (11) so catalog order wins.
		if ranked[0].ID != "2" || ranked[1].ID != "3" {
			t.Errorf("got order %s, %s; want 2, 3", ranked[0].ID, ranked[1].ID)
		}
	})

	t.Run("applies result limit", func(t *testing.T) {
		ranked := Rank(catalog, []string{"ring", "silver", "pearl"}, 2)
		if len(ranked) != 2 {
			t.Fatalf("got %d results, want 2", len(ranked))
		}
	})

	t.Run("zero scores dropped", func(t *testing.T) {
		if ranked := Rank(catalog, []string{"zzzzqqqq"}, 3); len(ranked) != 0 {
			t.Errorf("got %d results, want 0", len(ranked))
		}
	})

	t.Run("ties keep catalog order", func(t *testing.T) {
		ranked := Rank(catalog, []string{"rings"}, 3)
		if len(ranked) != 2 || ranked[0].ID != "1" || ranked[1].ID != "3" {
			t.Errorf("tie-break lost catalog order: %+v", ranked)
		}
	})
}
