package chatbot

import (
	"sort"
	"strings"
)

// Field weights for the relevance score. A token may hit several fields at
// once and every hit is added, uncapped.
const (
	nameWeight        = 10
	categoryWeight    = 5
	descriptionWeight = 1
)

// Item is the read-only catalog view the scorer works on. It is deliberately
// decoupled from the storage entity so the package stays free of I/O.
type Item struct {
	ID          string
	Name        string
	Description string
	Category    string
	Price       float64
	Image       string
	Images      []string
}

// Score computes the additive keyword relevance of an item against the query
// tokens. Pure: the same inputs always produce the same score.
func Score(item Item, tokens []string) int {
	nameLower := strings.ToLower(item.Name)
	categoryLower := strings.ToLower(item.Category)
	descLower := strings.ToLower(item.Description)

	score := 0
	for _, token := range tokens {
		if strings.Contains(nameLower, token) {
			score += nameWeight
		}
		if strings.Contains(categoryLower, token) {
			score += categoryWeight
		}
		if strings.Contains(descLower, token) {
			score += descriptionWeight
		}
	}

	return score
}

// Rank scores the whole catalog, drops items that matched nothing and
// returns up to limit items by descending score. Ties keep the original
// catalog order (stable sort).
func Rank(catalog []Item, tokens []string, limit int) []Item {
	type scored struct {
		item  Item
		score int
	}

	candidates := make([]scored, 0, len(catalog))
	for _, item := range catalog {
		if s := Score(item, tokens); s > 0 {
			candidates = append(candidates, scored{item: item, score: s})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	ranked := make([]Item, 0, len(candidates))
	for _, c := range candidates {
		ranked = append(ranked, c.item)
	}

	return ranked
}
