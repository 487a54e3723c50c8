package chatbot

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

const (
	maxResults   = 3
	foundLeadIn  = "I found some great items for you: %s."
	noMatchReply = "I couldn't find any products matching that description. Could you be more specific?"
	linkPrefix   = "/product/"
)

// responseTable holds the canned replies per static intent. Every intent
// except product_search has at least one entry; the first unknown entry
// doubles as the empty-token fallback.
var responseTable = map[Intent][]string{
	IntentGreeting: {
		"Hello! How can I help you find the perfect style today?",
		"Hi there! Looking for something specific?",
		"Welcome to YeloSoul! I'm here to help you shop.",
	},
	IntentReturns: {
		"We have a 30-day return policy. If you're not satisfied, you can return items in their original condition for a full refund.",
	},
	IntentShipping: {
		"Shipping usually takes 3-5 business days. We offer free shipping on orders over $50!",
	},
	IntentHelp: {
		"I can help you find products, answer questions about shipping, or check our return policy. Just ask!",
	},
	IntentUnknown: {
		"I'm not sure I understand. Try asking about a product (e.g., 'red shoes') or our policies.",
		"Could you rephrase that? I'm great at finding products!",
		"I didn't catch that. Do you want to see our latest collection?",
	},
}

type ProductSummary struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Image string  `json:"image"`
	Link  string  `json:"link"`
}

type Reply struct {
	Reply    string           `json:"reply"`
	Products []ProductSummary `json:"products"`
}

type IResponder interface {
	Respond(message string, catalog []Item) Reply
}

type responder struct {
	rng *rand.Rand
}

func New() IResponder {
	return &responder{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// NewWithSource pins the random source so reply selection can be made
// deterministic in tests.
func NewWithSource(src rand.Source) IResponder {
	return &responder{
		rng: rand.New(src),
	}
}

// Respond turns a classified message into a reply payload. Static intents
// get a canned line picked uniformly at random; product searches are
// tokenized, scored against the catalog and answered with the top matches.
func (r *responder) Respond(message string, catalog []Item) Reply {
	cleanMessage := strings.TrimSpace(message)
	intent := DetectIntent(cleanMessage)

	if intent != IntentProductSearch {
		candidates := responseTable[intent]
		return Reply{
			Reply:    candidates[r.rng.Intn(len(candidates))],
			Products: []ProductSummary{},
		}
	}

	tokens := Tokenize(cleanMessage)
	if len(tokens) == 0 {
		return Reply{
			Reply:    responseTable[IntentUnknown][0],
			Products: []ProductSummary{},
		}
	}

	ranked := Rank(catalog, tokens, maxResults)
	if len(ranked) == 0 {
		return Reply{
			Reply:    noMatchReply,
			Products: []ProductSummary{},
		}
	}

	names := make([]string, 0, len(ranked))
	summaries := make([]ProductSummary, 0, len(ranked))
	for _, item := range ranked {
		names = append(names, item.Name)
		summaries = append(summaries, ProductSummary{
			ID:    item.ID,
			Name:  item.Name,
			Price: item.Price,
			Image: bestImage(item),
			Link:  linkPrefix + item.ID,
		})
	}

	return Reply{
		Reply:    fmt.Sprintf(foundLeadIn, strings.Join(names, ", ")),
		Products: summaries,
	}
}

func bestImage(item Item) string {
	if item.Image != "" {
		return item.Image
	}
	if len(item.Images) > 0 {
		return item.Images[0]
	}
	return ""
}
