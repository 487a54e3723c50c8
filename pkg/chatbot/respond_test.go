package chatbot

import (
	"math/rand"
	"strings"
	"testing"
)

func testCatalog() []Item {
	return []Item{
		{ID: "p1", Name: "Gold Necklace", Category: "necklaces", Description: "an elegant gold chain", Price: 120, Image: "/uploads/gold-necklace.jpg"},
		{ID: "p2", Name: "Silver Ring", Category: "rings", Description: "a plain silver band", Price: 45, Images: []string{"/uploads/silver-ring.jpg"}},
		{ID: "p3", Name: "Pearl Earrings", Category: "earrings", Description: "freshwater pearls", Price: 80},
	}
}

func TestRespondStaticIntent(t *testing.T) {
	r := NewWithSource(rand.NewSource(42))

	reply := r.Respond("Hello", testCatalog())

	found := false
	for _, candidate := range responseTable[IntentGreeting] {
		if reply.Reply == candidate {
			found = true
		}
	}
	if !found {
		t.Errorf("greeting reply %q is not one of the canned responses", reply.Reply)
	}
	if len(reply.Products) != 0 {
		t.Errorf("static intent attached %d products, want 0", len(reply.Products))
	}
}

func TestRespondStaticIntentDeterministicWithPinnedSource(t *testing.T) {
	first := NewWithSource(rand.NewSource(7)).Respond("hi there", nil)
	second := NewWithSource(rand.NewSource(7)).Respond("hi there", nil)
	if first.Reply != second.Reply {
		t.Errorf("pinned source produced different replies: %q vs %q", first.Reply, second.Reply)
	}
}

func TestRespondProductSearch(t *testing.T) {
	r := NewWithSource(rand.NewSource(1))

	reply := r.Respond("necklace", testCatalog())

	if !strings.Contains(reply.Reply, "Gold Necklace") {
		t.Errorf("reply %q does not list the matched product", reply.Reply)
	}
	if len(reply.Products) != 1 {
		t.Fatalf("got %d products, want 1", len(reply.Products))
	}

	p := reply.Products[0]
	if p.ID != "p1" || p.Name != "Gold Necklace" || p.Price != 120 {
		t.Errorf("unexpected product summary: %+v", p)
	}
	if p.Link != "/product/p1" {
		t.Errorf("link = %q, want /product/p1", p.Link)
	}
	if p.Image != "/uploads/gold-necklace.jpg" {
		t.Errorf("image = %q, want direct image field", p.Image)
	}
}

func TestRespondFallsBackToImagesSlice(t *testing.T) {
	reply := NewWithSource(rand.NewSource(1)).Respond("silver ring", testCatalog())
	if len(reply.Products) == 0 {
		t.Fatal("expected at least one product")
	}
	if reply.Products[0].Image != "/uploads/silver-ring.jpg" {
		t.Errorf("image = %q, want first entry of images slice", reply.Products[0].Image)
	}
}

func TestRespondEmptyTokenFallback(t *testing.T) {
	reply := NewWithSource(rand.NewSource(1)).Respond("is a to", testCatalog())

	if reply.Reply != responseTable[IntentUnknown][0] {
		t.Errorf("reply = %q, want first unknown response", reply.Reply)
	}
	if len(reply.Products) != 0 {
		t.Errorf("got %d products, want 0", len(reply.Products))
	}
}

func TestRespondNoMatch(t *testing.T) {
	reply := NewWithSource(rand.NewSource(1)).Respond("zzzzqqqq", testCatalog())

	if reply.Reply != noMatchReply {
		t.Errorf("reply = %q, want the fixed no-match line", reply.Reply)
	}
	if len(reply.Products) != 0 {
		t.Errorf("got %d products, want 0", len(reply.Products))
	}
}

func TestRespondCapsResultsAtThree(t *testing.T) {
	catalog := []Item{
		{ID: "a", Name: "Gold Ring"},
		{ID: "b", Name: "Gold Necklace"},
		{ID: "c", Name: "Gold Bracelet"},
		{ID: "d", Name: "Gold Earrings"},
	}

	reply := NewWithSource(rand.NewSource(1)).Respond("gold", catalog)
	if len(reply.Products) != 3 {
		t.Errorf("got %d products, want 3", len(reply.Products))
	}
}
