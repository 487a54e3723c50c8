package chatService

import (
	"YeloSoul/internal/api/product"
	productRepository "YeloSoul/internal/api/product/repository"
	"YeloSoul/internal/entity"
	"YeloSoul/pkg/chatbot"
	"YeloSoul/pkg/gemini"
	"context"
	"math/rand"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

type fakeProducts struct {
	catalog []entity.Product
}

func (f *fakeProducts) CreateProduct(ctx context.Context, p entity.Product) error { return nil }
func (f *fakeProducts) GetByID(ctx context.Context, id string) (entity.Product, error) {
	for _, p := range f.catalog {
		if p.ID == id {
			return p, nil
		}
	}
	return entity.Product{}, product.ErrProductNotFound
}
func (f *fakeProducts) ListProducts(ctx context.Context, q product.ListProductsQuery) ([]entity.Product, int, error) {
	return f.catalog, len(f.catalog), nil
}
func (f *fakeProducts) ListAll(ctx context.Context) ([]entity.Product, error) {
	return f.catalog, nil
}
func (f *fakeProducts) UpdateProduct(ctx context.Context, p entity.Product) error { return nil }
func (f *fakeProducts) DeleteProduct(ctx context.Context, id string) error        { return nil }
func (f *fakeProducts) InventoryStats(ctx context.Context) (product.InventoryStatsResponse, error) {
	return product.InventoryStatsResponse{}, nil
}
func (f *fakeProducts) RecalculateRating(ctx context.Context, productID string) error { return nil }

type fakeRepository struct {
	products *fakeProducts
}

func (f *fakeRepository) NewClient(tx bool) (productRepository.Client, error) {
	return productRepository.Client{
		Products: f.products,
		Commit:   func() error { return nil },
		Rollback: func() error { return nil },
	}, nil
}

func testCatalog() []entity.Product {
	return []entity.Product{
		{ID: "p1", Name: "Gold Ring", Description: "A classic gold band", Category: "Rings", Price: 120, Image: "gold.jpg"},
		{ID: "p2", Name: "Silver Necklace", Description: "Sterling silver chain necklace", Category: "Necklaces", Price: 80, Images: []string{"silver.jpg"}},
		{ID: "p3", Name: "Pearl Earrings", Description: "Freshwater pearl studs", Category: "Earrings", Price: 45, Image: "pearl.jpg"},
	}
}

func newTestService(g gemini.IGemini) *assistantDomainImpl {
	logger := logrus.New()
	svc := New(logger, &fakeRepository{products: &fakeProducts{catalog: testCatalog()}}, g, chatbot.NewWithSource(rand.NewSource(1)))
	return svc.Assistant().(*assistantDomainImpl)
}

func TestChatProductSearch(t *testing.T) {
	s := newTestService(gemini.NewNull())

	reply, err := s.Chat(context.Background(), "show me a silver necklace")
	if err != nil {
		t.Fatalf("Chat returned error: %v", err)
	}

	if len(reply.Products) == 0 {
		t.Fatal("expected product matches for a catalog query")
	}
	if reply.Products[0].ID != "p2" {
		t.Errorf("top match = %s, want p2", reply.Products[0].ID)
	}
	if reply.Products[0].Link != "/product/p2" {
		t.Errorf("link = %q, want /product/p2", reply.Products[0].Link)
	}
	if reply.Products[0].Image != "silver.jpg" {
		t.Errorf("image = %q, want gallery fallback silver.jpg", reply.Products[0].Image)
	}
	if !strings.HasPrefix(reply.Reply, "I found some great items for you: ") {
		t.Errorf("unexpected lead-in: %q", reply.Reply)
	}
}

func TestChatStaticIntent(t *testing.T) {
	s := newTestService(gemini.NewNull())

	reply, err := s.Chat(context.Background(), "what is your return policy?")
	if err != nil {
		t.Fatalf("Chat returned error: %v", err)
	}

	if len(reply.Products) != 0 {
		t.Errorf("static intent should not attach products, got %d", len(reply.Products))
	}
	if !strings.Contains(reply.Reply, "30-day return policy") {
		t.Errorf("unexpected returns reply: %q", reply.Reply)
	}
}

func TestChatAIDisabledWithoutKey(t *testing.T) {
	s := newTestService(gemini.NewNull())

	reply, err := s.ChatAI(context.Background(), "recommend a gift")
	if err != nil {
		t.Fatalf("ChatAI returned error: %v", err)
	}

	if reply.Reply != disabledReply {
		t.Errorf("reply = %q, want the disabled-client line", reply.Reply)
	}
	if len(reply.Products) != 0 {
		t.Errorf("expected empty products, got %d", len(reply.Products))
	}
}

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b []float32
		want float64
	}{
		{"identical", []float32{1, 0}, []float32{1, 0}, 1},
		{"orthogonal", []float32{1, 0}, []float32{0, 1}, 0},
		{"opposite", []float32{1, 0}, []float32{-1, 0}, -1},
		{"mismatched length", []float32{1, 0}, []float32{1}, 0},
		{"zero vector", []float32{0, 0}, []float32{1, 0}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cosineSimilarity(tt.a, tt.b)
			if diff := got - tt.want; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("cosineSimilarity = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNearestProductsLimit(t *testing.T) {
	s := newTestService(gemini.NewNull())

	s.store = []storedEmbedding{
		{product: entity.Product{ID: "a"}, embedding: []float32{1, 0}},
		{product: entity.Product{ID: "b"}, embedding: []float32{0.9, 0.1}},
		{product: entity.Product{ID: "c"}, embedding: []float32{0, 1}},
		{product: entity.Product{ID: "d"}, embedding: []float32{0.5, 0.5}},
		{product: entity.Product{ID: "e"}, embedding: []float32{0.8, 0.2}},
	}

	got := s.nearestProducts([]float32{1, 0})
	if len(got) != topMatches {
		t.Fatalf("expected %d matches, got %d", topMatches, len(got))
	}
	if got[0].ID != "a" {
		t.Errorf("closest product = %s, want a", got[0].ID)
	}
}
