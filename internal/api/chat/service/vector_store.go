package chatService

import (
	"YeloSoul/internal/entity"
	contextPkg "YeloSoul/pkg/context"
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	embedTimeout = 10 * time.Second
	topMatches   = 4
)

type storedEmbedding struct {
	product   entity.Product
	embedding []float32
	text      string
}

// embedText builds the text representation fed to the embedding model.
func embedText(p entity.Product) string {
	tags := strings.Join(strings.Fields(p.Name), ", ")
	return fmt.Sprintf("Product: %s\nCategory: %s\nPrice: %.2f\nRating: %.1f\nDescription: %s\nTags: %s, %s",
		p.Name, p.Category, p.Price, p.Rating, p.Description, p.Category, tags)
}

func cosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, magA, magB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		magA += float64(a[i]) * float64(a[i])
		magB += float64(b[i]) * float64(b[i])
	}

	if magA == 0 || magB == 0 {
		return 0
	}

	return dot / (math.Sqrt(magA) * math.Sqrt(magB))
}

// refreshStore rebuilds the in-memory vector store from the catalog. Products
// whose embedding call fails are skipped rather than aborting the whole load.
func (s *assistantDomainImpl) refreshStore(c context.Context, catalog []entity.Product) {
	requestID := contextPkg.GetRequestID(c)

	store := make([]storedEmbedding, 0, len(catalog))
	for _, p := range catalog {
		text := embedText(p)

		embedCtx, cancel := context.WithTimeout(c, embedTimeout)
		embedding, err := s.geminiClient.Embed(embedCtx, text)
		cancel()
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"product_id": p.ID,
				"error":      err.Error(),
			}).Warn("Skipping product embedding")
			continue
		}

		store = append(store, storedEmbedding{
			product:   p,
			embedding: embedding,
			text:      text,
		})
	}

	s.mu.Lock()
	s.store = store
	s.mu.Unlock()

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"items":      len(store),
	}).Info("Vector store refreshed")
}

// nearestProducts ranks the stored embeddings against the query embedding and
// returns the closest products.
func (s *assistantDomainImpl) nearestProducts(queryEmbedding []float32) []entity.Product {
	s.mu.Lock()
	store := s.store
	s.mu.Unlock()

	if len(store) == 0 {
		return nil
	}

	type scored struct {
		product entity.Product
		score   float64
	}

	ranked := make([]scored, 0, len(store))
	for _, item := range store {
		ranked = append(ranked, scored{
			product: item.product,
			score:   cosineSimilarity(queryEmbedding, item.embedding),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	limit := topMatches
	if len(ranked) < limit {
		limit = len(ranked)
	}

	products := make([]entity.Product, 0, limit)
	for _, item := range ranked[:limit] {
		products = append(products, item.product)
	}

	return products
}
