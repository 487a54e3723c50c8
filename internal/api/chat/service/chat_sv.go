package chatService

import (
	"YeloSoul/internal/entity"
	"YeloSoul/pkg/chatbot"
	contextPkg "YeloSoul/pkg/context"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	generateTimeout = 20 * time.Second

	disabledReply = "I'm currently unable to access my brain (API Key missing). Please contact support!"
	degradedReply = "I apologize, I'm having a moment of dizziness. Could you ask that again?"
)

func makeChatItem(p entity.Product) chatbot.Item {
	return chatbot.Item{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		Price:       p.Price,
		Image:       p.Image,
		Images:      p.Images,
	}
}

func makeProductSummary(p entity.Product) chatbot.ProductSummary {
	return chatbot.ProductSummary{
		ID:    p.ID,
		Name:  p.Name,
		Price: p.Price,
		Image: p.BestImage(),
		Link:  "/product/" + p.ID,
	}
}

func (s *assistantDomainImpl) loadCatalog(c context.Context) ([]entity.Product, error) {
	repo, err := s.productRepo.NewClient(false)
	if err != nil {
		return nil, err
	}
	return repo.Products.ListAll(c)
}

func (s *assistantDomainImpl) Chat(c context.Context, message string) (chatbot.Reply, error) {
	requestID := contextPkg.GetRequestID(c)

	catalog, err := s.loadCatalog(c)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to load catalog for chat")
		return chatbot.Reply{}, err
	}

	items := make([]chatbot.Item, 0, len(catalog))
	for _, p := range catalog {
		items = append(items, makeChatItem(p))
	}

	reply := s.responder.Respond(message, items)

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"intent":     string(chatbot.DetectIntent(message)),
		"products":   len(reply.Products),
	}).Info("Chat reply composed")

	return reply, nil
}

func ragPrompt(relevant []entity.Product, userQuery string) string {
	lines := make([]string, 0, len(relevant))
	for _, p := range relevant {
		lines = append(lines, fmt.Sprintf("- %s ($%.2f): %s. Category: %s", p.Name, p.Price, p.Description, p.Category))
	}

	return fmt.Sprintf(`You remain the "YeloSoul Professional Assistant", a luxury jewelry styling expert.
Your tone is elegant, helpful, and concise.

Context (Relevant Products from our catalog):
%s

User Question: %q

Instructions:
1. Answer the user's question directly.
2. If the user asks for recommendations, use the Context provided to recommend specific items. Mention them by name and explain *why* they fit the request.
3. If context is empty, apologize politely and suggest general categories like Necklaces/Rings.
4. Keep the response under 3 sentences unless detailed styling advice is needed.
5. Do NOT mention "context" or "database". Just talk naturally.`, strings.Join(lines, "\n"), userQuery)
}

func (s *assistantDomainImpl) ChatAI(c context.Context, message string) (chatbot.Reply, error) {
	requestID := contextPkg.GetRequestID(c)

	if !s.geminiClient.Enabled() {
		return chatbot.Reply{
			Reply:    disabledReply,
			Products: []chatbot.ProductSummary{},
		}, nil
	}

	s.mu.Lock()
	empty := len(s.store) == 0
	s.mu.Unlock()

	if empty {
		catalog, err := s.loadCatalog(c)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to load catalog for vector store")
			return degraded(), nil
		}
		s.refreshStore(c, catalog)
	}

	embedCtx, cancel := context.WithTimeout(c, embedTimeout)
	queryEmbedding, err := s.geminiClient.Embed(embedCtx, message)
	cancel()
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Query embedding failed, degrading reply")
		return degraded(), nil
	}

	relevant := s.nearestProducts(queryEmbedding)

	genCtx, cancel := context.WithTimeout(c, generateTimeout)
	text, err := s.geminiClient.Generate(genCtx, ragPrompt(relevant, message))
	cancel()
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Reply generation failed, degrading reply")
		return degraded(), nil
	}

	products := make([]chatbot.ProductSummary, 0, len(relevant))
	for _, p := range relevant {
		products = append(products, makeProductSummary(p))
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"products":   len(products),
	}).Info("AI chat reply generated")

	return chatbot.Reply{
		Reply:    text,
		Products: products,
	}, nil
}

func degraded() chatbot.Reply {
	return chatbot.Reply{
		Reply:    degradedReply,
		Products: []chatbot.ProductSummary{},
	}
}
