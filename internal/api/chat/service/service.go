package chatService

import (
	productRepository "YeloSoul/internal/api/product/repository"
	"YeloSoul/pkg/chatbot"
	"YeloSoul/pkg/gemini"
	"context"
	"sync"

	"github.com/sirupsen/logrus"
)

type ChatService interface {
	Assistant() AssistantDomain
}

type AssistantDomain interface {
	Chat(c context.Context, message string) (chatbot.Reply, error)
	ChatAI(c context.Context, message string) (chatbot.Reply, error)
}

type chatService struct {
	log               *logrus.Logger
	productRepository productRepository.Repository
	geminiClient      gemini.IGemini
	responder         chatbot.IResponder

	assistantDomain AssistantDomain
}

func (s *chatService) Assistant() AssistantDomain {
	return s.assistantDomain
}

type assistantDomainImpl struct {
	log          *logrus.Logger
	productRepo  productRepository.Repository
	geminiClient gemini.IGemini
	responder    chatbot.IResponder

	mu    sync.Mutex
	store []storedEmbedding
}

func New(log *logrus.Logger,
	productRepo productRepository.Repository,
	geminiClient gemini.IGemini,
	responder chatbot.IResponder,
) ChatService {
	return &chatService{
		log:               log,
		productRepository: productRepo,
		geminiClient:      geminiClient,
		responder:         responder,

		assistantDomain: &assistantDomainImpl{
			log:          log,
			productRepo:  productRepo,
			geminiClient: geminiClient,
			responder:    responder,
		},
	}
}
