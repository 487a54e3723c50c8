package gemini

import (
	"context"
	"errors"
	"os"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

var ErrNotConfigured = errors.New("gemini API key is not configured")

// IGemini is the capability surface the chat assistant depends on. The null
// client stands in when no API key is configured so degraded-mode behavior
// stays explicit instead of hiding behind init failures.
type IGemini interface {
	Enabled() bool
	Embed(ctx context.Context, text string) ([]float32, error)
	Generate(ctx context.Context, prompt string) (string, error)
}

type geminiClient struct {
	client         *genai.Client
	modelName      string
	embeddingModel string
}

// NewFromEnv returns a real client when GEMINI_API_KEY is set and the null
// client otherwise.
func NewFromEnv() (IGemini, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return NewNull(), nil
	}

	modelName := os.Getenv("GEMINI_MODEL_NAME")
	if modelName == "" {
		modelName = "gemini-pro"
	}

	embeddingModel := os.Getenv("GEMINI_EMBEDDING_MODEL")
	if embeddingModel == "" {
		embeddingModel = "embedding-001"
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}

	return &geminiClient{
		client:         client,
		modelName:      modelName,
		embeddingModel: embeddingModel,
	}, nil
}

func (g *geminiClient) Enabled() bool {
	return true
}

func (g *geminiClient) Embed(ctx context.Context, text string) ([]float32, error) {
	em := g.client.EmbeddingModel(g.embeddingModel)

	res, err := em.EmbedContent(ctx, genai.Text(text))
	if err != nil {
		return nil, err
	}

	if res.Embedding == nil || len(res.Embedding.Values) == 0 {
		return nil, errors.New("empty embedding from Gemini API")
	}

	return res.Embedding.Values, nil
}

func (g *geminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	model := g.client.GenerativeModel(g.modelName)

	res, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}

	if len(res.Candidates) == 0 || res.Candidates[0].Content == nil || len(res.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("no response from Gemini API")
	}

	text, ok := res.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return "", errors.New("unexpected response format from Gemini API")
	}

	return string(text), nil
}

func (g *geminiClient) Close() {
	if g.client != nil {
		g.client.Close()
	}
}

type nullClient struct{}

// NewNull returns a client whose every call reports the missing
// configuration. Callers translate that into their degraded replies.
func NewNull() IGemini {
	return &nullClient{}
}

func (n *nullClient) Enabled() bool {
	return false
}

func (n *nullClient) Embed(ctx context.Context, text string) ([]float32, error) {
	return nil, ErrNotConfigured
}

func (n *nullClient) Generate(ctx context.Context, prompt string) (string, error) {
	return "", ErrNotConfigured
}
