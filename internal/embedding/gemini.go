// Package embedding provides the sentence encoder backing the semantic
// scoring path.
package embedding

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

const defaultModel = "gemini-embedding-001"

// Provider encodes text units with the Gemini embedding API. The underlying
// client is created on the first Encode call and cached for the process
// lifetime; creation failures are returned to the caller on every call and
// never recovered here.
type Provider struct {
	apiKey    string
	modelName string
	logger    *zap.Logger

	once    sync.Once
	client  *genai.Client
	initErr error
}

func NewProvider(apiKey, model string, logger *zap.Logger) *Provider {
	if model = strings.TrimSpace(model); model == "" {
		model = defaultModel
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Provider{
		apiKey:    strings.TrimSpace(apiKey),
		modelName: model,
		logger:    logger,
	}
}

func (p *Provider) init(ctx context.Context) error {
	p.once.Do(func() {
		if p.apiKey == "" {
			p.initErr = errors.New("gemini api key is required")
			return
		}

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  p.apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			p.initErr = fmt.Errorf("create genai client: %w", err)
			return
		}

		p.client = client
		p.logger.Debug("embedding client initialized", zap.String("model", p.modelName))
	})

	return p.initErr
}

// Encode returns one embedding vector per unit, in input order. All vectors
// share the dimensionality fixed by the model.
func (p *Provider) Encode(ctx context.Context, units []string) ([][]float64, error) {
	if len(units) == 0 {
		return nil, errors.New("no units to encode")
	}

	if err := p.init(ctx); err != nil {
		return nil, err
	}

	contents := make([]*genai.Content, 0, len(units))
	for _, unit := range units {
		contents = append(contents, genai.NewContentFromText(unit, genai.RoleUser))
	}

	resp, err := p.client.Models.EmbedContent(ctx, p.modelName, contents, nil)
	if err != nil {
		return nil, fmt.Errorf("embed content: %w", err)
	}

	if len(resp.Embeddings) != len(units) {
		return nil, fmt.Errorf("embedding api returned %d vectors for %d units", len(resp.Embeddings), len(units))
	}

	vectors := make([][]float64, 0, len(resp.Embeddings))
	for _, emb := range resp.Embeddings {
		if emb == nil || len(emb.Values) == 0 {
			return nil, errors.New("embedding api returned an empty vector")
		}

		vector := make([]float64, len(emb.Values))
		for i, v := range emb.Values {
			vector[i] = float64(v)
		}
		vectors = append(vectors, vector)
	}

	return vectors, nil
}

func (p *Provider) Model() string {
	if p == nil {
		return ""
	}
	return p.modelName
}
