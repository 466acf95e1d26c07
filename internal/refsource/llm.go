package refsource

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/graphbio/helix/internal/core/model"
)

// LLMSummarizer composes a short description for entities whose namespace
// has no dedicated reference service, using whatever properties the result
// rows carried. Works against any OpenAI-compatible endpoint, including a
// local Ollama instance via its /v1 API.
type LLMSummarizer struct {
	client *openai.Client
	model  string
}

func NewLLMSummarizer(apiKey string, modelName string, baseURL string) *LLMSummarizer {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	return &LLMSummarizer{
		client: openai.NewClientWithConfig(config),
		model:  modelName,
	}
}

func (s *LLMSummarizer) Summarize(ctx context.Context, rec *model.EntityRecord) (*model.SummaryRecord, error) {
	known, err := json.Marshal(rec.RawProperties)
	if err != nil {
		known = []byte("{}")
	}

	prompt := fmt.Sprintf(`You are annotating a biomedical catalog.
Entity type: %s
Identifier: %s
Known properties: %s

Write one short factual paragraph describing this entity for a researcher.
Do not speculate beyond the identifier and properties given.`, rec.Type, rec.ID, known)

	req := openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	}
	resp, err := s.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to compose summary: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response choices")
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return nil, fmt.Errorf("empty summary response")
	}

	return &model.SummaryRecord{
		Description: text,
		Source:      "llm",
	}, nil
}
