package intent

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"frank-api/pkg/llm"
)

// Sampling parameters for the classification call. Output is a small JSON
// object, so the completion is capped low.
const (
	classifyMaxTokens   = 200
	classifyTemperature = 0.7
	classifyTopP        = 0.9
)

// Classifier turns free-form user text into a TradeIntent via an LLM call.
type Classifier struct {
	client llm.LLMClient
}

// NewClassifier constructs a Classifier on top of an LLM client.
func NewClassifier(client llm.LLMClient) *Classifier {
	return &Classifier{client: client}
}

// Classify sends the user prompt to the model and parses the completion.
// It never returns an error: transport failures and unparseable output both
// degrade to the unknown intent, which the caller renders as "I don't
// understand".
func (c *Classifier) Classify(ctx context.Context, userPrompt string) *TradeIntent {
	temperature := float64(classifyTemperature)
	topP := float64(classifyTopP)
	maxTokens := classifyMaxTokens

	req := &llm.ChatRequest{
		Messages: []llm.Message{
			{Role: "user", Content: BuildClassifyPrompt(userPrompt)},
		},
		Temperature: &temperature,
		TopP:        &topP,
		MaxTokens:   &maxTokens,
	}

	resp, err := c.client.Chat(ctx, req)
	if err != nil {
		logx.WithContext(ctx).Errorf("intent: classification call failed: %v", err)
		return Unknown()
	}

	text := resp.Text()
	logx.WithContext(ctx).Debugf("intent: model output: %s", text)
	return Parse(text)
}
