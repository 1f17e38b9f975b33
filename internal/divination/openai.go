package divination

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/rcliao/yijing/internal/model"
)

const systemPrompt = "你是一位精通《周易》的解卦师。请结合用户的问题与所得卦象的卦辞、象辞、含义和建议，" +
	"用简洁平实的中文给出解读与建议，不作绝对化的预言。"

// OpenAIInterpreter asks an OpenAI-compatible chat model for the reading.
type OpenAIInterpreter struct {
	client *openai.Client
	model  string
}

// NewOpenAIInterpreter creates an interpreter for the given endpoint. An
// empty baseURL uses the OpenAI default.
func NewOpenAIInterpreter(apiKey, baseURL, model string) *OpenAIInterpreter {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	return &OpenAIInterpreter{
		client: openai.NewClientWithConfig(config),
		model:  model,
	}
}

func (o *OpenAIInterpreter) Interpret(ctx context.Context, question string, h model.Hexagram) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt(question, h)},
		},
	}

	resp, err := o.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("chat completion returned no choices")
	}
	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", errors.New("chat completion returned empty content")
	}
	return content, nil
}

func userPrompt(question string, h model.Hexagram) string {
	var b strings.Builder
	fmt.Fprintf(&b, "问题：%s\n", question)
	fmt.Fprintf(&b, "卦象：%s %s卦（%s），上卦%s，下卦%s\n", h.Symbol, h.Name, h.Description, h.UpperTrigram, h.LowerTrigram)
	fmt.Fprintf(&b, "卦辞：%s\n", h.Judgment)
	fmt.Fprintf(&b, "象辞：%s\n", h.Image)
	fmt.Fprintf(&b, "含义：%s\n", h.Meaning)
	fmt.Fprintf(&b, "建议：%s\n", h.Advice)
	fmt.Fprintf(&b, "运势：%s", h.Fortune)
	return b.String()
}
