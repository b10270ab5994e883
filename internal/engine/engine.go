// Package engine wraps the Gemini client behind the small Narrator surface
// the game core talks to. The model holds conversational memory: one chat
// session per game run, created fresh on every restart.
package engine

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

//go:embed prompts/system_instruction.txt
var systemInstruction string

// Narrator is one conversation with the ship computer. Implementations must
// keep their own history so each Send sees the whole exchange.
type Narrator interface {
	Send(ctx context.Context, text string) (string, error)
}

// Engine owns the Gemini client and hands out chat sessions.
type Engine struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewEngine(ctx context.Context, apiKey, modelName string) (*Engine, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}

	model := client.GenerativeModel(modelName)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemInstruction)},
	}

	return &Engine{client: client, model: model}, nil
}

func (e *Engine) Close() {
	e.client.Close()
}

// NewSession starts a fresh conversation. The previous session, if any, is
// simply abandoned; Gemini keeps no server-side state beyond the chat we
// stop feeding it.
func (e *Engine) NewSession() Narrator {
	return &chatSession{chat: e.model.StartChat()}
}

type chatSession struct {
	chat *genai.ChatSession
}

func (s *chatSession) Send(ctx context.Context, text string) (string, error) {
	resp, err := s.chat.SendMessage(ctx, genai.Text(text))
	if err != nil {
		return "", err
	}
	return responseText(resp)
}

func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content returned from Gemini")
	}
	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return "", fmt.Errorf("unexpected response type from Gemini")
	}
	return string(text), nil
}
