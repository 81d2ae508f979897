package chat

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

const defaultChatModel = "gemini-2.0-flash-lite"

// Assistant explains validation issues to candidates using the knowledge base
// and a Gemini chat model. The pending issues are passed per request; the
// assistant keeps no conversational state of its own.
type Assistant struct {
	kb     []KBEntry
	model  string
	logger *zap.Logger
}

func NewAssistant(kb []KBEntry, model string, logger *zap.Logger) *Assistant {
	if strings.TrimSpace(model) == "" {
		model = defaultChatModel
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Assistant{kb: kb, model: model, logger: logger}
}

// Respond generates an explanation for the given issue codes. With
// useTemplate set, the static message is returned without calling the model.
func (a *Assistant) Respond(ctx context.Context, issueCodes []string, useTemplate bool) (string, error) {
	entries := EntriesForIssues(a.kb, issueCodes)

	if useTemplate {
		return TemplateMessage(entries), nil
	}

	prompt := BuildPrompt(entries)
	a.logger.Debug("chat prompt built",
		zap.Int("kb_entries", len(entries)),
		zap.Strings("issue_codes", issueCodes))

	apiKey := os.Getenv("GEMINI_API_KEY")
	if strings.TrimSpace(apiKey) == "" {
		return "", errors.New("missing GEMINI_API_KEY")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to init Gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(a.model)
	model.SetTemperature(0.4)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text("You are a helpful HR assistant helping users with onboarding issues.")},
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("chat generation failed: %w", err)
	}
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0] == nil || resp.Candidates[0].Content == nil {
		return "", errors.New("empty response from Gemini")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			sb.WriteString(string(t))
		}
	}
	reply := strings.TrimSpace(sb.String())
	if reply == "" {
		return "", errors.New("no text in Gemini response")
	}
	return reply, nil
}
