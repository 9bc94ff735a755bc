package gpthandler

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"recruit-flow-backend/config"
	geminiclient "recruit-flow-backend/lib/gpt/gemini-client"
	yagptclient "recruit-flow-backend/lib/gpt/yagpt-client"
	gptmodels "recruit-flow-backend/models/api/gpt"
)

// Provider is the generation backend. Output is untrusted free text and may
// or may not be JSON-conformant; callers strip code fencing before parsing.
type Provider interface {
	GenerateStructured(ctx context.Context, systemPrompt, userPrompt string, opts gptmodels.GenerationOptions) (string, error)
}

var Instance Provider

func NewHandler(ctx context.Context) error {
	conf := config.Conf.AI
	switch conf.Provider {
	case "yandex":
		Instance = yagptclient.NewClient(conf.YandexGPT.IAMToken, conf.YandexGPT.CatalogID)
		return nil
	case "gemini", "":
		client, err := geminiclient.NewClient(ctx, conf.Gemini.APIKey, conf.Gemini.Model)
		if err != nil {
			return err
		}
		Instance = client
		return nil
	}
	return errors.Errorf("unknown AI provider: %v", conf.Provider)
}

// CleanJSONBlock removes a markdown code fence wrapper, if any, from a
// backend response.
func CleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}
