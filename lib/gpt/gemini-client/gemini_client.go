package geminiclient

import (
	"context"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
	gptmodels "recruit-flow-backend/models/api/gpt"
)

type impl struct {
	client    *genai.Client
	modelName string
}

func NewClient(ctx context.Context, apiKey, modelName string) (*impl, error) {
	if apiKey == "" {
		return nil, errors.New("gemini api key is not set")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, errors.Wrap(err, "gemini client init failed")
	}
	return &impl{
		client:    client,
		modelName: modelName,
	}, nil
}

func (i *impl) GenerateStructured(ctx context.Context, systemPrompt, userPrompt string, opts gptmodels.GenerationOptions) (string, error) {
	model := i.client.GenerativeModel(i.modelName)
	model.SetTemperature(opts.Temperature)
	model.SetTopP(opts.TopP)
	model.SetTopK(opts.TopK)
	if opts.MaxTokens > 0 {
		model.SetMaxOutputTokens(opts.MaxTokens)
	}
	if systemPrompt != "" {
		model.SystemInstruction = &genai.Content{
			Parts: []genai.Part{genai.Text(systemPrompt)},
		}
	}

	resp, err := model.GenerateContent(ctx, genai.Text(userPrompt))
	if err != nil {
		return "", errors.Wrap(err, "gemini generation request failed")
	}
	return extractText(resp)
}

func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", errors.New("no candidates in gemini response")
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", errors.New("no content in gemini response")
	}
	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}
	if len(parts) == 0 {
		return "", errors.New("no text parts in gemini response")
	}
	return strings.Join(parts, ""), nil
}
