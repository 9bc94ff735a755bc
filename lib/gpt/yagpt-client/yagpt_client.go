package yagptclient

import (
	"context"

	"github.com/pkg/errors"
	yandexgptclient "github.com/sheeiavellie/go-yandexgpt"
	gptmodels "recruit-flow-backend/models/api/gpt"
)

type impl struct {
	client    *yandexgptclient.YandexGPTClient
	catalogID string
}

func NewClient(token, catalog string) *impl {
	return &impl{
		client:    yandexgptclient.NewYandexGPTClientWithIAMToken(token),
		catalogID: catalog,
	}
}

// GenerateStructured sends system and user messages to YandexGPT. TopP and
// TopK are not supported by the completion API and are ignored.
func (i *impl) GenerateStructured(ctx context.Context, systemPrompt, userPrompt string, opts gptmodels.GenerationOptions) (string, error) {
	maxTokens := int(opts.MaxTokens)
	if maxTokens == 0 {
		maxTokens = 2000
	}
	request := yandexgptclient.YandexGPTRequest{
		ModelURI: yandexgptclient.MakeModelURI(i.catalogID, yandexgptclient.YandexGPTModelLite),
		CompletionOptions: yandexgptclient.YandexGPTCompletionOptions{
			Stream:      false,
			Temperature: opts.Temperature,
			MaxTokens:   maxTokens,
		},
		Messages: []yandexgptclient.YandexGPTMessage{
			{
				Role: yandexgptclient.YandexGPTMessageRoleSystem,
				Text: systemPrompt,
			},
			{
				Role: yandexgptclient.YandexGPTMessageRoleUser,
				Text: userPrompt,
			},
		},
	}

	response, err := i.client.CreateRequest(ctx, request)
	if err != nil {
		return "", errors.Wrap(err, "yandexgpt generation request failed")
	}
	if len(response.Result.Alternatives) == 0 {
		return "", errors.New("no alternatives in yandexgpt response")
	}
	return response.Result.Alternatives[0].Message.Text, nil
}
