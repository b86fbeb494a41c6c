// Package openaiapi provides a describe.Generator implementation backed by
// the OpenAI chat completion API.
package openaiapi

import (
	"context"
	"cordely/pkg/describe"
	"cordely/pkg/serrors"
	"errors"
	"fmt"
	"net/http"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// maxDescriptionLength caps generated copy so it fits the menu card. Overlong
// output is trimmed with an ellipsis.
const maxDescriptionLength = 120

// temperature leaves the model some room to vary the copy between requests.
const temperature = 0.7

const systemPrompt = "You are a copywriter for restaurant menus. " +
	"Write an appetizing description of the given product in a single sentence " +
	"of about 100 characters, weaving in the given keywords. " +
	"Use minimal symbols and no line breaks."

// Client talks to the OpenAI API and fulfills the describe.Generator
// interface. It is safe for concurrent use.
type Client struct {
	api   *openai.Client // api is the SDK client bound to the account key
	model string         // model is the chat model completions run against
}

// wrapErr converts SDK failures into semantic errors: responses the provider
// itself produced become ErrProvider, anything else (network, context) becomes
// ErrUnavailable.
func wrapErr(err error, msgFmt string, args ...any) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return serrors.Wrap(serrors.ErrProvider, err, msgFmt, args...)
	}

	return serrors.Wrap(serrors.ErrUnavailable, err, msgFmt, args...)
}

// Describe generates a single-sentence menu description for the product.
func (c *Client) Describe(ctx context.Context, title string, keywords []string) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: temperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: fmt.Sprintf(
				"Product: %s\nKeywords: %s", title, strings.Join(keywords, ", "))},
		},
	})
	if err != nil {
		return "", wrapErr(err, "could not create chat completion")
	}
	if len(resp.Choices) == 0 {
		return "", serrors.With(serrors.ErrProvider, "provider returned no completion")
	}

	return tidy(resp.Choices[0].Message.Content), nil
}

// tidy collapses whitespace and caps the copy length; the model occasionally
// ignores the length instruction in the prompt.
func tidy(s string) string {
	s = strings.Join(strings.Fields(s), " ")

	runes := []rune(s)
	if len(runes) > maxDescriptionLength {
		return string(runes[:maxDescriptionLength-2]) + "…"
	}

	return s
}

// Ensure Client conforms to the describe.Generator interface at compile time.
var _ describe.Generator = (*Client)(nil)

// New constructs a Client that uses the provided http.Client to talk to the
// OpenAI API with the given key and chat model.
func New(httpClient *http.Client, apiKey string, model string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("openai api key is required")
	}
	if model == "" {
		model = openai.GPT4oMini
	}

	config := openai.DefaultConfig(apiKey)
	if httpClient != nil {
		config.HTTPClient = httpClient
	}

	return &Client{
		api:   openai.NewClientWithConfig(config),
		model: model,
	}, nil
}
