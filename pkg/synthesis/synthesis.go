// Package synthesis turns structured analysis output into prose using
// the Anthropic API.
package synthesis

import (
	"context"
	"strings"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// systemPrompt frames the model as a literature-review assistant. The
// structured report is the only source material; the model must not
// invent citations.
const systemPrompt = `You are a research assistant summarizing the structured analysis of an academic document.
Write a concise narrative summary covering: the sources cited and their credibility, the research design, the theoretical frameworks, notable statistics, and any ethical considerations.
Use only the facts in the provided report. Do not invent citations or findings. Keep the [Incomplete citation] markers wherever they appear.`

// Client produces a prose synthesis of an analysis report.
type Client interface {
	Synthesize(ctx context.Context, report string) (string, error)
}

// sdkClient implements Client using the official anthropic-sdk-go.
type sdkClient struct {
	client    sdk.Client
	model     string
	maxTokens int64
}

// NewClient creates a synthesis client backed by the SDK.
func NewClient(apiKey, model string, maxTokens int) Client {
	return &sdkClient{
		client:    sdk.NewClient(option.WithAPIKey(apiKey)),
		model:     model,
		maxTokens: int64(maxTokens),
	}
}

func (c *sdkClient) Synthesize(ctx context.Context, report string) (string, error) {
	msg, err := c.client.Messages.New(ctx, sdk.MessageNewParams{
		Model:     sdk.Model(c.model),
		MaxTokens: c.maxTokens,
		System:    []sdk.TextBlockParam{{Text: systemPrompt}},
		Messages:  []sdk.MessageParam{sdk.NewUserMessage(sdk.NewTextBlock(report))},
	})
	if err != nil {
		return "", eris.Wrap(err, "synthesis: create message")
	}

	var b strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	out := b.String()
	if strings.TrimSpace(out) == "" {
		return "", eris.New("synthesis: empty response")
	}

	zap.L().Debug("synthesis: message complete",
		zap.String("model", c.model),
		zap.Int64("input_tokens", msg.Usage.InputTokens),
		zap.Int64("output_tokens", msg.Usage.OutputTokens),
	)
	return out, nil
}
