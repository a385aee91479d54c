// Package agent routes an incoming message through classification,
// prompt building, and the completion service.
package agent

import (
	"context"
	"fmt"

	"github.com/meera/vyaara/internal/classify"
	"github.com/meera/vyaara/internal/llm"
	"github.com/meera/vyaara/internal/prompt"
)

// Token budgets per reply style. Professional replies are long-form
// (15-20 sentences); casual ones are a few sentences.
const (
	professionalMaxTokens = 3000
	casualMaxTokens       = 500
)

type Agent struct {
	client   llm.Client
	detector *classify.Detector
}

func New(client llm.Client, detector *classify.Detector) *Agent {
	return &Agent{client: client, detector: detector}
}

// Respond classifies the message, builds the matching prompt, and
// returns the cleaned completion text. Casual replies get a mood emoji
// suffix. Errors are returned as-is; how they surface to the user is the
// transport's decision.
func (a *Agent) Respond(ctx context.Context, text string) (string, error) {
	lang := a.detector.DetectLanguage(text)

	if classify.IsProfessional(text) {
		out, err := a.client.Complete(ctx, prompt.Professional(text, lang), professionalMaxTokens)
		if err != nil {
			return "", fmt.Errorf("professional reply: %w", err)
		}
		return prompt.CleanReply(out), nil
	}

	out, err := a.client.Complete(ctx, prompt.Casual(text, lang), casualMaxTokens)
	if err != nil {
		return "", fmt.Errorf("casual reply: %w", err)
	}
	return prompt.CleanReply(out) + " " + classify.MoodEmoji(text), nil
}
