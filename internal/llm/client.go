package llm

import "context"

// Temperature is fixed across providers; the bot wants varied, warm
// replies rather than deterministic ones.
const Temperature = 0.9

// Client is a one-shot text-completion service. Complete sends a single
// user-role prompt and returns the trimmed text of the first choice.
type Client interface {
	Complete(ctx context.Context, prompt string, maxTokens int) (string, error)
}
