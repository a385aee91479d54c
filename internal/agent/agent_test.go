package agent

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/meera/vyaara/internal/classify"
)

// fakeClient records the last request and returns a canned reply.
type fakeClient struct {
	lastPrompt    string
	lastMaxTokens int
	reply         string
	err           error
}

func (f *fakeClient) Complete(_ context.Context, prompt string, maxTokens int) (string, error) {
	f.lastPrompt = prompt
	f.lastMaxTokens = maxTokens
	return f.reply, f.err
}

func englishDetector() *classify.Detector {
	return classify.NewDetector()
}

func TestRespond_ProfessionalRouting(t *testing.T) {
	fc := &fakeClient{reply: "Here is a structured plan."}
	ag := New(fc, englishDetector())

	got, err := ag.Respond(context.Background(), "how do I grow my career this year")
	if err != nil {
		t.Fatalf("Respond: %v", err)
	}
	if fc.lastMaxTokens != professionalMaxTokens {
		t.Errorf("max tokens = %d, want %d", fc.lastMaxTokens, professionalMaxTokens)
	}
	if !strings.Contains(fc.lastPrompt, "AI mentor") {
		t.Errorf("expected professional prompt, got %q", fc.lastPrompt)
	}
	if !strings.Contains(fc.lastPrompt, "15-20 sentences") {
		t.Errorf("professional prompt must request a structured long reply: %q", fc.lastPrompt)
	}
	if got != "Here is a structured plan." {
		t.Errorf("got %q", got)
	}
}

func TestRespond_CasualRoutingAddsMoodEmoji(t *testing.T) {
	fc := &fakeClient{reply: "That sounds like a lovely evening!"}
	ag := New(fc, englishDetector())

	got, err := ag.Respond(context.Background(), "I'm so happy, I watched the sunset")
	if err != nil {
		t.Fatalf("Respond: %v", err)
	}
	if fc.lastMaxTokens != casualMaxTokens {
		t.Errorf("max tokens = %d, want %d", fc.lastMaxTokens, casualMaxTokens)
	}
	if !strings.Contains(fc.lastPrompt, "AI friend") {
		t.Errorf("expected casual prompt, got %q", fc.lastPrompt)
	}
	if !strings.HasSuffix(got, "🌷") {
		t.Errorf("expected happy mood emoji suffix, got %q", got)
	}
}

func TestRespond_CleansReply(t *testing.T) {
	fc := &fakeClient{reply: "sw: Keep  going, you have a solid plan"}
	ag := New(fc, englishDetector())

	got, err := ag.Respond(context.Background(), "review my business plan")
	if err != nil {
		t.Fatalf("Respond: %v", err)
	}
	if got != "Keep going, you have a solid plan" {
		t.Errorf("got %q", got)
	}
}

func TestRespond_PropagatesError(t *testing.T) {
	fc := &fakeClient{err: errors.New("service unavailable")}
	ag := New(fc, englishDetector())

	_, err := ag.Respond(context.Background(), "hello friend, how are you")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "service unavailable") {
		t.Errorf("error should wrap the cause: %v", err)
	}
}
