package classify

import (
	"strings"

	ahocorasick "github.com/petar-dambovaliev/aho-corasick"
)

// Tone is the coarse emotional category of a message.
type Tone string

const (
	ToneSad     Tone = "sad"
	ToneHappy   Tone = "happy"
	ToneTired   Tone = "tired"
	ToneAngry   Tone = "angry"
	ToneLonely  Tone = "lonely"
	ToneNeutral Tone = "neutral"
)

// tonePriority is the check order: a message containing cues from
// several categories classifies as the highest-priority one.
var tonePriority = []Tone{ToneSad, ToneHappy, ToneTired, ToneAngry, ToneLonely}

var toneCues = map[Tone][]string{
	ToneSad:    {"sad", "down", "depressed", "unhappy", "crying", "overwhelmed", "low"},
	ToneHappy:  {"happy", "excited", "amazing", "fantastic", "good", "joyful", "grateful", "peaceful", "motivated"},
	ToneTired:  {"tired", "sleepy", "exhausted", "drained", "burnt out", "no energy"},
	ToneAngry:  {"angry", "mad", "furious", "irritated", "frustrated", "annoyed", "enraged"},
	ToneLonely: {"lonely", "alone", "isolated", "no one understands", "no one to talk to"},
}

// One automaton over every cue phrase; pattern index maps back to its tone.
var (
	cueScanner ahocorasick.AhoCorasick
	cueTones   []Tone
	toneRank   = map[Tone]int{}
)

func init() {
	var patterns []string
	for rank, tone := range tonePriority {
		toneRank[tone] = rank
		for _, cue := range toneCues[tone] {
			patterns = append(patterns, cue)
			cueTones = append(cueTones, tone)
		}
	}
	builder := ahocorasick.NewAhoCorasickBuilder(ahocorasick.Opts{
		AsciiCaseInsensitive: true,
		MatchOnlyWholeWords:  false,
		MatchKind:            ahocorasick.LeftMostLongestMatch,
	})
	cueScanner = builder.Build(patterns)
}

// AnalyzeTone scans the message for emotional cue phrases and returns
// the highest-priority matching tone, or neutral.
func AnalyzeTone(message string) Tone {
	msg := strings.ToLower(strings.TrimSpace(message))
	best := ToneNeutral
	bestRank := len(tonePriority)
	for _, m := range cueScanner.FindAll(msg) {
		tone := cueTones[m.Pattern()]
		if r := toneRank[tone]; r < bestRank {
			best = tone
			bestRank = r
		}
	}
	return best
}

var toneEmojis = map[Tone]string{
	ToneHappy:   "🌞",
	ToneSad:     "😞",
	ToneTired:   "🌙",
	ToneAngry:   "🔥",
	ToneLonely:  "🌷",
	ToneNeutral: "🌱",
}

// ToneEmoji returns the emoji that best suits the detected tone.
func ToneEmoji(tone Tone) string {
	if e, ok := toneEmojis[tone]; ok {
		return e
	}
	return "🌷"
}

var toneConfirmations = map[Tone]string{
	ToneHappy:   "🌞 I sense you’re feeling happy — am I right?",
	ToneSad:     "😞 It seems like you’re feeling a bit down — am I right?",
	ToneTired:   "🌙 You seem tired. Do you want to talk about it?",
	ToneAngry:   "🔥 It looks like you’re feeling frustrated or angry — am I right?",
	ToneLonely:  "🌷 It feels like you’re feeling a bit lonely — am I right?",
	ToneNeutral: "🌱 I’m here for you. Do you want to talk more about how you’re feeling?",
}

// Confirmation returns the check-with-the-user question for a tone.
// Intended for a confirm-then-respond flow; the main reply path does not
// use it yet.
func Confirmation(tone Tone) string {
	if c, ok := toneConfirmations[tone]; ok {
		return c
	}
	return "🌷 Do you want to tell me how you’re feeling?"
}

var toneMessages = map[Tone]string{
	ToneHappy:   "🌞 That’s beautiful to hear! Let’s make this moment even brighter together.",
	ToneSad:     "🌷 I’m really sorry you’re feeling this way. You’re not alone, and brighter moments will come. 💙 Do you want to tell me why you’re feeling this way?",
	ToneTired:   "🌙 It sounds like you’ve been carrying a lot. Remember, rest is vital for strength. Would you like a quick breathing exercise or a moment to slow down? 🌱",
	ToneAngry:   "🔥 It’s okay to be frustrated. You’re heard, and your feelings matter. Would you like to tell me what happened? 💙",
	ToneLonely:  "🌷 Feeling lonely is one of the heaviest feelings to bear. You’re not alone, and I’m here with you. Would you like to share more about it? 🌱",
	ToneNeutral: "🌱 Thanks for sharing. I’m here to listen if you’d like to say more.",
}

// SupportMessage returns a warm reply matched to the detected tone.
func SupportMessage(tone Tone) string {
	if m, ok := toneMessages[tone]; ok {
		return m
	}
	return "🌷 I’m here for you — always. 🌱"
}
