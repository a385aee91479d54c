// Package classify infers language, intent, and emotional tone from raw
// message text. Everything here is keyword-driven except language
// detection, which falls back to a statistical detector for text with no
// recognizable slang.
package classify

import (
	"regexp"
	"strings"

	"github.com/pemistahl/lingua-go"
)

// SlangWords force language detection to English. Short Hinglish and
// chat-speak messages confuse statistical detectors badly, so any of
// these tokens short-circuits detection.
var SlangWords = map[string]struct{}{
	"hn": {}, "hm": {}, "yup": {}, "lmao": {}, "lol": {}, "brb": {},
	"idk": {}, "omg": {}, "wassup": {},
	"kya": {}, "kyu": {}, "mene": {}, "kaha": {}, "shi": {}, "acha": {},
	"nahi": {}, "thik": {}, "ha": {}, "haan": {}, "ok": {}, "okay": {},
}

var (
	wordRe         = regexp.MustCompile(`\b\w+\b`)
	professionalRe = regexp.MustCompile(`\b(business|career|startup|project|plan|goal|strategy|job|internship|company)\b`)
)

// Detector wraps a statistical language detector. Replies are only
// written in English or Hindi, so anything else collapses to "en".
type Detector struct {
	statistical func(text string) (code string, ok bool)
}

// NewDetector builds a detector over the languages the bot actually
// encounters. The non-en/hi languages exist so the statistical model has
// something to classify foreign text as, rather than forcing it into
// en/hi.
func NewDetector() *Detector {
	languages := []lingua.Language{
		lingua.English,
		lingua.Hindi,
		lingua.Spanish,
		lingua.French,
		lingua.German,
		lingua.Portuguese,
	}
	d := lingua.NewLanguageDetectorBuilder().FromLanguages(languages...).Build()
	return &Detector{
		statistical: func(text string) (string, bool) {
			lang, ok := d.DetectLanguageOf(text)
			if !ok {
				return "", false
			}
			return strings.ToLower(lang.IsoCode639_1().String()), true
		},
	}
}

// DetectLanguage returns "en" or "hi". Slang tokens win over the
// statistical detector; anything that isn't en or hi, or that the
// detector can't classify, falls back to "en".
func (d *Detector) DetectLanguage(text string) string {
	for _, w := range wordRe.FindAllString(strings.ToLower(text), -1) {
		if _, ok := SlangWords[w]; ok {
			return "en"
		}
	}
	code, ok := d.statistical(text)
	if !ok {
		return "en"
	}
	if code != "en" && code != "hi" {
		return "en"
	}
	return code
}

// IsProfessional reports whether the message is a career/business style
// query that should get the long mentor reply.
func IsProfessional(text string) bool {
	return professionalRe.MatchString(strings.ToLower(text))
}

// MoodEmoji picks an emoji suffix for casual replies. Sad cues win over
// happy ones.
func MoodEmoji(text string) string {
	lower := strings.ToLower(text)
	for _, w := range []string{"sad", "depressed", "cry"} {
		if strings.Contains(lower, w) {
			return "🌧️"
		}
	}
	for _, w := range []string{"happy", "excited", "good"} {
		if strings.Contains(lower, w) {
			return "🌷"
		}
	}
	return "😊"
}
