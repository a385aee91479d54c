package prompt

import (
	"regexp"
	"strings"
)

// The model occasionally prefixes lines with short language-ish tags
// (sw, sk, fi, id). The set is closed and hardcoded; these are stripped
// both at line starts and as standalone tokens anywhere in the text.
var (
	lineTagRe = regexp.MustCompile(`(?m)^\s*(sw|sk|fi|id)[:!.,]*\s*`)
	soloTagRe = regexp.MustCompile(`\b(sw|sk|fi|id)\b`)
	spacesRe  = regexp.MustCompile(` +`)
)

// CleanReply strips filler tags from a completion and collapses repeated
// spaces. Applying it twice yields the same result as applying it once.
func CleanReply(text string) string {
	cleaned := lineTagRe.ReplaceAllString(text, "")
	cleaned = soloTagRe.ReplaceAllString(cleaned, "")
	cleaned = spacesRe.ReplaceAllString(cleaned, " ")
	return strings.TrimSpace(cleaned)
}
