package discord

import (
	"regexp"
	"strings"
	"time"
)

// Message grammar: a handful of fixed patterns checked before anything
// goes to the completion service.
var (
	greetingRe = regexp.MustCompile(`(?i)\b(hi|hello|hey|wassup)\b`)
	nameRe     = regexp.MustCompile(`(?i)^\s*my name is\s+(.+?)\s*$`)
	goalRe     = regexp.MustCompile(`(?i)^\s*goal:\s*(.+?)\s*$`)
	wakeRe     = regexp.MustCompile(`(?i)\bwake at\s+(\d{1,2}(?::\d{2})?\s*(?:am|pm)?)`)
	sleepRe    = regexp.MustCompile(`(?i)\bsleep at\s+(\d{1,2}(?::\d{2})?\s*(?:am|pm)?)`)
)

var activityNames = []string{"study", "workout", "meal", "other"}

var activityRes = func() map[string]*regexp.Regexp {
	res := make(map[string]*regexp.Regexp, len(activityNames))
	for _, name := range activityNames {
		res[name] = regexp.MustCompile(`(?i)\b` + name + ` at (\d{1,2}(?::\d{2})?\s*(?:am|pm)?)`)
	}
	return res
}()

func isGreeting(text string) bool {
	return greetingRe.MatchString(text)
}

func parseName(text string) (string, bool) {
	m := nameRe.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return m[1], true
}

func parseGoal(text string) (string, bool) {
	m := goalRe.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return m[1], true
}

func parseWake(text string) (string, bool) {
	return parseTimePattern(wakeRe, text)
}

func parseSleep(text string) (string, bool) {
	return parseTimePattern(sleepRe, text)
}

func parseTimePattern(re *regexp.Regexp, text string) (string, bool) {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return parseClock(m[1])
}

// parseRoutine extracts activity times from messages like "study at 7pm,
// workout at 6am". The second return is true when the message is a
// routine message at all — activities with unparseable times are
// silently skipped, which can leave the map empty.
func parseRoutine(text string) (map[string]string, bool) {
	lower := strings.ToLower(text)
	routine := false
	for _, name := range activityNames {
		if strings.Contains(lower, name+" at ") {
			routine = true
			break
		}
	}
	if !routine {
		return nil, false
	}

	activities := make(map[string]string)
	for name, re := range activityRes {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if hhmm, ok := parseClock(m[1]); ok {
			activities[name] = hhmm
		}
	}
	return activities, true
}

// parseClock converts a user-typed time ("9am", "9:30 PM", "18:00") to
// "HH:MM" 24h format.
func parseClock(s string) (string, bool) {
	s = strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "")
	for _, layout := range []string{"3:04pm", "3pm", "15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("15:04"), true
		}
	}
	return "", false
}
