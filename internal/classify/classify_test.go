package classify

import "testing"

func stubDetector(code string, ok bool) *Detector {
	return &Detector{statistical: func(string) (string, bool) {
		return code, ok
	}}
}

// --- DetectLanguage ---

func TestDetectLanguage_SlangForcesEnglish(t *testing.T) {
	// Statistical detector says French; slang must win anyway.
	d := stubDetector("fr", true)
	for _, text := range []string{"lol that's wild", "kya haal hai", "OK see you", "haan thik hai"} {
		if got := d.DetectLanguage(text); got != "en" {
			t.Errorf("DetectLanguage(%q) = %q, want en", text, got)
		}
	}
}

func TestDetectLanguage_SlangIsCaseInsensitive(t *testing.T) {
	d := stubDetector("de", true)
	if got := d.DetectLanguage("LMAO no way"); got != "en" {
		t.Errorf("got %q, want en", got)
	}
}

func TestDetectLanguage_SlangInsideWordDoesNotMatch(t *testing.T) {
	// "ok" appears inside "broken" but is not a standalone token.
	d := stubDetector("hi", true)
	if got := d.DetectLanguage("broken things everywhere"); got != "hi" {
		t.Errorf("got %q, want hi", got)
	}
}

func TestDetectLanguage_KeepsEnglishAndHindi(t *testing.T) {
	if got := stubDetector("en", true).DetectLanguage("how was your day"); got != "en" {
		t.Errorf("got %q, want en", got)
	}
	if got := stubDetector("hi", true).DetectLanguage("aaj ka din kaisa tha"); got != "hi" {
		t.Errorf("got %q, want hi", got)
	}
}

func TestDetectLanguage_OtherLanguageFallsBackToEnglish(t *testing.T) {
	d := stubDetector("es", true)
	if got := d.DetectLanguage("buenos dias, como estas hoy, todo bien por alla"); got != "en" {
		t.Errorf("got %q, want en", got)
	}
}

func TestDetectLanguage_DetectionFailureFallsBackToEnglish(t *testing.T) {
	d := stubDetector("", false)
	if got := d.DetectLanguage("???"); got != "en" {
		t.Errorf("got %q, want en", got)
	}
}

func TestNewDetector_ReturnsEnOrHi(t *testing.T) {
	d := NewDetector()
	for _, text := range []string{"hello there, how are you doing today", "xyz", ""} {
		got := d.DetectLanguage(text)
		if got != "en" && got != "hi" {
			t.Errorf("DetectLanguage(%q) = %q, want en or hi", text, got)
		}
	}
}

// --- IsProfessional ---

func TestIsProfessional_Keywords(t *testing.T) {
	cases := []struct {
		text string
		want bool
	}{
		{"I want to grow my business", true},
		{"any career advice?", true},
		{"My Startup idea needs a plan", true},
		{"should I apply for this internship", true},
		{"what's your favourite movie", false},
		{"I feel great today", false},
		// keyword inside a longer word must not match
		{"companying along", false},
	}
	for _, c := range cases {
		if got := IsProfessional(c.text); got != c.want {
			t.Errorf("IsProfessional(%q) = %v, want %v", c.text, got, c.want)
		}
	}
}

// --- MoodEmoji ---

func TestMoodEmoji_Sad(t *testing.T) {
	if got := MoodEmoji("I'm so sad today"); got != "🌧️" {
		t.Errorf("got %q, want 🌧️", got)
	}
}

func TestMoodEmoji_Happy(t *testing.T) {
	if got := MoodEmoji("feeling happy and excited"); got != "🌷" {
		t.Errorf("got %q, want 🌷", got)
	}
}

func TestMoodEmoji_SadWinsOverHappy(t *testing.T) {
	if got := MoodEmoji("happy but also sad"); got != "🌧️" {
		t.Errorf("got %q, want 🌧️", got)
	}
}

func TestMoodEmoji_Default(t *testing.T) {
	if got := MoodEmoji("just another tuesday"); got != "😊" {
		t.Errorf("got %q, want 😊", got)
	}
}
