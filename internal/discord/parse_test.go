package discord

import "testing"

// --- parseClock ---

func TestParseClock(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"9am", "09:00", true},
		{"9:30pm", "21:30", true},
		{"9:30 PM", "21:30", true},
		{"12am", "00:00", true},
		{"12pm", "12:00", true},
		{"18:00", "18:00", true},
		{"6", "", false},
		{"25:00", "", false},
		{"noonish", "", false},
		{"", "", false},
	}
	for _, c := range cases {
		got, ok := parseClock(c.in)
		if got != c.want || ok != c.ok {
			t.Errorf("parseClock(%q) = (%q, %v), want (%q, %v)", c.in, got, ok, c.want, c.ok)
		}
	}
}

// --- parseRoutine ---

func TestParseRoutine_SingleActivity(t *testing.T) {
	acts, ok := parseRoutine("workout at 6pm")
	if !ok {
		t.Fatal("expected routine message")
	}
	if acts["workout"] != "18:00" {
		t.Errorf("activities = %v", acts)
	}
}

func TestParseRoutine_MultipleActivities(t *testing.T) {
	acts, ok := parseRoutine("study at 9am, workout at 6:30 pm and meal at 13:00")
	if !ok {
		t.Fatal("expected routine message")
	}
	if acts["study"] != "09:00" || acts["workout"] != "18:30" || acts["meal"] != "13:00" {
		t.Errorf("activities = %v", acts)
	}
}

func TestParseRoutine_UnparseableTimeSkipped(t *testing.T) {
	acts, ok := parseRoutine("study at dawn")
	if !ok {
		t.Fatal("a routine keyword should still mark the message as a routine")
	}
	if len(acts) != 0 {
		t.Errorf("expected no activities, got %v", acts)
	}
}

func TestParseRoutine_NotARoutine(t *testing.T) {
	if _, ok := parseRoutine("I went for a workout yesterday"); ok {
		t.Error("message without 'at' must not be a routine")
	}
}

// --- greetings, names, goals ---

func TestIsGreeting(t *testing.T) {
	cases := []struct {
		text string
		want bool
	}{
		{"hi", true},
		{"Hello!", true},
		{"hey there", true},
		{"wassup", true},
		{"this is nothing", false}, // "hi" inside a word doesn't count
		{"they said", false},
	}
	for _, c := range cases {
		if got := isGreeting(c.text); got != c.want {
			t.Errorf("isGreeting(%q) = %v, want %v", c.text, got, c.want)
		}
	}
}

func TestParseName(t *testing.T) {
	name, ok := parseName("My name is Asha Rao")
	if !ok || name != "Asha Rao" {
		t.Errorf("got (%q, %v)", name, ok)
	}
	if _, ok := parseName("what is my name"); ok {
		t.Error("should not match")
	}
}

func TestParseGoal(t *testing.T) {
	goal, ok := parseGoal("goal: run a half marathon")
	if !ok || goal != "run a half marathon" {
		t.Errorf("got (%q, %v)", goal, ok)
	}
	if _, ok := parseGoal("my goal is to run"); ok {
		t.Error("should not match without the prefix")
	}
}

// --- wake / sleep ---

func TestParseWakeSleep(t *testing.T) {
	hhmm, ok := parseWake("I wake at 6:30am usually")
	if !ok || hhmm != "06:30" {
		t.Errorf("parseWake = (%q, %v)", hhmm, ok)
	}
	hhmm, ok = parseSleep("sleep at 10pm")
	if !ok || hhmm != "22:00" {
		t.Errorf("parseSleep = (%q, %v)", hhmm, ok)
	}
	if _, ok := parseWake("I wake up early"); ok {
		t.Error("should not match without a time")
	}
}
