package scheduler

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/meera/vyaara/internal/store"
)

type fakeSender struct {
	sent []string // "userID: text"
}

func (f *fakeSender) Send(userID, text string) error {
	f.sent = append(f.sent, userID+": "+text)
	return nil
}

func (f *fakeSender) SendSticker(userID, sticker string) error {
	f.sent = append(f.sent, userID+": sticker "+sticker)
	return nil
}

func newTestScheduler(t *testing.T) (*Scheduler, *store.Store, *fakeSender) {
	t.Helper()
	st := store.Open(filepath.Join(t.TempDir(), "database.json"))
	sender := &fakeSender{}
	return New(st, sender, ""), st, sender
}

func at(hhmm string) time.Time {
	tm, err := time.Parse("2006-01-02 15:04", "2025-03-01 "+hhmm)
	if err != nil {
		panic(err)
	}
	return tm
}

// --- tick matching ---

func TestTick_FiresWakeAtExactMinute(t *testing.T) {
	s, st, sender := newTestScheduler(t)
	st.SetWakeTime("u1", "07:00")

	s.now = func() time.Time { return at("07:00") }
	s.tick()

	if len(sender.sent) != 1 {
		t.Fatalf("expected 1 message, got %v", sender.sent)
	}
	if !strings.Contains(sender.sent[0], "Good morning") {
		t.Errorf("sent = %q", sender.sent[0])
	}
}

func TestTick_FiresSleepAtExactMinute(t *testing.T) {
	s, st, sender := newTestScheduler(t)
	st.SetSleepTime("u1", "22:30")

	s.now = func() time.Time { return at("22:30") }
	s.tick()

	if len(sender.sent) != 1 || !strings.Contains(sender.sent[0], "Good night") {
		t.Errorf("sent = %v", sender.sent)
	}
}

func TestTick_FiresActivityReminder(t *testing.T) {
	s, st, sender := newTestScheduler(t)
	st.SetActivities("u1", map[string]string{"workout": "18:00", "study": "09:00"})

	s.now = func() time.Time { return at("18:00") }
	s.tick()

	if len(sender.sent) != 1 {
		t.Fatalf("expected only the workout reminder, got %v", sender.sent)
	}
	if sender.sent[0] != "u1: "+activityMessages["workout"] {
		t.Errorf("sent = %q", sender.sent[0])
	}
}

func TestTick_NoMatchIsSilent(t *testing.T) {
	s, st, sender := newTestScheduler(t)
	st.SetWakeTime("u1", "07:00")

	s.now = func() time.Time { return at("07:01") }
	s.tick()

	if len(sender.sent) != 0 {
		t.Errorf("expected no messages, got %v", sender.sent)
	}
}

// --- dedupe ---

func TestTick_SecondScanInSameMinuteIsSuppressed(t *testing.T) {
	s, st, sender := newTestScheduler(t)
	st.SetWakeTime("u1", "07:00")

	s.now = func() time.Time { return at("07:00") }
	s.tick()
	s.tick()

	if len(sender.sent) != 1 {
		t.Errorf("expected exactly 1 message despite two scans, got %v", sender.sent)
	}
}

func TestTick_FiresAgainNextDay(t *testing.T) {
	s, st, sender := newTestScheduler(t)
	st.SetWakeTime("u1", "07:00")

	s.now = func() time.Time { return at("07:00") }
	s.tick()
	s.now = func() time.Time { return at("07:00").AddDate(0, 0, 1) }
	s.tick()

	if len(sender.sent) != 2 {
		t.Errorf("expected the reminder on both days, got %v", sender.sent)
	}
}

func TestTick_DedupeIsPerUserAndEvent(t *testing.T) {
	s, st, sender := newTestScheduler(t)
	st.SetWakeTime("u1", "07:00")
	st.SetWakeTime("u2", "07:00")
	st.SetActivities("u1", map[string]string{"study": "07:00"})

	s.now = func() time.Time { return at("07:00") }
	s.tick()

	if len(sender.sent) != 3 {
		t.Errorf("expected wake for both users plus one activity, got %v", sender.sent)
	}
}

// --- ActivityMessage ---

func TestActivityMessage_KnownAndFallback(t *testing.T) {
	if got := ActivityMessage("study"); got != activityMessages["study"] {
		t.Errorf("got %q", got)
	}
	got := ActivityMessage("painting")
	if !strings.Contains(got, "painting") {
		t.Errorf("fallback should name the activity: %q", got)
	}
}
