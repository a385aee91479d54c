// Package scheduler runs the time-based routines: a minute-resolution
// scan of every user's wake/sleep/activity times, and a cron entry for
// the daily check-in.
package scheduler

import (
	"log"
	"sync"
	"time"

	"github.com/meera/vyaara/internal/notify"
	"github.com/meera/vyaara/internal/store"
	"github.com/robfig/cron/v3"
)

const goodMorning = "☀️ Good morning! 🌷 Let’s make this day beautiful and productive. You're strong and capable!"
const goodNight = "🌙 Good night! 😴 You’ve worked hard today. Remember, rest is vital for a brighter tomorrow. 🌱 Sweet dreams!"

// activityMessages are the warm per-activity reminder lines.
var activityMessages = map[string]string{
	"study":   "📚 Time to focus and study. You're doing great — one page at a time! 🌱",
	"workout": "💪 Time for a workout! Stay strong, stay active — you're making yourself proud! 🌟",
	"meal":    "🍳 Don't forget to fuel your body. Enjoy this delicious moment. 🌷",
	"other":   "🌱 It's time for your activity — stay present and make it count. 🌞",
}

// ActivityMessage returns the reminder line for an activity.
func ActivityMessage(activity string) string {
	if msg, ok := activityMessages[activity]; ok {
		return msg
	}
	return "🌷 It's time for " + activity + "! Enjoy it."
}

type Sender interface {
	Send(userID, content string) error
	SendSticker(userID, sticker string) error
}

type Scheduler struct {
	cron        *cron.Cron
	store       *store.Store
	sender      Sender
	checkInCron string
	now         func() time.Time

	mu    sync.Mutex
	fired map[string]string // user|event -> "date HH:MM" last fired
	done  chan struct{}
}

func New(st *store.Store, sender Sender, checkInCron string) *Scheduler {
	return &Scheduler{
		cron:        cron.New(),
		store:       st,
		sender:      sender,
		checkInCron: checkInCron,
		now:         time.Now,
		fired:       make(map[string]string),
		done:        make(chan struct{}),
	}
}

func (s *Scheduler) Start() {
	if s.checkInCron != "" {
		if _, err := s.cron.AddFunc(s.checkInCron, func() {
			notify.CheckIns(s.store, s.sender)
		}); err != nil {
			log.Printf("scheduler: invalid check-in cron %q: %v", s.checkInCron, err)
		}
	}
	s.cron.Start()

	// Scan user records every 60 seconds for time-matched reminders.
	go func() {
		t := time.NewTicker(60 * time.Second)
		defer t.Stop()
		for {
			select {
			case <-t.C:
				s.tick()
			case <-s.done:
				return
			}
		}
	}()

	log.Println("scheduler started")
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
	close(s.done)
}

// tick compares the current wall-clock "HH:MM" against every user's
// configured times and sends the matching greetings and reminders.
func (s *Scheduler) tick() {
	now := s.now()
	hhmm := now.Format("15:04")

	ids, err := s.store.UserIDs()
	if err != nil {
		log.Printf("scheduler: listing users: %v", err)
		return
	}

	for _, id := range ids {
		rec, err := s.store.Get(id)
		if err != nil {
			log.Printf("scheduler: loading user %s: %v", id, err)
			continue
		}

		if rec.WakeTime == hhmm && s.shouldFire(id, "wake", now) {
			s.deliver(id, goodMorning)
		}
		if rec.SleepTime == hhmm && s.shouldFire(id, "sleep", now) {
			s.deliver(id, goodNight)
		}
		for activity, at := range rec.Activities {
			if at == hhmm && s.shouldFire(id, "activity:"+activity, now) {
				s.deliver(id, ActivityMessage(activity))
			}
		}
	}
}

// shouldFire dedupes sends within a minute: tick jitter can produce two
// scans inside the same matching minute, and the user should still get
// exactly one message.
func (s *Scheduler) shouldFire(userID, event string, now time.Time) bool {
	key := userID + "|" + event
	minute := now.Format("2006-01-02 15:04")

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fired[key] == minute {
		return false
	}
	s.fired[key] = minute
	return true
}

func (s *Scheduler) deliver(userID, content string) {
	if err := s.sender.Send(userID, content); err != nil {
		log.Printf("scheduler: could not send message to %s: %v", userID, err)
	}
}
