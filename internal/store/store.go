// Package store persists per-user records in a single JSON file. Every
// operation reads the whole file, mutates one record, and rewrites the
// whole file. A mutex serializes operations so the chat handler, the
// scheduler tick, and the cron check-in can't interleave writes.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"sync"
	"time"
)

const dateLayout = "2006-01-02"

// Milestones tracks conversation count, the date of first contact, and
// user-configured celebration thresholds. CustomDays holds extra
// elapsed-day thresholds; the JSON key keeps the original field name.
type Milestones struct {
	Conversations       int   `json:"conversations"`
	StartDate           string `json:"start_date"`
	CustomDays          []int `json:"custom_dates"`
	CustomConversations []int `json:"custom_conversations"`
}

// Record is the flat per-user profile. Activity times and sleep/wake
// times are "HH:MM" strings in the host's local time.
type Record struct {
	Name           string            `json:"name"`
	Goals          []string          `json:"goals"`
	Activities     map[string]string `json:"activities"`
	SleepTime      string            `json:"sleep_time"`
	WakeTime       string            `json:"wake_time"`
	LastActiveDate string            `json:"last_active_date"`
	StreakCount    int               `json:"streak_count"`
	Milestones     Milestones        `json:"milestones"`
	Mood           string            `json:"mood"`
}

// MilestoneSummary is the derived milestone view for the notifier.
type MilestoneSummary struct {
	Conversations       int
	DaysSinceStart      int
	CustomDays          []int
	CustomConversations []int
}

type Store struct {
	path string
	mu   sync.Mutex
	now  func() time.Time
}

func Open(path string) *Store {
	return &Store{path: path, now: time.Now}
}

// load reads the backing file. A missing or corrupt file is an empty
// store, not an error.
func (s *Store) load() map[string]*Record {
	data := make(map[string]*Record)
	b, err := os.ReadFile(s.path)
	if err != nil {
		return data
	}
	if err := json.Unmarshal(b, &data); err != nil {
		return make(map[string]*Record)
	}
	return data
}

func (s *Store) save(data map[string]*Record) error {
	b, err := json.MarshalIndent(data, "", "    ")
	if err != nil {
		return fmt.Errorf("encoding store: %w", err)
	}
	if err := os.WriteFile(s.path, b, 0644); err != nil {
		return fmt.Errorf("writing store: %w", err)
	}
	return nil
}

func newRecord(now time.Time) *Record {
	return &Record{
		Goals:      []string{},
		Activities: map[string]string{},
		Milestones: Milestones{
			StartDate:           now.Format(dateLayout),
			CustomDays:          []int{},
			CustomConversations: []int{},
		},
	}
}

// ensure returns the record for userID, creating it if absent.
func ensure(data map[string]*Record, userID string, now time.Time) *Record {
	rec := data[userID]
	if rec == nil {
		rec = newRecord(now)
		data[userID] = rec
	}
	return rec
}

// update runs fn against userID's record under the lock and rewrites the
// file. The record is created first if it doesn't exist.
func (s *Store) update(userID string, fn func(*Record)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	data := s.load()
	rec := ensure(data, userID, s.now())
	if fn != nil {
		fn(rec)
	}
	return s.save(data)
}

// EnsureUser creates a default record on first contact.
func (s *Store) EnsureUser(userID string) error {
	return s.update(userID, nil)
}

// Get returns a copy of the user's record, creating it if absent. The
// file is only rewritten when the record had to be created.
func (s *Store) Get(userID string) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data := s.load()
	rec, existed := data[userID]
	if !existed {
		rec = newRecord(s.now())
		data[userID] = rec
		if err := s.save(data); err != nil {
			return Record{}, err
		}
	}
	return *rec, nil
}

func (s *Store) SetName(userID, name string) error {
	return s.update(userID, func(r *Record) { r.Name = name })
}

func (s *Store) AddGoal(userID, goal string) error {
	return s.update(userID, func(r *Record) { r.Goals = append(r.Goals, goal) })
}

// SetActivities replaces the activities map wholesale.
func (s *Store) SetActivities(userID string, activities map[string]string) error {
	return s.update(userID, func(r *Record) { r.Activities = activities })
}

func (s *Store) SetSleepTime(userID, hhmm string) error {
	return s.update(userID, func(r *Record) { r.SleepTime = hhmm })
}

func (s *Store) SetWakeTime(userID, hhmm string) error {
	return s.update(userID, func(r *Record) { r.WakeTime = hhmm })
}

func (s *Store) SetMood(userID, mood string) error {
	return s.update(userID, func(r *Record) { r.Mood = mood })
}

// RecordConversation bumps the milestone conversation counter.
func (s *Store) RecordConversation(userID string) error {
	return s.update(userID, func(r *Record) { r.Milestones.Conversations++ })
}

// UpdateStreak recomputes the consecutive-day streak and returns the new
// count. Same-day repeat contact leaves the count unchanged; contact on
// the immediately following day increments it; a gap of two or more days
// resets it to 1.
func (s *Store) UpdateStreak(userID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data := s.load()
	rec := ensure(data, userID, s.now())

	today := s.now().Format(dateLayout)
	switch {
	case rec.LastActiveDate == today:
		// Same-day repeat contact: nothing to write.
		return rec.StreakCount, nil
	case rec.LastActiveDate != "" && nextDay(rec.LastActiveDate) == today:
		rec.StreakCount++
	default:
		rec.StreakCount = 1
	}
	rec.LastActiveDate = today

	if err := s.save(data); err != nil {
		return 0, err
	}
	return rec.StreakCount, nil
}

func nextDay(date string) string {
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return ""
	}
	return t.AddDate(0, 0, 1).Format(dateLayout)
}

// UserIDs lists every known user, sorted for deterministic iteration.
func (s *Store) UserIDs() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data := s.load()
	ids := make([]string, 0, len(data))
	for id := range data {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

// Summary computes the milestone view: conversation count, whole days
// elapsed since first contact, and the custom thresholds.
func (s *Store) Summary(userID string) (MilestoneSummary, error) {
	rec, err := s.Get(userID)
	if err != nil {
		return MilestoneSummary{}, err
	}

	days := 0
	if start, err := time.Parse(dateLayout, rec.Milestones.StartDate); err == nil {
		days = int(s.now().Sub(start).Hours() / 24)
	}
	return MilestoneSummary{
		Conversations:       rec.Milestones.Conversations,
		DaysSinceStart:      days,
		CustomDays:          rec.Milestones.CustomDays,
		CustomConversations: rec.Milestones.CustomConversations,
	}, nil
}
