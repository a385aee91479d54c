// Package journal keeps an append-only log of conversations in sqlite.
// It doubles as the user registry for the broadcast jobs: the set of
// users is the set of distinct user IDs that ever journaled.
package journal

import (
	"database/sql"
	_ "embed"
	"fmt"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schema string

type Journal struct {
	conn *sql.DB
}

func Open(path string) (*Journal, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening journal: %w", err)
	}
	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}
	if _, err := conn.Exec(schema); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return &Journal{conn: conn}, nil
}

func (j *Journal) Close() error {
	return j.conn.Close()
}

// Entry is one journaled message.
type Entry struct {
	Date      string `json:"date"`
	UserID    string `json:"user_id"`
	Message   string `json:"message"`
	Sentiment string `json:"sentiment"`
}

// Append records a message with its detected sentiment.
func (j *Journal) Append(date, userID, message, sentiment string) error {
	if sentiment == "" {
		sentiment = "neutral"
	}
	_, err := j.conn.Exec(
		"INSERT INTO entries (date, user_id, message, sentiment) VALUES (?, ?, ?, ?)",
		date, userID, message, sentiment,
	)
	if err != nil {
		return fmt.Errorf("appending journal entry: %w", err)
	}
	return nil
}

// UserIDs lists every distinct user that has a journal entry.
func (j *Journal) UserIDs() ([]string, error) {
	rows, err := j.conn.Query("SELECT DISTINCT user_id FROM entries ORDER BY user_id")
	if err != nil {
		return nil, fmt.Errorf("listing journal users: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning user id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Recent returns the latest entries for a user, newest first.
func (j *Journal) Recent(userID string, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := j.conn.Query(
		"SELECT date, user_id, message, sentiment FROM entries WHERE user_id = ? ORDER BY id DESC LIMIT ?",
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("listing journal entries: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Date, &e.UserID, &e.Message, &e.Sentiment); err != nil {
			return nil, fmt.Errorf("scanning journal entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
