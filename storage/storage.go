package storage

import "time"

// Entry is one recorded translation.
type Entry struct {
	Id        int       `json:"id"`
	Text      string    `json:"text"`
	Gloss     string    `json:"gloss"`
	CreatedAt time.Time `json:"created_at"`
}

// HistoryReader defines read operations for translation history
type HistoryReader interface {
	// List returns entries, newest first. limit <= 0 returns all.
	List(limit int) ([]Entry, error)

	// Last returns the most recent entry.
	Last() (Entry, error)
}

// HistoryWriter defines write operations for translation history
type HistoryWriter interface {
	// Append persists an entry and returns its assigned id.
	Append(e Entry) (int, error)
}

// HistoryRepository combines read and write operations
type HistoryRepository interface {
	HistoryReader
	HistoryWriter
}
