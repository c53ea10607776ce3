package zombiezen

import (
	"context"
	"fmt"
	"time"

	"github.com/signbridge/islgloss/storage"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

type HistoryStore struct {
	pool *sqlitex.Pool
}

var _ storage.HistoryRepository = (*HistoryStore)(nil)

func NewHistoryStore(pool *sqlitex.Pool) *HistoryStore {
	return &HistoryStore{pool: pool}
}

func (h *HistoryStore) Append(e storage.Entry) (int, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return 0, err
	}
	defer h.pool.Put(conn)

	err = sqlitex.Execute(conn, "INSERT INTO history (text, gloss, created_at) VALUES (?, ?, ?)", &sqlitex.ExecOptions{
		Args: []interface{}{e.Text, e.Gloss, e.CreatedAt.UTC().Format(time.RFC3339)},
	})
	if err != nil {
		return 0, fmt.Errorf("append history: %w", err)
	}

	return int(conn.LastInsertRowID()), nil
}

func (h *HistoryStore) List(limit int) ([]storage.Entry, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer h.pool.Put(conn)

	query := "SELECT id, text, gloss, created_at FROM history ORDER BY id DESC"
	var args []interface{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	var entries []storage.Entry
	err = sqlitex.Execute(conn, query, &sqlitex.ExecOptions{
		Args: args,
		ResultFunc: func(stmt *sqlite.Stmt) error {
			created, err := time.Parse(time.RFC3339, stmt.ColumnText(3))
			if err != nil {
				return fmt.Errorf("parse created_at: %w", err)
			}
			entries = append(entries, storage.Entry{
				Id:        stmt.ColumnInt(0),
				Text:      stmt.ColumnText(1),
				Gloss:     stmt.ColumnText(2),
				CreatedAt: created,
			})
			return nil
		},
	})
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	return entries, nil
}

func (h *HistoryStore) Last() (storage.Entry, error) {
	entries, err := h.List(1)
	if err != nil {
		return storage.Entry{}, err
	}
	if len(entries) == 0 {
		return storage.Entry{}, fmt.Errorf("history is empty")
	}
	return entries[0], nil
}
