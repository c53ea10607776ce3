// Package filesystem stores translation history as JSON lines in a
// single file.
package filesystem

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/signbridge/islgloss/storage"
)

type History struct {
	path string
}

var _ storage.HistoryRepository = (*History)(nil)

// New creates a filesystem history store. The file is created on first
// append.
func New(path string) *History {
	return &History{path: path}
}

func (h *History) load() ([]storage.Entry, error) {
	f, err := os.Open(h.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open history %s: %w", h.path, err)
	}
	defer f.Close()

	var entries []storage.Entry
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		var e storage.Entry
		if err := json.Unmarshal(line, &e); err != nil {
			return nil, fmt.Errorf("decode history %s: %w", h.path, err)
		}
		entries = append(entries, e)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read history %s: %w", h.path, err)
	}
	return entries, nil
}

func (h *History) Append(e storage.Entry) (int, error) {
	entries, err := h.load()
	if err != nil {
		return 0, err
	}
	e.Id = len(entries) + 1

	line, err := json.Marshal(e)
	if err != nil {
		return 0, fmt.Errorf("encode history entry: %w", err)
	}

	f, err := os.OpenFile(h.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return 0, fmt.Errorf("open history %s: %w", h.path, err)
	}
	defer f.Close()

	if _, err := f.Write(append(line, '\n')); err != nil {
		return 0, fmt.Errorf("write history %s: %w", h.path, err)
	}
	return e.Id, nil
}

func (h *History) List(limit int) ([]storage.Entry, error) {
	entries, err := h.load()
	if err != nil {
		return nil, err
	}

	// newest first
	out := make([]storage.Entry, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		out = append(out, entries[i])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (h *History) Last() (storage.Entry, error) {
	entries, err := h.List(1)
	if err != nil {
		return storage.Entry{}, err
	}
	if len(entries) == 0 {
		return storage.Entry{}, fmt.Errorf("history %s is empty", h.path)
	}
	return entries[0], nil
}
