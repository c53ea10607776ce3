package filesystem

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/signbridge/islgloss/storage"
)

func newHistory(t *testing.T) *History {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "history.jsonl"))
}

func TestAppendAndList(t *testing.T) {
	h := newHistory(t)

	entries := []storage.Entry{
		{Text: "She is not happy.", Gloss: "SHE HAPPY NOT", CreatedAt: time.Now()},
		{Text: "Are you coming?", Gloss: "YOU COME [Y/N?]", CreatedAt: time.Now()},
	}
	for i, e := range entries {
		id, err := h.Append(e)
		if err != nil {
			t.Fatalf("Append: %v", err)
		}
		if id != i+1 {
			t.Errorf("Append id = %d, want %d", id, i+1)
		}
	}

	got, err := h.List(0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("List returned %d entries, want 2", len(got))
	}
	// newest first
	if got[0].Gloss != "YOU COME [Y/N?]" {
		t.Errorf("List[0].Gloss = %q, want newest entry", got[0].Gloss)
	}

	limited, err := h.List(1)
	if err != nil {
		t.Fatalf("List(1): %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("List(1) returned %d entries", len(limited))
	}
}

func TestLast(t *testing.T) {
	h := newHistory(t)

	if _, err := h.Last(); err == nil {
		t.Fatal("Last on empty history: expected error")
	}

	if _, err := h.Append(storage.Entry{Text: "x", Gloss: "X"}); err != nil {
		t.Fatal(err)
	}
	last, err := h.Last()
	if err != nil {
		t.Fatalf("Last: %v", err)
	}
	if last.Gloss != "X" {
		t.Errorf("Last.Gloss = %q, want X", last.Gloss)
	}
}

func TestListMissingFile(t *testing.T) {
	h := newHistory(t)

	got, err := h.List(0)
	if err != nil {
		t.Fatalf("List on missing file: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("List on missing file returned %d entries", len(got))
	}
}
