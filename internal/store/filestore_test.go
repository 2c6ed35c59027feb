package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	apperrors "github.com/mennaheldaly/Daytrader/internal/errors"
)

type doc struct {
	Symbols []string `json:"symbols"`
	Count   int      `json:"count"`
}

func newTestStore(t *testing.T, username string) *FileStore {
	t.Helper()
	s, err := NewFileStore(t.TempDir(), username, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	return s
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := newTestStore(t, "menna")

	saved := doc{Symbols: []string{"AAPL", "TSLA"}, Count: 2}
	s.Save(DocTodayStocks, saved)

	var loaded doc
	if !s.Load(DocTodayStocks, &loaded) {
		t.Fatal("Load returned false for a saved document")
	}
	if loaded.Count != 2 || len(loaded.Symbols) != 2 || loaded.Symbols[0] != "AAPL" {
		t.Errorf("loaded %+v, want %+v", loaded, saved)
	}
}

func TestLoadMissingFileLeavesDefault(t *testing.T) {
	s := newTestStore(t, "menna")

	loaded := doc{Symbols: []string{"default"}, Count: 1}
	if s.Load(DocTradingPlan, &loaded) {
		t.Fatal("Load returned true for a missing document")
	}
	if loaded.Count != 1 || len(loaded.Symbols) != 1 {
		t.Errorf("default value modified on missing file: %+v", loaded)
	}
}

func TestLoadCorruptFilePreservesDefault(t *testing.T) {
	s := newTestStore(t, "menna")

	// Truncated JSON that a direct decode would half-fill before failing.
	path := s.Path(DocReflections)
	if err := os.WriteFile(path, []byte(`{"count": `), 0644); err != nil {
		t.Fatal(err)
	}

	loaded := doc{Symbols: []string{"default"}, Count: 42}
	if s.Load(DocReflections, &loaded) {
		t.Fatal("Load returned true for a corrupt document")
	}
	if loaded.Count != 42 || len(loaded.Symbols) != 1 || loaded.Symbols[0] != "default" {
		t.Errorf("corrupt load destroyed the caller default: %+v", loaded)
	}
}

func TestLoadPartiallyValidCorruptFilePreservesDefault(t *testing.T) {
	s := newTestStore(t, "menna")

	// The count field decodes fine before the symbols array breaks; none of
	// it may reach the caller.
	path := s.Path(DocReflections)
	if err := os.WriteFile(path, []byte(`{"count": 5, "symbols": [`), 0644); err != nil {
		t.Fatal(err)
	}

	loaded := doc{Symbols: []string{"default"}, Count: 42}
	if s.Load(DocReflections, &loaded) {
		t.Fatal("Load returned true for a corrupt document")
	}
	if loaded.Count != 42 || len(loaded.Symbols) != 1 {
		t.Errorf("partial decode leaked into the caller default: %+v", loaded)
	}
}

func TestNewFileStoreReportsStorageError(t *testing.T) {
	// A regular file where the data directory should go makes MkdirAll fail.
	parent := t.TempDir()
	blocked := filepath.Join(parent, "data")
	if err := os.WriteFile(blocked, []byte("not a directory"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := NewFileStore(blocked, "", zerolog.Nop())
	var storageErr *apperrors.StorageError
	if !apperrors.As(err, &storageErr) {
		t.Fatalf("error = %v, want StorageError", err)
	}
	if storageErr.Op != "mkdir" {
		t.Errorf("Op = %q, want mkdir", storageErr.Op)
	}
}

func TestPathUsernamePrefix(t *testing.T) {
	s := newTestStore(t, "menna")
	if got := filepath.Base(s.Path(DocTodayStocks)); got != "menna_today_stocks.json" {
		t.Errorf("Path = %q, want menna_today_stocks.json", got)
	}

	single := newTestStore(t, "")
	if got := filepath.Base(single.Path(DocTodayStocks)); got != "today_stocks.json" {
		t.Errorf("single-user Path = %q, want today_stocks.json", got)
	}
}

func TestSaveLeavesNoTempFile(t *testing.T) {
	s := newTestStore(t, "")
	s.Save(DocPermanentStocks, doc{Count: 1})

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ".tmp" {
			t.Errorf("temp file left behind: %s", e.Name())
		}
	}
}

func TestSaveOverwrites(t *testing.T) {
	s := newTestStore(t, "")
	s.Save(DocStockPlans, doc{Count: 1})
	s.Save(DocStockPlans, doc{Count: 2})

	var loaded doc
	if !s.Load(DocStockPlans, &loaded) {
		t.Fatal("Load returned false")
	}
	if loaded.Count != 2 {
		t.Errorf("Count = %d, want 2", loaded.Count)
	}
}
