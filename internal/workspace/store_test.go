package workspace

import (
	"path/filepath"
	"testing"
	"time"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	s, err := Open(filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("opening test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestActiveUnset(t *testing.T) {
	s := testStore(t)
	ws, err := s.Active()
	if err != nil {
		t.Fatalf("Active: %v", err)
	}
	if ws != nil {
		t.Errorf("expected nil workspace, got %+v", ws)
	}
}

func TestSetAndGetActive(t *testing.T) {
	s := testStore(t)
	if err := s.SetActive("research"); err != nil {
		t.Fatalf("SetActive: %v", err)
	}
	ws, err := s.Active()
	if err != nil {
		t.Fatalf("Active: %v", err)
	}
	if ws == nil || ws.Name != "research" {
		t.Errorf("expected research, got %+v", ws)
	}

	// Re-selecting replaces, not appends
	if err := s.SetActive("archive"); err != nil {
		t.Fatalf("SetActive again: %v", err)
	}
	ws, _ = s.Active()
	if ws == nil || ws.Name != "archive" {
		t.Errorf("expected archive after reselect, got %+v", ws)
	}
}

func TestClearActive(t *testing.T) {
	s := testStore(t)
	if err := s.SetActive("research"); err != nil {
		t.Fatalf("SetActive: %v", err)
	}
	if err := s.ClearActive(); err != nil {
		t.Fatalf("ClearActive: %v", err)
	}
	ws, err := s.Active()
	if err != nil {
		t.Fatalf("Active: %v", err)
	}
	if ws != nil {
		t.Errorf("expected nil after clear, got %+v", ws)
	}
}

func TestRecentSearches(t *testing.T) {
	s := testStore(t)
	for _, q := range []string{"climate", "elections", "ai"} {
		if err := s.RecordSearch(q); err != nil {
			t.Fatalf("RecordSearch(%q): %v", q, err)
		}
		time.Sleep(5 * time.Millisecond) // distinct timestamps
	}

	got, err := s.RecentSearches(5)
	if err != nil {
		t.Fatalf("RecentSearches: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 queries, got %d", len(got))
	}
	if got[0] != "ai" {
		t.Errorf("expected most recent first, got %v", got)
	}
}

func TestRecordSearchDedup(t *testing.T) {
	s := testStore(t)
	s.RecordSearch("climate")
	time.Sleep(5 * time.Millisecond)
	s.RecordSearch("elections")
	time.Sleep(5 * time.Millisecond)
	s.RecordSearch("climate") // bump, not duplicate

	got, err := s.RecentSearches(5)
	if err != nil {
		t.Fatalf("RecentSearches: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 queries after dedup, got %d: %v", len(got), got)
	}
	if got[0] != "climate" {
		t.Errorf("expected bumped query first, got %v", got)
	}
}

func TestRecentSearchesLimit(t *testing.T) {
	s := testStore(t)
	for _, q := range []string{"a", "b", "c", "d"} {
		s.RecordSearch(q)
		time.Sleep(2 * time.Millisecond)
	}
	got, err := s.RecentSearches(2)
	if err != nil {
		t.Fatalf("RecentSearches: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("expected limit of 2, got %d", len(got))
	}
}
