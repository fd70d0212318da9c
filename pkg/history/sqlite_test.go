package history

import (
	"path/filepath"
	"testing"
	"time"
)

func TestSaveAndRecent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test_duebot.db")

	s, err := NewSQLite(dbPath)
	if err != nil {
		t.Fatalf("NewSQLite failed: %v", err)
	}
	defer s.Close()

	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	batches := []Batch{
		{ID: "b1", FileName: "june.xlsx", Sent: 10, Skipped: 2, Report: "report one", CreatedAt: base},
		{ID: "b2", FileName: "july.xlsx", Sent: 5, Skipped: 0, Report: "report two", CreatedAt: base.Add(time.Hour)},
		{ID: "b3", FileName: "aug.xlsx", Sent: 1, Skipped: 9, Report: "report three", CreatedAt: base.Add(2 * time.Hour)},
	}
	for _, b := range batches {
		if err := s.SaveBatch(b); err != nil {
			t.Fatalf("SaveBatch(%s) failed: %v", b.ID, err)
		}
	}

	got, err := s.RecentBatches(2)
	if err != nil {
		t.Fatalf("RecentBatches failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d batches, want 2", len(got))
	}
	// Most recent first.
	if got[0].ID != "b3" || got[1].ID != "b2" {
		t.Errorf("order = %s, %s; want b3, b2", got[0].ID, got[1].ID)
	}
	if got[0].Sent != 1 || got[0].Skipped != 9 {
		t.Errorf("counters = %d/%d", got[0].Sent, got[0].Skipped)
	}
	if !got[0].CreatedAt.Equal(base.Add(2 * time.Hour)) {
		t.Errorf("created at = %v", got[0].CreatedAt)
	}
}

func TestSaveBatchUpsert(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test_duebot.db")

	s, err := NewSQLite(dbPath)
	if err != nil {
		t.Fatalf("NewSQLite failed: %v", err)
	}
	defer s.Close()

	b := Batch{ID: "b1", FileName: "a.xlsx", Sent: 1, CreatedAt: time.Now()}
	if err := s.SaveBatch(b); err != nil {
		t.Fatalf("SaveBatch failed: %v", err)
	}
	b.Sent = 2
	if err := s.SaveBatch(b); err != nil {
		t.Fatalf("SaveBatch replace failed: %v", err)
	}

	got, err := s.RecentBatches(10)
	if err != nil {
		t.Fatalf("RecentBatches failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d batches, want 1", len(got))
	}
	if got[0].Sent != 2 {
		t.Errorf("sent = %d, want 2", got[0].Sent)
	}
}
