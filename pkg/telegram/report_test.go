package telegram

import (
	"strings"
	"testing"
	"time"

	"github.com/kiransada/duebot/pkg/history"
)

func TestBuildReport(t *testing.T) {
	got := BuildReport([]string{"✅ Ravi | 9876543210 | Sent", "❌ Siva | 12345 | Error: invalid mobile"})
	want := reportHeader + "\n✅ Ravi | 9876543210 | Sent\n❌ Siva | 12345 | Error: invalid mobile"
	if got != want {
		t.Errorf("BuildReport = %q, want %q", got, want)
	}
}

func TestSplitMessageShort(t *testing.T) {
	chunks := SplitMessage("hello", 100)
	if len(chunks) != 1 || chunks[0] != "hello" {
		t.Errorf("chunks = %v", chunks)
	}
}

func TestSplitMessageOnLineBoundaries(t *testing.T) {
	lines := make([]string, 50)
	for i := range lines {
		lines[i] = strings.Repeat("x", 20)
	}
	text := strings.Join(lines, "\n")

	chunks := SplitMessage(text, 100)
	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}
	var rejoined []string
	for _, c := range chunks {
		if len(c) > 100 {
			t.Errorf("chunk over limit: %d bytes", len(c))
		}
		rejoined = append(rejoined, strings.Split(c, "\n")...)
	}
	if len(rejoined) != 50 {
		t.Errorf("lines after split = %d, want 50", len(rejoined))
	}
}

func TestSplitMessageLongLine(t *testing.T) {
	text := strings.Repeat("y", 250)
	chunks := SplitMessage(text, 100)
	if len(chunks) != 3 {
		t.Fatalf("got %d chunks, want 3", len(chunks))
	}
	if strings.Join(chunks, "") != text {
		t.Error("hard-split chunks do not reassemble to input")
	}
}

func TestFormatHistory(t *testing.T) {
	if got := FormatHistory(nil); got != "No batches processed yet." {
		t.Errorf("empty history = %q", got)
	}

	batches := []history.Batch{
		{FileName: "june.xlsx", Sent: 3, Skipped: 1, CreatedAt: time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC)},
	}
	got := FormatHistory(batches)
	if !strings.Contains(got, "june.xlsx") || !strings.Contains(got, "Sent: 3") {
		t.Errorf("FormatHistory = %q", got)
	}
	if !strings.Contains(got, "2025-06-01 10:30") {
		t.Errorf("missing timestamp: %q", got)
	}
}
