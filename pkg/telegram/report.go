package telegram

import (
	"fmt"
	"strings"

	"github.com/kiransada/duebot/pkg/history"
)

// reportHeader leads the audit report sent to the log channel.
const reportHeader = "📊 *WhatsApp Sending Report*"

// maxMessageLen is the Telegram Bot API text limit per message.
const maxMessageLen = 4096

// BuildReport joins the header and per-row log lines into the audit
// report text.
func BuildReport(lines []string) string {
	return strings.Join(append([]string{reportHeader}, lines...), "\n")
}

// SplitMessage breaks text into chunks of at most limit runes, splitting
// on line boundaries where possible. A single line longer than the limit
// is hard-split.
func SplitMessage(text string, limit int) []string {
	if len(text) <= limit {
		return []string{text}
	}

	var chunks []string
	var cur strings.Builder
	for _, line := range strings.Split(text, "\n") {
		for len(line) > limit {
			if cur.Len() > 0 {
				chunks = append(chunks, cur.String())
				cur.Reset()
			}
			chunks = append(chunks, line[:limit])
			line = line[limit:]
		}
		need := len(line)
		if cur.Len() > 0 {
			need++ // joining newline
		}
		if cur.Len()+need > limit {
			chunks = append(chunks, cur.String())
			cur.Reset()
		}
		if cur.Len() > 0 {
			cur.WriteByte('\n')
		}
		cur.WriteString(line)
	}
	if cur.Len() > 0 {
		chunks = append(chunks, cur.String())
	}
	return chunks
}

// FormatHistory renders recent batches for the /history command.
func FormatHistory(batches []history.Batch) string {
	if len(batches) == 0 {
		return "No batches processed yet."
	}
	lines := make([]string, 0, len(batches)+1)
	lines = append(lines, "🗂 Recent batches:")
	for _, b := range batches {
		lines = append(lines, fmt.Sprintf("📦 %s | %s | Sent: %d | Skipped: %d",
			b.CreatedAt.Format("2006-01-02 15:04"), b.FileName, b.Sent, b.Skipped))
	}
	return strings.Join(lines, "\n")
}
