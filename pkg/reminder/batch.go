package reminder

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// Sink delivers a rendered message to one mobile number. Implementations
// perform the actual gateway call; the runner never retries.
type Sink interface {
	Send(ctx context.Context, mobile, message string) error
}

// Report is the result of one batch: counters plus one log line per input
// row, in input order.
type Report struct {
	Sent    int
	Skipped int
	Lines   []string
}

// Runner drives a batch of rows through Process and the delivery sink,
// strictly sequentially so counters and log lines match input row order.
type Runner struct {
	Rule Rule
	Sink Sink
	Log  zerolog.Logger
}

// Run processes every row in order and returns the batch report. A
// failure in one row, including a panic, is recorded as a skip and never
// aborts the remaining rows.
func (r *Runner) Run(ctx context.Context, rows []Row, link string) Report {
	var rep Report
	for i, row := range rows {
		line, sent := r.processOne(ctx, row, link)
		if sent {
			rep.Sent++
		} else {
			rep.Skipped++
		}
		rep.Lines = append(rep.Lines, line)
		r.Log.Debug().Int("row", i+1).Bool("sent", sent).Msg(line)
	}
	r.Log.Info().Int("rows", len(rows)).Int("sent", rep.Sent).Int("skipped", rep.Skipped).Msg("batch finished")
	return rep
}

func (r *Runner) processOne(ctx context.Context, row Row, link string) (line string, sent bool) {
	name := row[ColCustomer]
	if name == "" {
		name = DefaultCustomerName
	}

	// Fault isolation: one bad row never stops the batch.
	defer func() {
		if p := recover(); p != nil {
			line = skipLine(name, row[ColMobile], fmt.Sprint(p))
			sent = false
		}
	}()

	out := Process(row, r.Rule, link)
	if out.Skipped() {
		return skipLine(name, row[ColMobile], out.Reason), false
	}
	if err := r.Sink.Send(ctx, out.Mobile, out.Message); err != nil {
		return skipLine(name, out.Mobile, err.Error()), false
	}
	return fmt.Sprintf("✅ %s | %s | Sent", name, out.Mobile), true
}

func skipLine(name, mobile, reason string) string {
	return fmt.Sprintf("❌ %s | %s | Error: %s", name, mobile, reason)
}
