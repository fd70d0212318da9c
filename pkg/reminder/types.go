// Package reminder implements the row validation and amount computation
// pipeline for collection reminder batches.
package reminder

// Row is one decoded spreadsheet row: a mapping from normalized column
// name (lower-cased, NBSP replaced by space, trimmed) to raw cell text.
// A missing column reads as the empty string.
type Row map[string]string

// Column names the pipeline reads from a Row.
const (
	ColMobile   = "mobile no"
	ColOverdue  = "over due"
	ColEDI      = "edi amount"
	ColAdvance  = "advance"
	ColCustomer = "customer name"
	ColLoanNo   = "loan a/c no"
)

// Rule selects the eligibility gating behavior. Two variants exist in the
// field and must stay selectable; neither is a superset of the other.
type Rule string

const (
	// RuleOverdueGated skips rows whose overdue amount is not positive,
	// then additionally skips rows whose payable amount is not positive.
	RuleOverdueGated Rule = "overdue-gated"
	// RulePayableOnly skips rows solely on a non-positive payable amount.
	RulePayableOnly Rule = "payable-only"
)

// ParseRule validates a rule name from configuration.
func ParseRule(s string) (Rule, bool) {
	switch Rule(s) {
	case RuleOverdueGated, RulePayableOnly:
		return Rule(s), true
	}
	return "", false
}

// Outcome is the per-row decision. A non-empty Reason means the row was
// skipped; otherwise Mobile and Message are ready for delivery.
type Outcome struct {
	Mobile  string
	Message string
	Reason  string
}

// Skipped reports whether the row was excluded from sending.
func (o Outcome) Skipped() bool { return o.Reason != "" }

// Skip reasons produced by Process. Delivery and recovered panics add
// free-form reasons on top of these.
const (
	ReasonInvalidMobile  = "invalid mobile"
	ReasonOverdueNotDue  = "overdue not positive"
	ReasonNothingPayable = "nothing payable"
)
