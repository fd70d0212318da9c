package reminder

// Process runs one row through the pipeline: phone normalization, numeric
// coercion, payable computation, eligibility gating and message
// rendering. It never fails past its boundary: bad numbers degrade to
// zero and a bad phone yields a skip outcome.
func Process(row Row, rule Rule, link string) Outcome {
	mobile, ok := CleanMobile(row[ColMobile])
	if !ok {
		return Outcome{Reason: ReasonInvalidMobile}
	}

	overdue := ToNum(row[ColOverdue])
	edi := ToNum(row[ColEDI])
	advance := ToNum(row[ColAdvance])

	if rule == RuleOverdueGated && overdue <= 0 {
		return Outcome{Reason: ReasonOverdueNotDue}
	}

	// Advance reduces the amount owed, by sign.
	payable := edi + overdue - advance
	if payable <= 0 {
		return Outcome{Reason: ReasonNothingPayable}
	}

	name := row[ColCustomer]
	if name == "" {
		name = DefaultCustomerName
	}
	loanNo := row[ColLoanNo]
	if loanNo == "" {
		loanNo = DefaultLoanNo
	}

	return Outcome{
		Mobile:  mobile,
		Message: BuildMessage(name, loanNo, advance, edi, overdue, payable, link),
	}
}
