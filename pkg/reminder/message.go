package reminder

import "fmt"

// DefaultCustomerName substitutes for an absent customer name.
const DefaultCustomerName = "Customer"

// DefaultLoanNo substitutes for an absent loan account number.
const DefaultLoanNo = "—"

// messageTemplate is the fixed reminder text. The wording is a business
// asset and is not configurable at runtime.
const messageTemplate = "👋 ప్రియమైన %s గారు,\n" +
	"మీ Veritas Finance లో ఉన్న %s లోన్ నంబరుకు పెండింగ్ అమౌంట్ వివరాలు:\n\n" +
	"💸 అడ్వాన్స్ మొత్తం: ₹%s\n" +
	"📌 ఈడీ మొత్తం: ₹%s\n" +
	"🔴 ఓవర్‌డ్యూ మొత్తం: ₹%s\n" +
	"✅ చెల్లించవలసిన మొత్తం: ₹%s\n\n" +
	"⚠️ దయచేసి వెంటనే చెల్లించండి, లేకపోతే పెనాల్టీలు మరియు CIBIL స్కోర్‌పై ప్రభావం పడుతుంది.\n" +
	"🔗 చెల్లించడానికి లింక్: %s"

// BuildMessage renders the reminder for one customer. Amounts are
// formatted with FormatAmount; link is the payment link appended on the
// last line.
func BuildMessage(name, loanNo string, advance, edi, overdue, payable float64, link string) string {
	return fmt.Sprintf(messageTemplate,
		name, loanNo,
		FormatAmount(advance),
		FormatAmount(edi),
		FormatAmount(overdue),
		FormatAmount(payable),
		link,
	)
}
