package reminder

import "strings"

// CleanMobile normalizes a raw mobile cell to a bare 10-digit Indian
// mobile number. Every non-digit character is stripped; a 12-digit string
// with the "91" country prefix is reduced to its last 10 digits. The
// result is valid only if exactly 10 digits remain and the first digit is
// 6, 7, 8 or 9.
func CleanMobile(raw string) (string, bool) {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	s := b.String()
	if strings.HasPrefix(s, "91") && len(s) == 12 {
		s = s[2:]
	}
	if len(s) != 10 {
		return "", false
	}
	switch s[0] {
	case '6', '7', '8', '9':
		return s, true
	}
	return "", false
}
