package matching

import "strings"

// parseSalaryAmounts extracts every numeral run from a free-text salary
// field. The parse is a tagged variant: ok=false means the text carried
// no usable numerals, so the caller's neutral default stays visible at
// the boundary instead of being buried in arithmetic.
//
// Thousands separators are stripped before scanning. A run of three or
// fewer digits is read as thousands ("65" means 65,000); longer runs
// are taken literally.
func parseSalaryAmounts(s string) ([]int, bool) {
	s = strings.ReplaceAll(s, ",", "")

	amounts := make([]int, 0, 2)
	run := 0
	runLen := 0
	flush := func() {
		if runLen == 0 {
			return
		}
		if runLen <= 3 {
			run *= 1000
		}
		amounts = append(amounts, run)
		run, runLen = 0, 0
	}

	for _, r := range s {
		if r >= '0' && r <= '9' {
			// Overflow is not a practical concern for salary figures,
			// but cap the run length to keep the arithmetic sane.
			if runLen < 12 {
				run = run*10 + int(r-'0')
				runLen++
			}
			continue
		}
		flush()
	}
	flush()

	if len(amounts) == 0 {
		return nil, false
	}
	return amounts, true
}
