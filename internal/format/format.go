// Package format holds the presentation helpers shared by the panel
// views. Both functions are pure.
package format

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

const currencyCode = "KES"

// Currency renders an amount as a grouped, fractionless KES string.
// Zero renders as the fixed zero string.
func Currency(amount float64) string {
	if amount == 0 {
		return currencyCode + " 0"
	}

	return currencyCode + " " + groupDigits(int64(math.Round(amount)))
}

func groupDigits(n int64) string {
	negative := n < 0
	if negative {
		n = -n
	}

	digits := strconv.FormatInt(n, 10)

	var out []byte
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, d)
	}

	if negative {
		return "-" + string(out)
	}
	return string(out)
}

// RelTime renders ts relative to now: "just now", "Nm ago", "Nh ago",
// "yesterday", "Nd ago", then an absolute date from a week out.
func RelTime(now, ts time.Time) string {
	d := now.Sub(ts)

	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	}

	days := int(d.Hours() / 24)
	switch {
	case days == 1:
		return "yesterday"
	case days < 7:
		return fmt.Sprintf("%dd ago", days)
	}

	return ts.Format("Jan 2, 2006")
}
