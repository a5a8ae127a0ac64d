package utils

import (
	"math"
	"strconv"
	"strings"
)

// ToMinorUnits converts a major-unit amount (e.g. 29.99 NGN) to the payment
// gateway's minor unit (kobo). Rounded to the nearest integer so two-decimal
// prices convert exactly (29.99 -> 2999) and rapid fractional sums never
// under/overcharge by fractions of a unit.
func ToMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// FormatNGN formats an integer amount (in kobo) as a string like "₦12,500.00".
// Uses comma as thousands separator.
func FormatNGN(kobo int64) string {
	neg := kobo < 0
	if neg {
		kobo = -kobo
	}

	major := kobo / 100
	cents := kobo % 100

	s := strconv.FormatInt(major, 10)

	var b strings.Builder
	// Pre-allocate: digits + separators + sign + symbol + decimals
	b.Grow(len(s) + len(s)/3 + 8)
	if neg {
		b.WriteString("-₦")
	} else {
		b.WriteString("₦")
	}

	// Insert separators from the left.
	rem := len(s) % 3
	if rem == 0 {
		rem = 3
	}
	b.WriteString(s[:rem])
	for i := rem; i < len(s); i += 3 {
		b.WriteByte(',')
		b.WriteString(s[i : i+3])
	}

	b.WriteByte('.')
	if cents < 10 {
		b.WriteByte('0')
	}
	b.WriteString(strconv.FormatInt(cents, 10))

	return b.String()
}
