package charge

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// =============================================================================
// CURRENCY - Cent-precision rounding and display formatting
// =============================================================================

// Round2 rounds a monetary value to cent precision.
//
// Rounding rule: half away from zero (decimal.Round semantics). This is the
// documented choice for the whole system; every derived value and every
// coerced form input goes through it so boundary cases like .005 behave
// identically everywhere.
func Round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}

// Outstanding computes the unpaid balance round2(chargeAmount - paidAmount).
// Computed at read time, never stored; doing the subtraction through decimal
// keeps repeated renders from accumulating float drift.
func Outstanding(chargeAmount, paidAmount float64) float64 {
	f, _ := decimal.NewFromFloat(chargeAmount).
		Sub(decimal.NewFromFloat(paidAmount)).
		Round(2).
		Float64()
	return f
}

// FormatAmount renders a monetary value in the school's fixed locale
// convention: Malaysian Ringgit, two fixed fractional digits, thousands
// separators. Example: FormatAmount(1234.5) == "RM1,234.50".
func FormatAmount(amount float64) string {
	d := decimal.NewFromFloat(amount).Round(2)

	neg := d.IsNegative()
	if neg {
		d = d.Neg()
	}

	s := d.StringFixed(2)
	whole, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteString("RM")
	b.WriteString(groupThousands(whole))
	b.WriteByte('.')
	b.WriteString(frac)
	return b.String()
}

func groupThousands(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	var b strings.Builder
	head := n % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// HasCentPrecision reports whether v is an exact multiple of 0.01. This is
// the precision check validation uses; it is an exact decimal test, not a
// float-equality comparison. NaN and the infinities are not multiples of
// anything and report false rather than panicking inside decimal.
func HasCentPrecision(v float64) bool {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return false
	}
	d := decimal.NewFromFloat(v)
	return d.Equal(d.Round(2))
}
