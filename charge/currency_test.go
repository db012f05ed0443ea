package charge_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/supersharkz/chargeboard/charge"
)

func TestRound2_HalfAwayFromZero(t *testing.T) {
	// The documented rounding rule: exactly half a cent rounds away from zero.
	assert.Equal(t, 10.01, charge.Round2(10.005))
	assert.Equal(t, 2.68, charge.Round2(2.675))
	assert.Equal(t, -10.01, charge.Round2(-10.005))
	assert.Equal(t, 10.0, charge.Round2(10.004))
	assert.Equal(t, 120.0, charge.Round2(120))
}

func TestOutstanding(t *testing.T) {
	assert.Equal(t, 100.0, charge.Outstanding(150, 50))
	assert.Equal(t, 0.0, charge.Outstanding(80.5, 80.5))
	assert.Equal(t, 120.0, charge.Outstanding(120, 0))

	// Differences that would drift under repeated float subtraction stay
	// exact through decimal math.
	assert.Equal(t, 0.1, charge.Outstanding(10.2, 10.1))
	assert.Equal(t, 0.05, charge.Outstanding(100.05, 100))
}

func TestOutstanding_NonNegativeUnderInvariant(t *testing.T) {
	// Once paid <= charge is enforced at validation, outstanding is >= 0.
	cases := [][2]float64{{120, 0}, {80.5, 80.5}, {150, 50}, {0.01, 0}}
	for _, c := range cases {
		assert.GreaterOrEqual(t, charge.Outstanding(c[0], c[1]), 0.0)
	}
}

func TestCharge_FullyPaid(t *testing.T) {
	paid := charge.Charge{ChargeAmount: 80.5, PaidAmount: 80.5}
	owing := charge.Charge{ChargeAmount: 150, PaidAmount: 50}

	assert.True(t, paid.FullyPaid())
	assert.Equal(t, 0.0, paid.Outstanding())
	assert.False(t, owing.FullyPaid())
	assert.Equal(t, 100.0, owing.Outstanding())
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "RM120.00", charge.FormatAmount(120))
	assert.Equal(t, "RM80.50", charge.FormatAmount(80.5))
	assert.Equal(t, "RM1,234.50", charge.FormatAmount(1234.5))
	assert.Equal(t, "RM1,234,567.89", charge.FormatAmount(1234567.89))
	assert.Equal(t, "RM0.00", charge.FormatAmount(0))
	assert.Equal(t, "-RM45.50", charge.FormatAmount(-45.5))
}

func TestHasCentPrecision(t *testing.T) {
	assert.True(t, charge.HasCentPrecision(10))
	assert.True(t, charge.HasCentPrecision(10.1))
	assert.True(t, charge.HasCentPrecision(10.01))
	assert.False(t, charge.HasCentPrecision(10.005))
	assert.False(t, charge.HasCentPrecision(0.001))
}

func TestHasCentPrecision_NonFiniteIsFalse(t *testing.T) {
	assert.False(t, charge.HasCentPrecision(math.NaN()))
	assert.False(t, charge.HasCentPrecision(math.Inf(1)))
	assert.False(t, charge.HasCentPrecision(math.Inf(-1)))
}
