package kernel

import (
	"fmt"
	"strings"

	"restaurant/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Money is an immutable currency amount backed by integer cents.
// All fee arithmetic in the domain happens on Money so results never
// accumulate binary floating-point drift. Amounts are always non-negative;
// the domain has no concept of a negative fee or subtotal.
//
// The zero value is a valid amount of 0.00, so Money carries no constructor
// guard. Use MoneyFromString for untrusted boundary input and
// NewMoneyFromCents when the amount is already in minor units.
//
// Example:
//
//	fee, err := kernel.MoneyFromString("3,99") // comma separator accepted
//	if err != nil {
//	    // handle invalid amount
//	}
//	fmt.Println(fee) // Output: 3.99
type Money struct {
	cents int64
}

// NewMoneyFromCents creates a Money from an amount in minor units (cents).
// Returns an error if cents is negative.
func NewMoneyFromCents(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"money",
			fmt.Errorf("%d cents is negative", cents),
		)
	}
	return Money{cents: cents}, nil
}

// MoneyFromString parses a decimal amount from untrusted boundary input.
// Both "." and "," are accepted as the decimal separator and the value is
// normalized to cents, rounding half away from zero beyond two decimals.
// Negative amounts and non-numeric input are rejected.
//
// Example:
//
//	kernel.MoneyFromString("12.50") // 12.50
//	kernel.MoneyFromString("12,5")  // 12.50
//	kernel.MoneyFromString("-1")    // error
func MoneyFromString(s string) (Money, error) {
	normalized := strings.TrimSpace(s)
	if strings.Count(normalized, ",") == 1 && !strings.Contains(normalized, ".") {
		normalized = strings.Replace(normalized, ",", ".", 1)
	}

	d, err := decimal.NewFromString(normalized)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money", err)
	}
	if d.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"money",
			fmt.Errorf("%s is negative", d.String()),
		)
	}

	return Money{cents: d.Shift(2).Round(0).IntPart()}, nil
}

// Cents returns the amount in minor units.
func (m Money) Cents() int64 {
	return m.cents
}

// IsZero reports whether the amount is exactly 0.00.
func (m Money) IsZero() bool {
	return m.cents == 0
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// MulFloat multiplies the amount by a non-negative factor (e.g. a distance in
// kilometres), rounding half away from zero to whole cents. The factor is
// converted through decimal arithmetic so per-unit rates stay exact.
func (m Money) MulFloat(factor float64) Money {
	result := decimal.NewFromInt(m.cents).
		Mul(decimal.NewFromFloat(factor)).
		Round(0)
	return Money{cents: result.IntPart()}
}

// GreaterOrEqual reports whether m >= other.
func (m Money) GreaterOrEqual(other Money) bool {
	return m.cents >= other.cents
}

// LessThan reports whether m < other.
func (m Money) LessThan(other Money) bool {
	return m.cents < other.cents
}

// IsEqual compares two amounts for equality.
func (m Money) IsEqual(other Money) bool {
	return m.cents == other.cents
}

// String returns the canonical decimal representation with two fraction
// digits, e.g. "3.99". This is the stable wire format for fee breakdowns.
func (m Money) String() string {
	return decimal.NewFromInt(m.cents).Shift(-2).StringFixed(2)
}

// MarshalJSON encodes the amount as a quoted decimal string, e.g. "3.99".
// Amounts are never encoded as JSON numbers to avoid float coercion in
// consumers.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.String() + `"`), nil
}

// UnmarshalJSON decodes a quoted decimal string through MoneyFromString.
func (m *Money) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	parsed, err := MoneyFromString(raw)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
