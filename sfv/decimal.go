package sfv

import (
	"math/big"
	"strconv"
	"strings"
)

// maxDecimalIntegerDigits is the maximum number of digits allowed before the
// decimal point of a Decimal's integer component (spec.md §3, §4.1).
const maxDecimalIntegerDigits = 12

// maxIntegerDigits is the maximum number of digits an Integer's magnitude may
// have (|magnitude| <= 999_999_999_999_999, 15 nines).
const maxIntegerDigits = 15

// Decimal is an arbitrary-precision decimal value. It is never backed by a
// float64: grammar-accurate half-even rounding to three fractional digits
// requires exact rational arithmetic, not binary floating point.
type Decimal struct {
	rat *big.Rat
}

// NewDecimal builds a Decimal from a numerator/denominator pair, equivalent
// to constructing it from float-free arithmetic (e.g. millicents as an
// integer over 1000).
func NewDecimal(num, den int64) Decimal {
	return Decimal{rat: big.NewRat(num, den)}
}

// DecimalFromString parses a plain decimal literal such as "4.5" or "-12"
// into a Decimal without going through float64.
func DecimalFromString(s string) (Decimal, error) {
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return Decimal{}, newError(WrongNumber, 0, "invalid decimal literal %q", s)
	}
	return Decimal{rat: r}, nil
}

// DecimalFromInt builds an exact integral Decimal.
func DecimalFromInt(i int64) Decimal {
	return Decimal{rat: new(big.Rat).SetInt64(i)}
}

var thousand = big.NewInt(1000)

// roundedThousandths returns the decimal's value rounded half-even to three
// fractional digits, represented as (sign, integerPart, thousandths) where
// thousandths is in [0, 999].
func (d Decimal) roundedThousandths() (neg bool, intPart *big.Int, thousandths int64) {
	r := d.rat
	if r == nil {
		r = new(big.Rat)
	}
	neg = r.Sign() < 0
	abs := new(big.Rat).Abs(r)

	// q = floor(abs * 1000), rem = exact remainder, used below to decide
	// the half-even tie without any float noise.
	q, rem := new(big.Int).QuoRem(new(big.Int).Mul(abs.Num(), thousand), abs.Denom(), new(big.Int))

	twiceRem := new(big.Int).Mul(rem, big.NewInt(2))
	cmp := twiceRem.Cmp(abs.Denom())
	if cmp > 0 || (cmp == 0 && q.Bit(0) == 1) {
		q.Add(q, big.NewInt(1))
	}

	intP, th := new(big.Int).QuoRem(q, thousand, new(big.Int))
	return neg, intP, th.Int64()
}

// magnitudeOK reports whether the decimal's rounded integer part fits within
// maxDecimalIntegerDigits digits.
func (d Decimal) magnitudeOK() bool {
	_, intPart, _ := d.roundedThousandths()
	return len(intPart.String()) <= maxDecimalIntegerDigits
}

// String renders the canonical serialization: half-even rounded to <= 3
// fractional digits, trailing zeros trimmed, but always at least one
// fractional digit (an exact integer value still emits ".0").
func (d Decimal) String() string {
	neg, intPart, th := d.roundedThousandths()
	var sb strings.Builder
	if neg && !(intPart.Sign() == 0 && th == 0) {
		sb.WriteByte('-')
	}
	sb.WriteString(intPart.String())
	sb.WriteByte('.')
	frac := strconv.FormatInt(th, 10)
	for len(frac) < 3 {
		frac = "0" + frac
	}
	frac = strings.TrimRight(frac, "0")
	if frac == "" {
		frac = "0"
	}
	sb.WriteString(frac)
	return sb.String()
}

// Equal compares two Decimals by their canonical (rounded, serialized) form,
// so that values built through different arithmetic paths that round to the
// same wire representation compare equal.
func (d Decimal) Equal(other Decimal) bool {
	return d.String() == other.String()
}

// Rat exposes the underlying rational value for callers doing further
// arithmetic; the returned value must not be mutated.
func (d Decimal) Rat() *big.Rat {
	if d.rat == nil {
		return new(big.Rat)
	}
	return d.rat
}
