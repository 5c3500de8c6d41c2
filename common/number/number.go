package number

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// RoundingMode selects how excess digits are removed
type RoundingMode int

// rounding modes
const (
	Round RoundingMode = iota
	Truncate
)

// CountingMode selects how the precision argument is interpreted
type CountingMode int

// counting modes
const (
	DecimalPlaces CountingMode = iota
	SignificantDigits
	TickSize
)

// PaddingMode selects the treatment of trailing zeros
type PaddingMode int

// padding modes
const (
	NoPadding PaddingMode = iota
	PadWithZero
)

var (
	bigOne = big.NewInt(1)
	bigTen = big.NewInt(10)
	ratOne = big.NewRat(1, 1)
	ratTen = big.NewRat(10, 1)
)

// DecimalToPrecision formats the decimal string to the requested precision.
// For DecimalPlaces and SignificantDigits the precision is an integer string
// and may be negative for DecimalPlaces. For TickSize the precision is the
// tick expressed as a decimal string.
func DecimalToPrecision(value string, rounding RoundingMode, precision string, counting CountingMode, padding PaddingMode) (string, error) {
	v, ok := new(big.Rat).SetString(value)
	if !ok {
		return "", errors.WithStack(ErrInvalidNumberFormat)
	}
	switch counting {
	case DecimalPlaces:
		p, err := strconv.Atoi(precision)
		if err != nil {
			return "", errors.WithStack(ErrInvalidPrecision)
		}
		return formatScaled(scaleRound(v, p, rounding), p, padding), nil
	case SignificantDigits:
		p, err := strconv.Atoi(precision)
		if err != nil || p <= 0 {
			return "", errors.WithStack(ErrInvalidPrecision)
		}
		if v.Sign() == 0 {
			return "0", nil
		}
		shift := p - 1 - ilog10(v)
		out := formatScaled(scaleRound(v, shift, rounding), shift, NoPadding)
		if padding == PadWithZero {
			out = padSignificant(out, p)
		}
		return out, nil
	case TickSize:
		tick, ok := new(big.Rat).SetString(precision)
		if !ok || tick.Sign() <= 0 {
			return "", errors.WithStack(ErrInvalidPrecision)
		}
		q := new(big.Rat).Quo(v, tick)
		n := scaleRound(q, 0, rounding)
		res := new(big.Rat).Mul(new(big.Rat).SetInt(n), tick)
		scale := decimalsOf(precision)
		return formatScaled(scaleRound(res, scale, Round), scale, padding), nil
	default:
		return "", errors.WithStack(ErrInvalidPrecision)
	}
}

// NumberToString formats the float without scientific notation.
func NumberToString(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// scaleRound returns round(v * 10^p) as an integer using the rounding mode.
// Round is half away from zero, Truncate is toward zero.
func scaleRound(v *big.Rat, p int, rounding RoundingMode) *big.Int {
	r := new(big.Rat).Set(v)
	pow := new(big.Rat).SetInt(pow10(p))
	if p >= 0 {
		r.Mul(r, pow)
	} else {
		r.Quo(r, pow)
	}
	q, rem := new(big.Int).QuoRem(r.Num(), r.Denom(), new(big.Int))
	if rem.Sign() == 0 || rounding == Truncate {
		return q
	}
	rem.Abs(rem)
	rem.Lsh(rem, 1)
	if rem.Cmp(r.Denom()) >= 0 {
		if r.Num().Sign() < 0 {
			q.Sub(q, bigOne)
		} else {
			q.Add(q, bigOne)
		}
	}
	return q
}

// formatScaled renders n * 10^-p as a plain decimal string.
func formatScaled(n *big.Int, p int, padding PaddingMode) string {
	neg := n.Sign() < 0
	digits := new(big.Int).Abs(n).String()
	var intPart, fracPart string
	if p <= 0 {
		intPart = digits + strings.Repeat("0", -p)
	} else {
		if len(digits) <= p {
			digits = strings.Repeat("0", p-len(digits)+1) + digits
		}
		intPart = digits[:len(digits)-p]
		fracPart = digits[len(digits)-p:]
	}
	if padding == NoPadding {
		fracPart = strings.TrimRight(fracPart, "0")
	}
	out := intPart
	if len(fracPart) > 0 {
		out += "." + fracPart
	}
	if neg && strings.Trim(out, "0.") != "" {
		out = "-" + out
	}
	return out
}

// padSignificant appends fractional zeros until the string carries p
// significant digits. Integer values that already carry more digits are
// returned untouched.
func padSignificant(s string, p int) string {
	digits := strings.TrimLeft(strings.Replace(strings.TrimPrefix(s, "-"), ".", "", 1), "0")
	missing := p - len(digits)
	if missing <= 0 {
		return s
	}
	if !strings.Contains(s, ".") {
		if len(digits) > 0 {
			return s
		}
		s += "."
	}
	return s + strings.Repeat("0", missing)
}

func pow10(p int) *big.Int {
	if p < 0 {
		p = -p
	}
	return new(big.Int).Exp(bigTen, big.NewInt(int64(p)), nil)
}

// ilog10 returns floor(log10(|v|)) for a non-zero rational.
func ilog10(v *big.Rat) int {
	a := new(big.Rat).Abs(v)
	if a.Cmp(ratOne) >= 0 {
		q := new(big.Int).Quo(a.Num(), a.Denom())
		return len(q.String()) - 1
	}
	exp := 0
	for a.Cmp(ratOne) < 0 {
		a.Mul(a, ratTen)
		exp--
	}
	return exp
}

// decimalsOf returns the number of digits after the decimal point of the
// plain decimal string.
func decimalsOf(s string) int {
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return len(s) - i - 1
	}
	return 0
}
