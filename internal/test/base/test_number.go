package base

import (
	"github.com/MarcelRaschke/ccxt/common/number"
)

// checkNumber exercises the precision formatting and the fixed point
// arithmetic
func checkNumber() error {
	vectors := []struct {
		value     string
		rounding  number.RoundingMode
		precision string
		counting  number.CountingMode
		padding   number.PaddingMode
		want      string
	}{
		{"12.3456000", number.Truncate, "100", number.DecimalPlaces, number.NoPadding, "12.3456"},
		{"12.3456", number.Truncate, "4", number.DecimalPlaces, number.NoPadding, "12.3456"},
		{"12.3456", number.Truncate, "3", number.DecimalPlaces, number.NoPadding, "12.345"},
		{"12.3456", number.Truncate, "2", number.DecimalPlaces, number.NoPadding, "12.34"},
		{"12.3456", number.Truncate, "0", number.DecimalPlaces, number.NoPadding, "12"},
		{"0.0000001", number.Truncate, "8", number.DecimalPlaces, number.NoPadding, "0.0000001"},
		{"12.3456", number.Round, "3", number.DecimalPlaces, number.NoPadding, "12.346"},
		{"12.3456", number.Round, "2", number.DecimalPlaces, number.NoPadding, "12.35"},
		{"9.999", number.Round, "2", number.DecimalPlaces, number.NoPadding, "10"},
		{"9.999", number.Round, "2", number.DecimalPlaces, number.PadWithZero, "10.00"},
		{"99.999", number.Round, "-1", number.DecimalPlaces, number.NoPadding, "100"},
		{"-12.3456", number.Round, "2", number.DecimalPlaces, number.NoPadding, "-12.35"},
		{"123.456", number.Round, "4", number.SignificantDigits, number.NoPadding, "123.5"},
		{"123.456", number.Round, "2", number.SignificantDigits, number.NoPadding, "120"},
		{"-0.000123456789", number.Round, "5", number.SignificantDigits, number.NoPadding, "-0.00012346"},
		{"0.00098765", number.Round, "1", number.SignificantDigits, number.PadWithZero, "0.001"},
		{"0.000123456789", number.Round, "0.00000012", number.TickSize, number.NoPadding, "0.00012348"},
		{"0.01", number.Round, "0.0001", number.TickSize, number.NoPadding, "0.01"},
	}
	for _, v := range vectors {
		got, err := number.DecimalToPrecision(v.value, v.rounding, v.precision, v.counting, v.padding)
		if err != nil {
			return err
		}
		if got != v.want {
			return mismatch("DecimalToPrecision("+v.value+", "+v.precision+")", got, v.want)
		}
	}

	if got := number.NumberToString(0.00000001); got != "0.00000001" {
		return mismatch("NumberToString", got, "0.00000001")
	}
	if got := number.NumberToString(-7.35e-7); got != "-0.000000735" {
		return mismatch("NumberToString", got, "-0.000000735")
	}

	am, err := number.ParseAmount("10000.00121454")
	if err != nil {
		return err
	}
	if got := am.String(); got != "10000.00121454" {
		return mismatch("ParseAmount round trip", got, "10000.00121454")
	}
	if got := number.One.DivC(1000).String(); got != "0.001" {
		return mismatch("Amount.DivC", got, "0.001")
	}
	sum := number.MustParseAmount("1.5").Add(number.MustParseAmount("2.25"))
	if got := sum.String(); got != "3.75" {
		return mismatch("Amount.Add", got, "3.75")
	}
	if !number.MustParseAmount("1.5").Less(number.MustParseAmount("2")) {
		return mismatch("Amount.Less", false, true)
	}
	return nil
}
