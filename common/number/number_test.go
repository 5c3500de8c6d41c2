package number

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecimalToPrecision(t *testing.T) {
	vectors := []struct {
		value     string
		rounding  RoundingMode
		precision string
		counting  CountingMode
		padding   PaddingMode
		want      string
	}{
		{"12.3456000", Truncate, "100", DecimalPlaces, NoPadding, "12.3456"},
		{"12.3456", Truncate, "4", DecimalPlaces, NoPadding, "12.3456"},
		{"12.3456", Truncate, "3", DecimalPlaces, NoPadding, "12.345"},
		{"12.3456", Truncate, "2", DecimalPlaces, NoPadding, "12.34"},
		{"12.3456", Truncate, "1", DecimalPlaces, NoPadding, "12.3"},
		{"12.3456", Truncate, "0", DecimalPlaces, NoPadding, "12"},
		{"12.3456", Truncate, "0", DecimalPlaces, PadWithZero, "12"},
		{"0.0000001", Truncate, "8", DecimalPlaces, NoPadding, "0.0000001"},
		{"0.0000001", Truncate, "8", DecimalPlaces, PadWithZero, "0.00000010"},
		{"12.3456", Round, "3", DecimalPlaces, NoPadding, "12.346"},
		{"12.3456", Round, "2", DecimalPlaces, NoPadding, "12.35"},
		{"12.3456", Round, "5", DecimalPlaces, PadWithZero, "12.34560"},
		{"9.999", Round, "2", DecimalPlaces, NoPadding, "10"},
		{"9.999", Round, "2", DecimalPlaces, PadWithZero, "10.00"},
		{"99.999", Round, "-1", DecimalPlaces, NoPadding, "100"},
		{"-12.3456", Round, "2", DecimalPlaces, NoPadding, "-12.35"},
		{"-0.01", Truncate, "1", DecimalPlaces, NoPadding, "0"},
		{"123.456", Truncate, "4", SignificantDigits, NoPadding, "123.4"},
		{"123.456", Round, "4", SignificantDigits, NoPadding, "123.5"},
		{"123.456", Round, "2", SignificantDigits, NoPadding, "120"},
		{"-0.000123456789", Round, "5", SignificantDigits, NoPadding, "-0.00012346"},
		{"0.00098765", Round, "1", SignificantDigits, PadWithZero, "0.001"},
		{"0.000123456789", Round, "0.00000012", TickSize, NoPadding, "0.00012348"},
		{"0.01", Round, "0.0001", TickSize, NoPadding, "0.01"},
		{"0.01", Round, "0.0001", TickSize, PadWithZero, "0.0100"},
	}
	for _, v := range vectors {
		got, err := DecimalToPrecision(v.value, v.rounding, v.precision, v.counting, v.padding)
		require.NoError(t, err, v.value)
		assert.Equal(t, v.want, got, "%s @ %s", v.value, v.precision)
	}
}

func TestDecimalToPrecisionErrors(t *testing.T) {
	_, err := DecimalToPrecision("not a number", Round, "2", DecimalPlaces, NoPadding)
	assert.Error(t, err)
	_, err = DecimalToPrecision("1.5", Round, "x", DecimalPlaces, NoPadding)
	assert.Error(t, err)
	_, err = DecimalToPrecision("1.5", Round, "0", SignificantDigits, NoPadding)
	assert.Error(t, err)
	_, err = DecimalToPrecision("1.5", Round, "0", TickSize, NoPadding)
	assert.Error(t, err)
}

func TestNumberToString(t *testing.T) {
	assert.Equal(t, "0.00000001", NumberToString(0.00000001))
	assert.Equal(t, "-0.000000735", NumberToString(-7.35e-7))
	assert.Equal(t, "42000", NumberToString(42000))
}

func TestAmount(t *testing.T) {
	a := One.DivC(1000)
	assert.Equal(t, "0.001", a.String())
	b := One.MulC(10000)
	assert.Equal(t, "10000", b.String())
	assert.Equal(t, "10000.001", a.Add(b).String())
	assert.Equal(t, "-9999.999", a.Sub(b).String())

	c, err := ParseAmount("10000.00121454")
	require.NoError(t, err)
	assert.Equal(t, "10000.00121454", c.String())

	assert.True(t, MustParseAmount("1.5").Less(MustParseAmount("2")))
	assert.True(t, MustParseAmount("0").IsZero())
	assert.True(t, MustParseAmount("1").Sub(MustParseAmount("2")).IsMinus())

	_, err = ParseAmount("abc")
	assert.Error(t, err)
	_, err = ParseAmount("1.2.3")
	assert.Error(t, err)
}

func TestAmountJSON(t *testing.T) {
	am := MustParseAmount("1.25")
	bs, err := am.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"1.25"`, string(bs))

	var back Amount
	require.NoError(t, back.UnmarshalJSON(bs))
	assert.True(t, am.Equal(&back))
}
