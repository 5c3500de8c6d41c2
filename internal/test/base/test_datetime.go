package base

import (
	"github.com/MarcelRaschke/ccxt/common/timeutil"
)

// checkDatetime exercises the ISO 8601 formatting and parsing
func checkDatetime() error {
	if got := timeutil.ISO8601(714862627000); got != "1992-08-26T20:57:07.000Z" {
		return mismatch("ISO8601", got, "1992-08-26T20:57:07.000Z")
	}

	parses := []struct {
		value string
		want  int64
	}{
		{"1986-04-25T05:06:07.000Z", 514789567000},
		{"1986-04-25T05:06:07Z", 514789567000},
		{"1986-04-25 05:06:07", 514789567000},
		{"1986-04-25T05:06:07.123Z", 514789567123},
		{"1986-04-25", 514771200000},
	}
	for _, v := range parses {
		got, err := timeutil.Parse8601(v.value)
		if err != nil {
			return err
		}
		if got != v.want {
			return mismatch("Parse8601("+v.value+")", got, v.want)
		}
	}
	if _, err := timeutil.Parse8601(""); err == nil {
		return mismatch("Parse8601 empty", "no error", "error")
	}
	if _, err := timeutil.Parse8601("not a date"); err == nil {
		return mismatch("Parse8601 garbage", "no error", "error")
	}

	if got := timeutil.YMD(514789567000, "-"); got != "1986-04-25" {
		return mismatch("YMD", got, "1986-04-25")
	}
	if got := timeutil.YMDHMS(514789567000, "-"); got != "1986-04-25 05:06:07" {
		return mismatch("YMDHMS", got, "1986-04-25 05:06:07")
	}

	ms := timeutil.Milliseconds()
	back, err := timeutil.Parse8601(timeutil.ISO8601(ms))
	if err != nil {
		return err
	}
	if back != ms {
		return mismatch("ISO8601 round trip", back, ms)
	}

	a := timeutil.Nonce()
	b := timeutil.Nonce()
	if b <= a {
		return mismatch("Nonce monotonicity", b, a+1)
	}
	return nil
}
