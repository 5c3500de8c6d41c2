package base

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/MarcelRaschke/ccxt/common/number"
	"github.com/MarcelRaschke/ccxt/common/util"
)

// checkLanguageSpecific pins the Go-side behavior the other checks build
// on: float formatting, integer bounds and nil tolerance
func checkLanguageSpecific() error {
	// floats are never written in scientific notation
	if got := number.NumberToString(7.35e-7); got != "0.000000735" {
		return mismatch("small float formatting", got, "0.000000735")
	}
	if got := number.NumberToString(1e21); strings.ContainsAny(got, "eE") {
		return mismatch("large float formatting", got, "no exponent")
	}
	if got := number.NumberToString(-0.5); got != "-0.5" {
		return mismatch("negative float formatting", got, "-0.5")
	}

	// decoded JSON keeps full int64 range through json.Number
	var m map[string]interface{}
	dec := json.NewDecoder(strings.NewReader(`{"big":9223372036854775807}`))
	dec.UseNumber()
	if err := dec.Decode(&m); err != nil {
		return err
	}
	if got := util.SafeInteger(m, "big", 0); got != math.MaxInt64 {
		return mismatch("int64 bounds", got, int64(math.MaxInt64))
	}
	if got := util.SafeString(m, "big", ""); got != "9223372036854775807" {
		return mismatch("int64 string", got, "9223372036854775807")
	}

	// every safe accessor tolerates a nil map
	if got := util.SafeString(nil, "k", "fallback"); got != "fallback" {
		return mismatch("nil map SafeString", got, "fallback")
	}
	if got := util.SafeInteger(nil, "k", 7); got != 7 {
		return mismatch("nil map SafeInteger", got, int64(7))
	}
	if got := util.SafeFloat(nil, "k", 1.5); got != 1.5 {
		return mismatch("nil map SafeFloat", got, 1.5)
	}
	if got := util.SafeValue(nil, "k"); got != nil {
		return mismatch("nil map SafeValue", got, nil)
	}

	// string coercion truncates toward zero the way order sizing expects
	frac := map[string]interface{}{"v": "1.9", "neg": "-1.9"}
	if got := util.SafeInteger(frac, "v", 0); got != 1 {
		return mismatch("fractional string truncation", got, int64(1))
	}
	if got := util.SafeInteger(frac, "neg", 0); got != -1 {
		return mismatch("negative fractional string truncation", got, int64(-1))
	}
	return nil
}
