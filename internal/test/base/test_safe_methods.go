package base

import (
	"encoding/json"
	"strings"

	"github.com/MarcelRaschke/ccxt/common/util"
)

const safeMethodsPayload = `{
	"str": "abc",
	"strNum": "1.5",
	"int": 5,
	"float": 1.9,
	"bool": true,
	"list": [1, 2],
	"map": {"x": 1},
	"ts": "1600000000.123",
	"tsNum": 1600000000.123,
	"tsMs": 1600000000123,
	"null": null
}`

// checkSafeMethods exercises the safe accessors over a decoded JSON payload
func checkSafeMethods() error {
	dec := json.NewDecoder(strings.NewReader(safeMethodsPayload))
	dec.UseNumber()
	var m map[string]interface{}
	if err := dec.Decode(&m); err != nil {
		return err
	}

	if got := util.SafeString(m, "str", ""); got != "abc" {
		return mismatch("SafeString", got, "abc")
	}
	if got := util.SafeString(m, "int", ""); got != "5" {
		return mismatch("SafeString number", got, "5")
	}
	if got := util.SafeString(m, "missing", "dflt"); got != "dflt" {
		return mismatch("SafeString default", got, "dflt")
	}
	if got := util.SafeString(m, "null", "dflt"); got != "dflt" {
		return mismatch("SafeString null", got, "dflt")
	}
	if got := util.SafeStringUpper(m, "str", ""); got != "ABC" {
		return mismatch("SafeStringUpper", got, "ABC")
	}
	if got := util.SafeStringLower(m, "missing", "DFLT"); got != "DFLT" {
		return mismatch("SafeStringLower default", got, "DFLT")
	}

	if got := util.SafeFloat(m, "strNum", 0); got != 1.5 {
		return mismatch("SafeFloat string", got, 1.5)
	}
	if got := util.SafeFloat(m, "int", 0); got != 5 {
		return mismatch("SafeFloat number", got, float64(5))
	}
	if got := util.SafeFloat(m, "str", 2.5); got != 2.5 {
		return mismatch("SafeFloat default", got, 2.5)
	}

	if got := util.SafeInteger(m, "int", 0); got != 5 {
		return mismatch("SafeInteger", got, int64(5))
	}
	if got := util.SafeInteger(m, "float", 0); got != 1 {
		return mismatch("SafeInteger truncation", got, int64(1))
	}
	if got := util.SafeInteger(m, "missing", 42); got != 42 {
		return mismatch("SafeInteger default", got, int64(42))
	}

	if got := util.SafeTimestamp(m, "ts", 0); got != 1600000000123 {
		return mismatch("SafeTimestamp seconds", got, int64(1600000000123))
	}
	if got := util.SafeTimestamp(m, "tsNum", 0); got != 1600000000123 {
		return mismatch("SafeTimestamp numeric seconds", got, int64(1600000000123))
	}
	if got := util.SafeTimestamp(m, "tsMs", 0); got != 1600000000123 {
		return mismatch("SafeTimestamp milliseconds", got, int64(1600000000123))
	}

	if got := util.SafeBool(m, "bool", false); !got {
		return mismatch("SafeBool", got, true)
	}
	if got := util.SafeBool(m, "str", false); got {
		return mismatch("SafeBool default", got, false)
	}

	if got := util.SafeValue(m, "null"); got != nil {
		return mismatch("SafeValue null", got, nil)
	}
	if got := util.SafeMap(m, "map"); got == nil || util.SafeInteger(got, "x", 0) != 1 {
		return mismatch("SafeMap", got, "map with x=1")
	}
	if got := util.SafeList(m, "list"); len(got) != 2 {
		return mismatch("SafeList", got, "2 entries")
	}
	if got := util.SafeList(m, "str"); got != nil {
		return mismatch("SafeList default", got, nil)
	}
	return nil
}
