package base

import (
	"reflect"

	"github.com/MarcelRaschke/ccxt/common/util"
)

// checkExtend exercises the map merge semantics
func checkExtend() error {
	a := map[string]interface{}{
		"a": 1,
		"b": map[string]interface{}{"c": 2, "d": 3},
	}
	b := map[string]interface{}{
		"b": map[string]interface{}{"c": 4},
		"e": 5,
	}

	shallow := util.Extend(a, b)
	wantShallow := map[string]interface{}{
		"a": 1,
		"b": map[string]interface{}{"c": 4},
		"e": 5,
	}
	if !reflect.DeepEqual(shallow, wantShallow) {
		return mismatch("Extend", shallow, wantShallow)
	}

	deep := util.DeepExtend(a, b)
	wantDeep := map[string]interface{}{
		"a": 1,
		"b": map[string]interface{}{"c": 4, "d": 3},
		"e": 5,
	}
	if !reflect.DeepEqual(deep, wantDeep) {
		return mismatch("DeepExtend", deep, wantDeep)
	}
	// the sources must stay untouched
	if !reflect.DeepEqual(a["b"], map[string]interface{}{"c": 2, "d": 3}) {
		return mismatch("DeepExtend source", a["b"], map[string]interface{}{"c": 2, "d": 3})
	}

	nilled := util.DeepExtend(a, map[string]interface{}{"b": nil})
	if v, has := nilled["b"]; !has || v != nil {
		return mismatch("DeepExtend nil overwrite", v, nil)
	}

	omitted := util.Omit(wantShallow, "a", "e")
	if _, has := omitted["a"]; has {
		return mismatch("Omit", omitted, "no key a")
	}
	if len(omitted) != 1 {
		return mismatch("Omit size", len(omitted), 1)
	}

	list := []map[string]interface{}{
		{"symbol": "BTC/USDT", "price": 42000.0},
		{"symbol": "ETH/USDT", "price": 2500.0},
		{"price": 1.0},
	}
	indexed := util.IndexBy(list, "symbol")
	if len(indexed) != 2 {
		return mismatch("IndexBy size", len(indexed), 2)
	}
	if indexed["BTC/USDT"]["price"] != 42000.0 {
		return mismatch("IndexBy value", indexed["BTC/USDT"]["price"], 42000.0)
	}

	grouped := util.GroupBy(list, "symbol")
	if len(grouped["ETH/USDT"]) != 1 {
		return mismatch("GroupBy", len(grouped["ETH/USDT"]), 1)
	}

	sorted := util.SortBy(list, "price", true)
	if sorted[0]["price"] != 42000.0 {
		return mismatch("SortBy", sorted[0]["price"], 42000.0)
	}

	if !util.InArray("b", []interface{}{"a", "b"}) || util.InArray("c", []interface{}{"a", "b"}) {
		return mismatch("InArray", "wrong membership", "b in, c out")
	}

	keys := util.Keys(wantShallow)
	if !reflect.DeepEqual(keys, []string{"a", "b", "e"}) {
		return mismatch("Keys", keys, []string{"a", "b", "e"})
	}
	return nil
}
