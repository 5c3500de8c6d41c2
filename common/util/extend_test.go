package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtend(t *testing.T) {
	a := map[string]interface{}{"x": 1, "nested": map[string]interface{}{"a": 1}}
	b := map[string]interface{}{"y": 2, "nested": map[string]interface{}{"b": 2}}
	out := Extend(a, b)
	assert.Equal(t, 1, out["x"])
	assert.Equal(t, 2, out["y"])
	assert.Equal(t, map[string]interface{}{"b": 2}, out["nested"], "shallow merge replaces nested maps")
	assert.Equal(t, map[string]interface{}{"a": 1}, a["nested"], "sources stay untouched")
}

func TestDeepExtend(t *testing.T) {
	a := map[string]interface{}{"nested": map[string]interface{}{"a": 1, "keep": true}}
	b := map[string]interface{}{"nested": map[string]interface{}{"a": 2, "b": 3}}
	out := DeepExtend(a, b)
	nested := out["nested"].(map[string]interface{})
	assert.Equal(t, 2, nested["a"])
	assert.Equal(t, 3, nested["b"])
	assert.Equal(t, true, nested["keep"])
	assert.Equal(t, 1, a["nested"].(map[string]interface{})["a"], "sources stay untouched")

	out = DeepExtend(a, map[string]interface{}{"nested": nil})
	assert.Nil(t, out["nested"], "nil overwrites a nested map")
}

func TestOmit(t *testing.T) {
	m := map[string]interface{}{"a": 1, "b": 2, "c": 3}
	out := Omit(m, "b", "missing")
	assert.Equal(t, map[string]interface{}{"a": 1, "c": 3}, out)
	assert.Len(t, m, 3)
}

func TestKeys(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, Keys(map[string]interface{}{"c": 1, "a": 2, "b": 3}))
	assert.Empty(t, Keys(nil))
}

func TestIndexByAndGroupBy(t *testing.T) {
	list := []map[string]interface{}{
		{"id": "a", "side": "buy"},
		{"id": "b", "side": "sell"},
		{"id": "c", "side": "buy"},
		{"side": "buy"},
	}
	byID := IndexBy(list, "id")
	assert.Len(t, byID, 3)
	assert.Equal(t, "sell", byID["b"]["side"])

	bySide := GroupBy(list, "side")
	assert.Len(t, bySide["buy"], 3)
	assert.Len(t, bySide["sell"], 1)
}

func TestSortBy(t *testing.T) {
	list := []map[string]interface{}{
		{"price": 3.0}, {"price": 1.0}, {"price": 2.0},
	}
	asc := SortBy(list, "price", false)
	assert.Equal(t, 1.0, asc[0]["price"])
	assert.Equal(t, 3.0, asc[2]["price"])
	desc := SortBy(list, "price", true)
	assert.Equal(t, 3.0, desc[0]["price"])
	assert.Equal(t, 3.0, list[0]["price"], "input order stays untouched")
}

func TestInArray(t *testing.T) {
	haystack := []interface{}{"a", 1, true}
	assert.True(t, InArray("a", haystack))
	assert.True(t, InArray(1, haystack))
	assert.False(t, InArray("z", haystack))
	assert.False(t, InArray(nil, nil))
}
