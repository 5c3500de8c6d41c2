package util

import (
	"sort"
)

// Extend merges the maps left to right into a new map. Later values win,
// nested maps are replaced as a whole.
func Extend(maps ...map[string]interface{}) map[string]interface{} {
	out := map[string]interface{}{}
	for _, m := range maps {
		for k, v := range m {
			out[k] = v
		}
	}
	return out
}

// DeepExtend merges the maps left to right into a new map. Nested maps merge
// recursively, every other value including nil replaces the previous one.
func DeepExtend(maps ...map[string]interface{}) map[string]interface{} {
	out := map[string]interface{}{}
	for _, m := range maps {
		for k, v := range m {
			mv, ok := v.(map[string]interface{})
			if !ok {
				out[k] = v
				continue
			}
			prev, ok := out[k].(map[string]interface{})
			if !ok {
				out[k] = DeepExtend(mv)
				continue
			}
			out[k] = DeepExtend(prev, mv)
		}
	}
	return out
}

// Omit returns a copy of the map without the given keys.
func Omit(m map[string]interface{}, keys ...string) map[string]interface{} {
	out := map[string]interface{}{}
	for k, v := range m {
		out[k] = v
	}
	for _, k := range keys {
		delete(out, k)
	}
	return out
}

// Keys returns the sorted keys of the map.
func Keys(m map[string]interface{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// IndexBy indexes the list by the string value of the field, dropping the
// entries that lack it.
func IndexBy(list []map[string]interface{}, key string) map[string]map[string]interface{} {
	out := map[string]map[string]interface{}{}
	for _, m := range list {
		if k := SafeString(m, key, ""); len(k) > 0 {
			out[k] = m
		}
	}
	return out
}

// GroupBy groups the list by the string value of the field, dropping the
// entries that lack it.
func GroupBy(list []map[string]interface{}, key string) map[string][]map[string]interface{} {
	out := map[string][]map[string]interface{}{}
	for _, m := range list {
		if k := SafeString(m, key, ""); len(k) > 0 {
			out[k] = append(out[k], m)
		}
	}
	return out
}

// SortBy sorts a copy of the list by the numeric value of the field.
func SortBy(list []map[string]interface{}, key string, descending bool) []map[string]interface{} {
	out := make([]map[string]interface{}, len(list))
	copy(out, list)
	sort.SliceStable(out, func(i, j int) bool {
		a := SafeFloat(out[i], key, 0)
		b := SafeFloat(out[j], key, 0)
		if descending {
			return a > b
		}
		return a < b
	})
	return out
}

// InArray reports whether the value is present in the list.
func InArray(needle interface{}, haystack []interface{}) bool {
	for _, v := range haystack {
		if v == needle {
			return true
		}
	}
	return false
}
