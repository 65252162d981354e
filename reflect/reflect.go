package reflect

import (
	"reflect"
	"sort"
)

type (
	Kind  = reflect.Kind
	Type  = reflect.Type
	Value = reflect.Value
)

const (
	Map    = reflect.Map
	String = reflect.String
)

var (
	TypeOf  = reflect.TypeOf
	ValueOf = reflect.ValueOf
)

// MapKeys returns the keys of a map with string kind keys in map order.
// It panics if v is not such a map.
func MapKeys(v Value) []string {
	if v.Kind() != Map || v.Type().Key().Kind() != String {
		panic("reflect: MapKeys of non string keyed map " + v.Type().String())
	}
	keys := make([]string, 0, v.Len())
	iter := v.MapRange()
	for iter.Next() {
		keys = append(keys, iter.Key().String())
	}
	return keys
}

func MapSortedKeys(v Value) []string {
	keys := MapKeys(v)
	sort.Strings(keys)
	return keys
}
