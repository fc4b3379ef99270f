package svg

import (
	"iter"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// OrderedMap is a string-keyed map that remembers insertion order.
// Overwriting an existing key keeps its original position.
type OrderedMap[V any] = orderedmap.OrderedMap[string, V]

// NewOrderedMap returns an empty OrderedMap.
func NewOrderedMap[V any]() *OrderedMap[V] {
	return orderedmap.New[string, V]()
}

// All iterates over the entries of m in insertion order. A nil map yields
// nothing.
func All[V any](m *OrderedMap[V]) iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		for pair := m.Oldest(); pair != nil; pair = pair.Next() {
			if !yield(pair.Key, pair.Value) {
				return
			}
		}
	}
}

// Keys returns the keys of m in insertion order.
func Keys[V any](m *OrderedMap[V]) []string {
	var keys []string

	for k := range All(m) {
		keys = append(keys, k)
	}

	return keys
}

// Filter returns a new map holding the entries of m for which keep returns
// true. m is not modified.
func Filter[V any](m *OrderedMap[V], keep func(key string, value V) bool) *OrderedMap[V] {
	out := NewOrderedMap[V]()

	for k, v := range All(m) {
		if keep(k, v) {
			out.Set(k, v)
		}
	}

	return out
}

// Clone returns a shallow copy of m.
func Clone[V any](m *OrderedMap[V]) *OrderedMap[V] {
	return Filter(m, func(string, V) bool { return true })
}
