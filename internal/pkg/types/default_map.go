package types

import (
	"cmp"
	"maps"
	"slices"
)

// DefaultMap is a map that materializes a default value the first time a
// missing key is read.
//
//	groups := NewDefaultMap[string, []string](func() []string { return nil })
//	groups.Set("batch1", append(groups.Get("batch1"), addr))
type DefaultMap[K comparable, V any] struct {
	data        map[K]V
	defaultFunc func() V
}

// NewDefaultMap creates an empty DefaultMap backed by defaultFunc.
func NewDefaultMap[K comparable, V any](defaultFunc func() V) DefaultMap[K, V] {
	return DefaultMap[K, V]{
		data:        make(map[K]V),
		defaultFunc: defaultFunc,
	}
}

// Get returns the value for key, storing and returning a default one when absent.
func (d *DefaultMap[K, V]) Get(key K) V {
	val, ok := d.data[key]
	if ok {
		return val
	}

	val = d.defaultFunc()
	d.data[key] = val
	return val
}

// Set assigns val to key.
func (d *DefaultMap[K, V]) Set(key K, val V) {
	d.data[key] = val
}

// Len returns the number of keys.
func (d *DefaultMap[K, V]) Len() int {
	return len(d.data)
}

// ToMap returns the underlying map.
func (d *DefaultMap[K, V]) ToMap() map[K]V {
	return d.data
}

// SortedKeys returns the keys of a DefaultMap with ordered keys in ascending order.
func SortedKeys[K cmp.Ordered, V any](d DefaultMap[K, V]) []K {
	return slices.Sorted(maps.Keys(d.data))
}
