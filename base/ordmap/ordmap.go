// Copyright (c) 2022, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ordmap provides an ordered map that keeps keys in the order
// they were first added while still giving map-speed key lookup.
// It is used wherever document order must survive decoding, such as
// the sequence of learners in a results file.
package ordmap

import (
	"fmt"
	"iter"
)

// KeyValue represents a key-value pair.
type KeyValue[K comparable, V any] struct {
	Key   K
	Value V
}

// Map is a generic ordered map. Order holds the entries in insertion
// order and Map holds the index of each key into Order.
type Map[K comparable, V any] struct {

	// Order is the list of entries, in the order added.
	Order []KeyValue[K, V]

	// Map is the key to index mapping.
	Map map[K]int
}

// New returns a new ordered map.
func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{Map: make(map[K]int)}
}

// Init initializes the map if it isn't already.
func (om *Map[K, V]) Init() {
	if om.Map == nil {
		om.Map = make(map[K]int)
	}
}

// Add sets the value for given key. An existing key keeps its
// position; a new key is appended.
func (om *Map[K, V]) Add(key K, val V) {
	om.Init()
	if idx, has := om.Map[key]; has {
		om.Order[idx].Value = val
		return
	}
	om.Map[key] = len(om.Order)
	om.Order = append(om.Order, KeyValue[K, V]{Key: key, Value: val})
}

// AddUnique adds a new key, returning an error if the key is already present.
func (om *Map[K, V]) AddUnique(key K, val V) error {
	if om.Has(key) {
		return fmt.Errorf("ordmap.AddUnique: duplicate key %v", key)
	}
	om.Add(key, val)
	return nil
}

// Has returns whether the key is in the map.
func (om *Map[K, V]) Has(key K) bool {
	if om == nil {
		return false
	}
	_, ok := om.Map[key]
	return ok
}

// ValueByKeyTry returns the value for the given key,
// with false returned for a missing key.
func (om *Map[K, V]) ValueByKeyTry(key K) (V, bool) {
	if idx, ok := om.Map[key]; ok {
		return om.Order[idx].Value, true
	}
	var zv V
	return zv, false
}

// KeyByIndex returns the key at the given index in the ordered slice.
func (om *Map[K, V]) KeyByIndex(idx int) K {
	return om.Order[idx].Key
}

// ValueByIndex returns the value at the given index in the ordered slice.
func (om *Map[K, V]) ValueByIndex(idx int) V {
	return om.Order[idx].Value
}

// Len returns the number of items in the map.
func (om *Map[K, V]) Len() int {
	if om == nil {
		return 0
	}
	return len(om.Order)
}

// Keys returns the keys in order.
func (om *Map[K, V]) Keys() []K {
	kl := make([]K, om.Len())
	for i, kv := range om.Order {
		kl[i] = kv.Key
	}
	return kl
}

// All iterates over the entries in order.
func (om *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if om == nil {
			return
		}
		for _, kv := range om.Order {
			if !yield(kv.Key, kv.Value) {
				return
			}
		}
	}
}
