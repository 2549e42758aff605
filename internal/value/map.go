package value

import "sort"

// Map is an ordered mapping from non-empty, unique string keys to Values.
// Iteration via Keys() yields insertion order (for printing); SortedKeys()
// yields key order (for flattening, per spec.md §3).
//
// Map is treated as immutable by convention: every "modifying" operation
// (Set, Merge) returns a fresh *Map rather than mutating the receiver, so
// a Map can be shared freely (e.g. as a closure capture) without aliasing
// surprises.
type Map struct {
	keys   []string
	values map[string]Value
}

func (*Map) Kind() Kind { return KindMap }

// NewMap returns an empty Map.
func NewMap() *Map {
	return &Map{values: make(map[string]Value)}
}

// Get looks up a key.
func (m *Map) Get(key string) (Value, bool) {
	if m == nil {
		return nil, false
	}
	v, ok := m.values[key]
	return v, ok
}

// Has reports whether key is present.
func (m *Map) Has(key string) bool {
	_, ok := m.Get(key)
	return ok
}

// Len returns the number of entries.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Keys returns a copy of the keys in insertion order.
func (m *Map) Keys() []string {
	if m == nil {
		return nil
	}
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// SortedKeys returns a copy of the keys sorted lexicographically.
func (m *Map) SortedKeys() []string {
	keys := m.Keys()
	sort.Strings(keys)
	return keys
}

// Set returns a new Map with key bound to val. If key already exists its
// position in insertion order is preserved and the value is replaced;
// otherwise the key is appended.
func (m *Map) Set(key string, val Value) *Map {
	next := &Map{values: make(map[string]Value, m.Len()+1)}
	if m != nil {
		for k, v := range m.values {
			next.values[k] = v
		}
		next.keys = append(next.keys, m.keys...)
	}
	if _, exists := next.values[key]; !exists {
		next.keys = append(next.keys, key)
	}
	next.values[key] = val
	return next
}

// MapFromEntries builds a Map from an ordered slice of key/value pairs,
// later duplicate keys overriding earlier ones at their original
// position (matching how a map literal with a repeated key would behave
// were it not rejected at parse time).
func MapFromEntries(keys []string, vals []Value) *Map {
	m := NewMap()
	for i, k := range keys {
		m = m.Set(k, vals[i])
	}
	return m
}

// Merge returns a new Map that is the key-wise merge of m and other, with
// other's values overriding m's on key conflict and other's new keys
// appended after m's keys in other's insertion order — the join (`~`)
// semantics of spec.md §4.3.
func (m *Map) Merge(other *Map) *Map {
	result := m
	if result == nil {
		result = NewMap()
	}
	for _, k := range other.Keys() {
		v, _ := other.Get(k)
		result = result.Set(k, v)
	}
	return result
}

// SortedValues returns the map's values ordered by sorted key — the
// "flatten a map to a list" rule used by to_list and `~`'s fallback path.
func (m *Map) SortedValues() []Value {
	keys := m.SortedKeys()
	out := make([]Value, len(keys))
	for i, k := range keys {
		v, _ := m.Get(k)
		out[i] = v
	}
	return out
}
