// Package collection provides small generic containers used by the hotel core
package collection

// Entry is a single key/value pair of an OrderedMap
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// OrderedMap is an insertion-ordered key/value store backed by two parallel
// slices. Index i of keys always corresponds to index i of values and keys
// are pairwise distinct. Lookups are linear scans.
type OrderedMap[K comparable, V any] struct {
	keys   []K
	values []V
}

// NewOrderedMap creates an empty OrderedMap
func NewOrderedMap[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{
		keys:   make([]K, 0),
		values: make([]V, 0),
	}
}

func (m *OrderedMap[K, V]) indexOf(key K) int {
	for i, k := range m.keys {
		if k == key {
			return i
		}
	}
	return -1
}

// Put stores value under key. An existing key keeps its position and only
// has its value replaced; a new key is appended.
func (m *OrderedMap[K, V]) Put(key K, value V) {
	if i := m.indexOf(key); i >= 0 {
		m.values[i] = value
		return
	}
	m.keys = append(m.keys, key)
	m.values = append(m.values, value)
}

// Get returns the value stored under key and whether it was present
func (m *OrderedMap[K, V]) Get(key K) (V, bool) {
	if i := m.indexOf(key); i >= 0 {
		return m.values[i], true
	}
	var zero V
	return zero, false
}

// Remove deletes key and its value. Missing keys are ignored.
func (m *OrderedMap[K, V]) Remove(key K) {
	i := m.indexOf(key)
	if i < 0 {
		return
	}
	m.keys = append(m.keys[:i], m.keys[i+1:]...)
	m.values = append(m.values[:i], m.values[i+1:]...)
}

// Keys returns a copy of the keys in insertion order
func (m *OrderedMap[K, V]) Keys() []K {
	keys := make([]K, len(m.keys))
	copy(keys, m.keys)
	return keys
}

// Values returns a copy of the values in the same order as Keys
func (m *OrderedMap[K, V]) Values() []V {
	values := make([]V, len(m.values))
	copy(values, m.values)
	return values
}

// Entries returns every key/value pair
func (m *OrderedMap[K, V]) Entries() []Entry[K, V] {
	entries := make([]Entry[K, V], 0, len(m.keys))
	for i, k := range m.keys {
		entries = append(entries, Entry[K, V]{Key: k, Value: m.values[i]})
	}
	return entries
}

// Len returns the number of stored pairs
func (m *OrderedMap[K, V]) Len() int {
	return len(m.keys)
}

// IsEmpty reports whether the map holds no pairs
func (m *OrderedMap[K, V]) IsEmpty() bool {
	return len(m.keys) == 0
}
