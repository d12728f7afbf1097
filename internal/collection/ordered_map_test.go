package collection_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xhamera1/Hotel-app/internal/collection"
)

func TestOrderedMap(t *testing.T) {
	m := collection.NewOrderedMap[int, string]()
	assert.True(t, m.IsEmpty())

	t.Run("PutAndGet", func(t *testing.T) {
		m.Put(101, "single")
		m.Put(102, "double")

		value, ok := m.Get(101)
		require.True(t, ok)
		assert.Equal(t, "single", value)
		assert.False(t, m.IsEmpty())
		assert.Equal(t, 2, m.Len())
	})

	t.Run("PutExistingKeyKeepsOrder", func(t *testing.T) {
		m.Put(101, "suite")

		assert.Equal(t, []int{101, 102}, m.Keys())
		assert.Equal(t, []string{"suite", "double"}, m.Values())
		assert.Equal(t, 2, m.Len())
	})

	t.Run("GetMissingKey", func(t *testing.T) {
		value, ok := m.Get(999)
		assert.False(t, ok)
		assert.Empty(t, value)
	})

	t.Run("Remove", func(t *testing.T) {
		m.Remove(101)
		_, ok := m.Get(101)
		assert.False(t, ok)
		assert.Equal(t, []int{102}, m.Keys())
		assert.Equal(t, []string{"double"}, m.Values())

		// Removing a missing key is a no-op
		m.Remove(101)
		assert.Equal(t, 1, m.Len())
	})
}

func TestOrderedMapSnapshots(t *testing.T) {
	m := collection.NewOrderedMap[string, int]()
	m.Put("prices", 1)
	m.Put("view", 2)

	keys := m.Keys()
	keys[0] = "changed"
	values := m.Values()
	values[0] = 42

	assert.Equal(t, []string{"prices", "view"}, m.Keys(), "Keys should return a copy")
	assert.Equal(t, []int{1, 2}, m.Values(), "Values should return a copy")
}

func TestOrderedMapEntries(t *testing.T) {
	m := collection.NewOrderedMap[string, int]()
	assert.Empty(t, m.Entries())

	m.Put("a", 1)
	m.Put("b", 2)
	m.Put("c", 3)
	m.Remove("b")

	entries := m.Entries()
	assert.ElementsMatch(t, []collection.Entry[string, int]{
		{Key: "a", Value: 1},
		{Key: "c", Value: 3},
	}, entries)
}
