package favorites

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddIsIdempotent(t *testing.T) {
	s := NewStore()
	entry := Entry{ProductID: "xbox-series-x", Title: "Xbox Series X", Price: 69000}
	s.Add(1, entry)
	s.Add(1, entry)

	require.Equal(t, 1, s.Len(1))
	assert.True(t, s.IsFavorite(1, "xbox-series-x"))
}

func TestRemoveAbsentIsNoOp(t *testing.T) {
	s := NewStore()
	s.Remove(1, "missing")

	assert.Equal(t, 0, s.Len(1))
}

func TestRemoveDropsEntry(t *testing.T) {
	s := NewStore()
	s.Add(1, Entry{ProductID: "a"})
	s.Add(1, Entry{ProductID: "b"})
	s.Remove(1, "a")

	assert.False(t, s.IsFavorite(1, "a"))
	assert.True(t, s.IsFavorite(1, "b"))
	assert.Equal(t, 1, s.Len(1))
}

func TestClear(t *testing.T) {
	s := NewStore()
	s.Add(1, Entry{ProductID: "a"})
	s.Add(1, Entry{ProductID: "b"})
	s.Clear(1)

	assert.Equal(t, 0, s.Len(1))
	assert.False(t, s.IsFavorite(1, "a"))
}

func TestListKeepsInsertionOrder(t *testing.T) {
	s := NewStore()
	s.Add(1, Entry{ProductID: "b"})
	s.Add(1, Entry{ProductID: "a"})

	list := s.List(1)
	require.Len(t, list, 2)
	assert.Equal(t, "b", list[0].ProductID)
	assert.Equal(t, "a", list[1].ProductID)
}

func TestStoresAreIsolatedPerUser(t *testing.T) {
	s := NewStore()
	s.Add(1, Entry{ProductID: "a"})

	assert.False(t, s.IsFavorite(2, "a"))
	assert.Empty(t, s.List(2))
}
