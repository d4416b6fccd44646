package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddNewLineStartsAtOne(t *testing.T) {
	s := NewStore()
	s.Add(1, Item{ProductID: "xbox-series-x", Title: "Xbox Series X", Price: 69000})

	lines := s.Items(1)
	require.Len(t, lines, 1)
	assert.Equal(t, "xbox-series-x", lines[0].ProductID)
	assert.Equal(t, 1, lines[0].Count)
}

func TestAddSameProductIncrements(t *testing.T) {
	s := NewStore()
	item := Item{ProductID: "xbox-series-s", Title: "Xbox Series S", Price: 39000}
	s.Add(7, item)
	s.Add(7, item)

	lines := s.Items(7)
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Count)
	assert.Equal(t, 78000, s.Subtotal(7))
}

func TestItemsKeepInsertionOrder(t *testing.T) {
	s := NewStore()
	s.Add(2, Item{ProductID: "b", Price: 10})
	s.Add(2, Item{ProductID: "a", Price: 20})
	s.Add(2, Item{ProductID: "b", Price: 10})

	lines := s.Items(2)
	require.Len(t, lines, 2)
	assert.Equal(t, "b", lines[0].ProductID)
	assert.Equal(t, "a", lines[1].ProductID)
}

func TestCartsAreIsolatedPerUser(t *testing.T) {
	s := NewStore()
	s.Add(1, Item{ProductID: "x", Price: 100})

	assert.Equal(t, 1, s.Len(1))
	assert.Equal(t, 0, s.Len(2))
	assert.Equal(t, 0, s.Subtotal(2))
}

func TestClearEmptiesCart(t *testing.T) {
	s := NewStore()
	s.Add(5, Item{ProductID: "x", Price: 100})
	s.Clear(5)

	assert.Equal(t, 0, s.Len(5))
	assert.Empty(t, s.Items(5))
}

func TestItemsReturnsCopy(t *testing.T) {
	s := NewStore()
	s.Add(3, Item{ProductID: "x", Price: 100})

	lines := s.Items(3)
	lines[0].Count = 99

	assert.Equal(t, 1, s.Items(3)[0].Count)
}
