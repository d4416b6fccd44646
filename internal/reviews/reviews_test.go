package reviews

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListUnknownProductIsEmpty(t *testing.T) {
	p := Default()
	assert.Empty(t, p.List("missing"))
}

func TestAverage(t *testing.T) {
	p := NewProvider(map[string][]Review{
		"x": {{Rating: 5}, {Rating: 4}, {Rating: 3}},
	})

	avg, ok := p.Average("x")
	require.True(t, ok)
	assert.InDelta(t, 4.0, avg, 0.001)

	_, ok = p.Average("missing")
	assert.False(t, ok)
}

func TestDefaultHasStockReviews(t *testing.T) {
	p := Default()
	assert.NotEmpty(t, p.List("xbox-series-x"))
}
