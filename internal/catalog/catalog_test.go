package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDocument() Document {
	return Document{
		Categories: []Category{
			{ID: "consoles", Name: "Консоли"},
			{ID: "laptops", Name: "Ноутбуки"},
		},
		Subcategories: map[string][]Subcategory{
			"consoles": {{ID: "xbox", Name: "Xbox"}},
		},
		Products: map[string][]Product{
			"consoles": {
				{ID: "xbox-series-x", Title: "Xbox Series X", Price: 69000, Rating: 5, InStock: true},
				{ID: "xbox-series-s", Title: "Xbox Series S", Price: 39000, Rating: 4.5, InStock: true},
			},
		},
	}
}

func TestNewBuildsLookup(t *testing.T) {
	p, err := New(testDocument())
	require.NoError(t, err)

	assert.Equal(t, 2, p.Size())
	assert.Len(t, p.Categories(), 2)
	assert.Len(t, p.Subcategories("consoles"), 1)
	assert.Empty(t, p.Subcategories("laptops"))
	assert.Len(t, p.Products("consoles"), 2)
	assert.Empty(t, p.Products("laptops"))
}

func TestProductByID(t *testing.T) {
	p, err := New(testDocument())
	require.NoError(t, err)

	product, ok := p.ProductByID("xbox-series-x")
	require.True(t, ok)
	assert.Equal(t, 69000, product.Price)

	_, ok = p.ProductByID("missing")
	assert.False(t, ok)
}

func TestCategoryByID(t *testing.T) {
	p, err := New(testDocument())
	require.NoError(t, err)

	cat, ok := p.CategoryByID("laptops")
	require.True(t, ok)
	assert.Equal(t, "Ноутбуки", cat.Name)

	_, ok = p.CategoryByID("missing")
	assert.False(t, ok)
}

func TestNewRejectsDuplicateCategory(t *testing.T) {
	doc := testDocument()
	doc.Categories = append(doc.Categories, Category{ID: "consoles"})

	_, err := New(doc)
	assert.ErrorContains(t, err, "duplicate category")
}

func TestNewRejectsDuplicateProduct(t *testing.T) {
	doc := testDocument()
	doc.Products["laptops"] = []Product{{ID: "xbox-series-x", Price: 1}}

	_, err := New(doc)
	assert.ErrorContains(t, err, "duplicate product")
}

func TestNewRejectsUnknownCategoryRef(t *testing.T) {
	doc := testDocument()
	doc.Products["phones"] = []Product{{ID: "p1"}}

	_, err := New(doc)
	assert.ErrorContains(t, err, "unknown category")
}

func TestNewRejectsBadRating(t *testing.T) {
	doc := testDocument()
	doc.Products["consoles"][0].Rating = 5.5

	_, err := New(doc)
	assert.ErrorContains(t, err, "rating")
}

func TestNewRejectsNegativePrice(t *testing.T) {
	doc := testDocument()
	doc.Products["consoles"][0].Price = -1

	_, err := New(doc)
	assert.ErrorContains(t, err, "negative price")
}

func TestSorted(t *testing.T) {
	items := []Product{
		{ID: "a", Price: 300, Rating: 3},
		{ID: "b", Price: 100, Rating: 5},
		{ID: "c", Price: 200, Rating: 4},
	}

	asc := Sorted(items, SortPriceAsc)
	assert.Equal(t, []string{"b", "c", "a"}, ids(asc))

	desc := Sorted(items, SortPriceDesc)
	assert.Equal(t, []string{"a", "c", "b"}, ids(desc))

	rating := Sorted(items, SortRating)
	assert.Equal(t, []string{"b", "c", "a"}, ids(rating))

	// Unknown mode keeps the original order and does not mutate the input.
	same := Sorted(items, "unknown")
	assert.Equal(t, []string{"a", "b", "c"}, ids(same))
	assert.Equal(t, "a", items[0].ID)
}

func TestLoadEmbeddedCatalog(t *testing.T) {
	p, err := Load("")
	require.NoError(t, err)

	assert.Greater(t, p.Size(), 0)
	_, ok := p.ProductByID("xbox-series-x")
	assert.True(t, ok)
}

func ids(items []Product) []string {
	out := make([]string, len(items))
	for i, p := range items {
		out[i] = p.ID
	}
	return out
}
