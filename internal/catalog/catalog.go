// Package catalog supplies the static, read-only product catalog: categories,
// their subcategories, and products. The data never changes at runtime; the
// provider builds a by-id lookup table once so product access is O(1) instead
// of a scan across category groups.
package catalog

import (
	"fmt"
	"sort"
)

// Category is a top-level catalog section.
type Category struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Image string `yaml:"image"`
}

// Subcategory is a filter chip inside a category view.
type Subcategory struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Image string `yaml:"image"`
}

// Specs lists the characteristics shown on the product page.
type Specs struct {
	Type       string `yaml:"type"`
	Model      string `yaml:"model"`
	Size       string `yaml:"size"`
	Resolution string `yaml:"resolution"`
	CPU        string `yaml:"cpu"`
}

// Product is an immutable catalog record. Price is in whole currency units.
type Product struct {
	ID          string  `yaml:"id"`
	Title       string  `yaml:"title"`
	Price       int     `yaml:"price"`
	Image       string  `yaml:"image"`
	Rating      float64 `yaml:"rating"`
	InStock     bool    `yaml:"in_stock"`
	Description string  `yaml:"description"`
	Specs       Specs   `yaml:"specs"`
}

// Document is the on-disk catalog layout.
type Document struct {
	Categories    []Category               `yaml:"categories"`
	Subcategories map[string][]Subcategory `yaml:"subcategories"`
	Products      map[string][]Product     `yaml:"products"`
}

// SortMode selects product ordering inside a category view.
type SortMode string

const (
	// SortPriceAsc orders products by ascending price.
	SortPriceAsc SortMode = "price_asc"
	// SortPriceDesc orders products by descending price.
	SortPriceDesc SortMode = "price_desc"
	// SortRating orders products by descending rating.
	SortRating SortMode = "rating"
)

// Provider is the read-only catalog handle shared by all consumers.
type Provider struct {
	categories []Category
	subcats    map[string][]Subcategory
	products   map[string][]Product
	byID       map[string]Product
}

// New validates the document and builds the lookup structures.
func New(doc Document) (*Provider, error) {
	p := &Provider{
		categories: append([]Category(nil), doc.Categories...),
		subcats:    make(map[string][]Subcategory, len(doc.Subcategories)),
		products:   make(map[string][]Product, len(doc.Products)),
		byID:       make(map[string]Product),
	}

	seenCat := make(map[string]struct{}, len(doc.Categories))
	for _, c := range doc.Categories {
		if c.ID == "" {
			return nil, fmt.Errorf("catalog: category with empty id")
		}
		if _, dup := seenCat[c.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate category id %q", c.ID)
		}
		seenCat[c.ID] = struct{}{}
	}

	for catID, subs := range doc.Subcategories {
		if _, ok := seenCat[catID]; !ok {
			return nil, fmt.Errorf("catalog: subcategories reference unknown category %q", catID)
		}
		p.subcats[catID] = append([]Subcategory(nil), subs...)
	}

	for catID, items := range doc.Products {
		if _, ok := seenCat[catID]; !ok {
			return nil, fmt.Errorf("catalog: products reference unknown category %q", catID)
		}
		for _, item := range items {
			if item.ID == "" {
				return nil, fmt.Errorf("catalog: product with empty id in category %q", catID)
			}
			if item.Price < 0 {
				return nil, fmt.Errorf("catalog: product %q has negative price", item.ID)
			}
			if item.Rating < 0 || item.Rating > 5 {
				return nil, fmt.Errorf("catalog: product %q rating %v out of [0,5]", item.ID, item.Rating)
			}
			if _, dup := p.byID[item.ID]; dup {
				return nil, fmt.Errorf("catalog: duplicate product id %q", item.ID)
			}
			p.byID[item.ID] = item
		}
		p.products[catID] = append([]Product(nil), items...)
	}

	return p, nil
}

// Categories returns all top-level categories in catalog order.
func (p *Provider) Categories() []Category {
	return append([]Category(nil), p.categories...)
}

// CategoryByID resolves a category; ok is false when the id is unknown.
func (p *Provider) CategoryByID(id string) (Category, bool) {
	for _, c := range p.categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// Subcategories returns the filter chips for a category; empty when none exist.
func (p *Provider) Subcategories(categoryID string) []Subcategory {
	return append([]Subcategory(nil), p.subcats[categoryID]...)
}

// Products returns the product list of a category; empty when none exist.
func (p *Provider) Products(categoryID string) []Product {
	return append([]Product(nil), p.products[categoryID]...)
}

// ProductByID is the O(1) by-id lookup. ok is false for unknown ids;
// callers render a not-found state rather than treating it as an error.
func (p *Provider) ProductByID(id string) (Product, bool) {
	item, ok := p.byID[id]
	return item, ok
}

// Size reports the total number of products across all categories.
func (p *Provider) Size() int {
	return len(p.byID)
}

// Sorted returns a copy of items ordered by the given mode. Unknown modes
// keep the original order.
func Sorted(items []Product, mode SortMode) []Product {
	out := append([]Product(nil), items...)
	switch mode {
	case SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	case SortRating:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	}
	return out
}
