// Package reviews serves the static product reviews shown on the reviews
// page. Ratings are integers in [0,5]; text is optional.
package reviews

// Review is one customer review of a product.
type Review struct {
	User   string
	Rating int
	Text   string
}

// Provider is a read-only review source keyed by product id.
type Provider struct {
	byProduct map[string][]Review
}

// NewProvider builds the provider from a fixed review table.
func NewProvider(byProduct map[string][]Review) *Provider {
	if byProduct == nil {
		byProduct = make(map[string][]Review)
	}
	return &Provider{byProduct: byProduct}
}

// Default returns the provider with the stock review set.
func Default() *Provider {
	return NewProvider(map[string][]Review{
		"xbox-series-x": {
			{User: "Пользователь", Rating: 5, Text: "Рекомендую, все отлично"},
			{User: "Пользователь", Rating: 5},
			{User: "Пользователь", Rating: 4},
		},
		"xbox-series-s": {
			{User: "Пользователь", Rating: 5},
		},
	})
}

// List returns the reviews of a product; empty when none exist.
func (p *Provider) List(productID string) []Review {
	return append([]Review(nil), p.byProduct[productID]...)
}

// Average returns the mean rating of a product and false when it has no
// reviews.
func (p *Provider) Average(productID string) (float64, bool) {
	list := p.byProduct[productID]
	if len(list) == 0 {
		return 0, false
	}
	sum := 0
	for _, r := range list {
		sum += r.Rating
	}
	return float64(sum) / float64(len(list)), true
}
