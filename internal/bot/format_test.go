package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m3rciful/teleshop/internal/checkout"
	"github.com/m3rciful/teleshop/internal/config"
)

func testApp() *App {
	return &App{cfg: &config.Config{Shop: config.ShopConfig{Currency: "руб."}}}
}

func TestPriceGrouping(t *testing.T) {
	a := testApp()

	assert.Equal(t, "69 000 руб.", a.price(69000))
	assert.Equal(t, "1 000 000 руб.", a.price(1000000))
	assert.Equal(t, "500 руб.", a.price(500))
	assert.Equal(t, "0 руб.", a.price(0))
}

func TestQuoteRendering(t *testing.T) {
	a := testApp()

	assert.Equal(t, "Бесплатно", a.quote(checkout.Quote{Kind: checkout.CostFree}))
	assert.Equal(t, "от 1 000 руб.", a.quote(checkout.Quote{Amount: 1000, Kind: checkout.CostEstimate}))

	// An unresolved quote must never surface a number.
	rendered := a.quote(checkout.Quote{Kind: checkout.CostUnresolved})
	assert.Equal(t, "Стоимость уточняется", rendered)
	assert.NotContains(t, rendered, "0")
}

func TestStars(t *testing.T) {
	assert.Equal(t, "★★★★★", stars(5))
	assert.Equal(t, "★★★★☆", stars(4.2))
	assert.Equal(t, "☆☆☆☆☆", stars(0))
}
