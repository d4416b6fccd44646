// Package checkout computes delivery costs, order totals, and required-field
// validation for the order form. All functions are pure over their inputs;
// the only state lives in the cart passed in by the caller.
package checkout

import (
	"fmt"

	"github.com/m3rciful/teleshop/internal/cart"
)

// DeliveryID identifies one of the enumerated delivery methods.
type DeliveryID string

const (
	// DeliveryMKAD is courier delivery inside the MKAD ring.
	DeliveryMKAD DeliveryID = "mkad"
	// DeliveryOutMKAD is courier delivery outside the MKAD ring.
	DeliveryOutMKAD DeliveryID = "out_mkad"
	// DeliveryPickup is self pickup from the store.
	DeliveryPickup DeliveryID = "pickup"
	// DeliveryYandex is Yandex delivery to a pickup point.
	DeliveryYandex DeliveryID = "yandex"
	// DeliveryCDEK is CDEK delivery to a pickup point.
	DeliveryCDEK DeliveryID = "cdek"
)

// CostKind classifies how a delivery price should be read.
type CostKind string

const (
	// CostFree means delivery costs nothing.
	CostFree CostKind = "free"
	// CostEstimate means the amount is a lower bound ("from N"); the exact
	// sum is settled manually by a manager.
	CostEstimate CostKind = "estimate"
	// CostUnresolved means the system has no computed value. It must never
	// be rendered as 0; totals stay pending until a manager clarifies it.
	CostUnresolved CostKind = "unresolved"
)

// Quote is the cost rule of a delivery method.
type Quote struct {
	Amount int
	Kind   CostKind
	Note   string
}

// Resolved reports whether the quote carries a usable amount.
func (q Quote) Resolved() bool {
	return q.Kind != CostUnresolved
}

// Option is one selectable delivery method.
type Option struct {
	ID    DeliveryID
	Label string
	Quote Quote
}

// ErrUnknownDelivery is returned for delivery ids outside the enumerated set.
var ErrUnknownDelivery = fmt.Errorf("checkout: unknown delivery id")

// options holds the canonical variant of the delivery table. An earlier
// revision priced cdek as unresolved too; the shipped table keeps it free.
var options = []Option{
	{
		ID:    DeliveryMKAD,
		Label: "Доставка курьером в пределах МКАД",
		Quote: Quote{Kind: CostFree},
	},
	{
		ID:    DeliveryOutMKAD,
		Label: "Доставка курьером за МКАД",
		Quote: Quote{Amount: 1000, Kind: CostEstimate, Note: "Точная сумма будет рассчитана менеджером"},
	},
	{
		ID:    DeliveryPickup,
		Label: "Самовывоз",
		Quote: Quote{Kind: CostFree},
	},
	{
		ID:    DeliveryYandex,
		Label: "ЯндексДоставка (ПВЗ)",
		Quote: Quote{Kind: CostUnresolved, Note: "Стоимость уточняется менеджером"},
	},
	{
		ID:    DeliveryCDEK,
		Label: "СДЭК (ПВЗ)",
		Quote: Quote{Kind: CostFree},
	},
}

// Options returns the delivery methods in presentation order.
func Options() []Option {
	return append([]Option(nil), options...)
}

// OptionByID resolves a delivery method by id.
func OptionByID(id DeliveryID) (Option, bool) {
	for _, opt := range options {
		if opt.ID == id {
			return opt, true
		}
	}
	return Option{}, false
}

// Cost returns the cost rule for the delivery id.
func Cost(id DeliveryID) (Quote, error) {
	opt, ok := OptionByID(id)
	if !ok {
		return Quote{}, fmt.Errorf("%w: %q", ErrUnknownDelivery, id)
	}
	return opt.Quote, nil
}

// Subtotal sums price*count over the cart lines.
func Subtotal(lines []cart.Line) int {
	total := 0
	for _, line := range lines {
		total += line.Price * line.Count
	}
	return total
}

// Totals is the order summary for a cart and a chosen delivery method.
type Totals struct {
	Subtotal int
	Delivery Quote
	// Total = Subtotal + Delivery.Amount when the quote is resolved.
	// For unresolved quotes Total equals Subtotal and Pending is true.
	Total   int
	Pending bool
}

// Total computes the order summary.
func Total(lines []cart.Line, id DeliveryID) (Totals, error) {
	quote, err := Cost(id)
	if err != nil {
		return Totals{}, err
	}
	sub := Subtotal(lines)
	t := Totals{Subtotal: sub, Delivery: quote}
	if quote.Resolved() {
		t.Total = sub + quote.Amount
	} else {
		t.Total = sub
		t.Pending = true
	}
	return t, nil
}
