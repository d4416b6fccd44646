package bot

import (
	"fmt"
	"strings"

	"github.com/m3rciful/teleshop/internal/checkout"
)

// price renders an amount with the configured currency, e.g. "69 000 руб.".
func (a *App) price(amount int) string {
	return fmt.Sprintf("%s %s", groupDigits(amount), a.cfg.Shop.Currency)
}

// quote renders a delivery quote. Unresolved quotes never show a number.
func (a *App) quote(q checkout.Quote) string {
	switch q.Kind {
	case checkout.CostFree:
		return "Бесплатно"
	case checkout.CostEstimate:
		return "от " + a.price(q.Amount)
	default:
		return "Стоимость уточняется"
	}
}

// groupDigits inserts thin spaces between thousands groups.
func groupDigits(n int) string {
	s := fmt.Sprintf("%d", n)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteRune(' ')
		}
		b.WriteRune(r)
	}
	out := b.String()
	if neg {
		out = "-" + out
	}
	return out
}

// stars renders a 0..5 rating as filled stars, e.g. 4.0 -> "★★★★☆".
func stars(rating float64) string {
	full := int(rating + 0.5)
	if full < 0 {
		full = 0
	}
	if full > 5 {
		full = 5
	}
	return strings.Repeat("★", full) + strings.Repeat("☆", 5-full)
}
