package logging

import (
	"context"
	"testing"

	"log/slog"
)

// Component loggers must be usable before Init wires them, so store and
// handler code never guards against nil.
func TestComponentLoggersDefaultToDiscard(t *testing.T) {
	loggers := map[string]*slog.Logger{
		"L":         L,
		"TG":        TG,
		"Wire":      Wire,
		"Catalog":   Catalog,
		"Cart":      Cart,
		"Favorites": Favorites,
		"Checkout":  Checkout,
		"Order":     Order,
	}
	for name, lg := range loggers {
		if lg == nil {
			t.Fatalf("logger %s is nil before Init", name)
		}
	}

	Cart.Debug("cart add", slog.Int64("user_id", 1))
	Order.LogAttrs(context.Background(), slog.LevelInfo, "order submitted")
	Event(context.Background(), "shop.cart", slog.LevelInfo, "cart.add")
}

func TestComponentScopesBaseLogger(t *testing.T) {
	if got := Component(""); got != L {
		t.Fatal("empty component must return the base logger")
	}
	if got := Component("  "); got != L {
		t.Fatal("blank component must return the base logger")
	}
	if got := Component("shop.cart"); got == nil {
		t.Fatal("component logger is nil")
	}
}
