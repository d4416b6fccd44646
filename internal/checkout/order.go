package checkout

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/m3rciful/teleshop/internal/cart"
	"github.com/m3rciful/teleshop/internal/logging"
)

// Snapshot freezes the cart at submission time.
type Snapshot struct {
	UserID   int64
	Lines    []cart.Line
	Subtotal int
}

// Submitter hands a finished order to the order pipeline. The shop currently
// has no backend, so the shipped implementation is LocalSubmitter; a real
// deployment replaces it with a transport-backed one.
type Submitter interface {
	Submit(ctx context.Context, snap Snapshot, form Form, delivery DeliveryID) (string, error)
}

// LocalSubmitter assigns an order id and records the order in the log.
// Nothing leaves the process.
type LocalSubmitter struct{}

// Submit implements Submitter.
func (LocalSubmitter) Submit(ctx context.Context, snap Snapshot, form Form, delivery DeliveryID) (string, error) {
	totals, err := Total(snap.Lines, delivery)
	if err != nil {
		return "", err
	}

	orderID := uuid.NewString()
	attrs := []slog.Attr{
		slog.String("event", "order.submit"),
		slog.String("order_id", orderID),
		slog.Int64("user_id", snap.UserID),
		slog.String("delivery", string(delivery)),
		slog.Int("lines", len(snap.Lines)),
		slog.Int("subtotal", totals.Subtotal),
		slog.Int("total", totals.Total),
	}
	if totals.Pending {
		attrs = append(attrs, slog.Bool("pending", true))
	}
	logging.Order.LogAttrs(ctx, slog.LevelInfo, "order submitted", attrs...)
	return orderID, nil
}
