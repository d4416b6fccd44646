package checkout

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m3rciful/teleshop/internal/cart"
)

func sampleLines() []cart.Line {
	return []cart.Line{
		{ProductID: "a", Title: "A", Price: 1000, Count: 2},
		{ProductID: "b", Title: "B", Price: 500, Count: 1},
	}
}

func TestSubtotal(t *testing.T) {
	assert.Equal(t, 2500, Subtotal(sampleLines()))
	assert.Equal(t, 0, Subtotal(nil))
}

func TestCostPerDelivery(t *testing.T) {
	tests := []struct {
		id   DeliveryID
		kind CostKind
	}{
		{DeliveryMKAD, CostFree},
		{DeliveryOutMKAD, CostEstimate},
		{DeliveryPickup, CostFree},
		{DeliveryYandex, CostUnresolved},
		{DeliveryCDEK, CostFree},
	}
	for _, tt := range tests {
		q, err := Cost(tt.id)
		require.NoError(t, err, "delivery %s", tt.id)
		assert.Equal(t, tt.kind, q.Kind, "delivery %s", tt.id)
	}
}

func TestCostUnknownDelivery(t *testing.T) {
	_, err := Cost("teleport")
	assert.ErrorIs(t, err, ErrUnknownDelivery)
}

func TestTotalResolved(t *testing.T) {
	totals, err := Total(sampleLines(), DeliveryOutMKAD)
	require.NoError(t, err)

	assert.Equal(t, 2500, totals.Subtotal)
	assert.Equal(t, 3500, totals.Total)
	assert.False(t, totals.Pending)
}

func TestTotalFreeDelivery(t *testing.T) {
	totals, err := Total(sampleLines(), DeliveryMKAD)
	require.NoError(t, err)

	assert.Equal(t, 2500, totals.Total)
	assert.False(t, totals.Pending)
}

func TestTotalUnresolvedStaysPending(t *testing.T) {
	totals, err := Total(sampleLines(), DeliveryYandex)
	require.NoError(t, err)

	// The unresolved amount must never be folded into the total as 0.
	assert.Equal(t, 2500, totals.Total)
	assert.True(t, totals.Pending)
	assert.False(t, totals.Delivery.Resolved())
}

func TestRequiredFields(t *testing.T) {
	tests := []struct {
		id     DeliveryID
		fields []Field
	}{
		{DeliveryMKAD, []Field{FieldName, FieldPhone, FieldAddress, FieldZip}},
		{DeliveryOutMKAD, []Field{FieldName, FieldPhone, FieldAddress}},
		{DeliveryYandex, []Field{FieldName, FieldPhone, FieldAddress}},
		{DeliveryCDEK, []Field{FieldName, FieldPhone, FieldAddress}},
		{DeliveryPickup, []Field{FieldName, FieldPhone}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.fields, RequiredFields(tt.id), "delivery %s", tt.id)
	}
}

func TestValidateMissingFields(t *testing.T) {
	form := Form{Phone: "+7 999 000-00-00"}
	v := Validate(form, DeliveryMKAD)

	assert.False(t, v.Valid)
	assert.Equal(t, []Field{FieldName, FieldAddress, FieldZip}, v.Missing)
}

func TestValidateWhitespaceCountsAsEmpty(t *testing.T) {
	form := Form{Name: "   ", Phone: "+7"}
	v := Validate(form, DeliveryPickup)

	assert.False(t, v.Valid)
	assert.Equal(t, []Field{FieldName}, v.Missing)
}

func TestValidateComplete(t *testing.T) {
	form := Form{Name: "Иван Иванов", Phone: "+7 999 000-00-00"}
	v := Validate(form, DeliveryPickup)

	assert.True(t, v.Valid)
	assert.Empty(t, v.Missing)
}

func TestFormSetGetRoundTrip(t *testing.T) {
	var form Form
	form.Set(FieldAddress, "  Москва, ул. Ленина, 1  ")

	assert.Equal(t, "Москва, ул. Ленина, 1", form.Get(FieldAddress))
	assert.Equal(t, "", form.Get("unknown"))
}

func TestLocalSubmitterAssignsOrderID(t *testing.T) {
	snap := Snapshot{UserID: 42, Lines: sampleLines(), Subtotal: 2500}
	form := Form{Name: "Иван", Phone: "+7"}

	orderID, err := LocalSubmitter{}.Submit(context.Background(), snap, form, DeliveryPickup)
	require.NoError(t, err)

	_, parseErr := uuid.Parse(orderID)
	assert.NoError(t, parseErr)
}

func TestLocalSubmitterRejectsUnknownDelivery(t *testing.T) {
	snap := Snapshot{UserID: 42, Lines: sampleLines()}

	_, err := LocalSubmitter{}.Submit(context.Background(), snap, Form{}, "teleport")
	assert.ErrorIs(t, err, ErrUnknownDelivery)
}
