package state

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m3rciful/teleshop/internal/checkout"
)

func TestDraftAdvance(t *testing.T) {
	d := &Draft{
		Delivery: checkout.DeliveryPickup,
		Fields:   checkout.RequiredFields(checkout.DeliveryPickup),
	}

	field, ok := d.CurrentField()
	require.True(t, ok)
	assert.Equal(t, checkout.FieldName, field)

	more := d.Advance("Иван Иванов")
	assert.True(t, more)

	field, ok = d.CurrentField()
	require.True(t, ok)
	assert.Equal(t, checkout.FieldPhone, field)

	more = d.Advance("+7 999 000-00-00")
	assert.False(t, more)

	_, ok = d.CurrentField()
	assert.False(t, ok)

	assert.Equal(t, "Иван Иванов", d.Form.Name)
	assert.Equal(t, "+7 999 000-00-00", d.Form.Phone)
}

func TestManagerDefaultsToIdle(t *testing.T) {
	m := NewMemoryManager()

	assert.Equal(t, StateIdle, m.GetState(1))
	assert.False(t, m.InProgress(1))

	sess := m.Get(1)
	assert.Equal(t, StateIdle, sess.State)
	assert.Nil(t, sess.Draft)
}

func TestManagerStateTransitions(t *testing.T) {
	m := NewMemoryManager()
	m.SetState(1, StateCheckoutField)

	assert.True(t, m.InProgress(1))
	assert.Equal(t, StateCheckoutField, m.GetState(1))

	m.ClearState(1)
	assert.False(t, m.InProgress(1))
}

func TestManagerDraftLifecycle(t *testing.T) {
	m := NewMemoryManager()
	m.SetDraft(7, &Draft{Delivery: checkout.DeliveryMKAD})

	got, ok := m.GetDraft(7)
	require.True(t, ok)
	assert.Equal(t, checkout.DeliveryMKAD, got.Delivery)

	m.ClearDraft(7)
	_, ok = m.GetDraft(7)
	assert.False(t, ok)
}

func TestManagerUpdateDraft(t *testing.T) {
	m := NewMemoryManager()

	assert.False(t, m.UpdateDraft(7, func(d *Draft) { t.Fatal("fn called without a draft") }))

	m.SetDraft(7, &Draft{
		Delivery: checkout.DeliveryPickup,
		Fields:   checkout.RequiredFields(checkout.DeliveryPickup),
	})

	ok := m.UpdateDraft(7, func(d *Draft) { d.Advance("Иван Иванов") })
	require.True(t, ok)

	got, ok := m.GetDraft(7)
	require.True(t, ok)
	assert.Equal(t, "Иван Иванов", got.Form.Name)
	assert.Equal(t, 1, got.Next)
}

// GetDraft returns copies, so mutating the snapshot must not leak into the
// stored draft.
func TestManagerDraftSnapshotIsolation(t *testing.T) {
	m := NewMemoryManager()
	m.SetDraft(7, &Draft{Delivery: checkout.DeliveryCDEK})

	snap, ok := m.GetDraft(7)
	require.True(t, ok)
	snap.Form.Name = "temp"
	snap.Next = 3

	got, _ := m.GetDraft(7)
	assert.Empty(t, got.Form.Name)
	assert.Equal(t, 0, got.Next)
}

func TestManagerConcurrentDraftAdvance(t *testing.T) {
	m := NewMemoryManager()
	m.SetDraft(1, &Draft{
		Delivery: checkout.DeliveryMKAD,
		Fields:   checkout.RequiredFields(checkout.DeliveryMKAD),
	})

	const workers = 8
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				if _, ok := m.GetDraft(1); !ok {
					return
				}
				m.UpdateDraft(1, func(d *Draft) { d.Advance("значение") })
			}
		}()
	}
	wg.Wait()

	got, ok := m.GetDraft(1)
	require.True(t, ok)
	assert.Equal(t, len(got.Fields), got.Next)
	_, more := got.CurrentField()
	assert.False(t, more)
}

func TestManagerClearDropsEverything(t *testing.T) {
	m := NewMemoryManager()
	m.SetState(1, StateCheckoutComment)
	m.SetDraft(1, &Draft{})

	m.Clear(1)

	assert.Equal(t, StateIdle, m.GetState(1))
	_, ok := m.GetDraft(1)
	assert.False(t, ok)
}
