// Package state provides the in-memory FSM/session manager that drives the
// checkout conversation. Sessions carry a typed order draft instead of a
// generic key/value bag so handlers never need type assertions.
package state

import (
	"github.com/m3rciful/teleshop/internal/checkout"

	tele "gopkg.in/telebot.v4"
)

// State identifies a finite-state-machine step used in conversations.
type State string

const (
	// StateIdle indicates there is no active conversation with the user.
	StateIdle State = "idle"
	// StateCheckoutField indicates the bot is collecting the next required
	// order form field.
	StateCheckoutField State = "checkout.field"
	// StateCheckoutComment indicates the bot is waiting for an optional
	// order comment.
	StateCheckoutComment State = "checkout.comment"
)

// Draft accumulates checkout conversation data. It lives only inside the
// session and is dropped on cancel or submit. Handlers run on per-update
// goroutines, so the stored draft is mutated only through
// Manager.UpdateDraft; GetDraft hands out snapshots.
type Draft struct {
	Delivery checkout.DeliveryID
	Form     checkout.Form
	// Fields is the ordered list of inputs still to collect; Next indexes
	// the field currently being asked.
	Fields []checkout.Field
	Next   int
}

// CurrentField returns the field being collected, or false when the form is
// complete.
func (d *Draft) CurrentField() (checkout.Field, bool) {
	if d == nil || d.Next < 0 || d.Next >= len(d.Fields) {
		return "", false
	}
	return d.Fields[d.Next], true
}

// Advance stores the value for the current field and moves to the next one.
// It reports whether more fields remain.
func (d *Draft) Advance(value string) bool {
	if field, ok := d.CurrentField(); ok {
		d.Form.Set(field, value)
		d.Next++
	}
	_, more := d.CurrentField()
	return more
}

// Session stores conversation state and the order draft for a user.
type Session struct {
	State State
	Draft *Draft
}

// Manager orchestrates user sessions and FSM state transitions.
type Manager interface {
	Get(userID int64) *Session
	Clear(userID int64)

	SetState(userID int64, st State)
	GetState(userID int64) State
	HasState(userID int64) bool
	ClearState(userID int64)

	SetDraft(userID int64, draft *Draft)
	GetDraft(userID int64) (Draft, bool)
	UpdateDraft(userID int64, fn func(*Draft)) bool
	ClearDraft(userID int64)

	InProgress(userID int64) bool
	ManagerHandler(c tele.Context) error
}
