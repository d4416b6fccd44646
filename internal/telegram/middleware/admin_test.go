package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"

	tele "gopkg.in/telebot.v4"
)

type senderCtx struct {
	tele.Context
	sender *tele.User
}

func (c senderCtx) Sender() *tele.User { return c.sender }

func TestWithAdminCheckBlocksNonAdmin(t *testing.T) {
	var called bool
	handler := WithAdminCheck(AdminOptions{AdminID: 100}, true, func(tele.Context) error {
		called = true
		return nil
	})

	err := handler(senderCtx{sender: &tele.User{ID: 200}})
	assert.NoError(t, err)
	assert.False(t, called)

	err = handler(senderCtx{sender: &tele.User{ID: 100}})
	assert.NoError(t, err)
	assert.True(t, called)
}

func TestWithAdminCheckRejectHandler(t *testing.T) {
	var rejected bool
	handler := WithAdminCheck(AdminOptions{
		AdminID:  100,
		OnReject: func(tele.Context) error { rejected = true; return nil },
	}, true, func(tele.Context) error {
		t.Fatal("handler must not run for non-admin")
		return nil
	})

	err := handler(senderCtx{sender: &tele.User{ID: 200}})
	assert.NoError(t, err)
	assert.True(t, rejected)
}

func TestWithAdminCheckPassThrough(t *testing.T) {
	var called bool
	inner := func(tele.Context) error { called = true; return nil }

	// Not admin-only: anyone passes.
	handler := WithAdminCheck(AdminOptions{AdminID: 100}, false, inner)
	assert.NoError(t, handler(senderCtx{sender: &tele.User{ID: 200}}))
	assert.True(t, called)

	// Admin id unset: the gate is disabled.
	called = false
	handler = WithAdminCheck(AdminOptions{}, true, inner)
	assert.NoError(t, handler(senderCtx{sender: &tele.User{ID: 200}}))
	assert.True(t, called)
}
