package telegram

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tele "gopkg.in/telebot.v4"
)

func noopHandler(tele.Context) error { return nil }

func TestListCommandsFiltersHiddenAndAdmin(t *testing.T) {
	reg := NewRegistry()
	reg.RegisterCommand("/catalog", Command{Handler: noopHandler, Description: "Каталог"})
	reg.RegisterCommand("/help", Command{Handler: noopHandler, Description: "Помощь"})
	reg.RegisterCommand("/stats", Command{Handler: noopHandler, Description: "Статистика", AdminOnly: true, Hidden: true})

	visible := reg.ListCommands(true)
	require.Len(t, visible, 2)
	assert.Equal(t, "/catalog", visible[0].Text)
	assert.Equal(t, "/help", visible[1].Text)

	all := reg.ListCommands(false)
	assert.Len(t, all, 3)
}

func TestLookupCommandResolvesAliases(t *testing.T) {
	reg := NewRegistry()
	reg.RegisterCommand("/basket", Command{Handler: noopHandler, Description: "Корзина", Aliases: []string{"cart"}})

	key, cmd, ok := reg.LookupCommand("/cart")
	require.True(t, ok)
	assert.Equal(t, "/basket", key)
	assert.Equal(t, "Корзина", cmd.Description)

	key, _, ok = reg.LookupCommand("basket")
	require.True(t, ok)
	assert.Equal(t, "/basket", key)

	_, _, ok = reg.LookupCommand("/missing")
	assert.False(t, ok)
}

func TestRegisterCommandRejectsInvalid(t *testing.T) {
	reg := NewRegistry()
	reg.RegisterCommand("stats", Command{Handler: noopHandler, Description: "без слэша"})
	reg.RegisterCommand("/empty", Command{Description: "без обработчика"})

	assert.Empty(t, reg.ListCommands(false))
}
