package bot

import (
	"fmt"
	"strings"

	"github.com/m3rciful/teleshop/internal/telegram/callbacks"
	tghelpers "github.com/m3rciful/teleshop/internal/telegram/helpers"
	"github.com/m3rciful/teleshop/internal/telegram/keyboard"

	tele "gopkg.in/telebot.v4"
)

// handleFavorites renders the favorites page.
func (a *App) handleFavorites(c tele.Context) error {
	userID := c.Sender().ID
	entries := a.favorites.List(userID)

	if len(entries) == 0 {
		markup := keyboard.InlineButtonsRows(
			[]keyboard.InlineBtn{{Text: "🛍 Каталог", Unique: cbShop}},
		)
		text := "*Избранное*\nЗдесь пока пусто. Добавляйте товары с карточки товара."
		if c.Callback() != nil {
			return tghelpers.EditOrSendMD(c, text, markup)
		}
		return tghelpers.SendMD(c, text, markup)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "*Избранное* (%d)\n", len(entries))

	var rows [][]keyboard.InlineBtn
	for _, e := range entries {
		label := fmt.Sprintf("%s — %s", e.Title, a.price(e.Price))
		if !e.InStock {
			label += " (нет в наличии)"
		}
		rows = append(rows, []keyboard.InlineBtn{
			{Text: label, Unique: cbProduct, Data: e.ProductID},
			{Text: "✖", Unique: cbFavRemove, Data: e.ProductID},
		})
	}
	rows = append(rows,
		[]keyboard.InlineBtn{{Text: "🗑 Очистить избранное", Unique: cbFavClear}},
		[]keyboard.InlineBtn{{Text: "🛍 Каталог", Unique: cbShop}},
	)

	markup := keyboard.InlineButtonsRows(rows...)
	if c.Callback() != nil {
		return tghelpers.EditOrSendMD(c, b.String(), markup)
	}
	return tghelpers.SendMD(c, b.String(), markup)
}

// handleFavRemove drops one product from favorites. Payload: product id.
func (a *App) handleFavRemove(c tele.Context) error {
	a.favorites.Remove(c.Sender().ID, callbacks.Payload(c))
	_ = c.Respond(&tele.CallbackResponse{Text: "Удалено из избранного"})
	return a.handleFavorites(c)
}

// handleFavClear empties the favorites list.
func (a *App) handleFavClear(c tele.Context) error {
	a.favorites.Clear(c.Sender().ID)
	_ = c.Respond(&tele.CallbackResponse{Text: "Избранное очищено"})
	return a.handleFavorites(c)
}
