package bot

import (
	"fmt"
	"strings"

	tghelpers "github.com/m3rciful/teleshop/internal/telegram/helpers"
	"github.com/m3rciful/teleshop/internal/telegram/keyboard"

	tele "gopkg.in/telebot.v4"
)

// handleBasket renders the cart page.
func (a *App) handleBasket(c tele.Context) error {
	userID := c.Sender().ID
	lines := a.cart.Items(userID)

	if len(lines) == 0 {
		markup := keyboard.InlineButtonsRows(
			[]keyboard.InlineBtn{{Text: "🛍 Каталог", Unique: cbShop}},
		)
		text := "*Корзина*\nКорзина пуста. Самое время что-нибудь выбрать!"
		if c.Callback() != nil {
			return tghelpers.EditOrSendMD(c, text, markup)
		}
		return tghelpers.SendMD(c, text, markup)
	}

	var b strings.Builder
	b.WriteString("*Корзина*\n\n")
	for _, line := range lines {
		fmt.Fprintf(&b, "%s × %d — %s\n", line.Title, line.Count, a.price(line.Price*line.Count))
	}
	fmt.Fprintf(&b, "\nИтого: *%s*", a.price(a.cart.Subtotal(userID)))

	markup := keyboard.InlineButtonsRows(
		[]keyboard.InlineBtn{{Text: "✅ Оформить заказ", Unique: cbCheckout}},
		[]keyboard.InlineBtn{{Text: "🛍 Каталог", Unique: cbShop}},
	)
	if c.Callback() != nil {
		return tghelpers.EditOrSendMD(c, b.String(), markup)
	}
	return tghelpers.SendMD(c, b.String(), markup)
}
