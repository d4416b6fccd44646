package bot

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/m3rciful/teleshop/internal/buildinfo"
	tghelpers "github.com/m3rciful/teleshop/internal/telegram/helpers"
	"github.com/m3rciful/teleshop/internal/telegram/keyboard"

	tele "gopkg.in/telebot.v4"
)

func menuMarkup() *tele.ReplyMarkup {
	return keyboard.InlineButtonsRows(
		[]keyboard.InlineBtn{{Text: "🛍 Каталог", Unique: cbShop}},
		[]keyboard.InlineBtn{
			{Text: "❤️ Избранное", Unique: cbFavorites},
			{Text: "🛒 Корзина", Unique: cbBasket},
		},
	)
}

func (a *App) handleStart(c tele.Context) error {
	name := "друг"
	if sender := c.Sender(); sender != nil && strings.TrimSpace(sender.FirstName) != "" {
		name = strings.TrimSpace(sender.FirstName)
	}

	text := fmt.Sprintf("Привет, %s! 👋\nДобро пожаловать в наш магазин.\n\nВыбирайте товары в каталоге, добавляйте в корзину и оформляйте заказ прямо здесь.", name)
	return tghelpers.SendText(c, text, &tele.SendOptions{ReplyMarkup: menuMarkup()})
}

func (a *App) handleHelp(c tele.Context) error {
	var b strings.Builder
	b.WriteString("Команды:\n")
	b.WriteString("/catalog — каталог товаров\n")
	b.WriteString("/basket — корзина\n")
	b.WriteString("/favorites — избранное\n")
	if contact := strings.TrimSpace(a.cfg.Shop.SupportContact); contact != "" {
		b.WriteString("\nПоддержка: " + contact)
	}
	if channel := strings.TrimSpace(a.cfg.Shop.Channel); channel != "" {
		b.WriteString("\nНаш канал: " + channel)
	}
	return tghelpers.SendText(c, b.String())
}

// handleStats reports service internals to the shop admin.
func (a *App) handleStats(c tele.Context) error {
	var b strings.Builder
	b.WriteString("*Статистика*\n")
	fmt.Fprintf(&b, "Товаров в каталоге: %d\n", a.catalog.Size())
	fmt.Fprintf(&b, "Категорий: %d\n", len(a.catalog.Categories()))
	fmt.Fprintf(&b, "\nВерсия: `%s`", buildinfo.Version)
	fmt.Fprintf(&b, "\nСборка: `%s`", buildinfo.Commit)
	if buildinfo.Date != "" {
		fmt.Fprintf(&b, " (%s)", buildinfo.Date)
	}
	fmt.Fprintf(&b, "\nGo: %s", runtime.Version())
	return tghelpers.SendMD(c, b.String())
}

func (a *App) handleUnknownText(c tele.Context) error {
	return tghelpers.SendText(c, "Не понимаю эту команду. Откройте каталог 👇", &tele.SendOptions{ReplyMarkup: menuMarkup()})
}
