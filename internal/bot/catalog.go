package bot

import (
	"fmt"
	"strings"

	"log/slog"

	"github.com/m3rciful/teleshop/internal/catalog"
	"github.com/m3rciful/teleshop/internal/logging"
	"github.com/m3rciful/teleshop/internal/telegram/callbacks"
	tghelpers "github.com/m3rciful/teleshop/internal/telegram/helpers"
	"github.com/m3rciful/teleshop/internal/telegram/keyboard"

	tele "gopkg.in/telebot.v4"
)

// handleCatalog renders the category grid.
func (a *App) handleCatalog(c tele.Context) error {
	cats := a.catalog.Categories()
	if len(cats) == 0 {
		return tghelpers.SendText(c, "Каталог пока пуст.")
	}

	buttons := make([]keyboard.InlineBtn, 0, len(cats))
	for _, cat := range cats {
		buttons = append(buttons, keyboard.InlineBtn{
			Text:   cat.Name,
			Unique: cbCategory,
			Data:   cat.ID,
		})
	}
	markup := keyboard.InlineButtonsNPerRow(buttons, 2)

	if c.Callback() != nil {
		return tghelpers.EditOrSendMD(c, "*Каталог*\nВыберите категорию:", markup)
	}
	return tghelpers.SendMD(c, "*Каталог*\nВыберите категорию:", markup)
}

// handleCategory renders one category: subcategory chips, sort controls and
// the product list.
func (a *App) handleCategory(c tele.Context) error {
	categoryID := callbacks.Payload(c)
	return a.renderCategory(c, categoryID, "")
}

// handleSort re-renders a category with the requested sort order.
// Payload: "<categoryID>:<mode>".
func (a *App) handleSort(c tele.Context) error {
	parts, err := callbacks.Parts(c, ":")
	if err != nil || len(parts) != 2 {
		return c.Respond(&tele.CallbackResponse{Text: "Некорректный запрос"})
	}
	return a.renderCategory(c, parts[0], catalog.SortMode(parts[1]))
}

func (a *App) renderCategory(c tele.Context, categoryID string, mode catalog.SortMode) error {
	cat, ok := a.catalog.CategoryByID(categoryID)
	if !ok {
		logging.Catalog.Warn("category not found",
			slog.String("event", "catalog.category_missing"),
			slog.String("category_id", categoryID),
		)
		return c.Respond(&tele.CallbackResponse{Text: "Категория не найдена"})
	}

	products := a.catalog.Products(categoryID)
	if mode != "" {
		products = catalog.Sorted(products, mode)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "*%s*\n", cat.Name)
	if subs := a.catalog.Subcategories(categoryID); len(subs) > 0 {
		names := make([]string, 0, len(subs))
		for _, s := range subs {
			names = append(names, s.Name)
		}
		fmt.Fprintf(&b, "Подкатегории: %s\n", strings.Join(names, " · "))
	}
	if len(products) == 0 {
		b.WriteString("\nВ этой категории пока нет товаров.")
	} else {
		fmt.Fprintf(&b, "Товаров: %d", len(products))
	}

	var rows [][]keyboard.InlineBtn
	if len(products) > 1 {
		rows = append(rows, []keyboard.InlineBtn{
			{Text: "Цена ↑", Unique: cbSort, Data: categoryID + ":" + string(catalog.SortPriceAsc)},
			{Text: "Цена ↓", Unique: cbSort, Data: categoryID + ":" + string(catalog.SortPriceDesc)},
			{Text: "Рейтинг", Unique: cbSort, Data: categoryID + ":" + string(catalog.SortRating)},
		})
	}
	for _, p := range products {
		label := fmt.Sprintf("%s — %s", p.Title, a.price(p.Price))
		if !p.InStock {
			label += " (нет в наличии)"
		}
		rows = append(rows, []keyboard.InlineBtn{{Text: label, Unique: cbProduct, Data: p.ID}})
	}
	rows = append(rows, []keyboard.InlineBtn{{Text: "⬅️ Каталог", Unique: cbShop}})

	return tghelpers.EditOrSendMD(c, b.String(), keyboard.InlineButtonsRows(rows...))
}
