package bot

import (
	"fmt"
	"strings"

	"log/slog"

	"github.com/m3rciful/teleshop/internal/cart"
	"github.com/m3rciful/teleshop/internal/catalog"
	"github.com/m3rciful/teleshop/internal/favorites"
	"github.com/m3rciful/teleshop/internal/logging"
	"github.com/m3rciful/teleshop/internal/telegram/callbacks"
	tghelpers "github.com/m3rciful/teleshop/internal/telegram/helpers"
	"github.com/m3rciful/teleshop/internal/telegram/keyboard"

	tele "gopkg.in/telebot.v4"
)

// handleProduct renders the product card. Payload: product id.
func (a *App) handleProduct(c tele.Context) error {
	product, ok := a.catalog.ProductByID(callbacks.Payload(c))
	if !ok {
		return c.Respond(&tele.CallbackResponse{Text: "Товар не найден"})
	}
	return a.renderProduct(c, product)
}

func (a *App) renderProduct(c tele.Context, p catalog.Product) error {
	userID := c.Sender().ID

	var b strings.Builder
	fmt.Fprintf(&b, "*%s*\n", p.Title)
	fmt.Fprintf(&b, "%s  %.1f\n", stars(p.Rating), p.Rating)
	fmt.Fprintf(&b, "Цена: *%s*\n", a.price(p.Price))
	if p.InStock {
		b.WriteString("В наличии ✅\n")
	} else {
		b.WriteString("Нет в наличии ❌\n")
	}
	if p.Description != "" {
		b.WriteString("\n" + p.Description + "\n")
	}
	if specLines := specLines(p.Specs); len(specLines) > 0 {
		b.WriteString("\nХарактеристики:\n")
		for _, line := range specLines {
			b.WriteString(line + "\n")
		}
	}

	favLabel := "🤍 В избранное"
	if a.favorites.IsFavorite(userID, p.ID) {
		favLabel = "❤️ Убрать из избранного"
	}

	var rows [][]keyboard.InlineBtn
	if p.InStock {
		rows = append(rows, []keyboard.InlineBtn{{Text: "🛒 В корзину", Unique: cbCartAdd, Data: p.ID}})
	}
	rows = append(rows, []keyboard.InlineBtn{{Text: favLabel, Unique: cbFavToggle, Data: p.ID}})
	if len(a.reviews.List(p.ID)) > 0 {
		rows = append(rows, []keyboard.InlineBtn{{Text: "💬 Отзывы", Unique: cbReviews, Data: p.ID}})
	}
	rows = append(rows, []keyboard.InlineBtn{{Text: "⬅️ Каталог", Unique: cbShop}})

	return tghelpers.EditOrSendMD(c, b.String(), keyboard.InlineButtonsRows(rows...))
}

func specLines(s catalog.Specs) []string {
	var lines []string
	add := func(label, value string) {
		if strings.TrimSpace(value) != "" {
			lines = append(lines, fmt.Sprintf("• %s: %s", label, value))
		}
	}
	add("Тип", s.Type)
	add("Модель", s.Model)
	add("Размер", s.Size)
	add("Разрешение", s.Resolution)
	add("Процессор", s.CPU)
	return lines
}

// handleCartAdd puts a product into the cart. Payload: product id.
func (a *App) handleCartAdd(c tele.Context) error {
	product, ok := a.catalog.ProductByID(callbacks.Payload(c))
	if !ok {
		return c.Respond(&tele.CallbackResponse{Text: "Товар не найден"})
	}
	if !product.InStock {
		return c.Respond(&tele.CallbackResponse{Text: "Товара нет в наличии"})
	}

	userID := c.Sender().ID
	a.cart.Add(userID, cart.Item{
		ProductID: product.ID,
		Title:     product.Title,
		Image:     product.Image,
		Price:     product.Price,
	})
	return c.Respond(&tele.CallbackResponse{Text: "Добавлено в корзину 🛒"})
}

// handleFavToggle adds or removes a favorite. Payload: product id.
func (a *App) handleFavToggle(c tele.Context) error {
	product, ok := a.catalog.ProductByID(callbacks.Payload(c))
	if !ok {
		return c.Respond(&tele.CallbackResponse{Text: "Товар не найден"})
	}
	userID := c.Sender().ID

	if a.favorites.IsFavorite(userID, product.ID) {
		a.favorites.Remove(userID, product.ID)
		logging.Favorites.Debug("favorite removed",
			slog.String("event", "favorites.remove"),
			slog.Int64("user_id", userID),
			slog.String("product_id", product.ID),
		)
	} else {
		a.favorites.Add(userID, favorites.Entry{
			ProductID: product.ID,
			Title:     product.Title,
			Image:     product.Image,
			Price:     product.Price,
			Rating:    product.Rating,
			InStock:   product.InStock,
		})
		logging.Favorites.Debug("favorite added",
			slog.String("event", "favorites.add"),
			slog.Int64("user_id", userID),
			slog.String("product_id", product.ID),
		)
	}
	// Re-render so the toggle label flips.
	return a.renderProduct(c, product)
}

// handleReviews renders the review list of a product. Payload: product id.
func (a *App) handleReviews(c tele.Context) error {
	product, ok := a.catalog.ProductByID(callbacks.Payload(c))
	if !ok {
		return c.Respond(&tele.CallbackResponse{Text: "Товар не найден"})
	}

	list := a.reviews.List(product.ID)
	var b strings.Builder
	fmt.Fprintf(&b, "*Отзывы — %s*\n", product.Title)
	if avg, ok := a.reviews.Average(product.ID); ok {
		fmt.Fprintf(&b, "Средняя оценка: %.1f из 5\n", avg)
	}
	if len(list) == 0 {
		b.WriteString("\nОтзывов пока нет.")
	}
	for _, r := range list {
		fmt.Fprintf(&b, "\n%s %s", stars(float64(r.Rating)), r.User)
		if r.Text != "" {
			fmt.Fprintf(&b, "\n_%s_", r.Text)
		}
		b.WriteString("\n")
	}

	markup := keyboard.InlineButtonsRows(
		[]keyboard.InlineBtn{{Text: "⬅️ К товару", Unique: cbProduct, Data: product.ID}},
	)
	return tghelpers.EditOrSendMD(c, b.String(), markup)
}
