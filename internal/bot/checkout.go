package bot

import (
	"fmt"
	"strings"

	"log/slog"

	"github.com/m3rciful/teleshop/internal/checkout"
	"github.com/m3rciful/teleshop/internal/logging"
	"github.com/m3rciful/teleshop/internal/telegram/callbacks"
	tghelpers "github.com/m3rciful/teleshop/internal/telegram/helpers"
	"github.com/m3rciful/teleshop/internal/telegram/keyboard"
	"github.com/m3rciful/teleshop/internal/telegram/state"

	tele "gopkg.in/telebot.v4"
)

var fieldPrompts = map[checkout.Field]string{
	checkout.FieldName:    "Введите имя и фамилию получателя:",
	checkout.FieldEmail:   "Введите e-mail:",
	checkout.FieldPhone:   "Введите номер телефона:",
	checkout.FieldAddress: "Введите адрес доставки:",
	checkout.FieldZip:     "Введите почтовый индекс:",
}

var fieldLabels = map[checkout.Field]string{
	checkout.FieldName:    "Имя",
	checkout.FieldEmail:   "E-mail",
	checkout.FieldPhone:   "Телефон",
	checkout.FieldAddress: "Адрес",
	checkout.FieldZip:     "Индекс",
}

// handleCheckoutStart opens the delivery method selection. Entry is blocked
// while the cart is empty.
func (a *App) handleCheckoutStart(c tele.Context) error {
	userID := c.Sender().ID
	if a.cart.Len(userID) == 0 {
		return c.Respond(&tele.CallbackResponse{Text: "Корзина пуста"})
	}

	var rows [][]keyboard.InlineBtn
	for _, opt := range checkout.Options() {
		label := fmt.Sprintf("%s — %s", opt.Label, a.quote(opt.Quote))
		rows = append(rows, []keyboard.InlineBtn{{Text: label, Unique: cbDelivery, Data: string(opt.ID)}})
	}
	rows = append(rows, []keyboard.InlineBtn{{Text: "❌ Отмена", Unique: cbOrderCancel}})

	return tghelpers.EditOrSendMD(c, "*Оформление заказа*\nВыберите способ доставки:", keyboard.InlineButtonsRows(rows...))
}

// handleDeliveryChosen fixes the delivery method and starts collecting the
// required form fields. Payload: delivery id.
func (a *App) handleDeliveryChosen(c tele.Context) error {
	userID := c.Sender().ID
	id := checkout.DeliveryID(callbacks.Payload(c))
	opt, ok := checkout.OptionByID(id)
	if !ok {
		return c.Respond(&tele.CallbackResponse{Text: "Неизвестный способ доставки"})
	}
	if a.cart.Len(userID) == 0 {
		return c.Respond(&tele.CallbackResponse{Text: "Корзина пуста"})
	}

	draft := &state.Draft{
		Delivery: opt.ID,
		Fields:   checkout.RequiredFields(opt.ID),
	}
	field, _ := draft.CurrentField()
	a.sessions.SetDraft(userID, draft)
	a.sessions.SetState(userID, state.StateCheckoutField)

	logging.Checkout.Debug("checkout started",
		slog.String("event", "checkout.start"),
		slog.Int64("user_id", userID),
		slog.String("delivery", string(opt.ID)),
	)

	text := fmt.Sprintf("Доставка: *%s* (%s)\n\n%s", opt.Label, a.quote(opt.Quote), fieldPrompts[field])
	return tghelpers.EditOrSendMD(c, text, cancelMarkup())
}

// handleCheckoutFieldInput consumes one form field from free text and asks
// the next one.
func (a *App) handleCheckoutFieldInput(c tele.Context) error {
	userID := c.Sender().ID

	value := strings.TrimSpace(c.Text())
	if value == "" {
		draft, ok := a.sessions.GetDraft(userID)
		if !ok {
			a.sessions.ClearState(userID)
			return tghelpers.SendText(c, "Оформление прервано. Начните заново из корзины.")
		}
		field, _ := draft.CurrentField()
		return tghelpers.SendText(c, fieldPrompts[field])
	}

	var (
		more bool
		next checkout.Field
	)
	ok := a.sessions.UpdateDraft(userID, func(d *state.Draft) {
		more = d.Advance(value)
		if more {
			next, _ = d.CurrentField()
		}
	})
	if !ok {
		a.sessions.ClearState(userID)
		return tghelpers.SendText(c, "Оформление прервано. Начните заново из корзины.")
	}

	if more {
		return tghelpers.SendMD(c, fieldPrompts[next], cancelMarkup())
	}

	a.sessions.SetState(userID, state.StateCheckoutComment)
	markup := keyboard.InlineButtonsRows(
		[]keyboard.InlineBtn{{Text: "Пропустить", Unique: cbCommentSkip}},
		[]keyboard.InlineBtn{{Text: "❌ Отмена", Unique: cbOrderCancel}},
	)
	return tghelpers.SendMD(c, "Комментарий к заказу (или нажмите «Пропустить»):", markup)
}

// handleCheckoutCommentInput stores the optional comment and shows the summary.
func (a *App) handleCheckoutCommentInput(c tele.Context) error {
	userID := c.Sender().ID
	text := c.Text()
	if !a.sessions.UpdateDraft(userID, func(d *state.Draft) {
		d.Form.Set(checkout.FieldComment, text)
	}) {
		a.sessions.ClearState(userID)
		return tghelpers.SendText(c, "Оформление прервано. Начните заново из корзины.")
	}
	draft, _ := a.sessions.GetDraft(userID)
	return a.showSummary(c, draft)
}

// handleCommentSkip finishes the comment step without text.
func (a *App) handleCommentSkip(c tele.Context) error {
	userID := c.Sender().ID
	draft, ok := a.sessions.GetDraft(userID)
	if !ok {
		return c.Respond(&tele.CallbackResponse{Text: "Оформление прервано"})
	}
	return a.showSummary(c, draft)
}

func (a *App) showSummary(c tele.Context, draft state.Draft) error {
	userID := c.Sender().ID
	a.sessions.ClearState(userID)

	lines := a.cart.Items(userID)
	totals, err := checkout.Total(lines, draft.Delivery)
	if err != nil {
		return err
	}
	opt, _ := checkout.OptionByID(draft.Delivery)

	var b strings.Builder
	b.WriteString("*Ваш заказ*\n\n")
	for _, line := range lines {
		fmt.Fprintf(&b, "%s × %d — %s\n", line.Title, line.Count, a.price(line.Price*line.Count))
	}
	fmt.Fprintf(&b, "\nТовары: %s\n", a.price(totals.Subtotal))
	fmt.Fprintf(&b, "Доставка (%s): %s\n", opt.Label, a.quote(opt.Quote))
	if totals.Pending {
		b.WriteString("Итого: *" + a.price(totals.Subtotal) + " + доставка*\n")
		b.WriteString("_Точная сумма будет рассчитана менеджером._\n")
	} else {
		fmt.Fprintf(&b, "Итого: *%s*\n", a.price(totals.Total))
	}
	if note := strings.TrimSpace(opt.Quote.Note); note != "" && !totals.Pending {
		b.WriteString("_" + note + "_\n")
	}

	b.WriteString("\n*Получатель*\n")
	for _, field := range draft.Fields {
		fmt.Fprintf(&b, "%s: %s\n", fieldLabels[field], draft.Form.Get(field))
	}
	if comment := strings.TrimSpace(draft.Form.Comment); comment != "" {
		fmt.Fprintf(&b, "Комментарий: %s\n", comment)
	}

	markup := keyboard.InlineButtonsRows(
		[]keyboard.InlineBtn{{Text: "✅ Подтвердить", Unique: cbOrderConfirm}},
		[]keyboard.InlineBtn{{Text: "❌ Отмена", Unique: cbOrderCancel}},
	)
	return tghelpers.SendMD(c, b.String(), markup)
}

// handleOrderConfirm validates the draft and submits the order.
func (a *App) handleOrderConfirm(c tele.Context) error {
	userID := c.Sender().ID
	draft, ok := a.sessions.GetDraft(userID)
	if !ok {
		return c.Respond(&tele.CallbackResponse{Text: "Оформление прервано"})
	}

	lines := a.cart.Items(userID)
	if len(lines) == 0 {
		return c.Respond(&tele.CallbackResponse{Text: "Корзина пуста"})
	}

	if v := checkout.Validate(draft.Form, draft.Delivery); !v.Valid {
		missing := make([]string, 0, len(v.Missing))
		for _, f := range v.Missing {
			missing = append(missing, fieldLabels[f])
		}
		return tghelpers.SendText(c, "Не заполнено: "+strings.Join(missing, ", "))
	}

	snap := checkout.Snapshot{
		UserID:   userID,
		Lines:    lines,
		Subtotal: checkout.Subtotal(lines),
	}
	orderID, err := a.submitter.Submit(a.ctx(c), snap, draft.Form, draft.Delivery)
	if err != nil {
		logging.Checkout.Error("order submit failed",
			slog.String("event", "checkout.submit_failed"),
			slog.Int64("user_id", userID),
			slog.String("err", err.Error()),
		)
		return tghelpers.SendText(c, "Не удалось оформить заказ. Попробуйте ещё раз.")
	}

	a.cart.Clear(userID)
	a.sessions.Clear(userID)

	text := fmt.Sprintf("Спасибо! Заказ принят 🎉\nНомер заказа: `%s`\n\nМенеджер свяжется с вами для подтверждения.", orderID)
	return tghelpers.SendMD(c, text, menuMarkup())
}

// handleOrderCancel drops the draft and returns to the cart.
func (a *App) handleOrderCancel(c tele.Context) error {
	userID := c.Sender().ID
	a.sessions.Clear(userID)
	_ = c.Respond(&tele.CallbackResponse{Text: "Оформление отменено"})
	return a.handleBasket(c)
}

func cancelMarkup() *tele.ReplyMarkup {
	return keyboard.InlineButtonsRows(
		[]keyboard.InlineBtn{{Text: "❌ Отмена", Unique: cbOrderCancel}},
	)
}
