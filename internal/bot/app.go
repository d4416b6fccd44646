// Package bot wires the shop domain onto the Telegram surface: commands,
// inline keyboards, and the checkout conversation.
package bot

import (
	"context"
	"errors"

	"github.com/m3rciful/teleshop/internal/cart"
	"github.com/m3rciful/teleshop/internal/catalog"
	"github.com/m3rciful/teleshop/internal/checkout"
	"github.com/m3rciful/teleshop/internal/config"
	"github.com/m3rciful/teleshop/internal/favorites"
	"github.com/m3rciful/teleshop/internal/reviews"
	tg "github.com/m3rciful/teleshop/internal/telegram"
	tghelpers "github.com/m3rciful/teleshop/internal/telegram/helpers"
	"github.com/m3rciful/teleshop/internal/telegram/router"
	"github.com/m3rciful/teleshop/internal/telegram/state"

	tele "gopkg.in/telebot.v4"
)

// Callback keys. Payload separator inside a key is ':'.
const (
	cbShop         = "shop"
	cbCategory     = "cat"
	cbProduct      = "prod"
	cbSort         = "sort"
	cbCartAdd      = "cart_add"
	cbBasket       = "basket"
	cbFavorites    = "favs"
	cbFavToggle    = "fav"
	cbFavRemove    = "fav_rm"
	cbFavClear     = "fav_clear"
	cbReviews      = "reviews"
	cbCheckout     = "checkout"
	cbDelivery     = "dlv"
	cbCommentSkip  = "cmt_skip"
	cbOrderConfirm = "order_confirm"
	cbOrderCancel  = "order_cancel"
)

// Options carries the dependencies of the bot surface.
type Options struct {
	Config    *config.Config
	Catalog   *catalog.Provider
	Cart      *cart.Store
	Favorites *favorites.Store
	Reviews   *reviews.Provider
	Sessions  state.Manager
	Submitter checkout.Submitter
}

// App binds the shop stores to Telegram handlers.
type App struct {
	cfg       *config.Config
	catalog   *catalog.Provider
	cart      *cart.Store
	favorites *favorites.Store
	reviews   *reviews.Provider
	sessions  state.Manager
	submitter checkout.Submitter
}

// New validates dependencies and builds the app.
func New(opts Options) (*App, error) {
	switch {
	case opts.Config == nil:
		return nil, errors.New("bot: nil config")
	case opts.Catalog == nil:
		return nil, errors.New("bot: nil catalog provider")
	case opts.Cart == nil:
		return nil, errors.New("bot: nil cart store")
	case opts.Favorites == nil:
		return nil, errors.New("bot: nil favorites store")
	}
	a := &App{
		cfg:       opts.Config,
		catalog:   opts.Catalog,
		cart:      opts.Cart,
		favorites: opts.Favorites,
		reviews:   opts.Reviews,
		sessions:  opts.Sessions,
		submitter: opts.Submitter,
	}
	if a.reviews == nil {
		a.reviews = reviews.Default()
	}
	if a.sessions == nil {
		a.sessions = state.NewMemoryManager()
	}
	if a.submitter == nil {
		a.submitter = checkout.LocalSubmitter{}
	}
	return a, nil
}

// Register fills the registry with commands, callbacks and FSM handlers.
func (a *App) Register(reg *tg.Registry) error {
	reg.RegisterCommand("/start", tg.Command{
		Handler:     a.handleStart,
		Description: "Открыть магазин",
	})
	reg.RegisterCommand("/catalog", tg.Command{
		Handler:     a.handleCatalog,
		Description: "Каталог товаров",
		Aliases:     []string{"shop"},
	})
	reg.RegisterCommand("/basket", tg.Command{
		Handler:     a.handleBasket,
		Description: "Корзина",
		Aliases:     []string{"cart"},
	})
	reg.RegisterCommand("/favorites", tg.Command{
		Handler:     a.handleFavorites,
		Description: "Избранное",
	})
	reg.RegisterCommand("/help", tg.Command{
		Handler:     a.handleHelp,
		Description: "Помощь",
	})
	reg.RegisterCommand("/stats", tg.Command{
		Handler:     a.handleStats,
		Description: "Статистика магазина",
		AdminOnly:   true,
		Hidden:      true,
	})

	callbackHandlers := map[string]tele.HandlerFunc{
		cbShop:         a.handleCatalog,
		cbCategory:     a.handleCategory,
		cbProduct:      a.handleProduct,
		cbSort:         a.handleSort,
		cbCartAdd:      a.handleCartAdd,
		cbBasket:       a.handleBasket,
		cbFavorites:    a.handleFavorites,
		cbFavToggle:    a.handleFavToggle,
		cbFavRemove:    a.handleFavRemove,
		cbFavClear:     a.handleFavClear,
		cbReviews:      a.handleReviews,
		cbCheckout:     a.handleCheckoutStart,
		cbDelivery:     a.handleDeliveryChosen,
		cbCommentSkip:  a.handleCommentSkip,
		cbOrderConfirm: a.handleOrderConfirm,
		cbOrderCancel:  a.handleOrderCancel,
	}
	for key, handler := range callbackHandlers {
		if err := reg.RegisterCallback(key, handler); err != nil {
			return err
		}
	}

	state.RegisterHandler(state.StateCheckoutField, a.handleCheckoutFieldInput)
	state.RegisterHandler(state.StateCheckoutComment, a.handleCheckoutCommentInput)

	reg.SetTextFallback(a.handleUnknownText)
	return nil
}

// TelegramRunOptions assembles the runtime options: registry, routes and the
// shared middleware chain.
func (a *App) TelegramRunOptions() (tg.RunOptions, error) {
	reg := tg.NewRegistry()
	if err := a.Register(reg); err != nil {
		return tg.RunOptions{}, err
	}

	routes := router.CommandRoutes(reg, router.CommandRouteOptions{
		AdminID: a.cfg.Telegram.AdminID,
	})
	routes = append(routes, router.CallbackRoute(reg, router.CallbackOptions{}))
	routes = append(routes, router.TextRoute(a.sessions, reg, router.TextOptions{
		UnknownText: a.handleUnknownText,
	}))

	return tg.RunOptions{
		Config:      a.cfg,
		Registry:    reg,
		Middlewares: tg.DefaultMiddlewares(a.cfg, nil),
		Routes:      routes,
	}, nil
}

// Run starts the Telegram runtime until the context is cancelled.
func (a *App) Run(ctx context.Context) error {
	opts, err := a.TelegramRunOptions()
	if err != nil {
		return err
	}
	return tg.RunTelegram(ctx, opts)
}

func (a *App) ctx(c tele.Context) context.Context {
	return tghelpers.BuildContext(c)
}
