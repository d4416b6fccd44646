package router

import (
	"time"

	tg "github.com/m3rciful/teleshop/internal/telegram"
	"github.com/m3rciful/teleshop/internal/telegram/middleware"

	tele "gopkg.in/telebot.v4"
)

// CommandRouteOptions configures how commands are wrapped and exposed.
type CommandRouteOptions struct {
	AdminID       int64
	OnAdminReject tele.HandlerFunc
}

// CommandRoutes prepares command handlers wrapped with shared middleware.
func CommandRoutes(reg *tg.Registry, opts CommandRouteOptions) []tg.Route {
	if reg == nil {
		return nil
	}

	adminOpts := middleware.AdminOptions{
		AdminID:  opts.AdminID,
		OnReject: opts.OnAdminReject,
	}

	var routes []tg.Route
	for name, cmd := range reg.Commands() {
		cmdName := name
		handler := middleware.WithAdminCheck(adminOpts, cmd.AdminOnly, cmd.Handler)
		wrapped := func(c tele.Context) error {
			start := time.Now()
			return handleWithSummary(c, normalizeHandlerName(cmdName), start, "", "", func() error {
				return handler(c)
			})
		}
		routes = append(routes, tg.Route{
			Endpoint: cmdName,
			Handler:  middleware.RecoverMiddleware(middleware.LoggerMiddleware(wrapped)),
		})
	}
	return routes
}
