package server

import (
	"github.com/labstack/echo/v4"

	"app/internal/config"
	"app/internal/handler"
)

// Handlers はルート登録に必要なハンドラ一式。
type Handlers struct {
	Cart         *handler.CartHandler
	Order        *handler.OrderHandler
	Chat         *handler.ChatHandler
	Gallery      *handler.GalleryHandler
	AdminContent *handler.AdminContentHandler
	Auth         *handler.AuthHandler
}

func RegisterRoutes(e *echo.Echo, cfg config.Config, h Handlers) {
	h.Cart.RegisterRoutes(e, cfg)
	h.Order.RegisterRoutes(e, cfg)
	h.Chat.RegisterRoutes(e)
	h.Gallery.RegisterRoutes(e)
	h.AdminContent.RegisterRoutes(e, cfg)
	h.Auth.RegisterRoutes(e)
}
