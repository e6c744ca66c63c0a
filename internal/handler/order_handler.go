package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/middleware"
	"app/internal/usecase"
)

// 注文のWhatsApp引き渡し
type OrderHandler struct {
	cartUC  *usecase.CartUsecase
	orderUC *usecase.OrderUsecase
}

// DI
func NewOrderHandler(cartUC *usecase.CartUsecase, orderUC *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{cartUC: cartUC, orderUC: orderUC}
}

type BuyNowRequest struct {
	Title string `json:"title"`
	Price int64  `json:"price"` // パイサ
}

func (h *OrderHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("")
	g.Use(middleware.CartSession(cfg))

	g.POST("/cart/order", h.placeOrder)
	g.POST("/buy-now", h.buyNow)
}

// カートの中身を注文文面にして返す。送信はフロントがwa.me経由で行う。
func (h *OrderHandler) placeOrder(c echo.Context) error {
	cartID, ok := middleware.CartIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid cart"})
	}

	items, err := h.cartUC.Get(c.Request().Context(), cartID)
	if err != nil {
		return writeError(c, err)
	}

	out, err := h.orderUC.PlaceOrder(items)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) buyNow(c echo.Context) error {
	var req BuyNowRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.orderUC.BuyNow(usecase.BuyNowInput{
		Title: req.Title,
		Price: model.Money(req.Price),
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}
