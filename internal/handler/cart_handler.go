package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/middleware"
	"app/internal/usecase"
	"app/internal/view"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Error: he.Message})
	}

	//500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

// /cartのHTTP
type CartHandler struct {
	uc *usecase.CartUsecase
}

// DI
func NewCartHandler(uc *usecase.CartUsecase) *CartHandler {
	return &CartHandler{uc: uc}
}

type AddItemRequest struct {
	ProductID string `json:"product_id"`
	Title     string `json:"title"`
	Price     int64  `json:"price"` // パイサ
	Image     string `json:"image"`
}

type UpdateItemRequest struct {
	Op string `json:"op"` // inc / dec
}

// CartStateResponse は変更後のカートとバッジをまとめて返す。
// 追加時はトースト、qty==1への減算時は削除確認フラグが付く。
type CartStateResponse struct {
	Cart         view.CartPageView `json:"cart"`
	Badge        view.BadgeView    `json:"badge"`
	Toast        *view.ToastView   `json:"toast,omitempty"`
	RemovePrompt bool              `json:"remove_prompt,omitempty"`
}

// /cart配下を登録（カートCookie必須）
func (h *CartHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/cart")
	g.Use(middleware.CartSession(cfg))

	g.GET("", h.getCart)
	g.GET("/badge", h.getBadge)
	g.POST("/items", h.addItem)
	g.PATCH("/items/:id", h.updateItem)
	g.DELETE("/items/:id", h.removeItem)
	g.DELETE("", h.clearCart)
}

func (h *CartHandler) getCart(c echo.Context) error {
	cartID, ok := middleware.CartIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid cart"})
	}

	items, err := h.uc.Get(c.Request().Context(), cartID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, stateResponse(items))
}

func (h *CartHandler) getBadge(c echo.Context) error {
	cartID, ok := middleware.CartIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid cart"})
	}

	items, err := h.uc.Get(c.Request().Context(), cartID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, view.Badge(items.TotalQty()))
}

func (h *CartHandler) addItem(c echo.Context) error {
	cartID, ok := middleware.CartIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid cart"})
	}

	var req AddItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	items, err := h.uc.Add(c.Request().Context(), cartID, usecase.AddItemInput{
		ProductID: req.ProductID,
		Title:     req.Title,
		Price:     model.Money(req.Price),
		Image:     req.Image,
	})
	if err != nil {
		return writeError(c, err)
	}

	resp := stateResponse(items)
	toast := view.Toast("Added to cart")
	resp.Toast = &toast

	return c.JSON(http.StatusOK, resp)
}

func (h *CartHandler) updateItem(c echo.Context) error {
	cartID, ok := middleware.CartIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid cart"})
	}

	var req UpdateItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	productID := c.Param("id")

	switch req.Op {
	case "inc":
		items, _, err := h.uc.Increase(c.Request().Context(), cartID, productID)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, stateResponse(items))

	case "dec":
		items, res, err := h.uc.Decrease(c.Request().Context(), cartID, productID)
		if err != nil {
			return writeError(c, err)
		}
		resp := stateResponse(items)
		resp.RemovePrompt = res.RemovePrompt
		return c.JSON(http.StatusOK, resp)

	default:
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid op"})
	}
}

func (h *CartHandler) removeItem(c echo.Context) error {
	cartID, ok := middleware.CartIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid cart"})
	}

	items, err := h.uc.Remove(c.Request().Context(), cartID, c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, stateResponse(items))
}

func (h *CartHandler) clearCart(c echo.Context) error {
	cartID, ok := middleware.CartIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid cart"})
	}

	items, err := h.uc.Clear(c.Request().Context(), cartID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, stateResponse(items))
}

func stateResponse(items model.CartItems) CartStateResponse {
	return CartStateResponse{
		Cart:  view.CartPage(items),
		Badge: view.Badge(items.TotalQty()),
	}
}
