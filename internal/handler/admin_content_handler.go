package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/middleware"
	"app/internal/usecase"
)

// CMSコンテンツの管理API（管理者のみ）
type AdminContentHandler struct {
	uc *usecase.GalleryUsecase
}

// DI
func NewAdminContentHandler(uc *usecase.GalleryUsecase) *AdminContentHandler {
	return &AdminContentHandler{uc: uc}
}

type CreateContentRequest struct {
	Slug  string `json:"slug"`
	Title string `json:"title"`
	Image string `json:"image"`
	Price int64  `json:"price"` // パイサ。商品以外は0でよい
}

func (h *AdminContentHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/admin/content")
	g.Use(middleware.AdminGuard(cfg))

	g.POST("/:category", h.create)
	g.DELETE("/:category/:slug", h.remove)
}

func (h *AdminContentHandler) create(c echo.Context) error {
	var req CreateContentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	err := h.uc.CreateItem(c.Request().Context(), model.ContentItem{
		Slug:     req.Slug,
		Category: model.ContentCategory(c.Param("category")),
		Title:    req.Title,
		Image:    req.Image,
		Price:    model.Money(req.Price),
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusCreated)
}

func (h *AdminContentHandler) remove(c echo.Context) error {
	err := h.uc.DeleteItem(c.Request().Context(), c.Param("category"), c.Param("slug"))
	if err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
