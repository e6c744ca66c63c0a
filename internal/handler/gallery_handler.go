package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"app/internal/usecase"
)

// /galleryの公開API
type GalleryHandler struct {
	uc *usecase.GalleryUsecase
}

// DI
func NewGalleryHandler(uc *usecase.GalleryUsecase) *GalleryHandler {
	return &GalleryHandler{uc: uc}
}

func (h *GalleryHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/gallery", h.list)
	e.GET("/gallery/featured", h.featured)
	e.POST("/gallery/featured/next", h.featuredNext)
	e.POST("/gallery/featured/prev", h.featuredPrev)
}

func (h *GalleryHandler) list(c echo.Context) error {
	items, err := h.uc.List(c.Request().Context(), c.QueryParam("category"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *GalleryHandler) featured(c echo.Context) error {
	item, err := h.uc.Featured(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, item)
}

func (h *GalleryHandler) featuredNext(c echo.Context) error {
	item, err := h.uc.FeaturedNext(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, item)
}

func (h *GalleryHandler) featuredPrev(c echo.Context) error {
	item, err := h.uc.FeaturedPrev(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, item)
}
