package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"app/internal/usecase"
)

// チャットボットのプロキシ
type ChatHandler struct {
	uc *usecase.ChatUsecase
}

// DI
func NewChatHandler(uc *usecase.ChatUsecase) *ChatHandler {
	return &ChatHandler{uc: uc}
}

// リクエスト/レスポンスの形は {message} → {reply} で固定。
type ChatRequest struct {
	Message string `json:"message"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
}

func (h *ChatHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/chat", h.ask)
}

func (h *ChatHandler) ask(c echo.Context) error {
	var req ChatRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	reply, err := h.uc.Ask(c.Request().Context(), req.Message)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, ChatResponse{Reply: reply})
}
