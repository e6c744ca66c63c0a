package usecase

import (
	"context"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// 店のAIアシスタントのペルソナ。
const chatSystemPrompt = `You are "Alif AI", a friendly and helpful assistant for ALiF Ladies Tailor, a custom clothing store in Sahibganj, Jharkhand.
Your personality is: Warm, polite, and professional.
Your location: Daal Kuan, College Road, Sahibganj.

Your goal is to:
1. Answer user questions about our services (stitching, blouses, lehengas, gowns, etc.), products (lace, fabric, etc.), and location.
2. Be helpful and provide information about fashion, tailoring, and fabric care.
3. Politely encourage users to visit the store for a personal consultation.
4. If you don't know an answer, say so politely and suggest they "visit the store for the latest details."
5. Keep your answers concise and easy to read (max 2-3 sentences).`

const maxChatMessageLen = 2000

// 外部の生成AI呼び出しの約束。実装はinfra/llm。
type ChatModel interface {
	Generate(ctx context.Context, system string, message string) (string, error)
}

// ChatUsecase はチャットボットの薄いプロキシ。
// 入力1つを検証してsystemプロンプトを添え、返答をそのまま返す。
type ChatUsecase struct {
	model  ChatModel
	logger *zap.Logger
}

// DI
func NewChatUsecase(model ChatModel, logger *zap.Logger) *ChatUsecase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ChatUsecase{model: model, logger: logger}
}

// Ask は1往復の問い合わせ。上流の失敗は502にまとめる。
func (u *ChatUsecase) Ask(ctx context.Context, message string) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", NewHTTPError(http.StatusBadRequest, "message is required")
	}
	if len(message) > maxChatMessageLen {
		return "", NewHTTPError(http.StatusBadRequest, "message too long")
	}

	reply, err := u.model.Generate(ctx, chatSystemPrompt, message)
	if err != nil {
		u.logger.Error("chat upstream failed", zap.Error(err))
		return "", NewHTTPError(http.StatusBadGateway, "assistant unavailable")
	}
	return reply, nil
}
