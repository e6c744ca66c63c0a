package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/handler"
	"app/internal/infra/db"
	"app/internal/infra/llm"
	infraRepo "app/internal/infra/repository"
	"app/internal/logger"
	"app/internal/server"
	"app/internal/usecase"
)

func main() {
	// .envが無ければ環境変数だけで動く
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.LogLevel, cfg.GoEnv)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	//DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		log.Fatal("db connect failed", zap.Error(err))
	}
	if err := gormDB.AutoMigrate(&model.Cart{}); err != nil {
		log.Fatal("db migrate failed", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	//Repository生成
	cartRepo := infraRepo.NewCartGormRepository(gormDB)
	contentRepo := infraRepo.NewContentFSRepository(cfg.ContentDir)

	//Geminiクライアント
	chatModel, err := llm.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Fatal("gemini client failed", zap.Error(err))
	}

	//Usecase生成
	cartUC := usecase.NewCartUsecase(cartRepo, log)
	orderUC := usecase.NewOrderUsecase(cfg.WhatsAppNumber)
	chatUC := usecase.NewChatUsecase(chatModel, log)
	galleryUC := usecase.NewGalleryUsecase(contentRepo, log)
	authUC := usecase.NewAuthUsecase(cfg.AdminEmail, cfg.AdminPasswordHash, cfg.JWTSecret)

	//バッジの再描画に相当する通知
	cartUC.OnChange(func(cartID string, totalQty int64) {
		log.Debug("cart badge updated",
			zap.String("cart_id", cartID),
			zap.Int64("count", totalQty),
		)
	})

	//おすすめ枠の自動送り
	galleryUC.StartRotation()
	defer galleryUC.StopRotation()

	//Handler生成
	handlers := server.Handlers{
		Cart:         handler.NewCartHandler(cartUC),
		Order:        handler.NewOrderHandler(cartUC, orderUC),
		Chat:         handler.NewChatHandler(chatUC),
		Gallery:      handler.NewGalleryHandler(galleryUC),
		AdminContent: handler.NewAdminContentHandler(galleryUC),
		Auth:         handler.NewAuthHandler(authUC),
	}

	//Server起動
	addr := cfg.Port
	if addr[0] != ':' {
		addr = ":" + addr
	}

	e := server.New(cfg, log, handlers)
	if err := server.Run(ctx, e, addr, log); err != nil {
		log.Fatal("server failed", zap.Error(err))
	}
}
