package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"

	"go.uber.org/zap"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// CartUsecase はカートの業務ロジック。
// 状態はDBの1行ドキュメント。変更のたびに全明細を書き戻し、
// バッジ用のon-changeリスナーへ通知する。
type CartUsecase struct {
	cartRepo repo.CartRepository
	logger   *zap.Logger

	mu       sync.Mutex
	onChange []func(cartID string, totalQty int64)
}

// DI
func NewCartUsecase(cartRepo repo.CartRepository, logger *zap.Logger) *CartUsecase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CartUsecase{cartRepo: cartRepo, logger: logger}
}

// OnChange は変更後に呼ばれるリスナーを登録する（バッジ再描画など）。
func (u *CartUsecase) OnChange(fn func(cartID string, totalQty int64)) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.onChange = append(u.onChange, fn)
}

func (u *CartUsecase) notify(cartID string, totalQty int64) {
	u.mu.Lock()
	listeners := make([]func(string, int64), len(u.onChange))
	copy(listeners, u.onChange)
	u.mu.Unlock()

	for _, fn := range listeners {
		fn(cartID, totalQty)
	}
}

type AddItemInput struct {
	ProductID string
	Title     string
	Price     model.Money // パイサ
	Image     string
}

// Decreaseの結果。qty==1での減算は拒否し、削除確認を促す。
type DecreaseResult struct {
	Changed      bool
	RemovePrompt bool
}

// Get はカートを読む。行が無い・JSONが壊れている場合は空で返す（エラーにしない）。
func (u *CartUsecase) Get(ctx context.Context, cartID string) (model.CartItems, error) {
	if cartID == "" {
		return model.CartItems{}, NewHTTPError(http.StatusBadRequest, "invalid cart")
	}
	return u.load(ctx, cartID), nil
}

// Add は明細追加（同一商品は数量加算）。
func (u *CartUsecase) Add(ctx context.Context, cartID string, in AddItemInput) (model.CartItems, error) {
	if cartID == "" {
		return nil, NewHTTPError(http.StatusBadRequest, "invalid cart")
	}
	if strings.TrimSpace(in.ProductID) == "" {
		return nil, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}
	if strings.TrimSpace(in.Title) == "" {
		return nil, NewHTTPError(http.StatusBadRequest, "invalid title")
	}
	if in.Price < 0 {
		return nil, NewHTTPError(http.StatusBadRequest, "invalid price")
	}

	items := u.load(ctx, cartID)
	items.Add(in.ProductID, in.Title, in.Price, in.Image)

	if err := u.persist(ctx, cartID, items); err != nil {
		return nil, err
	}
	return items, nil
}

// Increase は数量+1。未登録の商品なら何もしない。
func (u *CartUsecase) Increase(ctx context.Context, cartID string, productID string) (model.CartItems, bool, error) {
	if cartID == "" {
		return nil, false, NewHTTPError(http.StatusBadRequest, "invalid cart")
	}

	items := u.load(ctx, cartID)
	if !items.Increase(productID) {
		return items, false, nil
	}

	if err := u.persist(ctx, cartID, items); err != nil {
		return nil, false, err
	}
	return items, true, nil
}

// Decrease は数量-1。qty==1なら減らさず、削除確認フラグを立てて返す。
func (u *CartUsecase) Decrease(ctx context.Context, cartID string, productID string) (model.CartItems, DecreaseResult, error) {
	if cartID == "" {
		return nil, DecreaseResult{}, NewHTTPError(http.StatusBadRequest, "invalid cart")
	}

	items := u.load(ctx, cartID)
	changed, atMin := items.Decrease(productID)
	if !changed {
		// 減らしていないので保存も通知もしない
		return items, DecreaseResult{RemovePrompt: atMin}, nil
	}

	if err := u.persist(ctx, cartID, items); err != nil {
		return nil, DecreaseResult{}, err
	}
	return items, DecreaseResult{Changed: true}, nil
}

// Remove は明細削除。未登録なら何もしない。
func (u *CartUsecase) Remove(ctx context.Context, cartID string, productID string) (model.CartItems, error) {
	if cartID == "" {
		return nil, NewHTTPError(http.StatusBadRequest, "invalid cart")
	}

	items := u.load(ctx, cartID)
	if !items.Remove(productID) {
		return items, nil
	}

	if err := u.persist(ctx, cartID, items); err != nil {
		return nil, err
	}
	return items, nil
}

// Clear は全明細を削除。
func (u *CartUsecase) Clear(ctx context.Context, cartID string) (model.CartItems, error) {
	if cartID == "" {
		return nil, NewHTTPError(http.StatusBadRequest, "invalid cart")
	}

	items := u.load(ctx, cartID)
	items.Clear()

	if err := u.persist(ctx, cartID, items); err != nil {
		return nil, err
	}
	return items, nil
}

// loadはフェイルソフト。読めない理由が何であれ空のカートから始める。
func (u *CartUsecase) load(ctx context.Context, cartID string) model.CartItems {
	items, err := u.cartRepo.Load(ctx, cartID)
	if err != nil {
		if !errors.Is(err, repo.ErrNotFound) {
			u.logger.Warn("cart load failed, starting empty",
				zap.String("cart_id", cartID), zap.Error(err))
		}
		return model.CartItems{}
	}
	return items
}

// persistは保存してからリスナーに通知する。保存できなければ状態は返さない。
func (u *CartUsecase) persist(ctx context.Context, cartID string, items model.CartItems) error {
	if err := u.cartRepo.Save(ctx, cartID, items); err != nil {
		u.logger.Error("cart save failed",
			zap.String("cart_id", cartID), zap.Error(err))
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	u.notify(cartID, items.TotalQty())
	return nil
}
