package usecase

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/swapper"
	"app/internal/validator"
)

// トップのおすすめ枠が自動で切り替わる間隔。
const featuredRotateInterval = 5 * time.Second

// GalleryUsecase はCMSコンテンツの公開一覧と、
// offersを順繰りに見せる「おすすめ枠」を持つ。
type GalleryUsecase struct {
	contentRepo repo.ContentRepository
	featured    *swapper.Swapper
	logger      *zap.Logger
}

// DI
func NewGalleryUsecase(contentRepo repo.ContentRepository, logger *zap.Logger) *GalleryUsecase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GalleryUsecase{
		contentRepo: contentRepo,
		featured:    swapper.New(0),
		logger:      logger,
	}
}

// List はカテゴリ内の公開一覧。
func (u *GalleryUsecase) List(ctx context.Context, rawCategory string) ([]model.ContentItem, error) {
	category, err := validator.ValidateCategory(rawCategory)
	if err != nil {
		return nil, NewHTTPError(http.StatusBadRequest, "invalid category")
	}

	items, err := u.contentRepo.ListByCategory(ctx, category)
	if err != nil {
		u.logger.Error("content list failed",
			zap.String("category", string(category)), zap.Error(err))
		return nil, NewHTTPError(http.StatusInternalServerError, "content error")
	}
	return items, nil
}

// StartRotation はおすすめ枠の自動送りを開始する。
func (u *GalleryUsecase) StartRotation() {
	u.featured.StartAutoplay(featuredRotateInterval)
}

// StopRotation はタイマーを解放する。シャットダウン時に必ず呼ぶ。
func (u *GalleryUsecase) StopRotation() {
	u.featured.Stop()
}

// Featured は現在のおすすめ（offersの現在位置）。offersが空なら404。
func (u *GalleryUsecase) Featured(ctx context.Context) (model.ContentItem, error) {
	return u.featuredAt(ctx, func() int { return u.featured.Current() })
}

// FeaturedNext は手動で次へ。自動送りは仕切り直される。
func (u *GalleryUsecase) FeaturedNext(ctx context.Context) (model.ContentItem, error) {
	return u.featuredAt(ctx, func() int { return u.featured.Next() })
}

// FeaturedPrev は手動で前へ。
func (u *GalleryUsecase) FeaturedPrev(ctx context.Context) (model.ContentItem, error) {
	return u.featuredAt(ctx, func() int { return u.featured.Prev() })
}

// CreateItem はCMSへ1件書き込む（管理者のみ）。
func (u *GalleryUsecase) CreateItem(ctx context.Context, item model.ContentItem) error {
	if _, err := validator.ValidateCategory(string(item.Category)); err != nil {
		return NewHTTPError(http.StatusBadRequest, "invalid category")
	}
	if err := validator.ValidateContentItem(item); err != nil {
		return NewHTTPError(http.StatusBadRequest, "invalid content")
	}

	if err := u.contentRepo.Create(ctx, item); err != nil {
		u.logger.Error("content create failed", zap.Error(err))
		return NewHTTPError(http.StatusInternalServerError, "content error")
	}
	return nil
}

// DeleteItem はCMSから1件消す（管理者のみ）。
func (u *GalleryUsecase) DeleteItem(ctx context.Context, rawCategory string, slug string) error {
	category, err := validator.ValidateCategory(rawCategory)
	if err != nil {
		return NewHTTPError(http.StatusBadRequest, "invalid category")
	}

	err = u.contentRepo.Delete(ctx, category, slug)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		u.logger.Error("content delete failed", zap.Error(err))
		return NewHTTPError(http.StatusInternalServerError, "content error")
	}
	return nil
}

// offersを読み直して長さを同期し、navで決まった位置の1件を返す。
// 管理者がofferを増減しても次の呼び出しから追従する。
func (u *GalleryUsecase) featuredAt(ctx context.Context, nav func() int) (model.ContentItem, error) {
	offers, err := u.contentRepo.ListByCategory(ctx, model.CategoryOffers)
	if err != nil {
		u.logger.Error("offers list failed", zap.Error(err))
		return model.ContentItem{}, NewHTTPError(http.StatusInternalServerError, "content error")
	}
	if len(offers) == 0 {
		return model.ContentItem{}, NewHTTPError(http.StatusNotFound, "no offers")
	}

	u.featured.SetLength(len(offers))

	// SetLengthとnavの間に並行リクエストが長さを変えうるので、
	// 手元のスライスに対しては必ず丸めてから引く。
	idx := nav()
	if idx >= len(offers) {
		idx = 0
	}
	return offers[idx], nil
}
