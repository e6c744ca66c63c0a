package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type CartGormRepository struct {
	db *gorm.DB
}

// DI
func NewCartGormRepository(db *gorm.DB) *CartGormRepository {
	return &CartGormRepository{db: db}
}

// カート1行を読んで明細を復元。壊れたJSONはParse側で空になる。
func (r *CartGormRepository) Load(ctx context.Context, cartID string) (model.CartItems, error) {
	var cart model.Cart

	err := r.db.WithContext(ctx).
		Where("id = ?", cartID).
		First(&cart).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repo.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return model.ParseCartItems(cart.ItemsJSON), nil
}

// 全明細をまるごと書き戻す。行が無ければ作る。
// 楽観ロック等は張らない（同じカートを複数タブが書いたら後勝ち）。
func (r *CartGormRepository) Save(ctx context.Context, cartID string, items model.CartItems) error {
	raw, err := items.Serialize()
	if err != nil {
		return err
	}

	now := time.Now()
	cart := model.Cart{
		ID:        cartID,
		ItemsJSON: raw,
		CreatedAt: now,
		UpdatedAt: now,
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"items_json": raw,
				"updated_at": now,
			}),
		}).
		Create(&cart).Error
}

// 行ごと削除。無くてもエラーにしない。
func (r *CartGormRepository) Delete(ctx context.Context, cartID string) error {
	return r.db.WithContext(ctx).
		Where("id = ?", cartID).
		Delete(&model.Cart{}).Error
}
