package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// カートは1行=1ドキュメント。部分更新はしない（常に全明細を書き戻す）。
type CartRepository interface {
	// Load はカートの全明細を返す。行が無ければ ErrNotFound。
	Load(ctx context.Context, cartID string) (model.CartItems, error)
	// Save は全明細を上書き保存する（last writer wins）。
	Save(ctx context.Context, cartID string, items model.CartItems) error
	// Delete は行ごと削除。無ければ何もしない。
	Delete(ctx context.Context, cartID string) error
}
