package repository

import (
	"context"

	"app/internal/domain/model"
)

// ギャラリーコンテンツ（markdown + front matter）の置き場。
type ContentRepository interface {
	// ListByCategory はカテゴリ内の全件をslug昇順で返す。
	ListByCategory(ctx context.Context, category model.ContentCategory) ([]model.ContentItem, error)
	// Create は1件書き込む。同じslugがあれば上書き。
	Create(ctx context.Context, item model.ContentItem) error
	// Delete は1件削除。無ければ ErrNotFound。
	Delete(ctx context.Context, category model.ContentCategory, slug string) error
}
