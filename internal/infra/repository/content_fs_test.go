package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

func writeContentFile(t *testing.T, root string, category string, name string, body string) {
	t.Helper()
	dir := filepath.Join(root, category)
	assert.NoError(t, os.MkdirAll(dir, 0o755))
	assert.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
}

func TestContentFS_ListByCategory(t *testing.T) {
	root := t.TempDir()
	writeContentFile(t, root, "products", "silk-saree.md",
		"---\ntitle: Silk Saree\nimage: /uploads/saree.jpg\nprice: 149900\n---\nBody here.\n")
	writeContentFile(t, root, "products", "blouse.md",
		"---\ntitle: Blouse\nimage: /uploads/blouse.jpg\n---\n")
	// front matterが無いファイルとmd以外は無視される
	writeContentFile(t, root, "products", "notes.md", "no front matter")
	writeContentFile(t, root, "products", "image.jpg", "binary")

	r := NewContentFSRepository(root)

	items, err := r.ListByCategory(context.Background(), model.CategoryProducts)
	assert.NoError(t, err)
	assert.Len(t, items, 2)

	// slug昇順
	assert.Equal(t, "blouse", items[0].Slug)
	assert.Equal(t, "silk-saree", items[1].Slug)
	assert.Equal(t, "Silk Saree", items[1].Title)
	assert.Equal(t, model.Money(149900), items[1].Price)
	assert.Equal(t, model.CategoryProducts, items[1].Category)
}

func TestContentFS_ListMissingCategoryDir(t *testing.T) {
	r := NewContentFSRepository(t.TempDir())

	items, err := r.ListByCategory(context.Background(), model.CategoryWorks)
	assert.NoError(t, err)
	assert.Empty(t, items)
}

func TestContentFS_CreateAndDelete(t *testing.T) {
	root := t.TempDir()
	r := NewContentFSRepository(root)
	ctx := context.Background()

	item := model.ContentItem{
		Slug:     "eid-offer",
		Category: model.CategoryOffers,
		Title:    "Eid Offer",
		Image:    "/uploads/eid.jpg",
	}
	assert.NoError(t, r.Create(ctx, item))

	items, err := r.ListByCategory(ctx, model.CategoryOffers)
	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, item, items[0])

	assert.NoError(t, r.Delete(ctx, model.CategoryOffers, "eid-offer"))

	items, err = r.ListByCategory(ctx, model.CategoryOffers)
	assert.NoError(t, err)
	assert.Empty(t, items)
}

func TestContentFS_DeleteMissing(t *testing.T) {
	r := NewContentFSRepository(t.TempDir())

	err := r.Delete(context.Background(), model.CategoryOffers, "nashi")
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestContentFS_MalformedFrontMatterSkipped(t *testing.T) {
	root := t.TempDir()
	writeContentFile(t, root, "works", "bad.md", "---\ntitle: [broken\n---\n")
	writeContentFile(t, root, "works", "untitled.md", "---\nimage: /x.jpg\n---\n")

	r := NewContentFSRepository(root)

	items, err := r.ListByCategory(context.Background(), model.CategoryWorks)
	assert.NoError(t, err)
	assert.Empty(t, items)
}
