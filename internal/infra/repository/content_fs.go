package repository

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// ContentFSRepository はCMSのmarkdown置き場（<root>/<category>/<slug>.md）を読む。
type ContentFSRepository struct {
	root string
}

// DI
func NewContentFSRepository(root string) *ContentFSRepository {
	return &ContentFSRepository{root: root}
}

// カテゴリ内の.mdを全部読む。front matterが壊れたファイルは飛ばす。
func (r *ContentFSRepository) ListByCategory(ctx context.Context, category model.ContentCategory) ([]model.ContentItem, error) {
	dir := filepath.Join(r.root, string(category))

	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		// カテゴリのフォルダがまだ無いだけなら空
		return []model.ContentItem{}, nil
	}
	if err != nil {
		return nil, err
	}

	items := make([]model.ContentItem, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".md") {
			continue
		}

		raw, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			continue
		}

		item, ok := parseFrontMatter(raw)
		if !ok {
			continue
		}

		item.Slug = strings.TrimSuffix(e.Name(), ".md")
		item.Category = category
		items = append(items, item)
	}

	sort.Slice(items, func(i, j int) bool { return items[i].Slug < items[j].Slug })
	return items, nil
}

// 1件書き込み。同じslugは上書き。
func (r *ContentFSRepository) Create(ctx context.Context, item model.ContentItem) error {
	dir := filepath.Join(r.root, string(item.Category))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	meta, err := yaml.Marshal(item)
	if err != nil {
		return err
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.Write(meta)
	b.WriteString("---\n")

	return os.WriteFile(filepath.Join(dir, item.Slug+".md"), []byte(b.String()), 0o644)
}

// 1件削除。無ければ ErrNotFound。
func (r *ContentFSRepository) Delete(ctx context.Context, category model.ContentCategory, slug string) error {
	err := os.Remove(filepath.Join(r.root, string(category), slug+".md"))
	if os.IsNotExist(err) {
		return repo.ErrNotFound
	}
	return err
}

// front matter（--- ... ---）だけを読む。本文は使わない。
func parseFrontMatter(raw []byte) (model.ContentItem, bool) {
	s := string(raw)
	if !strings.HasPrefix(s, "---\n") && !strings.HasPrefix(s, "---\r\n") {
		return model.ContentItem{}, false
	}

	rest := s[strings.Index(s, "\n")+1:]
	end := strings.Index(rest, "\n---")
	if end < 0 {
		return model.ContentItem{}, false
	}

	var item model.ContentItem
	if err := yaml.Unmarshal([]byte(rest[:end]), &item); err != nil {
		return model.ContentItem{}, false
	}
	if strings.TrimSpace(item.Title) == "" {
		return model.ContentItem{}, false
	}
	return item, true
}
