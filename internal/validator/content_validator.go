package validator

import (
	"errors"
	"regexp"
	"strings"

	"app/internal/domain/model"
)

var (
	// カテゴリがホワイトリスト外
	ErrUnknownCategory = errors.New("unknown category")

	// 入力が不正
	ErrInvalidInput = errors.New("invalid input")
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// ValidateCategory はギャラリーのカテゴリを検証する。
func ValidateCategory(raw string) (model.ContentCategory, error) {
	switch model.ContentCategory(strings.TrimSpace(raw)) {
	case model.CategoryOffers:
		return model.CategoryOffers, nil
	case model.CategoryProducts:
		return model.CategoryProducts, nil
	case model.CategoryServices:
		return model.CategoryServices, nil
	case model.CategoryWorks:
		return model.CategoryWorks, nil
	default:
		return "", ErrUnknownCategory
	}
}

// ValidateContentItem はCMSへ書き込む1件分の入力を検証する。
func ValidateContentItem(item model.ContentItem) error {
	if strings.TrimSpace(item.Title) == "" {
		return ErrInvalidInput
	}
	if strings.TrimSpace(item.Image) == "" {
		return ErrInvalidInput
	}
	if item.Price < 0 {
		return ErrInvalidInput
	}
	if !slugPattern.MatchString(item.Slug) {
		return ErrInvalidInput
	}
	return nil
}
