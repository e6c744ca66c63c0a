package model

// ギャラリーのカテゴリ（CMSのフォルダ名）
type ContentCategory string

const (
	CategoryOffers   ContentCategory = "offers"
	CategoryProducts ContentCategory = "products"
	CategoryServices ContentCategory = "services"
	CategoryWorks    ContentCategory = "works"
)

// ContentItem はmarkdownのfront matter 1件分。
type ContentItem struct {
	Slug     string          `json:"slug" yaml:"-"`
	Category ContentCategory `json:"category" yaml:"-"`
	Title    string          `json:"title" yaml:"title"`
	Image    string          `json:"image" yaml:"image"`
	Price    Money           `json:"price,omitempty" yaml:"price,omitempty"` // パイサ。商品のみ
}
