// Package view はカート状態からの表示用の射影。
// ここは読むだけで、カートを一切変更しない。金額の文字列化もここが境界。
package view

import (
	"time"

	"app/internal/domain/model"
)

// トーストの固定タイミング。表示は約3秒、フェードは一律。
const (
	ToastDuration = 3 * time.Second
	ToastFade     = 300 * time.Millisecond
)

// ToastView は追加操作の一時的な通知。
type ToastView struct {
	Message    string `json:"message"`
	DurationMS int64  `json:"duration_ms"`
	FadeMS     int64  `json:"fade_ms"`
}

func Toast(message string) ToastView {
	return ToastView{
		Message:    message,
		DurationMS: ToastDuration.Milliseconds(),
		FadeMS:     ToastFade.Milliseconds(),
	}
}

// BadgeView はナビゲーションのカート件数バッジ。0のときは出さない。
type BadgeView struct {
	Count   int64 `json:"count"`
	Visible bool  `json:"visible"`
}

func Badge(totalQty int64) BadgeView {
	return BadgeView{
		Count:   totalQty,
		Visible: totalQty > 0,
	}
}

// CartItemView はカートページの明細1行。
type CartItemView struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Image        string `json:"image"`
	Qty          int64  `json:"qty"`
	Price        int64  `json:"price"` // パイサ
	PriceDisplay string `json:"price_display"`
}

// CartPageView はカートページ全体。空のときは明細の代わりに空メッセージを出し、
// 合計とアクションは隠す。
type CartPageView struct {
	Items        []CartItemView `json:"items"`
	Empty        bool           `json:"empty"`
	ShowSummary  bool           `json:"show_summary"`
	ShowActions  bool           `json:"show_actions"`
	Total        int64          `json:"total"` // パイサ
	TotalDisplay string         `json:"total_display"`
}

func CartPage(items model.CartItems) CartPageView {
	ordered := items.Ordered()

	page := CartPageView{
		Items: make([]CartItemView, 0, len(ordered)),
		Empty: len(ordered) == 0,
	}

	for _, oi := range ordered {
		page.Items = append(page.Items, CartItemView{
			ID:           oi.ID,
			Title:        oi.Item.Title,
			Image:        oi.Item.Image,
			Qty:          oi.Item.Qty,
			Price:        int64(oi.Item.Price),
			PriceDisplay: oi.Item.Price.String(),
		})
	}

	if !page.Empty {
		total := items.TotalPrice()
		page.ShowSummary = true
		page.ShowActions = true
		page.Total = int64(total)
		page.TotalDisplay = "Total: " + total.String()
	}

	return page
}
