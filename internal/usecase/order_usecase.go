package usecase

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"app/internal/domain/model"
)

// OrderUsecase は注文テキストを組み立ててWhatsAppへ引き渡す。
// 送信自体は外側（ユーザーのブラウザ）がやるので、ここは文面とURLを作るだけ。
type OrderUsecase struct {
	whatsAppNumber string
}

// DI
func NewOrderUsecase(whatsAppNumber string) *OrderUsecase {
	return &OrderUsecase{whatsAppNumber: whatsAppNumber}
}

// OrderHandoff はフロントに返す引き渡し情報。
type OrderHandoff struct {
	Message     string `json:"message"`
	WhatsAppURL string `json:"whatsapp_url"`
}

// PlaceOrder はカート全体の注文文面を作る。空カートは注文できない。
func (u *OrderUsecase) PlaceOrder(items model.CartItems) (OrderHandoff, error) {
	if items.TotalQty() == 0 {
		return OrderHandoff{}, NewHTTPError(http.StatusBadRequest, "cart is empty")
	}

	msg := ComposeOrderMessage(items)
	return OrderHandoff{
		Message:     msg,
		WhatsAppURL: u.whatsAppURL(msg),
	}, nil
}

type BuyNowInput struct {
	Title string
	Price model.Money
}

// BuyNow は商品ページの「今すぐ購入」。カートを通さず1点だけ。
func (u *OrderUsecase) BuyNow(in BuyNowInput) (OrderHandoff, error) {
	if strings.TrimSpace(in.Title) == "" {
		return OrderHandoff{}, NewHTTPError(http.StatusBadRequest, "invalid title")
	}
	if in.Price < 0 {
		return OrderHandoff{}, NewHTTPError(http.StatusBadRequest, "invalid price")
	}

	msg := "Hello, I want to buy:\n" + in.Title + "\nPrice: " + in.Price.String()
	return OrderHandoff{
		Message:     msg,
		WhatsAppURL: u.whatsAppURL(msg),
	}, nil
}

// ComposeOrderMessage は明細を追加順に並べた注文テキストを作る。
// 各明細：品名・数量・単価・小計。最後に合計。
func ComposeOrderMessage(items model.CartItems) string {
	var b strings.Builder
	b.WriteString("Hello, I want to order:\n\n")

	for _, oi := range items.Ordered() {
		it := oi.Item
		b.WriteString(it.Title + "\n")
		b.WriteString("Qty: " + strconv.FormatInt(it.Qty, 10) + "\n")
		b.WriteString("Price: " + it.Price.String() + "\n")
		b.WriteString("Subtotal: " + (it.Price * model.Money(it.Qty)).String() + "\n\n")
	}

	b.WriteString("Total: " + items.TotalPrice().String())
	return b.String()
}

func (u *OrderUsecase) whatsAppURL(text string) string {
	return "https://wa.me/" + u.whatsAppNumber + "?text=" + url.QueryEscape(text)
}
