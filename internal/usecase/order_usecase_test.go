package usecase

import (
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"app/internal/domain/model"
)

func orderTestItems() model.CartItems {
	items := model.CartItems{}
	items.Add("silk-saree", "Silk Saree", 149900, "/img/a.jpg")
	items.Add("lehenga", "Lehenga", 320000, "/img/l.jpg")
	items.Increase("lehenga")
	return items
}

func TestComposeOrderMessage(t *testing.T) {
	items := orderTestItems()
	msg := ComposeOrderMessage(items)

	// 全明細が1回ずつ、追加順に並ぶ
	assert.Contains(t, msg, "Silk Saree")
	assert.Contains(t, msg, "Lehenga")
	assert.Equal(t, 1, strings.Count(msg, "Silk Saree"))
	assert.Equal(t, 1, strings.Count(msg, "Lehenga"))
	assert.Less(t, strings.Index(msg, "Silk Saree"), strings.Index(msg, "Lehenga"))

	assert.Contains(t, msg, "Qty: 1")
	assert.Contains(t, msg, "Qty: 2")
	assert.Contains(t, msg, "Price: ₹1499")
	assert.Contains(t, msg, "Subtotal: ₹6400")
	assert.True(t, strings.HasSuffix(msg, "Total: "+items.TotalPrice().String()))
}

func TestComposeOrderMessage_Deterministic(t *testing.T) {
	items := orderTestItems()
	assert.Equal(t, ComposeOrderMessage(items), ComposeOrderMessage(items))
}

func TestPlaceOrder(t *testing.T) {
	uc := NewOrderUsecase("7250470009")

	out, err := uc.PlaceOrder(orderTestItems())
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(out.WhatsAppURL, "https://wa.me/7250470009?text="))

	// URLの中身は文面そのものに戻せる
	u, err := url.Parse(out.WhatsAppURL)
	assert.NoError(t, err)
	assert.Equal(t, out.Message, u.Query().Get("text"))
}

func TestPlaceOrder_EmptyCart(t *testing.T) {
	uc := NewOrderUsecase("7250470009")

	_, err := uc.PlaceOrder(model.CartItems{})
	he, ok := AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)
}

func TestBuyNow(t *testing.T) {
	uc := NewOrderUsecase("7250470009")

	out, err := uc.BuyNow(BuyNowInput{Title: "Gown", Price: 250000})
	assert.NoError(t, err)
	assert.Equal(t, "Hello, I want to buy:\nGown\nPrice: ₹2500", out.Message)

	_, err = uc.BuyNow(BuyNowInput{Title: " "})
	he, ok := AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)
}
