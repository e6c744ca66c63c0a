package model

import (
	"encoding/json"
	"sort"
	"strconv"
	"time"
)

// Money は通貨の最小単位（パイサ）。金額計算は常に整数で行う。
type Money int64

// 表示用。100パイサ = ₹1。端数が無ければ小数を出さない。
func (m Money) String() string {
	r := int64(m) / 100
	p := int64(m) % 100
	if p == 0 {
		return "₹" + strconv.FormatInt(r, 10)
	}
	if p < 10 {
		return "₹" + strconv.FormatInt(r, 10) + ".0" + strconv.FormatInt(p, 10)
	}
	return "₹" + strconv.FormatInt(r, 10) + "." + strconv.FormatInt(p, 10)
}

// 1ブラウザにつきカートは1行。items_jsonに全明細をまとめて持つ。
type Cart struct {
	ID        string    `gorm:"primaryKey;type:varchar(64)" json:"id"`
	ItemsJSON []byte    `gorm:"type:jsonb;not null" json:"-"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

// カートの明細。追加時点の価格を必ず保存。
type CartItem struct {
	Title string `json:"title"`
	Price Money  `json:"price"` // パイサ
	Image string `json:"image"`
	Qty   int64  `json:"qty"`
	Pos   int64  `json:"pos,omitempty"` // 追加順。旧データには無い
}

// CartItems は product_id → CartItem。
type CartItems map[string]CartItem

// OrderedItem は表示順（追加順）での1明細。
type OrderedItem struct {
	ID   string
	Item CartItem
}

// ParseCartItems は保存済みJSONを復元する。壊れていたら空で返す（落とさない）。
func ParseCartItems(raw []byte) CartItems {
	items := CartItems{}
	if len(raw) == 0 {
		return items
	}
	if err := json.Unmarshal(raw, &items); err != nil {
		return CartItems{}
	}
	// qty<1 や負の金額は保持しない
	for id, it := range items {
		if it.Qty < 1 || it.Price < 0 {
			delete(items, id)
		}
	}
	return items
}

// Serialize は全明細を1つのJSONオブジェクトにする。
func (ci CartItems) Serialize() ([]byte, error) {
	return json.Marshal(ci)
}

// Add は未登録なら qty=1 で追加、登録済みなら数量加算。
// 戻り値は新規追加だったかどうか。
func (ci CartItems) Add(id string, title string, price Money, image string) bool {
	if it, ok := ci[id]; ok {
		it.Qty++
		ci[id] = it
		return false
	}
	ci[id] = CartItem{
		Title: title,
		Price: price,
		Image: image,
		Qty:   1,
		Pos:   ci.nextPos(),
	}
	return true
}

// Increase は数量+1。未登録ならfalse。
func (ci CartItems) Increase(id string) bool {
	it, ok := ci[id]
	if !ok {
		return false
	}
	it.Qty++
	ci[id] = it
	return true
}

// Decrease は数量-1。ただし1未満にはしない。
// changed=実際に減らしたか / atMin=qty==1で拒否したか。
func (ci CartItems) Decrease(id string) (changed bool, atMin bool) {
	it, ok := ci[id]
	if !ok {
		return false, false
	}
	if it.Qty <= 1 {
		return false, true
	}
	it.Qty--
	ci[id] = it
	return true, false
}

// Remove は明細を削除。未登録ならfalse。
func (ci CartItems) Remove(id string) bool {
	if _, ok := ci[id]; !ok {
		return false
	}
	delete(ci, id)
	return true
}

// Clear は全明細を削除。
func (ci CartItems) Clear() {
	clear(ci)
}

// TotalQty は数量の合計。
func (ci CartItems) TotalQty() int64 {
	var total int64
	for _, it := range ci {
		total += it.Qty
	}
	return total
}

// TotalPrice は price*qty の合計。
func (ci CartItems) TotalPrice() Money {
	var total Money
	for _, it := range ci {
		total += it.Price * Money(it.Qty)
	}
	return total
}

// Ordered は追加順の明細一覧。posが無い旧データは0扱いになり、
// id順で先頭に並ぶ。
func (ci CartItems) Ordered() []OrderedItem {
	out := make([]OrderedItem, 0, len(ci))
	for id, it := range ci {
		out = append(out, OrderedItem{ID: id, Item: it})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Item.Pos != out[j].Item.Pos {
			return out[i].Item.Pos < out[j].Item.Pos
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func (ci CartItems) nextPos() int64 {
	var max int64
	for _, it := range ci {
		if it.Pos > max {
			max = it.Pos
		}
	}
	return max + 1
}
