package usecase

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// =====================
// Mocks
// =====================

type CartRepoMock struct{ mock.Mock }

func (m *CartRepoMock) Load(ctx context.Context, cartID string) (model.CartItems, error) {
	args := m.Called(ctx, cartID)
	items, _ := args.Get(0).(model.CartItems)
	return items, args.Error(1)
}

func (m *CartRepoMock) Save(ctx context.Context, cartID string, items model.CartItems) error {
	args := m.Called(ctx, cartID, items)
	return args.Error(0)
}

func (m *CartRepoMock) Delete(ctx context.Context, cartID string) error {
	args := m.Called(ctx, cartID)
	return args.Error(0)
}

func storedItems(pairs ...model.CartItem) model.CartItems {
	items := model.CartItems{}
	for i, it := range pairs {
		it.Pos = int64(i + 1)
		items[it.Title] = it
	}
	return items
}

func TestCartUsecase_AddToEmptyCart(t *testing.T) {
	ctx := context.Background()
	repoMock := new(CartRepoMock)
	repoMock.On("Load", mock.Anything, "cart-1").Return(nil, repo.ErrNotFound)
	repoMock.On("Save", mock.Anything, "cart-1", mock.MatchedBy(func(items model.CartItems) bool {
		it, ok := items["silk-saree"]
		return ok && it.Qty == 1 && it.Price == 149900 && it.Title == "Silk Saree"
	})).Return(nil)

	uc := NewCartUsecase(repoMock, nil)

	var notified []int64
	uc.OnChange(func(cartID string, totalQty int64) {
		notified = append(notified, totalQty)
	})

	items, err := uc.Add(ctx, "cart-1", AddItemInput{
		ProductID: "silk-saree",
		Title:     "Silk Saree",
		Price:     149900,
		Image:     "/img/a.jpg",
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), items.TotalQty())
	assert.Equal(t, []int64{1}, notified)
	repoMock.AssertExpectations(t)
}

func TestCartUsecase_AddValidation(t *testing.T) {
	ctx := context.Background()
	uc := NewCartUsecase(new(CartRepoMock), nil)

	cases := []AddItemInput{
		{ProductID: "", Title: "T", Price: 1},
		{ProductID: "p", Title: "  ", Price: 1},
		{ProductID: "p", Title: "T", Price: -1},
	}
	for _, in := range cases {
		_, err := uc.Add(ctx, "cart-1", in)
		he, ok := AsHTTPError(err)
		assert.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, he.Status)
	}
}

func TestCartUsecase_DecreaseAtOneAsksForRemoval(t *testing.T) {
	ctx := context.Background()
	repoMock := new(CartRepoMock)
	repoMock.On("Load", mock.Anything, "cart-1").
		Return(storedItems(model.CartItem{Title: "blouse", Price: 50000, Qty: 1}), nil)

	uc := NewCartUsecase(repoMock, nil)

	notifyCount := 0
	uc.OnChange(func(string, int64) { notifyCount++ })

	items, res, err := uc.Decrease(ctx, "cart-1", "blouse")
	assert.NoError(t, err)
	assert.False(t, res.Changed)
	assert.True(t, res.RemovePrompt)
	assert.Equal(t, int64(1), items["blouse"].Qty)

	// 変更が無いので保存も通知も走らない
	assert.Equal(t, 0, notifyCount)
	repoMock.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
}

func TestCartUsecase_IncreaseUnknownIsNoop(t *testing.T) {
	ctx := context.Background()
	repoMock := new(CartRepoMock)
	repoMock.On("Load", mock.Anything, "cart-1").Return(model.CartItems{}, nil)

	uc := NewCartUsecase(repoMock, nil)

	items, found, err := uc.Increase(ctx, "cart-1", "nashi")
	assert.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, items)
	repoMock.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
}

func TestCartUsecase_RemoveUnknownIsNoop(t *testing.T) {
	ctx := context.Background()
	repoMock := new(CartRepoMock)
	repoMock.On("Load", mock.Anything, "cart-1").Return(model.CartItems{}, nil)

	uc := NewCartUsecase(repoMock, nil)

	items, err := uc.Remove(ctx, "cart-1", "nashi")
	assert.NoError(t, err)
	assert.Empty(t, items)
	repoMock.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
}

func TestCartUsecase_ClearPersistsEmpty(t *testing.T) {
	ctx := context.Background()
	repoMock := new(CartRepoMock)
	repoMock.On("Load", mock.Anything, "cart-1").
		Return(storedItems(
			model.CartItem{Title: "a", Price: 100, Qty: 2},
			model.CartItem{Title: "b", Price: 200, Qty: 1},
		), nil)
	repoMock.On("Save", mock.Anything, "cart-1", mock.MatchedBy(func(items model.CartItems) bool {
		return len(items) == 0
	})).Return(nil)

	uc := NewCartUsecase(repoMock, nil)

	var last int64 = -1
	uc.OnChange(func(_ string, totalQty int64) { last = totalQty })

	items, err := uc.Clear(ctx, "cart-1")
	assert.NoError(t, err)
	assert.Empty(t, items)
	assert.Equal(t, int64(0), last)
	repoMock.AssertExpectations(t)
}

func TestCartUsecase_LoadFailureStartsEmpty(t *testing.T) {
	ctx := context.Background()
	repoMock := new(CartRepoMock)
	repoMock.On("Load", mock.Anything, "cart-1").Return(nil, errors.New("db down"))

	uc := NewCartUsecase(repoMock, nil)

	items, err := uc.Get(ctx, "cart-1")
	assert.NoError(t, err)
	assert.Empty(t, items)
}

func TestCartUsecase_SaveFailureIs500(t *testing.T) {
	ctx := context.Background()
	repoMock := new(CartRepoMock)
	repoMock.On("Load", mock.Anything, "cart-1").Return(model.CartItems{}, nil)
	repoMock.On("Save", mock.Anything, "cart-1", mock.Anything).Return(errors.New("db down"))

	uc := NewCartUsecase(repoMock, nil)

	notifyCount := 0
	uc.OnChange(func(string, int64) { notifyCount++ })

	_, err := uc.Add(ctx, "cart-1", AddItemInput{ProductID: "p", Title: "T", Price: 1})
	he, ok := AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusInternalServerError, he.Status)
	// 保存できていないのに通知してはいけない
	assert.Equal(t, 0, notifyCount)
}
