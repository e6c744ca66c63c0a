package usecase

import (
	"context"
	"net/http"
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func newTestAuthUsecase(t *testing.T) *AuthUsecase {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	assert.NoError(t, err)
	return NewAuthUsecase("owner@alif.example", string(hash), "test_secret")
}

func TestAuthUsecase_LoginSuccess(t *testing.T) {
	uc := newTestAuthUsecase(t)

	out, err := uc.Login(context.Background(), LoginInput{
		Email:    "owner@alif.example",
		Password: "correct-horse",
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, out.AccessToken)
	assert.Equal(t, int(adminTokenTTL.Seconds()), out.ExpiresIn)

	// トークンはADMINロール付きで検証できる
	token, err := jwt.Parse(out.AccessToken, func(t *jwt.Token) (interface{}, error) {
		return []byte("test_secret"), nil
	})
	assert.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, RoleAdmin, claims["role"])
}

func TestAuthUsecase_LoginRejects(t *testing.T) {
	uc := newTestAuthUsecase(t)
	ctx := context.Background()

	// email違い・パスワード違いはどちらも同じ401
	for _, in := range []LoginInput{
		{Email: "someone@else.example", Password: "correct-horse"},
		{Email: "owner@alif.example", Password: "wrong"},
	} {
		_, err := uc.Login(ctx, in)
		he, ok := AsHTTPError(err)
		assert.True(t, ok)
		assert.Equal(t, http.StatusUnauthorized, he.Status)
	}

	// 入力不足は400
	_, err := uc.Login(ctx, LoginInput{})
	he, _ := AsHTTPError(err)
	assert.Equal(t, http.StatusBadRequest, he.Status)
}
