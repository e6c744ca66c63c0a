package usecase

import (
	"context"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

// 管理者アクセストークンの有効期限
const adminTokenTTL = 15 * time.Minute

// 管理者のロール名（トークンのrole claim）
const RoleAdmin = "ADMIN"

// AuthUsecase は単一管理者のログイン。
// ユーザー登録は無く、管理者は環境変数で1人だけ設定する。
type AuthUsecase struct {
	adminEmail   string
	passwordHash string // bcrypt
	jwtSecret    []byte
	now          func() time.Time
}

// DI
func NewAuthUsecase(adminEmail string, passwordHash string, jwtSecret string) *AuthUsecase {
	return &AuthUsecase{
		adminEmail:   adminEmail,
		passwordHash: passwordHash,
		jwtSecret:    []byte(jwtSecret),
		now:          time.Now,
	}
}

type LoginInput struct {
	Email    string
	Password string
}

type LoginOutput struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

// Login はメール＋パスワードを検証して管理者トークンを返す。
// どちらが違っても同じ401にする。
func (u *AuthUsecase) Login(ctx context.Context, in LoginInput) (LoginOutput, error) {
	if in.Email == "" || in.Password == "" {
		return LoginOutput{}, NewHTTPError(http.StatusBadRequest, "email and password are required")
	}

	if in.Email != u.adminEmail {
		return LoginOutput{}, NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.passwordHash), []byte(in.Password)); err != nil {
		return LoginOutput{}, NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	}

	now := u.now()
	expiresAt := now.Add(adminTokenTTL)

	claims := jwt.MapClaims{
		"sub":  "admin",
		"role": RoleAdmin,
		"iat":  now.Unix(),
		"exp":  expiresAt.Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(u.jwtSecret)
	if err != nil {
		return LoginOutput{}, NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	return LoginOutput{
		AccessToken: signed,
		ExpiresIn:   int(adminTokenTTL.Seconds()),
	}, nil
}
