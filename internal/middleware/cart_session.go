package middleware

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"app/internal/config"
)

const (
	CtxCartIDKey = "cart_id" // string

	cartCookieName = "cart_token"
	cartCookieTTL  = 180 * 24 * time.Hour
)

// CartSession はブラウザごとのカートIDを署名付きCookieで持ち回す。
// Cookieが無い・壊れている場合は黙って新しいカートを切る（エラーにしない）。
func CartSession(cfg config.Config) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cartID := cartIDFromCookie(c, cfg)

			if cartID == "" {
				cartID = uuid.NewString()
				if err := setCartCookie(c, cfg, cartID); err != nil {
					return c.JSON(http.StatusInternalServerError, errorJSON("internal error"))
				}
			}

			c.Set(CtxCartIDKey, cartID)
			return next(c)
		}
	}
}

// CartIDFromContext はミドルウェア通過後のカートIDを取り出す。
func CartIDFromContext(c echo.Context) (string, bool) {
	v, ok := c.Get(CtxCartIDKey).(string)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

func cartIDFromCookie(c echo.Context, cfg config.Config) string {
	cookie, err := c.Cookie(cartCookieName)
	if err != nil || cookie.Value == "" {
		return ""
	}

	token, err := jwt.Parse(cookie.Value, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil || token == nil || !token.Valid {
		return ""
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ""
	}

	cid, ok := claims["cid"].(string)
	if !ok {
		return ""
	}
	return cid
}

func setCartCookie(c echo.Context, cfg config.Config, cartID string) error {
	// Cookieの寿命とトークンの寿命を揃える
	now := time.Now()
	claims := jwt.MapClaims{
		"cid": cartID,
		"iat": now.Unix(),
		"exp": now.Add(cartCookieTTL).Unix(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(cfg.JWTSecret))
	if err != nil {
		return err
	}

	c.SetCookie(&http.Cookie{
		Name:     cartCookieName,
		Value:    signed,
		Path:     "/",
		MaxAge:   int(cartCookieTTL.Seconds()),
		HttpOnly: true,
		Secure:   cfg.GoEnv == "prod",
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

type errorResponse struct {
	Error string `json:"error"`
}

func errorJSON(msg string) errorResponse {
	return errorResponse{Error: msg}
}
