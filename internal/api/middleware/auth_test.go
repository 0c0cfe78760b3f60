package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const testSecret = "middleware-test-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func authContext(header string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/me", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuth_ValidToken(t *testing.T) {
	signed := signToken(t, testSecret, jwt.MapClaims{
		"user_id":  float64(42),
		"username": "carol",
		"role":     "user",
		"exp":      time.Now().Add(time.Hour).Unix(),
	})
	c, _ := authContext("Bearer " + signed)

	var gotID int64
	var gotRole string
	handler := Auth(testSecret)(func(c echo.Context) error {
		gotID, _ = c.Get("user_id").(int64)
		gotRole, _ = c.Get("role").(string)
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if gotID != 42 {
		t.Errorf("user_id = %d, want 42", gotID)
	}
	if gotRole != "user" {
		t.Errorf("role = %q, want user", gotRole)
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	c, _ := authContext("")

	handler := Auth(testSecret)(func(c echo.Context) error {
		t.Fatal("next handler must not run")
		return nil
	})

	err := handler(c)
	assertHTTPStatus(t, err, http.StatusUnauthorized)
}

func TestAuth_MalformedHeader(t *testing.T) {
	c, _ := authContext("Token abc123")

	handler := Auth(testSecret)(func(c echo.Context) error {
		t.Fatal("next handler must not run")
		return nil
	})

	err := handler(c)
	assertHTTPStatus(t, err, http.StatusUnauthorized)
}

func TestAuth_WrongSecret(t *testing.T) {
	signed := signToken(t, "some-other-secret", jwt.MapClaims{
		"user_id": float64(1),
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	c, _ := authContext("Bearer " + signed)

	handler := Auth(testSecret)(func(c echo.Context) error {
		t.Fatal("next handler must not run")
		return nil
	})

	err := handler(c)
	assertHTTPStatus(t, err, http.StatusUnauthorized)
}

func TestAuth_ExpiredToken(t *testing.T) {
	signed := signToken(t, testSecret, jwt.MapClaims{
		"user_id": float64(1),
		"exp":     time.Now().Add(-time.Minute).Unix(),
	})
	c, _ := authContext("Bearer " + signed)

	handler := Auth(testSecret)(func(c echo.Context) error {
		t.Fatal("next handler must not run")
		return nil
	})

	err := handler(c)
	assertHTTPStatus(t, err, http.StatusUnauthorized)
}

func TestAuth_TokenWithoutUserID(t *testing.T) {
	signed := signToken(t, testSecret, jwt.MapClaims{
		"username": "carol",
		"exp":      time.Now().Add(time.Hour).Unix(),
	})
	c, _ := authContext("Bearer " + signed)

	handler := Auth(testSecret)(func(c echo.Context) error {
		t.Fatal("next handler must not run")
		return nil
	})

	err := handler(c)
	assertHTTPStatus(t, err, http.StatusUnauthorized)
}

func assertHTTPStatus(t *testing.T, err error, want int) {
	t.Helper()
	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	if httpErr.Code != want {
		t.Errorf("status = %d, want %d", httpErr.Code, want)
	}
}
