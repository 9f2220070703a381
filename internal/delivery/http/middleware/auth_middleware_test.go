package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "hirehub/internal/domain/errors"
	"hirehub/internal/domain/service"
	mockSvc "hirehub/internal/mocks/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthContext(authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/me", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func okNext(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	m := NewAuthMiddleware(mockSvc.NewMockTokenService(t))

	c, rec := newAuthContext("")

	require.NoError(t, m.Authenticate(okNext)(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_NotBearerScheme(t *testing.T) {
	m := NewAuthMiddleware(mockSvc.NewMockTokenService(t))

	c, rec := newAuthContext("Basic dXNlcjpwYXNz")

	require.NoError(t, m.Authenticate(okNext)(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().ValidateAccessToken("bad-token").Return(nil, domainerrors.ErrTokenInvalid)

	m := NewAuthMiddleware(tokenSvc)
	c, rec := newAuthContext("Bearer bad-token")

	require.NoError(t, m.Authenticate(okNext)(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_ValidToken_SetsIdentity(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().ValidateAccessToken("good-token").Return(&service.Claims{
		Roles: []string{"ROLE_COMPANY"},
		Type:  service.TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: "jane@acme.example",
		},
	}, nil)

	m := NewAuthMiddleware(tokenSvc)
	c, rec := newAuthContext("Bearer good-token")

	var gotEmail string
	var gotRoles []string
	next := func(c echo.Context) error {
		gotEmail, _ = c.Get(ContextKeyEmail).(string)
		gotRoles, _ = c.Get(ContextKeyRoles).([]string)

		return c.NoContent(http.StatusOK)
	}

	require.NoError(t, m.Authenticate(next)(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "jane@acme.example", gotEmail)
	assert.Equal(t, []string{"ROLE_COMPANY"}, gotRoles)
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	m := NewAuthMiddleware(mockSvc.NewMockTokenService(t))

	t.Run("role present", func(t *testing.T) {
		c, rec := newAuthContext("")
		c.Set(ContextKeyRoles, []string{"ROLE_ADMIN", "ROLE_COMPANY"})

		require.NoError(t, m.RequireRole("ROLE_ADMIN")(okNext)(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("role absent", func(t *testing.T) {
		c, rec := newAuthContext("")
		c.Set(ContextKeyRoles, []string{"ROLE_CANDIDATE"})

		require.NoError(t, m.RequireRole("ROLE_ADMIN")(okNext)(c))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("roles missing from context", func(t *testing.T) {
		c, rec := newAuthContext("")

		require.NoError(t, m.RequireRole("ROLE_ADMIN")(okNext)(c))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
