package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/request-tracker/internal/domain"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("secret", 5)
	token, exp, err := tm.GenerateToken(domain.Actor{ID: "7", Role: domain.RoleSupport})
	require.NoError(t, err)
	require.WithinDuration(t, time.Now().Add(5*time.Minute), exp, time.Minute)

	claims, err := tm.ParseToken(token)
	require.NoError(t, err)
	require.Equal(t, domain.Actor{ID: "7", Role: domain.RoleSupport}, claims.Actor())
}

func TestParseTokenRejectsForeignSecretAndMethod(t *testing.T) {
	token, _, err := NewTokenManager("other", 5).GenerateToken(domain.Actor{ID: "7", Role: domain.RoleAdmin})
	require.NoError(t, err)
	_, err = NewTokenManager("secret", 5).ParseToken(token)
	require.Error(t, err)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{UserID: "7", Role: domain.RoleAdmin}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = NewTokenManager("secret", 5).ParseToken(unsigned)
	require.Error(t, err)
}

func TestClaimsActorFallsBackToSubject(t *testing.T) {
	c := &Claims{Role: domain.RoleEmployee, RegisteredClaims: jwt.RegisteredClaims{Subject: "22"}}
	require.Equal(t, "22", c.Actor().ID)
}

func newProtectedApp(tm *TokenManager, guards ...fiber.Handler) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if fe, ok := err.(*fiber.Error); ok {
				return c.SendStatus(fe.Code)
			}
			return c.SendStatus(http.StatusUnauthorized)
		},
	})
	handlers := append([]fiber.Handler{NewAuthMiddleware(tm).Handle}, guards...)
	handlers = append(handlers, func(c *fiber.Ctx) error {
		actor, ok := ActorFromContext(c)
		if !ok {
			return c.SendStatus(http.StatusInternalServerError)
		}
		return c.SendString(actor.ID + ":" + string(actor.Role))
	})
	app.Get("/me", handlers...)
	return app
}

func TestAuthMiddleware(t *testing.T) {
	tm := NewTokenManager("secret", 5)
	valid, _, err := tm.GenerateToken(domain.Actor{ID: "9", Role: domain.RoleEmployee})
	require.NoError(t, err)
	badRole, _, err := tm.GenerateToken(domain.Actor{ID: "9", Role: "root"})
	require.NoError(t, err)

	cases := []struct {
		name   string
		header string
		want   int
	}{
		{"missing", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc", http.StatusUnauthorized},
		{"garbage", "Bearer abc", http.StatusUnauthorized},
		{"unknown role", "Bearer " + badRole, http.StatusUnauthorized},
		{"valid", "Bearer " + valid, http.StatusOK},
	}
	app := newProtectedApp(tm)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()
			require.Equal(t, tc.want, resp.StatusCode)
		})
	}
}

func TestRequireStaff(t *testing.T) {
	tm := NewTokenManager("secret", 5)
	app := newProtectedApp(tm, RequireStaff())

	for role, want := range map[domain.Role]int{
		domain.RoleEmployee: http.StatusForbidden,
		domain.RoleSupport:  http.StatusOK,
		domain.RoleAdmin:    http.StatusOK,
	} {
		token, _, err := tm.GenerateToken(domain.Actor{ID: "1", Role: role})
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		resp.Body.Close()
		require.Equal(t, want, resp.StatusCode, role)
	}
}
