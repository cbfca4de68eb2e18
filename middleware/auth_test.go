package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"taskhub/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-at-least-32-characters-long!"

func newAuthApp(t *testing.T) *fiber.App {
	t.Helper()
	t.Setenv("JWT_SECRET", testSecret)

	app := fiber.New()
	app.Get("/whoami", AuthMiddleware, func(c *fiber.Ctx) error {
		identity, err := Identity(c)
		if err != nil {
			return err
		}
		return c.JSON(identity)
	})
	return app
}

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func TestAuthMiddlewareAcceptsValidToken(t *testing.T) {
	app := newAuthApp(t)

	token := signToken(t, jwt.MapClaims{
		"user_id":    float64(7),
		"email":      "ada@example.com",
		"first_name": "Ada",
		"last_name":  "Lovelace",
		"exp":        time.Now().Add(time.Hour).Unix(),
	})

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestAuthMiddlewareRejections(t *testing.T) {
	app := newAuthApp(t)

	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"malformed header", "Token abc"},
		{"garbage token", "Bearer not-a-token"},
		{"expired token", "Bearer " + signToken(t, jwt.MapClaims{
			"user_id": float64(7),
			"exp":     time.Now().Add(-time.Hour).Unix(),
		})},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/whoami", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, 401, resp.StatusCode)
		})
	}
}

func TestIdentityWithoutMiddleware(t *testing.T) {
	app := fiber.New()
	app.Get("/bare", func(c *fiber.Ctx) error {
		_, err := Identity(c)
		require.Error(t, err)
		return c.SendStatus(401)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/bare", nil))
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestIdentityRoundTrip(t *testing.T) {
	app := fiber.New()
	want := models.Identity{ID: 3, Email: "grace@example.com", FirstName: "Grace", LastName: "Hopper"}
	app.Get("/echo", func(c *fiber.Ctx) error {
		c.Locals(identityKey, want)
		got, err := Identity(c)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		return c.SendStatus(200)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/echo", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}
