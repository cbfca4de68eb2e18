// middleware/auth.go
package middleware

import (
	"os"
	"strings"
	"time"

	"taskhub/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const identityKey = "identity"

// AuthMiddleware verifies the bearer token and stores the caller's
// identity in the request context.
func AuthMiddleware(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Missing authorization header"})
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Invalid authorization header format"})
	}

	tokenString := parts[1]
	jwtSecret := os.Getenv("JWT_SECRET")

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(401, "Invalid signing method")
		}
		return []byte(jwtSecret), nil
	})

	if err != nil || !token.Valid {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Invalid or expired token"})
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Invalid token claims"})
	}

	exp, ok := claims["exp"].(float64)
	if !ok || time.Unix(int64(exp), 0).Before(time.Now()) {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Token expired"})
	}

	userID, ok := claims["user_id"].(float64)
	if !ok {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Invalid token claims"})
	}

	identity := models.Identity{ID: uint(userID)}
	if email, ok := claims["email"].(string); ok {
		identity.Email = email
	}
	if first, ok := claims["first_name"].(string); ok {
		identity.FirstName = first
	}
	if last, ok := claims["last_name"].(string); ok {
		identity.LastName = last
	}

	c.Locals(identityKey, identity)
	return c.Next()
}

// Identity returns the verified caller stored by AuthMiddleware.
func Identity(c *fiber.Ctx) (models.Identity, error) {
	identity, ok := c.Locals(identityKey).(models.Identity)
	if !ok {
		return models.Identity{}, fiber.NewError(401, "User not authenticated")
	}
	return identity, nil
}
