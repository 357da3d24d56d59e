package middleware

import (
	"fmt"
	"strings"
	"time"

	"github.com/sanjanathakeri/courseappone/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// GenerateJWT generates a JWT token for the user. Role is USER or ADMIN.
func GenerateJWT(userID uint, name, role, email string) (string, error) {
	claims := jwt.MapClaims{
		"userId": userID,
		"name":   name,
		"role":   role,
		"email":  email,
		"iat":    time.Now().Unix(),                     // issued at
		"exp":    time.Now().Add(24 * time.Hour).Unix(), // expiry 24h
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	jwtSecret := []byte(config.AppConfig.JWTKey)

	return token.SignedString(jwtSecret)
}

// parseToken validates the Bearer token and returns its claims
func parseToken(c *fiber.Ctx) (jwt.MapClaims, error) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return nil, fmt.Errorf("missing Authorization header")
	}

	// The token should be prefixed with "Bearer "
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return nil, fmt.Errorf("invalid Authorization header format")
	}

	tokenString := authHeader[len("Bearer "):]

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.AppConfig.JWTKey), nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["userId"] == nil {
		return nil, fmt.Errorf("invalid token payload")
	}

	return claims, nil
}

// UserAuth checks for a valid JWT token and attaches the caller's identity
func UserAuth(c *fiber.Ctx) error {
	claims, err := parseToken(c)
	if err != nil {
		return ErrorResponse(c, fiber.StatusUnauthorized, err.Error())
	}

	// JWT numeric claims are stored as float64
	userID := claims["userId"].(float64)
	c.Locals("userId", uint(userID))
	if email, ok := claims["email"].(string); ok {
		c.Locals("email", email)
	}

	return c.Next()
}

// AdminAuth checks for a valid JWT token carrying the ADMIN role
func AdminAuth(c *fiber.Ctx) error {
	claims, err := parseToken(c)
	if err != nil {
		return ErrorResponse(c, fiber.StatusUnauthorized, err.Error())
	}

	if role, ok := claims["role"].(string); !ok || role != "ADMIN" {
		return ErrorResponse(c, fiber.StatusForbidden, "Access denied! Admin only.")
	}

	adminID := claims["userId"].(float64)
	c.Locals("adminId", uint(adminID))

	return c.Next()
}
