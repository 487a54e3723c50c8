package middleware

import (
	"YeloSoul/internal/entity"
	jwtPkg "YeloSoul/pkg/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"strings"
)

const (
	AccessTokenSecret = "JWT_ACCESS_TOKEN_SECRET"
)

func (m *middleware) NewTokenMiddleware(ctx *fiber.Ctx) error {
	authHeader := ctx.Get("Authorization")

	if authHeader == "" {
		m.log.WithFields(logrus.Fields{
			"path": ctx.Path(),
		}).Warn("Authorization header is missing")
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized, access token invalid or expired",
		})
	}

	if !strings.HasPrefix(authHeader, "Bearer ") {
		m.log.WithFields(logrus.Fields{
			"path": ctx.Path(),
		}).Warn("Authorization header format is invalid")
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized, access token invalid or expired",
		})
	}

	userToken, err := jwtPkg.VerifyTokenHeader(ctx, AccessTokenSecret)
	if err != nil {
		m.log.WithFields(logrus.Fields{
			"error": err.Error(),
			"path":  ctx.Path(),
		}).Warn("Token verification failed")
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized, access token invalid or expired",
		})
	}

	claims, ok := userToken.Claims.(jwt.MapClaims)
	if !ok {
		m.log.Warn("Invalid token claims")
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized, access token invalid or expired",
		})
	}

	if claims["id"] == nil || claims["email"] == nil || claims["name"] == nil {
		m.log.Warn("Token claims are missing required fields")
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized, access token invalid or expired",
		})
	}

	isAdmin, _ := claims["is_admin"].(bool)

	user := entity.UserLoginData{
		ID:      claims["id"].(string),
		Email:   claims["email"].(string),
		Name:    claims["name"].(string),
		IsAdmin: isAdmin,
	}
	ctx.Locals("user", user)

	return ctx.Next()
}

// NewAdminMiddleware must run after the token middleware: it trusts the
// user data the token middleware stored in locals.
func (m *middleware) NewAdminMiddleware(ctx *fiber.Ctx) error {
	userData := ctx.Locals("user")

	user, ok := userData.(entity.UserLoginData)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized, access token invalid or expired",
		})
	}

	if !user.IsAdmin {
		m.log.WithFields(logrus.Fields{
			"user_id": user.ID,
			"path":    ctx.Path(),
		}).Warn("Non-admin user attempted admin route")
		return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Not authorized as admin",
		})
	}

	return ctx.Next()
}
