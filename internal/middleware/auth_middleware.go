package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/stripe-memberships/internal/models"
	jwtPkg "github.com/sefazor/stripe-memberships/pkg/jwt"
	"go.uber.org/zap"
)

// AdminMiddleware requires an HS256 bearer token carrying role=admin. An empty
// secret disables the check.
func AdminMiddleware(secret string, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if secret == "" {
			return c.Next()
		}

		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Se requiere el encabezado Authorization"))
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Formato de Authorization inválido"))
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := jwtPkg.ValidateToken(secret, tokenString)
		if err != nil {
			logger.Warn("admin token rejected", zap.String("ip", c.IP()), zap.Error(err))
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Token inválido"))
		}

		role, _ := claims["role"].(string)
		if role != jwtPkg.RoleAdmin {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Token sin permisos de administrador"))
		}

		c.Locals("adminSubject", claims["sub"])
		return c.Next()
	}
}
