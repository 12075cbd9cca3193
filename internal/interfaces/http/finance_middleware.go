package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/outletaseo/outlet-api/internal/application/dto"
	"github.com/outletaseo/outlet-api/pkg/jwt"
)

// LocalScope key del scope del token en c.Locals.
const LocalScope = "scope"

// FinanceMiddleware valida el Bearer Token JWT y exige el scope "finance".
// Protege las rutas del panel financiero desbloqueadas con la clave.
func FinanceMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		scope, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		if scope != jwt.ScopeFinance {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "scope insuficiente"})
		}
		c.Locals(LocalScope, scope)
		return c.Next()
	}
}

// GetScope devuelve el scope del contexto (después del middleware).
func GetScope(c *fiber.Ctx) string {
	v := c.Locals(LocalScope)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
