package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcastro/rfstore-api/pkg/jwt"
)

// LocalPreview key en Locals del modo preview.
const LocalPreview = "preview"

// PreviewMiddleware detecta un token de preview válido (header X-Preview-Token
// o query preview_token) y lo marca en Locals. Nunca rechaza la petición: sin
// token, o con token inválido, simplemente no se ven borradores.
func PreviewMiddleware(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if secret == "" {
			return c.Next()
		}
		token := c.Get("X-Preview-Token")
		if token == "" {
			token = c.Query("preview_token")
		}
		if token != "" && jwt.ParsePreview(secret, token) == nil {
			c.Locals(LocalPreview, true)
		}
		return c.Next()
	}
}

// IsPreview indica si la petición trae un token de preview válido.
func IsPreview(c *fiber.Ctx) bool {
	v, _ := c.Locals(LocalPreview).(bool)
	return v
}
