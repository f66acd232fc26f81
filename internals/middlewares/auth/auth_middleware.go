// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

const LocUserID = "user_id"

type AuthJWTOpts struct {
	Secret string
	// Optional: request tanpa token tetap lanjut (actor diambil dari body).
	// Token yang dikirim tapi invalid tetap ditolak.
	Optional bool
}

func AuthJWT(o AuthJWTOpts) fiber.Handler {
	secret := strings.TrimSpace(o.Secret)

	return func(c *fiber.Ctx) error {
		// 1) Ambil token: Authorization: Bearer xxx
		raw, err := extractBearerToken(c)
		if err != nil {
			if o.Optional && errorsIsNoToken(err) {
				return c.Next()
			}
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}
		if secret == "" {
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		// 2) Parse + verifikasi algoritma (exp divalidasi oleh parser)
		tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !tok.Valid {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
		}

		claims, ok := tok.Claims.(jwt.MapClaims)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token claims")
		}

		// 3) user_id wajib UUID
		userID, err := extractUserID(claims)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Invalid or missing user ID")
		}
		c.Locals(LocUserID, userID.String())
		if userName, ok := claims["user_name"].(string); ok {
			c.Locals("user_name", userName)
		}
		return c.Next()
	}
}
