package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"royalmotors/internal/auth"
	applog "royalmotors/internal/log"
)

func ensureSID(c *fiber.Ctx) string {
	sid := c.Cookies("sid")
	if sid == "" {
		sid = uuid.NewString()
		c.Cookie(&fiber.Cookie{
			Name:     "sid",
			Value:    sid,
			Path:     "/",
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
			Secure:   false,
		})
	}
	return sid
}

// RequireAdmin lets a request through only when the session is unlocked.
func RequireAdmin(gate *auth.Gate) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies("sid")
		if sid == "" || !gate.IsAdmin(sid) {
			applog.Security(c, "access.denied.admin", nil)
			return c.Redirect("/login")
		}
		return c.Next()
	}
}
