package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"royalmotors/internal/auth"
	applog "royalmotors/internal/log"
)

type AuthHandler struct {
	Gate *auth.Gate
}

func (h *AuthHandler) LoginForm(c *fiber.Ctx) error {
	sid := ensureSID(c)
	if h.Gate.IsAdmin(sid) {
		return c.Redirect("/")
	}
	errMsg := ""
	if h.Gate.FailedLast(sid) {
		errMsg = "Incorrect password"
	}
	return render(c, "login", fiber.Map{"Err": errMsg})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	sid := ensureSID(c)
	password := c.FormValue("password")
	if !h.Gate.Unlock(sid, password) {
		applog.Security(c, "auth.unlock.fail", nil)
		// Consume the failure flag right away for the 401 page.
		errMsg := ""
		if h.Gate.FailedLast(sid) {
			errMsg = "Incorrect password"
		}
		return c.Status(fiber.StatusUnauthorized).Render("login", fiber.Map{
			"Err": errMsg, "CSRFToken": c.Cookies("csrf_"),
		})
	}
	applog.Audit(c, "auth.unlock", nil)
	return c.Redirect("/")
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sid := ensureSID(c)
	h.Gate.Logout(sid)
	c.Cookie(&fiber.Cookie{
		Name:     "sid",
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Secure:   false,
		Expires:  time.Now().Add(-1 * time.Hour),
	})
	applog.Audit(c, "auth.logout", nil)
	return c.Redirect("/")
}
