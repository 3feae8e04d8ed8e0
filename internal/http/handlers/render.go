package handlers

import "github.com/gofiber/fiber/v2"

func render(c *fiber.Ctx, tmpl string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	// Admin flag set by the session middleware in main.go
	if v, ok := c.Locals("isAdmin").(bool); ok {
		data["IsAdmin"] = v
	}
	// One-time storage warning banner (set after a failed persist)
	if c.Query("warn") == "storage" {
		data["Warn"] = "Your change was applied but could not be saved to disk. It may be lost on restart."
	}
	tok, _ := c.Locals("CSRFToken").(string)
	if tok == "" {
		tok = c.Cookies("csrf_")
	}
	if tok != "" {
		data["CSRFToken"] = tok
	}
	return c.Render(tmpl, data)
}
