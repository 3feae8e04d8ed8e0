package handlers

import (
	"fmt"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"royalmotors/internal/inventory"
	applog "royalmotors/internal/log"
	"royalmotors/internal/validate"
)

// ContactPhone feeds the WhatsApp deep link on the detail page.
const ContactPhone = "5518996717436"

type VehicleHandler struct {
	Repo *inventory.Repository
}

func (h *VehicleHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "vehicle"})
		return c.Status(404).Render("notfound", fiber.Map{"Message": "This vehicle is no longer available"})
	}
	rec, ok := h.Repo.Get(id)
	if !ok {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "This vehicle is no longer available"})
	}
	return render(c, "vehicle", fiber.Map{
		"V":           rec,
		"Images":      rec.Images(),
		"WhatsAppURL": whatsAppURL(rec),
	})
}

func whatsAppURL(rec inventory.VehicleRecord) string {
	text := fmt.Sprintf("Hello, I am interested in the %s (%d) I saw on the Royal Motors site!", rec.Model, rec.Year)
	return "https://api.whatsapp.com/send/?phone=" + ContactPhone + "&text=" + url.QueryEscape(text)
}
