package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"royalmotors/internal/auth"
	"royalmotors/internal/editor"
	"royalmotors/internal/images"
	"royalmotors/internal/inventory"
	applog "royalmotors/internal/log"
	"royalmotors/internal/validate"
)

type AdminHandler struct {
	Editor *editor.Manager
	Repo   *inventory.Repository
	Gate   *auth.Gate
}

// GET /admin/vehicles/new
func (h *AdminHandler) New(c *fiber.Ctx) error {
	sid := ensureSID(c)
	draft := h.Editor.BeginCreate(sid)
	return h.renderEditor(c, draft, nil)
}

// GET /admin/vehicles/:id/edit
func (h *AdminHandler) Edit(c *fiber.Ctx) error {
	sid := ensureSID(c)
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(400).SendString("invalid id")
	}
	rec, ok := h.Repo.Get(id)
	if !ok {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "This vehicle is no longer available"})
	}
	h.Editor.BeginEdit(sid, rec)
	return h.renderEditor(c, rec, nil)
}

// POST /admin/vehicles applies the form to the draft field by field and
// commits. A field that fails to parse keeps its previous draft value and
// blocks the save; nothing is persisted until every field is valid.
func (h *AdminHandler) Save(c *fiber.Ctx) error {
	sid := ensureSID(c)
	if _, ok := h.Editor.Draft(sid); !ok {
		return c.Redirect("/")
	}

	errs := map[string]string{}

	if v, ok := validate.Required(c.FormValue("brand")); ok {
		_ = h.Editor.SetBrand(sid, v)
	} else {
		errs["brand"] = "Brand is required"
	}
	if v, ok := validate.Required(c.FormValue("model")); ok {
		_ = h.Editor.SetModel(sid, v)
	} else {
		errs["model"] = "Model is required"
	}
	if v, ok := validate.Year(c.FormValue("year")); ok {
		_ = h.Editor.SetYear(sid, v)
	} else {
		errs["year"] = "Enter a valid year"
	}
	if v, ok := validate.Amount(c.FormValue("price")); ok {
		_ = h.Editor.SetPrice(sid, v)
	} else {
		errs["price"] = "Enter a valid price"
	}
	if v, ok := validate.OptionalAmount(c.FormValue("old_price")); ok {
		_ = h.Editor.SetOldPrice(sid, v)
	} else {
		errs["old_price"] = "Enter a valid prior price"
	}
	if v, ok := validate.Amount(c.FormValue("km")); ok {
		_ = h.Editor.SetKm(sid, v)
	} else {
		errs["km"] = "Enter a valid odometer reading"
	}
	if v, ok := validate.Transmission(c.FormValue("transmission")); ok {
		_ = h.Editor.SetTransmission(sid, v)
	} else {
		errs["transmission"] = "Choose Automatic or Manual"
	}
	_ = h.Editor.SetFuel(sid, c.FormValue("fuel"))
	_ = h.Editor.SetDescription(sid, c.FormValue("description"))
	if v := c.FormValue("image_url"); v != "" {
		_ = h.Editor.SetImageURL(sid, v)
	}
	_ = h.Editor.SetFeatures(sid, validate.Features(c.FormValue("features")))
	_ = h.Editor.SetIsNew(sid, c.FormValue("is_new") == "on")

	if len(errs) > 0 {
		draft, _ := h.Editor.Draft(sid)
		return h.renderEditor(c, draft, errs)
	}

	if err := h.Editor.Commit(sid); err != nil {
		if errors.Is(err, editor.ErrNoDraft) {
			return c.Redirect("/")
		}
		applog.Warn(c, "inventory.persist.fail", err, nil)
		return c.Redirect("/?warn=storage")
	}
	applog.Audit(c, "admin.vehicle.save", nil)
	return c.Redirect("/")
}

// POST /admin/vehicles/discard
func (h *AdminHandler) Discard(c *fiber.Ctx) error {
	sid := ensureSID(c)
	h.Editor.Discard(sid)
	return c.Redirect("/")
}

// POST /admin/vehicles/:id/delete — the confirm step is a form on the page.
func (h *AdminHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(400).SendString("invalid id")
	}
	if err := h.Editor.Remove(id); err != nil {
		applog.Warn(c, "inventory.persist.fail", err, map[string]any{"vehicle_id": id})
		return c.Redirect("/?warn=storage")
	}
	applog.Audit(c, "admin.vehicle.delete", map[string]any{"vehicle_id": id})
	return c.Redirect("/")
}

// POST /admin/vehicles/images takes a multipart photo batch, converts it to
// data URLs and attaches it to the draft. The batch is all-or-nothing and a
// stale batch (draft discarded or swapped meanwhile) is dropped silently.
func (h *AdminHandler) Upload(c *fiber.Ctx) error {
	sid := ensureSID(c)
	draft, ok := h.Editor.Draft(sid)
	if !ok {
		return c.Redirect("/")
	}
	gen := h.Editor.Generation(sid)

	form, err := c.MultipartForm()
	if err != nil {
		applog.Error(c, "admin.images.form.fail", err, nil)
		return h.renderEditor(c, draft, map[string]string{"photos": "Could not read the uploaded files"})
	}
	files := form.File["photos"]
	if len(files) == 0 {
		return h.renderEditor(c, draft, map[string]string{"photos": "Select at least one photo"})
	}

	converted, err := images.IngestBatch(files)
	if err != nil {
		// Whole batch failed; the draft stays untouched.
		applog.Error(c, "admin.images.convert.fail", err, map[string]any{"files": len(files)})
		return h.renderEditor(c, draft, map[string]string{"photos": "Could not process the selected photos"})
	}

	if !h.Editor.AttachImages(sid, gen, converted) {
		applog.Info(c, "admin.images.stale", map[string]any{"files": len(converted)})
		return c.Redirect("/")
	}
	draft, _ = h.Editor.Draft(sid)
	return h.renderEditor(c, draft, nil)
}

func (h *AdminHandler) renderEditor(c *fiber.Ctx, draft inventory.VehicleRecord, errs map[string]string) error {
	return render(c, "editor", fiber.Map{
		"D":      draft,
		"Errors": errs,
	})
}
