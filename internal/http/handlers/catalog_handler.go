package handlers

import (
	"github.com/gofiber/fiber/v2"

	"royalmotors/internal/catalog"
	"royalmotors/internal/inventory"
	"royalmotors/internal/validate"
)

type CatalogHandler struct {
	Repo *inventory.Repository
}

// Home renders the stock listing: repository order, no filter.
func (h *CatalogHandler) Home(c *fiber.Ctx) error {
	records := h.Repo.Load()
	pg := catalog.Select(records, catalog.TabStock, "", validate.Page(c.Query("page")))
	return render(c, "home", fiber.Map{
		"Pg":    pg,
		"Count": len(records),
		"Pages": pageNumbers(pg.TotalPages),
	})
}

// Search renders the search listing: reversed order, brand/model filter.
func (h *CatalogHandler) Search(c *fiber.Ctx) error {
	q := validate.Query(c.Query("q"))
	records := h.Repo.Load()
	pg := catalog.Select(records, catalog.TabSearch, q, validate.Page(c.Query("page")))
	return render(c, "search", fiber.Map{
		"Pg":    pg,
		"Q":     q,
		"Count": len(records),
		"Pages": pageNumbers(pg.TotalPages),
	})
}

func pageNumbers(total int) []int {
	out := make([]int, total)
	for i := range out {
		out[i] = i + 1
	}
	return out
}
