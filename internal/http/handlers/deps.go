package handlers

import (
	"royalmotors/internal/auth"
	"royalmotors/internal/editor"
	"royalmotors/internal/inventory"
)

type Deps struct {
	CatalogHandler *CatalogHandler
	VehicleHandler *VehicleHandler
	AdminHandler   *AdminHandler
}

func NewDeps(repo *inventory.Repository, gate *auth.Gate, ed *editor.Manager) *Deps {
	return &Deps{
		CatalogHandler: &CatalogHandler{Repo: repo},
		VehicleHandler: &VehicleHandler{Repo: repo},
		AdminHandler:   &AdminHandler{Editor: ed, Repo: repo, Gate: gate},
	}
}
