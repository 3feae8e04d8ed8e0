package handlers_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	html "github.com/gofiber/template/html/v2"

	"royalmotors/internal/auth"
	"royalmotors/internal/editor"
	"royalmotors/internal/http/handlers"
	"royalmotors/internal/inventory"
	"royalmotors/internal/store"
)

func pagesApp(t *testing.T) (*fiber.App, *inventory.Repository) {
	t.Helper()
	repo := inventory.NewRepository(store.NewMemKV())
	sessions := store.NewSessionStore()
	gate := auth.NewGate(adminSecret, sessions)
	deps := handlers.NewDeps(repo, gate, editor.NewManager(repo))

	engine := html.New("../../web/templates", ".html")
	app := fiber.New(fiber.Config{Views: engine})
	app.Get("/", deps.CatalogHandler.Home)
	app.Get("/search", deps.CatalogHandler.Search)
	app.Get("/vehicle/:id", deps.VehicleHandler.Detail)
	return app, repo
}

func fetch(t *testing.T, app *fiber.App, path string) (int, string) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", path, nil))
	if err != nil {
		t.Fatal(err)
	}
	body, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(body)
}

func TestHomeShowsSeededStock(t *testing.T) {
	app, repo := pagesApp(t)

	status, body := fetch(t, app, "/")
	if status != http.StatusOK {
		t.Fatalf("home status %d", status)
	}
	first := repo.Load()[0]
	if !strings.Contains(body, first.Brand) {
		t.Fatalf("home page missing first stock brand %q", first.Brand)
	}
}

func TestSearchFiltersCaseInsensitively(t *testing.T) {
	app, _ := pagesApp(t)

	status, body := fetch(t, app, "/search?q=toyota")
	if status != http.StatusOK {
		t.Fatalf("search status %d", status)
	}
	if !strings.Contains(body, "Toyota") {
		t.Fatal("lowercase query did not match Toyota records")
	}
	if strings.Contains(body, "Jeep") {
		t.Fatal("non-matching brand leaked into filtered results")
	}
}

func TestSearchNoMatches(t *testing.T) {
	app, _ := pagesApp(t)

	status, body := fetch(t, app, "/search?q=zzzzzz")
	if status != http.StatusOK {
		t.Fatalf("search status %d", status)
	}
	if !strings.Contains(body, "No vehicle matched your search") {
		t.Fatal("empty-result message missing")
	}
}

func TestVehicleDetailRenders(t *testing.T) {
	app, repo := pagesApp(t)
	rec := repo.Load()[0]

	status, body := fetch(t, app, "/vehicle/"+rec.ID)
	if status != http.StatusOK {
		t.Fatalf("detail status %d", status)
	}
	if !strings.Contains(body, rec.Model) {
		t.Fatal("detail page missing the vehicle model")
	}
	if !strings.Contains(body, "api.whatsapp.com") {
		t.Fatal("detail page missing the contact link")
	}
}

func TestVehicleDetailFriendly404(t *testing.T) {
	app, _ := pagesApp(t)

	for _, id := range []string{"/vehicle/nope-123", "/vehicle/%3Cscript%3E"} {
		status, body := fetch(t, app, id)
		if status != http.StatusNotFound {
			t.Fatalf("%s: status %d, want 404", id, status)
		}
		if !strings.Contains(body, "no longer available") {
			t.Fatalf("%s: friendly message missing", id)
		}
	}
}

func TestHomePaginationClampsOutOfRange(t *testing.T) {
	app, repo := pagesApp(t)

	status, body := fetch(t, app, "/?page=99")
	if status != http.StatusOK {
		t.Fatalf("home status %d", status)
	}
	// 20 seed records across pages of 16: page 99 clamps to the last page,
	// which holds the final seed record.
	records := repo.Load()
	last := records[len(records)-1]
	if !strings.Contains(body, last.Model) {
		t.Fatalf("clamped page missing last record model %q", last.Model)
	}
}
