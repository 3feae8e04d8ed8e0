package handlers_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	html "github.com/gofiber/template/html/v2"

	"royalmotors/internal/auth"
	"royalmotors/internal/http/handlers"
	"royalmotors/internal/store"
)

const adminSecret = "royalmotors369741"

func extractCookie(resp *http.Response, name string) string {
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c.Value
		}
	}
	return ""
}

func loginApp(t *testing.T) (*fiber.App, *auth.Gate) {
	t.Helper()
	sessions := store.NewSessionStore()
	gate := auth.NewGate(adminSecret, sessions)
	authH := &handlers.AuthHandler{Gate: gate}

	engine := html.New("../../web/templates", ".html")
	app := fiber.New(fiber.Config{Views: engine})
	app.Use(csrf.New(csrf.Config{KeyLookup: "form:csrf", CookieName: "csrf_", CookieSameSite: "Lax"}))
	app.Get("/login", authH.LoginForm)
	app.Post("/login", limiter.New(limiter.Config{Max: 3, Expiration: time.Minute}), authH.Login)
	app.Post("/logout", authH.Logout)
	return app, gate
}

func postLogin(t *testing.T, app *fiber.App, csrfTok, sid, password string) *http.Response {
	t.Helper()
	form := strings.NewReader("csrf=" + csrfTok + "&password=" + password)
	req := httptest.NewRequest("POST", "/login", form)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(&http.Cookie{Name: "csrf_", Value: csrfTok})
	if sid != "" {
		req.AddCookie(&http.Cookie{Name: "sid", Value: sid})
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	return resp
}

func TestLoginUnlocksOnExactSecretOnly(t *testing.T) {
	app, gate := loginApp(t)

	respForm, _ := app.Test(httptest.NewRequest("GET", "/login", nil))
	csrfTok := extractCookie(respForm, "csrf_")
	if csrfTok == "" {
		t.Fatal("csrf token missing")
	}

	// Wrong password -> 401 with the transient indicator.
	resp := postLogin(t, app, csrfTok, "sid-1", "royalmotors")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 for bad password, got %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "Incorrect password") {
		t.Fatal("failure indicator missing from response")
	}
	if gate.IsAdmin("sid-1") {
		t.Fatal("wrong password unlocked the session")
	}

	// The same secret in a different case must also fail.
	resp = postLogin(t, app, csrfTok, "sid-1", strings.ToUpper(adminSecret))
	if resp.StatusCode != http.StatusUnauthorized || gate.IsAdmin("sid-1") {
		t.Fatal("case-insensitive match must not unlock")
	}

	// Exact secret -> redirect home, session unlocked.
	resp = postLogin(t, app, csrfTok, "sid-1", adminSecret)
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("expected redirect on success, got %d", resp.StatusCode)
	}
	if !gate.IsAdmin("sid-1") {
		t.Fatal("exact secret did not unlock")
	}
}

func TestLoginThrottled(t *testing.T) {
	app, _ := loginApp(t)
	respForm, _ := app.Test(httptest.NewRequest("GET", "/login", nil))
	csrfTok := extractCookie(respForm, "csrf_")

	for i := 0; i < 3; i++ {
		postLogin(t, app, csrfTok, "sid-t", "wrong")
	}
	resp := postLogin(t, app, csrfTok, "sid-t", "wrong")
	if resp.StatusCode != http.StatusTooManyRequests {
		t.Fatalf("expected 429 after throttle, got %d", resp.StatusCode)
	}
}

func TestLogoutLocksSession(t *testing.T) {
	app, gate := loginApp(t)
	respForm, _ := app.Test(httptest.NewRequest("GET", "/login", nil))
	csrfTok := extractCookie(respForm, "csrf_")

	postLogin(t, app, csrfTok, "sid-out", adminSecret)
	if !gate.IsAdmin("sid-out") {
		t.Fatal("precondition: session should be unlocked")
	}

	req := httptest.NewRequest("POST", "/logout", strings.NewReader("csrf="+csrfTok))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(&http.Cookie{Name: "csrf_", Value: csrfTok})
	req.AddCookie(&http.Cookie{Name: "sid", Value: "sid-out"})
	if _, err := app.Test(req); err != nil {
		t.Fatal(err)
	}
	if gate.IsAdmin("sid-out") {
		t.Fatal("logout did not lock the session")
	}
}
