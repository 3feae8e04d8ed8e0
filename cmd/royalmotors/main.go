package main

import (
	"io"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"

	"royalmotors/internal/auth"
	"royalmotors/internal/config"
	"royalmotors/internal/editor"
	"royalmotors/internal/http/handlers"
	"royalmotors/internal/images"
	"royalmotors/internal/inventory"
	applog "royalmotors/internal/log"
	"royalmotors/internal/store"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			mw := io.MultiWriter(os.Stdout, f)
			log.SetOutput(mw)
		}
	}

	kv, err := store.OpenSQLite(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}

	// Core wiring: durable store -> repository, session store -> gate,
	// repository -> editor.
	repo := inventory.NewRepository(kv)
	sessions := store.NewSessionStore()
	gate := auth.NewGate(cfg.AdminSecret, sessions)
	ed := editor.NewManager(repo)
	authH := &handlers.AuthHandler{Gate: gate}

	// Templates & app
	engine := html.New("./web/templates", ".html")
	engine.Reload(true)

	app := fiber.New(fiber.Config{
		Views: engine,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Last-resort safety net: log, render a friendly page, never
			// leak internals or take the process down.
			applog.Error(c, "server.error", err, nil)
			if rerr := c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{
				"Message": "Something went wrong. Please reload the page.",
			}); rerr != nil {
				return c.Status(fiber.StatusInternalServerError).SendString("Something went wrong. Please reload the page.")
			}
			return nil
		},
	})
	// Body guard sized for a 10-photo upload batch
	app.Server().MaxRequestBodySize = (images.MaxBatch + 2) * images.MaxFileSize

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	// Expose the admin flag to templates
	app.Use(func(c *fiber.Ctx) error {
		if sid := c.Cookies("sid"); sid != "" {
			c.Locals("isAdmin", gate.IsAdmin(sid))
		}
		return c.Next()
	})
	app.Use(limiter.New(limiter.Config{
		Max:        120,
		Expiration: time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return len(c.Path()) >= 8 && c.Path()[:8] == "/static/"
		},
	}))
	app.Use(csrf.New(csrf.Config{
		KeyLookup:      "form:csrf",
		CookieName:     "csrf_",
		CookieSameSite: "Lax",
		CookieSecure:   false, // set true behind HTTPS
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Security(c, "csrf.fail", nil)
			return c.Status(fiber.StatusForbidden).Render("notfound", fiber.Map{"Message": "Security check failed. Please refresh and try again."})
		},
	}))
	app.Use(func(c *fiber.Ctx) error {
		if tok := c.Locals("csrf"); tok != nil {
			c.Locals("CSRFToken", tok.(string))
		}
		return c.Next()
	})

	// ---------- Static assets ----------
	app.Static("/static", cfg.StaticDir)

	// ---------- App handlers ----------
	deps := handlers.NewDeps(repo, gate, ed)

	// Public pages
	app.Get("/", deps.CatalogHandler.Home)
	app.Get("/search", limiter.New(limiter.Config{Max: 30, Expiration: time.Minute}), deps.CatalogHandler.Search)
	app.Get("/vehicle/:id", deps.VehicleHandler.Detail)

	// Auth routes (login throttled)
	app.Get("/login", authH.LoginForm)
	app.Post("/login", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 10 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.login.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).Render("login", fiber.Map{"Err": "Too many attempts. Please try again later."})
		},
	}), authH.Login)
	app.Post("/logout", authH.Logout)

	// Admin
	admin := app.Group("/admin", handlers.RequireAdmin(gate))
	admin.Get("/vehicles/new", deps.AdminHandler.New)
	admin.Get("/vehicles/:id/edit", deps.AdminHandler.Edit)
	admin.Post("/vehicles", deps.AdminHandler.Save)
	admin.Post("/vehicles/discard", deps.AdminHandler.Discard)
	admin.Post("/vehicles/:id/delete", deps.AdminHandler.Delete)
	admin.Post("/vehicles/images", deps.AdminHandler.Upload)

	// Health & 404
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Page not found"})
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}
