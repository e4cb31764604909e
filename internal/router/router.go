package router

import (
	"sikeu-web/internal/config"

	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
)

func Setup(app *fiber.App, db *sqlx.DB, redis *redis.Client, cfg *config.Config) {
	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
			"app":    cfg.AppName,
		})
	})

	// Web routes (HTML)
	web := app.Group("")
	setupWebRoutes(web)

	// API routes (JSON)
	api := app.Group("/api/v1")
	SetupAPIRoutes(api, db, redis, cfg)
}

func setupWebRoutes(router fiber.Router) {
	// Authentication pages
	router.Get("/login", func(c *fiber.Ctx) error {
		return c.Render("auth/login", fiber.Map{
			"Title": "Login",
		})
	})

	// Dashboard
	router.Get("/", func(c *fiber.Ctx) error {
		return c.Render("dashboard/index", fiber.Map{
			"Title": "Dashboard",
		})
	})

	// Master data pages
	router.Get("/rekening", func(c *fiber.Ctx) error {
		return c.Render("master/rekening", fiber.Map{
			"Title": "Rekening",
		})
	})

	// Transaction pages
	router.Get("/kas-masuk", func(c *fiber.Ctx) error {
		return c.Render("transaksi/kas-masuk", fiber.Map{
			"Title": "Kas Masuk",
		})
	})

	router.Get("/kas-keluar", func(c *fiber.Ctx) error {
		return c.Render("transaksi/kas-keluar", fiber.Map{
			"Title": "Kas Keluar",
		})
	})

	router.Get("/jurnal-umum", func(c *fiber.Ctx) error {
		return c.Render("transaksi/jurnal-umum", fiber.Map{
			"Title": "Jurnal Umum",
		})
	})

	// Budget pages
	router.Get("/anggaran", func(c *fiber.Ctx) error {
		return c.Render("anggaran/index", fiber.Map{
			"Title": "Anggaran",
		})
	})

	// Report pages
	router.Get("/laporan/lra", func(c *fiber.Ctx) error {
		return c.Render("laporan/lra", fiber.Map{
			"Title": "Laporan Realisasi Anggaran",
		})
	})

	router.Get("/laporan/saldo", func(c *fiber.Ctx) error {
		return c.Render("laporan/saldo", fiber.Map{
			"Title": "Rekonsiliasi Saldo",
		})
	})
}
