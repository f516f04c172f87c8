package handler

import (
	"github.com/gofiber/fiber/v2"

	"newsapi/internal/http/middleware"
	"newsapi/internal/service"
)

// Deps carries everything the routes need.
type Deps struct {
	DB      Pinger
	News    service.NewsService
	Updates service.UpdatesService
	Auth    service.AuthService
	Uploads service.UploadService
	// RequireAuthForWrites gates mutating news, updates and upload routes behind a bearer token.
	RequireAuthForWrites bool
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Handlers stay thin: parse, call a service, render. Errors go to the app ErrorHandler.
func RegisterRoutes(app *fiber.App, d Deps) {
	write := middleware.WriteGuard(d.RequireAuthForWrites, d.Auth)

	app.Get("/", Root())
	app.Get("/health", HealthCheck(d.DB))
	app.Get("/healthz", LivenessProbe())

	admin := app.Group("/admin")
	admin.Post("/login", Login(d.Auth))
	admin.Post("/create_seed_admin", CreateSeedAdmin(d.Auth))
	admin.Get("/verify", middleware.RequireAuth(d.Auth), VerifySession())

	news := app.Group("/news")
	news.Get("/", ListNews(d.News))
	// Registered before "/:slug" so "id" is never taken for a slug.
	news.Get("/id/:id", GetNewsByID(d.News))
	news.Get("/:slug", GetNewsBySlug(d.News))
	news.Post("/", write, CreateNews(d.News))
	news.Put("/:id", write, UpdateNews(d.News))
	news.Delete("/:id", write, DeleteNews(d.News))

	updates := app.Group("/updates")
	updates.Get("/", ListUpdates(d.Updates))
	updates.Get("/:id", GetUpdate(d.Updates))
	updates.Post("/", write, CreateUpdate(d.Updates))
	updates.Put("/:id", write, EditUpdate(d.Updates))
	updates.Delete("/:id", write, DeleteUpdate(d.Updates))

	app.Post("/upload", write, UploadImage(d.Uploads))
	app.Get("/uploads", ListUploads(d.Uploads))
	app.Delete("/uploads/:id", write, DeleteUpload(d.Uploads))
	app.Get("/static/*", ServeStatic(d.Uploads))
}
