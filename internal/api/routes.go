package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	app.Get("/favicon.ico", sendNoContent)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)
	auth.Get("/me", handler.AuthRequired, handler.Me)
	auth.Put("/password", handler.AuthRequired, handler.ChangePassword)
	auth.Delete("/account", handler.AuthRequired, handler.DeleteAccount)

	checklist := api.Group("/checklist", handler.AuthRequired)
	checklist.Get("", handler.GetChecklist)
	checklist.Get("/progress", handler.GetChecklistProgress)
	checklist.Post("/:id/toggle", handler.ToggleChecklistItem)

	moveDate := api.Group("/move-date", handler.AuthRequired)
	moveDate.Get("", handler.GetMoveDate)
	moveDate.Put("", handler.UpdateMoveDate)

	api.Get("/guides/:key", handler.GetGuide)
	api.Get("/partners", handler.GetPartners)
	api.Get("/products", handler.GetProducts)
	api.Get("/blog", handler.ListBlogPosts)
	api.Get("/blog/:slug", handler.GetBlogPost)
}

func sendNoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}
