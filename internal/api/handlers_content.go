package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// GetGuide serves the structured how-to content behind a checklist item.
// Items without a guide are a normal 404, not a failure.
func (handler *Handler) GetGuide(c *fiber.Ctx) error {
	key := strings.TrimSpace(c.Params("key"))
	guide, found := handler.content.GuideByKey(key)
	if !found {
		return apiError(c, fiber.StatusNotFound, "guide not found")
	}
	return c.JSON(fiber.Map{"guide": guide})
}

func (handler *Handler) GetPartners(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"categories": handler.content.PartnerCategories()})
}

func (handler *Handler) GetProducts(c *fiber.Ctx) error {
	catalog := handler.content.Products()
	return c.JSON(fiber.Map{
		"furniture":  catalog.Furniture,
		"appliances": catalog.Appliances,
	})
}

func (handler *Handler) ListBlogPosts(c *fiber.Ctx) error {
	category := strings.TrimSpace(c.Query("category"))
	tag := strings.TrimSpace(c.Query("tag"))
	featuredOnly := c.QueryBool("featured")

	posts := handler.content.Posts(category, tag, featuredOnly)
	return c.JSON(fiber.Map{
		"posts":      posts,
		"categories": handler.content.BlogCategories(),
		"tags":       handler.content.BlogTags(),
	})
}

func (handler *Handler) GetBlogPost(c *fiber.Ctx) error {
	slug := strings.TrimSpace(c.Params("slug"))
	post, found := handler.content.PostBySlug(slug)
	if !found {
		return apiError(c, fiber.StatusNotFound, "post not found")
	}
	return c.JSON(fiber.Map{"post": post})
}
