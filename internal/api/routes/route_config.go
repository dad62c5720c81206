package routes

import (
	"ecotrack/domain"
	"ecotrack/internal/api/handlers"
	"ecotrack/internal/middleware"
	"ecotrack/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App              *fiber.App
	InventoryHandler handlers.InventoryHandler
	WasteHandler     handlers.WasteHandler
	DashboardHandler handlers.DashboardHandler
	AssistantHandler handlers.AssistantHandler
	Middleware       middleware.Middleware
	// JWTService is nil when the API runs without authentication.
	JWTService jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.GuestRoute()

	api := c.App.Group("/api/v1", c.Middleware.AuthMiddleware(c.JWTService))
	c.Inventory(api)
	c.Waste(api)
	c.Dashboard(api)
	c.Assistant(api)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": domain.MessageSuccessPing})
	})
}

func (c *Config) Inventory(api fiber.Router) {
	inventory := api.Group("/inventory")
	inventory.Post("", c.InventoryHandler.AddItem)
	inventory.Get("", c.InventoryHandler.GetItems)
	inventory.Get("/warnings", c.InventoryHandler.GetWarnings)
	inventory.Get("/:id", c.InventoryHandler.GetItem)
	inventory.Post("/:id/consume", c.InventoryHandler.MarkConsumed)
	inventory.Post("/:id/waste", c.InventoryHandler.MarkWasted)
}

func (c *Config) Waste(api fiber.Router) {
	waste := api.Group("/waste")
	waste.Post("", c.WasteHandler.LogWaste)
	waste.Get("", c.WasteHandler.GetWasteEntries)
}

func (c *Config) Dashboard(api fiber.Router) {
	api.Get("/dashboard", c.DashboardHandler.GetStats)
}

func (c *Config) Assistant(api fiber.Router) {
	assistant := api.Group("/assistant")
	assistant.Get("/greeting", c.AssistantHandler.Greeting)
	assistant.Post("/chat", c.AssistantHandler.Chat)
}
