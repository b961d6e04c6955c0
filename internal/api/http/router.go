package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/agent-console/internal/api/http/handlers"
	"github.com/spec-kit/agent-console/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Customers      *handlers.CustomersHandler
	Chat           *handlers.ChatHandler
	Products       *handlers.ProductsHandler
	Tickets        *handlers.TicketsHandler
	Identity       *handlers.IdentityHandler
	Queue          *handlers.QueueHandler
	Sessions       *handlers.SessionsHandler
	Agents         *handlers.AgentsHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes. The store endpoints are open; the
// console routes (queue, sessions) require an agent token.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")

	api.Get("/customers", cfg.Customers.List)
	api.Get("/customers/:id", cfg.Customers.Get)
	api.Get("/customers/:id/chat", cfg.Chat.History)
	api.Post("/chat/message", cfg.Chat.Post)
	api.Get("/products/:customerId", cfg.Products.ListByCustomer)

	api.Get("/tickets", cfg.Tickets.List)
	api.Get("/tickets/:id", cfg.Tickets.Get)
	api.Post("/tickets", cfg.Tickets.Create)
	api.Put("/tickets/:id", cfg.Tickets.Update)
	api.Get("/tickets/:id/events", cfg.Tickets.ListEvents)
	api.Post("/tickets/:id/notes", cfg.Tickets.AppendNote)

	api.Post("/verify-identity", cfg.Identity.Verify)
	api.Post("/agents/login", cfg.Agents.Login)

	console := api.Group("", cfg.AuthMiddleware.Handle)
	console.Get("/requests", cfg.Queue.List)
	console.Post("/requests/:id/select", cfg.Queue.Select)
	console.Get("/sessions/:id", cfg.Sessions.Get)
	console.Delete("/sessions/:id", cfg.Sessions.Delete)
	console.Post("/sessions/:id/send-code", cfg.Sessions.SendCode)
	console.Post("/sessions/:id/verify", cfg.Sessions.Verify)
	console.Post("/sessions/:id/call", cfg.Sessions.StartCall)
	console.Delete("/sessions/:id/call", cfg.Sessions.EndCall)
}
