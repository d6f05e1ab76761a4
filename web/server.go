package web

import (
	"errors"
	"log"
	"time"

	"github.com/dentalshop/config"
	"github.com/dentalshop/database"
	"github.com/dentalshop/shop"
	"github.com/dentalshop/web/handlers"
	"github.com/dentalshop/web/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
)

// Server represents the web server
type Server struct {
	app *fiber.App
}

// NewServer creates a new Fiber server
func NewServer(cfg *config.Config) (*Server, error) {
	svc, err := shop.NewService(database.GetDB(), cfg.Shop)
	if err != nil {
		return nil, err
	}
	handlers.Init(svc, cfg)

	// Template engine for the server-rendered admin dashboard
	engine := html.New("./web/templates", ".html")
	engine.Reload(cfg.App.Environment == "development")
	engine.AddFunc("formatPrice", shop.FormatPrice)
	engine.AddFunc("formatDate", func(t time.Time) string {
		return t.Format("02/01/2006 15:04")
	})

	app := fiber.New(fiber.Config{
		Views:        engine,
		ErrorHandler: errorHandler,
	})

	// Middleware
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
	}))
	app.Use(cors.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path} ${error}\n",
	}))
	app.Use(middleware.SQLDebugMiddleware())

	setupRoutes(app, cfg)

	return &Server{app: app}, nil
}

// errorHandler maps service errors onto HTTP status codes.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, shop.ErrNotFound):
		code = fiber.StatusNotFound
	case errors.Is(err, shop.ErrValidation):
		code = fiber.StatusBadRequest
	case errors.Is(err, shop.ErrConflict), errors.Is(err, shop.ErrIllegalTransition):
		code = fiber.StatusConflict
	default:
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			code = fiberErr.Code
		}
	}

	if code == fiber.StatusInternalServerError {
		log.Printf("ERROR [%s %s]: %v", c.Method(), c.Path(), err)
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
	})
}

// Start starts the server
func (s *Server) Start(port string) error {
	log.Printf("Server starting on http://localhost:%s", port)
	return s.app.Listen(":" + port)
}

// Shutdown stops the server gracefully
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// setupRoutes configures all application routes
func setupRoutes(app *fiber.App, cfg *config.Config) {
	api := app.Group("/api")

	// Debug endpoint for SQL logs
	api.Get("/debug/sql", handlers.GetSQLLogs)
	api.Delete("/debug/sql", handlers.ClearSQLLogs)

	// Auth
	api.Post("/auth/login", handlers.Login)

	// Public catalog
	api.Get("/categories", handlers.CategoryList)
	api.Get("/categories/:id", handlers.CategoryView)
	api.Get("/categories/:id/products", handlers.CategoryProducts)
	api.Get("/products", handlers.ProductList)
	api.Get("/products/:id", handlers.ProductView)

	// Session cart
	api.Get("/cart", handlers.CartView)
	api.Post("/cart/items", handlers.CartAddItem)
	api.Put("/cart/items/:productId", handlers.CartUpdateItem)
	api.Delete("/cart/items/:productId", handlers.CartRemoveItem)
	api.Delete("/cart", handlers.CartClear)

	// Orders (checkout and customer views)
	api.Post("/orders", handlers.OrderCreate)
	api.Get("/orders", handlers.OrderList)
	api.Get("/orders/:id", handlers.OrderView)

	// Admin back office
	admin := api.Group("/admin", middleware.RequireAdmin(cfg.Auth.JWTSecret))
	admin.Get("/dashboard", handlers.Dashboard)
	admin.Get("/orders", handlers.AdminOrderList)
	admin.Patch("/orders/:id/status", handlers.OrderUpdateStatus)

	admin.Post("/categories", handlers.CategoryCreate)
	admin.Put("/categories/:id", handlers.CategoryUpdate)
	admin.Delete("/categories/:id", handlers.CategoryDelete)

	admin.Post("/products", handlers.ProductCreate)
	admin.Put("/products/:id", handlers.ProductUpdate)
	admin.Delete("/products/:id", handlers.ProductDelete)

	admin.Get("/users", handlers.UserList)
	admin.Get("/users/:id", handlers.UserView)
	admin.Post("/users", handlers.UserCreate)
	admin.Put("/users/:id", handlers.UserUpdate)
	admin.Delete("/users/:id", handlers.UserDelete)

	// Server-rendered dashboard page
	app.Get("/admin", middleware.RequireAdmin(cfg.Auth.JWTSecret), handlers.DashboardPage)
}
