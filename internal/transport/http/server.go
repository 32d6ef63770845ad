package http

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/marcaguilaar/automax-whatsapp-bot/internal/agent"
	"github.com/marcaguilaar/automax-whatsapp-bot/internal/dealership"
)

// NewServer creates and configures the HTTP server for the chat API.
func NewServer(directory *agent.Directory, svc *dealership.Service) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	h := NewHandler(directory, svc)
	h.RegisterRoutes(e)

	return e
}
