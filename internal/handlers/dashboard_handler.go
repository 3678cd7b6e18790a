package handlers

import (
	"log"

	"agromarket/internal/middleware"
	"agromarket/internal/services"

	"github.com/gofiber/fiber/v2"
)

// DashboardHandler handles HTTP requests for the producer dashboard.
type DashboardHandler struct {
	service *services.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(service *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		service: service,
	}
}

// RegisterRoutes registers the dashboard routes; they require
// authentication.
func (h *DashboardHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/dashboard", h.HandleDashboard)
	router.Get("/producers/:name/stats", h.HandleProducerStats)
}

// HandleDashboard returns the current producer's own dashboard numbers.
func (h *DashboardHandler) HandleDashboard(c *fiber.Ctx) error {
	sess := middleware.CurrentSession(c)
	return h.renderStats(c, sess.Name)
}

// HandleProducerStats returns the public profile numbers for any seller.
func (h *DashboardHandler) HandleProducerStats(c *fiber.Ctx) error {
	return h.renderStats(c, c.Params("name"))
}

func (h *DashboardHandler) renderStats(c *fiber.Ctx, sellerName string) error {
	stats, err := h.service.Stats(sellerName)
	if err != nil {
		log.Printf("Error computing stats for seller %s: %v", sellerName, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not compute dashboard stats",
			"error":   err.Error(),
		})
	}
	return c.JSON(stats)
}
