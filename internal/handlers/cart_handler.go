package handlers

import (
	"errors"
	"log"
	"strings"

	"agromarket/internal/market"
	"agromarket/internal/middleware"
	"agromarket/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CartHandler handles HTTP requests for the buyer's cart.
type CartHandler struct {
	carts    *services.CartService
	orders   *services.OrderService
	validate *validator.Validate
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(carts *services.CartService, orders *services.OrderService) *CartHandler {
	return &CartHandler{
		carts:    carts,
		orders:   orders,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the cart routes; all of them require
// authentication since carts belong to a user.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	cartRoutes := router.Group("/cart")
	cartRoutes.Get("/", h.HandleGetCart)
	cartRoutes.Post("/items", h.HandleAddItem)
	cartRoutes.Patch("/items/:productID", h.HandleAdjustItem)
	cartRoutes.Delete("/items/:productID", h.HandleRemoveItem)
	cartRoutes.Post("/checkout", h.HandleCheckout)
}

// cartResponse renders a cart with its derived totals.
func cartResponse(cart market.Cart) fiber.Map {
	return fiber.Map{
		"items": cart,
		"total": cart.Total(),
		"count": cart.Count(),
	}
}

// HandleGetCart returns the current user's cart with its totals.
func (h *CartHandler) HandleGetCart(c *fiber.Ctx) error {
	cart := h.carts.Get(middleware.CurrentSession(c))
	return c.JSON(cartResponse(cart))
}

// AddItemRequest is the payload for putting a listing in the cart.
type AddItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gte=1"`
}

// HandleAddItem adds a listing to the cart, merging with an existing line
// for the same product.
func (h *CartHandler) HandleAddItem(c *fiber.Ctx) error {
	var req AddItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationMessages(err),
		})
	}

	cart, err := h.carts.AddItem(middleware.CurrentSession(c), req.ProductID, req.Quantity)
	if err != nil {
		log.Printf("Error adding product %s to cart: %v", req.ProductID, err)
		switch {
		case errors.Is(err, services.ErrProductExpired), errors.Is(err, services.ErrInvalidQuantity):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Could not add product to cart",
				"error":   err.Error(),
			})
		case strings.Contains(err.Error(), "not found"):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Product not found",
				"error":   err.Error(),
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Could not add product to cart",
				"error":   err.Error(),
			})
		}
	}
	return c.JSON(cartResponse(cart))
}

// AdjustItemRequest is the payload for a relative quantity change.
type AdjustItemRequest struct {
	Delta int `json:"delta" validate:"required"`
}

// HandleAdjustItem changes a line's quantity by a delta, clamped at 1.
func (h *CartHandler) HandleAdjustItem(c *fiber.Ctx) error {
	var req AdjustItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationMessages(err),
		})
	}

	cart := h.carts.AdjustItem(middleware.CurrentSession(c), c.Params("productID"), req.Delta)
	return c.JSON(cartResponse(cart))
}

// HandleRemoveItem drops a line from the cart entirely.
func (h *CartHandler) HandleRemoveItem(c *fiber.Ctx) error {
	cart := h.carts.RemoveItem(middleware.CurrentSession(c), c.Params("productID"))
	return c.JSON(cartResponse(cart))
}

// HandleCheckout turns the cart into a pending order and clears the cart.
// On failure the cart is left as it was.
func (h *CartHandler) HandleCheckout(c *fiber.Ctx) error {
	sess := middleware.CurrentSession(c)
	cart := h.carts.Get(sess)

	order, err := h.orders.Checkout(sess, cart)
	if err != nil {
		log.Printf("Error during checkout for user %s: %v", sess.UserID, err)
		switch {
		case errors.Is(err, services.ErrEmptyCart),
			errors.Is(err, services.ErrProductExpired),
			errors.Is(err, services.ErrInsufficientStock):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Checkout failed",
				"error":   err.Error(),
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Could not place order",
				"error":   err.Error(),
			})
		}
	}

	h.carts.Clear(sess)
	return c.Status(fiber.StatusCreated).JSON(order)
}
