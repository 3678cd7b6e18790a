package handlers

import (
	"fmt"
	"log"
	"strings"
	"time"

	"agromarket/internal/market"
	"agromarket/internal/middleware"
	"agromarket/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for marketplace listings.
type ProductHandler struct {
	catalog  *services.CatalogService
	enhancer *services.EnhanceService
	validate *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(catalog *services.CatalogService, enhancer *services.EnhanceService) *ProductHandler {
	return &ProductHandler{
		catalog:  catalog,
		enhancer: enhancer,
		validate: validator.New(),
	}
}

// RegisterPublicRoutes registers the read-only catalog routes.
func (h *ProductHandler) RegisterPublicRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleListCatalog)
	productRoutes.Get("/:id", h.HandleGetProduct)
	productRoutes.Get("/:id/recipe", h.HandleSuggestRecipe)
}

// RegisterRoutes registers the listing management routes; these require
// authentication.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Post("/", h.HandleCreateProduct)
	productRoutes.Put("/:id", h.HandleUpdateProduct)
	productRoutes.Delete("/:id", h.HandleDeleteProduct)
	productRoutes.Post("/enhance-description", h.HandleEnhanceDescription)
}

// HandleListCatalog returns the listings matching the filter query
// parameters, in stable store order.
func (h *ProductHandler) HandleListCatalog(c *fiber.Ctx) error {
	filter := filterFromQuery(c)

	products, err := h.catalog.ListCatalog(filter)
	if err != nil {
		log.Printf("Error listing catalog: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve products",
			"error":   err.Error(),
		})
	}

	now := time.Now()
	responses := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		responses = append(responses, productToResponse(p, market.EvaluateSpoilage(p.ExpirationDate, now)))
	}
	return c.JSON(responses)
}

// HandleGetProduct retrieves a single listing by its ID.
func (h *ProductHandler) HandleGetProduct(c *fiber.Ctx) error {
	productID := c.Params("id")
	product, err := h.catalog.GetProduct(productID)
	if err != nil {
		log.Printf("Error getting product by ID %s: %v", productID, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Product with ID %s not found", productID),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve product",
			"error":   err.Error(),
		})
	}
	return c.JSON(productToResponse(*product, h.catalog.Spoilage(product)))
}

// HandleCreateProduct creates a new listing owned by the current user.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var payload ProductPayload
	if err := c.BodyParser(&payload); err != nil {
		log.Printf("Error parsing product request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationMessages(err),
		})
	}

	product := productFromPayload(payload)
	if err := h.catalog.CreateProduct(middleware.CurrentSession(c), &product); err != nil {
		log.Printf("Error creating product: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create product",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(productToResponse(product, h.catalog.Spoilage(&product)))
}

// HandleUpdateProduct updates an existing listing.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	var payload ProductPayload
	if err := c.BodyParser(&payload); err != nil {
		log.Printf("Error parsing product update body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationMessages(err),
		})
	}

	product := productFromPayload(payload)
	product.ID = c.Params("id")
	if err := h.catalog.UpdateProduct(&product); err != nil {
		log.Printf("Error updating product %s: %v", product.ID, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Product with ID %s not found", product.ID),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update product",
			"error":   err.Error(),
		})
	}
	return c.JSON(productToResponse(product, h.catalog.Spoilage(&product)))
}

// HandleDeleteProduct deletes a listing by its ID.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	productID := c.Params("id")
	if err := h.catalog.DeleteProduct(productID); err != nil {
		log.Printf("Error deleting product %s: %v", productID, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Product with ID %s not found", productID),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not delete product",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Product deleted successfully",
	})
}

// EnhanceRequest is the payload for AI-assisted description writing.
type EnhanceRequest struct {
	Name        string `json:"name" validate:"required"`
	Category    string `json:"category" validate:"required"`
	Description string `json:"description"`
}

// HandleEnhanceDescription rewrites a raw description through the text
// generator. The response always carries usable text: on any generator
// failure the original description comes back.
func (h *ProductHandler) HandleEnhanceDescription(c *fiber.Ctx) error {
	var req EnhanceRequest
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

	enhanced := h.enhancer.EnhanceDescription(c.Context(), req.Name, req.Category, req.Description)
	return c.JSON(fiber.Map{
		"description": enhanced,
	})
}

// HandleSuggestRecipe returns one recipe idea for a listing.
func (h *ProductHandler) HandleSuggestRecipe(c *fiber.Ctx) error {
	productID := c.Params("id")
	product, err := h.catalog.GetProduct(productID)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Product with ID %s not found", productID),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve product",
			"error":   err.Error(),
		})
	}

	recipe := h.enhancer.SuggestRecipe(c.Context(), product.Name)
	return c.JSON(fiber.Map{
		"recipe": recipe,
	})
}

// validationMessages flattens validator errors into a field-to-message map.
func validationMessages(err error) map[string]string {
	messages := make(map[string]string)
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			messages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
	}
	return messages
}
