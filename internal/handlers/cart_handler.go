package handlers

import (
	"fmt"
	"log"
	"strings"
	"thanhha/internal/services"

	"github.com/gofiber/fiber/v2"
)

// HeaderSessionID carries the opaque shopping session identifier. Shoppers
// are anonymous; the header scopes one cart and one checkout per display
// context.
const HeaderSessionID = "X-Session-ID"

// sessionID extracts the shopping session from the request, or returns an
// empty string if the header is missing.
func sessionID(c *fiber.Ctx) string {
	return strings.TrimSpace(c.Get(HeaderSessionID))
}

// missingSessionError writes the 400 response for requests without a
// session header.
func missingSessionError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": fmt.Sprintf("%s header is required", HeaderSessionID),
	})
}

// CartHandler handles HTTP requests for the session shopping cart.
type CartHandler struct {
	carts    *services.CartService
	products *services.ProductService
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(carts *services.CartService, products *services.ProductService) *CartHandler {
	return &CartHandler{
		carts:    carts,
		products: products,
	}
}

// RegisterRoutes registers the cart routes with the Fiber app.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	cartRoutes := router.Group("/cart")
	cartRoutes.Get("/", h.HandleGetCart)
	cartRoutes.Post("/items", h.HandleAddItem)
	cartRoutes.Patch("/items/:productID", h.HandleUpdateQuantity)
	cartRoutes.Delete("/items/:productID", h.HandleRemoveItem)
	cartRoutes.Delete("/", h.HandleClearCart)
}

// HandleGetCart returns the cart snapshot with derived totals.
func (h *CartHandler) HandleGetCart(c *fiber.Ctx) error {
	sid := sessionID(c)
	if sid == "" {
		return missingSessionError(c)
	}
	return c.JSON(h.carts.Snapshot(sid))
}

// AddItemRequest is the request body for adding a product to the cart.
type AddItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// HandleAddItem adds a product to the cart, merging with an existing line.
func (h *CartHandler) HandleAddItem(c *fiber.Ctx) error {
	sid := sessionID(c)
	if sid == "" {
		return missingSessionError(c)
	}

	var req AddItemRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing add item request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if req.ProductID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "product_id is required",
		})
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	product, err := h.products.GetProductByID(req.ProductID)
	if err != nil {
		log.Printf("Error resolving product %s for cart: %v", req.ProductID, err)
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": fmt.Sprintf("Product with ID %s not found", req.ProductID),
		})
	}

	h.carts.AddItem(sid, *product, req.Quantity)
	return c.Status(fiber.StatusCreated).JSON(h.carts.Snapshot(sid))
}

// UpdateQuantityRequest is the request body for a quantity adjustment.
type UpdateQuantityRequest struct {
	Delta int `json:"delta"`
}

// HandleUpdateQuantity applies a signed quantity delta to a cart line. A line
// driven to zero or below is removed.
func (h *CartHandler) HandleUpdateQuantity(c *fiber.Ctx) error {
	sid := sessionID(c)
	if sid == "" {
		return missingSessionError(c)
	}

	var req UpdateQuantityRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing update quantity request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	h.carts.UpdateQuantity(sid, c.Params("productID"), req.Delta)
	return c.JSON(h.carts.Snapshot(sid))
}

// HandleRemoveItem removes a line from the cart unconditionally.
func (h *CartHandler) HandleRemoveItem(c *fiber.Ctx) error {
	sid := sessionID(c)
	if sid == "" {
		return missingSessionError(c)
	}

	h.carts.RemoveItem(sid, c.Params("productID"))
	return c.JSON(h.carts.Snapshot(sid))
}

// HandleClearCart empties the cart.
func (h *CartHandler) HandleClearCart(c *fiber.Ctx) error {
	sid := sessionID(c)
	if sid == "" {
		return missingSessionError(c)
	}

	h.carts.Clear(sid)
	return c.JSON(h.carts.Snapshot(sid))
}
