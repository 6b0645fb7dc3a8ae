package handlers

import (
	"errors"
	"log"
	"thanhha/internal/models"
	"thanhha/internal/services"

	"github.com/gofiber/fiber/v2"
)

// CheckoutHandler handles HTTP requests for the checkout flow.
type CheckoutHandler struct {
	checkout *services.CheckoutService
}

// NewCheckoutHandler creates a new CheckoutHandler.
func NewCheckoutHandler(checkout *services.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{
		checkout: checkout,
	}
}

// RegisterRoutes registers the checkout routes with the Fiber app.
func (h *CheckoutHandler) RegisterRoutes(router fiber.Router) {
	checkoutRoutes := router.Group("/checkout")
	checkoutRoutes.Get("/", h.HandleGetState)
	checkoutRoutes.Post("/advance", h.HandleAdvance)
	checkoutRoutes.Post("/back", h.HandleBack)
	checkoutRoutes.Post("/close", h.HandleClose)
	checkoutRoutes.Put("/shipping", h.HandleSetShipping)
	checkoutRoutes.Put("/payment-method", h.HandleSetPaymentMethod)
	checkoutRoutes.Put("/promo", h.HandleApplyPromo)
}

// HandleGetState returns the full checkout view with derived totals and, for
// bank transfer, the regenerated QR payload.
func (h *CheckoutHandler) HandleGetState(c *fiber.Ctx) error {
	sid := sessionID(c)
	if sid == "" {
		return missingSessionError(c)
	}
	return c.JSON(h.checkout.State(sid))
}

// HandleAdvance moves the checkout one step forward. A blocked gate answers
// 422 with the reason and leaves the session untouched.
func (h *CheckoutHandler) HandleAdvance(c *fiber.Ctx) error {
	sid := sessionID(c)
	if sid == "" {
		return missingSessionError(c)
	}

	step, err := h.checkout.Advance(sid)
	if err != nil {
		if errors.Is(err, services.ErrEmptyCart) ||
			errors.Is(err, services.ErrIncompleteShipping) ||
			errors.Is(err, services.ErrCheckoutComplete) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"message": "Cannot advance checkout",
				"reason":  err.Error(),
				"step":    step,
			})
		}
		log.Printf("Error advancing checkout for session %s: %v", sid, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not advance checkout",
			"error":   err.Error(),
		})
	}
	return c.JSON(h.checkout.State(sid))
}

// HandleBack moves the checkout one step backward; entered data persists.
func (h *CheckoutHandler) HandleBack(c *fiber.Ctx) error {
	sid := sessionID(c)
	if sid == "" {
		return missingSessionError(c)
	}

	h.checkout.Back(sid)
	return c.JSON(h.checkout.State(sid))
}

// HandleClose dismisses the checkout. After success this clears the cart and
// resets the flow; before success it changes nothing.
func (h *CheckoutHandler) HandleClose(c *fiber.Ctx) error {
	sid := sessionID(c)
	if sid == "" {
		return missingSessionError(c)
	}

	h.checkout.Close(sid)
	return c.JSON(h.checkout.State(sid))
}

// HandleSetShipping records the buyer's delivery details.
func (h *CheckoutHandler) HandleSetShipping(c *fiber.Ctx) error {
	sid := sessionID(c)
	if sid == "" {
		return missingSessionError(c)
	}

	var info models.ShippingInfo
	if err := c.BodyParser(&info); err != nil {
		log.Printf("Error parsing shipping info request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	h.checkout.SetShippingInfo(sid, info)
	return c.JSON(h.checkout.State(sid))
}

// PaymentMethodRequest is the request body for selecting a payment method.
type PaymentMethodRequest struct {
	Method string `json:"method"`
}

// HandleSetPaymentMethod replaces the active payment selection.
func (h *CheckoutHandler) HandleSetPaymentMethod(c *fiber.Ctx) error {
	sid := sessionID(c)
	if sid == "" {
		return missingSessionError(c)
	}

	var req PaymentMethodRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing payment method request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	method, err := models.ParsePaymentMethod(req.Method)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid payment method",
			"error":   err.Error(),
		})
	}

	h.checkout.SetPaymentMethod(sid, method)
	return c.JSON(h.checkout.State(sid))
}

// PromoRequest is the request body for applying a promo code.
type PromoRequest struct {
	Code string `json:"code"`
}

// HandleApplyPromo records the promo code. The code is captured upper-cased
// and affects no totals.
func (h *CheckoutHandler) HandleApplyPromo(c *fiber.Ctx) error {
	sid := sessionID(c)
	if sid == "" {
		return missingSessionError(c)
	}

	var req PromoRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing promo request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	h.checkout.ApplyPromo(sid, req.Code)
	return c.JSON(h.checkout.State(sid))
}
