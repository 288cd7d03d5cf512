package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcastro/rfstore-api/internal/application/checkout"
	"github.com/jcastro/rfstore-api/internal/application/dto"
	"github.com/jcastro/rfstore-api/internal/application/shipping"
	"github.com/jcastro/rfstore-api/internal/domain"
)

// CheckoutHandler maneja creación de sesiones de pago y cotización de envío.
type CheckoutHandler struct {
	checkoutUC *checkout.UseCase
	shippingUC *shipping.UseCase
}

// NewCheckoutHandler construye el handler.
func NewCheckoutHandler(checkoutUC *checkout.UseCase, shippingUC *shipping.UseCase) *CheckoutHandler {
	return &CheckoutHandler{checkoutUC: checkoutUC, shippingUC: shippingUC}
}

// CreateSession godoc
// @Summary      Crear sesión de pago
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        request  body  dto.CheckoutRequest  true  "Carrito"
// @Success      201  {object}  dto.CheckoutResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/checkout/session [post]
func (h *CheckoutHandler) CreateSession(c *fiber.Ctx) error {
	if h.checkoutUC == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "CHECKOUT_DISABLED", Message: "el procesador de pagos no está configurado"})
	}
	var req dto.CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo de petición inválido"})
	}
	resp, err := h.checkoutUC.CreateSession(c.UserContext(), req)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_CART", Message: "el carrito contiene líneas inválidas"})
		}
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "PAYMENT_GATEWAY_ERROR", Message: "no se pudo crear la sesión de pago"})
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetShippingRates godoc
// @Summary      Cotizar tarifas de envío
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        request  body  dto.ShippingRateRequest  true  "Destino y peso"
// @Success      200  {object}  dto.ShippingRateListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/checkout/shipping-rates [post]
func (h *CheckoutHandler) GetShippingRates(c *fiber.Ctx) error {
	var req dto.ShippingRateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo de petición inválido"})
	}
	if req.CountryCode == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_COUNTRY", Message: "country_code es requerido"})
	}
	return c.JSON(h.shippingUC.GetRates(c.UserContext(), req))
}
