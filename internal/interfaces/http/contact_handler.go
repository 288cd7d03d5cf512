package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcastro/rfstore-api/internal/application/contact"
	"github.com/jcastro/rfstore-api/internal/application/dto"
	"github.com/jcastro/rfstore-api/internal/domain"
)

// ContactHandler maneja cotizaciones y suscripciones al boletín.
type ContactHandler struct {
	uc *contact.UseCase
}

// NewContactHandler construye el handler.
func NewContactHandler(uc *contact.UseCase) *ContactHandler {
	return &ContactHandler{uc: uc}
}

// CreateQuote godoc
// @Summary      Registrar solicitud de cotización
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        request  body  dto.CreateQuoteRequest  true  "Solicitud"
// @Success      201  {object}  dto.QuoteResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/contact/quotes [post]
func (h *ContactHandler) CreateQuote(c *fiber.Ctx) error {
	var req dto.CreateQuoteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo de petición inválido"})
	}
	resp, err := h.uc.CreateQuote(req)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUOTE", Message: "nombre y email son requeridos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL_ERROR", Message: "no se pudo registrar la solicitud"})
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// ListQuotes godoc
// @Summary      Listar solicitudes de cotización
// @Tags         contact
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200  {object}  dto.QuoteListResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/contact/quotes [get]
func (h *ContactHandler) ListQuotes(c *fiber.Ctx) error {
	page := dto.PageRequest{
		Limit:  c.QueryInt("limit", 20),
		Offset: c.QueryInt("offset", 0),
	}
	resp, err := h.uc.ListQuotes(page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL_ERROR", Message: "no se pudieron listar las solicitudes"})
	}
	return c.JSON(resp)
}

// GetQuoteByID godoc
// @Summary      Obtener solicitud de cotización por ID
// @Tags         contact
// @Produce      json
// @Param        id  path  string  true  "ID de la solicitud"
// @Success      200  {object}  dto.QuoteResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/contact/quotes/{id} [get]
func (h *ContactHandler) GetQuoteByID(c *fiber.Ctx) error {
	id := c.Params("id")
	resp, err := h.uc.GetQuote(id)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "el ID es requerido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL_ERROR", Message: "no se pudo obtener la solicitud"})
	}
	if resp == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "solicitud no encontrada"})
	}
	return c.JSON(resp)
}

// Subscribe godoc
// @Summary      Suscribir email al boletín
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        request  body  dto.NewsletterRequest  true  "Email"
// @Success      201  {object}  dto.NewsletterResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/newsletter [post]
func (h *ContactHandler) Subscribe(c *fiber.Ctx) error {
	var req dto.NewsletterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo de petición inválido"})
	}
	resp, err := h.uc.Subscribe(req)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_EMAIL", Message: "email inválido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL_ERROR", Message: "no se pudo registrar la suscripción"})
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}
