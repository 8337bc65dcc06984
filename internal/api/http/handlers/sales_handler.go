package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/crm-service/internal/api/dto"
	"github.com/spec-kit/crm-service/internal/auth"
	"github.com/spec-kit/crm-service/internal/domain"
	"github.com/spec-kit/crm-service/internal/service"
	apperrors "github.com/spec-kit/crm-service/pkg/util"
)

const saleDateLayout = "2006-01-02"

// SalesHandler exposes sale CRUD endpoints.
type SalesHandler struct {
	sales *service.SaleService
}

// NewSalesHandler constructs handler.
func NewSalesHandler(saleService *service.SaleService) *SalesHandler {
	return &SalesHandler{sales: saleService}
}

// List handles GET /api/sales.
func (h *SalesHandler) List(c *fiber.Ctx) error {
	sales, err := h.sales.List(c.Context())
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": sales})
}

// Get handles GET /api/sales/:id.
func (h *SalesHandler) Get(c *fiber.Ctx) error {
	sale, err := h.sales.Get(c.Context(), c.Params("id"))
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": sale})
}

// Create handles POST /api/sales.
func (h *SalesHandler) Create(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
	}

	sale, err := saleFromRequest(c)
	if err != nil {
		return err
	}

	if err := h.sales.Create(c.Context(), sale, claims.UserID); err != nil {
		return apperrors.MapError(err)
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": sale})
}

// Update handles PUT /api/sales/:id.
func (h *SalesHandler) Update(c *fiber.Ctx) error {
	updated, err := saleFromRequest(c)
	if err != nil {
		return err
	}

	sale, err := h.sales.Update(c.Context(), c.Params("id"), updated)
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": sale})
}

// Delete handles DELETE /api/sales/:id.
func (h *SalesHandler) Delete(c *fiber.Ctx) error {
	if err := h.sales.Delete(c.Context(), c.Params("id")); err != nil {
		return apperrors.MapError(err)
	}
	return c.SendStatus(http.StatusNoContent)
}

func saleFromRequest(c *fiber.Ctx) (*domain.Sale, error) {
	var req dto.SaleRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Amount <= 0 {
		return nil, fiber.NewError(http.StatusBadRequest, "amount must be positive")
	}

	sale := &domain.Sale{
		CustomerID:    req.CustomerID,
		Amount:        req.Amount,
		AssignedRepID: req.AssignedRepID,
		Notes:         req.Notes,
	}

	if req.Status != "" {
		status, err := service.ParseSaleStatus(req.Status)
		if err != nil {
			return nil, fiber.NewError(http.StatusBadRequest, err.Error())
		}
		sale.Status = status
	}

	if req.Date != "" {
		date, err := time.Parse(saleDateLayout, req.Date)
		if err != nil {
			return nil, fiber.NewError(http.StatusBadRequest, "date must be YYYY-MM-DD")
		}
		sale.Date = date
	} else {
		sale.Date = time.Now()
	}

	return sale, nil
}
