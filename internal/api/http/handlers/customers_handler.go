package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/crm-service/internal/api/dto"
	"github.com/spec-kit/crm-service/internal/domain"
	"github.com/spec-kit/crm-service/internal/service"
	apperrors "github.com/spec-kit/crm-service/pkg/util"
)

// CustomersHandler exposes customer CRUD endpoints.
type CustomersHandler struct {
	customers *service.CustomerService
}

// NewCustomersHandler constructs handler.
func NewCustomersHandler(customerService *service.CustomerService) *CustomersHandler {
	return &CustomersHandler{customers: customerService}
}

// List handles GET /api/customers.
func (h *CustomersHandler) List(c *fiber.Ctx) error {
	customers, err := h.customers.List(c.Context())
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": customers})
}

// Get handles GET /api/customers/:id.
func (h *CustomersHandler) Get(c *fiber.Ctx) error {
	customer, err := h.customers.Get(c.Context(), c.Params("id"))
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": customer})
}

// Create handles POST /api/customers.
func (h *CustomersHandler) Create(c *fiber.Ctx) error {
	req, err := parseCustomerRequest(c)
	if err != nil {
		return err
	}

	customer := customerFromRequest(req)
	if err := h.customers.Create(c.Context(), customer); err != nil {
		return apperrors.MapError(err)
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": customer})
}

// Update handles PUT /api/customers/:id.
func (h *CustomersHandler) Update(c *fiber.Ctx) error {
	req, err := parseCustomerRequest(c)
	if err != nil {
		return err
	}

	customer := customerFromRequest(req)
	customer.ID = c.Params("id")
	if err := h.customers.Update(c.Context(), customer); err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": customer})
}

// Delete handles DELETE /api/customers/:id.
func (h *CustomersHandler) Delete(c *fiber.Ctx) error {
	if err := h.customers.Delete(c.Context(), c.Params("id")); err != nil {
		return apperrors.MapError(err)
	}
	return c.SendStatus(http.StatusNoContent)
}

func parseCustomerRequest(c *fiber.Ctx) (*dto.CustomerRequest, error) {
	var req dto.CustomerRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Name == "" {
		return nil, fiber.NewError(http.StatusBadRequest, "name required")
	}
	return &req, nil
}

func customerFromRequest(req *dto.CustomerRequest) *domain.Customer {
	return &domain.Customer{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Company: req.Company,
		Address: req.Address,
		Notes:   req.Notes,
	}
}
