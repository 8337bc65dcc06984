package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/crm-service/internal/api/dto"
	"github.com/spec-kit/crm-service/internal/domain"
	"github.com/spec-kit/crm-service/internal/service"
	apperrors "github.com/spec-kit/crm-service/pkg/util"
)

// LeadsHandler exposes lead CRUD and pipeline endpoints.
type LeadsHandler struct {
	leads *service.LeadService
}

// NewLeadsHandler constructs handler.
func NewLeadsHandler(leadService *service.LeadService) *LeadsHandler {
	return &LeadsHandler{leads: leadService}
}

// List handles GET /api/leads.
func (h *LeadsHandler) List(c *fiber.Ctx) error {
	leads, err := h.leads.List(c.Context())
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": leads})
}

// ListByStatus handles GET /api/leads/status/:status.
func (h *LeadsHandler) ListByStatus(c *fiber.Ctx) error {
	status := c.Params("status")
	if _, err := service.ParseLeadStatus(status); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	leads, err := h.leads.ListByStatus(c.Context(), status)
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": leads})
}

// Get handles GET /api/leads/:id.
func (h *LeadsHandler) Get(c *fiber.Ctx) error {
	lead, err := h.leads.Get(c.Context(), c.Params("id"))
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": lead})
}

// Create handles POST /api/leads.
func (h *LeadsHandler) Create(c *fiber.Ctx) error {
	var req dto.LeadRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Name == "" {
		return fiber.NewError(http.StatusBadRequest, "name required")
	}

	lead := &domain.Lead{
		Name:          req.Name,
		ContactInfo:   req.ContactInfo,
		Source:        req.Source,
		AssignedRepID: req.AssignedRepID,
	}
	if req.Status != "" {
		status, err := service.ParseLeadStatus(req.Status)
		if err != nil {
			return fiber.NewError(http.StatusBadRequest, err.Error())
		}
		lead.Status = status
	}
	if err := h.leads.Create(c.Context(), lead); err != nil {
		return apperrors.MapError(err)
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": lead})
}

// Update handles PUT /api/leads/:id.
func (h *LeadsHandler) Update(c *fiber.Ctx) error {
	var req dto.LeadRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	lead, err := h.leads.Get(c.Context(), c.Params("id"))
	if err != nil {
		return apperrors.MapError(err)
	}

	lead.Name = req.Name
	lead.ContactInfo = req.ContactInfo
	lead.Source = req.Source
	if req.Status != "" {
		status, err := service.ParseLeadStatus(req.Status)
		if err != nil {
			return fiber.NewError(http.StatusBadRequest, err.Error())
		}
		lead.Status = status
	}
	lead.AssignedRepID = req.AssignedRepID

	if err := h.leads.Update(c.Context(), lead); err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": lead})
}

// UpdateStatus handles PATCH /api/leads/:id/status.
func (h *LeadsHandler) UpdateStatus(c *fiber.Ctx) error {
	var req dto.LeadStatusUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if _, err := service.ParseLeadStatus(req.Status); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	lead, err := h.leads.UpdateStatus(c.Context(), c.Params("id"), req.Status)
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": lead})
}

// Delete handles DELETE /api/leads/:id.
func (h *LeadsHandler) Delete(c *fiber.Ctx) error {
	if err := h.leads.Delete(c.Context(), c.Params("id")); err != nil {
		return apperrors.MapError(err)
	}
	return c.SendStatus(http.StatusNoContent)
}
