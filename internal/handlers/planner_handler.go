package handlers

import (
	"errors"
	"log/slog"

	"github.com/everafter-app/everafter-backend/internal/dto"
	"github.com/everafter-app/everafter-backend/internal/models"
	"github.com/everafter-app/everafter-backend/internal/services"
	"github.com/everafter-app/everafter-backend/internal/session"
	"github.com/gofiber/fiber/v2"
)

type PlannerHandler struct {
	service *services.PlannerService
}

func NewPlannerHandler(service *services.PlannerService) *PlannerHandler {
	return &PlannerHandler{service: service}
}

func (h *PlannerHandler) GetBudget(c *fiber.Ctx) error {
	userID, err := session.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	doc, err := h.service.GetBudget(userID)
	if err != nil {
		return h.fail(c, "Failed to fetch budget", err)
	}
	return c.JSON(dto.DataResponse{Success: true, Data: doc})
}

func (h *PlannerHandler) SaveBudget(c *fiber.Ctx) error {
	userID, err := session.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var doc models.BudgetDocument
	if err := c.BodyParser(&doc); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	saved, err := h.service.SaveBudget(userID, &doc)
	if err != nil {
		return h.fail(c, "Failed to save budget", err)
	}
	return c.JSON(dto.DataResponse{Success: true, Data: saved})
}

func (h *PlannerHandler) GetChecklist(c *fiber.Ctx) error {
	userID, err := session.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	doc, err := h.service.GetChecklist(userID)
	if err != nil {
		return h.fail(c, "Failed to fetch checklist", err)
	}
	return c.JSON(dto.DataResponse{Success: true, Data: doc})
}

func (h *PlannerHandler) SaveChecklist(c *fiber.Ctx) error {
	userID, err := session.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var doc models.ChecklistDocument
	if err := c.BodyParser(&doc); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	saved, err := h.service.SaveChecklist(userID, &doc)
	if err != nil {
		return h.fail(c, "Failed to save checklist", err)
	}
	return c.JSON(dto.DataResponse{Success: true, Data: saved})
}

func (h *PlannerHandler) GetGuests(c *fiber.Ctx) error {
	userID, err := session.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	doc, err := h.service.GetGuests(userID)
	if err != nil {
		return h.fail(c, "Failed to fetch guest list", err)
	}
	return c.JSON(dto.DataResponse{Success: true, Data: doc})
}

func (h *PlannerHandler) SaveGuests(c *fiber.Ctx) error {
	userID, err := session.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var doc models.GuestDocument
	if err := c.BodyParser(&doc); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	saved, err := h.service.SaveGuests(userID, &doc)
	if err != nil {
		return h.fail(c, "Failed to save guest list", err)
	}
	return c.JSON(dto.DataResponse{Success: true, Data: saved})
}

func (h *PlannerHandler) fail(c *fiber.Ctx, action string, err error) error {
	var recordErr *services.RecordValidationError
	if errors.As(err, &recordErr) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ValidationErrorResponse{
			Error:   true,
			Message: recordErr.Message,
			Records: recordErr.Records,
		})
	}
	if errors.Is(err, services.ErrUserNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	slog.Error(action, "error", err, "user_id", userIDForLog(c))
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Error: true, Message: action,
	})
}
