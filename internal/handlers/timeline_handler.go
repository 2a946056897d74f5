package handlers

import (
	"errors"
	"log/slog"

	"github.com/everafter-app/everafter-backend/internal/dto"
	"github.com/everafter-app/everafter-backend/internal/schedule"
	"github.com/everafter-app/everafter-backend/internal/services"
	"github.com/everafter-app/everafter-backend/internal/session"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type TimelineHandler struct {
	service *services.TimelineService
}

func NewTimelineHandler(service *services.TimelineService) *TimelineHandler {
	return &TimelineHandler{service: service}
}

func (h *TimelineHandler) Get(c *fiber.Ctx) error {
	userID, err := session.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	view, err := h.service.GetTimeline(userID)
	if err != nil {
		return h.fail(c, "Failed to fetch timeline", err)
	}

	resp := dto.DataResponse{Success: true, Data: view}
	if len(view.Items) == 0 {
		resp.Message = "Your timeline is empty. Generate a schedule to get started."
	}
	return c.JSON(resp)
}

// Template returns the default wedding-prep schedule computed from the
// given wedding date. Nothing is persisted; clients edit the result and
// submit it through the bulk endpoint.
func (h *TimelineHandler) Template(c *fiber.Ctx) error {
	raw := c.Query("weddingDate")
	if raw == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "weddingDate query parameter is required",
		})
	}
	weddingDate, err := services.ParseDate(raw)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	tasks := schedule.Generate(weddingDate)
	items := make([]dto.BulkItem, 0, len(tasks))
	for _, task := range tasks {
		item := dto.BulkItem{
			ItemID:       task.ItemID,
			Title:        task.Title,
			Description:  task.Description,
			DueDate:      task.DueDate.Format("2006-01-02"),
			Category:     task.Category,
			IsWeddingDay: task.IsWeddingDay,
		}
		for _, opt := range task.Options {
			item.Options = append(item.Options, dto.BulkOption{
				OptionID:    opt.OptionID,
				Label:       opt.Label,
				Description: opt.Description,
				Price:       opt.Price,
				Location:    opt.Location,
				Specialties: opt.Specialties,
				Rating:      opt.Rating,
				IsTextInput: opt.IsTextInput,
			})
		}
		items = append(items, item)
	}

	return c.JSON(dto.DataResponse{Success: true, Data: fiber.Map{
		"weddingDate": weddingDate.Format("2006-01-02"),
		"timeline":    items,
	}})
}

func (h *TimelineHandler) SaveItem(c *fiber.Ctx) error {
	userID, err := session.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.SaveItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	item, err := h.service.SaveItem(userID, &req)
	if err != nil {
		return h.fail(c, "Failed to save timeline item", err)
	}

	return c.JSON(dto.DataResponse{Success: true, Data: item})
}

func (h *TimelineHandler) SaveSelection(c *fiber.Ctx) error {
	userID, err := session.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.SaveSelectionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	option, err := h.service.SaveSelection(userID, &req)
	if err != nil {
		return h.fail(c, "Failed to save selection", err)
	}

	return c.JSON(dto.DataResponse{Success: true, Data: option})
}

func (h *TimelineHandler) SaveTextInputs(c *fiber.Ctx) error {
	userID, err := session.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.SaveTextInputsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	inputs, err := h.service.SaveTextInputs(userID, &req)
	if err != nil {
		return h.fail(c, "Failed to save text inputs", err)
	}

	return c.JSON(dto.DataResponse{Success: true, Data: inputs})
}

func (h *TimelineHandler) SaveBulk(c *fiber.Ctx) error {
	userID, err := session.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.BulkTimelineRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	result, err := h.service.SaveComplete(userID, &req)
	if err != nil {
		return h.fail(c, "Failed to save timeline", err)
	}

	return c.JSON(dto.DataResponse{Success: true, Data: result})
}

func (h *TimelineHandler) Clear(c *fiber.Ctx) error {
	userID, err := session.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	removed, err := h.service.Clear(userID)
	if err != nil {
		return h.fail(c, "Failed to clear timeline", err)
	}

	return c.JSON(dto.DataResponse{
		Success: true,
		Data:    dto.ClearResult{Removed: removed},
		Message: "Timeline cleared",
	})
}

func (h *TimelineHandler) DeleteItem(c *fiber.Ctx) error {
	userID, err := session.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	itemKey := c.Params("itemId")
	if err := h.service.DeleteItem(userID, itemKey); err != nil {
		return h.fail(c, "Failed to delete timeline item", err)
	}

	return c.JSON(dto.DataResponse{Success: true, Message: "Item deleted"})
}

// fail maps service errors to statuses. Unlike the other resources, the
// timeline routes attach the underlying error detail on 500s.
func (h *TimelineHandler) fail(c *fiber.Ctx, action string, err error) error {
	switch {
	case errors.Is(err, services.ErrValidation):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrTimelineNotFound),
		errors.Is(err, services.ErrItemNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	slog.Error(action, "error", err, "user_id", userIDForLog(c))
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Error: true, Message: action + ": " + err.Error(),
	})
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
		Error: true, Message: "Unauthorized",
	})
}

func userIDForLog(c *fiber.Ctx) string {
	id, err := session.GetUserID(c)
	if err != nil || id == uuid.Nil {
		return ""
	}
	return id.String()
}
