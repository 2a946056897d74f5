package handlers

import (
	"errors"
	"log/slog"

	"github.com/everafter-app/everafter-backend/internal/dto"
	"github.com/everafter-app/everafter-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type CommentHandler struct {
	service *services.CommentService
}

func NewCommentHandler(service *services.CommentService) *CommentHandler {
	return &CommentHandler{service: service}
}

func (h *CommentHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	comment, err := h.service.Create(c.Params("slug"), &req)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		slog.Error("failed to create comment", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create comment",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.DataResponse{
		Success: true,
		Data:    comment,
		Message: "Comment submitted and awaiting approval",
	})
}

func (h *CommentHandler) ListApproved(c *fiber.Ctx) error {
	comments, err := h.service.ListApproved(c.Params("slug"))
	if err != nil {
		slog.Error("failed to list comments", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch comments",
		})
	}
	return c.JSON(dto.DataResponse{Success: true, Data: comments})
}

func (h *CommentHandler) AdminList(c *fiber.Ctx) error {
	comments, err := h.service.ListByStatus(c.Query("status"))
	if err != nil {
		slog.Error("failed to list comments", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch comments",
		})
	}
	return c.JSON(dto.DataResponse{Success: true, Data: comments})
}

func (h *CommentHandler) Approve(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid comment ID",
		})
	}

	comment, err := h.service.Approve(id)
	if err != nil {
		if errors.Is(err, services.ErrCommentNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		slog.Error("failed to approve comment", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to approve comment",
		})
	}

	return c.JSON(dto.DataResponse{Success: true, Data: comment})
}

func (h *CommentHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid comment ID",
		})
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, services.ErrCommentNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		slog.Error("failed to delete comment", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete comment",
		})
	}

	return c.JSON(dto.DataResponse{Success: true, Message: "Comment deleted"})
}
