package handler

import (
	"quizhub/internal/domain"
	"quizhub/internal/dto"
	"quizhub/internal/middleware"
	"quizhub/internal/service"

	"github.com/gofiber/fiber/v2"
)

// AttemptHandler handles attempt-related HTTP requests
type AttemptHandler struct {
	service service.AttemptService
}

// NewAttemptHandler creates a new AttemptHandler instance
func NewAttemptHandler(service service.AttemptService) *AttemptHandler {
	return &AttemptHandler{service: service}
}

// Submit godoc
// @Summary Submit a quiz attempt
// @Description Grades the submitted answers, records the attempt and returns the score with the full correct-answer map for review.
// @Tags attempts
// @Accept json
// @Produce json
// @Param request body dto.SubmitAttemptRequest true "Submission"
// @Success 201 {object} dto.SubmitAttemptResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Security ApiKeyAuth
// @Router /attempts [post]
func (h *AttemptHandler) Submit(c *fiber.Ctx) error {
	identity, ok := middleware.IdentityFromCtx(c)
	if !ok {
		return domain.NewUnauthenticatedError("Not authenticated")
	}

	var req dto.SubmitAttemptRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewValidationError("request body is not valid JSON")
	}

	result, err := h.service.Submit(c.Context(), identity.UserID, &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(result)
}

// ListMyAttempts godoc
// @Summary List my attempts
// @Description Returns the caller's attempts, newest first.
// @Tags attempts
// @Produce json
// @Success 200 {array} dto.AttemptView
// @Failure 401 {object} middleware.ErrorResponse
// @Security ApiKeyAuth
// @Router /attempts/me [get]
func (h *AttemptHandler) ListMyAttempts(c *fiber.Ctx) error {
	identity, ok := middleware.IdentityFromCtx(c)
	if !ok {
		return domain.NewUnauthenticatedError("Not authenticated")
	}

	views, err := h.service.ListMyAttempts(c.Context(), identity.UserID)
	if err != nil {
		return err
	}
	return c.JSON(views)
}

// ListAllAttempts godoc
// @Summary List all attempts
// @Description Returns every stored attempt. Requires the super_admin role.
// @Tags attempts
// @Produce json
// @Success 200 {array} dto.AttemptView
// @Failure 403 {object} middleware.ErrorResponse
// @Security ApiKeyAuth
// @Router /attempts [get]
func (h *AttemptHandler) ListAllAttempts(c *fiber.Ctx) error {
	views, err := h.service.ListAllAttempts(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(views)
}
