package handler

import (
	"quizhub/internal/domain"
	"quizhub/internal/dto"
	"quizhub/internal/middleware"
	"quizhub/internal/service"

	"github.com/gofiber/fiber/v2"
)

// QuizHandler handles quiz-related HTTP requests
type QuizHandler struct {
	service service.QuizService
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(service service.QuizService) *QuizHandler {
	return &QuizHandler{service: service}
}

// ListQuizzes godoc
// @Summary List quizzes for taking
// @Description Returns all quizzes with correct answers omitted
// @Tags quizzes
// @Produce json
// @Success 200 {array} dto.QuizView
// @Failure 500 {object} middleware.ErrorResponse
// @Router /quizzes [get]
func (h *QuizHandler) ListQuizzes(c *fiber.Ctx) error {
	views, err := h.service.ListQuizzes(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(views)
}

// GetQuiz godoc
// @Summary Get a quiz for taking
// @Description Returns one quiz with correct answers omitted
// @Tags quizzes
// @Produce json
// @Param id path string true "Quiz ID"
// @Success 200 {object} dto.QuizView
// @Failure 404 {object} middleware.ErrorResponse
// @Router /quizzes/{id} [get]
func (h *QuizHandler) GetQuiz(c *fiber.Ctx) error {
	view, err := h.service.GetQuiz(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(view)
}

// CreateQuiz godoc
// @Summary Create a quiz
// @Description Creates a quiz with its questions. Requires the super_admin role.
// @Tags quizzes
// @Accept json
// @Produce json
// @Param request body dto.CreateQuizRequest true "Quiz payload"
// @Success 201 {object} dto.QuizView
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 403 {object} middleware.ErrorResponse
// @Security ApiKeyAuth
// @Router /quizzes [post]
func (h *QuizHandler) CreateQuiz(c *fiber.Ctx) error {
	identity, ok := middleware.IdentityFromCtx(c)
	if !ok {
		return domain.NewUnauthenticatedError("Not authenticated")
	}

	var req dto.CreateQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewValidationError("request body is not valid JSON")
	}

	view, err := h.service.CreateQuiz(c.Context(), identity.UserID, &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(view)
}

// ReplaceQuiz godoc
// @Summary Update a quiz
// @Description Updates title/description and optionally replaces the question list wholesale. Requires the super_admin role.
// @Tags quizzes
// @Accept json
// @Produce json
// @Param id path string true "Quiz ID"
// @Param request body dto.ReplaceQuizRequest true "Fields to update"
// @Success 200 {object} dto.QuizView
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Security ApiKeyAuth
// @Router /quizzes/{id} [put]
func (h *QuizHandler) ReplaceQuiz(c *fiber.Ctx) error {
	var req dto.ReplaceQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewValidationError("request body is not valid JSON")
	}

	view, err := h.service.ReplaceQuiz(c.Context(), c.Params("id"), &req)
	if err != nil {
		return err
	}
	return c.JSON(view)
}

// DeleteQuiz godoc
// @Summary Delete a quiz
// @Description Deletes a quiz outright. Requires the super_admin role.
// @Tags quizzes
// @Produce json
// @Param id path string true "Quiz ID"
// @Success 204
// @Failure 404 {object} middleware.ErrorResponse
// @Security ApiKeyAuth
// @Router /quizzes/{id} [delete]
func (h *QuizHandler) DeleteQuiz(c *fiber.Ctx) error {
	if err := h.service.DeleteQuiz(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
