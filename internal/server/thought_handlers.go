package server

import (
	"errors"

	"ripple/internal/models"
	"ripple/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetThoughts handles GET /api/thoughts with page/limit pagination.
// @Summary List thoughts
// @Description Returns one page of thoughts with their reactions.
// @Tags thoughts
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} models.Envelope
// @Router /thoughts [get]
func (s *Server) GetThoughts(c *fiber.Ctx) error {
	page := parsePagination(c, 10)

	thoughts, err := s.thoughtService.ListThoughts(c.UserContext(), page.Page, page.Limit)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return respondData(c, fiber.StatusOK, thoughts)
}

// GetThought handles GET /api/thoughts/:id.
// @Summary Get a thought by ID
// @Tags thoughts
// @Produce json
// @Param id path int true "Thought ID"
// @Success 200 {object} models.Envelope
// @Failure 404 {object} models.Envelope
// @Router /thoughts/{id} [get]
func (s *Server) GetThought(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	thought, err := s.thoughtService.GetThought(c.UserContext(), id)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return respondData(c, fiber.StatusOK, thought)
}

// CreateThought handles POST /api/thoughts. When a userId is supplied and no
// such user exists, the thought is still persisted and the response reports
// the partial outcome: 404 with the created thought and a message.
// @Summary Create a thought
// @Description Creates a thought and optionally links it to a user.
// @Tags thoughts
// @Accept json
// @Produce json
// @Param request body object{thoughtText=string,username=string,userId=int} true "New thought"
// @Success 201 {object} models.Envelope
// @Failure 400 {object} models.Envelope
// @Failure 404 {object} models.Envelope
// @Router /thoughts [post]
func (s *Server) CreateThought(c *fiber.Ctx) error {
	var req struct {
		ThoughtText string `json:"thoughtText"`
		Username    string `json:"username"`
		UserID      *uint  `json:"userId"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	thought, err := s.thoughtService.CreateThought(c.UserContext(), service.CreateThoughtInput{
		ThoughtText: req.ThoughtText,
		Username:    req.Username,
		UserID:      req.UserID,
	})
	if err != nil {
		var appErr *models.AppError
		if errors.As(err, &appErr) && appErr.Code == models.CodeAssociationFailure && thought != nil {
			return c.Status(fiber.StatusNotFound).JSON(models.Envelope{
				Success: true,
				Data:    thought,
				Message: appErr.Message,
			})
		}
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return respondData(c, fiber.StatusCreated, thought)
}

// UpdateThought handles PUT /api/thoughts/:id.
// @Summary Update a thought
// @Tags thoughts
// @Accept json
// @Produce json
// @Param id path int true "Thought ID"
// @Param request body object{thoughtText=string,username=string} true "Fields to update"
// @Success 200 {object} models.Envelope
// @Router /thoughts/{id} [put]
func (s *Server) UpdateThought(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		ThoughtText string `json:"thoughtText"`
		Username    string `json:"username"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	thought, err := s.thoughtService.UpdateThought(c.UserContext(), service.UpdateThoughtInput{
		ThoughtID:   id,
		ThoughtText: req.ThoughtText,
		Username:    req.Username,
	})
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return respondData(c, fiber.StatusOK, thought)
}

// DeleteThought handles DELETE /api/thoughts/:id. Reactions go with the
// thought; the deleted document is returned.
// @Summary Delete a thought and its reactions
// @Tags thoughts
// @Produce json
// @Param id path int true "Thought ID"
// @Success 200 {object} models.Envelope
// @Router /thoughts/{id} [delete]
func (s *Server) DeleteThought(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	thought, err := s.thoughtService.DeleteThought(c.UserContext(), id)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return respondDeleted(c, "Thought deleted", thought)
}
