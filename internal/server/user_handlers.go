package server

import (
	"context"
	"errors"
	"time"

	"ripple/internal/models"
	"ripple/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetUsers handles GET /api/users. Users are returned with their thoughts
// and friends resolved; no users is 200 with an empty list.
// @Summary List users
// @Description Returns all users with thoughts and friends resolved.
// @Tags users
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} models.Envelope
// @Router /users [get]
func (s *Server) GetUsers(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
	defer cancel()

	page := parsePagination(c, maxPaginationLimit)

	users, err := s.userService.ListUsers(ctx, page.Limit, page.Offset())
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return c.Status(fiber.StatusGatewayTimeout).JSON(models.Envelope{
				Success: false,
				Message: "Request timeout",
			})
		}
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return respondData(c, fiber.StatusOK, users)
}

// GetUser handles GET /api/users/:id.
// @Summary Get a user by ID
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} models.Envelope
// @Failure 404 {object} models.Envelope
// @Router /users/{id} [get]
func (s *Server) GetUser(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	user, err := s.userService.GetUser(c.UserContext(), id)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return respondData(c, fiber.StatusOK, user)
}

// CreateUser handles POST /api/users.
// @Summary Create a user
// @Tags users
// @Accept json
// @Produce json
// @Param request body object{username=string,email=string} true "New user"
// @Success 201 {object} models.Envelope
// @Failure 400 {object} models.Envelope
// @Router /users [post]
func (s *Server) CreateUser(c *fiber.Ctx) error {
	var req struct {
		Username string `json:"username"`
		Email    string `json:"email"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.CreateUser(c.UserContext(), service.CreateUserInput{
		Username: req.Username,
		Email:    req.Email,
	})
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return respondData(c, fiber.StatusCreated, user)
}

// UpdateUser handles PUT /api/users/:id.
// @Summary Update a user
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body object{username=string,email=string} true "Fields to update"
// @Success 200 {object} models.Envelope
// @Router /users/{id} [put]
func (s *Server) UpdateUser(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Username string `json:"username"`
		Email    string `json:"email"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.UpdateUser(c.UserContext(), service.UpdateUserInput{
		UserID:   id,
		Username: req.Username,
		Email:    req.Email,
	})
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return respondData(c, fiber.StatusOK, user)
}

// DeleteUser handles DELETE /api/users/:id. The deleted user is returned;
// the user's thoughts survive the deletion.
// @Summary Delete a user, detaching their thoughts
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} models.Envelope
// @Router /users/{id} [delete]
func (s *Server) DeleteUser(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	user, err := s.userService.DeleteUser(c.UserContext(), id)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return respondDeleted(c, "User deleted", user)
}
