package server

import (
	"ripple/internal/models"

	"github.com/gofiber/fiber/v2"
)

// AddFriend handles POST /api/users/:userId/friends/:friendId. Adding a
// friend who is already on the list is a no-op; both users must exist.
// @Summary Add a friend to a user's friends list
// @Tags friends
// @Produce json
// @Param userId path int true "User ID"
// @Param friendId path int true "Friend user ID"
// @Success 200 {object} models.Envelope
// @Router /users/{userId}/friends/{friendId} [post]
func (s *Server) AddFriend(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}
	friendID, err := s.parseID(c, "friendId")
	if err != nil {
		return nil
	}

	user, err := s.userService.AddFriend(c.UserContext(), userID, friendID)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return respondData(c, fiber.StatusOK, user)
}

// RemoveFriend handles DELETE /api/users/:userId/friends/:friendId. Removing
// a user who is not a friend succeeds and returns the unchanged user.
// @Summary Remove a friend from a user's friends list
// @Tags friends
// @Produce json
// @Param userId path int true "User ID"
// @Param friendId path int true "Friend user ID"
// @Success 200 {object} models.Envelope
// @Router /users/{userId}/friends/{friendId} [delete]
func (s *Server) RemoveFriend(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}
	friendID, err := s.parseID(c, "friendId")
	if err != nil {
		return nil
	}

	user, err := s.userService.RemoveFriend(c.UserContext(), userID, friendID)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return respondData(c, fiber.StatusOK, user)
}
