package server

import (
	"ripple/internal/models"
	"ripple/internal/service"

	"github.com/gofiber/fiber/v2"
)

// AddReaction handles POST /api/thoughts/:id/reactions. An identical reaction
// (same body and username) is silently not duplicated; the updated thought is
// returned either way.
// @Summary Add a reaction to a thought
// @Tags reactions
// @Accept json
// @Produce json
// @Param id path int true "Thought ID"
// @Param request body object{reactionBody=string,username=string} true "New reaction"
// @Success 200 {object} models.Envelope
// @Router /thoughts/{id}/reactions [post]
func (s *Server) AddReaction(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		ReactionBody string `json:"reactionBody"`
		Username     string `json:"username"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	thought, err := s.thoughtService.AddReaction(c.UserContext(), service.AddReactionInput{
		ThoughtID:    id,
		ReactionBody: req.ReactionBody,
		Username:     req.Username,
	})
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return respondData(c, fiber.StatusOK, thought)
}

// RemoveReaction handles DELETE /api/thoughts/:id/reactions/:reactionId.
// Removing a reaction that does not exist succeeds and returns the thought
// unchanged.
// @Summary Remove a reaction from a thought
// @Tags reactions
// @Produce json
// @Param id path int true "Thought ID"
// @Param reactionId path int true "Reaction ID"
// @Success 200 {object} models.Envelope
// @Router /thoughts/{id}/reactions/{reactionId} [delete]
func (s *Server) RemoveReaction(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	reactionID, err := s.parseID(c, "reactionId")
	if err != nil {
		return nil
	}

	thought, err := s.thoughtService.RemoveReaction(c.UserContext(), id, reactionID)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return respondData(c, fiber.StatusOK, thought)
}
