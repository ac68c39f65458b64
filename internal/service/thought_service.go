package service

import (
	"context"
	"errors"
	"strings"

	"ripple/internal/models"
	"ripple/internal/repository"
)

// ThoughtService implements thought CRUD and reaction operations.
type ThoughtService struct {
	thoughtRepo repository.ThoughtRepository
	userRepo    repository.UserRepository
}

type CreateThoughtInput struct {
	ThoughtText string
	Username    string
	// UserID optionally links the thought into the owning user's thoughts
	// list. The linkage is not transactional with the thought write: when
	// the user cannot be found the thought still exists and the caller is
	// told the association failed.
	UserID *uint
}

type UpdateThoughtInput struct {
	ThoughtID   uint
	ThoughtText string
	Username    string
}

type AddReactionInput struct {
	ThoughtID    uint
	ReactionBody string
	Username     string
}

func NewThoughtService(thoughtRepo repository.ThoughtRepository, userRepo repository.UserRepository) *ThoughtService {
	return &ThoughtService{thoughtRepo: thoughtRepo, userRepo: userRepo}
}

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// ListThoughts returns one page of thoughts in insertion order. An empty
// page is an empty list, not an error.
func (s *ThoughtService) ListThoughts(ctx context.Context, page, limit int) ([]models.Thought, error) {
	if page <= 0 {
		page = defaultPage
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	offset := (page - 1) * limit
	return s.thoughtRepo.List(ctx, limit, offset)
}

// GetThought returns the thought with its reactions.
func (s *ThoughtService) GetThought(ctx context.Context, id uint) (*models.Thought, error) {
	return s.thoughtRepo.GetByID(ctx, id)
}

// CreateThought validates and persists a new thought, then links it to the
// owning user when a user id was supplied. On a failed linkage the created
// thought is returned together with an association error so the handler can
// report the dual outcome.
func (s *ThoughtService) CreateThought(ctx context.Context, in CreateThoughtInput) (*models.Thought, error) {
	var reasons []string
	reasons = append(reasons, validateThoughtText(in.ThoughtText)...)
	if strings.TrimSpace(in.Username) == "" {
		reasons = append(reasons, "Username is required")
	}
	if len(reasons) > 0 {
		return nil, models.NewValidationErrors(reasons...)
	}

	thought := &models.Thought{
		ThoughtText: in.ThoughtText,
		Username:    in.Username,
	}
	if err := s.thoughtRepo.Create(ctx, thought); err != nil {
		return nil, err
	}
	thought.Normalize()

	if in.UserID == nil {
		return thought, nil
	}

	if _, err := s.userRepo.GetByID(ctx, *in.UserID); err != nil {
		var appErr *models.AppError
		if errors.As(err, &appErr) && appErr.Code == models.CodeNotFound {
			return thought, models.NewAssociationError("Thought created but no user found with that ID")
		}
		return thought, err
	}
	if err := s.userRepo.LinkThought(ctx, *in.UserID, thought.ID); err != nil {
		return thought, err
	}
	thought.UserID = in.UserID

	return thought, nil
}

// UpdateThought applies a partial update of thoughtText and/or username and
// re-validates the merged document.
func (s *ThoughtService) UpdateThought(ctx context.Context, in UpdateThoughtInput) (*models.Thought, error) {
	thought, err := s.thoughtRepo.GetByID(ctx, in.ThoughtID)
	if err != nil {
		return nil, err
	}

	var reasons []string
	if in.ThoughtText != "" {
		reasons = append(reasons, validateThoughtText(in.ThoughtText)...)
		thought.ThoughtText = in.ThoughtText
	}
	if in.Username != "" {
		thought.Username = in.Username
	}
	if len(reasons) > 0 {
		return nil, models.NewValidationErrors(reasons...)
	}

	if err := s.thoughtRepo.Update(ctx, thought); err != nil {
		return nil, err
	}

	return s.thoughtRepo.GetByID(ctx, in.ThoughtID)
}

// DeleteThought removes the thought and returns the deleted document.
func (s *ThoughtService) DeleteThought(ctx context.Context, id uint) (*models.Thought, error) {
	thought, err := s.thoughtRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.thoughtRepo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return thought, nil
}

// AddReaction validates and appends a reaction to the thought. A reaction
// with identical content is silently not duplicated.
func (s *ThoughtService) AddReaction(ctx context.Context, in AddReactionInput) (*models.Thought, error) {
	var reasons []string
	reasons = append(reasons, validateReactionBody(in.ReactionBody)...)
	if strings.TrimSpace(in.Username) == "" {
		reasons = append(reasons, "Username is required")
	}
	if len(reasons) > 0 {
		return nil, models.NewValidationErrors(reasons...)
	}

	if _, err := s.thoughtRepo.GetByID(ctx, in.ThoughtID); err != nil {
		return nil, err
	}

	reaction := &models.Reaction{
		ReactionBody: in.ReactionBody,
		Username:     in.Username,
	}
	if _, err := s.thoughtRepo.AddReaction(ctx, in.ThoughtID, reaction); err != nil {
		return nil, err
	}

	return s.thoughtRepo.GetByID(ctx, in.ThoughtID)
}

// RemoveReaction removes the reaction with the given id; removing a
// non-existent reaction succeeds and returns the unchanged thought.
func (s *ThoughtService) RemoveReaction(ctx context.Context, thoughtID, reactionID uint) (*models.Thought, error) {
	if _, err := s.thoughtRepo.GetByID(ctx, thoughtID); err != nil {
		return nil, err
	}
	if err := s.thoughtRepo.RemoveReaction(ctx, thoughtID, reactionID); err != nil {
		return nil, err
	}
	return s.thoughtRepo.GetByID(ctx, thoughtID)
}
