package service

import (
	"context"
	"strings"

	"ripple/internal/models"
	"ripple/internal/repository"
)

// UserService implements user CRUD, the friends list and the thought
// back-reference linkage.
type UserService struct {
	userRepo repository.UserRepository
}

type CreateUserInput struct {
	Username string
	Email    string
}

type UpdateUserInput struct {
	UserID   uint
	Username string
	Email    string
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// ListUsers returns users with their thoughts and friends resolved.
// No users is an empty list, not an error.
func (s *UserService) ListUsers(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.userRepo.List(ctx, limit, offset)
}

// GetUser returns the user with thoughts and friends resolved.
func (s *UserService) GetUser(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetResolved(ctx, id)
}

// CreateUser validates and persists a new user. Uniqueness of username and
// email is enforced by the store; a violation surfaces as a field-level
// validation error and leaves no partial state.
func (s *UserService) CreateUser(ctx context.Context, in CreateUserInput) (*models.User, error) {
	username := strings.TrimSpace(in.Username)

	var reasons []string
	reasons = append(reasons, validateUsername(username)...)
	reasons = append(reasons, validateEmail(in.Email)...)
	if len(reasons) > 0 {
		return nil, models.NewValidationErrors(reasons...)
	}

	user := &models.User{
		Username: username,
		Email:    in.Email,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	user.Normalize()
	return user, nil
}

// UpdateUser applies a partial update of username and/or email. The current
// row is read straight from the store, not the cache, so a stale cache entry
// can never be written back over a newer row.
func (s *UserService) UpdateUser(ctx context.Context, in UpdateUserInput) (*models.User, error) {
	user, err := s.userRepo.GetResolved(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	var reasons []string
	if in.Username != "" {
		username := strings.TrimSpace(in.Username)
		reasons = append(reasons, validateUsername(username)...)
		user.Username = username
	}
	if in.Email != "" {
		reasons = append(reasons, validateEmail(in.Email)...)
		user.Email = in.Email
	}
	if len(reasons) > 0 {
		return nil, models.NewValidationErrors(reasons...)
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return s.userRepo.GetResolved(ctx, in.UserID)
}

// DeleteUser removes the user and returns the deleted document. The user's
// thoughts are detached, not deleted.
func (s *UserService) DeleteUser(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.userRepo.GetResolved(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.userRepo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return user, nil
}

// AddFriend appends friendID to the user's friends list. Adding an existing
// friend is a no-op; adding yourself is a validation error.
func (s *UserService) AddFriend(ctx context.Context, userID, friendID uint) (*models.User, error) {
	if userID == friendID {
		return nil, models.NewValidationError("Users cannot add themselves as friends")
	}
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	if _, err := s.userRepo.GetByID(ctx, friendID); err != nil {
		return nil, err
	}
	if err := s.userRepo.AddFriend(ctx, userID, friendID); err != nil {
		return nil, err
	}
	return s.userRepo.GetResolved(ctx, userID)
}

// RemoveFriend removes friendID from the user's friends list; removing a
// user who is not a friend succeeds and returns the unchanged user.
func (s *UserService) RemoveFriend(ctx context.Context, userID, friendID uint) (*models.User, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	if err := s.userRepo.RemoveFriend(ctx, userID, friendID); err != nil {
		return nil, err
	}
	return s.userRepo.GetResolved(ctx, userID)
}

// LinkThought records thoughtID in the user's thoughts back-reference.
// Fails with NotFound if the user is absent; the caller decides what that
// means for the thought it already created.
func (s *UserService) LinkThought(ctx context.Context, userID, thoughtID uint) error {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return err
	}
	return s.userRepo.LinkThought(ctx, userID, thoughtID)
}
