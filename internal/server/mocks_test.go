package server

import (
	"context"

	"ripple/internal/models"
	"ripple/internal/repository"
	"ripple/internal/service"

	"github.com/stretchr/testify/mock"
)

// newTestServer wires a Server directly from mock repositories, skipping
// database, cache, and metrics setup.
func newTestServer(userRepo repository.UserRepository, thoughtRepo repository.ThoughtRepository) *Server {
	s := &Server{userRepo: userRepo, thoughtRepo: thoughtRepo}
	s.userService = service.NewUserService(userRepo)
	s.thoughtService = service.NewThoughtService(thoughtRepo, userRepo)
	return s
}

// MockUserRepository is a mock of the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetResolved(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) AddFriend(ctx context.Context, userID, friendID uint) error {
	args := m.Called(ctx, userID, friendID)
	return args.Error(0)
}

func (m *MockUserRepository) RemoveFriend(ctx context.Context, userID, friendID uint) error {
	args := m.Called(ctx, userID, friendID)
	return args.Error(0)
}

func (m *MockUserRepository) LinkThought(ctx context.Context, userID, thoughtID uint) error {
	args := m.Called(ctx, userID, thoughtID)
	return args.Error(0)
}

// MockThoughtRepository is a mock of the ThoughtRepository interface
type MockThoughtRepository struct {
	mock.Mock
}

func (m *MockThoughtRepository) List(ctx context.Context, limit, offset int) ([]models.Thought, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Thought), args.Error(1)
}

func (m *MockThoughtRepository) GetByID(ctx context.Context, id uint) (*models.Thought, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Thought), args.Error(1)
}

func (m *MockThoughtRepository) Create(ctx context.Context, thought *models.Thought) error {
	args := m.Called(ctx, thought)
	return args.Error(0)
}

func (m *MockThoughtRepository) Update(ctx context.Context, thought *models.Thought) error {
	args := m.Called(ctx, thought)
	return args.Error(0)
}

func (m *MockThoughtRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockThoughtRepository) AddReaction(ctx context.Context, thoughtID uint, reaction *models.Reaction) (bool, error) {
	args := m.Called(ctx, thoughtID, reaction)
	return args.Bool(0), args.Error(1)
}

func (m *MockThoughtRepository) RemoveReaction(ctx context.Context, thoughtID, reactionID uint) error {
	args := m.Called(ctx, thoughtID, reactionID)
	return args.Error(0)
}
