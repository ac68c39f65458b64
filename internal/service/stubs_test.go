package service

import (
	"context"

	"ripple/internal/models"
)

type userRepoStub struct {
	getByIDFn      func(context.Context, uint) (*models.User, error)
	getResolvedFn  func(context.Context, uint) (*models.User, error)
	listFn         func(context.Context, int, int) ([]models.User, error)
	createFn       func(context.Context, *models.User) error
	updateFn       func(context.Context, *models.User) error
	deleteFn       func(context.Context, uint) error
	addFriendFn    func(context.Context, uint, uint) error
	removeFriendFn func(context.Context, uint, uint) error
	linkThoughtFn  func(context.Context, uint, uint) error
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetResolved(ctx context.Context, id uint) (*models.User, error) {
	return s.getResolvedFn(ctx, id)
}
func (s *userRepoStub) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.listFn(ctx, limit, offset)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *userRepoStub) AddFriend(ctx context.Context, userID, friendID uint) error {
	return s.addFriendFn(ctx, userID, friendID)
}
func (s *userRepoStub) RemoveFriend(ctx context.Context, userID, friendID uint) error {
	return s.removeFriendFn(ctx, userID, friendID)
}
func (s *userRepoStub) LinkThought(ctx context.Context, userID, thoughtID uint) error {
	return s.linkThoughtFn(ctx, userID, thoughtID)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn: func(_ context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id, Username: "alice", Email: "alice@example.com"}, nil
		},
		getResolvedFn: func(_ context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id, Username: "alice", Email: "alice@example.com"}, nil
		},
		listFn:         func(context.Context, int, int) ([]models.User, error) { return []models.User{}, nil },
		createFn:       func(context.Context, *models.User) error { return nil },
		updateFn:       func(context.Context, *models.User) error { return nil },
		deleteFn:       func(context.Context, uint) error { return nil },
		addFriendFn:    func(context.Context, uint, uint) error { return nil },
		removeFriendFn: func(context.Context, uint, uint) error { return nil },
		linkThoughtFn:  func(context.Context, uint, uint) error { return nil },
	}
}

type thoughtRepoStub struct {
	listFn           func(context.Context, int, int) ([]models.Thought, error)
	getByIDFn        func(context.Context, uint) (*models.Thought, error)
	createFn         func(context.Context, *models.Thought) error
	updateFn         func(context.Context, *models.Thought) error
	deleteFn         func(context.Context, uint) error
	addReactionFn    func(context.Context, uint, *models.Reaction) (bool, error)
	removeReactionFn func(context.Context, uint, uint) error
}

func (s *thoughtRepoStub) List(ctx context.Context, limit, offset int) ([]models.Thought, error) {
	return s.listFn(ctx, limit, offset)
}
func (s *thoughtRepoStub) GetByID(ctx context.Context, id uint) (*models.Thought, error) {
	return s.getByIDFn(ctx, id)
}
func (s *thoughtRepoStub) Create(ctx context.Context, thought *models.Thought) error {
	return s.createFn(ctx, thought)
}
func (s *thoughtRepoStub) Update(ctx context.Context, thought *models.Thought) error {
	return s.updateFn(ctx, thought)
}
func (s *thoughtRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *thoughtRepoStub) AddReaction(ctx context.Context, thoughtID uint, reaction *models.Reaction) (bool, error) {
	return s.addReactionFn(ctx, thoughtID, reaction)
}
func (s *thoughtRepoStub) RemoveReaction(ctx context.Context, thoughtID, reactionID uint) error {
	return s.removeReactionFn(ctx, thoughtID, reactionID)
}

func noopThoughtRepo() *thoughtRepoStub {
	return &thoughtRepoStub{
		listFn: func(context.Context, int, int) ([]models.Thought, error) { return []models.Thought{}, nil },
		getByIDFn: func(_ context.Context, id uint) (*models.Thought, error) {
			return &models.Thought{ID: id, ThoughtText: "hello", Username: "alice"}, nil
		},
		createFn:         func(context.Context, *models.Thought) error { return nil },
		updateFn:         func(context.Context, *models.Thought) error { return nil },
		deleteFn:         func(context.Context, uint) error { return nil },
		addReactionFn:    func(context.Context, uint, *models.Reaction) (bool, error) { return true, nil },
		removeReactionFn: func(context.Context, uint, uint) error { return nil },
	}
}
