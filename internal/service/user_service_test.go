package service

import (
	"context"
	"errors"
	"testing"

	"ripple/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertValidationError(t *testing.T, err error, reason string) {
	t.Helper()
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeValidationError, appErr.Code)
	assert.Contains(t, appErr.Reasons, reason)
}

func TestUserServiceCreateUser(t *testing.T) {
	t.Run("Trims username and persists", func(t *testing.T) {
		repo := noopUserRepo()
		var created *models.User
		repo.createFn = func(_ context.Context, u *models.User) error {
			u.ID = 1
			created = u
			return nil
		}
		svc := NewUserService(repo)

		user, err := svc.CreateUser(context.Background(), CreateUserInput{
			Username: "  alice  ",
			Email:    "alice@example.com",
		})
		require.NoError(t, err)
		assert.Equal(t, "alice", created.Username)
		assert.Equal(t, uint(1), user.ID)
		// Normalize must leave empty collections, not nil.
		assert.NotNil(t, user.Thoughts)
		assert.NotNil(t, user.Friends)
	})

	t.Run("Rejects blank username", func(t *testing.T) {
		svc := NewUserService(noopUserRepo())
		_, err := svc.CreateUser(context.Background(), CreateUserInput{
			Username: "   ",
			Email:    "alice@example.com",
		})
		assertValidationError(t, err, "Username is required")
	})

	t.Run("Rejects malformed email", func(t *testing.T) {
		svc := NewUserService(noopUserRepo())
		for _, email := range []string{"", "plain", "no@tld", "spaces in@example.com"} {
			_, err := svc.CreateUser(context.Background(), CreateUserInput{
				Username: "alice",
				Email:    email,
			})
			assert.Error(t, err, "email %q should be rejected", email)
		}
	})

	t.Run("Collects all reasons at once", func(t *testing.T) {
		svc := NewUserService(noopUserRepo())
		_, err := svc.CreateUser(context.Background(), CreateUserInput{})

		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Len(t, appErr.Reasons, 2)
	})

	t.Run("Surfaces uniqueness violation", func(t *testing.T) {
		repo := noopUserRepo()
		repo.createFn = func(context.Context, *models.User) error {
			return models.NewValidationError("Email is already registered")
		}
		svc := NewUserService(repo)

		_, err := svc.CreateUser(context.Background(), CreateUserInput{
			Username: "alice",
			Email:    "alice@example.com",
		})
		assertValidationError(t, err, "Email is already registered")
	})
}

func TestUserServiceUpdateUser(t *testing.T) {
	t.Run("Patches only provided fields", func(t *testing.T) {
		repo := noopUserRepo()
		var saved *models.User
		repo.getResolvedFn = func(context.Context, uint) (*models.User, error) {
			return &models.User{ID: 1, Username: "alice", Email: "alice@example.com"}, nil
		}
		repo.updateFn = func(_ context.Context, u *models.User) error {
			saved = u
			return nil
		}
		svc := NewUserService(repo)

		_, err := svc.UpdateUser(context.Background(), UpdateUserInput{
			UserID: 1,
			Email:  "new@example.com",
		})
		require.NoError(t, err)
		assert.Equal(t, "alice", saved.Username)
		assert.Equal(t, "new@example.com", saved.Email)
	})

	t.Run("Never reads through the cache", func(t *testing.T) {
		repo := noopUserRepo()
		repo.getByIDFn = func(context.Context, uint) (*models.User, error) {
			t.Fatal("update must fetch the row fresh, not via the cached read")
			return nil, nil
		}
		var saved *models.User
		repo.updateFn = func(_ context.Context, u *models.User) error {
			saved = u
			return nil
		}
		svc := NewUserService(repo)

		_, err := svc.UpdateUser(context.Background(), UpdateUserInput{
			UserID:   1,
			Username: "alicia",
		})
		require.NoError(t, err)
		assert.Equal(t, "alicia", saved.Username)
	})

	t.Run("Unknown user", func(t *testing.T) {
		repo := noopUserRepo()
		repo.getResolvedFn = func(_ context.Context, id uint) (*models.User, error) {
			return nil, models.NewNotFoundError("User", id)
		}
		svc := NewUserService(repo)

		_, err := svc.UpdateUser(context.Background(), UpdateUserInput{UserID: 9, Username: "x"})
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, models.CodeNotFound, appErr.Code)
	})
}

func TestUserServiceDeleteUser(t *testing.T) {
	t.Run("Returns the deleted document", func(t *testing.T) {
		repo := noopUserRepo()
		deleted := false
		repo.deleteFn = func(context.Context, uint) error {
			deleted = true
			return nil
		}
		svc := NewUserService(repo)

		user, err := svc.DeleteUser(context.Background(), 1)
		require.NoError(t, err)
		assert.True(t, deleted)
		assert.Equal(t, "alice", user.Username)
	})

	t.Run("Unknown user leaves the store untouched", func(t *testing.T) {
		repo := noopUserRepo()
		repo.getResolvedFn = func(_ context.Context, id uint) (*models.User, error) {
			return nil, models.NewNotFoundError("User", id)
		}
		repo.deleteFn = func(context.Context, uint) error {
			t.Fatal("delete should not be called")
			return nil
		}
		svc := NewUserService(repo)

		_, err := svc.DeleteUser(context.Background(), 42)
		assert.Error(t, err)
	})
}

func TestUserServiceAddFriend(t *testing.T) {
	t.Run("Rejects self friending", func(t *testing.T) {
		repo := noopUserRepo()
		repo.addFriendFn = func(context.Context, uint, uint) error {
			t.Fatal("addFriend should not be called")
			return nil
		}
		svc := NewUserService(repo)

		_, err := svc.AddFriend(context.Background(), 3, 3)
		assertValidationError(t, err, "Users cannot add themselves as friends")
	})

	t.Run("Both users must exist", func(t *testing.T) {
		repo := noopUserRepo()
		repo.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
			if id == 2 {
				return nil, models.NewNotFoundError("User", id)
			}
			return &models.User{ID: id}, nil
		}
		svc := NewUserService(repo)

		_, err := svc.AddFriend(context.Background(), 1, 2)
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, models.CodeNotFound, appErr.Code)
	})

	t.Run("Returns refreshed user", func(t *testing.T) {
		repo := noopUserRepo()
		repo.getResolvedFn = func(_ context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id, Username: "alice", FriendCount: 1}, nil
		}
		svc := NewUserService(repo)

		user, err := svc.AddFriend(context.Background(), 1, 2)
		require.NoError(t, err)
		assert.Equal(t, 1, user.FriendCount)
	})
}

func TestUserServiceRemoveFriend(t *testing.T) {
	repo := noopUserRepo()
	calls := 0
	repo.removeFriendFn = func(context.Context, uint, uint) error {
		calls++
		return nil
	}
	svc := NewUserService(repo)

	// Removing the same edge twice succeeds both times.
	_, err := svc.RemoveFriend(context.Background(), 1, 2)
	require.NoError(t, err)
	_, err = svc.RemoveFriend(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestUserServiceLinkThought(t *testing.T) {
	repo := noopUserRepo()
	repo.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
		return nil, models.NewNotFoundError("User", id)
	}
	repo.linkThoughtFn = func(context.Context, uint, uint) error {
		t.Fatal("linkThought should not be called for a missing user")
		return nil
	}
	svc := NewUserService(repo)

	err := svc.LinkThought(context.Background(), 7, 1)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, models.CodeNotFound, appErr.Code)
}
