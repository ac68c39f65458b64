package repository

import (
	"context"
	"errors"
	"strings"

	"ripple/internal/cache"
	"ripple/internal/middleware"
	"ripple/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetResolved(ctx context.Context, id uint) (*models.User, error)
	List(ctx context.Context, limit, offset int) ([]models.User, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id uint) error
	AddFriend(ctx context.Context, userID, friendID uint) error
	RemoveFriend(ctx context.Context, userID, friendID uint) error
	LinkThought(ctx context.Context, userID, thoughtID uint) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository returns a new UserRepository implementation.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	key := cache.UserKey(id)

	err := cache.Aside(ctx, key, &user, cache.UserTTL, func() error {
		if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("User", id)
			}
			middleware.StoreErrors.WithLabelValues("user").Inc()
			return models.NewInternalError(err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetResolved(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).
		Preload("Thoughts", func(db *gorm.DB) *gorm.DB {
			return db.Order("thoughts.id")
		}).
		Preload("Thoughts.Reactions").
		First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("User", id)
		}
		middleware.StoreErrors.WithLabelValues("user").Inc()
		return nil, models.NewInternalError(err)
	}

	friends, err := r.friendsOf(ctx, id)
	if err != nil {
		return nil, err
	}
	user.Friends = friends
	user.Normalize()
	return &user, nil
}

func (r *userRepository) friendsOf(ctx context.Context, userID uint) ([]models.User, error) {
	var friends []models.User
	if err := r.db.WithContext(ctx).
		Joins("JOIN friendships ON friendships.friend_id = users.id").
		Where("friendships.user_id = ?", userID).
		Order("friendships.id").
		Find(&friends).Error; err != nil {
		middleware.StoreErrors.WithLabelValues("friendship").Inc()
		return nil, models.NewInternalError(err)
	}
	return friends, nil
}

func (r *userRepository) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	// Find leaves a nil slice on an empty table; start non-nil so an empty
	// page serializes as [] rather than null.
	users := []models.User{}
	if err := r.db.WithContext(ctx).
		Preload("Thoughts", func(db *gorm.DB) *gorm.DB {
			return db.Order("thoughts.id")
		}).
		Preload("Thoughts.Reactions").
		Order("users.id").
		Limit(limit).Offset(offset).
		Find(&users).Error; err != nil {
		middleware.StoreErrors.WithLabelValues("user").Inc()
		return nil, models.NewInternalError(err)
	}

	for i := range users {
		friends, err := r.friendsOf(ctx, users[i].ID)
		if err != nil {
			return nil, err
		}
		users[i].Friends = friends
		users[i].Normalize()
	}
	return users, nil
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(user).Error; err != nil {
		if isUniqueConstraintError(err) {
			return uniqueUserViolation(err)
		}
		middleware.StoreErrors.WithLabelValues("user").Inc()
		return models.NewInternalError(err)
	}
	return nil
}

// uniqueUserViolation maps a unique-violation error to a field-level
// validation message based on the violated constraint.
func uniqueUserViolation(err error) *models.AppError {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "email"):
		return models.NewValidationError("Email is already registered")
	case strings.Contains(msg, "username"):
		return models.NewValidationError("Username is already taken")
	default:
		return models.NewValidationError("User already exists")
	}
}

func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(user).Error; err != nil {
		if isUniqueConstraintError(err) {
			return uniqueUserViolation(err)
		}
		middleware.StoreErrors.WithLabelValues("user").Inc()
		return models.NewInternalError(err)
	}
	cache.InvalidateUser(ctx, user.ID)
	return nil
}

// Delete removes the user along with its friendship edges and detaches the
// user's thoughts. Thoughts deliberately survive the owner's deletion.
func (r *userRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ? OR friend_id = ?", id, id).
			Delete(&models.Friendship{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Thought{}).
			Where("user_id = ?", id).
			Update("user_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, id).Error
	})
	if err != nil {
		middleware.StoreErrors.WithLabelValues("user").Inc()
		return models.NewInternalError(err)
	}
	cache.InvalidateUser(ctx, id)
	return nil
}

// AddFriend inserts a friendship edge. Inserting an existing edge is a
// silent no-op (set semantics).
func (r *userRepository) AddFriend(ctx context.Context, userID, friendID uint) error {
	edge := models.Friendship{UserID: userID, FriendID: friendID}
	if err := r.db.WithContext(ctx).Create(&edge).Error; err != nil {
		if isUniqueConstraintError(err) {
			return nil
		}
		middleware.StoreErrors.WithLabelValues("friendship").Inc()
		return models.NewInternalError(err)
	}
	cache.InvalidateUser(ctx, userID)
	return nil
}

// RemoveFriend deletes a friendship edge; removing a missing edge succeeds.
func (r *userRepository) RemoveFriend(ctx context.Context, userID, friendID uint) error {
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND friend_id = ?", userID, friendID).
		Delete(&models.Friendship{}).Error; err != nil {
		middleware.StoreErrors.WithLabelValues("friendship").Inc()
		return models.NewInternalError(err)
	}
	cache.InvalidateUser(ctx, userID)
	return nil
}

// LinkThought points the thought's user_id at the given user. The existence
// of the user is the caller's concern; a missing thought is reported as
// NotFound.
func (r *userRepository) LinkThought(ctx context.Context, userID, thoughtID uint) error {
	res := r.db.WithContext(ctx).Model(&models.Thought{}).
		Where("id = ?", thoughtID).
		Update("user_id", userID)
	if res.Error != nil {
		middleware.StoreErrors.WithLabelValues("thought").Inc()
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Thought", thoughtID)
	}
	cache.InvalidateUser(ctx, userID)
	cache.InvalidateThought(ctx, thoughtID)
	return nil
}
