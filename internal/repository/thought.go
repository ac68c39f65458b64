package repository

import (
	"context"
	"errors"

	"ripple/internal/cache"
	"ripple/internal/middleware"
	"ripple/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ThoughtRepository defines persistence operations for thoughts and their
// embedded reactions.
type ThoughtRepository interface {
	List(ctx context.Context, limit, offset int) ([]models.Thought, error)
	GetByID(ctx context.Context, id uint) (*models.Thought, error)
	Create(ctx context.Context, thought *models.Thought) error
	Update(ctx context.Context, thought *models.Thought) error
	Delete(ctx context.Context, id uint) error
	AddReaction(ctx context.Context, thoughtID uint, reaction *models.Reaction) (bool, error)
	RemoveReaction(ctx context.Context, thoughtID, reactionID uint) error
}

type thoughtRepository struct {
	db *gorm.DB
}

// NewThoughtRepository returns a new ThoughtRepository implementation.
func NewThoughtRepository(db *gorm.DB) ThoughtRepository {
	return &thoughtRepository{db: db}
}

func (r *thoughtRepository) List(ctx context.Context, limit, offset int) ([]models.Thought, error) {
	// Find leaves a nil slice on an empty table; start non-nil so an empty
	// page serializes as [] rather than null.
	thoughts := []models.Thought{}
	if err := r.db.WithContext(ctx).
		Preload("Reactions", func(db *gorm.DB) *gorm.DB {
			return db.Order("reactions.id")
		}).
		Order("thoughts.id").
		Limit(limit).Offset(offset).
		Find(&thoughts).Error; err != nil {
		middleware.StoreErrors.WithLabelValues("thought").Inc()
		return nil, models.NewInternalError(err)
	}
	for i := range thoughts {
		thoughts[i].Normalize()
	}
	return thoughts, nil
}

func (r *thoughtRepository) GetByID(ctx context.Context, id uint) (*models.Thought, error) {
	var thought models.Thought
	key := cache.ThoughtKey(id)

	err := cache.Aside(ctx, key, &thought, cache.ThoughtTTL, func() error {
		if err := r.db.WithContext(ctx).
			Preload("Reactions", func(db *gorm.DB) *gorm.DB {
				return db.Order("reactions.id")
			}).
			First(&thought, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Thought", id)
			}
			middleware.StoreErrors.WithLabelValues("thought").Inc()
			return models.NewInternalError(err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	thought.Normalize()
	return &thought, nil
}

func (r *thoughtRepository) Create(ctx context.Context, thought *models.Thought) error {
	if err := r.db.WithContext(ctx).Create(thought).Error; err != nil {
		middleware.StoreErrors.WithLabelValues("thought").Inc()
		return models.NewInternalError(err)
	}
	return nil
}

func (r *thoughtRepository) Update(ctx context.Context, thought *models.Thought) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(thought).Error; err != nil {
		middleware.StoreErrors.WithLabelValues("thought").Inc()
		return models.NewInternalError(err)
	}
	cache.InvalidateThought(ctx, thought.ID)
	return nil
}

// Delete removes the thought and its reactions. The owning user's thoughts
// list is a computed back-reference, so no user document needs fixing up.
func (r *thoughtRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("thought_id = ?", id).Delete(&models.Reaction{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Thought{}, id).Error
	})
	if err != nil {
		middleware.StoreErrors.WithLabelValues("thought").Inc()
		return models.NewInternalError(err)
	}
	cache.InvalidateThought(ctx, id)
	return nil
}

// AddReaction appends a reaction. A reaction identical on (thought, body,
// username) already being present is not an error; the method reports
// whether a row was actually added.
func (r *thoughtRepository) AddReaction(ctx context.Context, thoughtID uint, reaction *models.Reaction) (bool, error) {
	reaction.ThoughtID = thoughtID
	if err := r.db.WithContext(ctx).Create(reaction).Error; err != nil {
		if isUniqueConstraintError(err) {
			return false, nil
		}
		middleware.StoreErrors.WithLabelValues("reaction").Inc()
		return false, models.NewInternalError(err)
	}
	cache.InvalidateThought(ctx, thoughtID)
	return true, nil
}

// RemoveReaction deletes the reaction with the given id from the thought.
// Removing a reaction that does not exist succeeds.
func (r *thoughtRepository) RemoveReaction(ctx context.Context, thoughtID, reactionID uint) error {
	if err := r.db.WithContext(ctx).
		Where("thought_id = ? AND id = ?", thoughtID, reactionID).
		Delete(&models.Reaction{}).Error; err != nil {
		middleware.StoreErrors.WithLabelValues("reaction").Inc()
		return models.NewInternalError(err)
	}
	cache.InvalidateThought(ctx, thoughtID)
	return nil
}
