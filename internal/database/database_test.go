package database

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"ripple/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestMigrate(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, Migrate(db))

	for _, table := range []string{"users", "thoughts", "reactions", "friendships"} {
		assert.True(t, db.Migrator().HasTable(table), "table %s should exist", table)
	}

	// Migration is idempotent.
	require.NoError(t, Migrate(db))
}

func TestMigrateEnforcesReactionDedup(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	thought := &models.Thought{ThoughtText: "hi", Username: "alice"}
	require.NoError(t, db.Create(thought).Error)

	first := &models.Reaction{ThoughtID: thought.ID, ReactionBody: "yay", Username: "bob"}
	require.NoError(t, db.Create(first).Error)

	dup := &models.Reaction{ThoughtID: thought.ID, ReactionBody: "yay", Username: "bob"}
	assert.Error(t, db.Create(dup).Error)
}

func TestCustomGormLoggerLevels(t *testing.T) {
	base := &CustomGormLogger{
		logger: slog.Default(),
		Config: logger.Config{LogLevel: logger.Warn, SlowThreshold: 200 * time.Millisecond},
	}

	leveled := base.LogMode(logger.Info)
	require.NotNil(t, leveled)

	// The original logger keeps its level.
	assert.Equal(t, logger.Warn, base.Config.LogLevel)

	// Nothing should panic at any level.
	ctx := context.Background()
	leveled.Info(ctx, "info %s", "msg")
	leveled.Warn(ctx, "warn %s", "msg")
	leveled.Error(ctx, "error %s", "msg")
	leveled.(*CustomGormLogger).Trace(ctx, time.Now(), func() (string, int64) {
		return "SELECT 1", 1
	}, nil)
}
