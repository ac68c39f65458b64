package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	UserKeyPrefix    = "user:%d"
	ThoughtKeyPrefix = "thought:%d"
)

const (
	UserTTL    = 5 * time.Minute
	ThoughtTTL = 10 * time.Minute
)

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

func ThoughtKey(thoughtID uint) string {
	return fmt.Sprintf(ThoughtKeyPrefix, thoughtID)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}

func InvalidateThought(ctx context.Context, thoughtID uint) {
	Invalidate(ctx, ThoughtKey(thoughtID))
}
