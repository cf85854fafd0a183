package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/orris-inc/estatehub/internal/shared/logger"
)

const (
	// inquiryLockKeyPrefix is the prefix for per-inquiry evaluation locks
	inquiryLockKeyPrefix = "estatehub:inquiry_lock:"
	// DefaultInquiryLockTTL bounds how long a crashed holder blocks an inquiry
	DefaultInquiryLockTTL = time.Minute
	releaseTimeout        = 2 * time.Second
)

// releaseScript deletes the key only while it still holds the caller's token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisInquiryLock serializes inquiry evaluation across instances with SetNX.
type RedisInquiryLock struct {
	client *redis.Client
	ttl    time.Duration
	logger logger.Interface
}

func NewRedisInquiryLock(client *redis.Client, ttl time.Duration, logger logger.Interface) *RedisInquiryLock {
	if ttl <= 0 {
		ttl = DefaultInquiryLockTTL
	}
	return &RedisInquiryLock{client: client, ttl: ttl, logger: logger}
}

// buildKey builds the Redis key for an inquiry.
// Format: estatehub:inquiry_lock:{inquiry_id}
func (l *RedisInquiryLock) buildKey(inquiryID uint) string {
	return fmt.Sprintf("%s%d", inquiryLockKeyPrefix, inquiryID)
}

// TryAcquire takes the lock without waiting. When ok is false another holder has it.
func (l *RedisInquiryLock) TryAcquire(ctx context.Context, inquiryID uint) (func(), bool, error) {
	key := l.buildKey(inquiryID)
	token := uuid.NewString()

	acquired, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
	if err != nil {
		return nil, false, fmt.Errorf("failed to acquire inquiry lock: %w", err)
	}
	if !acquired {
		return nil, false, nil
	}

	release := func() {
		releaseCtx, cancel := context.WithTimeout(context.Background(), releaseTimeout)
		defer cancel()
		if err := releaseScript.Run(releaseCtx, l.client, []string{key}, token).Err(); err != nil {
			l.logger.Warnw("failed to release inquiry lock",
				"inquiry_id", inquiryID,
				"error", err,
			)
		}
	}
	return release, true, nil
}

// LocalInquiryLock is the in-process variant used when Redis is disabled.
type LocalInquiryLock struct {
	mu   sync.Mutex
	held map[uint]struct{}
}

func NewLocalInquiryLock() *LocalInquiryLock {
	return &LocalInquiryLock{held: make(map[uint]struct{})}
}

func (l *LocalInquiryLock) TryAcquire(ctx context.Context, inquiryID uint) (func(), bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, busy := l.held[inquiryID]; busy {
		return nil, false, nil
	}
	l.held[inquiryID] = struct{}{}

	var once sync.Once
	release := func() {
		once.Do(func() {
			l.mu.Lock()
			delete(l.held, inquiryID)
			l.mu.Unlock()
		})
	}
	return release, true, nil
}
