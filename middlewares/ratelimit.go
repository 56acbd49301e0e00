package middlewares

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/DhyanMarasinghe/Fitnesstrackerpro/utils"
)

// Auth endpoint throttle windows.
const (
	RateLimitWindow  = 15 * time.Minute
	LoginAttempts    = 5
	RegisterAttempts = 3
)

// CounterStore is a fixed-window counter. Incr bumps the counter for key and
// returns the count within the current window; a window that has expired
// counts as fresh.
type CounterStore interface {
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
}

type windowCounter struct {
	count   int64
	resetAt time.Time
}

// MemoryCounterStore keeps counters in a process-wide map. Safe for
// concurrent use; increments never lose updates.
type MemoryCounterStore struct {
	mu       sync.Mutex
	counters map[string]*windowCounter
	now      func() time.Time
}

func NewMemoryCounterStore() *MemoryCounterStore {
	return &MemoryCounterStore{
		counters: make(map[string]*windowCounter),
		now:      time.Now,
	}
}

func (s *MemoryCounterStore) Incr(_ context.Context, key string, window time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	w, ok := s.counters[key]
	if !ok || now.After(w.resetAt) {
		s.counters[key] = &windowCounter{count: 1, resetAt: now.Add(window)}
		return 1, nil
	}
	w.count++
	return w.count, nil
}

// Sweep drops expired windows. Calling it is optional: expired entries are
// treated as fresh on next access anyway.
func (s *MemoryCounterStore) Sweep() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	for key, w := range s.counters {
		if now.After(w.resetAt) {
			delete(s.counters, key)
		}
	}
}

// StartSweeper runs Sweep on an interval until ctx is done.
func (s *MemoryCounterStore) StartSweeper(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.Sweep()
			}
		}
	}()
}

// RedisCounterStore backs the counter with a shared cache so the limit holds
// across replicas.
type RedisCounterStore struct {
	rdb *redis.Client
}

func NewRedisCounterStore(rdb *redis.Client) *RedisCounterStore {
	return &RedisCounterStore{rdb: rdb}
}

func (s *RedisCounterStore) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	pipe := s.rdb.TxPipeline()
	incr := pipe.Incr(ctx, "ratelimit:"+key)
	pipe.ExpireNX(ctx, "ratelimit:"+key, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}
	return incr.Val(), nil
}

// RateLimit throttles an action per client address with a fixed window,
// rejecting before the request body is even read. Store failures fail open
// with a warning so an unavailable cache cannot lock everyone out.
func RateLimit(store CounterStore, log *zap.Logger, action string, limit int64, window time.Duration, message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("%s:%s", action, c.ClientIP())
		count, err := store.Incr(c.Request.Context(), key, window)
		if err != nil {
			log.Warn("rate limit store unavailable, allowing request",
				zap.String("action", action), zap.Error(err))
			c.Next()
			return
		}
		if count > limit {
			utils.AbortError(c, http.StatusTooManyRequests, message)
			return
		}
		c.Next()
	}
}
