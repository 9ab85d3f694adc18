package middleware

import (
	"hash/fnv"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/deal-service/internal/domain/dto"
	"github.com/guttosm/deal-service/internal/i18n"
)

const defaultNumShards = 16

// visitor is a fixed window counter for one identifier.
type visitor struct {
	tokens      int
	windowStart time.Time
}

type rateLimiterShard struct {
	mu       sync.Mutex
	visitors map[string]*visitor
}

// RateLimiter is a fixed window limiter sharded by identifier hash.
type RateLimiter struct {
	shards   []*rateLimiterShard
	rate     int
	window   time.Duration
	now      func() time.Time
	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewRateLimiter creates a limiter allowing rate requests per window.
func NewRateLimiter(rate int, window time.Duration) *RateLimiter {
	return NewShardedRateLimiter(rate, window, defaultNumShards)
}

// NewShardedRateLimiter is NewRateLimiter with an explicit shard count.
func NewShardedRateLimiter(rate int, window time.Duration, numShards int) *RateLimiter {
	if numShards <= 0 {
		numShards = defaultNumShards
	}

	shards := make([]*rateLimiterShard, numShards)
	for i := range shards {
		shards[i] = &rateLimiterShard{visitors: make(map[string]*visitor)}
	}

	rl := &RateLimiter{
		shards: shards,
		rate:   rate,
		window: window,
		now:    time.Now,
		stopCh: make(chan struct{}),
	}
	go rl.cleanupLoop()
	return rl
}

func (rl *RateLimiter) shard(identifier string) *rateLimiterShard {
	h := fnv.New32a()
	_, _ = h.Write([]byte(identifier))
	return rl.shards[h.Sum32()%uint32(len(rl.shards))]
}

// allow consumes a token for identifier and returns the remaining tokens and
// the time until the window resets.
func (rl *RateLimiter) allow(identifier string) (ok bool, remaining int, reset time.Duration) {
	s := rl.shard(identifier)
	now := rl.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	v, exists := s.visitors[identifier]
	if !exists || now.Sub(v.windowStart) >= rl.window {
		v = &visitor{tokens: rl.rate, windowStart: now}
		s.visitors[identifier] = v
	}

	reset = rl.window - now.Sub(v.windowStart)
	if v.tokens <= 0 {
		return false, 0, reset
	}
	v.tokens--
	return true, v.tokens, reset
}

// RateLimit limits requests per API client, or per IP when the request is anonymous.
func (rl *RateLimiter) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, remaining, reset := rl.allow(identify(c))

		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.rate))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))

		if !ok {
			c.Header("Retry-After", strconv.Itoa(int(math.Ceil(reset.Seconds()))))
			message := i18n.GetTranslator().Translate(i18n.ErrKeyRateLimitExceeded, i18n.GetLocale(c))
			c.AbortWithStatusJSON(http.StatusTooManyRequests,
				dto.NewError(dto.ErrCodeRateLimit, message).WithRequestID(GetRequestID(c)))
			return
		}
		c.Next()
	}
}

func identify(c *gin.Context) string {
	if id := GetClientID(c); id != "" {
		return "client:" + id
	}
	return "ip:" + c.ClientIP()
}

func (rl *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.removeStale(rl.now())
		case <-rl.stopCh:
			return
		}
	}
}

// removeStale drops visitors whose window ended more than one window ago.
func (rl *RateLimiter) removeStale(now time.Time) {
	for _, s := range rl.shards {
		s.mu.Lock()
		for id, v := range s.visitors {
			if now.Sub(v.windowStart) > 2*rl.window {
				delete(s.visitors, id)
			}
		}
		s.mu.Unlock()
	}
}

// Stop ends the cleanup goroutine. Safe to call more than once.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stopCh) })
}

// Stats returns the number of tracked visitors in total and per shard.
func (rl *RateLimiter) Stats() (total int, perShard []int) {
	perShard = make([]int, len(rl.shards))
	for i, s := range rl.shards {
		s.mu.Lock()
		perShard[i] = len(s.visitors)
		s.mu.Unlock()
		total += perShard[i]
	}
	return total, perShard
}
