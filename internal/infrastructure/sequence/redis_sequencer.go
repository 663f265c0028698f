package sequence

import (
	"context"

	"rental_backend/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "seq:"

// floorScript raises KEYS[1] to ARGV[1] without ever lowering it.
var floorScript = redis.NewScript(`
local current = tonumber(redis.call('GET', KEYS[1]) or '0')
local floor = tonumber(ARGV[1])
if current < floor then
  redis.call('SET', KEYS[1], floor)
  return floor
end
return current
`)

// RedisSequencer keeps counters as plain Redis integers.
type RedisSequencer struct {
	rdb *redis.Client
}

var _ interfaces.ISequencer = (*RedisSequencer)(nil)

func NewRedisSequencer(rdb *redis.Client) *RedisSequencer {
	return &RedisSequencer{rdb: rdb}
}

func (s *RedisSequencer) Next(ctx context.Context, key string) (int64, error) {
	return s.rdb.Incr(ctx, redisKeyPrefix+key).Result()
}

func (s *RedisSequencer) Floor(ctx context.Context, key string, n int64) error {
	return floorScript.Run(ctx, s.rdb, []string{redisKeyPrefix + key}, n).Err()
}
