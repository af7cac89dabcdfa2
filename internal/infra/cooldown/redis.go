package cooldown

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/despensa-app/expiry-notifier/internal/domain"
)

const redisKeyPrefix = "cooldown:"

// RedisStore keeps last-sent timestamps in Redis so the dedup guarantee
// survives restarts and is shared across instances. Keys expire after the
// cooldown interval; an expired key and a never-sent key are equivalent.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore wraps the given client. ttl should match the policy's
// cooldown interval; zero keeps entries forever.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client: client,
		ttl:    ttl,
	}
}

func (s *RedisStore) LastSent(ctx context.Context, itemID string, offset int) (time.Time, bool, error) {
	val, err := s.client.Get(ctx, redisKey(itemID, offset)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return time.Time{}, false, nil
		}
		return time.Time{}, false, err
	}

	return time.UnixMilli(val), true, nil
}

func (s *RedisStore) MarkSent(ctx context.Context, itemID string, offset int, at time.Time) error {
	return s.client.Set(ctx, redisKey(itemID, offset), at.UnixMilli(), s.ttl).Err()
}

func (s *RedisStore) PurgeItem(ctx context.Context, itemID string) error {
	return s.deleteMatching(ctx, redisKeyPrefix+itemID+":*", nil)
}

func (s *RedisStore) PruneMissing(ctx context.Context, liveItemIDs []string) (int, error) {
	live := make(map[string]struct{}, len(liveItemIDs))
	for _, id := range liveItemIDs {
		live[id] = struct{}{}
	}

	removed := 0
	err := s.deleteMatching(ctx, redisKeyPrefix+"*", func(key string) bool {
		itemID, ok := itemIDFromKey(key)
		if !ok {
			return false
		}
		if _, alive := live[itemID]; alive {
			return false
		}
		removed++
		return true
	})
	return removed, err
}

// deleteMatching scans for keys matching pattern and deletes the ones the
// filter accepts (nil filter accepts all).
func (s *RedisStore) deleteMatching(ctx context.Context, pattern string, filter func(string) bool) error {
	iter := s.client.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		if filter != nil && !filter(key) {
			continue
		}
		if err := s.client.Del(ctx, key).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

// itemIDFromKey extracts the item id from "cooldown:<itemID>:<offset>".
// Item ids from the document store never contain colons.
func itemIDFromKey(key string) (string, bool) {
	rest, ok := strings.CutPrefix(key, redisKeyPrefix)
	if !ok {
		return "", false
	}
	idx := strings.LastIndex(rest, ":")
	if idx <= 0 {
		return "", false
	}
	if _, err := strconv.Atoi(rest[idx+1:]); err != nil {
		return "", false
	}
	return rest[:idx], true
}

func redisKey(itemID string, offset int) string {
	return redisKeyPrefix + itemID + ":" + strconv.Itoa(offset)
}

var _ domain.CooldownStore = (*RedisStore)(nil)
