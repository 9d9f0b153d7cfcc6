// Package ban tracks abuse of the credential endpoints. Failed logins and
// rate-limit rejections earn an IP strikes in redis; enough strikes inside
// the window and the IP is temporarily banned.
package ban

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rogerio-castellano/ink-to-doc/internal/redissvc"
)

const (
	strikeKeyPrefix = "authguard:strikes:"
	banKeyPrefix    = "authguard:ban:"

	strikeWindow = 10 * time.Minute
	banDuration  = 15 * time.Minute
	maxStrikes   = 10
)

var (
	rdb *redis.Client
	ctx context.Context
)

func SetRedisService(rs *redissvc.RedisService) {
	rdb = rs.Rdb()
	ctx = rs.Ctx()
}

// AddStrike records one strike against the IP and bans it once the
// threshold is reached. A no-op when redis is not wired (tests, dev).
func AddStrike(ip string, route string) {
	if rdb == nil {
		return
	}

	key := strikeKeyPrefix + ip
	strikes, err := rdb.Incr(ctx, key).Result()
	if err != nil {
		log.Printf("Failed to record strike for %s: %v", ip, err)
		return
	}
	if strikes == 1 {
		_ = rdb.Expire(ctx, key, strikeWindow).Err()
	}

	if strikes >= maxStrikes {
		if err := rdb.Set(ctx, banKeyPrefix+ip, route, banDuration).Err(); err != nil {
			log.Printf("Failed to ban %s: %v", ip, err)
			return
		}
		log.Printf("Banned %s for %s after %d strikes on %s", ip, banDuration, strikes, route)
	}
}

// ClearStrikes forgets accumulated strikes, typically after a successful
// login.
func ClearStrikes(ip string) {
	if rdb == nil {
		return
	}
	_ = rdb.Del(ctx, strikeKeyPrefix+ip).Err()
}

func IsBanned(ip string) bool {
	if rdb == nil {
		return false
	}

	exists, err := rdb.Exists(ctx, banKeyPrefix+ip).Result()
	if err != nil {
		log.Printf("Failed to check ban for %s: %v", ip, err)
		return false
	}
	return exists > 0
}
