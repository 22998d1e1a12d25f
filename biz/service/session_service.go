package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"strconv"
	"time"

	"github.com/bennett39/stocktrader/biz/dal/redis"
	"github.com/bennett39/stocktrader/conf"
)

const sessionKeyPrefix = "session:"

// CreateSession stores a fresh session token for the account in Redis and
// returns it.
func CreateSession(ctx context.Context, accountID uint64) (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	token := hex.EncodeToString(buf)
	ttl := time.Duration(conf.GetConf().Trading.SessionTTL) * time.Minute
	if ttl == 0 {
		ttl = 24 * time.Hour
	}
	err := redis.Client.Set(ctx, sessionKeyPrefix+token,
		strconv.FormatUint(accountID, 10), ttl).Err()
	if err != nil {
		return "", err
	}
	return token, nil
}

// LookupSession resolves a session token to an account id.
func LookupSession(ctx context.Context, token string) (uint64, error) {
	val, err := redis.Client.Get(ctx, sessionKeyPrefix+token).Result()
	if err != nil {
		return 0, err
	}
	return strconv.ParseUint(val, 10, 64)
}

// DestroySession invalidates a session token.
func DestroySession(ctx context.Context, token string) error {
	return redis.Client.Del(ctx, sessionKeyPrefix+token).Err()
}
