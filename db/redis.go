// db/redis.go
package db

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	logger "github.com/ZORO77a/Lockey/logging"
	"github.com/ZORO77a/Lockey/model"
)

var (
	RedisClient   *redis.Client
	encryptionKey []byte
)

func InitRedis() error {
	RedisClient = redis.NewClient(&redis.Options{
		Addr:         viper.GetString("redis.addr"),
		Password:     viper.GetString("redis.password"),
		DB:           viper.GetInt("redis.db"),
		DialTimeout:  viper.GetDuration("redis.dialTimeout"),
		ReadTimeout:  viper.GetDuration("redis.readTimeout"),
		WriteTimeout: viper.GetDuration("redis.writeTimeout"),
		PoolSize:     viper.GetInt("redis.poolSize"),
		PoolTimeout:  viper.GetDuration("redis.poolTimeout"),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := RedisClient.Ping(ctx).Result()
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}

	encryptionKey = []byte(viper.GetString("redis.encryptionKey"))
	switch len(encryptionKey) {
	case 0:
		logger.Warn("redis.encryptionKey not set; policy cache entries are stored unencrypted")
	case 32:
	default:
		return fmt.Errorf("invalid encryption key length: must be 32 bytes")
	}

	logger.Info("Successfully connected to Redis")
	return nil
}

func CloseRedis() {
	if RedisClient != nil {
		if err := RedisClient.Close(); err != nil {
			logger.Error("Error closing Redis connection", zap.Error(err))
		}
	}
}

func encrypt(plaintext []byte) ([]byte, error) {
	if len(encryptionKey) == 0 {
		return plaintext, nil
	}
	block, err := aes.NewCipher(encryptionKey)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err = io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}
	return gcm.Seal(nonce, nonce, plaintext, nil), nil
}

func decrypt(ciphertext []byte) ([]byte, error) {
	if len(encryptionKey) == 0 {
		return ciphertext, nil
	}
	block, err := aes.NewCipher(encryptionKey)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	nonceSize := gcm.NonceSize()
	if len(ciphertext) < nonceSize {
		return nil, fmt.Errorf("ciphertext too short")
	}
	nonce, ciphertext := ciphertext[:nonceSize], ciphertext[nonceSize:]
	return gcm.Open(nil, nonce, ciphertext, nil)
}

func policyConfigKey() string {
	return fmt.Sprintf("policy_config:%s", model.PolicyConfigID)
}

func CachePolicyConfig(ctx context.Context, cfg *model.PolicyConfig) error {
	cfgJSON, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal policy config: %w", err)
	}

	sealed, err := encrypt(cfgJSON)
	if err != nil {
		return fmt.Errorf("failed to encrypt policy config: %w", err)
	}

	defaultTTL := viper.GetDuration("redis.defaultCacheTTL")
	err = RedisClient.Set(ctx, policyConfigKey(), base64.StdEncoding.EncodeToString(sealed), defaultTTL).Err()
	if err != nil {
		return fmt.Errorf("failed to cache policy config: %w", err)
	}

	logger.Debug("Policy config cached successfully", zap.Time("updatedAt", cfg.UpdatedAt))
	return nil
}

// GetCachedPolicyConfig returns nil, nil on a cache miss.
func GetCachedPolicyConfig(ctx context.Context) (*model.PolicyConfig, error) {
	sealedStr, err := RedisClient.Get(ctx, policyConfigKey()).Result()
	if err == redis.Nil {
		logger.Debug("Policy config not found in cache")
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get policy config from cache: %w", err)
	}

	sealed, err := base64.StdEncoding.DecodeString(sealedStr)
	if err != nil {
		return nil, fmt.Errorf("failed to decode policy config: %w", err)
	}

	cfgJSON, err := decrypt(sealed)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt policy config: %w", err)
	}

	var cfg model.PolicyConfig
	if err = json.Unmarshal(cfgJSON, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal policy config: %w", err)
	}

	logger.Debug("Policy config retrieved from cache")
	return &cfg, nil
}

func DeleteCachedPolicyConfig(ctx context.Context) error {
	if err := RedisClient.Del(ctx, policyConfigKey()).Err(); err != nil {
		return fmt.Errorf("failed to delete policy config from cache: %w", err)
	}
	logger.Debug("Policy config deleted from cache")
	return nil
}

// RateLimit records one hit for key in a sliding window and reports whether
// the caller is still within limit.
func RateLimit(ctx context.Context, key string, limit int, per time.Duration) (bool, error) {
	pipe := RedisClient.Pipeline()
	now := time.Now().UnixNano()
	key = fmt.Sprintf("ratelimit:%s", key)

	pipe.ZRemRangeByScore(ctx, key, "0", fmt.Sprintf("%d", now-(per.Nanoseconds())))
	pipe.ZAdd(ctx, key, redis.Z{Score: float64(now), Member: now})
	pipe.ZCard(ctx, key)
	pipe.Expire(ctx, key, per)

	cmds, err := pipe.Exec(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to execute rate limit commands: %w", err)
	}

	count := cmds[2].(*redis.IntCmd).Val()
	allowed := count <= int64(limit)
	logger.Debug("Rate limit check",
		zap.String("key", key),
		zap.Int64("count", count),
		zap.Int("limit", limit),
		zap.Bool("allowed", allowed))
	return allowed, nil
}
