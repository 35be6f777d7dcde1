package app

import (
	"context"
	"fmt"
	"time"

	"github.com/beliefted/beliefted-server/internal/datasources"
	"github.com/beliefted/beliefted-server/internal/datasources/mongo"
	"github.com/beliefted/beliefted-server/internal/datasources/mysql"
	"github.com/beliefted/beliefted-server/internal/datasources/push"
	"github.com/beliefted/beliefted-server/internal/ratelimit"
)

const rateLimitKeyPrefix = "beliefted:ratelimit:"

// SetupDatasetRepository connects to the store named by STORAGE_DRIVER and
// makes sure its indexes or schema exist.
func SetupDatasetRepository(ctx context.Context) (datasources.DatasetRepository, error) {
	switch driver := MustGetEnvAsString(ctx, "STORAGE_DRIVER"); driver {
	case "mongo":
		db, err := mongo.Connect(ctx,
			MustGetEnvAsString(ctx, "MONGO_URI"),
			MustGetEnvAsString(ctx, "MONGO_DATABASE"),
		)
		if err != nil {
			return nil, err
		}
		if err := mongo.EnsureIndexes(ctx, db); err != nil {
			return nil, err
		}
		return mongo.New(db), nil
	case "mysql":
		db, err := mysql.Connect(ctx, MustGetEnvAsString(ctx, "MYSQL_URI"))
		if err != nil {
			return nil, fmt.Errorf("connecting to MySQL: %w", err)
		}
		if err := mysql.EnsureSchema(ctx, db); err != nil {
			return nil, err
		}
		return mysql.New(db), nil
	default:
		return nil, fmt.Errorf("unknown storage driver [%s]", driver)
	}
}

func setupRateLimiter(ctx context.Context) (*ratelimit.Limiter, error) {
	switch driver := MustGetEnvAsString(ctx, "RATE_LIMIT_DRIVER"); driver {
	case "memory":
		return ratelimit.New(ratelimit.NewMemoryStore(time.Minute)), nil
	case "redis":
		client := ratelimit.NewRedis(
			MustGetEnvAsString(ctx, "REDIS_ADDR"),
			MustGetEnvAsString(ctx, "REDIS_PASSWORD"),
			MustGetEnvAsInt(ctx, "REDIS_DB"),
		)
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("connecting to redis: %w", err)
		}
		return ratelimit.New(ratelimit.NewRedisStore(client, rateLimitKeyPrefix)), nil
	case "memcached":
		client := ratelimit.NewMemcached(MustGetEnvAsString(ctx, "MEMCACHED_SERVER"))
		if err := client.Ping(); err != nil {
			return nil, fmt.Errorf("connecting to memcached: %w", err)
		}
		return ratelimit.New(ratelimit.NewMemcachedStore(client, rateLimitKeyPrefix)), nil
	default:
		return nil, fmt.Errorf("unknown rate limit driver [%s]", driver)
	}
}

func setupPusher(ctx context.Context) (datasources.Pusher, error) {
	switch driver := MustGetEnvAsString(ctx, "PUSH_DRIVER"); driver {
	case "null":
		return datasources.NullPusher{}, nil
	case "fcm":
		return push.NewFCMClient(
			MustGetEnvAsString(ctx, "FCM_BASE_URL"),
			MustGetEnvAsString(ctx, "FCM_PROJECT_ID"),
			MustGetEnvAsString(ctx, "FCM_ACCESS_TOKEN"),
			MustGetEnvAsDuration(ctx, "FCM_TIMEOUT"),
		), nil
	default:
		return nil, fmt.Errorf("unknown push driver [%s]", driver)
	}
}
