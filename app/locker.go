package app

import (
	"context"
	"errors"
	"time"

	"github.com/bsm/redislock"
	"github.com/dan13ram/mint-queue/models"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

// Locker guards a resource shared by every instance of the service.
// Lock returns ErrLockBusy when another owner holds the resource.
type Locker interface {
	Lock(ctx context.Context, resource string) (release func(), err error)
}

type mongoLocker struct {
	db  Database
	ttl time.Duration
}

func (l *mongoLocker) Lock(ctx context.Context, resource string) (func(), error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	lockId, err := l.db.XLock(resource, l.ttl)
	if err != nil {
		return nil, err
	}
	return func() {
		if err := l.db.Unlock(lockId); err != nil {
			log.Error("[LOCKER] Error unlocking ", resource, ": ", err)
		}
	}, nil
}

func NewMongoLocker(db Database, ttl time.Duration) Locker {
	return &mongoLocker{db: db, ttl: ttl}
}

// RedisLockClient is the part of redislock.Client used by the locker.
type RedisLockClient interface {
	Obtain(ctx context.Context, key string, ttl time.Duration, opt *redislock.Options) (*redislock.Lock, error)
}

type redisLocker struct {
	client RedisLockClient
	ttl    time.Duration
	prefix string
}

func (l *redisLocker) Lock(ctx context.Context, resource string) (func(), error) {
	key := l.prefix + resource
	lock, err := l.client.Obtain(ctx, key, l.ttl, nil)
	if errors.Is(err, redislock.ErrNotObtained) {
		return nil, ErrLockBusy
	}
	if err != nil {
		return nil, err
	}
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := lock.Release(ctx); err != nil && !errors.Is(err, redislock.ErrLockNotHeld) {
			log.Error("[LOCKER] Error releasing ", key, ": ", err)
		}
	}, nil
}

func NewRedisLocker(client RedisLockClient, ttl time.Duration) Locker {
	return &redisLocker{client: client, ttl: ttl, prefix: "mintqueue:"}
}

var (
	Redis *redis.Client
)

func InitRedis() {
	log.Debug("[REDIS] Connecting to redis")
	Redis = redis.NewClient(&redis.Options{
		Addr:     Config.Redis.Address,
		Password: Config.Redis.Password,
		DB:       Config.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(Config.MongoDB.TimeoutMillis)*time.Millisecond)
	defer cancel()

	if err := Redis.Ping(ctx).Err(); err != nil {
		log.Fatal("[REDIS] Error connecting to redis: ", err)
	}
	log.Info("[REDIS] Connected to redis: ", Config.Redis.Address)
}

// InitSignerLocker builds the locker serializing submissions from the signer.
func InitSignerLocker() Locker {
	ttl := time.Duration(Config.SignerLock.TTLMillis) * time.Millisecond
	switch Config.SignerLock.Backend {
	case models.SignerLockRedis:
		if Redis == nil {
			InitRedis()
		}
		log.Debug("[LOCKER] Using redis signer lock")
		return NewRedisLocker(redislock.New(Redis), ttl)
	default:
		log.Debug("[LOCKER] Using mongodb signer lock")
		return NewMongoLocker(DB, ttl)
	}
}
