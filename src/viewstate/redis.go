package viewstate

import (
	"context"
	"encoding/json"
	"time"

	"github.com/garyburd/redigo/redis"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const keyPrefix = "page"

func NewRedisPool(address string, maxConnections int) *redis.Pool {
	return redis.NewPool(func() (redis.Conn, error) {
		c, err := redis.Dial("tcp", address)

		if err != nil {
			return nil, err
		}

		return c, err
	}, maxConnections)
}

// RedisStore serializes pages as JSON under "page<session>" with a TTL.
type RedisStore struct {
	pool *redis.Pool
	ttl  time.Duration
}

func NewRedisStore(pool *redis.Pool, ttl time.Duration) *RedisStore {
	return &RedisStore{pool: pool, ttl: ttl}
}

func (s *RedisStore) Load(ctx context.Context, session string) (Page, error) {
	var page Page

	redisConn := s.pool.Get()
	defer redisConn.Close()

	data, err := redis.Bytes(redisConn.Do("GET", keyPrefix+session))
	if err == redis.ErrNil {
		return page, nil
	}
	if err != nil {
		return page, errors.Wrap(err, "load page")
	}

	if err := json.Unmarshal(data, &page); err != nil {
		log.Debug("[ViewState] Couldn't unmarshal page, starting over: ", err.Error())
		return Page{}, nil
	}
	return page, nil
}

func (s *RedisStore) Save(ctx context.Context, session string, page Page) error {
	serialized, err := json.Marshal(page)
	if err != nil {
		return errors.Wrap(err, "marshal page")
	}

	redisConn := s.pool.Get()
	defer redisConn.Close()

	seconds := int64(s.ttl / time.Second)
	if seconds <= 0 {
		_, err = redisConn.Do("SET", keyPrefix+session, serialized)
	} else {
		_, err = redisConn.Do("SETEX", keyPrefix+session, seconds, serialized)
	}
	return errors.Wrap(err, "save page")
}
