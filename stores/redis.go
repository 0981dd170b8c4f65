package stores

import (
	"time"

	"github.com/go-redis/redis"
	"github.com/nzai/stockapi/constants"
	"github.com/nzai/stockapi/quotes"
	"go.uber.org/zap"
)

// record key: stockapi:record:{symbol}	value: {expiresAt}{record}

// Redis define redis store
type Redis struct {
	client *redis.Client
}

// NewRedis create redis store
func NewRedis(address, password string) *Redis {
	client := redis.NewClient(&redis.Options{
		Addr:         address,
		Password:     password,
		DB:           0, // use default DB
		MaxRetries:   2,
		ReadTimeout:  time.Second * 5,
		WriteTimeout: time.Second * 5,
	})
	return &Redis{client}
}

func (s Redis) key(symbol string) string {
	return "stockapi:record:" + symbol
}

// Close close redis store
func (s Redis) Close() error {
	if s.client == nil {
		return nil
	}

	return s.client.Close()
}

// Ping check redis is reachable
func (s Redis) Ping() error {
	return s.client.Ping().Err()
}

// Save save record, redis expires it natively
func (s Redis) Save(symbol string, record *quotes.Record, ttl time.Duration) error {
	buffer, err := marshalEntry(record, ttl)
	if err != nil {
		return err
	}

	err = s.client.Set(s.key(symbol), buffer, ttl).Err()
	if err != nil {
		zap.L().Error("save record failed", zap.Error(err), zap.String("symbol", symbol))
		return err
	}

	return nil
}

// Load load record
func (s Redis) Load(symbol string) (*quotes.Record, error) {
	buffer, err := s.client.Get(s.key(symbol)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, constants.ErrRecordNotFound
		}

		zap.L().Error("load record failed", zap.Error(err), zap.String("symbol", symbol))
		return nil, err
	}

	return unmarshalRecord(buffer)
}

// Remove remove record
func (s Redis) Remove(symbol string) error {
	err := s.client.Del(s.key(symbol)).Err()
	if err != nil {
		zap.L().Error("remove record failed", zap.Error(err), zap.String("symbol", symbol))
		return err
	}

	return nil
}
