package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-currency-convert/internal/logger"
	"github.com/shopspring/decimal"
)

// ErrRateNotCached is returned when the pair has no cached mid rate.
var ErrRateNotCached = errors.New("exchange rate not found in cache")

// ExchangeRateCacheRepository caches mid market rates in Redis
type ExchangeRateCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached rates
}

func NewExchangeRateCacheRepository(client *redis.Client, expiration time.Duration) *ExchangeRateCacheRepository {
	return &ExchangeRateCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func rateKey(sellCurrency, buyCurrency string) string {
	return fmt.Sprintf("mid_rate:%s:%s", sellCurrency, buyCurrency)
}

// GetMidRate returns the cached number of buy currency units per sell currency unit.
func (r *ExchangeRateCacheRepository) GetMidRate(ctx context.Context, sellCurrency, buyCurrency string) (decimal.Decimal, error) {
	key := rateKey(sellCurrency, buyCurrency)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow(
			"get mid rate",
			"key", key,
			"result", val,
			"error", err,
		)
		if errors.Is(err, redis.Nil) {
			return decimal.Zero, fmt.Errorf("%w: %s->%s", ErrRateNotCached, sellCurrency, buyCurrency)
		}
		return decimal.Zero, err
	}

	rate, err := decimal.NewFromString(val)

	logger.Log.Infow(
		"get mid rate",
		"key", key,
		"value", val,
		"result", rate,
		"error", err,
	)

	if err != nil {
		return decimal.Zero, err
	}
	return rate, nil
}

func (r *ExchangeRateCacheRepository) SetMidRate(ctx context.Context, sellCurrency, buyCurrency string, rate decimal.Decimal) error {
	key := rateKey(sellCurrency, buyCurrency)
	err := r.client.Set(ctx, key, rate.String(), r.exp).Err()

	logger.Log.Infow(
		"set mid rate",
		"key", key,
		"rate", rate,
		"result", "ok",
		"error", err,
	)

	return err
}
