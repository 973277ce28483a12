package cart

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

const cartTTL = 30 * 24 * time.Hour

// RedisRepository keeps carts in redis under cart:<userID>.
type RedisRepository struct {
	conn *redis.Client
}

func NewRedisRepository(conn *redis.Client) *RedisRepository {
	return &RedisRepository{conn: conn}
}

func (r *RedisRepository) Load(ctx context.Context, userID string) (Cart, error) {
	raw, err := r.conn.Get(ctx, "cart:"+userID).Result()
	if err == redis.Nil {
		return Cart{Items: nil}, nil
	}
	if err != nil {
		return Cart{}, err
	}

	var c Cart
	if err := json.Unmarshal([]byte(raw), &c); err != nil {
		return Cart{}, err
	}
	return c, nil
}

func (r *RedisRepository) Save(ctx context.Context, userID string, c Cart) error {
	raw, err := json.Marshal(c)
	if err != nil {
		return err
	}
	return r.conn.Set(ctx, "cart:"+userID, raw, cartTTL).Err()
}
