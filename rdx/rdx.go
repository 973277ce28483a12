package rdx

import (
	"log"
	"os"
	"time"

	"itinero/globals"

	"github.com/redis/go-redis/v9"
)

var Conn *redis.Client

// Init connects the shared redis client. Redis backs the server-side cart,
// the itinerary detail cache, and one-time confirmation tokens.
func Init() {
	addr := os.Getenv("REDIS_URL")
	if addr == "" {
		addr = "localhost:6379"
	}

	Conn = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: "",
		DB:       0,
	})

	log.Println("redis initialized with address:", addr)
}

func RdxGet(key string) (string, error) {
	return Conn.Get(globals.Ctx, key).Result()
}

func RdxSet(key, value string, ttl time.Duration) error {
	return Conn.Set(globals.Ctx, key, value, ttl).Err()
}

func RdxDel(key string) error {
	return Conn.Del(globals.Ctx, key).Err()
}

// RdxGetDel fetches and deletes a key atomically, for one-time tokens.
func RdxGetDel(key string) (string, error) {
	return Conn.GetDel(globals.Ctx, key).Result()
}
