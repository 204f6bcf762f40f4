package redis

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/captainblair/movie-recommendation-api/configs"

	"github.com/redis/go-redis/v9"
)

func ConnectRedis() *redis.Client {
	time.Sleep(time.Duration(configs.GetConfigs().WaitForRedisConnectionSec) * time.Second)
	redisClient := NewClient(configs.GetConfigs().RedisUrl, configs.GetConfigs().RedisPassword)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	pong, err := redisClient.Ping(ctx).Result()
	log.Println("====> [[MovieApi Redis Client:", pong, err, "]]")
	return redisClient
}

func NewClient(addr string, password string) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})
}

func IsNil(err error) bool {
	return errors.Is(err, redis.Nil)
}
