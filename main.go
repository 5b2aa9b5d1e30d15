package main

import (
	"log"

	"github.com/redis/go-redis/v9"

	"taskdesk/config"
	"taskdesk/routes"
	"taskdesk/session"
)

func main() {
	cfg := config.Load()

	db, err := config.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("connect db: %v", err)
	}

	if err := config.Seed(db, cfg); err != nil {
		log.Fatalf("seed db: %v", err)
	}

	var sessions session.Store
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		sessions = session.NewRedisStore(client)
	} else {
		log.Println("REDIS_ADDR not set, sessions held in memory")
		sessions = session.NewMemoryStore()
	}

	r := routes.SetupRouter(db, sessions, cfg)
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatalf("serve: %v", err)
	}
}
