// +build ignore

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type QuoteIssuedEvent struct {
	QuoteID     uuid.UUID `json:"quote_id"`
	Origin      string    `json:"origin"`
	Destination string    `json:"destination"`
	Vehicle     string    `json:"vehicle"`
	VolumeM3    float64   `json:"volume_m3"`
	DistanceKm  int       `json:"distance_km"`
	TotalPrice  int64     `json:"total_price"`
	IssuedAt    time.Time `json:"issued_at"`
}

func main() {
	redisAddr := flag.String("redis", "localhost:6379", "Redis address for streams")
	count := flag.Int("n", 1, "number of events to publish")
	broken := flag.Bool("broken", false, "publish a malformed payload instead")
	flag.Parse()

	client := redis.NewClient(&redis.Options{
		Addr: *redisAddr,
	})
	defer client.Close()

	ctx := context.Background()

	// Проверка подключения
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	for i := 0; i < *count; i++ {
		// Москва -> Казань, Газель, 2 м³: 7000 + 820*45 = 43 900
		event := QuoteIssuedEvent{
			QuoteID:     uuid.New(),
			Origin:      "Москва",
			Destination: "Казань",
			Vehicle:     "gazelle",
			VolumeM3:    2,
			DistanceKm:  820,
			TotalPrice:  43900,
			IssuedAt:    time.Now().UTC(),
		}

		payload := "{not json"
		if !*broken {
			data, err := json.Marshal(event)
			if err != nil {
				log.Fatalf("Failed to marshal event: %v", err)
			}
			payload = string(data)
		}

		// Публикация в стрим
		result, err := client.XAdd(ctx, &redis.XAddArgs{
			Stream: "stream:quote:issued",
			Values: map[string]interface{}{
				"data": payload,
			},
		}).Result()
		if err != nil {
			log.Fatalf("Failed to publish event: %v", err)
		}

		fmt.Printf("✅ Event published: %s (quote %s)\n", result, event.QuoteID)
	}

	pending, err := client.XLen(ctx, "stream:quote:issued").Result()
	if err == nil {
		fmt.Printf("   Stream length: %d\n", pending)
	}
}
