package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/kingdom-randomizer/internal/catalog"
	kingdomsession "github.com/KirkDiggler/kingdom-randomizer/internal/repositories/kingdom_session"
)

const (
	sessionPattern = "kingdom_session:*"
	recentKey      = "kingdom_sessions:recent"
)

func main() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatal("Failed to parse Redis URL:", err)
	}

	cat, err := loadCatalog(os.Getenv("RANDOMIZER_CATALOG_PATH"))
	if err != nil {
		log.Fatal("Failed to load catalog:", err)
	}

	client := redis.NewClient(opt)
	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	fmt.Println("Connected to Redis:", redisURL)
	fmt.Println("Scanning for corrupted kingdom sessions...")

	iter := client.Scan(ctx, 0, sessionPattern, 0).Iterator()

	var corruptedKeys []string
	var checkedCount int

	for iter.Next(ctx) {
		key := iter.Val()
		checkedCount++

		data, err := client.Get(ctx, key).Result()
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", key, err)
			continue
		}

		var session kingdomsession.Session
		if err := json.Unmarshal([]byte(data), &session); err != nil {
			fmt.Printf("✗ Corrupted JSON in %s\n", key)
			corruptedKeys = append(corruptedKeys, key)
			continue
		}

		if session.Kingdom == nil {
			continue
		}
		if err := session.Kingdom.Validate(); err != nil {
			fmt.Printf("✗ Invalid kingdom in %s: %v\n", key, err)
			corruptedKeys = append(corruptedKeys, key)
			continue
		}

		// Cards removed from the catalog make the kingdom impossible to reroll
		for _, id := range session.Kingdom.CardIDs() {
			if _, err := cat.CardByID(ctx, id); err != nil {
				fmt.Printf("✗ Unknown card %s in %s\n", id, key)
				corruptedKeys = append(corruptedKeys, key)
				break
			}
		}
	}

	if err := iter.Err(); err != nil {
		log.Fatal("Error during scan:", err)
	}

	fmt.Printf("\nChecked %d keys, found %d corrupted entries\n", checkedCount, len(corruptedKeys))

	if len(corruptedKeys) == 0 {
		fmt.Println("No corrupted sessions found!")
		return
	}

	fmt.Println("\nCorrupted keys:")
	for _, key := range corruptedKeys {
		fmt.Printf("  - %s\n", key)
	}

	fmt.Print("\nDo you want to DELETE these sessions? (yes/no): ")
	var response string
	_, _ = fmt.Scanln(&response)

	if response != "yes" {
		fmt.Println("Aborted - no changes made")
		return
	}

	for _, key := range corruptedKeys {
		id := strings.TrimPrefix(key, "kingdom_session:")
		pipe := client.TxPipeline()
		pipe.Del(ctx, key)
		pipe.ZRem(ctx, recentKey, id)
		if _, err := pipe.Exec(ctx); err != nil {
			fmt.Printf("Failed to delete %s: %v\n", key, err)
		} else {
			fmt.Printf("Deleted %s\n", key)
		}
	}
	fmt.Println("\nCleanup complete!")
}

func loadCatalog(path string) (*catalog.InMemory, error) {
	if path == "" {
		return catalog.LoadDefault()
	}
	return catalog.LoadFile(path)
}
