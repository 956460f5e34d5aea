package connection

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// ConnectMongoWithRetry dials MongoDB and verifies the connection with a
// ping before returning the named database handle.
func ConnectMongoWithRetry(uri, dbName string, maxRetries int) (*mongo.Client, *mongo.Database, error) {
	if uri == "" {
		return nil, nil, fmt.Errorf("MONGODB_URI is required")
	}

	clientOptions := options.Client().
		ApplyURI(uri).
		SetConnectTimeout(20 * time.Second).
		SetServerSelectionTimeout(15 * time.Second).
		SetMaxPoolSize(50)

	var lastErr error

	for i := 1; i <= maxRetries; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		client, err := mongo.Connect(ctx, clientOptions)
		cancel()
		if err != nil {
			lastErr = err
			log.Printf("mongo connect failed (%d/%d): %v", i, maxRetries, err)
			time.Sleep(5 * time.Second)
			continue
		}

		ctxPing, cancelPing := context.WithTimeout(context.Background(), 10*time.Second)
		err = client.Ping(ctxPing, readpref.Primary())
		cancelPing()
		if err != nil {
			lastErr = err
			_ = client.Disconnect(context.Background())
			log.Printf("mongo ping failed (%d/%d): %v", i, maxRetries, err)
			time.Sleep(5 * time.Second)
			continue
		}

		log.Println("connected to MongoDB")
		return client, client.Database(dbName), nil
	}

	return nil, nil, fmt.Errorf("mongo connection failed after %d retries: %w", maxRetries, lastErr)
}

// DisconnectMongo closes the client, logging instead of failing.
func DisconnectMongo(client *mongo.Client) {
	if client == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := client.Disconnect(ctx); err != nil {
		log.Printf("mongo disconnect warning: %v", err)
	}
}

// ConnectRedisWithRetry returns a Redis client, or nil when addr is empty.
// The catalog cache treats a nil client as "cache disabled".
func ConnectRedisWithRetry(addr string, maxRetries int) (*redis.Client, error) {
	if addr == "" {
		return nil, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	for i := 1; i <= maxRetries; i++ {
		ctx := context.Background()
		if err := rdb.Ping(ctx).Err(); err == nil {
			log.Println("connected to Redis")
			return rdb, nil
		}

		log.Printf("redis retry %d/%d failed", i, maxRetries)
		time.Sleep(5 * time.Second)
	}

	return nil, fmt.Errorf("failed to connect redis")
}
