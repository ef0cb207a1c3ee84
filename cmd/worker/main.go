package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/segmentio/kafka-go"

	"github.com/resumekit/resumekit/adapters/event"
	"github.com/resumekit/resumekit/adapters/persistence"
	"github.com/resumekit/resumekit/internal/config"
	"github.com/resumekit/resumekit/internal/domain/document"
	"github.com/resumekit/resumekit/pkg/logger"
)

// The archive worker listens to document mutation events and copies the
// latest autosaved snapshot from the cache into Postgres. The editor
// only autosaves to Redis; durability is this worker's job.
func main() {
	fmt.Println("Starting ResumeKit Archive Worker...")

	// Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	defer appLogger.Sync()

	// Database
	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		log.Fatalf("FATAL: cannot connect Postgres: %v", err)
	}
	defer dbPool.Close()

	redisClient, err := persistence.NewRedisClient(cfg, appLogger)
	if err != nil {
		log.Fatalf("FATAL: cannot connect Redis: %v", err)
	}
	defer redisClient.Close()

	documentRepo := persistence.NewPostgresDocumentRepo(dbPool, appLogger)
	snapshotCache := persistence.NewSnapshotCache(redisClient, appLogger)

	// Kafka Consumer
	documentConsumer := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Kafka.Brokers,
		Topic:    event.TopicDocumentEvents,
		GroupID:  "document-archiver-group",
		MinBytes: 10e3,
		MaxBytes: 10e6,
	})
	defer documentConsumer.Close()

	log.Printf("Worker listening on topic '%s'...", event.TopicDocumentEvents)

	ctx := context.Background()
	for {
		msg, err := documentConsumer.ReadMessage(ctx)
		if err != nil {
			log.Printf("ERROR: Failed to read message from Kafka: %v", err)
			continue
		}

		log.Printf("Received message from [Topic: %s], [Key: %s]", msg.Topic, string(msg.Key))

		var payload event.DocumentEventPayload
		if err := json.Unmarshal(msg.Value, &payload); err != nil {
			log.Printf("ERROR: Failed to unmarshal event: %v. Skipping.", err)
			commitMessage(documentConsumer, msg)
			continue
		}

		doc, err := snapshotCache.Load(ctx)
		if err != nil {
			if errors.Is(err, document.ErrSnapshotNotFound) {
				// Mutation already superseded by a reset; nothing to archive.
				commitMessage(documentConsumer, msg)
				continue
			}
			log.Printf("ERROR: Failed to load autosave snapshot: %v", err)
			continue
		}

		if err := documentRepo.Save(ctx, doc); err != nil {
			log.Printf("ERROR: Failed to archive document snapshot: %v", err)
			continue
		}

		commitMessage(documentConsumer, msg)
	}
}

func commitMessage(consumer *kafka.Reader, msg kafka.Message) {
	if err := consumer.CommitMessages(context.Background(), msg); err != nil {
		log.Printf("ERROR: Failed to commit message: %v", err)
	}
}
