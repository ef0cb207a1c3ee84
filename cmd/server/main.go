package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/resumekit/resumekit/adapters/event"
	httpAdapter "github.com/resumekit/resumekit/adapters/http"
	"github.com/resumekit/resumekit/adapters/media_storage"
	"github.com/resumekit/resumekit/adapters/persistence"
	"github.com/resumekit/resumekit/internal/application/service"
	photoUC "github.com/resumekit/resumekit/internal/application/usecase/photo"
	"github.com/resumekit/resumekit/internal/config"
	"github.com/resumekit/resumekit/internal/domain/document"
	"github.com/resumekit/resumekit/internal/export"
	"github.com/resumekit/resumekit/internal/store"
	"github.com/resumekit/resumekit/pkg/logger"
)

func main() {
	fmt.Println("Start ResumeKit API Server...")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	defer appLogger.Sync()

	// The document store is the single source of truth for the session.
	documentStore := store.New()

	// Optional collaborators: each one is wired only when configured.
	var documentRepo document.Repository
	if cfg.DB.DSN != "" {
		dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
		if err != nil {
			appLogger.Fatal("cannot connect Postgres", err)
		}
		defer dbPool.Close()
		documentRepo = persistence.NewPostgresDocumentRepo(dbPool, appLogger)
	}

	var snapshotCache *persistence.SnapshotCache
	if cfg.Redis.Addr != "" {
		redisClient, err := persistence.NewRedisClient(cfg, appLogger)
		if err != nil {
			appLogger.Fatal("cannot connect Redis", err)
		}
		defer redisClient.Close()
		snapshotCache = persistence.NewSnapshotCache(redisClient, appLogger)
	}

	var kafkaClient *event.KafkaProducerClient
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaClient, err = event.NewKafkaProducerClient(cfg)
		if err != nil {
			appLogger.Fatal("cannot init Kafka", err)
		}
		defer kafkaClient.Close()
	}

	var uploader service.Uploader
	if cfg.Cloudinary.CloudName != "" {
		uploader, err = media_storage.NewCloudinaryAdapter(cfg)
		if err != nil {
			appLogger.Fatal("failed to initialize uploader", err)
		}
	}

	// Pick the previous session back up from the autosave cache.
	if snapshotCache != nil {
		if doc, err := snapshotCache.Load(context.Background()); err == nil {
			documentStore.Restore(*doc)
			appLogger.Info("Restored autosaved document from cache")
		} else if !errors.Is(err, document.ErrSnapshotNotFound) {
			appLogger.Warn("Failed to load autosaved document", zap.Error(err))
		}
	}

	// Every mutation fans out to the autosave cache and the event stream.
	documentStore.Subscribe(func(doc document.Document) {
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if snapshotCache != nil {
				snapshotCache.Autosave(ctx, doc)
			}
			if kafkaClient != nil {
				payload := event.DocumentEventPayload{
					EventType: event.DocumentEventTypeMutated,
					Template:  string(doc.Template),
					At:        time.Now().UTC(),
				}
				if err := kafkaClient.PublishDocumentEvent(ctx, payload); err != nil {
					appLogger.Warn("Failed to publish document event", zap.Error(err))
				}
			}
		}()
	})

	// Export pipeline
	pipeline, err := export.NewPipeline(cfg.Export.Oversample)
	if err != nil {
		appLogger.Fatal("failed to initialize export pipeline", err)
	}

	// Use Cases
	ingestPhotoUseCase := photoUC.NewIngestPhotoUseCase(documentStore, uploader, appLogger)

	// HTTP Handlers
	var autosaveCache httpAdapter.AutosaveCache
	if snapshotCache != nil {
		autosaveCache = snapshotCache
	}
	documentHandler := httpAdapter.NewDocumentHandler(documentStore, documentRepo, autosaveCache, appLogger)
	exportHandler := httpAdapter.NewExportHandler(documentStore, pipeline, kafkaClient, appLogger)
	photoHandler := httpAdapter.NewPhotoHandler(ingestPhotoUseCase, appLogger)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := httpAdapter.NewRouter(documentHandler, exportHandler, photoHandler, appLogger)

	appLogger.Info("Server running", zap.String("port", cfg.App.Port))
	if err := router.Run(":" + cfg.App.Port); err != nil {
		appLogger.Fatal("cannot run server", err)
	}
}
