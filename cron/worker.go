package cron

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"tripplanner/models"
	"tripplanner/services/tasks"
	"tripplanner/utils"

	"github.com/goccy/go-json"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// ItineraryLoader loads a stored itinerary by id.
type ItineraryLoader interface {
	GetByID(ctx context.Context, id string) (models.Itinerary, error)
}

// Renderer writes an itinerary document and returns where it went.
type Renderer interface {
	Render(it models.Itinerary) (string, error)
}

// JSONRenderer writes itineraries as indented JSON files under Dir.
type JSONRenderer struct {
	Dir string
}

func (r JSONRenderer) Render(it models.Itinerary) (string, error) {
	if it.ID == "" || strings.ContainsAny(it.ID, `/\`) || strings.Contains(it.ID, "..") {
		return "", fmt.Errorf("invalid itinerary id %q", it.ID)
	}
	if err := os.MkdirAll(r.Dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create export dir: %w", err)
	}

	b, err := json.MarshalIndent(it, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode itinerary: %w", err)
	}
	path := filepath.Join(r.Dir, it.ID+".json")
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}

// InitExportWorker starts the export worker in background and returns the
// server so the caller can shut it down.
func InitExportWorker(loader ItineraryLoader, renderer Renderer, logger *zap.Logger) *asynq.Server {
	srv := asynq.NewServer(
		utils.QueueRedisOpt(),
		asynq.Config{
			Concurrency: 4,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeExportItinerary, HandleExportTask(loader, renderer, logger))

	go func() {
		logger.Info("Starting export worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			err := srv.Start(mux)
			if err == nil || errors.Is(err, asynq.ErrServerClosed) {
				return
			}
			logger.Error("Export worker failed to start",
				zap.Int("attempt", attempts), zap.Int("maxAttempts", maxAttempts), zap.Error(err))
			if attempts == maxAttempts {
				logger.Error("Export worker gave up, exports will stay queued")
				return
			}
			time.Sleep(time.Duration(attempts*2) * time.Second)
		}
	}()
	return srv
}

// HandleExportTask renders the itinerary named by the task payload.
// Unknown itineraries and bad payloads are not retried.
func HandleExportTask(loader ItineraryLoader, renderer Renderer, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		p, err := tasks.ParseExportPayload(task)
		if err != nil {
			logger.Warn("Dropping export task", zap.Error(err))
			return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
		}

		it, err := loader.GetByID(ctx, p.ItineraryID)
		if errors.Is(err, models.ErrNotFound) {
			logger.Warn("Export requested for unknown itinerary", zap.String("id", p.ItineraryID))
			return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
		}
		if err != nil {
			return err
		}

		path, err := renderer.Render(it)
		if err != nil {
			logger.Error("Export failed", zap.String("id", p.ItineraryID), zap.Error(err))
			return err
		}
		logger.Info("Itinerary exported", zap.String("id", p.ItineraryID), zap.String("path", path))
		return nil
	}
}
