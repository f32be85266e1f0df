package tasks

import (
	"context"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/hibiken/asynq"
)

const TypeExportItinerary = "itinerary:export"

// ExportPayload identifies the itinerary to render.
type ExportPayload struct {
	ItineraryID string `json:"itineraryId"`
	RequestedBy string `json:"requestedBy,omitempty"`
}

func NewExportTask(payload ExportPayload) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeExportItinerary, b)
	opts := []asynq.Option{asynq.MaxRetry(3), asynq.Timeout(time.Minute)}

	return task, opts, nil
}

// ParseExportPayload decodes the payload of an export task.
func ParseExportPayload(task *asynq.Task) (ExportPayload, error) {
	var p ExportPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		return ExportPayload{}, fmt.Errorf("invalid export payload: %w", err)
	}
	if p.ItineraryID == "" {
		return ExportPayload{}, fmt.Errorf("export payload has no itinerary id")
	}
	return p, nil
}

// Enqueuer is the subset of *asynq.Client used to schedule tasks.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

type ExportQueue struct {
	client Enqueuer
}

func NewExportQueue(client Enqueuer) *ExportQueue {
	return &ExportQueue{client: client}
}

// EnqueueExport schedules an export and returns the task id.
func (q *ExportQueue) EnqueueExport(ctx context.Context, itineraryID, userID string) (string, error) {
	task, opts, err := NewExportTask(ExportPayload{ItineraryID: itineraryID, RequestedBy: userID})
	if err != nil {
		return "", err
	}
	info, err := q.client.EnqueueContext(ctx, task, opts...)
	if err != nil {
		return "", fmt.Errorf("failed to enqueue export of %s: %w", itineraryID, err)
	}
	return info.ID, nil
}
