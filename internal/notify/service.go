// Package notify queues order lifecycle notifications on Redis and drains
// the queue from a background worker. Queueing is best-effort: a Redis
// outage is logged, never surfaced to the order workflow.
package notify

import (
	"context"
	"encoding/json"
	"time"

	"gymslot/internal/logger"
	"gymslot/internal/metrics"

	"github.com/redis/go-redis/v9"
)

const queueKey = "notifications"

type Job struct {
	Kind    string    `json:"kind"`
	Email   string    `json:"email"`
	OrderID int       `json:"order_id"`
	Created time.Time `json:"created"`
}

type Service struct {
	redis *redis.Client
}

func New(redisAddr string) *Service {
	return &Service{
		redis: redis.NewClient(&redis.Options{
			Addr: redisAddr,
		}),
	}
}

// NewWithClient is used by tests to inject a mock client.
func NewWithClient(client *redis.Client) *Service {
	return &Service{redis: client}
}

func (s *Service) Close() error {
	return s.redis.Close()
}

func (s *Service) OrderConfirmed(ctx context.Context, email string, orderID int) {
	s.enqueue(ctx, Job{Kind: "order_confirmed", Email: email, OrderID: orderID, Created: time.Now()})
}

func (s *Service) OrderCancelled(ctx context.Context, email string, orderID int) {
	s.enqueue(ctx, Job{Kind: "order_cancelled", Email: email, OrderID: orderID, Created: time.Now()})
}

func (s *Service) enqueue(ctx context.Context, job Job) {
	data, err := json.Marshal(job)
	if err != nil {
		logger.Errorf("Failed to marshal notification job: %v", err)
		metrics.RecordNotification(job.Kind, "marshal_error")
		return
	}

	if err := s.redis.LPush(ctx, queueKey, string(data)).Err(); err != nil {
		logger.Errorf("Failed to queue %s notification for order %d: %v", job.Kind, job.OrderID, err)
		metrics.RecordNotification(job.Kind, "queue_error")
		return
	}

	logger.Debug("Notification queued", "kind", job.Kind, "order_id", job.OrderID)
	metrics.RecordNotification(job.Kind, "queued")
}

// Start drains the queue until ctx is cancelled.
func (s *Service) Start(ctx context.Context) {
	logger.Info("Notification worker started")

	for {
		select {
		case <-ctx.Done():
			logger.Info("Notification worker stopped")
			return
		default:
		}

		result, err := s.redis.BRPop(ctx, 2*time.Second, queueKey).Result()
		if err != nil {
			if err == redis.Nil || ctx.Err() != nil {
				continue
			}
			logger.Errorf("Failed to pop notification: %v", err)
			time.Sleep(time.Second)
			continue
		}

		if len(result) < 2 {
			continue
		}

		var job Job
		if err := json.Unmarshal([]byte(result[1]), &job); err != nil {
			logger.Errorf("Failed to unmarshal notification job: %v", err)
			continue
		}

		s.deliver(job)
	}
}

func (s *Service) deliver(job Job) {
	// Delivery target is the application log; an SMTP or push transport
	// would slot in here.
	logger.Info("Notification delivered",
		"kind", job.Kind,
		"email", job.Email,
		"order_id", job.OrderID,
	)
	metrics.RecordNotification(job.Kind, "delivered")
}
