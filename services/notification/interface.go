package notification

import (
	"context"
	"fmt"

	"clinicbook/models"
	"clinicbook/services/tasks"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// NotificationService dispatches best-effort patient notifications. Delivery
// happens outside the request path; a failed enqueue is the caller's only
// visible error and never a reason to fail a committed verification.
type NotificationService interface {
	EnqueueConfirmation(ctx context.Context, payload models.ConfirmationPayload) error
}

// AsynqNotificationService queues notifications on redis via asynq. The
// queue is the outbox: once a task is enqueued, delivery retries ride
// asynq's own retry channel.
type AsynqNotificationService struct {
	Client *asynq.Client
	Logger *zap.Logger
}

func NewAsynqNotificationService(client *asynq.Client, logger *zap.Logger) (*AsynqNotificationService, error) {
	if client == nil {
		return nil, fmt.Errorf("notification service initialization error: asynq client is nil")
	}
	return &AsynqNotificationService{Client: client, Logger: logger}, nil
}

func (s *AsynqNotificationService) EnqueueConfirmation(ctx context.Context, payload models.ConfirmationPayload) error {
	task, opts, err := tasks.NewConfirmationTask(payload)
	if err != nil {
		return fmt.Errorf("failed to build confirmation task: %w", err)
	}
	info, err := s.Client.EnqueueContext(ctx, task, opts...)
	if err != nil {
		return fmt.Errorf("failed to enqueue confirmation for booking %s: %w", payload.BookingID, err)
	}
	s.Logger.Info("confirmation email queued",
		zap.String("bookingId", payload.BookingID),
		zap.String("taskId", info.ID))
	return nil
}
