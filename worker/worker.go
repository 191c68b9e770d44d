package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"clinicbook/config"
	"clinicbook/models"
	"clinicbook/services/notification"
	"clinicbook/services/tasks"

	"github.com/hibiken/asynq"
)

// InitConfirmationWorker runs the async email worker in background.
func InitConfirmationWorker(mailer *notification.SMTPClient) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeEmailConfirmation, handleConfirmationTask(mailer))

	// Start async worker with retry logic
	go func() {
		log.Println("[ConfirmationWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ConfirmationWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ConfirmationWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleConfirmationTask(mailer *notification.SMTPClient) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ConfirmationPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ConfirmationWorker] invalid payload: %v", err)
			return err
		}

		subject := fmt.Sprintf("Payment confirmed for booking %s", p.BookingID)
		body := fmt.Sprintf(
			"Dear %s,\n\nWe have received your payment of %.2f for booking %s.\nYour appointment is confirmed for %s at %s.\n\nSee you then!\n",
			p.Name, p.Amount, p.BookingID, p.Date, p.Time,
		)

		if err := mailer.SendEmail(p.Email, subject, body); err != nil {
			log.Printf("[ConfirmationWorker] failed to send confirmation for booking %s: %v", p.BookingID, err)
			return err
		}

		log.Printf("[ConfirmationWorker] confirmation sent for booking %s to %s", p.BookingID, p.Email)
		return nil
	}
}
