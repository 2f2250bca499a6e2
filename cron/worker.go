package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"dahabiyat/config"
	userRepo "dahabiyat/database/repository/user"
	"dahabiyat/models"
	"dahabiyat/services/notification"

	"github.com/hibiken/asynq"
)

// InitEmailWorker runs the async email worker in background. Lifecycle events
// land here as queued tasks; actual delivery goes through the injected
// sender, so a delivery failure only ever retries the task.
func InitEmailWorker(users userRepo.UserRepository, sender notification.EmailSender) {
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
	mux.HandleFunc(notification.TypeBookingEmail, handleBookingEmailTask(users, sender))

	go func() {
		log.Println("[EmailWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[EmailWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[EmailWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleBookingEmailTask(users userRepo.UserRepository, sender notification.EmailSender) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.EmailTaskPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[EmailWorker] Invalid payload: %v", err)
			return err
		}

		u, err := users.GetByID(ctx, p.UserID)
		if err != nil {
			log.Printf("[EmailWorker] Could not resolve recipient %s for booking %s: %v", p.UserID, p.Reference, err)
			return err
		}

		if err := sender.Send(ctx, u.Email, p.Subject, p.Body); err != nil {
			log.Printf("[EmailWorker] Failed to send %s email for booking %s: %v", p.Event, p.Reference, err)
			return err
		}
		return nil
	}
}
