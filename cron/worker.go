package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"mentorly/config"
	"mentorly/models"
	"mentorly/services/availability"

	"github.com/hibiken/asynq"
)

const TypeHorizonRefresh = "horizon:refresh"

// NewHorizonRefreshTask builds the task that asks the worker to recompute an
// expert's cached available-date sets.
func NewHorizonRefreshTask(expertID string) (*asynq.Task, error) {
	payload, err := json.Marshal(models.HorizonRefreshPayload{ExpertID: expertID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeHorizonRefresh, payload), nil
}

// NewTaskClient returns an asynq client on the queue Redis DB, for services
// that enqueue horizon refreshes.
func NewTaskClient() *asynq.Client {
	return asynq.NewClient(redisOpts())
}

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// InitHorizonWorker runs the async worker in background. It serves the
// refresh tasks enqueued by the booking and expert write paths so learners'
// first horizon reads hit warm cache.
func InitHorizonWorker(availSvc *availability.DefaultService) {
	srv := asynq.NewServer(
		redisOpts(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeHorizonRefresh, handleHorizonRefresh(availSvc))

	// Start async worker with retry logic.
	go func() {
		log.Println("[HorizonWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[HorizonWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[HorizonWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleHorizonRefresh(availSvc *availability.DefaultService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.HorizonRefreshPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[HorizonWorker] invalid payload: %v", err)
			return err
		}
		if p.ExpertID == "" {
			return nil
		}

		if err := availSvc.RefreshAvailableDates(ctx, p.ExpertID); err != nil {
			log.Printf("[HorizonWorker] refresh failed for expert %s: %v", p.ExpertID, err)
			return err
		}
		return nil
	}
}
