package tasks

import (
	"encoding/json"

	"clinicbook/models"

	"github.com/hibiken/asynq"
)

const TypeEmailConfirmation = "email:confirmation"

func NewConfirmationTask(payload models.ConfirmationPayload) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeEmailConfirmation, b)
	opts := []asynq.Option{asynq.MaxRetry(5), asynq.Queue("default")}

	return task, opts, nil
}
