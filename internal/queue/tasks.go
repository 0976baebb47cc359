package queue

import (
	"encoding/json"

	"github.com/sugarloaf/bakehouse/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskLoyaltyRecount recomputes one customer's loyalty standing.
	TaskLoyaltyRecount = constants.TaskLoyaltyRecount
)

// LoyaltyRecountPayload identifies the customer to recount.
type LoyaltyRecountPayload struct {
	UserID uint `json:"user_id"`
}

// NewLoyaltyRecountTask builds a recount task.
func NewLoyaltyRecountTask(payload LoyaltyRecountPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskLoyaltyRecount, body), nil
}
