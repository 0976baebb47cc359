package worker

import (
	"context"
	"encoding/json"

	"github.com/sugarloaf/bakehouse/internal/logger"
	"github.com/sugarloaf/bakehouse/internal/provider"
	"github.com/sugarloaf/bakehouse/internal/queue"

	"github.com/hibiken/asynq"
)

// Consumer handles background tasks.
type Consumer struct {
	*provider.Container
}

// NewConsumer creates the consumer.
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register binds task handlers.
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskLoyaltyRecount, c.handleLoyaltyRecount)
}

func (c *Consumer) handleLoyaltyRecount(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_loyalty_recount_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.LoyaltyRecountPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_loyalty_recount_unmarshal_failed", "error", err)
		return err
	}
	if payload.UserID == 0 {
		logger.Debugw("worker_loyalty_recount_skip_invalid_payload", "user_id", payload.UserID)
		return nil
	}
	if c.LoyaltyService == nil {
		logger.Warnw("worker_loyalty_recount_skip_service_nil", "user_id", payload.UserID)
		return nil
	}
	if err := c.LoyaltyService.Recount(payload.UserID); err != nil {
		logger.Warnw("worker_loyalty_recount_failed", "user_id", payload.UserID, "error", err)
		return err
	}
	return nil
}
