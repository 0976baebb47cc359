package worker

import (
	"context"
	"testing"

	"github.com/sugarloaf/bakehouse/internal/queue"

	"github.com/hibiken/asynq"
)

func TestHandleLoyaltyRecountBadPayload(t *testing.T) {
	consumer := &Consumer{}
	task := asynq.NewTask(queue.TaskLoyaltyRecount, []byte("not-json"))
	if err := consumer.handleLoyaltyRecount(context.Background(), task); err == nil {
		t.Fatalf("expected error for malformed payload")
	}
}

func TestHandleLoyaltyRecountZeroUserID(t *testing.T) {
	consumer := &Consumer{}
	task := asynq.NewTask(queue.TaskLoyaltyRecount, []byte(`{"user_id":0}`))
	if err := consumer.handleLoyaltyRecount(context.Background(), task); err != nil {
		t.Fatalf("zero user id should be skipped, got %v", err)
	}
}

func TestHandleLoyaltyRecountNilTask(t *testing.T) {
	consumer := &Consumer{}
	if err := consumer.handleLoyaltyRecount(context.Background(), nil); err != nil {
		t.Fatalf("nil task should be skipped, got %v", err)
	}
}
