package jobs

import (
	"context"
	"log"

	"github.com/hibiken/asynq"
)

// ReceiptQueue enqueues purchase receipts. A nil client means Redis is not
// configured and receipts are skipped.
type ReceiptQueue struct {
	client *asynq.Client
}

func NewReceiptQueue(client *asynq.Client) *ReceiptQueue {
	return &ReceiptQueue{client: client}
}

func (q *ReceiptQueue) EnqueuePurchaseReceipt(ctx context.Context, payload PurchaseReceiptPayload) error {
	if q == nil || q.client == nil {
		log.Println("⚠️ Asynq client not initialized, skipping purchase receipt:", payload.ReceiptID)
		return nil
	}

	task, err := NewPurchaseReceiptTask(payload)
	if err != nil {
		return err
	}
	_, err = q.client.EnqueueContext(ctx, task,
		asynq.TaskID("receipt-"+payload.ReceiptID),
		asynq.MaxRetry(3),
	)
	return err
}
