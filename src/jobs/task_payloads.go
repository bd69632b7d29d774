package jobs

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const TypePurchaseReceipt = "purchase:receipt"

type PurchaseReceiptPayload struct {
	ReceiptID   string    `json:"receipt_id"`
	Username    string    `json:"username"`
	CourseID    string    `json:"course_id"`
	Price       float64   `json:"price"`
	PurchasedAt time.Time `json:"purchased_at"`
}

func NewPurchaseReceiptTask(payload PurchaseReceiptPayload) (*asynq.Task, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypePurchaseReceipt, b), nil
}
