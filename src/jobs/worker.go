package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"course-marketplace/src/apperrors"
	"course-marketplace/src/models"
	"course-marketplace/src/repositories"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// HandlePurchaseReceiptTask บันทึกใบเสร็จการซื้อคอร์ส
func HandlePurchaseReceiptTask(purchases repositories.PurchaseRepository) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var payload PurchaseReceiptPayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			log.Println("❌ Payload decode error:", err)
			return fmt.Errorf("decode payload: %v: %w", err, asynq.SkipRetry)
		}

		courseID, err := primitive.ObjectIDFromHex(payload.CourseID)
		if err != nil {
			return fmt.Errorf("invalid course id %q: %w", payload.CourseID, asynq.SkipRetry)
		}

		receipt := &models.PurchaseReceipt{
			ReceiptID:   payload.ReceiptID,
			Username:    payload.Username,
			CourseID:    courseID,
			Price:       payload.Price,
			PurchasedAt: payload.PurchasedAt,
		}
		err = purchases.InsertReceipt(ctx, receipt)
		if errors.Is(err, apperrors.ErrConflict) {
			log.Println("⚠️ Receipt already recorded. Skipping task:", payload.ReceiptID)
			return nil
		}
		if err != nil {
			log.Println("❌ Failed to record receipt:", err)
			return err
		}

		log.Println("✅ Purchase receipt recorded:", payload.ReceiptID)
		return nil
	}
}

// RegisterHandlers ลงทะเบียน Handler ทั้งหมดของ worker
func RegisterHandlers(mux *asynq.ServeMux, purchases repositories.PurchaseRepository) {
	mux.HandleFunc(TypePurchaseReceipt, HandlePurchaseReceiptTask(purchases))
}

// StartWorker runs the asynq server in the background. Call Shutdown on the result.
func StartWorker(redisURI string, purchases repositories.PurchaseRepository) (*asynq.Server, error) {
	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: redisURI},
		asynq.Config{Concurrency: 5},
	)

	mux := asynq.NewServeMux()
	RegisterHandlers(mux, purchases)

	if err := srv.Start(mux); err != nil {
		return nil, fmt.Errorf("start asynq worker: %w", err)
	}
	log.Println("✅ Asynq worker started")
	return srv, nil
}
