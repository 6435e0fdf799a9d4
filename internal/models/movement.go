package models

import (
	"time"

	"github.com/google/uuid"
)

// Movement records one quantity change applied to a stock batch.
type Movement struct {
	ID        uuid.UUID `json:"id" db:"id"`
	BatchID   uuid.UUID `json:"batch_id" db:"batch_id"`
	ShopID    uuid.UUID `json:"shop_id" db:"shop_id"`
	Delta     int       `json:"delta" db:"delta"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
