package converter

import (
	"time"

	"github.com/DRSN-tech/kitchen-backend/internal/domain"
)

// SessionRedisModel — JSON-снапшот сессии в Redis.
type SessionRedisModel struct {
	ID             string            `json:"id"`
	Catalog        domain.Catalog    `json:"catalog"`
	Cart           []domain.CartLine `json:"cart"`
	ActiveCategory string            `json:"active_category"`
	OrderSeq       int               `json:"order_seq"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}
