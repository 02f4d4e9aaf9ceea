package usecase

import (
	"context"

	"github.com/DRSN-tech/kitchen-backend/internal/domain"
)

type OrderPublisher interface {
	PublishOrderConfirmed(ctx context.Context, event *domain.OrderConfirmed) error
}
