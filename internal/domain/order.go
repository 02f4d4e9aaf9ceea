package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderSummary — результат Checkout: итог к оплате и состав заказа.
type OrderSummary struct {
	Total     decimal.Decimal `json:"total"`
	ItemCount int             `json:"item_count"`
	Lines     []CartLine      `json:"lines"`
}

// OrderConfirmed — событие подтверждённого заказа, уходит в брокер.
type OrderConfirmed struct {
	EventID    string
	SessionID  string
	OccurredAt time.Time
	Summary    OrderSummary
}

func NewOrderConfirmed(eventID, sessionID string, occurredAt time.Time, summary OrderSummary) *OrderConfirmed {
	return &OrderConfirmed{
		EventID:    eventID,
		SessionID:  sessionID,
		OccurredAt: occurredAt,
		Summary:    summary,
	}
}
