package kafka

import (
	"testing"
	"time"

	"github.com/DRSN-tech/kitchen-backend/internal/domain"
	"github.com/DRSN-tech/kitchen-backend/internal/infrastructure/events"
)

func TestNewOrderMessage(t *testing.T) {
	item, _ := domain.InitialCatalog().Find(9)
	summary, err := domain.Cart{}.Add(item).Checkout()
	if err != nil {
		t.Fatalf("Checkout: %v", err)
	}
	at := time.Date(2026, 2, 3, 4, 5, 6, 0, time.UTC)
	event := domain.NewOrderConfirmed("evt-9", "session-9", at, summary)

	msg, err := NewOrderMessage(event)
	if err != nil {
		t.Fatalf("NewOrderMessage: %v", err)
	}

	if string(msg.Key) != "session-9" {
		t.Errorf("key = %q, want session id", msg.Key)
	}
	if !msg.Time.Equal(at) {
		t.Errorf("time = %v, want %v", msg.Time, at)
	}
	if len(msg.Headers) != 2 || string(msg.Headers[0].Value) != "evt-9" {
		t.Errorf("unexpected headers %+v", msg.Headers)
	}

	payload, err := events.Decode(msg.Value)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got := payload.GetFields()["total"].GetStringValue(); got != "22.99" {
		t.Errorf("total = %q, want 22.99", got)
	}
}
