package events

import (
	"time"

	"github.com/DRSN-tech/kitchen-backend/internal/domain"
	"github.com/DRSN-tech/kitchen-backend/pkg/e"
	"github.com/jimlawless/whereami"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

// ContentType — тип содержимого сообщения о заказе.
const ContentType = "application/x-protobuf"

// Encode сериализует OrderConfirmed в protobuf Struct.
// Цены передаются строками с двумя знаками, чтобы не терять точность.
func Encode(event *domain.OrderConfirmed) ([]byte, error) {
	lines := make([]any, 0, len(event.Summary.Lines))
	for _, line := range event.Summary.Lines {
		lines = append(lines, map[string]any{
			"item_id":    line.Item.ID,
			"name":       line.Item.Name,
			"category":   line.Item.Category.String(),
			"unit_price": line.Item.Price.StringFixed(2),
			"quantity":   line.Quantity,
			"subtotal":   line.Subtotal().StringFixed(2),
		})
	}

	payload, err := structpb.NewStruct(map[string]any{
		"event_id":    event.EventID,
		"session_id":  event.SessionID,
		"occurred_at": event.OccurredAt.UTC().Format(time.RFC3339Nano),
		"total":       event.Summary.Total.StringFixed(2),
		"item_count":  event.Summary.ItemCount,
		"lines":       lines,
	})
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return proto.Marshal(payload)
}

// Decode разбирает сообщение, записанное Encode.
func Decode(data []byte) (*structpb.Struct, error) {
	var payload structpb.Struct
	if err := proto.Unmarshal(data, &payload); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &payload, nil
}
