package domain

import (
	"encoding/json"
	"fmt"

	"github.com/DRSN-tech/kitchen-backend/pkg/e"
	"github.com/shopspring/decimal"
)

// MaxQuantity — верхняя граница количества одной строки.
const MaxQuantity = 999

// CartLine — строка корзины. В корзине не больше одной строки на item.ID, 1 <= Quantity <= MaxQuantity.
type CartLine struct {
	Item     MenuItem `json:"item"`
	Quantity int      `json:"quantity"`
}

// Subtotal — цена строки: Item.Price * Quantity.
func (l CartLine) Subtotal() decimal.Decimal {
	return l.Item.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart — неизменяемый снапшот корзины. Нулевое значение — пустая корзина.
type Cart struct {
	lines []CartLine
}

// RestoreCart восстанавливает корзину из сохранённых строк, проверяя инварианты.
func RestoreCart(lines []CartLine) (Cart, error) {
	seen := make(map[int64]struct{}, len(lines))
	res := make([]CartLine, 0, len(lines))

	for _, line := range lines {
		if line.Quantity < 1 || line.Quantity > MaxQuantity {
			return Cart{}, e.Wrap(fmt.Sprintf("item %d has quantity %d", line.Item.ID, line.Quantity), e.ErrCorruptedSnapshot)
		}

		if _, ok := seen[line.Item.ID]; ok {
			return Cart{}, e.Wrap(fmt.Sprintf("item %d appears twice", line.Item.ID), e.ErrCorruptedSnapshot)
		}
		seen[line.Item.ID] = struct{}{}

		res = append(res, CartLine{Item: line.Item.clone(), Quantity: line.Quantity})
	}

	if len(res) == 0 {
		return Cart{}, nil
	}

	return Cart{lines: res}, nil
}

// Add увеличивает количество существующей строки на 1 или добавляет новую строку в конец.
// Поля позиции в существующей строке не перезаписываются. Строка на MaxQuantity не растёт.
func (c Cart) Add(item MenuItem) Cart {
	if idx := c.indexOf(item.ID); idx >= 0 {
		if c.lines[idx].Quantity >= MaxQuantity {
			return c
		}
		lines := c.copyLines(0)
		lines[idx].Quantity++
		return Cart{lines: lines}
	}

	lines := c.copyLines(1)
	lines = append(lines, CartLine{Item: item.clone(), Quantity: 1})

	return Cart{lines: lines}
}

// SetQuantity заменяет количество строки. quantity <= 0 эквивалентно Remove,
// значение больше MaxQuantity обрезается до MaxQuantity. Отсутствующий id — no-op.
func (c Cart) SetQuantity(itemID int64, quantity int) Cart {
	if quantity <= 0 {
		return c.Remove(itemID)
	}
	quantity = min(quantity, MaxQuantity)

	idx := c.indexOf(itemID)
	if idx < 0 {
		return c
	}

	lines := c.copyLines(0)
	lines[idx].Quantity = quantity

	return Cart{lines: lines}
}

// Remove исключает строку с itemID. Отсутствующий id — no-op.
func (c Cart) Remove(itemID int64) Cart {
	idx := c.indexOf(itemID)
	if idx < 0 {
		return c
	}

	if len(c.lines) == 1 {
		return Cart{}
	}

	lines := make([]CartLine, 0, len(c.lines)-1)
	lines = append(lines, c.lines[:idx]...)
	lines = append(lines, c.lines[idx+1:]...)

	return Cart{lines: lines}
}

func (c Cart) Clear() Cart {
	return Cart{}
}

// TotalPrice — сумма Subtotal всех строк, округлённая до 2 знаков.
func (c Cart) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, line := range c.lines {
		total = total.Add(line.Subtotal())
	}

	return total.Round(2)
}

// ItemCount — сумма количеств по всем строкам.
func (c Cart) ItemCount() int {
	count := 0
	for _, line := range c.lines {
		count += line.Quantity
	}

	return count
}

func (c Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

func (c Cart) Len() int {
	return len(c.lines)
}

// Lines возвращает копию строк в порядке добавления.
func (c Cart) Lines() []CartLine {
	return c.copyLines(0)
}

// Line возвращает строку по id позиции.
func (c Cart) Line(itemID int64) (CartLine, bool) {
	idx := c.indexOf(itemID)
	if idx < 0 {
		return CartLine{}, false
	}

	line := c.lines[idx]
	line.Item = line.Item.clone()

	return line, true
}

// Checkout считает итог заказа, не изменяя корзину.
// Очистка корзины — отдельный шаг после подтверждения.
func (c Cart) Checkout() (OrderSummary, error) {
	if c.IsEmpty() {
		return OrderSummary{}, e.ErrEmptyCart
	}

	return OrderSummary{
		Total:     c.TotalPrice(),
		ItemCount: c.ItemCount(),
		Lines:     c.Lines(),
	}, nil
}

func (c Cart) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Lines())
}

func (c *Cart) UnmarshalJSON(data []byte) error {
	var lines []CartLine
	if err := json.Unmarshal(data, &lines); err != nil {
		return err
	}

	restored, err := RestoreCart(lines)
	if err != nil {
		return err
	}

	*c = restored
	return nil
}

func (c Cart) indexOf(itemID int64) int {
	for i, line := range c.lines {
		if line.Item.ID == itemID {
			return i
		}
	}

	return -1
}

// copyLines копирует строки с запасом ёмкости extra под append.
func (c Cart) copyLines(extra int) []CartLine {
	lines := make([]CartLine, len(c.lines), len(c.lines)+extra)
	copy(lines, c.lines)

	return lines
}
