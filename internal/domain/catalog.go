package domain

import (
	"encoding/json"
	"fmt"

	"github.com/DRSN-tech/kitchen-backend/pkg/e"
	"github.com/shopspring/decimal"
)

// Catalog — снапшот меню: раздел → упорядоченный список позиций.
// Значение неизменяемо, все операции возвращают новый Catalog.
type Catalog struct {
	buckets map[Category][]MenuItem
}

// NewCatalog собирает каталог из готовых разделов, проверяя,
// что каждая позиция лежит в разделе своей категории и id уникальны.
func NewCatalog(buckets map[Category][]MenuItem) (Catalog, error) {
	res := Catalog{buckets: make(map[Category][]MenuItem, len(buckets))}
	seen := make(map[int64]struct{})

	for category, items := range buckets {
		if !category.IsValid() {
			return Catalog{}, e.Wrap(string(category), e.ErrUnknownCategory)
		}

		bucket := make([]MenuItem, 0, len(items))
		for _, item := range items {
			if item.Category != category {
				return Catalog{}, e.Wrap(
					fmt.Sprintf("item %d has category %q in bucket %q", item.ID, item.Category, category),
					e.ErrCorruptedSnapshot,
				)
			}

			if _, ok := seen[item.ID]; ok {
				return Catalog{}, e.Wrap(fmt.Sprintf("item %d", item.ID), e.ErrDuplicateItemID)
			}
			seen[item.ID] = struct{}{}

			bucket = append(bucket, item.clone())
		}

		res.buckets[category] = bucket
	}

	return res, nil
}

// AddItem валидирует позицию и добавляет её в конец раздела item.Category.
// При ошибке исходный каталог не меняется.
func (c Catalog) AddItem(item MenuItem) (Catalog, error) {
	if err := item.Validate(); err != nil {
		return c, err
	}

	if _, ok := c.Find(item.ID); ok {
		return c, e.Wrap(fmt.Sprintf("item %d", item.ID), e.ErrDuplicateItemID)
	}

	old := c.buckets[item.Category]
	bucket := make([]MenuItem, len(old), len(old)+1)
	copy(bucket, old)
	bucket = append(bucket, item.clone())

	return c.withBucket(item.Category, bucket), nil
}

// RemoveItemAt удаляет позицию раздела по индексу. Индекс вне диапазона — no-op.
func (c Catalog) RemoveItemAt(category Category, index int) Catalog {
	old := c.buckets[category]
	if index < 0 || index >= len(old) {
		return c
	}

	bucket := make([]MenuItem, 0, len(old)-1)
	bucket = append(bucket, old[:index]...)
	bucket = append(bucket, old[index+1:]...)

	return c.withBucket(category, bucket)
}

// Items возвращает копию раздела; для отсутствующего раздела — пустой список.
func (c Catalog) Items(category Category) []MenuItem {
	bucket := c.buckets[category]
	res := make([]MenuItem, len(bucket))
	for i, item := range bucket {
		res[i] = item.clone()
	}

	return res
}

func (c Catalog) Len(category Category) int {
	return len(c.buckets[category])
}

// Find ищет позицию по id во всех разделах.
func (c Catalog) Find(id int64) (MenuItem, bool) {
	for _, bucket := range c.buckets {
		for _, item := range bucket {
			if item.ID == id {
				return item.clone(), true
			}
		}
	}

	return MenuItem{}, false
}

// withBucket копирует карту разделов, разделяя неизменённые срезы с исходником.
func (c Catalog) withBucket(category Category, bucket []MenuItem) Catalog {
	buckets := make(map[Category][]MenuItem, len(c.buckets)+1)
	for k, v := range c.buckets {
		buckets[k] = v
	}
	buckets[category] = bucket

	return Catalog{buckets: buckets}
}

// AveragePrice — средняя цена, округлённая до копеек. Для пустого списка 0.
func AveragePrice(items []MenuItem) decimal.Decimal {
	if len(items) == 0 {
		return decimal.Zero
	}

	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(item.Price)
	}

	return sum.Div(decimal.NewFromInt(int64(len(items)))).Round(2)
}

func (c Catalog) MarshalJSON() ([]byte, error) {
	out := make(map[Category][]MenuItem, len(c.buckets))
	for _, category := range Categories() {
		out[category] = c.Items(category)
	}

	return json.Marshal(out)
}

func (c *Catalog) UnmarshalJSON(data []byte) error {
	var raw map[Category][]MenuItem
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	restored, err := NewCatalog(raw)
	if err != nil {
		return err
	}

	*c = restored
	return nil
}
