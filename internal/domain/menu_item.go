package domain

import (
	"strings"

	"github.com/DRSN-tech/kitchen-backend/pkg/e"
	"github.com/shopspring/decimal"
)

// Intensity — характеристика блюда, выводимая из цены.
type Intensity string

const (
	IntensityMild     Intensity = "Mild"
	IntensityBalanced Intensity = "Balanced"
	IntensityStrong   Intensity = "Strong"
)

var (
	balancedFrom = decimal.NewFromInt(45)
	strongFrom   = decimal.NewFromInt(65)
)

// IntensityFor: < 45 Mild, [45, 65) Balanced, >= 65 Strong.
func IntensityFor(price decimal.Decimal) Intensity {
	switch {
	case price.LessThan(balancedFrom):
		return IntensityMild
	case price.LessThan(strongFrom):
		return IntensityBalanced
	default:
		return IntensityStrong
	}
}

// MenuItem описывает позицию меню. После создания не изменяется.
type MenuItem struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    Category        `json:"category"`
	Image       string          `json:"image,omitempty"` // URI или эмодзи
	Intensity   Intensity       `json:"intensity,omitempty"`
	Ingredients []string        `json:"ingredients,omitempty"`
}

func NewMenuItem(id int64, name, description string, price decimal.Decimal, category Category, image string) MenuItem {
	return MenuItem{
		ID:          id,
		Name:        name,
		Description: description,
		Price:       price,
		Category:    category,
		Image:       image,
	}
}

// Validate проверяет обязательные поля позиции перед добавлением в каталог.
func (m MenuItem) Validate() error {
	if m.ID == 0 {
		return e.ErrItemIDRequired
	}

	if strings.TrimSpace(m.Name) == "" {
		return e.ErrItemNameRequired
	}

	if strings.TrimSpace(m.Description) == "" {
		return e.ErrItemDescriptionRequired
	}

	if !m.Price.IsPositive() {
		return e.ErrPriceMustBePositive
	}

	if !m.Category.IsValid() {
		return e.Wrap(string(m.Category), e.ErrUnknownCategory)
	}

	return nil
}

// ParseIngredients разбивает строку вида "a, b ,c" на список, пропуская пустые элементы.
func ParseIngredients(s string) []string {
	parts := strings.Split(s, ",")
	res := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			res = append(res, p)
		}
	}

	if len(res) == 0 {
		return nil
	}

	return res
}

func (m MenuItem) clone() MenuItem {
	if m.Ingredients != nil {
		m.Ingredients = append([]string(nil), m.Ingredients...)
	}

	return m
}
