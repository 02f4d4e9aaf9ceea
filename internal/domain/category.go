package domain

import (
	"strings"

	"github.com/DRSN-tech/kitchen-backend/pkg/e"
)

// Category — закрытое перечисление разделов меню.
type Category string

const (
	CategoryBreakfast   Category = "breakfast"
	CategoryLunch       Category = "lunch"
	CategoryDinner      Category = "dinner"
	CategoryDrinks      Category = "drinks"
	CategoryHealthy     Category = "healthy"
	CategorySignature   Category = "signature"
	CategoryCatering    Category = "catering"
	CategoryMealPlans   Category = "mealPlans"
	CategorySpecialties Category = "specialties"
)

// Categories перечисляет все разделы в порядке отображения.
func Categories() []Category {
	return []Category{
		CategoryBreakfast,
		CategoryLunch,
		CategoryDinner,
		CategoryDrinks,
		CategoryHealthy,
		CategorySignature,
		CategoryCatering,
		CategoryMealPlans,
		CategorySpecialties,
	}
}

func (c Category) IsValid() bool {
	switch c {
	case CategoryBreakfast, CategoryLunch, CategoryDinner, CategoryDrinks, CategoryHealthy,
		CategorySignature, CategoryCatering, CategoryMealPlans, CategorySpecialties:
		return true
	default:
		return false
	}
}

func (c Category) String() string {
	return string(c)
}

// ParseCategory сопоставляет ключ раздела без учёта регистра.
func ParseCategory(s string) (Category, error) {
	key := strings.TrimSpace(s)
	for _, c := range Categories() {
		if strings.EqualFold(string(c), key) {
			return c, nil
		}
	}

	return "", e.Wrap(key, e.ErrUnknownCategory)
}
