package domain

import "github.com/shopspring/decimal"

// InitialCatalog возвращает стартовое меню ресторана в авторском порядке.
// Разделы без стартовых позиций присутствуют пустыми.
func InitialCatalog() Catalog {
	buckets := make(map[Category][]MenuItem, len(Categories()))
	for _, category := range Categories() {
		buckets[category] = nil
	}

	for _, item := range seedItems() {
		buckets[item.Category] = append(buckets[item.Category], item)
	}

	catalog, err := NewCatalog(buckets)
	if err != nil {
		panic("domain: invalid seed catalog: " + err.Error())
	}

	return catalog
}

func seedItems() []MenuItem {
	price := decimal.RequireFromString

	healthy := func(id int64, name, description string, amount int64, image string, ingredients ...string) MenuItem {
		p := decimal.NewFromInt(amount)
		item := NewMenuItem(id, name, description, p, CategoryHealthy, image)
		item.Intensity = IntensityFor(p)
		item.Ingredients = ingredients
		return item
	}

	return []MenuItem{
		NewMenuItem(1, "Farmhouse Breakfast", "Eggs, bacon, toast, and seasonal vegetables", price("12.99"), CategoryBreakfast, "🍳"),
		NewMenuItem(2, "Avocado Toast", "Sourdough bread with smashed avocado and poached eggs", price("10.99"), CategoryBreakfast, "🥑"),
		NewMenuItem(3, "Pancake Stack", "Fluffy pancakes with maple syrup and fresh berries", price("9.99"), CategoryBreakfast, "🥞"),
		NewMenuItem(4, "Greek Yogurt Bowl", "Greek yogurt with honey, granola, and mixed berries", price("8.99"), CategoryBreakfast, "🥣"),

		NewMenuItem(5, "Gourmet Burger", "Angus beef burger with special sauce and fries", price("15.99"), CategoryLunch, "🍔"),
		NewMenuItem(6, "Caesar Salad", "Fresh romaine lettuce with parmesan and croutons", price("11.99"), CategoryLunch, "🥗"),
		NewMenuItem(7, "Club Sandwich", "Triple-decker sandwich with turkey and bacon", price("13.99"), CategoryLunch, "🥪"),
		NewMenuItem(8, "Margherita Pizza", "Wood-fired pizza with fresh mozzarella and basil", price("14.99"), CategoryLunch, "🍕"),

		NewMenuItem(9, "Grilled Salmon", "Atlantic salmon with lemon butter sauce and vegetables", price("22.99"), CategoryDinner, "🐟"),
		NewMenuItem(10, "Ribeye Steak", "12oz ribeye with mashed potatoes and asparagus", price("28.99"), CategoryDinner, "🥩"),
		NewMenuItem(11, "Vegetable Pasta", "Fresh pasta with seasonal vegetables in tomato sauce", price("16.99"), CategoryDinner, "🍝"),
		NewMenuItem(12, "Chicken Parmesan", "Breaded chicken with marinara and melted cheese", price("18.99"), CategoryDinner, "🍗"),

		NewMenuItem(13, "Fresh Orange Juice", "Freshly squeezed orange juice", price("4.99"), CategoryDrinks, "🧃"),
		NewMenuItem(14, "Iced Coffee", "Cold brew coffee with milk and syrup", price("3.99"), CategoryDrinks, "🥤"),
		NewMenuItem(15, "Sparkling Water", "Imported sparkling water with lemon", price("2.99"), CategoryDrinks, "💧"),

		healthy(16, "Quinoa Buddha Bowl", "Nutrient-packed bowl with quinoa, roasted vegetables, and tahini dressing.", 45,
			"https://images.pexels.com/photos/1640777/pexels-photo-1640777.jpeg",
			"Quinoa", "Roasted vegetables", "Tahini", "Chickpeas", "Avocado"),
		healthy(17, "Grilled Salmon Plate", "Fresh Atlantic salmon with lemon herb crust and seasonal vegetables.", 65,
			"https://images.pexels.com/photos/361184/asparagus-steak-veal-steak-veal-361184.jpeg",
			"Atlantic salmon", "Lemon", "Fresh herbs", "Asparagus", "Olive oil"),
		healthy(18, "Mediterranean Wrap", "Fresh wrap with hummus, grilled chicken, and Mediterranean vegetables.", 35,
			"https://images.pexels.com/photos/1640777/pexels-photo-1640777.jpeg",
			"Whole wheat wrap", "Hummus", "Grilled chicken", "Tomatoes", "Cucumber"),
		healthy(19, "Acai Power Bowl", "Superfood bowl with acai, granola, and fresh berries.", 28,
			"https://images.pexels.com/photos/1640777/pexels-photo-1640777.jpeg",
			"Acai puree", "Granola", "Mixed berries", "Coconut flakes", "Honey"),
	}
}
