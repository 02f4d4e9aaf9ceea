package usecase

import (
	"time"

	"github.com/DRSN-tech/kitchen-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// SESSION

// Session — единственный держатель состояния клиента: текущие снапшоты каталога и корзины.
type Session struct {
	ID             string
	Catalog        domain.Catalog
	Cart           domain.Cart
	ActiveCategory domain.Category
	OrderSeq       int // число подтверждённых заказов
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// KITCHEN USECASE

// AddMenuItemReq — данные формы новой позиции. Цена уже разобрана слоем доставки.
type AddMenuItemReq struct {
	SessionID   string
	Name        string
	Description string
	Price       decimal.Decimal
	Category    domain.Category
	Image       string
	Ingredients string // через запятую
}

type RemoveMenuItemReq struct {
	SessionID string
	Category  domain.Category
	Index     int
}

type SelectCategoryReq struct {
	SessionID string
	Category  domain.Category
}

// CategoryView — позиции выбранного раздела и их средняя цена.
type CategoryView struct {
	Category     domain.Category
	Items        []domain.MenuItem
	AveragePrice decimal.Decimal
}

type CartItemReq struct {
	SessionID string
	ItemID    int64
}

type SetQuantityReq struct {
	SessionID string
	ItemID    int64
	Quantity  int
}

// ConfirmOrderReq — подтверждение заказа. ExpectedTotal — итог, показанный клиенту при Checkout.
type ConfirmOrderReq struct {
	SessionID     string
	ExpectedTotal *decimal.Decimal
}

type ConfirmOrderRes struct {
	EventID string
	Summary domain.OrderSummary
	Cart    domain.Cart
}

// SummaryRes — производные значения для отображения.
type SummaryRes struct {
	TotalPrice     decimal.Decimal
	ItemCount      int
	ActiveCategory domain.Category
	AveragePrice   decimal.Decimal
}

// MAPPERS

func NewAddMenuItemReq(sessionID, name, description string, price decimal.Decimal, category domain.Category, image, ingredients string) *AddMenuItemReq {
	return &AddMenuItemReq{
		SessionID:   sessionID,
		Name:        name,
		Description: description,
		Price:       price,
		Category:    category,
		Image:       image,
		Ingredients: ingredients,
	}
}

func NewRemoveMenuItemReq(sessionID string, category domain.Category, index int) *RemoveMenuItemReq {
	return &RemoveMenuItemReq{SessionID: sessionID, Category: category, Index: index}
}

func NewSelectCategoryReq(sessionID string, category domain.Category) *SelectCategoryReq {
	return &SelectCategoryReq{SessionID: sessionID, Category: category}
}

func NewCartItemReq(sessionID string, itemID int64) *CartItemReq {
	return &CartItemReq{SessionID: sessionID, ItemID: itemID}
}

func NewSetQuantityReq(sessionID string, itemID int64, quantity int) *SetQuantityReq {
	return &SetQuantityReq{SessionID: sessionID, ItemID: itemID, Quantity: quantity}
}

func NewConfirmOrderReq(sessionID string, expectedTotal *decimal.Decimal) *ConfirmOrderReq {
	return &ConfirmOrderReq{SessionID: sessionID, ExpectedTotal: expectedTotal}
}

func NewCategoryView(category domain.Category, items []domain.MenuItem) *CategoryView {
	return &CategoryView{
		Category:     category,
		Items:        items,
		AveragePrice: domain.AveragePrice(items),
	}
}
