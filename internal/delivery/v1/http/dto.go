package http

import (
	"fmt"
	"time"

	"github.com/DRSN-tech/kitchen-backend/internal/domain"
	"github.com/DRSN-tech/kitchen-backend/internal/usecase"
)

// REQUESTS

// AddMenuItemRequest — форма новой позиции. Цена приходит строкой, как её ввёл пользователь.
type AddMenuItemRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Category    string `json:"category"`
	Image       string `json:"image"`
	Ingredients string `json:"ingredients"`
}

type AddToCartRequest struct {
	ItemID int64 `json:"item_id"`
}

type SetQuantityRequest struct {
	Quantity *int `json:"quantity"`
}

type ConfirmOrderRequest struct {
	ExpectedTotal string `json:"expected_total,omitempty"`
}

// RESPONSES

type MenuItemResponse struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       string   `json:"price"`
	Category    string   `json:"category"`
	Image       string   `json:"image,omitempty"`
	Intensity   string   `json:"intensity,omitempty"`
	Ingredients []string `json:"ingredients,omitempty"`
}

type CartLineResponse struct {
	Item     MenuItemResponse `json:"item"`
	Quantity int              `json:"quantity"`
	Subtotal string           `json:"subtotal"`
}

type CartResponse struct {
	Lines      []CartLineResponse `json:"lines"`
	TotalPrice string             `json:"total_price"`
	ItemCount  int                `json:"item_count"`
}

type CategoryResponse struct {
	Category     string             `json:"category"`
	Items        []MenuItemResponse `json:"items"`
	AveragePrice string             `json:"average_price"`
}

type SessionResponse struct {
	ID             string       `json:"id"`
	ActiveCategory string       `json:"active_category"`
	Categories     []string     `json:"categories"`
	Cart           CartResponse `json:"cart"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

type CheckoutResponse struct {
	Total     string             `json:"total"`
	ItemCount int                `json:"item_count"`
	Lines     []CartLineResponse `json:"lines"`
	Message   string             `json:"message"`
}

type ConfirmOrderResponse struct {
	EventID   string       `json:"event_id"`
	Total     string       `json:"total"`
	ItemCount int          `json:"item_count"`
	Message   string       `json:"message"`
	Cart      CartResponse `json:"cart"`
}

type SummaryResponse struct {
	TotalPrice     string `json:"total_price"`
	ItemCount      int    `json:"item_count"`
	ActiveCategory string `json:"active_category"`
	AveragePrice   string `json:"average_price"`
}

// MAPPERS

func newMenuItemResponse(item domain.MenuItem) MenuItemResponse {
	return MenuItemResponse{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price.StringFixed(2),
		Category:    item.Category.String(),
		Image:       item.Image,
		Intensity:   string(item.Intensity),
		Ingredients: item.Ingredients,
	}
}

func newMenuItemsResponse(items []domain.MenuItem) []MenuItemResponse {
	res := make([]MenuItemResponse, 0, len(items))
	for _, item := range items {
		res = append(res, newMenuItemResponse(item))
	}

	return res
}

func newCartLinesResponse(lines []domain.CartLine) []CartLineResponse {
	res := make([]CartLineResponse, 0, len(lines))
	for _, line := range lines {
		res = append(res, CartLineResponse{
			Item:     newMenuItemResponse(line.Item),
			Quantity: line.Quantity,
			Subtotal: line.Subtotal().StringFixed(2),
		})
	}

	return res
}

func newCartResponse(cart domain.Cart) CartResponse {
	return CartResponse{
		Lines:      newCartLinesResponse(cart.Lines()),
		TotalPrice: cart.TotalPrice().StringFixed(2),
		ItemCount:  cart.ItemCount(),
	}
}

func newCategoryResponse(view *usecase.CategoryView) CategoryResponse {
	return CategoryResponse{
		Category:     view.Category.String(),
		Items:        newMenuItemsResponse(view.Items),
		AveragePrice: view.AveragePrice.StringFixed(2),
	}
}

func newSessionResponse(session *usecase.Session) SessionResponse {
	return SessionResponse{
		ID:             session.ID,
		ActiveCategory: session.ActiveCategory.String(),
		Categories:     categoryKeys(),
		Cart:           newCartResponse(session.Cart),
		CreatedAt:      session.CreatedAt,
		UpdatedAt:      session.UpdatedAt,
	}
}

func newCheckoutResponse(summary *domain.OrderSummary) CheckoutResponse {
	return CheckoutResponse{
		Total:     summary.Total.StringFixed(2),
		ItemCount: summary.ItemCount,
		Lines:     newCartLinesResponse(summary.Lines),
		Message:   fmt.Sprintf("Your order of $%s is ready to be placed.", summary.Total.StringFixed(2)),
	}
}

func newConfirmOrderResponse(res *usecase.ConfirmOrderRes) ConfirmOrderResponse {
	return ConfirmOrderResponse{
		EventID:   res.EventID,
		Total:     res.Summary.Total.StringFixed(2),
		ItemCount: res.Summary.ItemCount,
		Message:   fmt.Sprintf("Your order of $%s has been placed successfully!", res.Summary.Total.StringFixed(2)),
		Cart:      newCartResponse(res.Cart),
	}
}

func newSummaryResponse(res *usecase.SummaryRes) SummaryResponse {
	return SummaryResponse{
		TotalPrice:     res.TotalPrice.StringFixed(2),
		ItemCount:      res.ItemCount,
		ActiveCategory: res.ActiveCategory.String(),
		AveragePrice:   res.AveragePrice.StringFixed(2),
	}
}

func categoryKeys() []string {
	categories := domain.Categories()
	res := make([]string, 0, len(categories))
	for _, c := range categories {
		res = append(res, c.String())
	}

	return res
}
