package usecase

import (
	"context"

	"github.com/DRSN-tech/kitchen-backend/internal/domain"
)

type KitchenUC interface {
	StartSession(ctx context.Context) (*Session, error)
	GetSession(ctx context.Context, id string) (*Session, error)
	EndSession(ctx context.Context, id string) error

	SelectCategory(ctx context.Context, req *SelectCategoryReq) (*CategoryView, error)
	AddMenuItem(ctx context.Context, req *AddMenuItemReq) (*domain.MenuItem, error)
	RemoveMenuItem(ctx context.Context, req *RemoveMenuItemReq) (*CategoryView, error)

	AddToCart(ctx context.Context, req *CartItemReq) (domain.Cart, error)
	SetQuantity(ctx context.Context, req *SetQuantityReq) (domain.Cart, error)
	RemoveFromCart(ctx context.Context, req *CartItemReq) (domain.Cart, error)
	ClearCart(ctx context.Context, id string) (domain.Cart, error)

	Checkout(ctx context.Context, id string) (*domain.OrderSummary, error)
	ConfirmOrder(ctx context.Context, req *ConfirmOrderReq) (*ConfirmOrderRes, error)
	Summary(ctx context.Context, id string) (*SummaryRes, error)
}

// MenuReader — чтение стартового меню без сессии (gRPC).
type MenuReader interface {
	Menu(ctx context.Context, category domain.Category) (*CategoryView, error)
}
