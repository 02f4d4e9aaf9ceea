package grpc

import (
	"context"

	"github.com/DRSN-tech/kitchen-backend/internal/domain"
	"github.com/DRSN-tech/kitchen-backend/internal/proto"
	"github.com/DRSN-tech/kitchen-backend/internal/usecase"
	"github.com/DRSN-tech/kitchen-backend/pkg/e"
	"github.com/DRSN-tech/kitchen-backend/pkg/logger"
)

type MenuService struct {
	proto.UnimplementedMenuServiceServer
	menu   usecase.MenuReader
	logger logger.Logger
}

func NewMenuService(menu usecase.MenuReader, logger logger.Logger) *MenuService {
	return &MenuService{menu: menu, logger: logger}
}

func (g *MenuService) GetMenu(ctx context.Context, req *proto.GetMenuRequest) (*proto.GetMenuResponse, error) {
	const op = "grpc.GetMenu"

	category, err := domain.ParseCategory(req.GetCategory())
	if err != nil {
		g.logger.Warnf("%s: %v", op, err)
		return nil, GRPCErrorResponse(e.Wrap(op, err))
	}

	view, err := g.menu.Menu(ctx, category)
	if err != nil {
		g.logger.Errorf(e.Wrap(op, err), "%s", op)
		return nil, GRPCErrorResponse(e.Wrap(op, err))
	}

	return &proto.GetMenuResponse{
		Category:     view.Category.String(),
		Items:        toArrGRPCMenuItem(view.Items),
		AveragePrice: view.AveragePrice.StringFixed(2),
	}, nil
}

func toGRPCMenuItem(item *domain.MenuItem) *proto.MenuItem {
	return &proto.MenuItem{
		Id:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price.StringFixed(2),
		Category:    item.Category.String(),
		Image:       item.Image,
		Intensity:   string(item.Intensity),
		Ingredients: append([]string(nil), item.Ingredients...),
	}
}

func toArrGRPCMenuItem(items []domain.MenuItem) []*proto.MenuItem {
	res := make([]*proto.MenuItem, len(items))
	for i := range items {
		res[i] = toGRPCMenuItem(&items[i])
	}

	return res
}
