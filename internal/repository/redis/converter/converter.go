package converter

import (
	"github.com/DRSN-tech/kitchen-backend/internal/domain"
	"github.com/DRSN-tech/kitchen-backend/internal/usecase"
	"github.com/DRSN-tech/kitchen-backend/pkg/e"
)

type SessionConverter interface {
	ToRedisModel(entity *usecase.Session) *SessionRedisModel
	ToUseCase(model *SessionRedisModel) (*usecase.Session, error)
}

type sessionConverter struct{}

func NewSessionConverter() SessionConverter {
	return sessionConverter{}
}

func (sessionConverter) ToRedisModel(entity *usecase.Session) *SessionRedisModel {
	return &SessionRedisModel{
		ID:             entity.ID,
		Catalog:        entity.Catalog,
		Cart:           entity.Cart.Lines(),
		ActiveCategory: entity.ActiveCategory.String(),
		OrderSeq:       entity.OrderSeq,
		CreatedAt:      entity.CreatedAt,
		UpdatedAt:      entity.UpdatedAt,
	}
}

// ToUseCase восстанавливает сессию, заново проверяя инварианты корзины и раздела.
func (sessionConverter) ToUseCase(model *SessionRedisModel) (*usecase.Session, error) {
	const op = "sessionConverter.ToUseCase"

	cart, err := domain.RestoreCart(model.Cart)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	active := domain.Category(model.ActiveCategory)
	if !active.IsValid() {
		return nil, e.Wrap(op+": active category "+model.ActiveCategory, e.ErrCorruptedSnapshot)
	}

	return &usecase.Session{
		ID:             model.ID,
		Catalog:        model.Catalog,
		Cart:           cart,
		ActiveCategory: active,
		OrderSeq:       model.OrderSeq,
		CreatedAt:      model.CreatedAt,
		UpdatedAt:      model.UpdatedAt,
	}, nil
}
