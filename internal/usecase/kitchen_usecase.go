package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/DRSN-tech/kitchen-backend/internal/domain"
	"github.com/DRSN-tech/kitchen-backend/pkg/e"
	"github.com/DRSN-tech/kitchen-backend/pkg/logger"
	"github.com/google/uuid"
)

// KitchenUseCase применяет действия пользователя к снапшотам сессии.
// Каждое действие: блокировка сессии → чтение → чистый переход домена → сохранение.
// Если переход вернул ошибку, снапшот не сохраняется.
type KitchenUseCase struct {
	sessions  SessionRepository
	publisher OrderPublisher
	logger    logger.Logger

	locks  sync.Map // session id → *sync.Mutex
	now    func() time.Time
	newID  func() string
	lastID atomic.Int64
}

func NewKitchenUC(sessions SessionRepository, publisher OrderPublisher, logger logger.Logger) *KitchenUseCase {
	return &KitchenUseCase{
		sessions:  sessions,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

// StartSession создаёт сессию со стартовым каталогом и пустой корзиной.
func (k *KitchenUseCase) StartSession(ctx context.Context) (*Session, error) {
	const op = "KitchenUseCase.StartSession"

	now := k.now().UTC()
	session := &Session{
		ID:             k.newID(),
		Catalog:        domain.InitialCatalog(),
		Cart:           domain.Cart{},
		ActiveCategory: domain.CategoryBreakfast,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := k.sessions.Save(ctx, session); err != nil {
		return nil, e.Wrap(op, err)
	}

	k.logger.Debugf("%s: session %s started", op, session.ID)
	return session, nil
}

func (k *KitchenUseCase) GetSession(ctx context.Context, id string) (*Session, error) {
	const op = "KitchenUseCase.GetSession"

	session, err := k.sessions.Get(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return session, nil
}

func (k *KitchenUseCase) EndSession(ctx context.Context, id string) error {
	const op = "KitchenUseCase.EndSession"

	unlock := k.lock(id)
	defer unlock()

	if _, err := k.sessions.Get(ctx, id); err != nil {
		return e.Wrap(op, err)
	}

	if err := k.sessions.Delete(ctx, id); err != nil {
		return e.Wrap(op, err)
	}

	k.locks.Delete(id)
	return nil
}

// SelectCategory делает раздел активным и возвращает его позиции.
// Неизвестный раздел даёт пустой список и не меняет активный раздел.
func (k *KitchenUseCase) SelectCategory(ctx context.Context, req *SelectCategoryReq) (*CategoryView, error) {
	const op = "KitchenUseCase.SelectCategory"

	session, err := k.mutate(ctx, req.SessionID, func(s *Session) error {
		if req.Category.IsValid() {
			s.ActiveCategory = req.Category
		}
		return nil
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewCategoryView(req.Category, session.Catalog.Items(req.Category)), nil
}

// AddMenuItem создаёт позицию из формы и добавляет её в каталог сессии.
func (k *KitchenUseCase) AddMenuItem(ctx context.Context, req *AddMenuItemReq) (*domain.MenuItem, error) {
	const op = "KitchenUseCase.AddMenuItem"

	item := domain.MenuItem{
		ID:          k.nextItemID(),
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		Price:       req.Price,
		Category:    req.Category,
		Image:       strings.TrimSpace(req.Image),
		Intensity:   domain.IntensityFor(req.Price),
		Ingredients: domain.ParseIngredients(req.Ingredients),
	}

	_, err := k.mutate(ctx, req.SessionID, func(s *Session) error {
		catalog, err := s.Catalog.AddItem(item)
		if err != nil {
			return err
		}
		s.Catalog = catalog
		return nil
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	k.logger.Infof("%s: item %d (%s) added to %s", op, item.ID, item.Name, item.Category)
	return &item, nil
}

// RemoveMenuItem удаляет позицию каталога по индексу в разделе. Корзину не трогает.
func (k *KitchenUseCase) RemoveMenuItem(ctx context.Context, req *RemoveMenuItemReq) (*CategoryView, error) {
	const op = "KitchenUseCase.RemoveMenuItem"

	if req.Index < 0 {
		return nil, e.Wrap(op, e.ErrInvalidIndex)
	}

	session, err := k.mutate(ctx, req.SessionID, func(s *Session) error {
		s.Catalog = s.Catalog.RemoveItemAt(req.Category, req.Index)
		return nil
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewCategoryView(req.Category, session.Catalog.Items(req.Category)), nil
}

// AddToCart берёт позицию из каталога сессии и кладёт её в корзину.
func (k *KitchenUseCase) AddToCart(ctx context.Context, req *CartItemReq) (domain.Cart, error) {
	const op = "KitchenUseCase.AddToCart"

	session, err := k.mutate(ctx, req.SessionID, func(s *Session) error {
		item, ok := s.Catalog.Find(req.ItemID)
		if !ok {
			// позиция удалена из каталога, но строка корзины ещё живёт
			line, inCart := s.Cart.Line(req.ItemID)
			if !inCart {
				return e.ErrItemNotFound
			}
			item = line.Item
		}

		if line, ok := s.Cart.Line(item.ID); ok && line.Quantity >= domain.MaxQuantity {
			return e.ErrQuantityTooLarge
		}

		s.Cart = s.Cart.Add(item)
		return nil
	})
	if err != nil {
		return domain.Cart{}, e.Wrap(op, err)
	}

	return session.Cart, nil
}

func (k *KitchenUseCase) SetQuantity(ctx context.Context, req *SetQuantityReq) (domain.Cart, error) {
	const op = "KitchenUseCase.SetQuantity"

	if req.Quantity > domain.MaxQuantity {
		return domain.Cart{}, e.Wrap(op, e.ErrQuantityTooLarge)
	}

	session, err := k.mutate(ctx, req.SessionID, func(s *Session) error {
		s.Cart = s.Cart.SetQuantity(req.ItemID, req.Quantity)
		return nil
	})
	if err != nil {
		return domain.Cart{}, e.Wrap(op, err)
	}

	return session.Cart, nil
}

// RemoveFromCart удаляет строку сразу, запрос подтверждения остаётся на клиенте.
func (k *KitchenUseCase) RemoveFromCart(ctx context.Context, req *CartItemReq) (domain.Cart, error) {
	const op = "KitchenUseCase.RemoveFromCart"

	session, err := k.mutate(ctx, req.SessionID, func(s *Session) error {
		s.Cart = s.Cart.Remove(req.ItemID)
		return nil
	})
	if err != nil {
		return domain.Cart{}, e.Wrap(op, err)
	}

	return session.Cart, nil
}

func (k *KitchenUseCase) ClearCart(ctx context.Context, id string) (domain.Cart, error) {
	const op = "KitchenUseCase.ClearCart"

	session, err := k.mutate(ctx, id, func(s *Session) error {
		s.Cart = s.Cart.Clear()
		return nil
	})
	if err != nil {
		return domain.Cart{}, e.Wrap(op, err)
	}

	return session.Cart, nil
}

// Checkout только считает итог. Корзина не меняется до ConfirmOrder.
func (k *KitchenUseCase) Checkout(ctx context.Context, id string) (*domain.OrderSummary, error) {
	const op = "KitchenUseCase.Checkout"

	session, err := k.sessions.Get(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	summary, err := session.Cart.Checkout()
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return &summary, nil
}

// ConfirmOrder публикует OrderConfirmed и очищает корзину.
// Если публикация не удалась, корзина остаётся прежней.
// EventID детерминирован по сессии и номеру заказа: повтор того же заказа даёт тот же EventID.
func (k *KitchenUseCase) ConfirmOrder(ctx context.Context, req *ConfirmOrderReq) (*ConfirmOrderRes, error) {
	const op = "KitchenUseCase.ConfirmOrder"

	unlock := k.lock(req.SessionID)
	defer unlock()

	current, err := k.sessions.Get(ctx, req.SessionID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	summary, err := current.Cart.Checkout()
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if req.ExpectedTotal != nil && !req.ExpectedTotal.Equal(summary.Total) {
		return nil, e.Wrap(op, e.Wrap("expected "+req.ExpectedTotal.StringFixed(2)+", actual "+summary.Total.StringFixed(2), e.ErrCartChanged))
	}

	event := domain.NewOrderConfirmed(orderEventID(current), current.ID, k.now().UTC(), summary)
	if err := k.publisher.PublishOrderConfirmed(ctx, event); err != nil {
		return nil, e.Wrap(op, errors.Join(e.ErrPublishFailed, err))
	}

	next := *current
	next.Cart = next.Cart.Clear()
	next.OrderSeq++
	next.UpdatedAt = k.now().UTC()

	// заказ уже ушёл брокеру; при повторе он придёт с тем же EventID
	if err := k.sessions.Save(ctx, &next); err != nil {
		k.logger.Errorf(err, "%s: order %s published, session %s not saved", op, event.EventID, current.ID)
	}

	k.logger.Infof("%s: order %s confirmed for session %s, total %s", op, event.EventID, current.ID, event.Summary.Total.StringFixed(2))
	return &ConfirmOrderRes{
		EventID: event.EventID,
		Summary: event.Summary,
		Cart:    next.Cart,
	}, nil
}

// Summary возвращает итоги корзины и среднюю цену активного раздела.
func (k *KitchenUseCase) Summary(ctx context.Context, id string) (*SummaryRes, error) {
	const op = "KitchenUseCase.Summary"

	session, err := k.sessions.Get(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return &SummaryRes{
		TotalPrice:     session.Cart.TotalPrice(),
		ItemCount:      session.Cart.ItemCount(),
		ActiveCategory: session.ActiveCategory,
		AveragePrice:   domain.AveragePrice(session.Catalog.Items(session.ActiveCategory)),
	}, nil
}

// Menu отдаёт раздел стартового каталога.
func (k *KitchenUseCase) Menu(_ context.Context, category domain.Category) (*CategoryView, error) {
	return NewCategoryView(category, domain.InitialCatalog().Items(category)), nil
}

// mutate сериализует действия над одной сессией и сохраняет новый снапшот, только если fn успешна.
func (k *KitchenUseCase) mutate(ctx context.Context, id string, fn func(s *Session) error) (*Session, error) {
	unlock := k.lock(id)
	defer unlock()

	current, err := k.sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	next := *current
	if err := fn(&next); err != nil {
		return nil, err
	}

	next.UpdatedAt = k.now().UTC()
	if err := k.sessions.Save(ctx, &next); err != nil {
		return nil, err
	}

	return &next, nil
}

func (k *KitchenUseCase) lock(id string) func() {
	v, _ := k.locks.LoadOrStore(id, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()

	return mu.Unlock
}

// orderEventID — id события очередного заказа сессии.
func orderEventID(s *Session) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(fmt.Sprintf("%s/%d", s.ID, s.OrderSeq))).String()
}

// nextItemID выдаёт id на основе времени в миллисекундах, строго возрастающие.
func (k *KitchenUseCase) nextItemID() int64 {
	for {
		last := k.lastID.Load()
		id := k.now().UnixMilli()
		if id <= last {
			id = last + 1
		}
		if k.lastID.CompareAndSwap(last, id) {
			return id
		}
	}
}
