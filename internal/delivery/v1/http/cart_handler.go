package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/DRSN-tech/kitchen-backend/internal/usecase"
	"github.com/DRSN-tech/kitchen-backend/pkg/e"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

// getCart
//
//	@Summary	Корзина
//	@Tags		cart
//	@Produce	json
//	@Param		id	path		string	true	"ID сессии"
//	@Success	200	{object}	CartResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/sessions/{id}/cart [get]
func (k *KitchenHandler) getCart(w http.ResponseWriter, r *http.Request) {
	session, err := k.kitchenUsecase.GetSession(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		k.fail(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newCartResponse(session.Cart))
}

// addToCart
//
//	@Summary		Добавить в корзину
//	@Description	Повторное добавление увеличивает количество на 1
//	@Tags			cart
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"ID сессии"
//	@Param			item	body		AddToCartRequest	true	"ID позиции меню"
//	@Success		200		{object}	CartResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/sessions/{id}/cart/items [post]
func (k *KitchenHandler) addToCart(w http.ResponseWriter, r *http.Request) {
	var req AddToCartRequest
	if err := decodeJSON(w, r, &req); err != nil {
		k.fail(w, err)
		return
	}

	if req.ItemID == 0 {
		k.fail(w, e.ErrItemIDRequired)
		return
	}

	cart, err := k.kitchenUsecase.AddToCart(r.Context(), usecase.NewCartItemReq(chi.URLParam(r, "id"), req.ItemID))
	if err != nil {
		k.fail(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newCartResponse(cart))
}

// setQuantity
//
//	@Summary		Изменить количество
//	@Description	Количество <= 0 удаляет строку; отсутствующая позиция ничего не меняет
//	@Tags			cart
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"ID сессии"
//	@Param			itemID	path		int					true	"ID позиции"
//	@Param			body	body		SetQuantityRequest	true	"Новое количество"
//	@Success		200		{object}	CartResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/sessions/{id}/cart/items/{itemID} [put]
func (k *KitchenHandler) setQuantity(w http.ResponseWriter, r *http.Request) {
	itemID, err := pathItemID(r)
	if err != nil {
		k.fail(w, err)
		return
	}

	var req SetQuantityRequest
	if err := decodeJSON(w, r, &req); err != nil {
		k.fail(w, e.Wrap(err.Error(), e.ErrInvalidQuantity))
		return
	}
	if req.Quantity == nil {
		k.fail(w, e.ErrInvalidQuantity)
		return
	}

	cart, err := k.kitchenUsecase.SetQuantity(r.Context(), usecase.NewSetQuantityReq(chi.URLParam(r, "id"), itemID, *req.Quantity))
	if err != nil {
		k.fail(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newCartResponse(cart))
}

// removeFromCart
//
//	@Summary	Удалить строку корзины
//	@Tags		cart
//	@Produce	json
//	@Param		id		path		string	true	"ID сессии"
//	@Param		itemID	path		int		true	"ID позиции"
//	@Success	200		{object}	CartResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse
//	@Router		/sessions/{id}/cart/items/{itemID} [delete]
func (k *KitchenHandler) removeFromCart(w http.ResponseWriter, r *http.Request) {
	itemID, err := pathItemID(r)
	if err != nil {
		k.fail(w, err)
		return
	}

	cart, err := k.kitchenUsecase.RemoveFromCart(r.Context(), usecase.NewCartItemReq(chi.URLParam(r, "id"), itemID))
	if err != nil {
		k.fail(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newCartResponse(cart))
}

// clearCart
//
//	@Summary	Очистить корзину
//	@Tags		cart
//	@Produce	json
//	@Param		id	path		string	true	"ID сессии"
//	@Success	200	{object}	CartResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/sessions/{id}/cart [delete]
func (k *KitchenHandler) clearCart(w http.ResponseWriter, r *http.Request) {
	cart, err := k.kitchenUsecase.ClearCart(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		k.fail(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newCartResponse(cart))
}

// checkout
//
//	@Summary		Оформление заказа
//	@Description	Считает итог. Корзина не меняется до подтверждения.
//	@Tags			orders
//	@Produce		json
//	@Param			id	path		string	true	"ID сессии"
//	@Success		200	{object}	CheckoutResponse
//	@Failure		404	{object}	ErrorResponse
//	@Failure		422	{object}	ErrorResponse	"Корзина пуста"
//	@Router			/sessions/{id}/checkout [post]
func (k *KitchenHandler) checkout(w http.ResponseWriter, r *http.Request) {
	summary, err := k.kitchenUsecase.Checkout(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		k.fail(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newCheckoutResponse(summary))
}

// confirmOrder
//
//	@Summary		Подтверждение заказа
//	@Description	Публикует событие заказа и очищает корзину. Если expected_total не совпадает с текущим итогом, возвращает 409.
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"ID сессии"
//	@Param			body	body		ConfirmOrderRequest	false	"Итог, показанный при оформлении"
//	@Success		201		{object}	ConfirmOrderResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse	"Корзина изменилась"
//	@Failure		422		{object}	ErrorResponse	"Корзина пуста"
//	@Failure		503		{object}	ErrorResponse	"Брокер недоступен"
//	@Router			/sessions/{id}/checkout/confirm [post]
func (k *KitchenHandler) confirmOrder(w http.ResponseWriter, r *http.Request) {
	// тело необязательно
	var req ConfirmOrderRequest
	if err := decodeJSON(w, r, &req); err != nil && !errors.Is(err, io.EOF) {
		k.fail(w, err)
		return
	}

	var expected *decimal.Decimal
	if req.ExpectedTotal != "" {
		d, err := decimal.NewFromString(req.ExpectedTotal)
		if err != nil {
			k.fail(w, e.Wrap(req.ExpectedTotal, e.ErrInvalidPrice))
			return
		}
		expected = &d
	}

	res, err := k.kitchenUsecase.ConfirmOrder(r.Context(), usecase.NewConfirmOrderReq(chi.URLParam(r, "id"), expected))
	if err != nil {
		k.fail(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, newConfirmOrderResponse(res))
}
