package http

import (
	"net/http"
	"strings"

	"github.com/DRSN-tech/kitchen-backend/internal/domain"
	"github.com/DRSN-tech/kitchen-backend/internal/usecase"
	"github.com/go-chi/chi/v5"
)

// selectCategory
//
//	@Summary		Выбор раздела меню
//	@Description	Делает раздел активным и возвращает его позиции. Неизвестный раздел даёт пустой список.
//	@Tags			menu
//	@Produce		json
//	@Param			id			path		string	true	"ID сессии"
//	@Param			category	query		string	false	"Раздел; по умолчанию активный"
//	@Success		200			{object}	CategoryResponse
//	@Failure		404			{object}	ErrorResponse
//	@Router			/sessions/{id}/menu [get]
func (k *KitchenHandler) selectCategory(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	raw := strings.TrimSpace(r.URL.Query().Get("category"))
	var category domain.Category
	if raw == "" {
		session, err := k.kitchenUsecase.GetSession(r.Context(), id)
		if err != nil {
			k.fail(w, err)
			return
		}
		category = session.ActiveCategory
	} else if parsed, err := domain.ParseCategory(raw); err == nil {
		category = parsed
	} else {
		category = domain.Category(raw)
	}

	view, err := k.kitchenUsecase.SelectCategory(r.Context(), usecase.NewSelectCategoryReq(id, category))
	if err != nil {
		k.fail(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newCategoryResponse(view))
}

// addMenuItem
//
//	@Summary		Новая позиция меню
//	@Description	Добавляет позицию в раздел. Цена > 0, не больше двух знаков после точки; интенсивность считается по цене.
//	@Tags			menu
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"ID сессии"
//	@Param			item	body		AddMenuItemRequest	true	"Форма позиции"
//	@Success		201		{object}	MenuItemResponse
//	@Failure		400		{object}	ErrorResponse	"Ошибка валидации"
//	@Failure		404		{object}	ErrorResponse
//	@Router			/sessions/{id}/menu [post]
func (k *KitchenHandler) addMenuItem(w http.ResponseWriter, r *http.Request) {
	var req AddMenuItemRequest
	if err := decodeJSON(w, r, &req); err != nil {
		k.fail(w, err)
		return
	}

	price, err := parsePrice(req.Price)
	if err != nil {
		k.fail(w, err)
		return
	}

	category, err := domain.ParseCategory(req.Category)
	if err != nil {
		k.fail(w, err)
		return
	}

	item, err := k.kitchenUsecase.AddMenuItem(r.Context(), usecase.NewAddMenuItemReq(
		chi.URLParam(r, "id"), req.Name, req.Description, price, category, req.Image, req.Ingredients,
	))
	if err != nil {
		k.fail(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, newMenuItemResponse(*item))
}

// removeMenuItem
//
//	@Summary		Удаление позиции меню
//	@Description	Удаляет позицию по индексу в разделе. Индекс вне диапазона ничего не меняет.
//	@Tags			menu
//	@Produce		json
//	@Param			id			path		string	true	"ID сессии"
//	@Param			category	path		string	true	"Раздел"
//	@Param			index		path		int		true	"Индекс в разделе"
//	@Success		200			{object}	CategoryResponse
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Router			/sessions/{id}/menu/{category}/{index} [delete]
func (k *KitchenHandler) removeMenuItem(w http.ResponseWriter, r *http.Request) {
	category, err := domain.ParseCategory(chi.URLParam(r, "category"))
	if err != nil {
		k.fail(w, err)
		return
	}

	index, err := pathIndex(r)
	if err != nil {
		k.fail(w, err)
		return
	}

	view, err := k.kitchenUsecase.RemoveMenuItem(r.Context(), usecase.NewRemoveMenuItemReq(chi.URLParam(r, "id"), category, index))
	if err != nil {
		k.fail(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newCategoryResponse(view))
}
