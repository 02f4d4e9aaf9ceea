package http

import (
	"net/http"

	"github.com/DRSN-tech/kitchen-backend/internal/usecase"
	"github.com/DRSN-tech/kitchen-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
)

// KitchenHandler — REST-обработчики сессии: меню, корзина, заказ.
type KitchenHandler struct {
	kitchenUsecase usecase.KitchenUC
	logger         logger.Logger
}

func NewKitchenHandler(kitchenUsecase usecase.KitchenUC, logger logger.Logger) *KitchenHandler {
	return &KitchenHandler{kitchenUsecase: kitchenUsecase, logger: logger}
}

// startSession
//
//	@Summary		Новая сессия
//	@Description	Создаёт сессию со стартовым меню и пустой корзиной
//	@Tags			sessions
//	@Produce		json
//	@Success		201	{object}	SessionResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/sessions [post]
func (k *KitchenHandler) startSession(w http.ResponseWriter, r *http.Request) {
	session, err := k.kitchenUsecase.StartSession(r.Context())
	if err != nil {
		k.fail(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, newSessionResponse(session))
}

// getSession
//
//	@Summary	Состояние сессии
//	@Tags		sessions
//	@Produce	json
//	@Param		id	path		string	true	"ID сессии"
//	@Success	200	{object}	SessionResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/sessions/{id} [get]
func (k *KitchenHandler) getSession(w http.ResponseWriter, r *http.Request) {
	session, err := k.kitchenUsecase.GetSession(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		k.fail(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newSessionResponse(session))
}

// endSession
//
//	@Summary	Завершение сессии
//	@Tags		sessions
//	@Param		id	path	string	true	"ID сессии"
//	@Success	204
//	@Failure	404	{object}	ErrorResponse
//	@Router		/sessions/{id} [delete]
func (k *KitchenHandler) endSession(w http.ResponseWriter, r *http.Request) {
	if err := k.kitchenUsecase.EndSession(r.Context(), chi.URLParam(r, "id")); err != nil {
		k.fail(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// getSummary
//
//	@Summary		Итоги
//	@Description	Сумма и число позиций в корзине, средняя цена активного раздела
//	@Tags			sessions
//	@Produce		json
//	@Param			id	path		string	true	"ID сессии"
//	@Success		200	{object}	SummaryResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/sessions/{id}/summary [get]
func (k *KitchenHandler) getSummary(w http.ResponseWriter, r *http.Request) {
	res, err := k.kitchenUsecase.Summary(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		k.fail(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newSummaryResponse(res))
}

// listCategories
//
//	@Summary	Ключи разделов меню
//	@Tags		menu
//	@Produce	json
//	@Success	200	{array}	string
//	@Router		/categories [get]
func (k *KitchenHandler) listCategories(w http.ResponseWriter, _ *http.Request) {
	WriteSuccess(w, http.StatusOK, categoryKeys())
}

// fail логирует ошибку с уровнем по статусу и пишет ответ.
func (k *KitchenHandler) fail(w http.ResponseWriter, err error) {
	code, msg := ToHTTPResponse(err)
	if code >= http.StatusInternalServerError {
		k.logger.Errorf(err, "%d %s", code, msg)
	} else {
		k.logger.Warnf("%d %s: %s", code, msg, err.Error())
	}

	WriteError(w, err)
}
