package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/DRSN-tech/kitchen-backend/pkg/e"
	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
	"github.com/shopspring/decimal"
)

const maxBodySize = 1 << 20

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func NewErrorResponse(code int, message string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
	}
}

// validationErrors перечислены от частных к общему: клиенту уходит самое точное сообщение.
var validationErrors = []error{
	e.ErrItemNameRequired,
	e.ErrItemDescriptionRequired,
	e.ErrPriceRequired,
	e.ErrInvalidPrice,
	e.ErrPriceMustBePositive,
	e.ErrPricePrecision,
	e.ErrUnknownCategory,
	e.ErrItemIDRequired,
	e.ErrDuplicateItemID,
	e.ErrQuantityTooLarge,
	e.ErrInvalidQuantity,
	e.ErrInvalidIndex,
	e.ErrStatusBadRequest,
}

func ToHTTPResponse(err error) (int, string) {
	switch {
	case errors.Is(err, e.ErrValidation):
		for _, target := range validationErrors {
			if errors.Is(err, target) {
				return http.StatusBadRequest, target.Error()
			}
		}
		return http.StatusBadRequest, e.ErrValidation.Error()
	case errors.Is(err, e.ErrEmptyCart):
		return http.StatusUnprocessableEntity, "Please add some items to your cart first."
	case errors.Is(err, e.ErrSessionNotFound):
		return http.StatusNotFound, e.ErrSessionNotFound.Error()
	case errors.Is(err, e.ErrItemNotFound):
		return http.StatusNotFound, e.ErrItemNotFound.Error()
	case errors.Is(err, e.ErrCartChanged):
		return http.StatusConflict, e.ErrCartChanged.Error()
	case errors.Is(err, e.ErrPublishFailed):
		return http.StatusServiceUnavailable, e.ErrPublishFailed.Error()
	default:
		return http.StatusInternalServerError, e.ErrInternalServerError.Error()
	}
}

func WriteError(w http.ResponseWriter, err error) {
	code, msg := ToHTTPResponse(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(NewErrorResponse(code, msg))
}

func WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// parsePrice разбирает цену из формы вида "12.5" или "12.50".
// Ошибка, если строка пустая, не число, больше двух знаков после точки или цена <= 0.
func parsePrice(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, e.ErrPriceRequired
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, e.Wrap(s, e.ErrInvalidPrice)
	}

	if !d.IsPositive() {
		return decimal.Zero, e.ErrPriceMustBePositive
	}

	// больше 1 млрд считаем ошибкой ввода
	if d.GreaterThan(decimal.NewFromInt(1_000_000_000)) {
		return decimal.Zero, e.Wrap(s, e.ErrInvalidPrice)
	}

	if d.Exponent() < -2 && !d.Equal(d.Round(2)) {
		return decimal.Zero, e.ErrPricePrecision
	}

	return d, nil
}

// decodeJSON читает тело запроса в dst, отвергая неизвестные поля.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%s: empty body: %w: %w", whereami.WhereAmI(), e.ErrStatusBadRequest, io.EOF)
		}
		return e.Wrap(whereami.WhereAmI()+": "+err.Error(), e.ErrStatusBadRequest)
	}

	return nil
}

func pathItemID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "itemID")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, e.Wrap(raw, e.ErrItemIDRequired)
	}

	return id, nil
}

func pathIndex(r *http.Request) (int, error) {
	raw := chi.URLParam(r, "index")
	idx, err := strconv.Atoi(raw)
	if err != nil || idx < 0 {
		return 0, e.Wrap(raw, e.ErrInvalidIndex)
	}

	return idx, nil
}
