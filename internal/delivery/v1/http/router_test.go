package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DRSN-tech/kitchen-backend/internal/domain"
	"github.com/DRSN-tech/kitchen-backend/internal/repository/memory"
	"github.com/DRSN-tech/kitchen-backend/internal/usecase"
	"github.com/DRSN-tech/kitchen-backend/pkg/e"
	"github.com/DRSN-tech/kitchen-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type stubPublisher struct {
	err    error
	events []*domain.OrderConfirmed
}

func (p *stubPublisher) PublishOrderConfirmed(_ context.Context, event *domain.OrderConfirmed) error {
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, event)
	return nil
}

type testAPI struct {
	t       *testing.T
	handler http.Handler
	pub     *stubPublisher
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	pub := &stubPublisher{}
	uc := usecase.NewKitchenUC(memory.NewSessionRepo(time.Hour), pub, logger.Nop())

	r := chi.NewRouter()
	NewRouter(r, logger.Nop()).Init(uc)

	return &testAPI{t: t, handler: r, pub: pub}
}

func (a *testAPI) do(method, path string, body any) *httptest.ResponseRecorder {
	a.t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		data, err := json.Marshal(b)
		if err != nil {
			a.t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)

	return rec
}

func (a *testAPI) startSession() string {
	a.t.Helper()

	rec := a.do(http.MethodPost, "/api/v1/sessions", nil)
	if rec.Code != http.StatusCreated {
		a.t.Fatalf("start session: status %d, body %s", rec.Code, rec.Body)
	}

	var res SessionResponse
	decode(a.t, rec, &res)
	return res.ID
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()
	if err := json.NewDecoder(rec.Body).Decode(dst); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func expectStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("status = %d, want %d, body: %s", rec.Code, want, rec.Body)
	}
}

func TestAPI_SessionLifecycle(t *testing.T) {
	api := newTestAPI(t)
	id := api.startSession()

	rec := api.do(http.MethodGet, "/api/v1/sessions/"+id, nil)
	expectStatus(t, rec, http.StatusOK)

	var session SessionResponse
	decode(t, rec, &session)
	if session.ActiveCategory != "breakfast" || session.Cart.TotalPrice != "0.00" || len(session.Categories) != 9 {
		t.Fatalf("unexpected session %+v", session)
	}

	expectStatus(t, api.do(http.MethodDelete, "/api/v1/sessions/"+id, nil), http.StatusNoContent)
	expectStatus(t, api.do(http.MethodGet, "/api/v1/sessions/"+id, nil), http.StatusNotFound)
}

func TestAPI_CartScenario(t *testing.T) {
	api := newTestAPI(t)
	base := "/api/v1/sessions/" + api.startSession()

	rec := api.do(http.MethodPost, base+"/cart/items", AddToCartRequest{ItemID: 2})
	expectStatus(t, rec, http.StatusOK)
	var cart CartResponse
	decode(t, rec, &cart)
	if cart.TotalPrice != "10.99" || cart.ItemCount != 1 {
		t.Fatalf("after add: %+v", cart)
	}

	api.do(http.MethodPost, base+"/cart/items", AddToCartRequest{ItemID: 2})
	rec = api.do(http.MethodPut, base+"/cart/items/2", map[string]int{"quantity": 5})
	expectStatus(t, rec, http.StatusOK)
	decode(t, rec, &cart)
	if cart.TotalPrice != "54.95" || len(cart.Lines) != 1 || cart.Lines[0].Subtotal != "54.95" {
		t.Fatalf("after set 5: %+v", cart)
	}

	rec = api.do(http.MethodPut, base+"/cart/items/2", map[string]int{"quantity": 0})
	expectStatus(t, rec, http.StatusOK)
	decode(t, rec, &cart)
	if cart.TotalPrice != "0.00" || len(cart.Lines) != 0 {
		t.Fatalf("after set 0: %+v", cart)
	}
}

func TestAPI_CartErrors(t *testing.T) {
	api := newTestAPI(t)
	base := "/api/v1/sessions/" + api.startSession()

	tests := []struct {
		name   string
		method string
		path   string
		body   any
		want   int
	}{
		{"unknown item", http.MethodPost, base + "/cart/items", AddToCartRequest{ItemID: 404}, http.StatusNotFound},
		{"missing item id", http.MethodPost, base + "/cart/items", map[string]any{}, http.StatusBadRequest},
		{"malformed body", http.MethodPost, base + "/cart/items", "{", http.StatusBadRequest},
		{"fractional quantity", http.MethodPut, base + "/cart/items/2", `{"quantity": 1.5}`, http.StatusBadRequest},
		{"missing quantity", http.MethodPut, base + "/cart/items/2", `{}`, http.StatusBadRequest},
		{"huge quantity", http.MethodPut, base + "/cart/items/2", `{"quantity": 9223372036854775807}`, http.StatusBadRequest},
		{"bad item id in path", http.MethodDelete, base + "/cart/items/abc", nil, http.StatusBadRequest},
		{"unknown session", http.MethodGet, "/api/v1/sessions/nope/cart", nil, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectStatus(t, api.do(tt.method, tt.path, tt.body), tt.want)
		})
	}
}

func TestAPI_QuantityLimit(t *testing.T) {
	api := newTestAPI(t)
	base := "/api/v1/sessions/" + api.startSession()

	expectStatus(t, api.do(http.MethodPost, base+"/cart/items", AddToCartRequest{ItemID: 2}), http.StatusOK)

	rec := api.do(http.MethodPut, base+"/cart/items/2", map[string]int{"quantity": domain.MaxQuantity + 1})
	expectStatus(t, rec, http.StatusBadRequest)
	var errRes ErrorResponse
	decode(t, rec, &errRes)
	if errRes.Message != e.ErrQuantityTooLarge.Error() {
		t.Fatalf("message = %q", errRes.Message)
	}

	expectStatus(t, api.do(http.MethodPut, base+"/cart/items/2", map[string]int{"quantity": domain.MaxQuantity}), http.StatusOK)
	expectStatus(t, api.do(http.MethodPost, base+"/cart/items", AddToCartRequest{ItemID: 2}), http.StatusBadRequest)

	var cart CartResponse
	decode(t, api.do(http.MethodGet, base+"/cart", nil), &cart)
	if cart.ItemCount != domain.MaxQuantity || len(cart.Lines) != 1 || cart.Lines[0].Quantity != domain.MaxQuantity {
		t.Fatalf("cart = %+v", cart)
	}
}

func TestAPI_Menu(t *testing.T) {
	api := newTestAPI(t)
	base := "/api/v1/sessions/" + api.startSession()

	rec := api.do(http.MethodGet, base+"/menu?category=Drinks", nil)
	expectStatus(t, rec, http.StatusOK)
	var view CategoryResponse
	decode(t, rec, &view)
	if view.Category != "drinks" || len(view.Items) != 3 || view.AveragePrice != "3.99" {
		t.Fatalf("drinks: %+v", view)
	}

	rec = api.do(http.MethodGet, base+"/menu?category=brunch", nil)
	expectStatus(t, rec, http.StatusOK)
	decode(t, rec, &view)
	if len(view.Items) != 0 || view.AveragePrice != "0.00" {
		t.Fatalf("unknown category must give an empty list: %+v", view)
	}

	// без параметра отдаётся активный раздел, он остался drinks
	rec = api.do(http.MethodGet, base+"/menu", nil)
	decode(t, rec, &view)
	if view.Category != "drinks" {
		t.Fatalf("active category = %s, want drinks", view.Category)
	}
}

func TestAPI_AddMenuItem(t *testing.T) {
	api := newTestAPI(t)
	base := "/api/v1/sessions/" + api.startSession()

	rec := api.do(http.MethodPost, base+"/menu", AddMenuItemRequest{
		Name:        "Lentil Soup",
		Description: "Red lentils with cumin",
		Price:       "50",
		Category:    "healthy",
		Ingredients: "Lentils, Cumin",
	})
	expectStatus(t, rec, http.StatusCreated)

	var item MenuItemResponse
	decode(t, rec, &item)
	if item.Price != "50.00" || item.Intensity != "Balanced" || len(item.Ingredients) != 2 || item.ID == 0 {
		t.Fatalf("unexpected item %+v", item)
	}

	rec = api.do(http.MethodGet, base+"/menu?category=healthy", nil)
	var view CategoryResponse
	decode(t, rec, &view)
	if len(view.Items) != 5 || view.Items[4].ID != item.ID {
		t.Fatalf("item must be appended: %+v", view.Items)
	}

	rec = api.do(http.MethodDelete, base+"/menu/healthy/4", nil)
	expectStatus(t, rec, http.StatusOK)
	decode(t, rec, &view)
	if len(view.Items) != 4 {
		t.Fatalf("item must be removed: %+v", view.Items)
	}
}

func TestAPI_AddMenuItemValidation(t *testing.T) {
	api := newTestAPI(t)
	base := "/api/v1/sessions/" + api.startSession()

	valid := func() AddMenuItemRequest {
		return AddMenuItemRequest{Name: "Soup", Description: "Hot", Price: "5.50", Category: "lunch"}
	}

	tests := []struct {
		name   string
		mutate func(r *AddMenuItemRequest)
		want   error
	}{
		{"empty name", func(r *AddMenuItemRequest) { r.Name = " " }, e.ErrItemNameRequired},
		{"empty description", func(r *AddMenuItemRequest) { r.Description = "" }, e.ErrItemDescriptionRequired},
		{"empty price", func(r *AddMenuItemRequest) { r.Price = "" }, e.ErrPriceRequired},
		{"text price", func(r *AddMenuItemRequest) { r.Price = "abc" }, e.ErrInvalidPrice},
		{"zero price", func(r *AddMenuItemRequest) { r.Price = "0" }, e.ErrPriceMustBePositive},
		{"negative price", func(r *AddMenuItemRequest) { r.Price = "-3" }, e.ErrPriceMustBePositive},
		{"three decimals", func(r *AddMenuItemRequest) { r.Price = "1.999" }, e.ErrPricePrecision},
		{"unknown category", func(r *AddMenuItemRequest) { r.Category = "brunch" }, e.ErrUnknownCategory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid()
			tt.mutate(&req)

			rec := api.do(http.MethodPost, base+"/menu", req)
			expectStatus(t, rec, http.StatusBadRequest)

			var res ErrorResponse
			decode(t, rec, &res)
			if res.Message != tt.want.Error() {
				t.Fatalf("message = %q, want %q", res.Message, tt.want.Error())
			}
		})
	}

	rec := api.do(http.MethodGet, base+"/menu?category=lunch", nil)
	var view CategoryResponse
	decode(t, rec, &view)
	if len(view.Items) != 4 {
		t.Fatalf("rejected items must not change the catalog: %d items", len(view.Items))
	}
}

func TestAPI_Checkout(t *testing.T) {
	api := newTestAPI(t)
	base := "/api/v1/sessions/" + api.startSession()

	rec := api.do(http.MethodPost, base+"/checkout", nil)
	expectStatus(t, rec, http.StatusUnprocessableEntity)

	api.do(http.MethodPost, base+"/cart/items", AddToCartRequest{ItemID: 2})
	api.do(http.MethodPost, base+"/cart/items", AddToCartRequest{ItemID: 14})
	api.do(http.MethodPost, base+"/cart/items", AddToCartRequest{ItemID: 14})

	rec = api.do(http.MethodPost, base+"/checkout", nil)
	expectStatus(t, rec, http.StatusOK)
	var summary CheckoutResponse
	decode(t, rec, &summary)
	if summary.Total != "18.97" || summary.ItemCount != 3 {
		t.Fatalf("checkout: %+v", summary)
	}

	rec = api.do(http.MethodPost, base+"/checkout/confirm", ConfirmOrderRequest{ExpectedTotal: "10.00"})
	expectStatus(t, rec, http.StatusConflict)

	rec = api.do(http.MethodPost, base+"/checkout/confirm", ConfirmOrderRequest{ExpectedTotal: summary.Total})
	expectStatus(t, rec, http.StatusCreated)
	var confirmed ConfirmOrderResponse
	decode(t, rec, &confirmed)
	if confirmed.Message != "Your order of $18.97 has been placed successfully!" || confirmed.Cart.ItemCount != 0 {
		t.Fatalf("confirm: %+v", confirmed)
	}
	if len(api.pub.events) != 1 || api.pub.events[0].EventID != confirmed.EventID {
		t.Fatalf("expected one published event, got %d", len(api.pub.events))
	}

	rec = api.do(http.MethodGet, base+"/cart", nil)
	var cart CartResponse
	decode(t, rec, &cart)
	if cart.ItemCount != 0 {
		t.Fatalf("cart must be empty after confirmation: %+v", cart)
	}
}

func TestAPI_ConfirmWithoutBodyAndBrokerDown(t *testing.T) {
	api := newTestAPI(t)
	base := "/api/v1/sessions/" + api.startSession()
	api.pub.err = fmt.Errorf("dial: %w", errors.New("connection refused"))

	api.do(http.MethodPost, base+"/cart/items", AddToCartRequest{ItemID: 7})

	expectStatus(t, api.do(http.MethodPost, base+"/checkout/confirm", nil), http.StatusServiceUnavailable)

	rec := api.do(http.MethodGet, base+"/summary", nil)
	expectStatus(t, rec, http.StatusOK)
	var summary SummaryResponse
	decode(t, rec, &summary)
	if summary.TotalPrice != "13.99" || summary.ItemCount != 1 || summary.AveragePrice != "10.74" {
		t.Fatalf("cart must survive failed publish: %+v", summary)
	}
}

func TestAPI_Categories(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodGet, "/api/v1/categories", nil)
	expectStatus(t, rec, http.StatusOK)

	var keys []string
	decode(t, rec, &keys)
	if len(keys) != 9 || keys[0] != "breakfast" || keys[7] != "mealPlans" {
		t.Fatalf("categories = %v", keys)
	}
}

func TestToHTTPResponse(t *testing.T) {
	tests := []struct {
		err  error
		code int
	}{
		{e.Wrap("op", e.ErrPricePrecision), http.StatusBadRequest},
		{e.ErrValidation, http.StatusBadRequest},
		{e.Wrap("op", e.ErrEmptyCart), http.StatusUnprocessableEntity},
		{e.ErrSessionNotFound, http.StatusNotFound},
		{e.ErrItemNotFound, http.StatusNotFound},
		{e.ErrCartChanged, http.StatusConflict},
		{errors.Join(e.ErrPublishFailed, errors.New("x")), http.StatusServiceUnavailable},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		if code, _ := ToHTTPResponse(tt.err); code != tt.code {
			t.Errorf("ToHTTPResponse(%v) = %d, want %d", tt.err, code, tt.code)
		}
	}
}
