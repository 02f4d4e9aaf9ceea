package http

import (
	"net/http"
	"time"

	_ "github.com/DRSN-tech/kitchen-backend/docs" // регистрация swagger-документа
	"github.com/DRSN-tech/kitchen-backend/internal/usecase"
	"github.com/DRSN-tech/kitchen-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

func (r *Router) Init(kitchenUC usecase.KitchenUC) {
	r.router.Use(middleware.RequestID)
	r.router.Use(middleware.Recoverer)
	r.router.Use(r.logRequests)

	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	r.router.Route("/api/v1", func(v1 chi.Router) {
		kitchenHandler := NewKitchenHandler(kitchenUC, r.logger)
		registerSessionRoutes(v1, kitchenHandler)
	})
}

func registerSessionRoutes(router chi.Router, h *KitchenHandler) {
	router.Get("/categories", h.listCategories)

	router.Route("/sessions", func(s chi.Router) {
		s.Post("/", h.startSession)

		s.Route("/{id}", func(ss chi.Router) {
			ss.Get("/", h.getSession)
			ss.Delete("/", h.endSession)
			ss.Get("/summary", h.getSummary)

			ss.Get("/menu", h.selectCategory)
			ss.Post("/menu", h.addMenuItem)
			ss.Delete("/menu/{category}/{index}", h.removeMenuItem)

			ss.Get("/cart", h.getCart)
			ss.Delete("/cart", h.clearCart)
			ss.Post("/cart/items", h.addToCart)
			ss.Put("/cart/items/{itemID}", h.setQuantity)
			ss.Delete("/cart/items/{itemID}", h.removeFromCart)

			ss.Post("/checkout", h.checkout)
			ss.Post("/checkout/confirm", h.confirmOrder)
		})
	})
}

func (r *Router) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, req.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, req)

		r.logger.Debugf("%s %s %d %s [%s]", req.Method, req.URL.Path, ww.Status(), time.Since(start), middleware.GetReqID(req.Context()))
	})
}
