package api

import (
	"net/http"

	_ "fxalerts/docs"
	alerthandler "fxalerts/internal/alert/handler"
	chathandler "fxalerts/internal/chat/handler"
	ratehandler "fxalerts/internal/rate/handler"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	swagger "github.com/swaggo/http-swagger"
)

type Handlers struct {
	Rate         *ratehandler.Handler
	Subscription *alerthandler.Handler
	Chat         *chathandler.Handler
	Metrics      http.Handler
}

func NewRouter(h Handlers) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.Heartbeat("/healthz"))

	// Swagger UI
	router.Get("/swagger/*", swagger.WrapHandler)
	if h.Metrics != nil {
		router.Method(http.MethodGet, "/metrics", h.Metrics)
	}

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/convert", h.Rate.Convert)
		r.Get("/symbols", h.Rate.GetSupportedSymbols)
		r.Get("/rates/{base:[A-Za-z]{2,6}}/{quote:[A-Za-z]{2,6}}", h.Rate.GetByCodes)

		r.Route("/users/{userID}", func(r chi.Router) {
			r.Get("/subscriptions", h.Subscription.ListSubscriptions)
			r.Post("/subscriptions", h.Subscription.CreateSubscription)
			r.Delete("/subscriptions/{base}/{quote}", h.Subscription.DeleteSubscription)
			r.Post("/messages", h.Chat.PostMessage)
		})
	})
	return router
}
