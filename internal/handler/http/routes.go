package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer)

	// request/response routes are bounded by the request timeout
	router.Group(func(r chi.Router) {
		if h.requestTimeout > 0 {
			r.Use(middleware.Timeout(h.requestTimeout))
		}

		r.Group(func(r chi.Router) {
			r.Use(middleware.Compress(5, "application/json"))

			r.Get("/db/", h.listDeliveries)
			r.Get("/db/{id}", h.getDelivery)
		})

		r.Put("/db/", h.insertDelivery)
		r.Delete("/db/", h.deleteAllDeliveries)
		r.Put("/db/transactional", h.updateTransactional)
		r.Delete("/db/{id}", h.deleteDelivery)
		r.Post("/db/{id}/{food}/{address}/{status}", h.insertAndNotify)
		r.Put("/db/{id}/{food}/{address}/{status}", h.updateDelivery)

		r.Post("/crypto/encrypt", h.encrypt)
		r.Post("/crypto/decrypt", h.decrypt)

		r.Get("/health", h.health)
	})

	// long-lived
	router.Get("/ws/messages", h.streamNotices)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
