package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"margin_engine/pkg/httpx/reply"
)

func (s Server) RegisterRoutes(r chi.Router) {
	r.Route("/v1", func(r chi.Router) {
		r.Route("/pricing", func(r chi.Router) {
			r.Post("/optimize", handler(s.postV1PricingOptimize))
			r.Get("/segments", handler(s.getV1PricingSegments))
			r.Get("/seasons", handler(s.getV1PricingSeasons))
		})

		r.Route("/market", func(r chi.Router) {
			r.Get("/products", handler(s.getV1MarketProducts))
			r.Get("/positioning", handler(s.getV1MarketPositioning))
		})
	})
}

func handler(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			reply.Error(r.Context(), w, err)
		}
	}
}
