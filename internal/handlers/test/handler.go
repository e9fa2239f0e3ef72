package test

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"arena/transport/http/response"
)

type Handler struct{}

func New() Handler {
	return Handler{}
}

func (h *Handler) Router(r chi.Router) {
	r.Route("/test", func(r chi.Router) {
		r.Get("/", h.Test)
	})
}

func (h *Handler) Test(w http.ResponseWriter, r *http.Request) {
	response.WithJSON(w, http.StatusOK, map[string]string{
		"message": "test",
	})
}
