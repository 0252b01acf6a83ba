package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/popeskul/moments-broadcast/internal/api"
	"github.com/popeskul/moments-broadcast/internal/middleware"
)

func setupRouter(handler api.ServerInterface, openAPIPath string) http.Handler {
	r := chi.NewRouter()

	r.Get("/api/openapi.yaml", func(w http.ResponseWriter, req *http.Request) {
		http.ServeFile(w, req, openAPIPath)
	})

	return api.HandlerWithOptions(handler, r, paramError)
}

func paramError(w http.ResponseWriter, r *http.Request, err error) {
	middleware.WriteError(w, r, http.StatusBadRequest, middleware.ErrorCodeValidation, err.Error())
}
