package web

import (
	"github.com/gorilla/mux"

	"portly/middleware"
)

func (h *Handler) SetupRoutes() *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.Logging(h.logger))
	r.Use(middleware.CORS())

	r.HandleFunc("/", h.Index).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/scan", h.APIScan).Methods("POST")
	api.HandleFunc("/health", h.APIHealth).Methods("GET")

	return r
}
