// SPDX-License-Identifier: MIT
//
// File: server.go
// Role: HTTP facade over a transit.Network.
// Policy:
//   - The network is shared read-only by all requests; no locking.
//   - Errors map to status codes by sentinel: ErrStationNotFound → 404,
//     ErrNoRoute → 422, missing parameters → 400.

// Package server exposes route queries over HTTP.
//
// Endpoints:
//
//	GET /route?from=<id|name>&to=<id|name>  → transit.Route as JSON
//	GET /stations                          → []transit.Stop as JSON
//	GET /lines                             → []string as JSON
package server

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/katalvlaran/lvroute/transit"
)

// Server answers route requests for one network.
type Server struct {
	net    *transit.Network
	logger *log.Logger
	router *mux.Router
}

// errorBody is the JSON shape of every non-2xx response.
type errorBody struct {
	Error string `json:"error"`
}

// New wires the routes. A nil logger discards output.
func New(net *transit.Network, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	s := &Server{net: net, logger: logger, router: mux.NewRouter()}
	s.RegisterRoutes(s.router)

	return s
}

// RegisterRoutes attaches the handlers to router.
func (s *Server) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/route", s.handleRoute).Methods(http.MethodGet)
	router.HandleFunc("/stations", s.handleStations).Methods(http.MethodGet)
	router.HandleFunc("/lines", s.handleLines).Methods(http.MethodGet)
}

// Handler returns the root http.Handler.
func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) handleRoute(w http.ResponseWriter, r *http.Request) {
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")
	if from == "" || to == "" {
		s.writeJSON(w, http.StatusBadRequest, errorBody{Error: "both from and to are required"})
		return
	}

	route, err := s.net.Route(from, to)
	switch {
	case errors.Is(err, transit.ErrStationNotFound):
		s.writeJSON(w, http.StatusNotFound, errorBody{Error: err.Error()})
		return
	case errors.Is(err, transit.ErrNoRoute):
		s.writeJSON(w, http.StatusUnprocessableEntity, errorBody{Error: err.Error()})
		return
	case err != nil:
		s.logger.Printf("route %q → %q: %v", from, to, err)
		s.writeJSON(w, http.StatusInternalServerError, errorBody{Error: "internal error"})
		return
	}

	s.logger.Printf("route %s → %s: %d legs, %.2f km", route.From, route.To, len(route.Legs), route.Kilometres)
	s.writeJSON(w, http.StatusOK, route)
}

func (s *Server) handleStations(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, s.net.Stops())
}

func (s *Server) handleLines(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, s.net.Lines())
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Printf("encode response: %v", err)
	}
}
