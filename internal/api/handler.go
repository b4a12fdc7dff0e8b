package api

import (
	_ "embed"
	"encoding/json"
	"log"
	"net/http"

	"nearby-places/internal/model"
	"nearby-places/internal/service"
)

//go:embed static/index.html
var indexHTML []byte

// Handler handles HTTP requests
type Handler struct {
	service service.ServiceInterface
}

// NewHandler creates a new handler instance
func NewHandler(service service.ServiceInterface) *Handler {
	return &Handler{service: service}
}

// Index handles GET / and GET /index.html
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(indexHTML)
}

// NearbyRestaurants handles POST /nearby_restaurants
func (h *Handler) NearbyRestaurants(w http.ResponseWriter, r *http.Request) {
	var req model.NearbySearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	response, err := h.service.NearbyRestaurants(r.Context(), req)
	if err != nil {
		log.Printf("Error handling nearby restaurants: %v", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("Error encoding response: %v", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}
