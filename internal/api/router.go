package api

import (
	"net/http"

	"nearby-places/internal/service"
	"nearby-places/internal/stats"

	"github.com/gorilla/mux"
)

// NewRouter creates a new HTTP router
func NewRouter(service service.ServiceInterface, statsCollector *stats.Collector, proxy *ProxyHandler) *mux.Router {
	handler := NewHandler(service)
	statsHandler := NewStatsHandler(statsCollector)

	router := mux.NewRouter()

	router.HandleFunc("/", handler.Index).Methods("GET")
	router.HandleFunc("/index.html", handler.Index).Methods("GET")
	router.HandleFunc("/nearby_restaurants", handler.NearbyRestaurants).Methods("POST")
	router.HandleFunc("/client_request_response", proxy.RequestResponse).Methods("GET")
	router.HandleFunc("/stats", statsHandler.GetStats).Methods("GET")

	router.NotFoundHandler = http.HandlerFunc(notFound)
	router.MethodNotAllowedHandler = http.HandlerFunc(notFound)

	return router
}

func notFound(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotFound)
	w.Write([]byte("Not Found"))
}
