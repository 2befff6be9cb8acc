package server

import (
	"net/http"

	"bucket-list-client/server/handlers"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Router struct {
	venueHandler      *handlers.VenueHandler
	bucketListHandler *handlers.BucketListHandler
	locationHandler   *handlers.LocationHandler
	authHandler       *handlers.AuthHandler
	debugHandler      *handlers.DebugHandler
	gatherer          prometheus.Gatherer
	router            *mux.Router
}

// NewRouter creates a router with the app’s routes.
func NewRouter(
	venueHandler *handlers.VenueHandler,
	bucketListHandler *handlers.BucketListHandler,
	locationHandler *handlers.LocationHandler,
	authHandler *handlers.AuthHandler,
	debugHandler *handlers.DebugHandler,
	gatherer prometheus.Gatherer,
	router *mux.Router) *Router {
	return &Router{
		venueHandler:      venueHandler,
		bucketListHandler: bucketListHandler,
		locationHandler:   locationHandler,
		authHandler:       authHandler,
		debugHandler:      debugHandler,
		gatherer:          gatherer,
		router:            router,
	}
}

func (r *Router) RegisterRoutes() {
	r.router.HandleFunc("/ping", r.venueHandler.Ping).Methods("GET")
	r.router.HandleFunc("/debug/state", r.debugHandler.State).Methods("GET")
	r.router.HandleFunc("/debug/map", r.debugHandler.Map).Methods("GET")
	r.router.Handle("/metrics", promhttp.HandlerFor(r.gatherer, promhttp.HandlerOpts{})).Methods("GET")

	v1 := r.router.PathPrefix("/v1").Subrouter()

	v1.HandleFunc("/location", r.locationHandler.GetUserLocation).Methods("POST")

	// optional JSON body or ?lat={latitude}&lon={longitude}&radius={meters}&limit=&query=&categories=
	v1.HandleFunc("/venues/nearby", r.venueHandler.FetchNearby).Methods("POST")
	v1.HandleFunc("/venues/recommended", r.venueHandler.FetchRecommended).Methods("POST")
	v1.HandleFunc("/venues/search", r.venueHandler.Search).Methods("POST")
	v1.HandleFunc("/venues/{id}", r.venueHandler.GetVenue).Methods("GET")

	// "nearby" is registered before "{id}" so it is not taken for an item id
	v1.HandleFunc("/bucket-list", r.bucketListHandler.List).Methods("GET")
	v1.HandleFunc("/bucket-list", r.bucketListHandler.Add).Methods("POST")
	v1.HandleFunc("/bucket-list/nearby", r.bucketListHandler.Nearby).Methods("GET")
	v1.HandleFunc("/bucket-list/{id}", r.bucketListHandler.Update).Methods("PATCH")
	v1.HandleFunc("/bucket-list/{id}", r.bucketListHandler.Remove).Methods("DELETE")
	v1.HandleFunc("/bucket-list/{id}/visited", r.bucketListHandler.MarkVisited).Methods("POST")

	v1.HandleFunc("/auth/login", r.authHandler.Login).Methods("POST")
	v1.HandleFunc("/auth/logout", r.authHandler.Logout).Methods("POST")

	r.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error": "Not found"}`))
	})
}
