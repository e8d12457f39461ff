package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RestaurantHandler is the set of endpoints the router wires up.
type RestaurantHandler interface {
	GetRestaurants(w http.ResponseWriter, r *http.Request)
	GetRestaurantsNearby(w http.ResponseWriter, r *http.Request)
	Ping(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	restaurantHandler RestaurantHandler
	router            *mux.Router
}

// NewRouter creates a router with the app's routes.
func NewRouter(
	restaurantHandler RestaurantHandler,
	router *mux.Router) *Router {
	return &Router{
		restaurantHandler: restaurantHandler,
		router:            router,
	}
}

func (r *Router) RegisterRoutes() {
	// expects ?city={city}&state={state}
	r.router.HandleFunc("/v1/restaurants", r.restaurantHandler.GetRestaurants).Methods("GET")

	// expects ?lat={latitude(float)}&lon={longitude(float)}&radius={radius(float)}
	r.router.HandleFunc("/v1/restaurants/nearby", r.restaurantHandler.GetRestaurantsNearby).Methods("GET")

	r.router.HandleFunc("/ping", r.restaurantHandler.Ping).Methods("GET")
}
