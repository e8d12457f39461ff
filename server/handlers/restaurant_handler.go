package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"eats-scraper/dao/redis"
)

const (
	CITY_QUERY_ARG   = "city"
	STATE_QUERY_ARG  = "state"
	LAT_QUERY_ARG    = "lat"
	LON_QUERY_ARG    = "lon"
	RADIUS_QUERY_ARG = "radius"
)

type RestaurantHandler struct {
	restaurantDao *redis.RestaurantDAO
}

func NewRestaurantHandler(restaurantDao *redis.RestaurantDAO) *RestaurantHandler {
	return &RestaurantHandler{restaurantDao: restaurantDao}
}

// GetRestaurants serves the cached scrape snapshot for ?city=&state=.
func (h *RestaurantHandler) GetRestaurants(w http.ResponseWriter, r *http.Request) {
	vals := r.URL.Query()
	city := vals.Get(CITY_QUERY_ARG)
	state := vals.Get(STATE_QUERY_ARG)
	if city == "" || state == "" {
		http.Error(w, "Missing required arguments city and state", http.StatusBadRequest)
		return
	}

	results, err := h.restaurantDao.GetSnapshot(city, state)
	if err != nil {
		log.Printf("No snapshot for %s, %s: %v", city, state, err)
		http.Error(w, "No results for this location", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(results); err != nil {
		log.Println("Error encoding response:", err)
	}
}

// GetRestaurantsNearby serves geo-indexed records around ?lat=&lon=&radius=.
func (h *RestaurantHandler) GetRestaurantsNearby(w http.ResponseWriter, r *http.Request) {
	vals := r.URL.Query()

	lat, err := parseArgFloat64(vals, LAT_QUERY_ARG)
	if err != nil {
		http.Error(w, "Invalid argument "+LAT_QUERY_ARG, http.StatusBadRequest)
		return
	}
	lon, err := parseArgFloat64(vals, LON_QUERY_ARG)
	if err != nil {
		http.Error(w, "Invalid argument "+LON_QUERY_ARG, http.StatusBadRequest)
		return
	}
	radius, err := parseArgFloat64(vals, RADIUS_QUERY_ARG)
	if err != nil {
		http.Error(w, "Invalid argument "+RADIUS_QUERY_ARG, http.StatusBadRequest)
		return
	}

	records, err := h.restaurantDao.GetNearbyRestaurants(lat, lon, radius)
	if err != nil {
		log.Println("Error loading nearby restaurants:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(records); err != nil {
		log.Println("Error encoding response:", err)
	}
}

// Ping handles GET /ping
func (h *RestaurantHandler) Ping(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "pong"})
}

func parseArgFloat64(vals url.Values, name string) (float64, error) {
	s := vals.Get(name)
	return strconv.ParseFloat(s, 64)
}
