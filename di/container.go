package di

import (
	"context"
	"log"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"

	"eats-scraper/api"
	"eats-scraper/api/ubereats"
	"eats-scraper/config"
	"eats-scraper/dao/redis"
	"eats-scraper/db"
	"eats-scraper/location"
	"eats-scraper/server"
	"eats-scraper/server/handlers"
	services "eats-scraper/service"
	"eats-scraper/session"
	"eats-scraper/storage"
)

// Container holds all application dependencies.
type Container struct {
	RedisClient       db.RedisClient
	RestaurantDao     *redis.RestaurantDAO
	FeedAPI           ubereats.FeedAPI
	FeedArchive       *storage.FeedArchive
	ScraperService    *services.ScraperService
	RestaurantHandler *handlers.RestaurantHandler
	MuxRouter         *mux.Router
	Router            *server.Router
	FeedHttpServer    *server.FeedHttpServer
	Location          location.Location
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(env string, creds session.Credentials, city, state string) *Container {
	log.Printf("initializing container - env: %s", env)
	ctx := context.Background()
	cfg := config.LoadEnvConfig()

	// Resolve the delivery location once from the session cookie, falling
	// back to a placeholder built from the CLI city and state.
	cookieLoc := location.DecodeUEV2Loc(creds.Get(config.LOCATION_COOKIE_NAME))
	loc := location.Resolve(cookieLoc, city, state)

	// Initialize the store: real Redis when an address is configured,
	// otherwise the in-memory client so a plain run needs no infrastructure.
	var redisClient db.RedisClient
	if cfg.RedisAddr != "" {
		redisInternalClient := goredis.NewClient(&goredis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		redisClient = db.NewGeoRedisClient(ctx, redisInternalClient)
	} else {
		log.Printf("REDIS_ADDR not set, using in-memory store")
		redisClient = db.NewMemoryRedisClient(ctx)
	}

	restaurantDao := redis.NewRestaurantDAO(redisClient)

	// Initialize the feed API - mock outside prod
	var feedAPI ubereats.FeedAPI
	if env != "prod" {
		feedAPI = ubereats.NewFeedApiClientMock()
		log.Printf("Using mock feed api")
	} else {
		log.Printf("Using prod feed api")
		var httpClient *api.HTTPClient
		if cfg.InsecureTLS {
			httpClient = api.NewInsecureHTTPClient(config.UBER_EATS_ORIGIN)
		} else {
			httpClient = api.NewHTTPClient(config.UBER_EATS_ORIGIN)
		}
		feedAPI = ubereats.NewFeedApiClient(httpClient, creds, loc)
	}

	// Optional raw-feed archive
	var archive *storage.FeedArchive
	if cfg.MinioEndpoint != "" {
		var err error
		archive, err = storage.NewFeedArchive(cfg)
		if err != nil {
			log.Printf("Feed archive disabled: %v", err)
			archive = nil
		} else if err := archive.EnsureBucket(ctx); err != nil {
			log.Printf("Feed archive disabled, could not ensure bucket: %v", err)
			archive = nil
		}
	}

	scraperService := services.NewScraperService(feedAPI, restaurantDao, archive, loc)

	restaurantHandler := handlers.NewRestaurantHandler(restaurantDao)

	muxRouter := mux.NewRouter()

	router := server.NewRouter(restaurantHandler, muxRouter)

	feedHttpServer := server.NewFeedHttpServer(router, muxRouter)

	return &Container{
		RedisClient:       redisClient,
		RestaurantDao:     restaurantDao,
		FeedAPI:           feedAPI,
		FeedArchive:       archive,
		ScraperService:    scraperService,
		RestaurantHandler: restaurantHandler,
		MuxRouter:         muxRouter,
		Router:            router,
		FeedHttpServer:    feedHttpServer,
		Location:          loc,
	}
}
