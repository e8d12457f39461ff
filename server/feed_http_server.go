package server

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"eats-scraper/config"
)

// FeedHttpServer serves the cached scrape results over HTTP.
type FeedHttpServer struct {
	router    *Router
	muxRouter *mux.Router
}

func NewFeedHttpServer(router *Router, muxRouter *mux.Router) *FeedHttpServer {
	return &FeedHttpServer{
		router:    router,
		muxRouter: muxRouter,
	}
}

// Start runs the server until an interrupt or termination signal arrives,
// then shuts down gracefully.
func (s *FeedHttpServer) Start() {
	s.router.RegisterRoutes()

	srv := &http.Server{
		Addr:    config.SERVER_ADDRESS,
		Handler: s.muxRouter,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("[FeedHttpServer] Starting server on %s", config.SERVER_ADDRESS)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	<-stop
	log.Println("[FeedHttpServer] Shutting down the server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("[FeedHttpServer] Server exiting")
}
