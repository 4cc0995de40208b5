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
)

// StillOpenHttpServer owns the HTTP listener and its graceful shutdown.
type StillOpenHttpServer struct {
	router    *Router
	muxRouter *mux.Router
	address   string
}

func NewStillOpenHttpServer(router *Router, muxRouter *mux.Router, address string) *StillOpenHttpServer {
	return &StillOpenHttpServer{
		router:    router,
		muxRouter: muxRouter,
		address:   address,
	}
}

// Start registers routes, serves until SIGINT/SIGTERM, then drains with a
// 5 second deadline.
func (s *StillOpenHttpServer) Start() {
	s.router.RegisterRoutes()

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.muxRouter,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("[StillOpenHttpServer] Listening on %s", s.address)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	<-stop
	log.Println("[StillOpenHttpServer] Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("[StillOpenHttpServer] Server exiting")
}
