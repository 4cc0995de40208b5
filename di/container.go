package di

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"

	"github.com/donaldchunggit/WhatStillOpenSydney/api"
	"github.com/donaldchunggit/WhatStillOpenSydney/api/places"
	"github.com/donaldchunggit/WhatStillOpenSydney/config"
	"github.com/donaldchunggit/WhatStillOpenSydney/dao/redis"
	"github.com/donaldchunggit/WhatStillOpenSydney/db"
	"github.com/donaldchunggit/WhatStillOpenSydney/ranking"
	"github.com/donaldchunggit/WhatStillOpenSydney/server"
	"github.com/donaldchunggit/WhatStillOpenSydney/server/handlers"
	services "github.com/donaldchunggit/WhatStillOpenSydney/service"
)

// Container holds all application dependencies.
type Container struct {
	RedisClient            db.RedisClient
	RedisVenueDao          *redis.RedisVenueDAO
	PlacesAPI              places.PlacesAPI
	Ranker                 *ranking.Ranker
	VenueService           *services.VenueService
	PlannerService         *services.PlannerService
	VenuesRefresherService *services.VenuesRefresherService
	VenueHandler           *handlers.VenueHandler
	PlanHandler            *handlers.PlanHandler
	MuxRouter              *mux.Router
	Router                 *server.Router
	StillOpenHttpServer    *server.StillOpenHttpServer
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(env string) *Container {
	log.Printf("initializing container - env: %s", env)
	ctx := context.Background()

	redisInternalClient := goredis.NewClient(&goredis.Options{
		Addr:     config.RedisAddress(),
		Password: config.REDIS_DB_PASSWORD,
		DB:       config.REDIS_DB,
	})

	redisClient := db.NewGeoRedisClient(ctx, redisInternalClient)
	if err := redisClient.Ping(); err != nil {
		panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
	}

	redisVenueDao := redis.NewRedisVenueDAO(redisClient)

	var placesAPI places.PlacesAPI
	if env != "prod" {
		placesAPI = places.NewPlacesApiClientMock()
		log.Printf("Using mock places api")
	} else {
		log.Printf("Using prod places api")
		httpClient := api.NewHTTPClient(config.PLACES_ENDPOINT_BASE_V1)

		placesAPI = places.NewPlacesApiClient(httpClient)
		placesAPI.SetAPIKey(config.PlacesAPIKey())
	}

	ranker := ranking.NewRanker(rand.New(rand.NewSource(time.Now().UnixNano())))

	venueService := services.NewVenueService(redisVenueDao, placesAPI)
	plannerService := services.NewPlannerService(venueService, ranker)
	venuesRefresherService := services.NewVenuesRefresherService(redisVenueDao, placesAPI)

	venueHandler := handlers.NewVenueHandler(plannerService)
	planHandler := handlers.NewPlanHandler(plannerService)

	muxRouter := mux.NewRouter()
	router := server.NewRouter(venueHandler, planHandler, muxRouter)
	stillOpenHttpServer := server.NewStillOpenHttpServer(router, muxRouter, config.SERVER_ADDRESS)

	return &Container{
		RedisClient:            redisClient,
		RedisVenueDao:          redisVenueDao,
		PlacesAPI:              placesAPI,
		Ranker:                 ranker,
		VenueService:           venueService,
		PlannerService:         plannerService,
		VenuesRefresherService: venuesRefresherService,
		VenueHandler:           venueHandler,
		PlanHandler:            planHandler,
		MuxRouter:              muxRouter,
		Router:                 router,
		StillOpenHttpServer:    stillOpenHttpServer,
	}
}
