package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tripplanner/config"
	"tripplanner/cron"
	"tripplanner/database"
	catalogRepo "tripplanner/database/repository/catalog"
	itineraryRepo "tripplanner/database/repository/itinerary"
	"tripplanner/handlers"
	"tripplanner/routes"
	"tripplanner/services/places"
	"tripplanner/services/planner"
	"tripplanner/services/routing"
	"tripplanner/services/tasks"
	"tripplanner/services/transport"
	"tripplanner/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	data, err := config.LoadPlannerData(config.AppConfig.PlannerDataFile)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to load planner data: %v", err)
	}

	rootCtx, stop := context.WithCancel(context.Background())
	defer stop()

	// MongoDB is optional; without it plans are generated but not stored
	// and the local catalog is empty.
	var (
		catalog     planner.CatalogStore
		lookup      planner.CatalogLookup
		itineraries itineraryRepo.ItineraryRepository
	)
	db, err := database.InitDB(rootCtx)
	if err != nil {
		logger.Warn("MongoDB unavailable, running without persistence", zap.Error(err))
	} else {
		cRepo := catalogRepo.NewMongoCatalogRepo(db)
		iRepo := itineraryRepo.NewMongoItineraryRepo(db)
		if err := cRepo.EnsureIndexes(rootCtx); err != nil {
			logger.Warn("Failed to ensure catalog indexes", zap.Error(err))
		}
		if err := iRepo.EnsureIndexes(rootCtx); err != nil {
			logger.Warn("Failed to ensure itinerary indexes", zap.Error(err))
		}
		catalog, lookup, itineraries = cRepo, cRepo, iRepo
	}

	utils.InitCache()
	utils.StartHealthMonitor(rootCtx, utils.GetCacheClient(), database.MongoClient)

	// Providers.
	timeout := config.AppConfig.ProviderTimeout
	placesClient := places.NewClient(config.AppConfig.GoogleAPIKey, timeout, logger)
	searcher := places.NewCachedSearcher(placesClient, utils.GetCacheClient(), config.AppConfig.SearchCacheTTL, logger)
	routesClient := routing.NewClient(config.AppConfig.GoogleAPIKey, timeout, logger)
	fares := transport.NewFareTable(data.TransportFares)

	tripPlanner := planner.NewPlanner(data, searcher, catalog, fares, logger,
		planner.WithTimeout(timeout),
		planner.WithDetails(lookup, placesClient),
	)
	transportService := transport.NewService(routesClient, fares, logger)

	// Exports need both the queue and stored itineraries.
	var (
		exports     handlers.ExportEnqueuer
		queueClient *asynq.Client
		worker      *asynq.Server
	)
	if itineraries != nil {
		queueClient = asynq.NewClient(utils.QueueRedisOpt())
		exports = tasks.NewExportQueue(queueClient)
		worker = cron.InitExportWorker(itineraries, cron.JSONRenderer{Dir: config.AppConfig.ExportDir}, logger)
	}

	handlerBundle := &handlers.HandlerBundle{
		Itinerary: handlers.NewItineraryHandler(tripPlanner, itineraries, exports, logger),
		Search:    handlers.NewSearchHandler(tripPlanner),
		Transport: handlers.NewTransportHandler(transportService),
	}

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Logger())
	if err := routes.RegisterRoutes(router, handlerBundle, routes.Options{
		JWTSecret:         []byte(config.AppConfig.JWTSecret),
		MaxRequestsPerMin: config.AppConfig.MaxRequestsPerMin,
		TrustedProxies:    config.AppConfig.TrustedProxies,
	}); err != nil {
		logger.Fatal("Failed to register routes", zap.Error(err))
	}

	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")
	stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}
	if worker != nil {
		worker.Shutdown()
	}
	if queueClient != nil {
		if err := queueClient.Close(); err != nil {
			logger.Warn("Failed to close queue client", zap.Error(err))
		}
	}
	if err := database.CloseDB(ctx); err != nil {
		logger.Warn("Failed to disconnect MongoDB", zap.Error(err))
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
