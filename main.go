// File: tripmesh/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tripmesh/config"
	"tripmesh/database"
	plansRepo "tripmesh/database/repository/plans"
	"tripmesh/handlers"
	"tripmesh/middleware"
	"tripmesh/routes"
	"tripmesh/services/planner"
	"tripmesh/services/traveldata"
	"tripmesh/services/transportpricing"
	"tripmesh/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Generation backend.
	llm, err := buildLLMClient()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize LLM backend: %v", err)
	}
	agent := planner.NewAgent(llm)

	// Collaborator services.
	travelDataService := traveldata.NewDefaultTravelDataService(
		config.AppConfig.GeoapifyAPIKey,
		utils.GetCacheClient(),
		time.Duration(config.AppConfig.RateCacheTTL)*time.Second,
	)
	transportService := transportpricing.NewDefaultTransportService(
		config.AppConfig.TequilaAPIKey,
		config.AppConfig.FlightCurrency,
	)
	planRepo := plansRepo.NewMongoPlanRepo()

	plannerService := planner.NewDefaultPlannerService(planner.Deps{
		Agent:         agent,
		Geo:           travelDataService,
		Transport:     transportService,
		Currency:      travelDataService,
		Archive:       archiveOrNil(planRepo),
		POICacheTTL:   time.Duration(config.AppConfig.GeoCacheTTL) * time.Second,
		QuoteCacheTTL: time.Duration(config.AppConfig.QuoteCacheTTL) * time.Second,
	})

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Planner:    plannerService,
		TravelData: travelDataService,
		Plans:      planRepo,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
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

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}

// buildLLMClient selects the generation backend from configuration.
func buildLLMClient() (planner.LLMClient, error) {
	switch config.AppConfig.PlannerBackend {
	case "openai":
		return planner.NewOpenAIClient(
			config.AppConfig.OpenAIAPIKey,
			config.AppConfig.PlannerModel,
			config.AppConfig.OpenAIBaseURL,
		)
	case "mock":
		return planner.MockLLM{Response: "{}"}, nil
	default:
		return planner.NewGeminiClient(
			context.Background(),
			config.AppConfig.GeminiAPIKey,
			config.AppConfig.PlannerModel,
		)
	}
}

// archiveOrNil keeps the planner's archive dependency a clean nil when no
// database is configured, instead of a non-nil interface holding nil.
func archiveOrNil(repo plansRepo.PlanRepository) planner.PlanArchive {
	if repo == nil {
		return nil
	}
	return repo
}
