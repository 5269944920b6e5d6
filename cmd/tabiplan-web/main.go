// README: Entry point; loads config, wires the LLM client and optional modules, starts HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"tabiplan/internal/ai"
	"tabiplan/internal/config"
	httptransport "tabiplan/internal/http"
	"tabiplan/internal/infra"
	"tabiplan/internal/maps"
	"tabiplan/internal/modules/limiter"
	"tabiplan/internal/modules/usage"
	"tabiplan/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var llm ai.Client
	var modelTag string
	switch cfg.LLM.Provider {
	case "gemini":
		model := cfg.LLM.Model
		if model == "" {
			model = ai.DefaultGeminiModel
		}
		gemini, err := ai.NewGeminiClient(ctx, cfg.LLM.GeminiKey, model, float32(cfg.LLM.Temperature))
		if err != nil {
			log.Fatalf("gemini init: %v", err)
		}
		defer gemini.Close()
		llm = gemini
		modelTag = "gemini/" + model
	default:
		model := cfg.LLM.Model
		if model == "" {
			model = ai.DefaultOpenAIModel
		}
		llm = ai.NewOpenAIClient(cfg.LLM.OpenAIKey, model, float32(cfg.LLM.Temperature))
		modelTag = "openai/" + model
	}

	// Usage statistics and rate limiting stay off unless their backends
	// are configured; the handlers answer 503 / pass through accordingly.
	var usageSvc *usage.Service
	if cfg.DB.DSN != "" {
		dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
		if err != nil {
			log.Fatal(err)
		}
		defer dbPool.Close()

		usageStore := usage.NewStore(dbPool)
		if err := usageStore.EnsureSchema(ctx); err != nil {
			log.Fatalf("usage schema: %v", err)
		}
		usageSvc = usage.NewService(usageStore)
	}

	var limiterSvc *limiter.Service
	if cfg.Redis.Addr != "" {
		redisClient := infra.NewRedis(cfg.Redis.Addr)
		defer redisClient.Close()
		limiterSvc = limiter.NewService(limiter.NewStore(redisClient), cfg.RateLimit)
	}

	var placesSvc *maps.PlacesService
	var routeSvc *maps.RouteService
	if cfg.Maps.APIKey != "" {
		placesSvc, err = maps.NewPlacesService(cfg.Maps.APIKey)
		if err != nil {
			log.Fatalf("maps init: %v", err)
		}
		routeSvc, err = maps.NewRouteService(cfg.Maps.APIKey)
		if err != nil {
			log.Fatalf("maps init: %v", err)
		}
	}

	planner := service.NewPlanner(llm, usageSvc, modelTag)

	handler := httptransport.NewServer(httptransport.ServerDeps{
		Planner:  planner,
		Usage:    usageSvc,
		Limiter:  limiterSvc,
		Places:   placesSvc,
		Routes:   routeSvc,
		ModelTag: modelTag,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler.Routes()}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	log.Printf("listening on %s (model %s)", cfg.HTTP.Addr, modelTag)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
