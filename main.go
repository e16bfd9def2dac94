package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/zarkopopovski/registrar-chat/chat"
	"github.com/zarkopopovski/registrar-chat/controllers"
	"github.com/zarkopopovski/registrar-chat/providers"
	"github.com/zarkopopovski/registrar-chat/storage"
)

type Handlers struct {
	Authentication *controllers.AuthController
	ChatController *controllers.ChatController
	JobController  *controllers.JobController
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})

	if err := godotenv.Load(".env"); err != nil {
		log.Warn().Msg("no .env file found, relying on environment")
	}

	portNumber := getEnv("PORT", "8080")

	store, err := buildStorage()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize storage")
	}

	provider, providerConfigured := buildProvider()

	coordinator := chat.NewCoordinator(store, provider)

	authController := &controllers.AuthController{
		WorkerKey:    os.Getenv("WORKER_API_KEY"),
		AccessSecret: os.Getenv("ACCESS_SECRET"),
	}

	handlers := &Handlers{
		Authentication: authController,
		ChatController: &controllers.ChatController{
			Coordinator:        coordinator,
			Storage:            store,
			ProviderConfigured: providerConfigured,
		},
		JobController: &controllers.JobController{
			Storage:        store,
			AuthController: authController,
		},
	}

	httpRouter := http.NewServeMux()

	//PUBLIC
	httpRouter.HandleFunc("GET /api/health", handlers.ChatController.Health)
	httpRouter.HandleFunc("GET /api/chat/messages", handlers.ChatController.GetMessages)
	httpRouter.HandleFunc("POST /api/chat/messages", handlers.ChatController.PostMessage)
	httpRouter.HandleFunc("DELETE /api/chat/messages", handlers.ChatController.ClearMessages)
	httpRouter.HandleFunc("GET /api/chat/session", handlers.ChatController.SessionInfo)

	//COMPARISON WORKER
	httpRouter.HandleFunc("POST /api/worker/login", handlers.Authentication.WorkerLogin)
	httpRouter.HandleFunc("GET /api/compare/jobs", handlers.JobController.PendingJobs)
	httpRouter.HandleFunc("POST /api/compare/jobs/{jobID}/response", handlers.JobController.SubmitJobResponse)

	handler := cors.AllowAll().Handler(httpRouter)

	log.Info().Str("port", portNumber).Msg("start listening")

	thisServer := &http.Server{
		Addr:         ":" + portNumber,
		Handler:      handler,
		IdleTimeout:  120 * time.Second,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		if err := thisServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt)

	thisSignal := <-sigChan

	log.Info().Str("signal", thisSignal.String()).Msg("graceful shutdown")

	timeOutContext, canFunct := context.WithTimeout(context.Background(), 5*time.Second)
	defer canFunct()

	thisServer.Shutdown(timeOutContext)
}

func buildStorage() (storage.Storage, error) {
	if getEnv("STORAGE_BACKEND", "memory") == "sqlite" {
		databasePath := getEnv("SQLITE_PATH", "registrarchat.db")
		log.Info().Str("path", databasePath).Msg("using sqlite storage")
		return storage.NewSQLStorage(databasePath, "file://./migrations")
	}

	log.Info().Msg("using in-memory storage")
	return storage.NewMemStorage(), nil
}

func buildProvider() (providers.AnswerProvider, bool) {
	switch getEnv("ANSWER_PROVIDER", "deepseek") {
	case "openrouter":
		apiKey := os.Getenv("OPENROUTER_API_KEY")
		if apiKey == "" {
			log.Warn().Msg("OPENROUTER_API_KEY not set, running in demo mode")
			return providers.NewDemoProvider(), false
		}
		log.Info().Msg("using openrouter answer provider")
		return providers.NewOpenRouterProvider(apiKey, os.Getenv("OPENROUTER_MODEL"), os.Getenv("OPENROUTER_REFERER")), true

	default:
		apiKey := os.Getenv("DEEPSEEK_API_KEY")
		if apiKey == "" {
			log.Warn().Msg("DEEPSEEK_API_KEY not set, running in demo mode")
			return providers.NewDemoProvider(), false
		}

		provider, err := providers.NewDeepSeekProvider(apiKey, os.Getenv("LLM_MODEL"))
		if err != nil {
			log.Error().Err(err).Msg("failed to initialize deepseek client, running in demo mode")
			return providers.NewDemoProvider(), false
		}
		log.Info().Msg("using deepseek answer provider")
		return provider, true
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
