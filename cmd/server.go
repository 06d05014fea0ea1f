package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Abraxas-365/interviewer/interview"
	"github.com/Abraxas-365/interviewer/pkg/ai/llm"
	"github.com/Abraxas-365/interviewer/pkg/ai/llm/sessionx"
	"github.com/Abraxas-365/interviewer/pkg/ai/llm/sessionx/sessioninfra"
	aiopenai "github.com/Abraxas-365/interviewer/pkg/ai/providers/openai"
	"github.com/Abraxas-365/interviewer/pkg/config"
	"github.com/Abraxas-365/interviewer/pkg/logx"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
)

func main() {
	// 1. Load Configuration
	cfg, err := config.Load()
	if err != nil {
		logx.Fatalf("Failed to load configuration: %v", err)
	}

	// 2. Initialize Logger
	initLogger(cfg)

	logx.Info("🚀 Starting AI Interview Simulator...")
	logx.Infof("Environment: %s", cfg.Server.Environment)

	// 3. Initialize Core Dependencies

	// --- A. Session Store ---
	store, err := initStore(cfg)
	if err != nil {
		logx.Fatalf("❌ Failed to initialize session store: %v", err)
	}
	logx.Infof("✅ Session store ready (backend: %s)", cfg.Store.Backend)

	// --- B. AI Client (OpenAI) ---
	openaiProvider := aiopenai.NewOpenAIProvider(cfg.OpenAI.APIKey)
	llmClient := llm.NewClient(openaiProvider)
	logx.Infof("✅ Chat completion client ready (model: %s)", cfg.OpenAI.Model)

	// --- C. Interview Service ---
	svc := interview.NewService(interview.Config{
		Store:     store,
		LLMClient: llmClient,
		Model:     cfg.OpenAI.Model,
		Question: interview.GenerationParams{
			Temperature: cfg.OpenAI.QuestionTemperature,
			MaxTokens:   cfg.OpenAI.QuestionMaxTokens,
		},
		Feedback: interview.GenerationParams{
			Temperature: cfg.OpenAI.FeedbackTemperature,
			MaxTokens:   cfg.OpenAI.FeedbackMaxTokens,
		},
	})

	// 4. Create Fiber App
	app := fiber.New(fiber.Config{
		AppName:               "AI Interview Simulator",
		DisableStartupMessage: true,
		ErrorHandler:          interview.ErrorHandler,
		IdleTimeout:           120 * time.Second,
	})

	// 5. Middleware
	setupMiddleware(app, cfg)

	// 6. Routes
	interview.RegisterRoutes(app, svc)

	// 7. Start Server
	startServer(app, cfg)
}

// ============================================================================
// Session Store Initialization
// ============================================================================

func initStore(cfg *config.Config) (sessionx.Store, error) {
	switch cfg.Store.Backend {
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Store.RedisAddr,
			Password: cfg.Store.RedisPassword,
			DB:       cfg.Store.RedisDB,
		})
		return sessioninfra.NewRedisStore(client), nil

	case "postgres":
		db, err := initDatabase(cfg.Store.PostgresDSN)
		if err != nil {
			return nil, err
		}
		return sessioninfra.NewPostgresStore(db), nil

	default:
		logx.Info("ℹ️ Sessions are in-memory and lost on restart")
		return sessionx.NewMemoryStore(), nil
	}
}

func initDatabase(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	maxOpenConns := 25
	maxIdleConns := 5
	connMaxLifetime := 5 * time.Minute

	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxIdleConns)
	db.SetConnMaxLifetime(connMaxLifetime)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logx.WithFields(logx.Fields{
		"max_open_conns": maxOpenConns,
		"max_idle_conns": maxIdleConns,
		"conn_lifetime":  connMaxLifetime,
	}).Info("Database connection pool configured")

	return db, nil
}

// ============================================================================
// Setup & Configuration
// ============================================================================

func initLogger(cfg *config.Config) {
	switch cfg.Server.LogLevel {
	case "debug":
		logx.SetLevel(logx.LevelDebug)
	case "trace":
		logx.SetLevel(logx.LevelTrace)
	case "warn":
		logx.SetLevel(logx.LevelWarn)
	case "error":
		logx.SetLevel(logx.LevelError)
	default:
		logx.SetLevel(logx.LevelInfo)
	}

	logx.WithField("level", cfg.Server.LogLevel).Info("Logger initialized")
}

func setupMiddleware(app *fiber.App, cfg *config.Config) {
	// Recover from panics
	app.Use(recover.New(recover.Config{
		EnableStackTrace: cfg.IsDevelopment(),
	}))

	// Request ID
	app.Use(requestid.New(requestid.Config{
		Header: "X-Request-ID",
	}))

	// CORS
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, X-Request-ID",
		AllowMethods: "GET, POST, OPTIONS",
	}))

	// Request logging
	app.Use(logger.New(logger.Config{
		Format:     "${time} | ${status} | ${latency} | ${method} ${path}\n",
		TimeFormat: "15:04:05",
		TimeZone:   "Local",
	}))
}

func startServer(app *fiber.App, cfg *config.Config) {
	port := fmt.Sprintf("%d", cfg.Server.Port)

	go func() {
		logx.Infof("🚀 Server listening on port %s", port)
		logx.Infof("📡 Health check: http://localhost:%s/health", port)
		if err := app.Listen(":" + port); err != nil {
			logx.Fatalf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logx.Info("🛑 Shutting down server...")

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		logx.Errorf("Server forced to shutdown: %v", err)
	}

	logx.Info("✅ Server exited gracefully")
}
