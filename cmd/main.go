package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nutrisnap/internal/api"
	"nutrisnap/internal/database"
	"nutrisnap/internal/gateway"
	"nutrisnap/internal/monitoring"
	"nutrisnap/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tmc/langchaingo/llms"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

var (
	port        = flag.Int("port", 8080, "API server port")
	metricsPort = flag.Int("metrics-port", 9090, "Metrics server port")
	configFile  = flag.String("config", "configs/config.yaml", "Path to configuration file")
)

func main() {
	flag.Parse()

	config, err := loadConfig(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := newLogger(config.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	model, err := initializeLLM(config)
	if err != nil {
		logger.Fatal("Failed to initialize LLM", zap.Error(err))
	}

	backend, closeBackend, err := initializeBackend(config)
	if err != nil {
		logger.Fatal("Failed to initialize storage", zap.Error(err))
	}
	defer closeBackend()

	metrics := monitoring.NewMetricsCollector()
	monitor := monitoring.NewMonitor()

	server := api.NewServer(api.Deps{
		Meals:        store.NewMealLog(backend, logger, metrics),
		Settings:     store.NewSettings(backend, logger, metrics),
		Testimonials: store.NewTestimonials(backend, logger),
		Estimator:    gateway.NewLLMEstimator(model),
		Metrics:      metrics,
		Monitor:      monitor,
		Logger:       logger,
		TokenSecret:  config.TokenSecret,
	})

	if config.Metrics.Enabled {
		go startMetricsServer(*metricsPort, config.Metrics.Path, metrics, logger)
	}

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", *port),
		Handler: server.Router,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info("Shutting down servers...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("API server shutdown error", zap.Error(err))
		}
	}()

	logger.Info("Starting API server", zap.Int("port", *port))
	if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
		logger.Fatal("API server error", zap.Error(err))
	}
}

// Config represents the application configuration
type Config struct {
	TokenSecret string `yaml:"token_secret"`
	LogLevel    string `yaml:"log_level"`
	LLM         struct {
		Provider string `yaml:"provider"` // "openai", "azure" or "github"
		APIKey   string `yaml:"api_key"`
		Model    string `yaml:"model"`
		BaseURL  string `yaml:"base_url"`
	} `yaml:"llm"`
	Storage struct {
		Driver string `yaml:"driver"` // "file" or "sqlite"
		Path   string `yaml:"path"`
	} `yaml:"storage"`
	Metrics struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
	} `yaml:"metrics"`
}

func loadConfig(path string) (*Config, error) {
	config := &Config{}
	config.Metrics.Enabled = true
	config.Metrics.Path = "/metrics"
	config.Storage.Driver = "file"
	config.Storage.Path = "data"

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	if config.TokenSecret == "" {
		config.TokenSecret = os.Getenv("NUTRISNAP_TOKEN_SECRET")
	}

	return config, nil
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if level != "" {
		lvl, err := zapcore.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", level, err)
		}
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}
	return cfg.Build()
}

func initializeLLM(config *Config) (llms.Model, error) {
	model, err := gateway.BuildModel(gateway.ProviderConfig{
		Provider: config.LLM.Provider,
		APIKey:   config.LLM.APIKey,
		Model:    config.LLM.Model,
		BaseURL:  config.LLM.BaseURL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize model provider: %w", err)
	}
	return model, nil
}

func initializeBackend(config *Config) (database.Backend, func(), error) {
	switch config.Storage.Driver {
	case "sqlite":
		backend, err := database.NewSQLBackend(config.Storage.Path)
		if err != nil {
			return nil, nil, err
		}
		return backend, func() { backend.Close() }, nil
	case "file", "":
		backend, err := database.NewFileBackend(config.Storage.Path)
		if err != nil {
			return nil, nil, err
		}
		return backend, func() {}, nil
	}
	return nil, nil, fmt.Errorf("unknown storage driver: %s", config.Storage.Driver)
}

func startMetricsServer(port int, path string, metrics *monitoring.MetricsCollector, logger *zap.Logger) {
	metricsRouter := gin.Default()
	metricsRouter.GET(path, gin.WrapH(promhttp.HandlerFor(metrics.Registry(), promhttp.HandlerOpts{})))

	metricsServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: metricsRouter,
	}

	logger.Info("Starting metrics server", zap.Int("port", port))
	if err := metricsServer.ListenAndServe(); err != http.ErrServerClosed {
		logger.Error("Metrics server error", zap.Error(err))
	}
}
