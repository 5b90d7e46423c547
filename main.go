package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ZORO77a/Lockey/audit"
	"github.com/ZORO77a/Lockey/config"
	"github.com/ZORO77a/Lockey/controller"
	"github.com/ZORO77a/Lockey/db"
	"github.com/ZORO77a/Lockey/keyring"
	logger "github.com/ZORO77a/Lockey/logging"
	"github.com/ZORO77a/Lockey/router"
	"github.com/ZORO77a/Lockey/service"
	"github.com/ZORO77a/Lockey/util"
)

var rootCmd = &cobra.Command{
	Use:           "lockey",
	Short:         "Geofenced, time-gated encrypted file vault",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
}

var keygenCmd = &cobra.Command{
	Use:   "keygen",
	Short: "Print a new base64 vault master key for vault.keys",
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := keyring.GenerateMasterKey()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), key)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(keygenCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func serve() error {
	// Initialize configuration
	if err := config.InitConfig(); err != nil {
		log.Fatalf("Failed to initialize config: %v", err)
	}

	// Initialize logger
	if err := logger.InitLogger(config.GetString("log.dir")); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize Neo4j
	if err := db.InitNeo4j(); err != nil {
		logger.Fatal("Failed to initialize Neo4j", zap.Error(err))
	}
	defer db.CloseNeo4j()

	// Initialize Redis
	if err := db.InitRedis(); err != nil {
		logger.Fatal("Failed to initialize Redis", zap.Error(err))
	}
	defer db.CloseRedis()

	// Initialize EventBus
	eventBus := util.NewEventBus()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	eventBus.Start(ctx)

	notificationService := util.NewNotificationService()
	notificationService.Register(eventBus)

	auditRepository, err := audit.NewElasticsearchRepository(
		config.GetString("elasticsearch.url"),
		config.GetString("elasticsearch.index"),
	)
	if err != nil {
		logger.Fatal("Failed to initialize Elasticsearch", zap.Error(err))
	}
	auditService := audit.NewService(auditRepository, config.GetInt("audit.maxLimit"))

	// Keys are validated on first use so a bad key does not block startup.
	// viper lowercases map keys, so the active ID is matched the same way.
	keys := keyring.NewStaticProvider(
		strings.ToLower(config.GetString("vault.activeKeyID")),
		config.GetStringMapString("vault.keys"),
	)

	loc := config.Location()
	services, err := service.InitializeServices(
		db.Neo4jDriver,
		auditService,
		keys,
		util.NewValidationUtil(),
		util.NewCacheService(),
		eventBus,
		service.Options{
			MaxUploadSize: config.GetInt64("server.maxUploadSize"),
			Now:           func() time.Time { return time.Now().In(loc) },
		},
	)
	if err != nil {
		logger.Fatal("Failed to initialize services", zap.Error(err))
	}

	gin.SetMode(gin.ReleaseMode)
	handler := router.SetupRouter(controller.InitializeControllers(services, loc), router.Options{
		JWTSecret:         config.GetString("auth.jwtSecret"),
		RateLimit:         db.RateLimit,
		RateLimitRequests: config.GetInt("ratelimit.requests"),
		RateLimitDuration: config.GetDuration("ratelimit.window"),
		MaxUploadSize:     config.GetInt64("server.maxUploadSize"),
	})

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", config.GetString("server.port")),
		Handler: handler,
	}

	go func() {
		logger.Info("Starting server",
			zap.String("port", config.GetString("server.port")),
			zap.String("timezone", loc.String()))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
		return err
	}

	eventBus.Wait()
	logger.Info("Server exiting")
	return nil
}
