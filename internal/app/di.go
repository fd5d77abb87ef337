// Package app provides the dependency injection container for assembling
// application components.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"sync"

	authHTTP "github.com/allisson/imagevault/internal/auth/http"
	authService "github.com/allisson/imagevault/internal/auth/service"
	authUsecase "github.com/allisson/imagevault/internal/auth/usecase"
	"github.com/allisson/imagevault/internal/config"
	"github.com/allisson/imagevault/internal/database"
	"github.com/allisson/imagevault/internal/http"
	imageHTTP "github.com/allisson/imagevault/internal/image/http"
	imageRepository "github.com/allisson/imagevault/internal/image/repository"
	imageUsecase "github.com/allisson/imagevault/internal/image/usecase"
	"github.com/allisson/imagevault/internal/metrics"
	userRepository "github.com/allisson/imagevault/internal/user/repository"
	userUsecase "github.com/allisson/imagevault/internal/user/usecase"
)

// Container holds all application dependencies. Components are created
// lazily on first access and shared afterwards.
type Container struct {
	config *config.Config

	logger *slog.Logger
	db     *sql.DB

	txManager database.TxManager

	passwordService authService.PasswordService
	tokenService    authService.TokenService

	userRepo  userUsecase.UserRepository
	imageRepo imageUsecase.ImageRepository

	userUseCase  userUsecase.UseCase
	authUseCase  authUsecase.AuthUseCase
	imageUseCase imageUsecase.UseCase

	metricsProvider *metrics.Provider
	businessMetrics metrics.BusinessMetrics

	httpServer    *http.Server
	metricsServer *http.MetricsServer

	mu                  sync.Mutex
	loggerInit          sync.Once
	dbInit              sync.Once
	txManagerInit       sync.Once
	passwordServiceInit sync.Once
	tokenServiceInit    sync.Once
	userRepoInit        sync.Once
	imageRepoInit       sync.Once
	userUseCaseInit     sync.Once
	authUseCaseInit     sync.Once
	imageUseCaseInit    sync.Once
	metricsProviderInit sync.Once
	businessMetricsInit sync.Once
	httpServerInit      sync.Once
	metricsServerInit   sync.Once
	initErrors          map[string]error
}

// NewContainer creates a new dependency injection container with the provided configuration.
func NewContainer(cfg *config.Config) *Container {
	return &Container{
		config:     cfg,
		initErrors: make(map[string]error),
	}
}

// Config returns the application configuration.
func (c *Container) Config() *config.Config {
	return c.config
}

// Logger returns the configured logger instance.
func (c *Container) Logger() *slog.Logger {
	c.loggerInit.Do(func() {
		c.logger = c.initLogger()
	})
	return c.logger
}

// DB returns the database connection.
func (c *Container) DB() (*sql.DB, error) {
	c.dbInit.Do(func() {
		db, err := c.initDB()
		if err != nil {
			c.initErrors["db"] = err
			return
		}
		c.db = db
	})
	if storedErr, exists := c.initErrors["db"]; exists {
		return nil, storedErr
	}
	return c.db, nil
}

// TxManager returns the transaction manager.
func (c *Container) TxManager() (database.TxManager, error) {
	c.txManagerInit.Do(func() {
		db, err := c.DB()
		if err != nil {
			c.initErrors["txManager"] = fmt.Errorf("failed to get database for tx manager: %w", err)
			return
		}
		c.txManager = database.NewTxManager(db)
	})
	if storedErr, exists := c.initErrors["txManager"]; exists {
		return nil, storedErr
	}
	return c.txManager, nil
}

// HTTPServer returns the main HTTP server instance.
func (c *Container) HTTPServer() (*http.Server, error) {
	c.httpServerInit.Do(func() {
		server, err := c.initHTTPServer()
		if err != nil {
			c.initErrors["httpServer"] = err
			return
		}
		c.httpServer = server
	})
	if storedErr, exists := c.initErrors["httpServer"]; exists {
		return nil, storedErr
	}
	return c.httpServer, nil
}

// Shutdown performs cleanup of all initialized resources.
func (c *Container) Shutdown(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var shutdownErrors []error

	if c.httpServer != nil {
		if err := c.httpServer.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("http server shutdown: %w", err))
		}
	}

	if c.metricsServer != nil {
		if err := c.metricsServer.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics server shutdown: %w", err))
		}
	}

	if c.metricsProvider != nil {
		if err := c.metricsProvider.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics provider shutdown: %w", err))
		}
	}

	if c.db != nil {
		if err := c.db.Close(); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("database close: %w", err))
		}
	}

	if len(shutdownErrors) > 0 {
		return fmt.Errorf("shutdown errors: %v", shutdownErrors)
	}

	return nil
}

// initLogger creates a structured JSON logger based on the configured log level.
func (c *Container) initLogger() *slog.Logger {
	var logLevel slog.Level
	switch c.config.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})

	return slog.New(handler)
}

// initDB creates and configures the database connection.
func (c *Container) initDB() (*sql.DB, error) {
	db, err := database.Connect(database.Config{
		Driver:             c.config.DBDriver,
		ConnectionString:   c.config.DBConnectionString,
		MaxOpenConnections: c.config.DBMaxOpenConnections,
		MaxIdleConnections: c.config.DBMaxIdleConnections,
		ConnMaxLifetime:    c.config.DBConnMaxLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// initHTTPServer creates the HTTP server with the full route setup.
func (c *Container) initHTTPServer() (*http.Server, error) {
	logger := c.Logger()

	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for http server: %w", err)
	}

	authUC, err := c.AuthUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get auth use case for http server: %w", err)
	}

	imageUC, err := c.ImageUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get image use case for http server: %w", err)
	}

	routerConfig := http.RouterConfig{
		Config:       c.config,
		Logger:       logger,
		DB:           db,
		AuthUseCase:  authUC,
		AuthHandler:  authHTTP.NewAuthHandler(authUC, logger),
		ImageHandler: imageHTTP.NewImageHandler(imageUC, logger),
	}

	if c.config.MetricsEnabled {
		provider, err := c.MetricsProvider()
		if err != nil {
			return nil, fmt.Errorf("failed to get metrics provider for http server: %w", err)
		}
		routerConfig.MeterProvider = provider.MeterProvider()
	}

	router := http.SetupRouter(routerConfig)

	return http.NewServer(c.config.ServerHost, c.config.ServerPort, router, logger), nil
}

// initUserRepository selects the user repository for the configured driver.
func (c *Container) initUserRepository() (userUsecase.UserRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for user repository: %w", err)
	}

	switch c.config.DBDriver {
	case "mysql":
		return userRepository.NewMySQLUserRepository(db), nil
	case "postgres":
		return userRepository.NewPostgreSQLUserRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initImageRepository selects the image repository for the configured driver.
func (c *Container) initImageRepository() (imageUsecase.ImageRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for image repository: %w", err)
	}

	switch c.config.DBDriver {
	case "mysql":
		return imageRepository.NewMySQLImageRepository(db), nil
	case "postgres":
		return imageRepository.NewPostgreSQLImageRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// UserRepository returns the user repository instance.
func (c *Container) UserRepository() (userUsecase.UserRepository, error) {
	c.userRepoInit.Do(func() {
		repo, err := c.initUserRepository()
		if err != nil {
			c.initErrors["userRepo"] = err
			return
		}
		c.userRepo = repo
	})
	if storedErr, exists := c.initErrors["userRepo"]; exists {
		return nil, storedErr
	}
	return c.userRepo, nil
}

// ImageRepository returns the image repository instance.
func (c *Container) ImageRepository() (imageUsecase.ImageRepository, error) {
	c.imageRepoInit.Do(func() {
		repo, err := c.initImageRepository()
		if err != nil {
			c.initErrors["imageRepo"] = err
			return
		}
		c.imageRepo = repo
	})
	if storedErr, exists := c.initErrors["imageRepo"]; exists {
		return nil, storedErr
	}
	return c.imageRepo, nil
}

// UserUseCase returns the user use case instance.
func (c *Container) UserUseCase() (userUsecase.UseCase, error) {
	c.userUseCaseInit.Do(func() {
		useCase, err := c.initUserUseCase()
		if err != nil {
			c.initErrors["userUseCase"] = err
			return
		}
		c.userUseCase = useCase
	})
	if storedErr, exists := c.initErrors["userUseCase"]; exists {
		return nil, storedErr
	}
	return c.userUseCase, nil
}

// initUserUseCase creates the user use case with all its dependencies.
func (c *Container) initUserUseCase() (userUsecase.UseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for user use case: %w", err)
	}

	userRepo, err := c.UserRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get user repository for user use case: %w", err)
	}

	passwordService, err := c.PasswordService()
	if err != nil {
		return nil, fmt.Errorf("failed to get password service for user use case: %w", err)
	}

	return userUsecase.NewUserUseCase(txManager, userRepo, passwordService), nil
}

// ImageUseCase returns the image use case instance.
func (c *Container) ImageUseCase() (imageUsecase.UseCase, error) {
	c.imageUseCaseInit.Do(func() {
		useCase, err := c.initImageUseCase()
		if err != nil {
			c.initErrors["imageUseCase"] = err
			return
		}
		c.imageUseCase = useCase
	})
	if storedErr, exists := c.initErrors["imageUseCase"]; exists {
		return nil, storedErr
	}
	return c.imageUseCase, nil
}

// initImageUseCase creates the image use case, decorated with metrics when enabled.
func (c *Container) initImageUseCase() (imageUsecase.UseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for image use case: %w", err)
	}

	imageRepo, err := c.ImageRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get image repository for image use case: %w", err)
	}

	useCase := imageUsecase.NewImageUseCase(txManager, imageRepo)

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for image use case: %w", err)
	}

	return imageUsecase.NewImageUseCaseWithMetrics(useCase, businessMetrics), nil
}
