package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/mkuznetsov/car-auction/internal/controller"
	"github.com/mkuznetsov/car-auction/internal/middlewareinternal"
	"github.com/mkuznetsov/car-auction/internal/repository"
	"github.com/mkuznetsov/car-auction/internal/service"
)

type App struct {
	cfg    *Config
	Router *chi.Mux
	db     *repository.Database
	Logger *zap.Logger
	Server *http.Server
}

func New(cfg *Config) (*App, error) {
	app := &App{
		cfg:    cfg,
		Router: chi.NewRouter(),
		Logger: zap.L(),
	}

	if err := app.initDB(); err != nil {
		return nil, err
	}

	if cfg.SeedDemo {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := repository.SeedDemoUser(ctx, app.db); err != nil {
			return nil, fmt.Errorf("failed to seed demo data: %w", err)
		}
		app.Logger.Info("Demo user seeded")
	}

	app.initRouter()
	return app, nil
}

func (a *App) Close() error {
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}

func (a *App) initDB() error {
	dbConfig := repository.DatabaseConfig{
		DSN:            a.cfg.DatabaseURI,
		MigrationsPath: a.cfg.MigrationsPath,
	}

	db, err := repository.NewDatabase(dbConfig)
	if err != nil {
		a.Logger.Error("Database initialization failed",
			zap.String("dsn", a.cfg.MaskDBPassword()),
			zap.Error(err))
		return fmt.Errorf("database initialization failed: %w", err)
	}

	a.db = db
	a.Logger.Info("Database initialized",
		zap.String("migrations_path", a.cfg.MigrationsPath))

	return nil
}

func (a *App) initRouter() {
	a.Router.Use(middleware.RequestID)
	a.Router.Use(middleware.RealIP)
	a.Router.Use(middleware.Logger)
	a.Router.Use(middleware.Recoverer)
	a.Router.Use(middleware.Compress(5))

	// Repositories
	userRepo := repository.NewUserRepository(a.db)
	carRepo := repository.NewCarRepository(a.db)
	bidRepo := repository.NewBidRepository(a.db)

	// Services
	authService := service.NewAuthService(userRepo, a.cfg.JWTSecretKey)
	fundingService := service.NewFundingService(userRepo)
	biddingService := service.NewBiddingService(bidRepo, a.Logger)
	catalogService := service.NewCatalogService(userRepo, carRepo, bidRepo)

	// Controllers
	authController := controller.NewAuthController(authService, a.Logger)
	fundingController := controller.NewFundingController(fundingService)
	biddingController := controller.NewBiddingController(biddingService, a.Logger)
	viewController := controller.NewViewController(catalogService)

	// Public routes
	a.Router.Post("/login", authController.Login)
	a.Router.Post("/signup", authController.Signup)
	a.Router.Get("/logout", authController.Logout)

	// Catalog view works with or without a session
	a.Router.Group(func(r chi.Router) {
		r.Use(middlewareinternal.OptionalJWTAuth(authService))
		r.Get("/", viewController.Index)
	})

	// Protected routes
	a.Router.Group(func(r chi.Router) {
		r.Use(middlewareinternal.JWTAuthMiddleware(authService))
		r.Post("/add_funds", fundingController.AddFunds)
		r.Post("/place_bid", biddingController.PlaceBid)
	})
}
