package app

import (
	"net/http"

	"welfare-app-go/internal/config"
	"welfare-app-go/internal/db"
	applicationdomain "welfare-app-go/internal/domain/application"
	authndomain "welfare-app-go/internal/domain/authn"
	contactdomain "welfare-app-go/internal/domain/contact"
	grievancedomain "welfare-app-go/internal/domain/grievance"
	listingdomain "welfare-app-go/internal/domain/listing"
	schemedomain "welfare-app-go/internal/domain/scheme"
	applicationrepo "welfare-app-go/internal/repository/postgres/application"
	authnrepo "welfare-app-go/internal/repository/postgres/authn"
	contactrepo "welfare-app-go/internal/repository/postgres/contact"
	grievancerepo "welfare-app-go/internal/repository/postgres/grievance"
	listingrepo "welfare-app-go/internal/repository/postgres/listing"
	schemerepo "welfare-app-go/internal/repository/postgres/scheme"
	"welfare-app-go/internal/transport/httpserver"
	"welfare-app-go/internal/transport/httpserver/handler"
	"welfare-app-go/internal/transport/httpserver/middleware"
	"welfare-app-go/pkg/logger"
	"gorm.io/gorm"
)

type App struct {
	cfg        config.Config
	httpServer *http.Server
	db         *gorm.DB
}

func New(log logger.Logger) (*App, error) {
	log.Info("app: loading config")
	cfg, err := config.Load(log)
	if err != nil {
		return nil, err
	}

	log.Info("app: initializing database")
	dbConn, err := db.NewPostgres(cfg.DB, log)
	if err != nil {
		return nil, err
	}

	log.Info("app: running migrations")
	if err := db.Migrate(dbConn); err != nil {
		return nil, err
	}

	if cfg.SeedEnabled {
		log.Info("app: seeding database")
		if err := db.Seed(dbConn, cfg.BcryptCost, log); err != nil {
			return nil, err
		}
	}

	authService := authndomain.NewService(authnrepo.NewPostgres(dbConn), cfg.BcryptCost)
	schemeService := schemedomain.NewService(schemerepo.NewPostgres(dbConn))
	applicationService := applicationdomain.NewService(applicationrepo.NewPostgres(dbConn))
	contactService := contactdomain.NewService(contactrepo.NewPostgres(dbConn))
	listingService := listingdomain.NewService(listingrepo.NewPostgres(dbConn))
	grievanceService := grievancedomain.NewService(grievancerepo.NewPostgres(dbConn))

	handlers := handler.New(
		authService,
		schemeService,
		applicationService,
		contactService,
		listingService,
		grievanceService,
		log,
	)

	identity := middleware.NewIdentity(authService, log)

	log.Info("app: initializing router")
	router := httpserver.NewRouter(cfg, handlers, identity)

	log.Info("app: initializing http server")
	srv := httpserver.New(cfg, router)

	return &App{
		cfg:        cfg,
		httpServer: srv,
		db:         dbConn,
	}, nil
}

func (a *App) HTTPServer() *http.Server {
	return a.httpServer
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
