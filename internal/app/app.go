package app

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/yungbote/compass-backend/internal/data/db"
	httpServer "github.com/yungbote/compass-backend/internal/http"
	"github.com/yungbote/compass-backend/internal/pkg/logger"
)

type App struct {
	Log      *logger.Logger
	DB       *gorm.DB
	Router   *gin.Engine
	Cfg      Config
	Repos    Repos
	Services Services

	srv *httpServer.Server
}

func New() (*App, error) {
	// .env is optional; real deployments set the environment directly.
	if _, err := os.Stat(".env"); err == nil {
		_ = godotenv.Load()
	}

	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	log.Info("Loading environment variables...")
	cfg := LoadConfig(log)

	pg, err := db.NewPostgresService(log)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("init postgres: %w", err)
	}
	if err := pg.AutoMigrateAll(); err != nil {
		log.Sync()
		return nil, fmt.Errorf("postgres automigrate: %w", err)
	}
	theDB := pg.DB()

	reposet := wireRepos(theDB, log)
	serviceset := wireServices(theDB, log, cfg, reposet)
	handlerset := wireHandlers(theDB, serviceset)
	authMiddleware := wireMiddleware(log, serviceset)

	router := httpServer.NewRouter(httpServer.RouterConfig{
		Log:            log,
		AuthHandler:    handlerset.Auth,
		ProfileHandler: handlerset.Profile,
		HealthHandler:  handlerset.Health,
		AuthMiddleware: authMiddleware,
	})

	return &App{
		Log:      log,
		DB:       theDB,
		Router:   router,
		Cfg:      cfg,
		Repos:    reposet,
		Services: serviceset,
	}, nil
}

func (a *App) Run(addr string) error {
	if a == nil || a.Router == nil {
		return fmt.Errorf("app not initialized")
	}
	a.srv = httpServer.NewServer(a.Log, a.Router, addr)
	return a.srv.Run()
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.srv != nil {
		if err := a.srv.Shutdown(); err != nil && a.Log != nil {
			a.Log.Warn("HTTP shutdown", "error", err)
		}
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
