package app

import (
	"bananalearn_backend/internal/config"
	"bananalearn_backend/internal/controller"
	"bananalearn_backend/internal/repository"
	"bananalearn_backend/internal/service"
	"bananalearn_backend/pkg/database"
	"bananalearn_backend/pkg/logger"
	"bananalearn_backend/pkg/monitoring"
	"bananalearn_backend/pkg/security"
	"bananalearn_backend/pkg/tracing"
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client
}

type repositories struct {
	user     *repository.UserRepository
	badge    *repository.BadgeRepository
	progress *repository.ProgressRepository
	course   *repository.CourseRepository
	quiz     *repository.QuizRepository
	session  *repository.SessionRepository
	duel     *repository.DuelRepository
	clan     *repository.ClanRepository
}

type services struct {
	auth         *service.AuthService
	user         *service.UserService
	storage      *service.StorageService
	gamification *service.GamificationService
	badge        *service.BadgeService
	course       *service.CourseService
	quiz         *service.QuizService
	session      *service.SessionService
	duel         *service.DuelService
	clan         *service.ClanService
}

type controllers struct {
	auth         *controller.AuthController
	user         *controller.UserController
	gamification *controller.GamificationController
	badge        *controller.BadgeController
	course       *controller.CourseController
	quiz         *controller.QuizController
	session      *controller.SessionController
	duel         *controller.DuelController
	clan         *controller.ClanController
	health       *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:     repository.NewUserRepository(db),
		badge:    repository.NewBadgeRepository(db),
		progress: repository.NewProgressRepository(db),
		course:   repository.NewCourseRepository(db),
		quiz:     repository.NewQuizRepository(db),
		session:  repository.NewSessionRepository(db),
		duel:     repository.NewDuelRepository(db),
		clan:     repository.NewClanRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, db *gorm.DB, rdb *redis.Client) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, cfg)
	s.user = service.NewUserService(repos.user)
	s.gamification = service.NewGamificationService(repos.user, repos.badge, repos.progress)
	s.badge = service.NewBadgeService(repos.badge)
	s.course = service.NewCourseService(repos.course, repos.progress, repos.user, s.gamification)
	s.quiz = service.NewQuizService(repos.quiz)
	s.session = service.NewSessionService(repos.session, repos.quiz, repos.user, s.gamification, rdb)
	s.duel = service.NewDuelService(repos.duel, repos.quiz, repos.user, s.gamification, db)
	s.clan = service.NewClanService(repos.clan, repos.user, s.gamification, rdb, db)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:         controller.NewAuthController(s.auth),
		user:         controller.NewUserController(s.user),
		gamification: controller.NewGamificationController(s.gamification),
		badge:        controller.NewBadgeController(s.badge, s.storage),
		course:       controller.NewCourseController(s.course),
		quiz:         controller.NewQuizController(s.quiz),
		session:      controller.NewSessionController(s.session),
		duel:         controller.NewDuelController(s.duel),
		clan:         controller.NewClanController(s.clan),
		health:       controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("logger initialized")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("failed to initialize database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("failed to initialize redis", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, db, rdb)
	controllers := app.initControllers(services, db)

	monitoring.Init()

	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("bananalearn", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
