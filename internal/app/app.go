package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"learnhub_backend/internal/config"
	"learnhub_backend/internal/controller"
	"learnhub_backend/internal/repository"
	"learnhub_backend/internal/service"
	"learnhub_backend/pkg/database"
	"learnhub_backend/pkg/logger"
	"learnhub_backend/pkg/monitoring"
	"learnhub_backend/pkg/security"
	"learnhub_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	Mongo  *mongo.Client
	DB     *mongo.Database
	Redis  *redis.Client
}

type repositories struct {
	user         *repository.UserRepository
	profile      *repository.ProfileRepository
	course       *repository.CourseRepository
	enrollment   *repository.EnrollmentRepository
	quiz         *repository.QuizRepository
	quizQuestion *repository.QuizQuestionRepository
	quizResult   *repository.QuizResultRepository
}

type services struct {
	auth       *service.AuthService
	profile    *service.ProfileService
	course     *service.CourseService
	enrollment *service.EnrollmentService
	quiz       *service.QuizService
	dashboard  *service.DashboardService
	storage    *service.StorageService
}

type controllers struct {
	auth       *controller.AuthController
	profile    *controller.ProfileController
	course     *controller.CourseController
	enrollment *controller.EnrollmentController
	quiz       *controller.QuizController
	dashboard  *controller.DashboardController
	health     *controller.HealthController
}

func (a *App) initRepositories(db *mongo.Database) *repositories {
	return &repositories{
		user:         repository.NewUserRepository(db),
		profile:      repository.NewProfileRepository(db),
		course:       repository.NewCourseRepository(db),
		enrollment:   repository.NewEnrollmentRepository(db),
		quiz:         repository.NewQuizRepository(db),
		quizQuestion: repository.NewQuizQuestionRepository(db),
		quizResult:   repository.NewQuizResultRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) (*services, error) {
	storage, err := service.NewStorageService(cfg)
	if err != nil {
		return nil, err
	}

	return &services{
		auth:       service.NewAuthService(repos.user, cfg),
		profile:    service.NewProfileService(repos.profile, repos.user),
		course:     service.NewCourseService(repos.course, rdb),
		enrollment: service.NewEnrollmentService(repos.enrollment, repos.course),
		quiz:       service.NewQuizService(repos.quiz, repos.quizQuestion, repos.quizResult),
		dashboard:  service.NewDashboardService(repos.course, repos.enrollment, repos.quiz, repos.quizResult),
		storage:    storage,
	}, nil
}

func (a *App) initControllers(s *services, client *mongo.Client) *controllers {
	return &controllers{
		auth:       controller.NewAuthController(s.auth),
		profile:    controller.NewProfileController(s.profile, s.storage),
		course:     controller.NewCourseController(s.course),
		enrollment: controller.NewEnrollmentController(s.enrollment),
		quiz:       controller.NewQuizController(s.quiz),
		dashboard:  controller.NewDashboardController(s.dashboard),
		health:     controller.NewHealthController(client),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	client, db, err := database.InitMongo(&cfg.Mongo)
	if err != nil {
		log.Fatalf("Failed to initialize MongoDB: %v", err)
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		log.Fatalf("Failed to initialize redis: %v", err)
	}

	seedCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := database.SeedDemoData(seedCtx, db); err != nil {
		logger.Log.Fatal("Failed to seed demo data", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		Mongo:  client,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services, err := app.initServices(repos, cfg, rdb)
	if err != nil {
		logger.Log.Fatal("Failed to initialize services", zap.Error(err))
	}
	controllers := app.initControllers(services, client)

	monitoring.Init()

	gin.SetMode(ginMode(cfg.Server.Mode))
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("learnhub-backend", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, cfg)

	if cfg.Storage.Type == "local" || cfg.Storage.Type == "" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app
}

func ginMode(mode string) string {
	switch mode {
	case "release":
		return gin.ReleaseMode
	case "test":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
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

	if err := a.Mongo.Disconnect(ctx); err != nil {
		logger.Log.Error("Failed to disconnect MongoDB", zap.Error(err))
	}

	log.Println("Server exiting")
}
