package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"campushub/database"
	"campushub/internal/cache"
	"campushub/internal/config"
	"campushub/internal/handler"
	"campushub/internal/logger"
	"campushub/internal/middleware"
	"campushub/internal/repository"
	"campushub/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}

	appLog, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("could not build logger: %v", err)
	}
	defer appLog.Sync()

	db, err := database.ConnectDB(cfg, appLog)
	if err != nil {
		appLog.Fatal("could not connect to database", "error", err)
	}

	// The cache is optional: a dead Redis degrades to uncached reads.
	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		appLog.Warn("redis unavailable, running without cache", "error", err)
		redisClient = nil
	}
	responseCache := cache.NewCache(redisClient, cfg.CacheTTL)

	// Repositories
	userRepo := repository.NewUserRepository(db)
	refreshTokenRepo := repository.NewRefreshTokenRepository(db)
	departmentRepo := repository.NewDepartmentRepository(db)
	facultyRepo := repository.NewFacultyRepository(db)
	materialRepo := repository.NewMaterialRepository(db)
	auditRepo := repository.NewAuditRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)
	recentViewRepo := repository.NewRecentViewRepository(db)
	searchLogRepo := repository.NewSearchLogRepository(db)
	coordinatorRepo := repository.NewCoordinatorRepository(db)
	timetableRepo := repository.NewTimetableRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	// Services
	authSvc := service.NewAuthService(userRepo, refreshTokenRepo, cfg)
	accessSvc := service.NewAccessService(coordinatorRepo)
	searchSvc := service.NewSearchService(searchLogRepo)
	materialSvc := service.NewMaterialService(materialRepo, departmentRepo, auditRepo, favoriteRepo, recentViewRepo, searchSvc, accessSvc, cfg)
	moderationSvc := service.NewModerationService(materialRepo, auditRepo, accessSvc)
	favoriteSvc := service.NewFavoriteService(favoriteRepo, materialRepo)
	librarySvc := service.NewLibraryService(favoriteRepo, recentViewRepo, accessSvc)
	analyticsSvc := service.NewAnalyticsService(materialRepo, searchLogRepo, responseCache, appLog)
	departmentSvc := service.NewDepartmentService(departmentRepo, facultyRepo)
	facultySvc := service.NewFacultyService(facultyRepo, departmentRepo)
	timetableSvc := service.NewTimetableService(timetableRepo, departmentRepo)
	notificationSvc := service.NewNotificationService(notificationRepo, departmentRepo)
	coordinatorSvc := service.NewCoordinatorService(coordinatorRepo, departmentRepo, userRepo)

	// Middleware
	requireAuth := middleware.AuthMiddleware(authSvc, userRepo)
	optionalAuth := middleware.OptionalAuth(authSvc, userRepo)
	requireStaff := middleware.RequireStaff()
	requireVerifier := middleware.RequireVerifier(accessSvc)
	authRateLimit := middleware.RateLimit(cfg.AuthRateLimit, cfg.AuthRateBurst)

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	handler.NewHomeHandler(departmentSvc, materialSvc).RegisterRoutes(api.Group("/home"), optionalAuth)
	handler.NewAuthHandler(authSvc, int64(cfg.AccessTokenTTL.Seconds())).RegisterRoutes(api.Group("/auth"), authRateLimit)
	handler.NewDepartmentHandler(departmentSvc, timetableSvc).RegisterRoutes(api.Group("/departments"), requireAuth, requireStaff)
	handler.NewFacultyHandler(facultySvc).RegisterRoutes(api.Group("/faculty"), requireAuth, requireStaff)
	handler.NewMaterialHandler(materialSvc, favoriteSvc, moderationSvc).RegisterRoutes(api.Group("/materials"), optionalAuth, requireAuth, requireVerifier)
	handler.NewLibraryHandler(librarySvc).RegisterRoutes(api.Group("/library"), requireAuth)
	handler.NewTimetableHandler(timetableSvc).RegisterRoutes(api.Group("/timetable"), requireAuth, requireStaff)
	handler.NewNotificationHandler(notificationSvc).RegisterRoutes(api.Group("/notifications"), requireAuth, requireStaff)
	handler.NewCoordinatorHandler(coordinatorSvc).RegisterRoutes(api.Group("/coordinators"), requireAuth, requireStaff)
	handler.NewAnalyticsHandler(analyticsSvc).RegisterRoutes(api.Group("/analytics"), requireAuth, requireStaff)

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	appLog.Info("server starting", "addr", addr, "env", cfg.GoEnv)
	if err := r.Run(addr); err != nil {
		appLog.Fatal("server stopped", "error", err)
	}
}
