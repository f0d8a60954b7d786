package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/alican7645/FarmFlow/internal/config"
	"github.com/alican7645/FarmFlow/internal/entity"
	"github.com/alican7645/FarmFlow/internal/handler"
	"github.com/alican7645/FarmFlow/internal/middleware"
	"github.com/alican7645/FarmFlow/internal/repository"
	"github.com/alican7645/FarmFlow/internal/service"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	// .env dosyası varsa yükle
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zapLogger, err := initLogger(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer zapLogger.Sync()

	zapLogger.Info("Starting farmflow service",
		zap.String("version", Version),
		zap.String("build_time", BuildTime),
	)

	db, err := initDatabase(cfg.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to database", zap.Error(err))
	}

	if err := db.AutoMigrate(
		&entity.Production{},
		&entity.Harvest{},
		&entity.StockItem{},
		&entity.StockMovement{},
		&entity.Personnel{},
		&entity.Attendance{},
		&entity.Task{},
		&entity.User{},
		&entity.LoginAttempt{},
	); err != nil {
		zapLogger.Fatal("AutoMigrate failed", zap.Error(err))
	}

	// Redis isteğe bağlıdır; adres boşsa yenileme token deposu devre dışı kalır
	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		rdb = initRedis(cfg.Redis)
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			zapLogger.Warn("Redis unreachable, continuing without it", zap.Error(err))
			rdb = nil
		}
	}

	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, rdb, cfg)
	handlers := handler.NewHandlers(services)

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger(zapLogger))
	router.Use(middleware.CORS())
	router.Use(middleware.RequestID())
	router.Use(gzip.Gzip(gzip.DefaultCompression))

	registerRoutes(router, handlers, cfg)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		zapLogger.Info("Server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Error("Server forced to shutdown", zap.Error(err))
	}

	zapLogger.Info("Server exited")
}

func initLogger(cfg config.LogConfig) (*zap.Logger, error) {
	var zapCfg zap.Config

	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}

	switch cfg.Level {
	case "debug":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "info":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	case "warn":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	}

	return zapCfg.Build()
}

func initDatabase(cfg config.DatabaseConfig) (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}

	var dialector gorm.Dialector
	switch cfg.Driver {
	case "postgres":
		dsn := fmt.Sprintf(
			"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode,
		)
		dialector = postgres.Open(dsn)
	default:
		dialector = sqlite.Open(cfg.Path)
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	return db, nil
}

func initRedis(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

func registerRoutes(r *gin.Engine, h *handler.Handlers, cfg *config.Config) {
	r.GET("/health/live", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/health/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"version":    Version,
			"build_time": BuildTime,
		})
	})

	v1 := r.Group("/api/v1")
	{
		// Kimlik doğrulama gerektirmeyen uçlar
		auth := v1.Group("/auth")
		{
			auth.POST("/kurulum", h.Auth.Setup)
			auth.POST("/giris", h.Auth.Login)
			auth.POST("/yenile", h.Auth.Refresh)
		}

		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(cfg.JWT.Secret))
		{
			authorized.GET("/auth/ben", h.Auth.Me)
			authorized.POST("/auth/cikis", h.Auth.Logout)

			// Üretim
			authorized.GET("/uretim", h.Production.List)
			authorized.POST("/uretim", h.Production.Create)
			authorized.GET("/uretim/:id", h.Production.Get)
			authorized.PUT("/uretim/:id", h.Production.Update)
			authorized.PUT("/uretim/:id/durum", h.Production.UpdateStatus)
			authorized.DELETE("/uretim/:id", h.Production.Delete)

			// Hasat
			authorized.GET("/hasat", h.Harvest.List)
			authorized.POST("/hasat", h.Harvest.Create)
			authorized.GET("/hasat/istatistik", h.Harvest.Stats)
			authorized.GET("/hasat/:id", h.Harvest.Get)
			authorized.PUT("/hasat/:id", h.Harvest.Update)
			authorized.DELETE("/hasat/:id", h.Harvest.Delete)

			// Stok
			authorized.GET("/stok", h.Stock.List)
			authorized.POST("/stok", h.Stock.Create)
			authorized.GET("/stok/kritik", h.Stock.LowStock)
			authorized.GET("/stok/:id", h.Stock.Get)
			authorized.PUT("/stok/:id", h.Stock.Update)
			authorized.DELETE("/stok/:id", h.Stock.Delete)
			authorized.POST("/stok/:id/hareket", h.Stock.Move)
			authorized.GET("/stok/:id/hareketler", h.Stock.Movements)

			// Personel
			authorized.GET("/personel", h.Personnel.List)
			authorized.POST("/personel", h.Personnel.Create)
			authorized.GET("/personel/maliyet", h.Personnel.MonthlyCost)
			authorized.GET("/personel/:id", h.Personnel.Get)
			authorized.PUT("/personel/:id", h.Personnel.Update)
			authorized.DELETE("/personel/:id", h.Personnel.Delete)
			authorized.GET("/personel/:id/gorevler", h.Personnel.Tasks)

			// Devam (puantaj)
			authorized.GET("/devam", h.Attendance.ListByDate)
			authorized.POST("/devam", h.Attendance.SaveDaySheet)
			authorized.GET("/devam/istatistik", h.Attendance.WeekStats)
			authorized.GET("/devam/rapor", h.Attendance.Export)

			// Görevler
			authorized.GET("/gorevler", h.Task.List)
			authorized.POST("/gorevler", h.Task.Create)
			authorized.GET("/gorevler/:id", h.Task.Get)
			authorized.PUT("/gorevler/:id", h.Task.Update)
			authorized.PUT("/gorevler/:id/tamamla", h.Task.Complete)
			authorized.DELETE("/gorevler/:id", h.Task.Delete)

			// Raporlar
			authorized.GET("/rapor/ozet", h.Report.Dashboard)
			authorized.GET("/rapor/aylik", h.Report.Monthly)
			authorized.GET("/rapor/uretim", h.Report.Production)
			authorized.GET("/rapor/stok", h.Report.Stock)

			// Kullanıcı yönetimi (sadece admin)
			admin := authorized.Group("/kullanicilar")
			admin.Use(middleware.RequireAdmin())
			{
				admin.GET("", h.User.List)
				admin.POST("", h.User.Create)
				admin.GET("/giris-kayitlari", h.User.LoginAttempts)
				admin.GET("/:id", h.User.Get)
				admin.PUT("/:id", h.User.Update)
				admin.DELETE("/:id", h.User.Delete)
			}
		}
	}
}
