package app

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"go-tender/internal/auth"
	"go-tender/internal/award"
	"go-tender/internal/bid"
	"go-tender/internal/bootstrap"
	"go-tender/internal/company"
	"go-tender/internal/config"
	"go-tender/internal/history"
	"go-tender/internal/messaging/kafka"
	"go-tender/internal/middleware"
	"go-tender/internal/rbac"
	"go-tender/internal/shared/clock"
	"go-tender/internal/shared/response"
	"go-tender/internal/tender"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	cfg *config.Config,
) error {
	router.Use(middleware.RequestID())
	router.Use(middleware.ContextLogger(zap.L()))

	// --- Repositories ---
	authRepo := auth.NewRepository(gormDB)
	companyRepo := company.NewRepository(gormDB)
	historyRepo := history.NewRepository(gormDB)
	tenderRepo := tender.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	bidRepo := bid.NewRepository(gormDB, db, outboxRepo)
	awardRepo := award.NewRepository(db)

	// --- RBAC Core ---
	rbacService, err := rbac.NewService()
	if err != nil {
		return err
	}

	// --- Services ---
	sysClock := clock.System()
	auditLogger := bootstrap.NewStdoutAuditLogger()
	authService := auth.NewService(authRepo, cfg.JWTSecret, cfg.TokenTTL, cfg.RefreshTTL)
	companyService := company.NewService(companyRepo)
	historyService := history.NewService(historyRepo)
	tenderService := tender.NewService(tenderRepo, historyService, sysClock)
	bidService := bid.NewService(bidRepo, tenderRepo, sysClock)
	awardService := award.NewService(db, awardRepo, outboxRepo, historyService, auditLogger, sysClock)

	// --- Handlers ---
	secureCookies := cfg.DBSSLMode != "disable"
	authHandler := auth.NewHandler(authService, secureCookies)
	companyHandler := company.NewHandler(companyService)
	historyHandler := history.NewHandler(historyService)
	tenderHandler := tender.NewHandler(tenderService)
	bidHandler := bid.NewHandler(bidService)
	awardHandler := award.NewHandlerWithRedis(awardService, rdb)

	// --- Routes ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler, cfg.JWTSecret)
		company.RegisterRoutes(api, companyHandler, rbacService, cfg.JWTSecret)
		history.RegisterRoutes(api, historyHandler)
		tender.RegisterRoutes(api, tenderHandler, rbacService, cfg.JWTSecret)
		bid.RegisterRoutes(api, bidHandler, rbacService, cfg.JWTSecret)
		award.RegisterRoutes(api, awardHandler, rbacService, rdb, cfg.JWTSecret)

		api.GET("/server-time", serverTime)
	}

	return nil
}

// serverTime lets clients compare their clock against the one that decides
// deadline boundaries.
func serverTime(c *gin.Context) {
	now := time.Now().UTC()
	response.Success(c, http.StatusOK, gin.H{
		"server_time": now.Format(time.RFC3339),
		"server_date": now.Format("2006-01-02"),
	}, nil)
}
