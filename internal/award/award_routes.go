package award

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"go-tender/internal/middleware"
	"go-tender/internal/rbac"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	rdb *redis.Client,
	jwtSecret string,
) {
	tenders := r.Group("/tenders")
	tenders.Use(middleware.AuthMiddleware(jwtSecret))
	{
		tenders.POST("/:id/award",
			middleware.RBACAuthorize(rbacService, "tender", "award"),
			middleware.Idempotency(rdb),
			handler.SelectWinner,
		)
	}
}
