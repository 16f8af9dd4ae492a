package tender

import (
	"github.com/gin-gonic/gin"

	"go-tender/internal/middleware"
	"go-tender/internal/rbac"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	jwtSecret string,
) {
	tenders := r.Group("/tenders")
	{
		// Reads are public so companies can browse before registering.
		tenders.GET("", handler.GetAll)
		tenders.GET("/search", handler.Search)
		tenders.GET("/:id", handler.GetById)
	}

	// Winner disclosure lives under /public so unauthenticated portals can
	// link it directly.
	r.GET("/public/tenders/:id/winner", handler.PublicWinner)

	protected := r.Group("/tenders")
	protected.Use(middleware.AuthMiddleware(jwtSecret))
	{
		protected.POST("", middleware.RBACAuthorize(rbacService, "tender", "create"), handler.Create)
		protected.PUT("/:id", middleware.RBACAuthorize(rbacService, "tender", "update"), handler.Update)
		protected.DELETE("/:id", middleware.RBACAuthorize(rbacService, "tender", "delete"), handler.Delete)
	}
}
