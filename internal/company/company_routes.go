package company

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
	companies := r.Group("/companies")
	companies.Use(middleware.AuthMiddleware(jwtSecret))
	{
		companies.GET("/profile", middleware.RBACAuthorize(rbacService, "company", "read"), handler.GetProfile)
		companies.PUT("/profile", middleware.RBACAuthorize(rbacService, "company", "update"), handler.UpdateProfile)
	}
}
