package auth

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"go-tender/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, jwtSecret string) {
	auth := r.Group("/auth")
	{
		auth.POST("/login", middleware.RateLimitByIP(rate.Limit(0.2), 5), handler.Login)
		auth.POST("/register", middleware.RateLimitByIP(rate.Limit(0.1), 3), handler.Register)
		auth.POST("/refresh", handler.RefreshToken)
		auth.POST("/logout", handler.Logout)
		auth.GET("/me", middleware.AuthMiddleware(jwtSecret), middleware.RateLimitByUser(rate.Limit(2), 5), handler.Me)
	}
}
