package bid

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"go-tender/internal/middleware"
	"go-tender/internal/rbac"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	jwtSecret string,
) {
	bids := r.Group("/bids")
	bids.Use(middleware.AuthMiddleware(jwtSecret))
	{
		bids.POST("",
			middleware.RBACAuthorize(rbacService, "bid", "create"),
			middleware.RateLimitByUser(rate.Limit(1), 5),
			handler.Submit,
		)
		bids.GET("/my-bids", middleware.RBACAuthorize(rbacService, "bid", "read"), handler.MyBids)
		bids.GET("/:id/winner-status", middleware.RBACAuthorize(rbacService, "bid", "read"), handler.WinnerStatus)
	}

	tenders := r.Group("/tenders")
	tenders.Use(middleware.AuthMiddleware(jwtSecret))
	{
		tenders.GET("/:id/bids", middleware.RBACAuthorize(rbacService, "bid", "read"), handler.ListForTender)
	}

	confirmations := r.Group("/bid-confirmations")
	confirmations.Use(middleware.AuthMiddleware(jwtSecret))
	{
		confirmations.GET("/my-confirmations", middleware.RBACAuthorize(rbacService, "bid", "read"), handler.MyConfirmations)
	}
}
