package history

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes exposes the ledger publicly; transparency audits need no
// authentication.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	tenders := r.Group("/tenders")
	{
		tenders.GET("/:id/history", handler.ListByTender)
	}
}
