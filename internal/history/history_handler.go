package history

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-tender/internal/shared/apperror"
	"go-tender/internal/shared/response"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("history.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("history.handler")
	}
	return &Handler{service: service, logger: l}
}

// ListByTender serves the public transparency ledger, newest first.
func (h *Handler) ListByTender(c *gin.Context) {
	ctx := c.Request.Context()
	tenderID := c.Param("id")

	resp, err := h.service.ListByTender(ctx, tenderID)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		h.logger.Warn("history request failed",
			zap.String("tender_id", tenderID),
			zap.Int("status", httpErr.Status),
			zap.String("code", httpErr.Code),
		)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
