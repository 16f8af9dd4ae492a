package historyerrors

import (
	"net/http"

	"go-tender/internal/shared/apperror"
)

var (
	ErrInvalidTenderID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid tender id",
		http.StatusBadRequest,
	)
	ErrTenderNotFound = apperror.New(
		"TENDER_NOT_FOUND",
		"tender not found",
		http.StatusNotFound,
	)
)
