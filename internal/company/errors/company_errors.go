package companyerrors

import (
	"net/http"

	"go-tender/internal/shared/apperror"
)

var (
	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid user id",
		http.StatusBadRequest,
	)
	ErrProfileNotFound = apperror.New(
		apperror.CodeNotFound,
		"company profile not found",
		http.StatusNotFound,
	)
)
