package awarderrors

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
	ErrInvalidBidID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid bid id",
		http.StatusBadRequest,
	)
	ErrInvalidActorID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid actor id",
		http.StatusBadRequest,
	)
	ErrBidNotFound = apperror.New(
		"BID_NOT_FOUND",
		"bid not found",
		http.StatusNotFound,
	)
	ErrTenderMismatch = apperror.New(
		"TENDER_MISMATCH",
		"bid does not belong to this tender",
		http.StatusBadRequest,
	)
)

// AwardFailed wraps a persistence failure inside the award transaction.
// The cause stays attached for logs; clients only see the stable pair.
func AwardFailed(err error) *apperror.AppError {
	return apperror.Wrap(err,
		"AWARD_FAILED",
		"award could not be completed",
		http.StatusInternalServerError,
	)
}
