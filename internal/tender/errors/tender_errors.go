package tendererrors

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
	ErrInvalidActorID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid actor id",
		http.StatusBadRequest,
	)
	ErrInvalidCategory = apperror.New(
		apperror.CodeInvalidInput,
		"invalid tender category",
		http.StatusBadRequest,
	)
	ErrInvalidBudget = apperror.New(
		apperror.CodeInvalidInput,
		"budget must be zero or positive",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format",
		http.StatusBadRequest,
	)
	ErrTenderNotFound = apperror.New(
		"TENDER_NOT_FOUND",
		"tender not found",
		http.StatusNotFound,
	)
	ErrTenderLocked = apperror.New(
		"TENDER_LOCKED",
		"tender can no longer be modified after its deadline has passed or once it is not open",
		http.StatusConflict,
	)
	ErrTenderHasBids = apperror.New(
		"TENDER_HAS_BIDS",
		"tender with submitted bids cannot be deleted",
		http.StatusConflict,
	)
	ErrAlreadyAwarded = apperror.New(
		"ALREADY_AWARDED",
		"this tender has already been awarded",
		http.StatusConflict,
	)
	ErrDeadlineNotReached = apperror.New(
		"DEADLINE_NOT_REACHED",
		"cannot select a winner before the submission deadline",
		http.StatusBadRequest,
	)
	ErrNotAwarded = apperror.New(
		"NOT_AWARDED",
		"tender has not been awarded yet",
		http.StatusBadRequest,
	)
	ErrNoWinningBid = apperror.New(
		apperror.CodeNotFound,
		"no winning bid found",
		http.StatusNotFound,
	)
)
