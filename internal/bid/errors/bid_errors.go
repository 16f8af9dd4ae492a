package biderrors

import (
	"net/http"

	"go-tender/internal/shared/apperror"
)

var (
	ErrInvalidBidID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid bid id",
		http.StatusBadRequest,
	)
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
	ErrInvalidPrice = apperror.New(
		apperror.CodeInvalidInput,
		"bidding price must be positive",
		http.StatusBadRequest,
	)
	ErrBidNotFound = apperror.New(
		"BID_NOT_FOUND",
		"bid not found",
		http.StatusNotFound,
	)
	ErrTenderNotFound = apperror.New(
		"TENDER_NOT_FOUND",
		"tender not found",
		http.StatusNotFound,
	)
	ErrBiddingClosed = apperror.New(
		"BIDDING_CLOSED",
		"bidding is closed for this tender",
		http.StatusConflict,
	)
	ErrDuplicateBid = apperror.New(
		apperror.CodeConflict,
		"company has already submitted a bid for this tender",
		http.StatusConflict,
	)
	ErrNotBidOwner = apperror.New(
		apperror.CodeForbidden,
		"you may only view your own bids",
		http.StatusForbidden,
	)
)
