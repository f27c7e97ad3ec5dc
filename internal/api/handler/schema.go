package handler

import "github.com/tripnest/travel-client/internal/core/domain"

// errorResponse documents the error envelope rendered by the API error handler.
type errorResponse struct {
	Error string `json:"error"`
}

type bookPackageRequest struct {
	Date            domain.Date `json:"date"`
	Travelers       int         `json:"travelers"`
	SpecialRequests string      `json:"specialRequests"`
}

type cancelRequest struct {
	Reason string `json:"reason"`
}

type statusRequest struct {
	Status domain.BookingStatus `json:"status" validate:"required,oneof=pending confirmed cancelled completed"`
}

type expenseListResponse struct {
	Items []domain.Expense `json:"items"`
	Total string           `json:"total"`
}

type tripTotalResponse struct {
	TripID domain.ID `json:"tripId"`
	Total  string    `json:"total"`
}
