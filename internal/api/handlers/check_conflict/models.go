package check_conflict

import (
	"errors"
	"net/http"

	checkConflict "github.com/m04kA/SMC-FacilityBooking/internal/usecase/check_conflict"
	"github.com/m04kA/SMC-FacilityBooking/pkg/types"
)

var (
	errMissingParams = errors.New("date, startTime and endTime are required")
	errInvalidTime   = errors.New("invalid time format")
	errInvalidRange  = errors.New("startTime must be before endTime")
)

// ConflictResponse HTTP response model
type ConflictResponse struct {
	HasConflict bool `json:"hasConflict"`
}

// parseTimeRange читает startTime и endTime из query
func parseTimeRange(r *http.Request) (types.TimeString, types.TimeString, error) {
	rawStart := r.URL.Query().Get("startTime")
	rawEnd := r.URL.Query().Get("endTime")
	if rawStart == "" || rawEnd == "" {
		return "", "", errMissingParams
	}

	start, err := types.NewTimeStringFromString(rawStart)
	if err != nil {
		return "", "", errInvalidTime
	}
	end, err := types.NewTimeStringFromString(rawEnd)
	if err != nil {
		return "", "", errInvalidTime
	}

	if !start.IsBefore(end) {
		return "", "", errInvalidRange
	}

	return start, end, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkConflict.Response) *ConflictResponse {
	return &ConflictResponse{HasConflict: resp.HasConflict}
}
