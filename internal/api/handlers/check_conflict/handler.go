package check_conflict

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-FacilityBooking/internal/api/handlers"
	checkConflict "github.com/m04kA/SMC-FacilityBooking/internal/usecase/check_conflict"
)

const (
	msgInvalidFacilityID = "некорректный ID объекта"
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingParams     = "параметры date, startTime и endTime обязательны"
	msgInvalidTime       = "некорректный формат времени, ожидается HH:MM"
	msgInvalidRange      = "время начала должно быть раньше времени окончания"
)

type Handler struct {
	useCase CheckConflictUseCase
	logger  Logger
}

func NewHandler(useCase CheckConflictUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/facilities/{facilityId}/conflicts
// Query params: date, startTime, endTime (все обязательны)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	facilityID, err := handlers.PathParam(r, "facilityId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidFacilityID)
		return
	}

	date, err := handlers.QueryDate(r, "date")
	if err != nil {
		h.logger.Warn("GET /facilities/{id}/conflicts - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}
	if date == nil {
		handlers.RespondBadRequest(w, msgMissingParams)
		return
	}

	start, end, err := parseTimeRange(r)
	if err != nil {
		h.logger.Warn("GET /facilities/{id}/conflicts - Invalid time range: %v", err)
		switch {
		case errors.Is(err, errInvalidRange):
			handlers.RespondBadRequest(w, msgInvalidRange)
		case errors.Is(err, errInvalidTime):
			handlers.RespondBadRequest(w, msgInvalidTime)
		default:
			handlers.RespondBadRequest(w, msgMissingParams)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), &checkConflict.Request{
		FacilityID: facilityID,
		Date:       *date,
		StartTime:  start,
		EndTime:    end,
	})
	if err != nil {
		if errors.Is(err, checkConflict.ErrInvalidInput) {
			handlers.RespondBadRequest(w, msgMissingParams)
			return
		}
		h.logger.Error("GET /facilities/{id}/conflicts - Failed to check conflict: facility_id=%s, error=%v", facilityID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /facilities/{id}/conflicts - facility_id=%s, %s-%s, hasConflict=%t",
		facilityID, start, end, result.HasConflict)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
