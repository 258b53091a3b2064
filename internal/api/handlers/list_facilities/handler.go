package list_facilities

import (
	"net/http"

	"github.com/m04kA/SMC-FacilityBooking/internal/api/handlers"
)

const msgInvalidParams = "некорректный параметр includeInactive"

type Handler struct {
	service FacilityService
	logger  Logger
}

func NewHandler(service FacilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/facilities
// Query params: includeInactive (опционально, по умолчанию только активные)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	includeInactive, err := handlers.QueryBool(r, "includeInactive")
	if err != nil {
		h.logger.Warn("GET /facilities - Invalid includeInactive: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.List(r.Context(), !includeInactive)
	if err != nil {
		h.logger.Error("GET /facilities - Failed to list facilities: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /facilities - Facilities retrieved successfully: count=%d", len(result.Facilities))
	handlers.RespondJSON(w, http.StatusOK, result)
}
