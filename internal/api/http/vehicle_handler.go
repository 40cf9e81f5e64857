package http

import (
	"net/http"
	"time"

	"vehiclerental-backend/internal/domain"
	"vehiclerental-backend/internal/service"
)

// VehicleHandler serves the availability search
type VehicleHandler struct {
	svc service.VehicleService
}

func NewVehicleHandler(svc service.VehicleService) *VehicleHandler {
	return &VehicleHandler{svc: svc}
}

// HandleSearch handles GET /api/vehicles?type=&location=&start=&end=
// start and end are RFC 3339 timestamps and must be supplied together.
func (h *VehicleHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.VehicleFilter{
		TypeName: q.Get("type"),
		Location: q.Get("location"),
	}

	startStr, endStr := q.Get("start"), q.Get("end")
	if (startStr == "") != (endStr == "") {
		writeBadRequest(w, "start and end must be supplied together")
		return
	}
	if startStr != "" {
		start, err := time.Parse(time.RFC3339, startStr)
		if err != nil {
			writeBadRequest(w, "invalid start timestamp")
			return
		}
		end, err := time.Parse(time.RFC3339, endStr)
		if err != nil {
			writeBadRequest(w, "invalid end timestamp")
			return
		}
		if !end.After(start) {
			writeBadRequest(w, "end must be after start")
			return
		}
		filter.Window = &domain.Window{Start: start, End: end}
	}

	vehicles, err := h.svc.FindVehicles(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	if vehicles == nil {
		vehicles = []domain.Vehicle{}
	}
	writeJSON(w, http.StatusOK, vehicles)
}
