package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"vehiclerental-backend/internal/domain"
	"vehiclerental-backend/internal/service"

	"github.com/gorilla/mux"
)

// RentalHandler serves the reservation/rental lifecycle and vehicle returns
type RentalHandler struct {
	svc service.RentalService
}

func NewRentalHandler(svc service.RentalService) *RentalHandler {
	return &RentalHandler{svc: svc}
}

type reservationRequest struct {
	VehicleType   string    `json:"vtname"`
	Location      string    `json:"location"`
	DriverLicense string    `json:"dlicense"`
	Start         time.Time `json:"start_timestamp"`
	End           time.Time `json:"end_timestamp"`
	CardName      string    `json:"card_name"`
	CardNo        string    `json:"card_no"`
	ExpDate       time.Time `json:"exp_date"`
}

func (req *reservationRequest) validate() string {
	if req.DriverLicense == "" {
		return "dlicense is required"
	}
	if req.Start.IsZero() || req.End.IsZero() {
		return "start_timestamp and end_timestamp are required"
	}
	if !req.End.After(req.Start) {
		return "end_timestamp must be after start_timestamp"
	}
	return ""
}

func (req *reservationRequest) params() domain.ReservationParams {
	return domain.ReservationParams{
		VehicleTypeName: req.VehicleType,
		Location:        req.Location,
		DriverLicense:   req.DriverLicense,
		Window:          domain.Window{Start: req.Start, End: req.End},
		Card: domain.PaymentCard{
			Name:   req.CardName,
			Number: req.CardNo,
			Expiry: req.ExpDate,
		},
	}
}

// HandleCreateReservation handles POST /api/reservations
func (h *RentalHandler) HandleCreateReservation(w http.ResponseWriter, r *http.Request) {
	var req reservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if msg := req.validate(); msg != "" {
		writeBadRequest(w, msg)
		return
	}

	confNo, err := h.svc.CreateReservation(r.Context(), req.params())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]int32{"conf_no": confNo})
}

type rentalRequest struct {
	ConfNo int32 `json:"conf_no"`
	reservationRequest
}

// HandleCreateRental handles POST /api/rentals. With a conf_no the rental is
// created from the existing reservation; otherwise the body must carry the
// full reservation parameters and both steps run back to back.
func (h *RentalHandler) HandleCreateRental(w http.ResponseWriter, r *http.Request) {
	var req rentalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	var (
		rid int32
		err error
	)
	if req.ConfNo > 0 {
		rid, err = h.svc.CreateRentalFromReservation(r.Context(), req.ConfNo)
	} else {
		if msg := req.validate(); msg != "" {
			writeBadRequest(w, msg)
			return
		}
		rid, err = h.svc.CreateRentalWithoutReservation(r.Context(), req.params())
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]int32{"rid": rid})
}

type returnRequest struct {
	ReturnedAt  time.Time `json:"return_timestamp"`
	EndOdometer float64   `json:"end_odometer"`
	FullTank    bool      `json:"full_tank"`
}

// HandleReturn handles POST /api/rentals/{rid}/return
func (h *RentalHandler) HandleReturn(w http.ResponseWriter, r *http.Request) {
	rid, ok := pathID(w, r, "rid")
	if !ok {
		return
	}

	var req returnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if req.ReturnedAt.IsZero() {
		writeBadRequest(w, "return_timestamp is required")
		return
	}

	receipt, err := h.svc.ReturnVehicle(r.Context(), rid, req.ReturnedAt, req.EndOdometer, req.FullTank)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, receipt)
}

// HandleGetRental handles GET /api/rentals/{rid}
func (h *RentalHandler) HandleGetRental(w http.ResponseWriter, r *http.Request) {
	rid, ok := pathID(w, r, "rid")
	if !ok {
		return
	}

	rental, err := h.svc.GetRental(r.Context(), rid)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rental)
}

func pathID(w http.ResponseWriter, r *http.Request, name string) (int32, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, 32)
	if err != nil {
		writeBadRequest(w, "invalid "+name)
		return 0, false
	}
	return int32(id), true
}
