package http

import (
	"net/http"

	"vehiclerental-backend/internal/service"

	"github.com/gorilla/mux"
)

// NewRouter wires all handlers onto a mux router under /api.
func NewRouter(
	vehicleSvc service.VehicleService,
	rentalSvc service.RentalService,
	customerSvc service.CustomerService,
	branchSvc service.BranchService,
) *mux.Router {
	vehicleHandler := NewVehicleHandler(vehicleSvc)
	rentalHandler := NewRentalHandler(rentalSvc)
	customerHandler := NewCustomerHandler(customerSvc)
	branchHandler := NewBranchHandler(branchSvc)

	r := mux.NewRouter()
	r.Use(RequestID, RequestLogger)

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/vehicles", vehicleHandler.HandleSearch).Methods(http.MethodGet)

	api.HandleFunc("/reservations", rentalHandler.HandleCreateReservation).Methods(http.MethodPost)
	api.HandleFunc("/rentals", rentalHandler.HandleCreateRental).Methods(http.MethodPost)
	api.HandleFunc("/rentals/{rid:[0-9]+}", rentalHandler.HandleGetRental).Methods(http.MethodGet)
	api.HandleFunc("/rentals/{rid:[0-9]+}/return", rentalHandler.HandleReturn).Methods(http.MethodPost)

	api.HandleFunc("/customers", customerHandler.HandleCreate).Methods(http.MethodPost)
	api.HandleFunc("/customers/{dlicense}", customerHandler.HandleGet).Methods(http.MethodGet)

	api.HandleFunc("/branches", branchHandler.HandleCreate).Methods(http.MethodPost)
	api.HandleFunc("/branches", branchHandler.HandleList).Methods(http.MethodGet)
	api.HandleFunc("/branches/{id:[0-9]+}", branchHandler.HandleDelete).Methods(http.MethodDelete)
	api.HandleFunc("/branches/{id:[0-9]+}", branchHandler.HandleRename).Methods(http.MethodPatch)

	return r
}
