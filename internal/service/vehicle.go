package service

import (
	"context"

	"vehiclerental-backend/internal/domain"
	"vehiclerental-backend/internal/repository"
)

type vehicleService struct {
	store repository.Store
}

func NewVehicleService(store repository.Store) VehicleService {
	return &vehicleService{store: store}
}

func (s *vehicleService) FindVehicles(ctx context.Context, filter domain.VehicleFilter) ([]domain.Vehicle, error) {
	// Read-only; runs outside a transaction.
	return s.store.Vehicles().FindAvailable(ctx, filter)
}
