package services

import (
	"context"
	"database/sql"

	"airline/internal/domain"
	"airline/internal/domain/models"
	"airline/internal/repositories"
	"airline/internal/utils"
)

type FlightService struct {
	DB *sql.DB
}

func (s FlightService) flights() repositories.FlightRepository {
	return repositories.FlightRepository{DB: handle(s.DB)}
}

// Search lists bookable flights for a route. Codes are upper-cased first.
func (s FlightService) Search(ctx context.Context, origin, destination string) ([]models.Flight, error) {
	origin, destination = utils.AirportCode(origin), utils.AirportCode(destination)
	if origin == "" {
		return nil, domain.ValidationError{Field: "origen", Msg: "requerido"}
	}
	if destination == "" {
		return nil, domain.ValidationError{Field: "destino", Msg: "requerido"}
	}
	out, err := s.flights().Search(ctx, origin, destination)
	if err != nil {
		return nil, domain.InternalError{Msg: "no se pudo buscar vuelos", Err: err}
	}
	return out, nil
}

func (s FlightService) ListBookable(ctx context.Context) ([]models.Flight, error) {
	out, err := s.flights().ListScheduled(ctx)
	if err != nil {
		return nil, domain.InternalError{Msg: "no se pudo listar vuelos", Err: err}
	}
	return out, nil
}

func (s FlightService) Origins(ctx context.Context) ([]string, error) {
	out, err := s.flights().DistinctOrigins(ctx)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return out, nil
}

func (s FlightService) Destinations(ctx context.Context, origin string) ([]string, error) {
	out, err := s.flights().DistinctDestinations(ctx, utils.AirportCode(origin))
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return out, nil
}
