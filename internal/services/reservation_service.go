package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	intdb "airline/internal/db"
	"airline/internal/domain"
	"airline/internal/domain/models"
	"airline/internal/events"
	"airline/internal/repositories"
	"airline/internal/utils"
)

const maxCodeAttempts = 3

type ReservationService struct {
	DB        *sql.DB
	Publisher events.Publisher
	RequestID string

	// overridable in tests
	Price func() float64
	Now   func() time.Time
	Today func() time.Time
}

func (s ReservationService) price() float64 {
	if s.Price != nil {
		return s.Price()
	}
	return RandomPrice()
}

func (s ReservationService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return utils.NowUTC()
}

func (s ReservationService) today() time.Time {
	if s.Today != nil {
		return s.Today()
	}
	return utils.TodayUTC()
}

type validInput struct {
	passenger models.Passenger
	flightID  int64
}

func validateReservationInput(in models.ReservationInput) (validInput, error) {
	var out validInput
	required := []struct {
		field, value string
	}{
		{"dni", in.DNI},
		{"nombres", in.FirstNames},
		{"apellidos", in.LastNames},
		{"email", in.Email},
		{"id_vuelo", in.FlightID},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return out, domain.ValidationError{Field: r.field, Msg: "requerido"}
		}
	}

	id, err := strconv.ParseInt(strings.TrimSpace(in.FlightID), 10, 64)
	if err != nil || id <= 0 {
		return out, domain.ValidationError{Field: "id_vuelo", Msg: "debe ser un numero", Err: err}
	}

	out.flightID = id
	out.passenger = models.Passenger{
		DNI:        strings.TrimSpace(in.DNI),
		FirstNames: utils.NormalizeSpace(in.FirstNames),
		LastNames:  utils.NormalizeSpace(in.LastNames),
		Email:      strings.TrimSpace(in.Email),
		Phone:      strings.TrimSpace(in.Phone),
	}
	return out, nil
}

// Create books one seat on a flight for the passenger identified by DNI,
// registering the passenger first when unknown. The flight row stays locked
// from the availability check until commit.
func (s ReservationService) Create(ctx context.Context, in models.ReservationInput) (models.ReservationDetail, error) {
	var out models.ReservationDetail

	v, err := validateReservationInput(in)
	if err != nil {
		return out, err
	}

	db := poolOrShared(s.DB)
	if db == nil {
		return out, domain.InternalError{Msg: "base de datos no disponible"}
	}
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return out, domain.InternalError{Msg: "no se pudo iniciar la transaccion", Err: err}
	}
	defer intdb.Rollback(tx)

	flights := repositories.FlightRepository{DB: tx}
	flight, err := flights.GetByIDForUpdate(ctx, v.flightID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return out, domain.NotFoundError{Resource: "vuelo", Err: err}
		}
		return out, domain.InternalError{Err: err}
	}
	if !flight.HasSeats() {
		return out, domain.ConflictError{Resource: "vuelo", Err: domain.ErrNoSeats}
	}

	passenger, err := s.upsertPassenger(ctx, tx, v.passenger)
	if err != nil {
		return out, err
	}

	res, err := s.insertWithNextCode(ctx, tx, models.Reservation{
		PassengerID: passenger.ID,
		FlightID:    flight.ID,
		CreatedAt:   s.now(),
		Status:      domain.ReservationPending,
		Total:       s.price(),
	})
	if err != nil {
		return out, err
	}

	if err := flights.DecrementSeat(ctx, flight.ID); err != nil {
		if errors.Is(err, domain.ErrNoSeats) {
			return out, domain.ConflictError{Resource: "vuelo", Err: err}
		}
		return out, domain.InternalError{Err: err}
	}

	if err := tx.Commit(); err != nil {
		return out, domain.InternalError{Msg: "no se pudo confirmar la reserva", Err: err}
	}
	flight.AvailableSeats--

	out = models.ReservationDetail{Reservation: res, Passenger: passenger, Flight: flight}
	utils.LogEvent(s.RequestID, "reservas", "create",
		fmt.Sprintf("codigo=%s id_reserva=%d id_vuelo=%d asientos_restantes=%d", res.Code, res.ID, flight.ID, flight.AvailableSeats))
	s.publishCreated(ctx, out)
	return out, nil
}

// upsertPassenger reuses the passenger registered under the same DNI.
// Stored contact data is left untouched.
func (s ReservationService) upsertPassenger(ctx context.Context, tx *sql.Tx, p models.Passenger) (models.Passenger, error) {
	repo := repositories.PassengerRepository{DB: tx}

	existing, err := repo.GetByDNI(ctx, p.DNI)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return p, domain.InternalError{Err: err}
	}

	p.RegisteredOn = s.today()
	created, err := repo.Create(ctx, p)
	if err != nil {
		if intdb.IsDuplicateKey(err) {
			return p, domain.ConflictError{Resource: "pasajero", Msg: "registro simultaneo del mismo DNI, intente nuevamente", Err: err}
		}
		return p, domain.InternalError{Err: err}
	}
	return created, nil
}

// insertWithNextCode assigns the next PNR code and inserts the reservation,
// moving past codes taken by concurrent writers.
func (s ReservationService) insertWithNextCode(ctx context.Context, tx *sql.Tx, res models.Reservation) (models.Reservation, error) {
	repo := repositories.ReservationRepository{DB: tx}

	last := 0
	for attempt := 1; ; attempt++ {
		maxIssued, err := repo.MaxCodeNumber(ctx)
		if err != nil {
			return res, domain.InternalError{Err: err}
		}
		last = nextCodeNumber(maxIssued, last)
		res.Code = FormatCode(last)

		created, err := repo.Create(ctx, res)
		if err == nil {
			return created, nil
		}
		if !intdb.IsDuplicateKey(err) {
			return res, domain.InternalError{Err: err}
		}
		if attempt == maxCodeAttempts {
			return res, domain.ConflictError{Resource: "reserva", Msg: "no se pudo asignar un codigo PNR, intente nuevamente", Err: err}
		}
		utils.LogEvent(s.RequestID, "reservas", "code_retry", fmt.Sprintf("codigo=%s intento=%d", res.Code, attempt))
	}
}

func (s ReservationService) publishCreated(ctx context.Context, d models.ReservationDetail) {
	if s.Publisher == nil {
		return
	}
	ev := events.ReservationCreated{
		Code:          d.Reservation.Code,
		ReservationID: d.Reservation.ID,
		PassengerDNI:  d.Passenger.DNI,
		FlightNumber:  d.Flight.Number,
		Total:         d.Reservation.Total,
		CreatedAt:     d.Reservation.CreatedAt,
	}
	if err := s.Publisher.Publish(ctx, events.RoutingReservationCreated, ev); err != nil {
		utils.LogEvent(s.RequestID, "reservas", "publish_failed", err.Error())
	}
}

// ListByDNI returns the reservations of the passenger with that DNI.
func (s ReservationService) ListByDNI(ctx context.Context, dni string) ([]models.ReservationDetail, error) {
	dni = strings.TrimSpace(dni)
	if dni == "" {
		return []models.ReservationDetail{}, nil
	}
	out, err := repositories.ReservationRepository{DB: handle(s.DB)}.ListDetailsByDNI(ctx, dni)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return out, nil
}

// Get loads one reservation with its passenger and flight.
func (s ReservationService) Get(ctx context.Context, id int64) (models.ReservationDetail, error) {
	if id <= 0 {
		return models.ReservationDetail{}, domain.NotFoundError{Resource: "reserva"}
	}
	d, err := repositories.ReservationRepository{DB: handle(s.DB)}.GetDetail(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return d, domain.NotFoundError{Resource: "reserva", Err: err}
		}
		return d, domain.InternalError{Err: err}
	}
	return d, nil
}
