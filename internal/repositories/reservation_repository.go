package repositories

import (
	"context"
	"database/sql"
	"fmt"

	intdb "airline/internal/db"
	"airline/internal/domain"
	"airline/internal/domain/models"
)

const reservationDetailQuery = `SELECT
		r.id_reserva, r.codigo_pnr, r.id_pasajero, r.id_vuelo, r.fecha_reserva,
		COALESCE(r.estado,''), COALESCE(r.total_reserva,0),
		p.id_pasajero, p.dni, p.nombres, p.apellidos, p.email, COALESCE(p.telefono,''), p.fecha_registro,
		v.id_vuelo, v.numero_vuelo, v.origen, v.destino, v.fecha_salida, v.fecha_llegada,
		COALESCE(v.aeronave,''), v.asientos_totales, v.asientos_disponibles, COALESCE(v.estado,'')
	FROM reserva r
	JOIN pasajero p ON p.id_pasajero = r.id_pasajero
	JOIN vuelo v ON v.id_vuelo = r.id_vuelo`

type ReservationRepository struct {
	DB intdb.DBTX
}

func scanReservationDetail(s scanner, d *models.ReservationDetail) error {
	var (
		createdAt, registered sql.NullTime
		resStatus, fltStatus  string
	)
	if err := s.Scan(
		&d.Reservation.ID,
		&d.Reservation.Code,
		&d.Reservation.PassengerID,
		&d.Reservation.FlightID,
		&createdAt,
		&resStatus,
		&d.Reservation.Total,
		&d.Passenger.ID,
		&d.Passenger.DNI,
		&d.Passenger.FirstNames,
		&d.Passenger.LastNames,
		&d.Passenger.Email,
		&d.Passenger.Phone,
		&registered,
		&d.Flight.ID,
		&d.Flight.Number,
		&d.Flight.Origin,
		&d.Flight.Destination,
		&d.Flight.DepartureAt,
		&d.Flight.ArrivalAt,
		&d.Flight.Aircraft,
		&d.Flight.TotalSeats,
		&d.Flight.AvailableSeats,
		&fltStatus,
	); err != nil {
		return err
	}
	d.Reservation.CreatedAt = nullTime(createdAt)
	d.Reservation.Status = domain.Status(resStatus)
	d.Passenger.RegisteredOn = nullTime(registered)
	d.Flight.Status = domain.Status(fltStatus)
	return nil
}

// MaxCodeNumber returns the highest numeric suffix among PNR codes, 0 when none.
func (r ReservationRepository) MaxCodeNumber(ctx context.Context) (int, error) {
	q, err := conn(r.DB)
	if err != nil {
		return 0, err
	}
	var n int
	if err := q.QueryRowContext(ctx, `SELECT COALESCE(MAX(CAST(SUBSTRING(codigo_pnr, 4) AS UNSIGNED)), 0)
		FROM reserva WHERE codigo_pnr LIKE 'PNR%'`).Scan(&n); err != nil {
		return 0, fmt.Errorf("max codigo_pnr: %w", err)
	}
	return n, nil
}

// Create inserts res and returns it with ID set.
func (r ReservationRepository) Create(ctx context.Context, res models.Reservation) (models.Reservation, error) {
	q, err := conn(r.DB)
	if err != nil {
		return res, err
	}
	out, err := q.ExecContext(ctx, `INSERT INTO reserva (codigo_pnr, id_pasajero, id_vuelo, fecha_reserva, estado, total_reserva)
		VALUES (?,?,?,?,?,?)`,
		res.Code, res.PassengerID, res.FlightID, res.CreatedAt, string(res.Status), res.Total)
	if err != nil {
		return res, fmt.Errorf("insert reserva: %w", err)
	}
	id, err := out.LastInsertId()
	if err != nil {
		return res, fmt.Errorf("insert reserva: %w", err)
	}
	res.ID = id
	return res, nil
}

func (r ReservationRepository) GetDetail(ctx context.Context, id int64) (models.ReservationDetail, error) {
	var d models.ReservationDetail
	q, err := conn(r.DB)
	if err != nil {
		return d, err
	}
	row := q.QueryRowContext(ctx, reservationDetailQuery+` WHERE r.id_reserva = ? LIMIT 1`, id)
	if err := scanReservationDetail(row, &d); err != nil {
		return models.ReservationDetail{}, fmt.Errorf("reserva %d: %w", id, err)
	}
	return d, nil
}

// ListDetailsByDNI returns every reservation of the passenger, newest first.
func (r ReservationRepository) ListDetailsByDNI(ctx context.Context, dni string) ([]models.ReservationDetail, error) {
	q, err := conn(r.DB)
	if err != nil {
		return nil, err
	}
	rows, err := q.QueryContext(ctx, reservationDetailQuery+` WHERE p.dni = ? ORDER BY r.id_reserva DESC`, dni)
	if err != nil {
		return nil, fmt.Errorf("query reservas: %w", err)
	}
	defer rows.Close()

	out := []models.ReservationDetail{}
	for rows.Next() {
		var d models.ReservationDetail
		if err := scanReservationDetail(rows, &d); err != nil {
			return nil, fmt.Errorf("scan reserva: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}
