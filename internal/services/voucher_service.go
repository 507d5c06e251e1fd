package services

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"airline/internal/domain"
	"airline/internal/domain/models"
	"airline/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// VoucherService renders the reservation voucher PDF.
type VoucherService struct {
	DB        *sql.DB
	Secret    []byte
	RequestID string
	Loader    func(context.Context, int64) (models.ReservationDetail, error)
	Now       func() time.Time
}

func (s VoucherService) load(ctx context.Context, id int64) (models.ReservationDetail, error) {
	if s.Loader != nil {
		return s.Loader(ctx, id)
	}
	return ReservationService{DB: s.DB}.Get(ctx, id)
}

func (s VoucherService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return utils.NowUTC()
}

// Generate returns the PDF bytes and the download filename.
func (s VoucherService) Generate(ctx context.Context, reservationID int64) ([]byte, string, error) {
	d, err := s.load(ctx, reservationID)
	if err != nil {
		return nil, "", err
	}
	code, err := IssueVoucherCode(s.Secret, d, s.now())
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "voucher", "generate", fmt.Sprintf("id_reserva=%d codigo=%s", reservationID, d.Reservation.Code))

	pdf, err := buildVoucherPDF(d, code)
	if err != nil {
		return nil, "", domain.InternalError{Msg: "no se pudo generar el voucher", Err: err}
	}
	return pdf, "voucher_" + safeFilenamePart(d.Reservation.Code) + ".pdf", nil
}

// Verify resolves a verification code back to a live reservation.
func (s VoucherService) Verify(ctx context.Context, code string) (models.ReservationDetail, error) {
	claims, err := VerifyVoucherCode(s.Secret, strings.TrimSpace(code))
	if err != nil {
		return models.ReservationDetail{}, err
	}
	d, err := s.load(ctx, claims.ReservationID)
	if err != nil {
		return d, err
	}
	if d.Reservation.Code != claims.PNR {
		return models.ReservationDetail{}, domain.ValidationError{Field: "codigo", Msg: "el codigo no corresponde a la reserva"}
	}
	return d, nil
}

func voucherLines(d models.ReservationDetail) []string {
	return []string{
		"PNR: " + d.Reservation.Code,
		"Pasajero: " + d.Passenger.FullName(),
		"Vuelo: " + d.Flight.Number,
		"Origen: " + d.Flight.Origin,
		"Destino: " + d.Flight.Destination,
		"Fecha de salida: " + safe(utils.FormatDateTime(d.Flight.DepartureAt), "-"),
		"Estado: " + safe(string(d.Reservation.Status), "-"),
		"Total: " + utils.FormatSoles(d.Reservation.Total),
	}
}

func buildVoucherPDF(d models.ReservationDetail, verification string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	// text must stay searchable in the raw stream
	pdf.SetCompression(false)
	pdf.SetTitle("Voucher de Reserva "+d.Reservation.Code, true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "Voucher de Reserva", "", 1, "C", false, 0, "")
	pdf.Ln(5)

	pdf.SetFont("Helvetica", "", 12)
	for _, line := range voucherLines(d) {
		pdf.Cell(0, 8, tr(line))
		pdf.Ln(8)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.Cell(0, 6, "Codigo de verificacion:")
	pdf.Ln(6)
	pdf.SetFont("Courier", "", 7)
	pdf.MultiCell(0, 4, verification, "", "L", false)

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.MultiCell(0, 5, tr("Presente este voucher junto con su documento de identidad al momento del embarque."), "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "NA"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_")
	s = replacer.Replace(s)
	if len(s) > 40 {
		s = s[:40]
	}
	return s
}
