package handlers

import (
	"net/http"
	"strconv"

	"airline/internal/http/middleware"
	"airline/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /voucher/:id streams the reservation voucher as a PDF download.
func Voucher(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		renderError(c, http.StatusNotFound, "reserva no encontrada")
		return
	}

	svc := services.VoucherService{
		Secret:    currentVoucherSecret(),
		RequestID: middleware.GetRequestID(c),
	}
	pdf, filename, err := svc.Generate(c.Request.Context(), id)
	if err != nil {
		respondPageError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// GET /api/voucher/verificar?codigo=
func VerifyVoucher(c *gin.Context) {
	svc := services.VoucherService{
		Secret:    currentVoucherSecret(),
		RequestID: middleware.GetRequestID(c),
	}
	d, err := svc.Verify(c.Request.Context(), c.Query("codigo"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"valido":       true,
		"codigo_pnr":   d.Reservation.Code,
		"estado":       d.Reservation.Status,
		"pasajero":     d.Passenger.FullName(),
		"vuelo":        d.Flight.Number,
		"origen":       d.Flight.Origin,
		"destino":      d.Flight.Destination,
		"fecha_salida": d.Flight.DepartureAt,
	})
}
