package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"airline/internal/domain"
	"airline/internal/domain/models"
	"airline/internal/http/middleware"
	"airline/internal/services"
	"airline/internal/utils"

	"github.com/gin-gonic/gin"
)

// GET /
func Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Flash": popFlash(c),
	})
}

// GET /buscar_vuelos has nothing to show without a form post.
func SearchRedirect(c *gin.Context) {
	c.Redirect(http.StatusFound, "/")
}

// POST /buscar_vuelos
func SearchFlights(c *gin.Context) {
	origin := utils.AirportCode(c.PostForm("origen"))
	destination := utils.AirportCode(c.PostForm("destino"))

	flights, err := services.FlightService{}.Search(c.Request.Context(), origin, destination)
	if err != nil {
		respondPageError(c, err)
		return
	}

	c.HTML(http.StatusOK, "resultados.html", gin.H{
		"Title":       "Resultados",
		"Flights":     flights,
		"Origin":      origin,
		"Destination": destination,
	})
}

// GET /reservas
func BookableFlights(c *gin.Context) {
	flights, err := services.FlightService{}.ListBookable(c.Request.Context())
	if err != nil {
		respondPageError(c, err)
		return
	}

	selected, _ := strconv.ParseInt(c.Query("vuelo"), 10, 64)
	c.HTML(http.StatusOK, "reserva.html", gin.H{
		"Title":    "Reservar",
		"Flash":    popFlash(c),
		"Flights":  flights,
		"Selected": selected,
	})
}

// POST /registrores
func CreateReservation(c *gin.Context) {
	in := models.ReservationInput{
		DNI:        c.PostForm("dni"),
		FirstNames: c.PostForm("nombres"),
		LastNames:  c.PostForm("apellidos"),
		Email:      c.PostForm("email"),
		Phone:      c.PostForm("telefono"),
		FlightID:   c.PostForm("id_vuelo"),
	}

	svc := services.ReservationService{
		Publisher: currentPublisher(),
		RequestID: middleware.GetRequestID(c),
	}
	d, err := svc.Create(c.Request.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrNoSeats) {
			setFlash(c, domain.ErrNoSeats.Error())
			c.Redirect(http.StatusFound, "/reservas")
			return
		}
		respondPageError(c, err)
		return
	}

	c.HTML(http.StatusOK, "allreservas.html", gin.H{
		"Title":  "Reserva " + d.Reservation.Code,
		"Detail": d,
	})
}

// GET|POST /estado_vuelo looks reservations up by DNI.
func ReservationStatus(c *gin.Context) {
	data := gin.H{
		"Title":        "Estado de reserva",
		"Reservations": []models.ReservationDetail{},
		"Criteria":     "",
		"Value":        "",
	}

	if c.Request.Method == http.MethodPost {
		value := strings.TrimSpace(c.PostForm("valor"))
		data["Value"] = value
		if value != "" {
			list, err := services.ReservationService{}.ListByDNI(c.Request.Context(), value)
			if err != nil {
				respondPageError(c, err)
				return
			}
			data["Criteria"] = "DNI: " + value
			data["Reservations"] = list
		}
	}

	c.HTML(http.StatusOK, "estado.html", data)
}
