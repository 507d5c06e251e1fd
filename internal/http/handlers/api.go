package handlers

import (
	"net/http"

	"airline/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /api/pasajero?q= autocompletes the booking form.
func PassengerLookup(c *gin.Context) {
	p, found, err := services.PassengerService{}.Lookup(c.Request.Context(), c.Query("q"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if !found {
		c.JSON(http.StatusOK, gin.H{"found": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"found": true,
		"pasajero": gin.H{
			"dni":       p.DNI,
			"nombres":   p.FirstNames,
			"apellidos": p.LastNames,
			"email":     p.Email,
			"telefono":  p.Phone,
		},
	})
}

// GET /api/origenes
func Origins(c *gin.Context) {
	codes, err := services.FlightService{}.Origins(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": codes})
}

// GET /api/destinos/:origen
func Destinations(c *gin.Context) {
	codes, err := services.FlightService{}.Destinations(c.Request.Context(), c.Param("origen"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": codes})
}
