package api

import (
	"log"
	stdhttp "net/http"

	intconfig "airline/internal/config"
	h "airline/internal/http/handlers"
	"airline/internal/http/middleware"
	"airline/internal/http/views"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.CORSOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("advertencia: no se pudo configurar trusted proxies: %v", err)
	}

	r.SetHTMLTemplate(views.MustLoad())

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "ruta no encontrada",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	// Pages
	r.GET("/", h.Index)
	r.GET("/buscar_vuelos", h.SearchRedirect)
	r.POST("/buscar_vuelos", h.SearchFlights)
	r.GET("/reservas", h.BookableFlights)
	r.POST("/registrores", h.CreateReservation)
	r.GET("/voucher/:id", h.Voucher)
	r.GET("/estado_vuelo", h.ReservationStatus)
	r.POST("/estado_vuelo", h.ReservationStatus)

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		api.GET("/pasajero", h.PassengerLookup)
		api.GET("/origenes", h.Origins)
		api.GET("/destinos/:origen", h.Destinations)

		voucher := api.Group("/voucher")
		voucher.GET("/verificar", h.VerifyVoucher)
	}

	return r
}
