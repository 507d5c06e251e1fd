package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	intconfig "airline/internal/config"
	intdb "airline/internal/db"
	"airline/internal/events"
	router "airline/internal/http"
	"airline/internal/http/handlers"

	"github.com/gin-gonic/gin"
)

func main() {
	env := intconfig.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	db, err := intconfig.ConnectDB(env.DSN())
	if err != nil {
		log.Fatalf("No se pudo conectar a la base de datos: %v", err)
	}
	defer intconfig.CloseDB()

	if env.AutoMigrate {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		err := intdb.EnsureSchema(ctx, db)
		cancel()
		if err != nil {
			log.Fatalf("No se pudo crear el esquema: %v", err)
		}
		log.Println("Esquema de base de datos verificado")
	} else if missing := intdb.MissingTables(context.Background(), db); len(missing) > 0 {
		log.Printf("advertencia: faltan tablas %v, use DB_AUTO_MIGRATE=true para crearlas", missing)
	}

	pub, err := events.New(env.AMQPURL)
	if err != nil {
		log.Fatalf("No se pudo conectar al broker de eventos: %v", err)
	}
	defer pub.Close()

	handlers.Configure(pub, []byte(env.VoucherSecret))

	// Router (Gin engine)
	r := router.NewRouter(env)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("Servidor escuchando en http://localhost%s", env.AppAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("No se pudo iniciar el servidor: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Apagando servidor...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Fallo el apagado del servidor: %v", err)
		return
	}

	log.Println("Servidor detenido correctamente.")
}
