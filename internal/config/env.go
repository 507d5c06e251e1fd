package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const devVoucherSecret = "airline-dev-voucher-secret"

type Env struct {
	AppAddr string
	GinMode string

	DBUser      string
	DBPassword  string
	DBHost      string
	DBName      string
	AutoMigrate bool

	CORSOrigins   []string
	AMQPURL       string
	VoucherSecret string
}

// LoadEnv reads configuration from the process environment. A .env file in
// the working directory is loaded first when present.
func LoadEnv() Env {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("warning: no se pudo leer .env: %v", err)
	}

	env := Env{
		AppAddr:       getenv("APP_ADDR", ":8080"),
		GinMode:       strings.TrimSpace(os.Getenv("GIN_MODE")),
		DBUser:        getenv("DB_USER", "root"),
		DBPassword:    getenvRaw("DB_PASSWORD", "root"),
		DBHost:        getenv("DB_HOST", "127.0.0.1:3306"),
		DBName:        getenv("DB_NAME", "airline_sales"),
		AutoMigrate:   getbool("DB_AUTO_MIGRATE"),
		CORSOrigins:   splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
		AMQPURL:       strings.TrimSpace(os.Getenv("AMQP_URL")),
		VoucherSecret: strings.TrimSpace(os.Getenv("VOUCHER_SECRET")),
	}

	if env.VoucherSecret == "" {
		log.Println("advertencia: VOUCHER_SECRET vacio, usando secreto de desarrollo")
		env.VoucherSecret = devVoucherSecret
	}
	return env
}

// DSN renders the go-sql-driver/mysql connection string.
func (e Env) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?parseTime=true&loc=UTC&charset=utf8mb4&timeout=5s&readTimeout=30s&writeTimeout=30s",
		e.DBUser,
		e.DBPassword,
		e.DBHost,
		e.DBName,
	)
}

func getenv(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}

// passwords may legitimately carry surrounding spaces
func getenvRaw(key, def string) string {
	v, ok := os.LookupEnv(key)
	if !ok {
		return def
	}
	return v
}

func getbool(key string) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(os.Getenv(key)))
	return err == nil && b
}

func splitList(raw string) []string {
	out := []string{}
	for _, p := range strings.Split(raw, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
