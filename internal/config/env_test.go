package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadEnvDefaults(t *testing.T) {
	for _, k := range []string{"APP_ADDR", "GIN_MODE", "DB_USER", "DB_HOST", "DB_NAME", "DB_AUTO_MIGRATE", "CORS_ALLOWED_ORIGINS", "AMQP_URL", "VOUCHER_SECRET"} {
		t.Setenv(k, "")
	}

	env := LoadEnv()

	assert.Equal(t, ":8080", env.AppAddr)
	assert.Equal(t, "root", env.DBUser)
	assert.Equal(t, "127.0.0.1:3306", env.DBHost)
	assert.Equal(t, "airline_sales", env.DBName)
	assert.False(t, env.AutoMigrate)
	assert.Empty(t, env.CORSOrigins)
	assert.Equal(t, devVoucherSecret, env.VoucherSecret)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("APP_ADDR", ":9090")
	t.Setenv("DB_NAME", "vuelos_test")
	t.Setenv("DB_AUTO_MIGRATE", "true")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, ,http://b.test")
	t.Setenv("VOUCHER_SECRET", "s3cret")

	env := LoadEnv()

	assert.Equal(t, ":9090", env.AppAddr)
	assert.Equal(t, "vuelos_test", env.DBName)
	assert.True(t, env.AutoMigrate)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, env.CORSOrigins)
	assert.Equal(t, "s3cret", env.VoucherSecret)
}

func TestDSN(t *testing.T) {
	env := Env{DBUser: "u", DBPassword: "p", DBHost: "db:3306", DBName: "airline_sales"}
	dsn := env.DSN()

	assert.True(t, strings.HasPrefix(dsn, "u:p@tcp(db:3306)/airline_sales?"))
	assert.Contains(t, dsn, "parseTime=true")
}
