package config_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/Flaque/filet"
	"github.com/Houeta/employee-service/internal/config"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMustLoad_Defaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")

	cfg := config.MustLoad()

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, 5*time.Second, cfg.HTTP.ReadTimeout)
	assert.Equal(t, 10*time.Second, cfg.HTTP.WriteTimeout)
	assert.Equal(t, 5*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.True(t, cfg.Database.Migrate)
	assert.False(t, cfg.Database.Seed)
}

func TestMustLoad_FromEnv(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("EMPLOYEE_ENV", "local")
	t.Setenv("EMPLOYEE_HTTP_PORT", "9090")
	t.Setenv("EMPLOYEE_HTTP_WRITE_TIMEOUT", "30s")
	t.Setenv("EMPLOYEE_POSTGRES_HOST", "testHost")
	t.Setenv("EMPLOYEE_POSTGRES_PORT", "12345")
	t.Setenv("EMPLOYEE_POSTGRES_USER", "admin")
	t.Setenv("EMPLOYEE_POSTGRES_PASSWORD", "adminpass")
	t.Setenv("EMPLOYEE_POSTGRES_DB_NAME", "testName")
	t.Setenv("EMPLOYEE_POSTGRES_SEED", "true")

	cfg := config.MustLoad()

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, 30*time.Second, cfg.HTTP.WriteTimeout)
	assert.Equal(t, "testHost", cfg.Database.Host)
	assert.Equal(t, "12345", cfg.Database.Port)
	assert.Equal(t, "admin", cfg.Database.User)
	assert.Equal(t, "adminpass", cfg.Database.Password)
	assert.Equal(t, "testName", cfg.Database.Name)
	assert.True(t, cfg.Database.Seed)
}

func TestMustLoad_DurationError(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("EMPLOYEE_HTTP_READ_TIMEOUT", "error_value")

	assert.PanicsWithValue(t, "failed to parse http.read_timeout from configuration", func() {
		config.MustLoad()
	})
}

func TestMustLoad_FileNotExist(t *testing.T) {
	t.Setenv("CONFIG_PATH", "./invalid/path")

	assert.PanicsWithValue(t, "config file does not exist: ./invalid/path", func() {
		config.MustLoad()
	})
}

func TestMustLoad_ReadError(t *testing.T) {
	tmpFile := filet.TmpFile(t, "", "::::bad_yaml")
	defer filet.CleanUp(t)

	t.Setenv("CONFIG_PATH", tmpFile.Name())

	v := viper.New()
	v.SetConfigFile(tmpFile.Name())
	err := v.ReadInConfig()
	require.Error(t, err)

	assert.PanicsWithValue(t, fmt.Sprintf("config error: %v", err), func() {
		config.MustLoad()
	})
}

func TestMustLoad_FromFile(t *testing.T) {
	configContent := `
---
env: "development"
http:
  port: 8081
  shutdown_timeout: 15s
postgres:
  host: "db.internal"
  user: "pgUser"
  password: "pgPassword"
  db_name: "pgDatabase"
  migrate: false
`
	filet.File(t, "conf.yaml", configContent)
	defer filet.CleanUp(t)

	t.Setenv("CONFIG_PATH", "conf.yaml")
	t.Setenv("EMPLOYEE_POSTGRES_PASSWORD", "fromEnv")

	cfg := config.MustLoad()

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, 8081, cfg.HTTP.Port)
	assert.Equal(t, 15*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, "pgUser", cfg.Database.User)
	assert.Equal(t, "fromEnv", cfg.Database.Password)
	assert.Equal(t, "pgDatabase", cfg.Database.Name)
	assert.False(t, cfg.Database.Migrate)
}
