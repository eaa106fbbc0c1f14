package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the configuration settings for the application.
// It includes the environment type, the HTTP server settings and the database configuration.
type Config struct {
	Env      string         `yaml:"env"`      // Env is the current environment: local, development, production.
	HTTP     HTTPConfig     `yaml:"http"`     // HTTP holds the API server configuration
	Database PostgresConfig `yaml:"postgres"` // Database holds the postgres database configuration
}

// HTTPConfig holds the listening port and the timeouts of the API server.
type HTTPConfig struct {
	Port            int           `yaml:"port"`             // Port is the TCP port the API listens on.
	ReadTimeout     time.Duration `yaml:"read_timeout"`     // ReadTimeout bounds reading a whole request.
	WriteTimeout    time.Duration `yaml:"write_timeout"`    // WriteTimeout bounds writing a response.
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"` // ShutdownTimeout bounds the graceful shutdown.
}

// PostgresConfig struct holds the configuration details for connecting to a PostgreSQL database.
type PostgresConfig struct {
	Host     string `yaml:"host"`     // Host is the database server address.
	Port     string `yaml:"port"`     // Port is the database server port.
	User     string `yaml:"user"`     // User is the database user.
	Password string `yaml:"password"` // Password is the database user's password.
	Name     string `yaml:"db_name"`  // Name is the name of the database.
	Migrate  bool   `yaml:"migrate"`  // Migrate creates the employee table on startup.
	Seed     bool   `yaml:"seed"`     // Seed loads the demo employees on startup.
}

const envPrefix = "EMPLOYEE"

// MustLoad builds the configuration from defaults, an optional YAML file pointed to by CONFIG_PATH,
// a .env file and EMPLOYEE_* environment variables, in increasing order of precedence.
// It panics when the configuration cannot be read.
func MustLoad() *Config {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath := os.Getenv("CONFIG_PATH"); configPath != "" {
		// check if file exists
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			panic("config file does not exist: " + configPath)
		}

		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			panic("config error: " + err.Error())
		}
	}

	return &Config{
		Env: v.GetString("env"),
		HTTP: HTTPConfig{
			Port:            v.GetInt("http.port"),
			ReadTimeout:     mustDuration(v, "http.read_timeout"),
			WriteTimeout:    mustDuration(v, "http.write_timeout"),
			ShutdownTimeout: mustDuration(v, "http.shutdown_timeout"),
		},
		Database: PostgresConfig{
			Host:     v.GetString("postgres.host"),
			Port:     v.GetString("postgres.port"),
			User:     v.GetString("postgres.user"),
			Password: v.GetString("postgres.password"),
			Name:     v.GetString("postgres.db_name"),
			Migrate:  v.GetBool("postgres.migrate"),
			Seed:     v.GetBool("postgres.seed"),
		},
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "production")
	v.SetDefault("http.port", 8080) //nolint:mnd // default API port
	v.SetDefault("http.read_timeout", "5s")
	v.SetDefault("http.write_timeout", "10s")
	v.SetDefault("http.shutdown_timeout", "5s")
	v.SetDefault("postgres.host", "localhost")
	v.SetDefault("postgres.port", "5432")
	v.SetDefault("postgres.migrate", true)
	v.SetDefault("postgres.seed", false)
}

func mustDuration(v *viper.Viper, key string) time.Duration {
	duration, err := time.ParseDuration(v.GetString(key))
	if err != nil {
		panic("failed to parse " + key + " from configuration")
	}

	return duration
}
