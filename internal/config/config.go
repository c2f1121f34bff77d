package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/UnknownOlympus/hestia/internal/models"
)

const envPrefix = "HESTIA"

type Config struct {
	Env        string            `yaml:"env"        env-default:"local"` // Env is the current environment: local, development, production.
	HTTP       HTTPConfig        `yaml:"http"`                           // HTTP holds the directory API server configuration
	Monitoring MonitoringConfig  `yaml:"monitoring"`                     // Monitoring holds the metrics and health server configuration
	Seed       []models.Employee `yaml:"seed"`                           // Seed replaces the built-in starting records when not empty
}

// HTTPConfig struct holds the configuration of the directory API listener.
type HTTPConfig struct {
	Port        int           `yaml:"port"         env-default:"8000"` // Port is the API listening port.
	ReadTimeout time.Duration `yaml:"read_timeout" env-default:"5s"`   // ReadTimeout bounds reading a single request.
}

// MonitoringConfig struct holds the configuration of the /metrics and /healthz listener.
type MonitoringConfig struct {
	Port int `yaml:"port" env-default:"8080"` // Port is the monitoring listening port.
}

// MustLoad loads the configuration from the YAML file named by CONFIG_PATH and panics on failure.
// Variables from a .env file in the working directory are loaded first, and any key
// may be overridden with a HESTIA_ prefixed variable, e.g. HESTIA_HTTP_PORT.
func MustLoad() *Config {
	_ = godotenv.Load()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		panic("config path is empty")
	}

	cfg, err := Load(configPath)
	if err != nil {
		panic("config error: " + err.Error())
	}

	return cfg
}

// Load reads the configuration from the YAML file at configPath.
func Load(configPath string) (*Config, error) {
	// check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	vpr := viper.New()
	vpr.SetConfigFile(configPath)
	vpr.SetConfigType("yaml")
	vpr.SetEnvPrefix(envPrefix)
	vpr.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	vpr.AutomaticEnv()

	defAPIPort := 8000
	defMonitoringPort := 8080
	defReadTimeout := 5

	vpr.SetDefault("env", "local")
	vpr.SetDefault("http.port", defAPIPort)
	vpr.SetDefault("http.read_timeout", time.Duration(defReadTimeout)*time.Second)
	vpr.SetDefault("monitoring.port", defMonitoringPort)

	if err := vpr.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	// Seed fields are stored verbatim, so an unquoted number must not be
	// coerced into a string.
	var seed []models.Employee
	if err := vpr.UnmarshalKey("seed", &seed, strictDecoding); err != nil {
		return nil, fmt.Errorf("failed to parse seed: %w", err)
	}

	return &Config{
		Env: vpr.GetString("env"),
		HTTP: HTTPConfig{
			Port:        vpr.GetInt("http.port"),
			ReadTimeout: vpr.GetDuration("http.read_timeout"),
		},
		Monitoring: MonitoringConfig{
			Port: vpr.GetInt("monitoring.port"),
		},
		Seed: seed,
	}, nil
}

func strictDecoding(cfg *mapstructure.DecoderConfig) {
	cfg.WeaklyTypedInput = false
}
