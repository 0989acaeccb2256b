package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const defaultConfigPath = "./config/local.yaml"

type Config struct {
	Env         string   `yaml:"env" env:"ENV" env-default:"prod"`
	HTTPServer  `yaml:"http_server"`
	DBUser      string   `yaml:"db_user" env:"DB_USER" env-required:"true"`
	DBPassword  string   `yaml:"db_password" env:"DB_PASSWORD"`
	DBHost      string   `yaml:"db_host" env:"DB_HOST" env-default:"localhost"`
	DBPort      int      `yaml:"db_port" env:"DB_PORT" env-default:"3306"`
	DBName      string   `yaml:"db_name" env:"DB_NAME" env-required:"true"`
	ParseTime   bool     `yaml:"parse_time" env:"DB_PARSE_TIME" env-default:"true"`
	CORSOrigins []string `yaml:"cors_origins" env:"CORS_ORIGINS" env-default:"http://localhost:5173"`

	AdminLogin string `yaml:"admin_login" env:"ADMIN_LOGIN"`
	AdminPass  string `yaml:"admin_pass" env:"ADMIN_PASS"`

	Estimate `yaml:"estimate"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env:"HTTP_ADDRESS" env-default:"localhost:4001"`
	Timeout     time.Duration `yaml:"timeout" env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

// Estimate holds the defaults used when a project does not set its own crew
// or margin.
type Estimate struct {
	CacheTTL            time.Duration `yaml:"cache_ttl" env-default:"1m"`
	CacheCleanup        time.Duration `yaml:"cache_cleanup" env-default:"5m"`
	DefaultMargin       float64       `yaml:"default_margin" env-default:"10"`
	StandardHours       float64       `yaml:"standard_hours" env-default:"8"`
	DefaultWorkers      int           `yaml:"default_workers" env-default:"2"`
	DefaultWorkingHours float64       `yaml:"default_working_hours" env-default:"8"`
	LabourRatePerDay    float64       `yaml:"labour_rate_per_day" env-default:"800"`
}

func MustConfig() *Config {
	cfg, err := Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatalf("cannot read config: %s", err)
	}

	return cfg
}

// Load reads the YAML file at path (./config/local.yaml when empty) with
// environment overrides. A .env file in the working directory is loaded first
// if there is one.
func Load(path string) (*Config, error) {
	if path == "" {
		path = defaultConfigPath
	}

	_ = godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
