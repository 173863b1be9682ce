package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMongo    = "mongo"
)

type Config struct {
	App struct {
		Env         string `env:"APP_ENV" envDefault:"development"`
		Port        string `env:"PORT"    envDefault:"8088"`
		FrontendURL string `env:"FRONTEND_URL" envDefault:"http://localhost:3000"`
	}
	Store struct {
		Driver     string `env:"STORE_DRIVER" envDefault:"postgres"`
		SQLitePath string `env:"SQLITE_PATH"  envDefault:"crease.db"`
		MongoURI   string `env:"MONGO_URI"    envDefault:"mongodb://localhost:27017"`
		MongoDB    string `env:"MONGO_DB"     envDefault:"crease"`
	}
	DB struct {
		Host     string `env:"DB_HOST"     envDefault:"localhost"`
		Port     string `env:"DB_PORT"     envDefault:"5432"`
		User     string `env:"DB_USER"     envDefault:"postgres"`
		Password string `env:"DB_PASSWORD" envDefault:"password"`
		Name     string `env:"DB_NAME"     envDefault:"crease_db"`
		SSLMode  string `env:"DB_SSLMODE"  envDefault:"disable"`
	}
	JWT struct {
		AccessTokenSecret        string `env:"JWT_ACCESS_TOKEN_SECRET"  envDefault:"supersecret"`
		AccessTokenExpiryMinutes int    `env:"JWT_ACCESS_TOKEN_EXPIRY_MINUTES" envDefault:"720"`
	}
	Admin struct {
		Username string `env:"ADMIN_USERNAME" envDefault:"admin"`
		Password string `env:"ADMIN_PASSWORD"`
	}
	Broadcast struct {
		AMQPURL         string `env:"AMQP_URL"`
		AMQPExchange    string `env:"AMQP_EXCHANGE"     envDefault:"crease.matches"`
		MQTTBroker      string `env:"MQTT_BROKER"`
		MQTTClientID    string `env:"MQTT_CLIENT_ID"    envDefault:"crease-api"`
		MQTTTopicPrefix string `env:"MQTT_TOPIC_PREFIX" envDefault:"crease/matches"`
	}
	Scoring struct {
		RatePerSec int `env:"SCORING_RATE_PER_SEC" envDefault:"5"`
		Burst      int `env:"SCORING_BURST"        envDefault:"10"`
	}
}

const defaultJWTSecret = "your-very-strong-access-secret"

// Global DB instance, accessible after ConnectDB() is called via Initialize.
// It holds admin accounts, and matches too unless the mongo driver is chosen.
var DB *gorm.DB

var appConfig *Config
var once sync.Once

// LoadConfig reads configuration from the environment, after loading .env
// when one exists.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading, relying on system environment variables.")
	}

	cfg := &Config{}

	cfg.App.Env = getEnv("APP_ENV", "development")
	cfg.App.Port = getEnv("PORT", "8088")
	cfg.App.FrontendURL = getEnv("FRONTEND_URL", "http://localhost:3000")

	cfg.Store.Driver = strings.ToLower(getEnv("STORE_DRIVER", DriverPostgres))
	cfg.Store.SQLitePath = getEnv("SQLITE_PATH", "crease.db")
	cfg.Store.MongoURI = getEnv("MONGO_URI", "mongodb://localhost:27017")
	cfg.Store.MongoDB = getEnv("MONGO_DB", "crease")
	switch cfg.Store.Driver {
	case DriverPostgres, DriverSQLite, DriverMongo:
	default:
		return nil, fmt.Errorf("invalid STORE_DRIVER %q: want postgres, sqlite or mongo", cfg.Store.Driver)
	}

	cfg.DB.Host = getEnv("DB_HOST", "localhost")
	cfg.DB.Port = getEnv("DB_PORT", "5432")
	cfg.DB.User = getEnv("DB_USER", "postgres")
	cfg.DB.Password = getEnv("DB_PASSWORD", "password")
	cfg.DB.Name = getEnv("DB_NAME", "crease_db")
	cfg.DB.SSLMode = getEnv("DB_SSLMODE", "disable")

	cfg.JWT.AccessTokenSecret = getEnv("JWT_ACCESS_TOKEN_SECRET", defaultJWTSecret)

	var err error
	cfg.JWT.AccessTokenExpiryMinutes, err = getEnvAsInt("JWT_ACCESS_TOKEN_EXPIRY_MINUTES", 720)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_ACCESS_TOKEN_EXPIRY_MINUTES: %w", err)
	}

	cfg.Admin.Username = getEnv("ADMIN_USERNAME", "admin")
	cfg.Admin.Password = getEnv("ADMIN_PASSWORD", "")

	cfg.Broadcast.AMQPURL = getEnv("AMQP_URL", "")
	cfg.Broadcast.AMQPExchange = getEnv("AMQP_EXCHANGE", "crease.matches")
	cfg.Broadcast.MQTTBroker = getEnv("MQTT_BROKER", "")
	cfg.Broadcast.MQTTClientID = getEnv("MQTT_CLIENT_ID", "crease-api")
	cfg.Broadcast.MQTTTopicPrefix = getEnv("MQTT_TOPIC_PREFIX", "crease/matches")

	cfg.Scoring.RatePerSec, err = getEnvAsInt("SCORING_RATE_PER_SEC", 5)
	if err != nil {
		return nil, fmt.Errorf("invalid SCORING_RATE_PER_SEC: %w", err)
	}
	cfg.Scoring.Burst, err = getEnvAsInt("SCORING_BURST", 10)
	if err != nil {
		return nil, fmt.Errorf("invalid SCORING_BURST: %w", err)
	}

	if cfg.JWT.AccessTokenSecret == defaultJWTSecret {
		log.Println("WARNING: Using default JWT secret. Please set JWT_ACCESS_TOKEN_SECRET for production.")
	}
	if cfg.DB.Password == "password" && cfg.App.Env == "production" && cfg.Store.Driver == DriverPostgres {
		log.Println("WARNING: Using default DB password in production. Please set DB_PASSWORD environment variable.")
	}

	appConfig = cfg
	return cfg, nil
}

// ConnectDB opens the relational database: postgres for the postgres driver,
// the sqlite file otherwise.
func ConnectDB(cfg Config) (*gorm.DB, error) {
	gormConfig := &gorm.Config{}
	if cfg.App.Env == "development" {
		gormConfig.Logger = logger.Default.LogMode(logger.Info)
	} else {
		gormConfig.Logger = logger.Default.LogMode(logger.Silent)
	}

	var dialector gorm.Dialector
	if cfg.Store.Driver == DriverPostgres {
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
			cfg.DB.Host,
			cfg.DB.User,
			cfg.DB.Password,
			cfg.DB.Name,
			cfg.DB.Port,
			cfg.DB.SSLMode,
		)
		dialector = postgres.Open(dsn)
	} else {
		dialector = sqlite.Open(cfg.Store.SQLitePath)
	}

	gormDB, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	DB = gormDB
	log.Printf("Connected to %s database", dialector.Name())
	return gormDB, nil
}

// Initialize loads configuration and connects to the database once.
func Initialize() error {
	var loadErr error
	once.Do(func() {
		loadedCfg, err := LoadConfig()
		if err != nil {
			loadErr = fmt.Errorf("failed to load configuration: %w", err)
			return
		}
		appConfig = loadedCfg

		if _, err = ConnectDB(*appConfig); err != nil {
			loadErr = fmt.Errorf("failed to connect to database during initialization: %w", err)
			return
		}
	})
	return loadErr
}

// GetConfig returns the loaded configuration. It exits the process if
// Initialize has not run.
func GetConfig() *Config {
	if appConfig == nil {
		log.Fatal("Configuration not loaded. Call config.Initialize() first.")
	}
	return appConfig
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) (int, error) {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return fallback, fmt.Errorf("env var %s: expected integer, got '%s'", key, valueStr)
	}
	return value, nil
}
