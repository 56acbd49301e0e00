package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/DhyanMarasinghe/Fitnesstrackerpro/models"
)

type Config struct {
	Port        string `env:"PORT" envDefault:"8080"`
	Environment string `env:"APP_ENV" envDefault:"development"`
	JWTSecret   string `env:"JWT_SECRET,required"`

	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBUser     string `env:"DB_USER" envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME" envDefault:"fittracker"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`

	// RedisAddr switches the rate-limit counter store to a shared cache
	// when set; empty means the in-process store.
	RedisAddr string `env:"REDIS_ADDR"`
}

// Load reads .env when present, then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Production() bool {
	return c.Environment == "production"
}

func (c *Config) dsn() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort)
}

// OpenDB connects to Postgres and migrates the schema. TranslateError is on
// so unique-index violations surface as gorm.ErrDuplicatedKey.
func OpenDB(c *Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(c.dsn()), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.StepsEntry{},
		&models.Workout{},
	)
	if err != nil {
		return nil, fmt.Errorf("automigrate: %w", err)
	}
	return db, nil
}
