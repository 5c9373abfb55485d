package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config regroupe la configuration du service, chargée depuis
// l'environnement (avec .env optionnel en développement).
type Config struct {
	HTTPAddr string `env:"HTTP_ADDR" envDefault:":8080"`

	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER" envDefault:"aaluser"`
	DBPassword string `env:"DB_PASSWORD" envDefault:"aalpass"`
	DBName     string `env:"DB_NAME" envDefault:"aaldb"`
	DBSSLMode  string `env:"DB_SSLMODE" envDefault:"disable"`

	CSVPath   string `env:"CSV_PATH" envDefault:"data/AusApparalSales4thQrt2020.csv"`
	ReportDir string `env:"REPORT_DIR" envDefault:"reports"`

	// Période analysée: le dataset AAL couvre le 4e trimestre 2020
	Year    int `env:"PERIOD_YEAR" envDefault:"2020"`
	Quarter int `env:"PERIOD_QUARTER" envDefault:"4"`

	RefreshInterval time.Duration `env:"REFRESH_INTERVAL" envDefault:"15m"`
	CacheTTL        time.Duration `env:"CACHE_TTL" envDefault:"5m"`
}

// Load charge la configuration: .env d'abord (s'il existe), puis les
// variables d'environnement parsées dans la struct.
func Load() (Config, error) {
	// Absence de .env non bloquante: en production tout vient de l'environnement
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// ConnString construit la connection string PostgreSQL
func (c Config) ConnString() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}
