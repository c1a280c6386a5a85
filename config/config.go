package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap"
)

// Config is the process configuration, read once at startup from the
// environment (optionally seeded from a .env file). The credential
// defaults are the cafeteria's two fixed identities.
type Config struct {
	Addr    string `envconfig:"ADDR"     default:":8081"`
	DataDir string `envconfig:"DATA_DIR" default:"./data"`

	CashierUser     string `envconfig:"CASHIER_USER"     default:"Caja"`
	CashierPassword string `envconfig:"CASHIER_PASSWORD" default:"123456"`
	AdminUser       string `envconfig:"ADMIN_USER"       default:"Administrador"`
	AdminPassword   string `envconfig:"ADMIN_PASSWORD"   default:"Administrador"`
}

// Load reads the configuration from the environment. A missing .env file
// is fine; anything else wrong with it is reported.
func Load(logger *zap.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("error loading .env file, continuing with environment", zap.Error(err))
		}
	} else {
		logger.Info("loaded configuration from .env file")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process configuration: %w", err)
	}

	logger.Info("configuration loaded",
		zap.String("addr", cfg.Addr),
		zap.String("data_dir", cfg.DataDir),
	)
	return &cfg, nil
}
