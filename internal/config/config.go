package config

import (
	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"

	"github.com/emwambold/order-automation/internal/errs"
	"github.com/emwambold/order-automation/pkg/logger"
)

var config *Config

// Config holds every env the demo consumes. Only this struct may be used to
// hold configuration values, no direct access to env or any other config
// source should be made elsewhere.
type Config struct {
	AppEnv   string `env:"APP_ENV,default=dev"`
	AppName  string `env:"APP_NAME,default=order_automation"`
	AppDebug bool   `env:"APP_DEBUG,default=false"`

	// go-env only reads defaults written inside the env tag itself.
	PostgresHost     string `env:"DB_HOST,default=localhost"`
	PostgresPort     string `env:"DB_PORT,default=5432"`
	PostgresUser     string `env:"DB_USER"`
	PostgresPassword string `env:"DB_PASSWORD"`
	PostgresDatabase string `env:"DB_NAME"`
}

func Load(path string) error {
	logger.Info("loading configs..", "path", path)
	c := &Config{}
	var err error
	if path != "" {
		err = godotenv.Load(path)
		if err != nil {
			return errors.Wrap(err, "failed to load configuration file "+path)
		}
	}

	_, err = env.UnmarshalFromEnviron(c)
	if err != nil {
		return errors.Wrap(err, "failed to map env variables to Configuration object")
	}

	if err = c.Validate(); err != nil {
		return err
	}

	config = c
	return nil
}

// Validate enforces the required connection settings. Host and port carry
// documented defaults and are never required.
func (c *Config) Validate() error {
	if c.PostgresDatabase == "" {
		return errs.NewConfig("DB_NAME")
	}
	if c.PostgresUser == "" {
		return errs.NewConfig("DB_USER")
	}
	if c.PostgresPassword == "" {
		return errs.NewConfig("DB_PASSWORD")
	}
	return nil
}

func Get() *Config {
	if config == nil {
		logger.Panic("Config is not initialized")
	}
	return config
}
