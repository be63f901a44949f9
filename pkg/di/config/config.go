package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/safecity/safecity-api/pkg/dataset"
	http_server "github.com/safecity/safecity-api/pkg/http/server"
	logConfig "github.com/safecity/safecity-api/pkg/logger/config"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DEFAULT_DATASET_PATH = "final_city_predictions.msgpack"
)

type DatasetConfig struct {
	Path   string `validate:"required"`
	Format dataset.Format
}

type Config struct {
	HTTP    http_server.Config
	Logger  logConfig.Configuration
	Dataset DatasetConfig
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("API_PORT", 8000)
	v.SetDefault("API_TIMEOUT", "30s")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("DATASET_PATH", DEFAULT_DATASET_PATH)
	v.SetDefault("DATASET_FORMAT", string(dataset.FORMAT_AUTO))
	v.SetDefault("LOG_LEVEL", logConfig.INFO_LEVEL)
	v.SetDefault("LOG_TIME_FORMAT", time.RFC3339Nano)
}

// New reads configuration from defaults, an optional config.yaml in the working
// directory and the environment, in increasing priority. A .env file, when present, is
// loaded into the environment first.
func New() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error when loading .env file: %w", err)
	}

	v := viper.GetViper()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	return Load(v)
}

// Load builds the Config from an already set up viper instance.
func Load(v *viper.Viper) (*Config, error) {
	setDefaults(v)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var typeErr viper.ConfigFileNotFoundError
		if !errors.As(err, &typeErr) {
			return nil, fmt.Errorf("error when reading config file: %w", err)
		}
	}

	format, err := dataset.ParseFormat(v.GetString("DATASET_FORMAT"))
	if err != nil {
		return nil, err
	}

	config := &Config{
		HTTP: http_server.Config{
			Port:           v.GetInt("API_PORT"),
			Timeout:        v.GetDuration("API_TIMEOUT"),
			AllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
		Logger: logConfig.Configuration{
			Level:      v.GetInt("LOG_LEVEL"),
			TimeFormat: v.GetString("LOG_TIME_FORMAT"),
		},
		Dataset: DatasetConfig{
			Path:   v.GetString("DATASET_PATH"),
			Format: format,
		},
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		english := en.New()
		uni := ut.New(english, english)
		trans, _ := uni.GetTranslator("en")
		_ = enTranslations.RegisterDefaultTranslations(validate, trans)

		var validatorErrs validator.ValidationErrors
		if !errors.As(err, &validatorErrs) {
			return err
		}
		vvString := []string{}
		for _, e := range validatorErrs {
			vvString = append(vvString, e.Namespace()+": "+e.Translate(trans))
		}
		return fmt.Errorf("invalid configuration: %v", vvString)
	}
	return c.Logger.Validate()
}
