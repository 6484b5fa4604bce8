package config

import (
	"fmt"
	"log"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Server   Server   `mapstructure:"server" validate:"required"`
	Logging  Logging  `mapstructure:"logging" validate:"required"`
	Sampling Sampling `mapstructure:"sampling" validate:"required"`
	Latency  Latency  `mapstructure:"latency" validate:"required"`
}

type Server struct {
	Port *int `mapstructure:"port" validate:"required"`
}

type Logging struct {
	Driver *string `mapstructure:"driver" validate:"oneof=noop stdout influxdb"`
	// InfluxDB is a pointer so a config without an influxdb section
	// validates when another driver is selected.
	InfluxDB *InfluxDB `mapstructure:"influxdb" validate:"required_if=Driver influxdb"`
}

type InfluxDB struct {
	Host   *string `mapstructure:"host" validate:"required"`
	Token  *string `mapstructure:"token" validate:"required"`
	Org    *string `mapstructure:"org" validate:"required"`
	Bucket *string `mapstructure:"bucket" validate:"required"`
}

type Sampling struct {
	// DefaultMethod is used when a sample request does not name a
	// Gamma-variate method. Parsed by dirichlet.ParseMethod at startup.
	DefaultMethod *string `mapstructure:"defaultMethod" validate:"required"`
	MaxDimensions *int    `mapstructure:"maxDimensions" validate:"required,min=1"`
	MaxSamples    *int    `mapstructure:"maxSamples" validate:"required,min=1"`
}

type Latency struct {
	Collector        *string `mapstructure:"collector" validate:"oneof=tachymeter array"`
	Window           *int    `mapstructure:"window" validate:"required,min=1"`
	LogPeriodSeconds *int    `mapstructure:"logPeriodSeconds" validate:"required,min=1"`
}

func setDefaults() {
	viper.SetDefault("Server.Port", 8080)

	viper.SetDefault("Logging.Driver", "noop")

	viper.SetDefault("Sampling.DefaultMethod", "marsaglia-tsang")
	viper.SetDefault("Sampling.MaxDimensions", 1024)
	viper.SetDefault("Sampling.MaxSamples", 1000000)

	viper.SetDefault("Latency.Collector", "tachymeter")
	viper.SetDefault("Latency.Window", 1000)
	viper.SetDefault("Latency.LogPeriodSeconds", 10)
}

func ReadConfig() *Config {
	viper.AutomaticEnv()
	setDefaults()

	viper.SetConfigType("yaml")
	viper.SetConfigName("config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/app")
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Printf("config.yaml not found; using defaults and environment variables")
		} else {
			log.Fatalf("error when reading config file: err = %s", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		log.Fatalf("error occured while reading configuration file: err = %s", err)
	}
	validate := validator.New()
	err := validate.Struct(&config)
	if err != nil {
		if _, ok := err.(*validator.InvalidValidationError); ok {
			log.Printf("unable to validate config: err = %s", err)
		}

		log.Printf("encountered validation errors:\n")

		for _, err := range err.(validator.ValidationErrors) {
			fmt.Printf("\t%s\n", err.Error())
		}

		fmt.Println("Check your configuration file and try again.")
		os.Exit(1)
	}

	return &config
}
