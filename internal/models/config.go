package models

import (
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type CloudStorageConfig struct {
	Provider   string `mapstructure:"provider"`
	BucketName string `mapstructure:"bucket_name"`
	Region     string `mapstructure:"region"`
}

type Config struct {
	Seed           int       `mapstructure:"seed"`
	DataFile       string    `mapstructure:"data_file"`
	GenerateOrders int       `mapstructure:"generate_orders"`
	AsOfDate       time.Time `mapstructure:"as_of_date"` // reference "now" for recency metrics; zero means wall clock

	// analysis thresholds
	MinConfidence float64 `mapstructure:"min_confidence"`
	MinSupport    float64 `mapstructure:"min_support"`
	DormantDays   float64 `mapstructure:"dormant_days"`

	// focused prediction runs
	ProductID   string `mapstructure:"product_id"`
	CartIDs     string `mapstructure:"cart_ids"` // comma separated
	Brand       string `mapstructure:"brand"`
	TargetMonth int    `mapstructure:"target_month"`
	TargetYear  int    `mapstructure:"target_year"`

	// sinks
	OutputPath        string             `mapstructure:"output_path"`
	OutputFolder      string             `mapstructure:"output_folder"`
	OutputFormat      string             `mapstructure:"output_format"`
	OutputDestination string             `mapstructure:"output_destination"`
	CloudStorage      CloudStorageConfig `mapstructure:"cloud_storage"`
	KafkaEnabled      bool               `mapstructure:"kafka_enabled"`
	KafkaBrokerList   string             `mapstructure:"kafka_broker_list"`

	// postgres input
	PostgresEnabled bool   `mapstructure:"postgres_enabled"`
	DatabaseURL     string `mapstructure:"database_url"`
}

// LoadConfig initializes and reads the configuration using Viper
func LoadConfig(cfgFile string) (*Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Default config location
		viper.AddConfigPath("examples")
		viper.SetConfigName("config")
		viper.SetConfigType("json")
	}

	viper.AutomaticEnv() // Read in environment variables that match

	viper.SetDefault("min_confidence", 0.10)
	viper.SetDefault("min_support", 0.05)
	viper.SetDefault("dormant_days", 180)
	viper.SetDefault("output_destination", "local")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	decoderConfigOption := viper.DecoderConfigOption(func(config *mapstructure.DecoderConfig) {
		config.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			config.DecodeHook,
			mapstructure.StringToTimeHookFunc(time.RFC3339),
		)
	})
	if err := viper.Unmarshal(&config, decoderConfigOption); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	return &config, nil
}

// Now returns the configured reference time for recency calculations,
// falling back to the wall clock when the config leaves it unset.
func (cfg *Config) Now() time.Time {
	if cfg.AsOfDate.IsZero() {
		return time.Now()
	}
	return cfg.AsOfDate
}
