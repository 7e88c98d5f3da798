package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config is everything the process reads from the outside: where the two
// datasets live and where to serve the dashboard.
type Config struct {
	Addr        string
	SPIDataFile string
	SalaryFile  string
	Debug       bool
}

// loadConfig reads an optional config.yaml from the working directory with
// SPIVIZ_* environment variables layered on top of the defaults.
func loadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("data.spi_csv", "./22_23_spi_data.csv")
	v.SetDefault("data.salary_csv", "./nba_salaries.csv")
	v.SetDefault("debug", false)

	v.SetEnvPrefix("SPIVIZ")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		// No config file is fine, defaults + env cover everything
	}

	return &Config{
		Addr:        v.GetString("server.addr"),
		SPIDataFile: v.GetString("data.spi_csv"),
		SalaryFile:  v.GetString("data.salary_csv"),
		Debug:       v.GetBool("debug"),
	}, nil
}
