package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "./22_23_spi_data.csv", cfg.SPIDataFile)
	assert.Equal(t, "./nba_salaries.csv", cfg.SalaryFile)
	assert.False(t, cfg.Debug)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("SPIVIZ_SERVER_ADDR", ":9090")
	t.Setenv("SPIVIZ_DATA_SPI_CSV", "/data/spi.csv")
	t.Setenv("SPIVIZ_DEBUG", "true")

	cfg, err := loadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "/data/spi.csv", cfg.SPIDataFile)
	assert.True(t, cfg.Debug)
}
