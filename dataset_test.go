package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const spiCSV = `Player,Team,Offensive Archetype,Age,Pos,O-SPI,D-SPI,SPI,Value Added
Alice Adams,ATL,Slasher,25.0,PG,3.1,-1.2,1.9,4.0
Bob Brown,BOS,Shooter,30,SG,1.0,2.0,3.0,6.5
Cara Cole,ATL,Shooter,22,SF,0.5,0.0,0.5,1.1
Bob Brown,CHI,Shooter,30,SG,0.8,1.5,2.3,2.0
Dana Dorn,,Slasher,28,C,-0.5,3.0,2.5,3.3
`

const salaryCSV = `Rank,Player Name,Salary,Season
1,Alice Adams,"$10,500,000",22-23
2,Bob Brown,8000000,22-23
3,Zed Zero,1500000,22-23
`

func writeDatasetFiles(t *testing.T) (spiPath, salaryPath string) {
	t.Helper()
	dir := t.TempDir()
	spiPath = filepath.Join(dir, "spi.csv")
	salaryPath = filepath.Join(dir, "salaries.csv")
	require.NoError(t, os.WriteFile(spiPath, []byte(spiCSV), 0o644))
	require.NoError(t, os.WriteFile(salaryPath, []byte(salaryCSV), 0o644))
	return spiPath, salaryPath
}

func TestLoadDataset(t *testing.T) {
	t.Parallel()

	spiPath, salaryPath := writeDatasetFiles(t)
	ds, err := LoadDataset(spiPath, salaryPath)
	require.NoError(t, err)

	assert.Len(t, ds.Players, 5)
	assert.Len(t, ds.Salaries, 3)

	// Age column normalized to int even when the source says "25.0"
	assert.Equal(t, 25, ds.Players[0].Age)
	assert.Equal(t, 22, ds.AgeMin)
	assert.Equal(t, 30, ds.AgeMax)

	// Money strings with $ and commas parse
	assert.Equal(t, 10_500_000.0, ds.Salaries[0].Salary)

	// Distinct teams in first-appearance order, empty team dropped
	assert.Equal(t, []string{"ATL", "BOS", "CHI"}, ds.Teams)
	assert.Equal(t, []string{"Slasher", "Shooter"}, ds.Archetypes)
}

// The join is salary-anchored: every salary row survives, once per matching
// team stint, and a name with no primary match keeps null impact fields.
func TestLoadDatasetJoin(t *testing.T) {
	t.Parallel()

	spiPath, salaryPath := writeDatasetFiles(t)
	ds, err := LoadDataset(spiPath, salaryPath)
	require.NoError(t, err)

	// Alice x1, Bob x2 (traded), Zed x1 unmatched
	require.Len(t, ds.Combined, 4)

	byName := map[string]int{}
	for _, row := range ds.Combined {
		byName[row.Name]++
	}
	assert.Equal(t, map[string]int{"Alice Adams": 1, "Bob Brown": 2, "Zed Zero": 1}, byName)

	var zed *CombinedRow
	for i := range ds.Combined {
		if ds.Combined[i].Name == "Zed Zero" {
			zed = &ds.Combined[i]
		}
	}
	require.NotNil(t, zed)
	assert.Equal(t, 1_500_000.0, zed.Salary)
	assert.Nil(t, zed.Team)
	assert.Nil(t, zed.Archetype)
	assert.Nil(t, zed.Age)
	assert.Nil(t, zed.OffImpact)

	// Filtering with the widest selection keeps every matched stint and
	// drops only the null rows.
	sel := ds.SelectAll()
	filtered := FilterCombined(ds.Combined, sel)
	assert.Len(t, filtered, 3)
}

func TestLoadDatasetMissingColumn(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	spiPath := filepath.Join(dir, "spi.csv")
	salaryPath := filepath.Join(dir, "salaries.csv")

	// Primary file without the archetype column
	broken := `Player,Team,Age,Pos,O-SPI,D-SPI,SPI,Value Added
Alice Adams,ATL,25,PG,3.1,-1.2,1.9,4.0
`
	require.NoError(t, os.WriteFile(spiPath, []byte(broken), 0o644))
	require.NoError(t, os.WriteFile(salaryPath, []byte(salaryCSV), 0o644))

	_, err := LoadDataset(spiPath, salaryPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Offensive Archetype")
}

func TestLoadDatasetMissingSalaryColumn(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	spiPath := filepath.Join(dir, "spi.csv")
	salaryPath := filepath.Join(dir, "salaries.csv")
	require.NoError(t, os.WriteFile(spiPath, []byte(spiCSV), 0o644))
	require.NoError(t, os.WriteFile(salaryPath, []byte("Player Name,Amount\nA,1\n"), 0o644))

	_, err := LoadDataset(spiPath, salaryPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Salary")
}

func TestLoadDatasetMissingFile(t *testing.T) {
	t.Parallel()

	_, salaryPath := writeDatasetFiles(t)
	_, err := LoadDataset(filepath.Join(t.TempDir(), "nope.csv"), salaryPath)
	require.Error(t, err)
}

func TestLoadDatasetBadNumber(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	spiPath := filepath.Join(dir, "spi.csv")
	salaryPath := filepath.Join(dir, "salaries.csv")

	bad := `Player,Team,Offensive Archetype,Age,Pos,O-SPI,D-SPI,SPI,Value Added
Alice Adams,ATL,Slasher,young,PG,3.1,-1.2,1.9,4.0
`
	require.NoError(t, os.WriteFile(spiPath, []byte(bad), 0o644))
	require.NoError(t, os.WriteFile(salaryPath, []byte(salaryCSV), 0o644))

	_, err := LoadDataset(spiPath, salaryPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Age")
}
