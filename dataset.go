package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Dataset holds everything the dashboard serves: the two loaded tables, the
// salary-anchored join, and the derived widget option lists. It is built once
// at startup and never mutated, so handlers share it without locking.
type Dataset struct {
	Players  []PlayerRecord
	Salaries []SalaryRecord
	Combined []CombinedRow

	Teams      []string
	Archetypes []string
	AgeMin     int
	AgeMax     int
}

// Primary dataset column headers.
const (
	colPlayer     = "Player"
	colTeam       = "Team"
	colArchetype  = "Offensive Archetype"
	colAge        = "Age"
	colPos        = "Pos"
	colOSPI       = "O-SPI"
	colDSPI       = "D-SPI"
	colSPI        = "SPI"
	colValueAdded = "Value Added"
)

// Salary dataset column headers. Extra columns in the file are ignored.
const (
	colSalaryName   = "Player Name"
	colSalaryAmount = "Salary"
)

// LoadDataset reads both CSV files, stages them in sqlite to derive the
// combined table and the dropdown option lists, and returns the immutable
// in-memory dataset. Any malformed input is a fatal startup error for the
// caller; the dashboard never runs on partial data.
func LoadDataset(spiPath, salaryPath string) (*Dataset, error) {
	players, err := readPlayersCSV(spiPath)
	if err != nil {
		return nil, fmt.Errorf("load SPI data %s: %w", spiPath, err)
	}
	salaries, err := readSalariesCSV(salaryPath)
	if err != nil {
		return nil, fmt.Errorf("load salary data %s: %w", salaryPath, err)
	}

	db, err := openStagingDB()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	if err := stagePlayers(db, players); err != nil {
		return nil, err
	}
	if err := stageSalaries(db, salaries); err != nil {
		return nil, err
	}

	combined, err := queryCombined(db)
	if err != nil {
		return nil, fmt.Errorf("join salary data: %w", err)
	}
	teams, err := queryDistinct(db, "team")
	if err != nil {
		return nil, err
	}
	archetypes, err := queryDistinct(db, "archetype")
	if err != nil {
		return nil, err
	}

	ds := &Dataset{
		Players:    players,
		Salaries:   salaries,
		Combined:   combined,
		Teams:      teams,
		Archetypes: archetypes,
	}
	for i, p := range players {
		if i == 0 || p.Age < ds.AgeMin {
			ds.AgeMin = p.Age
		}
		if i == 0 || p.Age > ds.AgeMax {
			ds.AgeMax = p.Age
		}
	}
	return ds, nil
}

// columnIndex maps the required headers to their positions, failing on any
// header the file is missing.
func columnIndex(header []string, required ...string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.TrimSpace(h)] = i
	}
	for _, col := range required {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("missing required column %q", col)
		}
	}
	return idx, nil
}

func readPlayersCSV(path string) ([]PlayerRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("empty file")
	}

	idx, err := columnIndex(records[0],
		colPlayer, colTeam, colArchetype, colAge, colPos, colOSPI, colDSPI, colSPI, colValueAdded)
	if err != nil {
		return nil, err
	}

	players := make([]PlayerRecord, 0, len(records)-1)
	for n, rec := range records[1:] {
		age, err := parseAge(rec[idx[colAge]])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", n+2, err)
		}
		oSPI, err := parseNumber(rec[idx[colOSPI]], colOSPI)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", n+2, err)
		}
		dSPI, err := parseNumber(rec[idx[colDSPI]], colDSPI)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", n+2, err)
		}
		spi, err := parseNumber(rec[idx[colSPI]], colSPI)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", n+2, err)
		}
		value, err := parseNumber(rec[idx[colValueAdded]], colValueAdded)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", n+2, err)
		}
		players = append(players, PlayerRecord{
			Name:       strings.TrimSpace(rec[idx[colPlayer]]),
			Team:       strings.TrimSpace(rec[idx[colTeam]]),
			Archetype:  strings.TrimSpace(rec[idx[colArchetype]]),
			Age:        age,
			Position:   strings.TrimSpace(rec[idx[colPos]]),
			OffImpact:  oSPI,
			DefImpact:  dSPI,
			Impact:     spi,
			ValueAdded: value,
		})
	}
	return players, nil
}

func readSalariesCSV(path string) ([]SalaryRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	// Salary exports carry more columns than we keep
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("empty file")
	}

	idx, err := columnIndex(records[0], colSalaryName, colSalaryAmount)
	if err != nil {
		return nil, err
	}

	salaries := make([]SalaryRecord, 0, len(records)-1)
	for n, rec := range records[1:] {
		if len(rec) <= idx[colSalaryName] || len(rec) <= idx[colSalaryAmount] {
			return nil, fmt.Errorf("row %d: too few columns", n+2)
		}
		salary, err := parseMoney(rec[idx[colSalaryAmount]])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", n+2, err)
		}
		salaries = append(salaries, SalaryRecord{
			Name:   strings.TrimSpace(rec[idx[colSalaryName]]),
			Salary: salary,
		})
	}
	return salaries, nil
}

// parseAge normalizes the age column to an integer; source files sometimes
// carry it as a float ("25.0").
func parseAge(s string) (int, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("bad %s value %q", colAge, s)
	}
	return int(v), nil
}

func parseNumber(s, column string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("bad %s value %q", column, s)
	}
	return v, nil
}

// parseMoney accepts plain numbers as well as "$10,000,000" style amounts.
func parseMoney(s string) (float64, error) {
	cleaned := strings.NewReplacer("$", "", ",", "").Replace(strings.TrimSpace(s))
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("bad %s value %q", colSalaryAmount, s)
	}
	return v, nil
}
