package main

// PlayerRecord is one row of the primary SPI dataset. A traded player may
// appear once per team stint, so Name is not globally unique.
type PlayerRecord struct {
	Name       string  `json:"player"`
	Team       string  `json:"team"`
	Archetype  string  `json:"offensive_archetype"`
	Age        int     `json:"age"`
	Position   string  `json:"pos"`
	OffImpact  float64 `json:"o_spi"`
	DefImpact  float64 `json:"d_spi"`
	Impact     float64 `json:"spi"`
	ValueAdded float64 `json:"value_added"`
}

// SalaryRecord is one row of the salary dataset, reduced to name + salary.
type SalaryRecord struct {
	Name   string  `json:"player_name"`
	Salary float64 `json:"salary"`
}

// CombinedRow is a salary row left-joined with the primary dataset on exact
// player name. Impact fields are nil when the name has no primary match.
type CombinedRow struct {
	Name       string   `json:"player_name"`
	Salary     float64  `json:"salary"`
	Team       *string  `json:"team"`
	Archetype  *string  `json:"offensive_archetype"`
	Age        *int     `json:"age"`
	Position   *string  `json:"pos"`
	OffImpact  *float64 `json:"o_spi"`
	DefImpact  *float64 `json:"d_spi"`
	Impact     *float64 `json:"spi"`
	ValueAdded *float64 `json:"value_added"`
}

// Metric selects which impact measure the salary scatter plots on x.
type Metric string

const (
	MetricOffense Metric = "O-SPI"
	MetricDefense Metric = "D-SPI"
	MetricOverall Metric = "SPI"
)

// metricValue returns the chosen impact measure for a combined row, or nil
// when the row never matched the primary dataset.
func metricValue(row *CombinedRow, metric Metric) *float64 {
	switch metric {
	case MetricDefense:
		return row.DefImpact
	case MetricOverall:
		return row.Impact
	default:
		return row.OffImpact
	}
}
