package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/suryaramak/SPI-Data-Visualization/templates"

	"github.com/a-h/templ"
)

// server wires the immutable dataset into the HTTP handlers. Handlers only
// derive filtered copies, so the dataset is shared without locking.
type server struct {
	cfg  *Config
	data *Dataset
}

func (s *server) dashboardHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	component := templates.Dashboard(templates.DashboardData{
		Teams:      s.data.Teams,
		Archetypes: s.data.Archetypes,
		AgeMin:     s.data.AgeMin,
		AgeMax:     s.data.AgeMax,
		Metrics: []templates.MetricOption{
			{Value: string(MetricOffense), Label: "O-SPI vs Salary"},
			{Value: string(MetricDefense), Label: "D-SPI vs Salary"},
			{Value: string(MetricOverall), Label: "SPI vs Salary"},
		},
	})
	templ.Handler(component).ServeHTTP(w, r)
}

// impactChartHandler recomputes the impact scatter from the current widget
// values. It depends on team, archetypes and age range only.
func (s *server) impactChartHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Only GET allowed", http.StatusMethodNotAllowed)
		return
	}
	sel, err := s.parseSelection(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	subset := FilterPlayers(s.data.Players, sel)
	if s.cfg.Debug {
		fmt.Printf("🔍 Impact chart: %d of %d players match\n", len(subset), len(s.data.Players))
	}
	writeJSON(w, buildImpactScatter(subset))
}

// salaryChartHandler additionally depends on the metric dropdown.
func (s *server) salaryChartHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Only GET allowed", http.StatusMethodNotAllowed)
		return
	}
	sel, err := s.parseSelection(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	metric, err := parseMetric(r.URL.Query().Get("metric"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	subset := FilterCombined(s.data.Combined, sel)
	if s.cfg.Debug {
		fmt.Printf("🔍 Salary chart (%s): %d of %d rows match\n", metric, len(subset), len(s.data.Combined))
	}
	writeJSON(w, buildSalaryScatter(subset, metric))
}

// parseSelection maps query parameters onto a FilterSelection. The "ALL"
// dropdown sentinel becomes the AllTeams tag here and is never compared
// against row teams. Absent age bounds default to the full observed range;
// absent archetype parameters are an empty selection, which matches nothing.
func (s *server) parseSelection(r *http.Request) (FilterSelection, error) {
	q := r.URL.Query()

	team := AllTeams()
	if t := q.Get("team"); t != "" && t != "ALL" {
		team = SpecificTeam(t)
	}

	archetypes := make(map[string]bool)
	for _, a := range q["archetype"] {
		archetypes[a] = true
	}

	ageMin, ageMax := s.data.AgeMin, s.data.AgeMax
	var err error
	if v := q.Get("age_min"); v != "" {
		if ageMin, err = strconv.Atoi(v); err != nil {
			return FilterSelection{}, fmt.Errorf("bad age_min %q", v)
		}
	}
	if v := q.Get("age_max"); v != "" {
		if ageMax, err = strconv.Atoi(v); err != nil {
			return FilterSelection{}, fmt.Errorf("bad age_max %q", v)
		}
	}

	return FilterSelection{
		Team:       team,
		Archetypes: archetypes,
		AgeMin:     ageMin,
		AgeMax:     ageMax,
	}, nil
}

func parseMetric(v string) (Metric, error) {
	switch Metric(v) {
	case MetricOffense, MetricDefense, MetricOverall:
		return Metric(v), nil
	case "":
		return MetricOffense, nil
	default:
		return "", fmt.Errorf("unknown metric %q", v)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
