package main

import (
	"fmt"
	"log"
	"net/http"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("❌ Config error: %v", err)
	}

	data, err := LoadDataset(cfg.SPIDataFile, cfg.SalaryFile)
	if err != nil {
		log.Fatalf("❌ Dataset load failed: %v", err)
	}
	fmt.Printf("📊 Loaded %d players, %d salaries (%d combined rows, %d teams, %d archetypes)\n",
		len(data.Players), len(data.Salaries), len(data.Combined), len(data.Teams), len(data.Archetypes))

	s := &server{cfg: cfg, data: data}

	// Dashboard page
	http.HandleFunc("/", s.dashboardHandler)

	// Chart spec endpoints, re-fetched by the page on every widget change
	http.HandleFunc("/api/impact-chart", s.impactChartHandler)
	http.HandleFunc("/api/salary-chart", s.salaryChartHandler)

	fmt.Printf("🏀 SPI visualization running on http://localhost%s\n", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, nil); err != nil {
		log.Fatalf("❌ Server error: %v", err)
	}
}
