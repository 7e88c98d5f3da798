package templates

// DashboardData carries the widget option lists and initial values for the
// dashboard page. Teams and Archetypes are in dataset order; every archetype
// starts selected, the age slider starts at the full observed range.
type DashboardData struct {
	Teams      []string
	Archetypes []string
	AgeMin     int
	AgeMax     int
	Metrics    []MetricOption
}

// MetricOption is one entry of the salary-chart metric dropdown.
type MetricOption struct {
	Value string
	Label string
}
