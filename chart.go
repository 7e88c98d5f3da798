package main

import "strconv"

// Colors shared by both charts.
const (
	goodColor    = "#008000" // green
	badColor     = "#FF0000" // red
	offenseColor = "#0000FF" // blue
	defenseColor = "#2f4f4f" // grey
)

const fontFamily = "Futura, Arial, sans-serif"

// ChartSpec is a Plotly-shaped figure: the page script hands Data and Layout
// straight to Plotly.react.
type ChartSpec struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

type Trace struct {
	Type          string     `json:"type"`
	Mode          string     `json:"mode"`
	X             []float64  `json:"x"`
	Y             []float64  `json:"y"`
	Text          []string   `json:"text,omitempty"`
	CustomData    [][]string `json:"customdata,omitempty"`
	HoverTemplate string     `json:"hovertemplate,omitempty"`
	HoverInfo     string     `json:"hoverinfo,omitempty"`
	Line          *LineStyle `json:"line,omitempty"`
	ShowLegend    bool       `json:"showlegend"`
}

type LineStyle struct {
	Color string `json:"color"`
}

type Layout struct {
	Autosize     bool   `json:"autosize"`
	Width        int    `json:"width,omitempty"`
	Height       int    `json:"height,omitempty"`
	Font         Font   `json:"font"`
	XAxis        Axis   `json:"xaxis"`
	YAxis        Axis   `json:"yaxis"`
	PlotBGColor  string `json:"plot_bgcolor,omitempty"`
	PaperBGColor string `json:"paper_bgcolor,omitempty"`
}

type Font struct {
	Family string `json:"family"`
}

type Axis struct {
	Title       string      `json:"title,omitempty"`
	Range       *[2]float64 `json:"range,omitempty"`
	ScaleAnchor string      `json:"scaleanchor,omitempty"`
}

// buildImpactScatter plots offensive vs defensive impact for the filtered
// players. The canvas is a fixed 800x800 square with x pinned to the y scale,
// and the y-axis is clamped to [-5, 5]: points outside are clipped by the
// viewport, never removed from the trace.
func buildImpactScatter(players []PlayerRecord) ChartSpec {
	trace := Trace{
		Type:       "scatter",
		Mode:       "markers",
		X:          make([]float64, 0, len(players)),
		Y:          make([]float64, 0, len(players)),
		Text:       make([]string, 0, len(players)),
		CustomData: make([][]string, 0, len(players)),
		HoverTemplate: "<b>%{text}</b><br>" +
			"Offensive Stable Player Impact: %{x:.2f}<br>" +
			"Defensive Stable Player Impact: %{y:.2f}<br>" +
			"Pos: %{customdata[0]}<br>" +
			"Age: %{customdata[1]}<br>" +
			"Value Added: %{customdata[2]}<extra></extra>",
	}
	for _, p := range players {
		trace.X = append(trace.X, p.OffImpact)
		trace.Y = append(trace.Y, p.DefImpact)
		trace.Text = append(trace.Text, p.Name)
		trace.CustomData = append(trace.CustomData, []string{
			p.Position, itoa(p.Age), ftoa(p.ValueAdded),
		})
	}

	yRange := [2]float64{-5, 5}
	return ChartSpec{
		Data: []Trace{trace},
		Layout: Layout{
			Autosize: true,
			Width:    800,
			Height:   800,
			Font:     Font{Family: fontFamily},
			XAxis: Axis{
				Title:       "Offensive Stable Player Impact",
				ScaleAnchor: "y",
			},
			YAxis: Axis{
				Title: "Defensive Stable Player Impact",
				Range: &yRange,
			},
			PlotBGColor:  "#ffffff",
			PaperBGColor: "#ffffff",
		},
	}
}

// buildSalaryScatter plots the chosen impact metric against salary and
// overlays an OLS trendline fit in log-salary space. Rows without a metric
// value are left out; a degenerate fit just omits the line.
func buildSalaryScatter(rows []CombinedRow, metric Metric) ChartSpec {
	scatter := Trace{
		Type: "scatter",
		Mode: "markers",
		X:    make([]float64, 0, len(rows)),
		Y:    make([]float64, 0, len(rows)),
		HoverTemplate: "<b>%{text}</b><br>" +
			"O-SPI: %{customdata[0]}<br>" +
			"D-SPI: %{customdata[1]}<br>" +
			"Salary: %{customdata[2]}<br>" +
			"Pos: %{customdata[3]}<br>" +
			"Age: %{customdata[4]}<extra></extra>",
	}
	for i := range rows {
		r := &rows[i]
		x := metricValue(r, metric)
		if x == nil {
			continue
		}
		scatter.X = append(scatter.X, *x)
		scatter.Y = append(scatter.Y, r.Salary)
		scatter.Text = append(scatter.Text, r.Name)
		scatter.CustomData = append(scatter.CustomData, []string{
			fptr(r.OffImpact), fptr(r.DefImpact), ftoa(r.Salary), sptr(r.Position), iptr(r.Age),
		})
	}

	spec := ChartSpec{
		Data: []Trace{scatter},
		Layout: Layout{
			Autosize:     true,
			Font:         Font{Family: fontFamily},
			XAxis:        Axis{Title: string(metric)},
			YAxis:        Axis{Title: "Salary"},
			PlotBGColor:  "#ffffff",
			PaperBGColor: "#ffffff",
		},
	}

	if line, ok := fitLogTrend(scatter.X, scatter.Y); ok {
		spec.Data = append(spec.Data, Trace{
			Type:      "scatter",
			Mode:      "lines",
			X:         line.X,
			Y:         line.Y,
			HoverInfo: "skip",
			Line:      &LineStyle{Color: trendColor(metric)},
		})
	}
	return spec
}

// trendColor is total over the three metrics; the dropdown closes the enum.
func trendColor(metric Metric) string {
	switch metric {
	case MetricOverall:
		return goodColor
	case MetricOffense:
		return offenseColor
	default:
		return defenseColor
	}
}

// Hover payload formatting. Joined rows carry nullable fields; a missing
// value renders as a dash.

func itoa(v int) string {
	return strconv.Itoa(v)
}

func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func fptr(v *float64) string {
	if v == nil {
		return "-"
	}
	return ftoa(*v)
}

func iptr(v *int) string {
	if v == nil {
		return "-"
	}
	return itoa(*v)
}

func sptr(v *string) string {
	if v == nil {
		return "-"
	}
	return *v
}
