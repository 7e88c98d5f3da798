package templates

import (
	"bytes"
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

// Dashboard renders the whole visualization page: intro text, the four
// filter widgets, and the two chart surfaces. The inline script re-fetches
// the chart-spec endpoints whenever a widget changes: the metric dropdown
// refreshes only the salary chart, every other widget refreshes both.
func Dashboard(data DashboardData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer

		buf.WriteString(`<!doctype html><html lang="en"><head><meta charset="UTF-8"><meta name="viewport" content="width=device-width, initial-scale=1.0"><title>Stable Player Impact Visualization</title><script src="https://cdn.plot.ly/plotly-2.32.0.min.js"></script><style>body{font-family:Futura, Arial, sans-serif;color:#333;margin:0 auto;max-width:960px;padding:1rem}label{display:block;font-weight:600;margin-top:1rem}select,input[type=range]{width:100%;padding:0.3rem}#metric{width:50%}.chart{display:flex;justify-content:center;align-items:center}.intro{text-align:center;margin:10px;color:#555}</style></head><body>`)

		// Intro header
		buf.WriteString(`<div class="intro"><h1>Stable Player Impact Visualization</h1><p>Stable Player Impact (SPI) is a basketball metric assessing a player's overall impact on their team, merging box score data and luck-adjusted on-off statistics. It quantifies both offensive and defensive contributions, offering a comprehensive numerical value to reflect a player's effectiveness on the court.</p><a href="https://nbacouchside.net/2022/11/05/introducing-nba-stable-player-impact-spi/" target="_blank">Click here for more information</a></div>`)

		// Team dropdown, "All Teams" first
		buf.WriteString(`<label for="team">Select a Team:</label><select id="team"><option value="ALL">All Teams</option>`)
		for _, team := range data.Teams {
			writeOption(&buf, team, team, false)
		}
		buf.WriteString(`</select>`)

		// Archetype multi-select, everything selected initially
		buf.WriteString(`<label for="archetypes">Select an Offensive Archetype:</label><select id="archetypes" multiple size="`)
		buf.WriteString(strconv.Itoa(len(data.Archetypes)))
		buf.WriteString(`">`)
		for _, archetype := range data.Archetypes {
			writeOption(&buf, archetype, archetype, true)
		}
		buf.WriteString(`</select>`)

		// Age range slider pair over the observed range
		minStr := strconv.Itoa(data.AgeMin)
		maxStr := strconv.Itoa(data.AgeMax)
		buf.WriteString(`<label>Select Age Range: <span id="age-label">` + minStr + ` - ` + maxStr + `</span></label>`)
		buf.WriteString(`<input type="range" id="age-min" min="` + minStr + `" max="` + maxStr + `" step="1" value="` + minStr + `">`)
		buf.WriteString(`<input type="range" id="age-max" min="` + minStr + `" max="` + maxStr + `" step="1" value="` + maxStr + `">`)

		// First chart
		buf.WriteString(`<div class="chart"><div id="spi-scatter"></div></div>`)

		// Second chart with its metric dropdown
		buf.WriteString(`<h1 style="text-align:center">Stable Player Impact vs (Log Transformed) Salary</h1>`)
		buf.WriteString(`<select id="metric">`)
		for _, m := range data.Metrics {
			writeOption(&buf, m.Value, m.Label, false)
		}
		buf.WriteString(`</select><div id="salary-scatter"></div>`)

		buf.WriteString(`<script>
		const teamSel = document.getElementById('team');
		const archetypeSel = document.getElementById('archetypes');
		const ageMin = document.getElementById('age-min');
		const ageMax = document.getElementById('age-max');
		const ageLabel = document.getElementById('age-label');
		const metricSel = document.getElementById('metric');

		function selectionParams() {
			const p = new URLSearchParams();
			p.set('team', teamSel.value);
			for (const o of archetypeSel.selectedOptions) p.append('archetype', o.value);
			p.set('age_min', ageMin.value);
			p.set('age_max', ageMax.value);
			return p;
		}
		async function renderChart(el, url) {
			const resp = await fetch(url);
			if (!resp.ok) return;
			const fig = await resp.json();
			Plotly.react(el, fig.data, fig.layout);
		}
		function refreshImpact() {
			renderChart('spi-scatter', '/api/impact-chart?' + selectionParams());
		}
		function refreshSalary() {
			const p = selectionParams();
			p.set('metric', metricSel.value);
			renderChart('salary-scatter', '/api/salary-chart?' + p);
		}
		function refreshBoth() {
			ageLabel.innerText = ageMin.value + ' - ' + ageMax.value;
			refreshImpact();
			refreshSalary();
		}
		teamSel.addEventListener('change', refreshBoth);
		archetypeSel.addEventListener('change', refreshBoth);
		ageMin.addEventListener('change', refreshBoth);
		ageMax.addEventListener('change', refreshBoth);
		metricSel.addEventListener('change', refreshSalary);
		refreshBoth();
		</script></body></html>`)

		_, err := w.Write(buf.Bytes())
		return err
	})
}

func writeOption(buf *bytes.Buffer, value, label string, selected bool) {
	buf.WriteString(`<option value="`)
	buf.WriteString(templ.EscapeString(value))
	if selected {
		buf.WriteString(`" selected>`)
	} else {
		buf.WriteString(`">`)
	}
	buf.WriteString(templ.EscapeString(label))
	buf.WriteString(`</option>`)
}
