package web

import (
	"log"
	"net/http"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// Chart renders a bar chart of one numeric projection column per team.
// The column defaults to the first float column and can be picked with
// ?col=. Load failures fall back to the dashboard's inline error page.
func (h *Handler) Chart(w http.ResponseWriter, r *http.Request) {
	set, err := h.loader.Load()
	if err != nil {
		h.Dashboard(w, r)
		return
	}

	if len(set.FloatColumns) == 0 {
		http.Error(w, "No numeric projection columns to chart", http.StatusBadRequest)
		return
	}

	col := r.URL.Query().Get("col")
	if col == "" {
		col = set.FloatColumns[0]
	}
	valid := false
	for _, c := range set.FloatColumns {
		if c == col {
			valid = true
			break
		}
	}
	if !valid {
		http.Error(w, "Unknown numeric column: "+col, http.StatusBadRequest)
		return
	}

	teams := make([]string, 0, len(set.Rows))
	values := make([]opts.BarData, 0, len(set.Rows))
	for _, row := range set.Rows {
		teams = append(teams, row["team_abbreviation"].String())
		num, _ := row[col].Float()
		values = append(values, opts.BarData{Value: num})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    pageTitle,
			Subtitle: col + " by team",
		}),
	)
	bar.SetXAxis(teams).AddSeries(col, values)

	if err := bar.Render(w); err != nil {
		log.Printf("render chart: %v", err)
	}
}
