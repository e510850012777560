// Package chart maps aggregate tables to declarative chart specs the mobile
// UI renders directly. Every builder carries mobile-safe defaults (horizontal
// layouts, short labels, tooltips on) and degrades to a placeholder state
// instead of erroring on empty input.
package chart

import "pad2skills/internal/transform"

const (
	KindDonut         = "donut"
	KindHorizontalBar = "horizontal_bar"
	KindHeatmap       = "heatmap"
	KindNoData        = "no_data"
)

// prismPalette is the qualitative color cycle shared by the donut slices.
var prismPalette = []string{
	"#5F4690", "#1D6996", "#38A6A5", "#0F8554", "#73AF48",
	"#EDAD08", "#E17C05", "#CC503E", "#94346E", "#6F4070", "#994E95",
}

type Spec struct {
	Kind    string       `json:"kind"`
	Title   string       `json:"title,omitempty"`
	Message string       `json:"message,omitempty"`
	Height  int          `json:"height,omitempty"`
	Donut   *DonutSpec   `json:"donut,omitempty"`
	Bar     *BarSpec     `json:"bar,omitempty"`
	Heatmap *HeatmapSpec `json:"heatmap,omitempty"`
}

type DonutSpec struct {
	Labels     []string  `json:"labels"`
	Values     []int     `json:"values"`
	Colors     []string  `json:"colors"`
	HoleSize   float64   `json:"hole_size"`
	Pull       []float64 `json:"pull"`
	Legend     Legend    `json:"legend"`
	Tooltips   bool      `json:"tooltips"`
	CenterText string    `json:"center_text,omitempty"`
}

type Legend struct {
	Orientation string `json:"orientation"`
	Position    string `json:"position"`
}

type BarSpec struct {
	Labels      []string `json:"labels"`
	Values      []int    `json:"values"`
	Orientation string   `json:"orientation"`
	ValueLabels string   `json:"value_labels"`
	Tooltips    bool     `json:"tooltips"`
}

type HeatmapSpec struct {
	X          []string    `json:"x"`
	Y          []string    `json:"y"`
	Z          [][]float64 `json:"z"`
	ColorScale string      `json:"color_scale"`
	Percentage bool        `json:"percentage"`
	XSide      string      `json:"x_side"`
	YReversed  bool        `json:"y_reversed"`
	Tooltips   bool        `json:"tooltips"`
}

// NoData is the placeholder shown in place of a chart when the filtered
// table has no rows.
func NoData(message string) Spec {
	if message == "" {
		message = "No results for the selected filters."
	}
	return Spec{Kind: KindNoData, Message: message}
}

// Donut builds the occupations-by-industry donut: 0.4 hole, horizontal
// legend under the chart, top three slices pulled out.
func Donut(groups []transform.GroupCount, centerText string) Spec {
	if len(groups) == 0 {
		return NoData("No occupations found for the selected project.")
	}

	labels := make([]string, 0, len(groups))
	values := make([]int, 0, len(groups))
	colors := make([]string, 0, len(groups))
	pull := make([]float64, 0, len(groups))
	for i, g := range groups {
		labels = append(labels, g.Key)
		values = append(values, g.Count)
		colors = append(colors, prismPalette[i%len(prismPalette)])
		if i < 3 {
			pull = append(pull, 0.05)
		} else {
			pull = append(pull, 0)
		}
	}

	return Spec{
		Kind:   KindDonut,
		Height: 700,
		Donut: &DonutSpec{
			Labels:     labels,
			Values:     values,
			Colors:     colors,
			HoleSize:   0.4,
			Pull:       pull,
			Legend:     Legend{Orientation: "h", Position: "bottom"},
			Tooltips:   true,
			CenterText: centerText,
		},
	}
}

// HorizontalBar builds a category bar chart laid on its side so long labels
// fit a phone screen. Height scales with the number of bars.
func HorizontalBar(groups []transform.GroupCount, title string) Spec {
	if len(groups) == 0 {
		return NoData("")
	}

	labels := make([]string, 0, len(groups))
	values := make([]int, 0, len(groups))
	for _, g := range groups {
		labels = append(labels, g.Key)
		values = append(values, g.Count)
	}

	return Spec{
		Kind:   KindHorizontalBar,
		Title:  title,
		Height: barHeight(len(groups)),
		Bar: &BarSpec{
			Labels:      labels,
			Values:      values,
			Orientation: "h",
			ValueLabels: "outside",
			Tooltips:    true,
		},
	}
}

// Heatmap builds the skills-by-preparation heatmap from a percentage pivot.
// Values at or under 100 render as percentages in tooltips, otherwise as
// counts.
func Heatmap(p transform.Pivot, title string) Spec {
	if p.Empty() {
		return NoData("No skills found for the selected filters.")
	}

	z := p.Percentages
	maxVal := 0.0
	for _, row := range z {
		for _, v := range row {
			if v > maxVal {
				maxVal = v
			}
		}
	}

	return Spec{
		Kind:   KindHeatmap,
		Title:  title,
		Height: heatmapHeight(len(p.Rows)),
		Heatmap: &HeatmapSpec{
			X:          p.Cols,
			Y:          p.Rows,
			Z:          z,
			ColorScale: "Blues",
			Percentage: maxVal <= 100,
			XSide:      "top",
			YReversed:  true,
			Tooltips:   true,
		},
	}
}

func barHeight(bars int) int {
	h := bars * 40
	if h < 300 {
		return 300
	}
	return h
}

func heatmapHeight(rows int) int {
	h := rows * 40
	if h < 400 {
		return 400
	}
	return h
}
