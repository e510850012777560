package chart

import (
	"testing"

	"pad2skills/internal/transform"
)

func TestDonut(t *testing.T) {
	spec := Donut([]transform.GroupCount{
		{Key: "Energy", Count: 12},
		{Key: "Water", Count: 7},
		{Key: "Transport", Count: 4},
		{Key: "Health", Count: 1},
	}, "Occupation Counts by Industry")

	if spec.Kind != KindDonut {
		t.Fatalf("expected donut, got %s", spec.Kind)
	}
	if spec.Donut.HoleSize != 0.4 {
		t.Fatalf("unexpected hole size %v", spec.Donut.HoleSize)
	}
	if !spec.Donut.Tooltips {
		t.Fatalf("tooltips must be enabled")
	}
	if spec.Donut.Legend.Orientation != "h" || spec.Donut.Legend.Position != "bottom" {
		t.Fatalf("unexpected legend %+v", spec.Donut.Legend)
	}
	// Top three slices pull out, the rest stay in place.
	want := []float64{0.05, 0.05, 0.05, 0}
	for i, p := range spec.Donut.Pull {
		if p != want[i] {
			t.Fatalf("unexpected pull %v", spec.Donut.Pull)
		}
	}
}

func TestDonut_EmptyBecomesPlaceholder(t *testing.T) {
	spec := Donut(nil, "")
	if spec.Kind != KindNoData {
		t.Fatalf("expected no_data, got %s", spec.Kind)
	}
	if spec.Message == "" {
		t.Fatalf("placeholder must carry a message")
	}
}

func TestHorizontalBar_HeightScalesWithBars(t *testing.T) {
	few := HorizontalBar([]transform.GroupCount{{Key: "a", Count: 1}}, "")
	if few.Height != 300 {
		t.Fatalf("expected floor height 300, got %d", few.Height)
	}

	groups := make([]transform.GroupCount, 12)
	for i := range groups {
		groups[i] = transform.GroupCount{Key: "k", Count: i}
	}
	many := HorizontalBar(groups, "")
	if many.Height != 480 {
		t.Fatalf("expected 480, got %d", many.Height)
	}
	if many.Bar.Orientation != "h" {
		t.Fatalf("bars must be horizontal")
	}
}

func TestHeatmap(t *testing.T) {
	p := transform.Pivot{
		Rows:        []string{"communication", "digital"},
		Cols:        []string{"Low (1-2)", "High (4-5)"},
		Counts:      [][]int{{2, 0}, {1, 1}},
		Percentages: [][]float64{{66.7, 0}, {33.3, 100}},
	}

	spec := Heatmap(p, "")
	if spec.Kind != KindHeatmap {
		t.Fatalf("expected heatmap, got %s", spec.Kind)
	}
	if !spec.Heatmap.Percentage {
		t.Fatalf("values <= 100 should render as percentages")
	}
	if spec.Heatmap.XSide != "top" || !spec.Heatmap.YReversed {
		t.Fatalf("unexpected axis layout %+v", spec.Heatmap)
	}
	if spec.Height != 400 {
		t.Fatalf("expected floor height 400, got %d", spec.Height)
	}
}

func TestHeatmap_EmptyBecomesPlaceholder(t *testing.T) {
	spec := Heatmap(transform.Pivot{}, "")
	if spec.Kind != KindNoData {
		t.Fatalf("expected no_data, got %s", spec.Kind)
	}
}

func TestShortenLabel(t *testing.T) {
	if got := ShortenIndustry("S Arts Sports and Recreation"); got != "S Arts Sports and Recreation" {
		t.Fatalf("29-rune label must not truncate, got %q", got)
	}
	if got := ShortenIndustry("Professional Scientific and Technical Activities"); len([]rune(got)) != IndustryLabelMax {
		t.Fatalf("expected %d runes, got %q", IndustryLabelMax, got)
	}
	if got := ShortenSkillCategory("arts and humanities"); got != "arts and humanities" {
		t.Fatalf("19-rune label must not truncate, got %q", got)
	}
	long := ShortenSkillCategory("information and communication")
	if want := "information and co…"; long != want {
		t.Fatalf("expected %q, got %q", want, long)
	}
}
