package chart

// Truncation budgets tuned against the longest labels that still fit a phone
// screen: "S Arts Sports and Recreation" (29) for industries and
// "arts and humanities" (19) for skill categories.
const (
	IndustryLabelMax      = 29
	SkillCategoryLabelMax = 19
)

// ShortenLabel truncates to max runes, replacing the tail with an ellipsis.
func ShortenLabel(label string, max int) string {
	if max <= 0 {
		return label
	}
	runes := []rune(label)
	if len(runes) <= max {
		return label
	}
	return string(runes[:max-1]) + "…"
}

func ShortenIndustry(label string) string {
	return ShortenLabel(label, IndustryLabelMax)
}

func ShortenSkillCategory(label string) string {
	return ShortenLabel(label, SkillCategoryLabelMax)
}
