package model

// ColorToken is an abstract color name consumed by UI renderers.
// The engine never deals in concrete color values.
type ColorToken string

const (
	ColorGreen  ColorToken = "green"
	ColorYellow ColorToken = "yellow"
	ColorOrange ColorToken = "orange"
	ColorRed    ColorToken = "red"
)

// ColorForScore maps a score to a color token. Bucket boundaries match the
// risk tiers (85/70/50). Out-of-range input degrades to the nearest bucket:
// anything above 100 is still green, anything negative is still red.
func ColorForScore(score int) ColorToken {
	switch {
	case score >= 85:
		return ColorGreen
	case score >= 70:
		return ColorYellow
	case score >= 50:
		return ColorOrange
	default:
		return ColorRed
	}
}

// LabelForRiskLevel returns the display string for a risk tier.
// Unknown values map to "Unknown" rather than failing.
func LabelForRiskLevel(level RiskLevel) string {
	switch level {
	case RiskLow:
		return "Low Risk"
	case RiskModerate:
		return "Moderate Risk"
	case RiskHigh:
		return "High Risk"
	case RiskVeryHigh:
		return "Very High Risk"
	default:
		return "Unknown"
	}
}
