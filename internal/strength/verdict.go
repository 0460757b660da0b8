package strength

// Color is a presentational token derived from a score
type Color string

const (
	ColorRed    Color = "red"
	ColorOrange Color = "orange"
	ColorGreen  Color = "green"
)

var colorHexCodes = map[Color]string{
	ColorRed:    "#ff4b4b",
	ColorOrange: "#ffa726",
	ColorGreen:  "#66bb6a",
}

// Hex returns the hex code used when rendering the color
func (c Color) Hex() string {
	return colorHexCodes[c]
}

// Verdict is the qualitative label derived from a score
type Verdict string

const (
	VerdictWeak     Verdict = "Weak"
	VerdictModerate Verdict = "Moderate"
	VerdictStrong   Verdict = "Strong"
)

var verdictMessages = map[Verdict]string{
	VerdictWeak:     "Please strengthen your password",
	VerdictModerate: "Could be stronger",
	VerdictStrong:   "Good job!",
}

// Message returns the advice shown next to the verdict
func (v Verdict) Message() string {
	return verdictMessages[v]
}

const (
	weakScoreCeiling     = 4
	moderateScoreCeiling = 8
)

// ColorFor maps a score to its color; scores above MaxScore cannot
// be produced by Evaluate and are treated as green
func ColorFor(score int) Color {
	switch {
	case score <= weakScoreCeiling:
		return ColorRed
	case score <= moderateScoreCeiling:
		return ColorOrange
	default:
		return ColorGreen
	}
}

// VerdictFor maps a score to its verdict using the same boundaries
// as ColorFor
func VerdictFor(score int) Verdict {
	switch {
	case score <= weakScoreCeiling:
		return VerdictWeak
	case score <= moderateScoreCeiling:
		return VerdictModerate
	default:
		return VerdictStrong
	}
}
