package strength

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorFor(t *testing.T) {
	testCases := map[int]Color{
		-1: ColorRed,
		0:  ColorRed,
		4:  ColorRed,
		5:  ColorOrange,
		8:  ColorOrange,
		9:  ColorGreen,
		12: ColorGreen,
		13: ColorGreen,
	}
	for score, expected := range testCases {
		assert.Equalf(t, expected, ColorFor(score), "score %v", score)
	}
}

func TestVerdictFor(t *testing.T) {
	testCases := map[int]Verdict{
		-1: VerdictWeak,
		0:  VerdictWeak,
		4:  VerdictWeak,
		5:  VerdictModerate,
		8:  VerdictModerate,
		9:  VerdictStrong,
		12: VerdictStrong,
		13: VerdictStrong,
	}
	for score, expected := range testCases {
		assert.Equalf(t, expected, VerdictFor(score), "score %v", score)
	}
}

func TestVerdictAndColorPresentation(t *testing.T) {
	assert.Equal(t, "#ff4b4b", ColorRed.Hex())
	assert.Equal(t, "#ffa726", ColorOrange.Hex())
	assert.Equal(t, "#66bb6a", ColorGreen.Hex())
	assert.Equal(t, "Please strengthen your password", VerdictWeak.Message())
	assert.Equal(t, "Could be stronger", VerdictModerate.Message())
	assert.Equal(t, "Good job!", VerdictStrong.Message())
}
