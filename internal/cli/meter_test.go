package cli

import (
	"pwmeter/internal/strength"
	"testing"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typeInto(t *testing.T, m *MeterModel, text string) {
	t.Helper()
	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

func TestMeterEmptyInputShowsOnlyPrompt(t *testing.T) {
	m := CreateMeter(MeterOpts{})
	view := m.View()
	assert.Contains(t, view, DefaultMeterTitle)
	assert.Contains(t, view, meterHelpText)
	assert.NotContains(t, view, "Strength Score")
	assert.NotContains(t, view, "Suggestions")
	assert.Equal(t, strength.Evaluate(""), m.Result())
}

func TestMeterEvaluatesOnEveryKeystroke(t *testing.T) {
	m := CreateMeter(MeterOpts{})
	typeInto(t, m, "pass")
	assert.Equal(t, "pass", m.GetValue())
	assert.Equal(t, strength.Evaluate("pass"), m.Result())

	typeInto(t, m, "W0rd!")
	assert.Equal(t, "passW0rd!", m.GetValue())
	assert.Equal(t, 12, m.Result().Score)

	view := m.View()
	assert.Contains(t, view, "Strength Score: 12/12")
	assert.Contains(t, view, "✅ Length")
	assert.Contains(t, view, "✅ No Common")
	assert.Contains(t, view, "Strong - Good job!")
	assert.NotContains(t, view, "Suggestions")
}

func TestMeterShowsSuggestions(t *testing.T) {
	m := CreateMeter(MeterOpts{})
	typeInto(t, m, "password")
	view := m.View()
	assert.Contains(t, view, "Suggestions")
	assert.Contains(t, view, "❌ Uppercase")
	for _, feedback := range m.Result().Feedback {
		assert.Contains(t, view, feedback)
	}
	assert.Contains(t, view, "Moderate - Could be stronger")
}

func TestMeterMasksInputUntilRevealed(t *testing.T) {
	m := CreateMeter(MeterOpts{})
	typeInto(t, m, "secret")
	assert.NotContains(t, m.View(), "secret")
	assert.Equal(t, textinput.EchoPassword, m.input.EchoMode)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	assert.Nil(t, cmd)
	assert.True(t, m.IsRevealed())
	assert.Equal(t, textinput.EchoNormal, m.input.EchoMode)
	assert.Contains(t, m.View(), "secret")

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	assert.False(t, m.IsRevealed())
	assert.Equal(t, textinput.EchoPassword, m.input.EchoMode)
}

func TestMeterSubmit(t *testing.T) {
	m := CreateMeter(MeterOpts{})
	typeInto(t, m, "Passw0rd!")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.True(t, m.IsSubmitted())
	assert.False(t, m.IsCancelled())
	assert.Equal(t, 12, m.Result().Score)
}

func TestMeterQuit(t *testing.T) {
	for _, keyType := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
		m := CreateMeter(MeterOpts{})
		_, cmd := m.Update(tea.KeyMsg{Type: keyType})
		require.NotNil(t, cmd)
		assert.True(t, m.IsCancelled())
		assert.False(t, m.IsSubmitted())
	}
}

func TestMeterResizeCapsProgressWidth(t *testing.T) {
	m := CreateMeter(MeterOpts{})
	m.Update(tea.WindowSizeMsg{Width: 200, Height: 40})
	assert.Equal(t, maxProgressWidth, m.progress.Width)
	m.Update(tea.WindowSizeMsg{Width: 30, Height: 40})
	assert.Equal(t, 26, m.progress.Width)
}

func TestMeterProgressColorFollowsVerdict(t *testing.T) {
	m := CreateMeter(MeterOpts{})
	typeInto(t, m, "abc")
	assert.Equal(t, strength.ColorRed.Hex(), m.progress.FullColor)
	typeInto(t, m, "defgh1")
	assert.Equal(t, strength.ColorOrange.Hex(), m.progress.FullColor)
	typeInto(t, m, "A!")
	assert.Equal(t, strength.ColorGreen.Hex(), m.progress.FullColor)
}
