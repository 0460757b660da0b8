package cli

import (
	"fmt"
	"pwmeter/internal/strength"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	DefaultMeterTitle       = "🔐 Password Strength Meter"
	DefaultMeterPlaceholder = "Enter your password"

	meterMaskCharacter = '•'
	meterHelpText      = "enter submit • ctrl+r reveal/hide • esc quit"
)

type MeterOpts struct {
	Title       string
	Placeholder string
	Width       int
}

// CreateMeter returns a MeterModel with a focused, masked input
func CreateMeter(opts MeterOpts) *MeterModel {
	if opts.Title == "" {
		opts.Title = DefaultMeterTitle
	}
	if opts.Placeholder == "" {
		opts.Placeholder = DefaultMeterPlaceholder
	}
	if opts.Width <= 0 {
		opts.Width = defaultProgressWidth
	}

	input := textinput.New()
	input.Placeholder = opts.Placeholder
	input.EchoMode = textinput.EchoPassword
	input.EchoCharacter = meterMaskCharacter
	input.CharLimit = 0
	input.Prompt = "> "
	input.PromptStyle = styleInputFocused
	input.TextStyle = styleInput
	input.PlaceholderStyle = stylePlaceholder
	input.Focus()

	result := strength.Evaluate("")
	bar := progress.New(
		progress.WithSolidFill(result.Color.Hex()),
		progress.WithWidth(opts.Width),
	)

	return &MeterModel{
		input:    input,
		progress: bar,
		result:   result,
		title:    opts.Title,
	}
}

// MeterModel is the interactive strength meter, every change to the
// input is re-evaluated and rendered immediately
type MeterModel struct {
	input    textinput.Model
	progress progress.Model
	result   strength.Result
	title    string

	isCancelled bool
	isRevealed  bool
	isSubmitted bool
}

func (m *MeterModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *MeterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		width := msg.Width - 4
		if width > maxProgressWidth {
			width = maxProgressWidth
		}
		if width > 0 {
			m.progress.Width = width
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.isCancelled = true
			return m, tea.Quit
		case tea.KeyEnter:
			m.isSubmitted = true
			return m, tea.Quit
		case tea.KeyCtrlR:
			m.isRevealed = !m.isRevealed
			m.input.EchoMode = textinput.EchoPassword
			if m.isRevealed {
				m.input.EchoMode = textinput.EchoNormal
			}
			return m, nil
		}

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		return m, cmd
	}

	previousValue := m.input.Value()
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	if value := m.input.Value(); value != previousValue {
		m.result = strength.Evaluate(value)
		m.progress.FullColor = m.result.Color.Hex()
		cmds = append(cmds, m.progress.SetPercent(m.result.Percent()))
	}
	return m, tea.Batch(cmds...)
}

func (m *MeterModel) View() string {
	var view strings.Builder
	view.WriteString(styleTitle.Render(m.title))
	view.WriteString("\n\n")
	view.WriteString(m.input.View())
	view.WriteString("\n\n")

	if m.input.Value() != "" {
		view.WriteString(styleSectionHeading.Render("Password Strength"))
		view.WriteString("\n")
		view.WriteString(m.progress.View())
		view.WriteString("\n\n")
		view.WriteString(renderScoreBanner(m.result))
		view.WriteString("\n\n")
		view.WriteString(renderCriteriaColumns(m.result))
		view.WriteString("\n\n")
		if suggestions := renderSuggestions(m.result); suggestions != "" {
			view.WriteString(suggestions)
			view.WriteString("\n\n")
		}
		view.WriteString(renderVerdict(m.result))
		view.WriteString("\n\n")
	}

	view.WriteString(styleFaded.Render(meterHelpText))
	view.WriteString("\n")
	return view.String()
}

// GetValue returns the password currently in the input
func (m *MeterModel) GetValue() string {
	return m.input.Value()
}

// Result returns the evaluation of the current input
func (m *MeterModel) Result() strength.Result {
	return m.result
}

func (m *MeterModel) IsCancelled() bool {
	return m.isCancelled
}

func (m *MeterModel) IsRevealed() bool {
	return m.isRevealed
}

func (m *MeterModel) IsSubmitted() bool {
	return m.isSubmitted
}

// RunMeter runs the meter until the user submits or quits and returns
// the final model
func RunMeter(opts MeterOpts) (*MeterModel, error) {
	model := CreateMeter(opts)
	if _, err := tea.NewProgram(model).Run(); err != nil {
		return nil, fmt.Errorf("failed to run meter: %w", err)
	}
	if model.IsCancelled() {
		return model, ErrorUserCancelled
	}
	return model, nil
}
