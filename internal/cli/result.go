package cli

import (
	"fmt"
	"pwmeter/internal/strength"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

const (
	criteriaFirstColumnSize = 4
	defaultProgressWidth    = 40
	maxProgressWidth        = 72
)

// splitCriteria splits the criteria results into the two display
// columns, the first four criteria and then the remaining three
func splitCriteria(criteria strength.CriteriaResults) (strength.CriteriaResults, strength.CriteriaResults) {
	if len(criteria) <= criteriaFirstColumnSize {
		return criteria, nil
	}
	return criteria[:criteriaFirstColumnSize], criteria[criteriaFirstColumnSize:]
}

func getCriterionMarker(isMet bool) string {
	if isMet {
		return "✅"
	}
	return "❌"
}

func renderScoreBanner(result strength.Result) string {
	return styleScoreBanner.
		Background(lipgloss.Color(result.Color.Hex())).
		Render(fmt.Sprintf("Strength Score: %d/%d", result.Score, result.MaxScore))
}

func renderProgress(result strength.Result, width int) string {
	bar := progress.New(
		progress.WithSolidFill(result.Color.Hex()),
		progress.WithWidth(width),
	)
	return bar.ViewAs(result.Percent())
}

func renderCriteriaColumn(criteria strength.CriteriaResults) string {
	lines := make([]string, 0, len(criteria))
	for _, criterion := range criteria {
		lines = append(lines, fmt.Sprintf("%s %s", getCriterionMarker(criterion.Met), criterion.Name.Label()))
	}
	return strings.Join(lines, "\n")
}

func renderCriteriaColumns(result strength.Result) string {
	left, right := splitCriteria(result.Criteria)
	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		styleCriteriaColumn.Render(renderCriteriaColumn(left)),
		styleCriteriaColumn.Render(renderCriteriaColumn(right)),
	)
}

func renderSuggestions(result strength.Result) string {
	if len(result.Feedback) == 0 {
		return ""
	}
	var output strings.Builder
	output.WriteString(styleSectionHeading.Render("Suggestions"))
	for _, feedback := range result.Feedback {
		output.WriteString("\n- " + feedback)
	}
	return output.String()
}

func renderVerdict(result strength.Result) string {
	return styleVerdict.
		Foreground(lipgloss.Color(result.Color.Hex())).
		Render(fmt.Sprintf("%s - %s", result.Verdict, result.Verdict.Message()))
}

// RenderCriteriaTable renders the criteria of `result` as a table
// of two criterion columns
func RenderCriteriaTable(result strength.Result) (string, error) {
	left, right := splitCriteria(result.Criteria)
	table := NewTable(NewTableOpts{
		Headers: []string{"criterion", "met", "criterion", "met"},
		Rows: func(t *Table) error {
			for i, criterion := range left {
				row := []any{criterion.Name.Label(), criterion.Met}
				if i < len(right) {
					row = append(row, right[i].Name.Label(), right[i].Met)
				} else {
					row = append(row, "", "")
				}
				if err := t.NewRow(row...); err != nil {
					return fmt.Errorf("failed to add criteria row: %w", err)
				}
			}
			return nil
		},
	})
	if err := table.Render(); err != nil {
		return "", err
	}
	return table.GetString(), nil
}

// RenderResult returns the text rendering of `result` used by
// non-interactive commands
func RenderResult(result strength.Result) (string, error) {
	criteriaTable, err := RenderCriteriaTable(result)
	if err != nil {
		return "", err
	}
	sections := []string{
		renderScoreBanner(result),
		renderProgress(result, defaultProgressWidth),
		criteriaTable,
	}
	if suggestions := renderSuggestions(result); suggestions != "" {
		sections = append(sections, suggestions)
	}
	sections = append(sections, renderVerdict(result))
	return strings.Join(sections, "\n\n"), nil
}
