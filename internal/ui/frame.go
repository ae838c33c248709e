package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderFrame renders content in a rounded box with the title embedded in the
// top border: ╭─── PHOSPHOR ───╮
func (m Model) renderFrame(content string, width, height int) string {
	innerWidth := width - frameBorderCols
	boxHeight := height - frameBorderRows
	if innerWidth < 0 || boxHeight < 0 {
		return content
	}

	border := lipgloss.RoundedBorder()
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Screen)

	title := " " + FrameTitle + " "
	titleLen := lipgloss.Width(title)
	if titleLen > innerWidth {
		title, titleLen = "", 0
	}
	leftPad := (innerWidth - titleLen) / 2
	rightPad := innerWidth - titleLen - leftPad

	topBorder := bg.Render(border.TopLeft, styles.Border) +
		bg.Render(strings.Repeat(border.Top, leftPad), styles.Border) +
		bg.Render(title, styles.Title) +
		bg.Render(strings.Repeat(border.Top, rightPad), styles.Border) +
		bg.Render(border.TopRight, styles.Border)

	bottomBorder := bg.Render(border.BottomLeft, styles.Border) +
		bg.Render(strings.Repeat(border.Bottom, innerWidth), styles.Border) +
		bg.Render(border.BottomRight, styles.Border)

	contentLines := strings.Split(content, "\n")
	rows := make([]string, 0, boxHeight)
	for i := range boxHeight {
		var line string
		if i < len(contentLines) {
			line = contentLines[i]
		}
		rows = append(rows,
			bg.Render(border.Left, styles.Border)+
				bg.FillLine(line, innerWidth)+
				bg.Render(border.Right, styles.Border))
	}

	return topBorder + "\n" + strings.Join(rows, "\n") + "\n" + bottomBorder
}
