package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hackstories/hackstories/internal/story"
)

func renderPreview(st *story.Story, width, height, scroll int) string {
	if st == nil {
		return centerText("Select a story", width, height)
	}

	contentWidth := width - 2
	if contentWidth < 10 {
		contentWidth = 10
	}

	title := previewTitleStyle.Width(contentWidth).Render(st.Title)
	meta := previewMetaStyle.Render(
		fmt.Sprintf("%d points · %d comments", st.Points, st.NumComments),
	)

	author := st.Author
	if author == "" {
		author = "(unknown author)"
	}
	body := previewBodyStyle.Width(contentWidth).Render(wrapText("by "+author, contentWidth))
	link := previewLinkStyle.Width(contentWidth).Render("Open: " + st.URL)

	content := lipgloss.JoinVertical(lipgloss.Left, title, meta, "", body, "", link)

	// Apply scroll offset
	lines := strings.Split(content, "\n")
	if scroll > 0 && scroll < len(lines) {
		lines = lines[scroll:]
	}

	// Pad to fill height
	if len(lines) < height {
		lines = append(lines, make([]string, height-len(lines))...)
	} else if len(lines) > height {
		lines = lines[:height]
	}

	return strings.Join(lines, "\n")
}

func wrapText(s string, width int) string {
	if width <= 0 {
		return s
	}
	words := strings.Fields(s)
	if len(words) == 0 {
		return ""
	}

	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > width {
			lines = append(lines, line)
			line = w
		} else {
			line += " " + w
		}
	}
	lines = append(lines, line)
	return strings.Join(lines, "\n")
}
