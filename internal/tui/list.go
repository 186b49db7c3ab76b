package tui

import (
	"fmt"
	"strings"

	"github.com/hackstories/hackstories/internal/story"
)

func renderListItem(st story.Story, selected bool, width int) string {
	if width < 10 {
		width = 30
	}

	var title string
	if selected {
		title = itemSelectedStyle.Render("> " + truncateStr(st.Title, width-4))
	} else {
		title = itemTitleStyle.Render("  " + truncateStr(st.Title, width-4))
	}

	meta := "  " + itemPointsStyle.Render(fmt.Sprintf("%d pts", st.Points)) +
		" " + itemMetaStyle.Render(fmt.Sprintf("· %s · %d comments", st.Author, st.NumComments))

	return title + "\n" + meta
}

func truncateStr(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}

func renderList(stories story.Stories, cursor int, height int, width int, empty string) string {
	if len(stories) == 0 {
		return centerText(empty, width, height)
	}

	// Each item is 2 lines + 1 blank line = 3 lines
	itemHeight := 3
	visible := height / itemHeight
	if visible < 1 {
		visible = 1
	}

	// Calculate scroll offset
	start := 0
	if cursor >= visible {
		start = cursor - visible + 1
	}
	end := start + visible
	if end > len(stories) {
		end = len(stories)
		start = end - visible
		if start < 0 {
			start = 0
		}
	}

	var b strings.Builder
	for i := start; i < end; i++ {
		b.WriteString(renderListItem(stories[i], i == cursor, width))
		if i < end-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}

func centerText(s string, width, height int) string {
	pad := (width - len(s)) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat("\n", height/3) + strings.Repeat(" ", pad) + s
}
