package tui

import (
	"strings"
	"testing"

	"github.com/hackstories/hackstories/internal/story"
)

func TestTruncateStr(t *testing.T) {
	tests := []struct {
		input string
		n     int
		want  string
	}{
		{"hello", 10, "hello"},
		{"hello world", 8, "hello..."},
		{"abc", 3, "abc"},
		{"abcd", 3, "abc"},
		{"", 5, ""},
		{"test", 0, ""},
	}
	for _, tt := range tests {
		got := truncateStr(tt.input, tt.n)
		if got != tt.want {
			t.Errorf("truncateStr(%q, %d) = %q, want %q", tt.input, tt.n, got, tt.want)
		}
	}
}

func TestTruncateStrUTF8(t *testing.T) {
	got := truncateStr("日本語テスト", 5)
	want := "日本..."
	if got != want {
		t.Errorf("truncateStr(Japanese, 5) = %q, want %q", got, want)
	}
}

func TestWrapText(t *testing.T) {
	got := wrapText("one two three four", 9)
	want := "one two\nthree\nfour"
	if got != want {
		t.Errorf("wrapText = %q, want %q", got, want)
	}

	if got := wrapText("", 10); got != "" {
		t.Errorf("wrapText(empty) = %q", got)
	}
	if got := wrapText("unwrapped", 0); got != "unwrapped" {
		t.Errorf("wrapText with zero width = %q", got)
	}
}

func TestRenderListEmpty(t *testing.T) {
	got := renderList(nil, 0, 9, 40, "No stories")
	if !strings.Contains(got, "No stories") {
		t.Errorf("expected empty label, got %q", got)
	}
}

func TestRenderListShowsSelection(t *testing.T) {
	stories := story.Stories{
		{ObjectID: 0, Title: "React", Author: "Jordan Walke", Points: 4, NumComments: 3},
		{ObjectID: 1, Title: "Redux", Author: "Dan Abramov", Points: 5, NumComments: 2},
	}

	got := renderList(stories, 1, 12, 40, "")
	if !strings.Contains(got, "React") || !strings.Contains(got, "Redux") {
		t.Errorf("expected both titles rendered, got %q", got)
	}
	if !strings.Contains(got, "> Redux") {
		t.Errorf("expected cursor marker on Redux, got %q", got)
	}
}
