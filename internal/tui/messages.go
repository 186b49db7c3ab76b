package tui

import (
	"github.com/hackstories/hackstories/internal/story"
)

type storiesLoadedMsg struct {
	stories story.Stories
}

type loadFailedMsg struct {
	err error
}

type openErrMsg struct {
	err error
}
