package source

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strconv"

	"github.com/mmcdole/gofeed"

	"github.com/hackstories/hackstories/internal/story"
)

// Feed pulls stories from an hnrss-style RSS feed.
type Feed struct {
	URL    string
	parser *gofeed.Parser
}

func NewFeed(feedURL string) *Feed {
	return &Feed{URL: feedURL, parser: gofeed.NewParser()}
}

func (f *Feed) Fetch(ctx context.Context) (story.Stories, error) {
	feed, err := f.parser.ParseURLWithContext(f.URL, ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", f.URL, err)
	}

	stories := make(story.Stories, 0, len(feed.Items))
	seen := make(map[int]bool, len(feed.Items))
	for i, item := range feed.Items {
		id := itemID(item.GUID)
		if id < 0 {
			id = i
		}
		// Collection invariant: ObjectID is unique.
		if seen[id] {
			continue
		}
		seen[id] = true

		var author string
		if item.Author != nil {
			author = item.Author.Name
		}
		points, comments := itemCounts(item.Description)

		stories = append(stories, story.Story{
			ObjectID:    id,
			URL:         item.Link,
			Title:       item.Title,
			Author:      author,
			NumComments: comments,
			Points:      points,
		})
	}
	return stories, nil
}

// itemID extracts the numeric item id from an HN item URL of the form
// https://news.ycombinator.com/item?id=123. Returns -1 when the guid does
// not carry one.
func itemID(guid string) int {
	u, err := url.Parse(guid)
	if err != nil {
		return -1
	}
	id, err := strconv.Atoi(u.Query().Get("id"))
	if err != nil || id < 0 {
		return -1
	}
	return id
}

var (
	pointsRe   = regexp.MustCompile(`Points:\s*(\d+)`)
	commentsRe = regexp.MustCompile(`Comments:\s*(\d+)`)
)

// itemCounts pulls the point and comment counts hnrss embeds in the item
// description. Missing counts read as zero.
func itemCounts(desc string) (points, comments int) {
	if m := pointsRe.FindStringSubmatch(desc); m != nil {
		points, _ = strconv.Atoi(m[1])
	}
	if m := commentsRe.FindStringSubmatch(desc); m != nil {
		comments, _ = strconv.Atoi(m[1])
	}
	return points, comments
}
