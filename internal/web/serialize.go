package web

import (
	"strings"
	"time"

	"github.com/daniilsolovey/blog-portal/internal/blog"
)

// teaserLength is the number of code points a post summary keeps from the
// full text. Truncation is mid-word on purpose: templates rely on the exact
// 200-character boundary.
const teaserLength = 200

type TagContext struct {
	Title        string
	PostsWithTag int
}

type CommentContext struct {
	Text        string
	PublishedAt time.Time
	Author      string
}

type PostSummary struct {
	Title          string
	TeaserText     string
	Author         string
	CommentsAmount int
	ImageURL       *string
	PublishedAt    time.Time
	Slug           string
	Tags           []TagContext
	FirstTagTitle  string
}

type PostContext struct {
	Title       string
	Text        string
	Author      string
	Comments    []CommentContext
	LikesAmount int
	ImageURL    *string
	PublishedAt time.Time
	Slug        string
	Tags        []TagContext
}

func NewTagContext(t blog.Tag) TagContext {
	return TagContext{
		Title:        t.Title,
		PostsWithTag: t.PostsCount,
	}
}

func NewTagContexts(tags []blog.Tag) []TagContext {
	return Map(tags, NewTagContext)
}

func NewCommentContext(c blog.Comment) CommentContext {
	return CommentContext{
		Text:        c.Text,
		PublishedAt: c.PublishedAt,
		Author:      c.Author,
	}
}

// NewPostSummary shapes a post for list pages. CommentsAmount stays zero
// when the page was fetched without the comment count annotation.
func NewPostSummary(p blog.Post, mediaBase string) PostSummary {
	tags := NewTagContexts(p.Tags)

	firstTagTitle := ""
	if len(tags) > 0 {
		firstTagTitle = tags[0].Title
	}

	return PostSummary{
		Title:          p.Title,
		TeaserText:     teaser(p.Text),
		Author:         p.Author,
		CommentsAmount: p.CommentsCount,
		ImageURL:       mediaURL(p.Image, mediaBase),
		PublishedAt:    p.PublishedAt,
		Slug:           p.Slug,
		Tags:           tags,
		FirstTagTitle:  firstTagTitle,
	}
}

func NewPostSummaries(posts []blog.Post, mediaBase string) []PostSummary {
	summaries := make([]PostSummary, len(posts))
	for i := range posts {
		summaries[i] = NewPostSummary(posts[i], mediaBase)
	}
	return summaries
}

// NewPostContext shapes a post for the detail page. LikesAmount is a
// required annotation of the query layer, there is no defensive default.
func NewPostContext(p blog.Post, mediaBase string) PostContext {
	return PostContext{
		Title:       p.Title,
		Text:        p.Text,
		Author:      p.Author,
		Comments:    Map(p.Comments, NewCommentContext),
		LikesAmount: p.LikesCount,
		ImageURL:    mediaURL(p.Image, mediaBase),
		PublishedAt: p.PublishedAt,
		Slug:        p.Slug,
		Tags:        NewTagContexts(p.Tags),
	}
}

func Map[From, To any](list []From, converter func(From) To) []To {
	result := make([]To, len(list))
	for i := range list {
		result[i] = converter(list[i])
	}
	return result
}

func teaser(text string) string {
	runes := []rune(text)
	if len(runes) <= teaserLength {
		return text
	}
	return string(runes[:teaserLength])
}

func mediaURL(image *string, mediaBase string) *string {
	if image == nil {
		return nil
	}

	url := strings.TrimSuffix(mediaBase, "/") + "/" + strings.TrimPrefix(*image, "/")
	return &url
}
