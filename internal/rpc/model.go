package rpc

import (
	"time"

	"github.com/daniilsolovey/blog-portal/internal/blog"
)

type Tag struct {
	TagID        int    `json:"tagId"`
	Title        string `json:"title"`
	PostsWithTag int    `json:"postsWithTag"`
}

type Tags []Tag

type Comment struct {
	Text        string    `json:"text"`
	PublishedAt time.Time `json:"publishedAt"`
	Author      string    `json:"author"`
}

type PostSummary struct {
	PostID         int       `json:"postId"`
	Title          string    `json:"title"`
	Author         string    `json:"author"`
	Slug           string    `json:"slug"`
	PublishedAt    time.Time `json:"publishedAt"`
	CommentsAmount int       `json:"commentsAmount"`
	Tags           Tags      `json:"tags"`
}

type PostSummaries []PostSummary

type Post struct {
	PostID      int       `json:"postId"`
	Title       string    `json:"title"`
	Text        string    `json:"text"`
	Author      string    `json:"author"`
	Slug        string    `json:"slug"`
	PublishedAt time.Time `json:"publishedAt"`
	LikesAmount int       `json:"likesAmount"`
	Comments    []Comment `json:"comments"`
	Tags        Tags      `json:"tags"`
}

type PostsRequest struct {
	Limit *int `json:"limit"`
}

type PostBySlugRequest struct {
	Slug string `json:"slug"`
}

type TagsRequest struct {
	Limit *int `json:"limit"`
}

func NewTag(t blog.Tag) Tag {
	return Tag{
		TagID:        t.ID,
		Title:        t.Title,
		PostsWithTag: t.PostsCount,
	}
}

func NewTags(list []blog.Tag) Tags {
	tags := make(Tags, len(list))
	for i := range list {
		tags[i] = NewTag(list[i])
	}
	return tags
}

func NewComment(c blog.Comment) Comment {
	return Comment{
		Text:        c.Text,
		PublishedAt: c.PublishedAt,
		Author:      c.Author,
	}
}

func NewPostSummary(p blog.Post) PostSummary {
	return PostSummary{
		PostID:         p.ID,
		Title:          p.Title,
		Author:         p.Author,
		Slug:           p.Slug,
		PublishedAt:    p.PublishedAt,
		CommentsAmount: p.CommentsCount,
		Tags:           NewTags(p.Tags),
	}
}

func NewPostSummaries(list []blog.Post) PostSummaries {
	summaries := make(PostSummaries, len(list))
	for i := range list {
		summaries[i] = NewPostSummary(list[i])
	}
	return summaries
}

func NewPost(p blog.Post) Post {
	comments := make([]Comment, len(p.Comments))
	for i := range p.Comments {
		comments[i] = NewComment(p.Comments[i])
	}

	return Post{
		PostID:      p.ID,
		Title:       p.Title,
		Text:        p.Text,
		Author:      p.Author,
		Slug:        p.Slug,
		PublishedAt: p.PublishedAt,
		LikesAmount: p.LikesCount,
		Comments:    comments,
		Tags:        NewTags(p.Tags),
	}
}
