package blog

import (
	"github.com/daniilsolovey/blog-portal/internal/db"
)

func NewTag(t *db.Tag) Tag {
	return Tag{
		ID:         t.ID,
		Title:      t.Title,
		PostsCount: t.PostsCount,
	}
}

func NewComment(c *db.Comment) Comment {
	comment := Comment{
		ID:          c.ID,
		Text:        c.Text,
		PublishedAt: c.PublishedAt,
	}

	if c.Author != nil {
		comment.Author = c.Author.Username
	}

	return comment
}

func NewPost(p *db.Post) Post {
	post := Post{
		ID:            p.ID,
		Title:         p.Title,
		Text:          p.Text,
		Slug:          p.Slug,
		Image:         p.Image,
		PublishedAt:   p.PublishedAt,
		CommentsCount: p.CommentsCount,
		LikesCount:    p.LikesCount,
	}

	if p.Author != nil {
		post.Author = p.Author.Username
	}

	post.Tags = NewTags(p.Tags)
	post.Comments = NewComments(p.Comments)

	return post
}
