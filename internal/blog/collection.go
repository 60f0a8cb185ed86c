package blog

import (
	"github.com/daniilsolovey/blog-portal/internal/db"
)

func NewTags(list []db.Tag) []Tag {
	tags := make([]Tag, len(list))
	for i := range list {
		tags[i] = NewTag(&list[i])
	}
	return tags
}

func NewComments(list []db.Comment) []Comment {
	comments := make([]Comment, len(list))
	for i := range list {
		comments[i] = NewComment(&list[i])
	}
	return comments
}

func NewPosts(list []db.Post) []Post {
	posts := make([]Post, len(list))
	for i := range list {
		posts[i] = NewPost(&list[i])
	}
	return posts
}
