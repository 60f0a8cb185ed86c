package blog

import (
	"time"
)

type Tag struct {
	ID         int
	Title      string
	PostsCount int
}

type Comment struct {
	ID          int
	Text        string
	PublishedAt time.Time
	Author      string
}

type Post struct {
	ID          int
	Title       string
	Text        string
	Slug        string
	Image       *string
	PublishedAt time.Time
	Author      string

	Tags     []Tag
	Comments []Comment

	CommentsCount int
	LikesCount    int
}
