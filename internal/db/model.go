package db

import (
	"time"
)

var Columns = struct {
	Comment struct {
		ID, PostID, AuthorID, Text, PublishedAt string

		Author string
	}
	Post struct {
		ID, Title, Text, Slug, Image, PublishedAt, AuthorID, TagIDs string

		Author string
	}
	PostLike struct {
		PostID, UserID string
	}
	Tag struct {
		ID, Title string
	}
	User struct {
		ID, Username string
	}
}{
	Comment: struct {
		ID, PostID, AuthorID, Text, PublishedAt string

		Author string
	}{
		ID:          "commentId",
		PostID:      "postId",
		AuthorID:    "authorId",
		Text:        "text",
		PublishedAt: "publishedAt",

		Author: "Author",
	},
	Post: struct {
		ID, Title, Text, Slug, Image, PublishedAt, AuthorID, TagIDs string

		Author string
	}{
		ID:          "postId",
		Title:       "title",
		Text:        "text",
		Slug:        "slug",
		Image:       "image",
		PublishedAt: "publishedAt",
		AuthorID:    "authorId",
		TagIDs:      "tagIds",

		Author: "Author",
	},
	PostLike: struct {
		PostID, UserID string
	}{
		PostID: "postId",
		UserID: "userId",
	},
	Tag: struct {
		ID, Title string
	}{
		ID:    "tagId",
		Title: "title",
	},
	User: struct {
		ID, Username string
	}{
		ID:       "userId",
		Username: "username",
	},
}

var Tables = struct {
	Comment struct {
		Name, Alias string
	}
	Post struct {
		Name, Alias string
	}
	PostLike struct {
		Name, Alias string
	}
	Tag struct {
		Name, Alias string
	}
	User struct {
		Name, Alias string
	}
}{
	Comment: struct {
		Name, Alias string
	}{
		Name:  "comments",
		Alias: "t",
	},
	Post: struct {
		Name, Alias string
	}{
		Name:  "posts",
		Alias: "t",
	},
	PostLike: struct {
		Name, Alias string
	}{
		Name:  "post_likes",
		Alias: "t",
	},
	Tag: struct {
		Name, Alias string
	}{
		Name:  "tags",
		Alias: "t",
	},
	User: struct {
		Name, Alias string
	}{
		Name:  "users",
		Alias: "t",
	},
}

type User struct {
	tableName struct{} `pg:"users,alias:t,discard_unknown_columns"`

	ID       int    `pg:"userId,pk"`
	Username string `pg:"username,use_zero"`
}

type Tag struct {
	tableName struct{} `pg:"tags,alias:t,discard_unknown_columns"`

	ID    int    `pg:"tagId,pk"`
	Title string `pg:"title,use_zero"`

	// PostsCount is the number of posts carrying this tag, filled by the
	// query layer in the same statement that fetches the tag.
	PostsCount int `pg:"posts_count,scanonly"`
}

type Post struct {
	tableName struct{} `pg:"posts,alias:t,discard_unknown_columns"`

	ID          int       `pg:"postId,pk"`
	Title       string    `pg:"title,use_zero"`
	Text        string    `pg:"text,use_zero"`
	Slug        string    `pg:"slug,use_zero"`
	Image       *string   `pg:"image"`
	PublishedAt time.Time `pg:"publishedAt,use_zero"`
	AuthorID    int       `pg:"authorId,use_zero"`
	TagIDs      []int32   `pg:"tagIds,array,use_zero"`

	Author *User `pg:"fk:authorId,rel:has-one"`

	Tags     []Tag     `pg:"-"`
	Comments []Comment `pg:"-"`

	CommentsCount int `pg:"comments_count,scanonly"`
	LikesCount    int `pg:"likes_count,scanonly"`
}

type Comment struct {
	tableName struct{} `pg:"comments,alias:t,discard_unknown_columns"`

	ID          int       `pg:"commentId,pk"`
	PostID      int       `pg:"postId,use_zero"`
	AuthorID    int       `pg:"authorId,use_zero"`
	Text        string    `pg:"text,use_zero"`
	PublishedAt time.Time `pg:"publishedAt,use_zero"`

	Author *User `pg:"fk:authorId,rel:has-one"`
}

type PostLike struct {
	tableName struct{} `pg:"post_likes,alias:t,discard_unknown_columns"`

	PostID int `pg:"postId,pk"`
	UserID int `pg:"userId,pk"`
}
