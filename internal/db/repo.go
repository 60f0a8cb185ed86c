package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-pg/pg/v10"
)

const (
	likesCountExpr    = `(SELECT count(DISTINCT "pl"."userId") FROM "post_likes" AS "pl" WHERE "pl"."postId" = "t"."postId") AS "likes_count"`
	commentsCountExpr = `(SELECT count(DISTINCT "c"."commentId") FROM "comments" AS "c" WHERE "c"."postId" = "t"."postId") AS "comments_count"`
	postsCountExpr    = `(SELECT count(*) FROM "posts" AS "p" WHERE "t"."tagId" = ANY("p"."tagIds")) AS "posts_count"`
)

type Repository struct {
	db pg.DBI
}

func New(db pg.DBI) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Ping(ctx context.Context) error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Ping(ctx); err != nil {
			return err
		}
		return nil
	}

	return nil
}

func (r *Repository) Close() error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Close(); err != nil {
			return err
		}
		return nil
	}

	return nil
}

// PopularPosts retrieves posts ranked by the number of distinct likes, most
// liked first, ties broken by publishedAt DESC then postId DESC.
// Authors are joined and tags are attached with a single batched query.
func (r *Repository) PopularPosts(ctx context.Context, limit int) ([]Post, error) {
	if limit < 1 {
		return nil, fmt.Errorf("limit must be greater than 0: limit=%d", limit)
	}

	var posts []Post
	err := r.db.ModelContext(ctx, &posts).
		ColumnExpr(`"t".*`).
		ColumnExpr(likesCountExpr).
		Relation("Author").
		OrderExpr(`"likes_count" DESC, "t"."publishedAt" DESC, "t"."postId" DESC`).
		Limit(limit).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query popular posts: %w", err)
	}

	return r.attachTagsBatch(ctx, posts)
}

// FreshPosts retrieves the most recently published posts with the same
// hydration contract as PopularPosts.
func (r *Repository) FreshPosts(ctx context.Context, limit int) ([]Post, error) {
	if limit < 1 {
		return nil, fmt.Errorf("limit must be greater than 0: limit=%d", limit)
	}

	var posts []Post
	err := r.db.ModelContext(ctx, &posts).
		Relation("Author").
		OrderExpr(`"t"."publishedAt" DESC, "t"."postId" DESC`).
		Limit(limit).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query fresh posts: %w", err)
	}

	return r.attachTagsBatch(ctx, posts)
}

// WithCommentsCount annotates every post with its distinct comment count
// using one grouped aggregate query for the whole page. Posts without
// comments keep a zero count.
func (r *Repository) WithCommentsCount(ctx context.Context, posts []Post) ([]Post, error) {
	if len(posts) == 0 {
		return posts, nil
	}

	ids := make([]int, 0, len(posts))
	for i := range posts {
		ids = append(ids, posts[i].ID)
	}

	var counts []struct {
		PostID int `pg:"postId"`
		Count  int `pg:"count"`
	}
	_, err := r.db.QueryContext(ctx, &counts, `
		SELECT "postId", count(DISTINCT "commentId") AS "count"
		FROM "comments"
		WHERE "postId" IN (?)
		GROUP BY "postId"`, pg.In(ids))
	if err != nil {
		return nil, fmt.Errorf("failed to query comments count: %w", err)
	}

	countByID := make(map[int]int, len(counts))
	for _, c := range counts {
		countByID[c.PostID] = c.Count
	}

	for i := range posts {
		posts[i].CommentsCount = countByID[posts[i].ID]
	}

	return posts, nil
}

// PopularTags retrieves tags ranked by the number of posts carrying them,
// ties broken by title ASC. The count is computed in the same statement.
func (r *Repository) PopularTags(ctx context.Context, limit int) ([]Tag, error) {
	if limit < 1 {
		return nil, fmt.Errorf("limit must be greater than 0: limit=%d", limit)
	}

	var tags []Tag
	err := r.db.ModelContext(ctx, &tags).
		ColumnExpr(`"t".*`).
		ColumnExpr(`COALESCE("pc"."count", 0) AS "posts_count"`).
		Join(`LEFT JOIN (SELECT unnest("tagIds") AS "tagId", count(*) AS "count" FROM "posts" GROUP BY 1) AS "pc" ON "pc"."tagId" = "t"."tagId"`).
		OrderExpr(`"posts_count" DESC, "t"."title" ASC`).
		Limit(limit).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query popular tags: %w", err)
	}

	return tags, nil
}

// TagByTitle retrieves a tag by its exact title with the tagged-post count
// annotated. Returns nil without an error when no tag matches.
func (r *Repository) TagByTitle(ctx context.Context, title string) (*Tag, error) {
	tag := &Tag{}
	err := r.db.ModelContext(ctx, tag).
		ColumnExpr(`"t".*`).
		ColumnExpr(postsCountExpr).
		Where(`"t"."title" = ?`, title).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get tag by title: %w", err)
	}

	return tag, nil
}

// TagPosts retrieves posts carrying the given tag in insertion order
// (postId ASC), with authors joined, tags attached in one batched query and
// the distinct comment count annotated in the same statement.
func (r *Repository) TagPosts(ctx context.Context, tagID, limit int) ([]Post, error) {
	if limit < 1 {
		return nil, fmt.Errorf("limit must be greater than 0: limit=%d", limit)
	}

	var posts []Post
	err := r.db.ModelContext(ctx, &posts).
		ColumnExpr(`"t".*`).
		ColumnExpr(commentsCountExpr).
		Relation("Author").
		Where(`? = ANY("t"."tagIds")`, tagID).
		OrderExpr(`"t"."postId" ASC`).
		Limit(limit).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query posts by tag: %w", err)
	}

	return r.attachTagsBatch(ctx, posts)
}

// PostBySlug retrieves a single post by slug with the author joined, tags
// attached, comments loaded together with their authors, and distinct
// comment and like counts annotated. Returns nil without an error when no
// post matches.
func (r *Repository) PostBySlug(ctx context.Context, slug string) (*Post, error) {
	post := &Post{}
	err := r.db.ModelContext(ctx, post).
		ColumnExpr(`"t".*`).
		ColumnExpr(commentsCountExpr).
		ColumnExpr(likesCountExpr).
		Relation("Author").
		Where(`"t"."slug" = ?`, slug).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get post by slug: %w", err)
	}

	posts, err := r.attachTagsBatch(ctx, []Post{*post})
	if err != nil {
		return nil, err
	}
	post = &posts[0]

	comments, err := r.postComments(ctx, post.ID)
	if err != nil {
		return nil, err
	}
	post.Comments = comments

	return post, nil
}

// postComments loads all comments of a post with their authors, oldest
// first (insertion order).
func (r *Repository) postComments(ctx context.Context, postID int) ([]Comment, error) {
	comments := []Comment{}
	err := r.db.ModelContext(ctx, &comments).
		Relation("Author").
		Where(`"t"."postId" = ?`, postID).
		OrderExpr(`"t"."commentId" ASC`).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query post comments: %w", err)
	}

	return comments, nil
}
