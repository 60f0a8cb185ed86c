package blog

import (
	"context"
	"fmt"

	"github.com/daniilsolovey/blog-portal/internal/db"
)

type Manager struct {
	db *db.Repository
}

func NewBlogManager(repo *db.Repository) *Manager {
	return &Manager{
		db: repo,
	}
}

// PopularPosts returns the most liked posts with authors, tags and comment
// counts attached. The count annotation runs as one grouped query for the
// whole page.
func (m *Manager) PopularPosts(ctx context.Context, limit int) ([]Post, error) {
	dbPosts, err := m.db.PopularPosts(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("db get popular posts: %w", err)
	}

	dbPosts, err = m.db.WithCommentsCount(ctx, dbPosts)
	if err != nil {
		return nil, fmt.Errorf("failed to attach comments count: %w", err)
	}

	return NewPosts(dbPosts), nil
}

// FreshPosts returns the most recently published posts with the same
// hydration as PopularPosts.
func (m *Manager) FreshPosts(ctx context.Context, limit int) ([]Post, error) {
	dbPosts, err := m.db.FreshPosts(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("db get fresh posts: %w", err)
	}

	dbPosts, err = m.db.WithCommentsCount(ctx, dbPosts)
	if err != nil {
		return nil, fmt.Errorf("failed to attach comments count: %w", err)
	}

	return NewPosts(dbPosts), nil
}

// PopularTags returns tags ranked by the number of posts carrying them.
func (m *Manager) PopularTags(ctx context.Context, limit int) ([]Tag, error) {
	list, err := m.db.PopularTags(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("db get popular tags: %w", err)
	}

	return NewTags(list), nil
}

// TagByTitle returns the tag with the exact title, or nil when absent.
func (m *Manager) TagByTitle(ctx context.Context, title string) (*Tag, error) {
	dbTag, err := m.db.TagByTitle(ctx, title)
	if err != nil {
		return nil, fmt.Errorf("db get tag by title: %w", err)
	} else if dbTag == nil {
		return nil, nil
	}

	tag := NewTag(dbTag)
	return &tag, nil
}

// TagPosts returns posts carrying the tag in insertion order, comment
// counts included.
func (m *Manager) TagPosts(ctx context.Context, tagID, limit int) ([]Post, error) {
	dbPosts, err := m.db.TagPosts(ctx, tagID, limit)
	if err != nil {
		return nil, fmt.Errorf("db get tag posts: %w", err)
	}

	return NewPosts(dbPosts), nil
}

// PostBySlug returns one fully hydrated post (author, tags, comments with
// authors, like and comment counts), or nil when no post has the slug.
func (m *Manager) PostBySlug(ctx context.Context, slug string) (*Post, error) {
	dbPost, err := m.db.PostBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("db get post by slug: %w", err)
	} else if dbPost == nil {
		return nil, nil
	}

	post := NewPost(dbPost)
	return &post, nil
}
