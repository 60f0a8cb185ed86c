package rpc

import (
	"context"

	"github.com/daniilsolovey/blog-portal/internal/blog"
	"github.com/vmkteam/zenrpc/v2"
)

//go:generate zenrpc

const (
	defaultLimit = 5
	maxLimit     = 100
)

// BlogService provides RPC methods for the blog portal.
type BlogService struct {
	zenrpc.Service
	manager *blog.Manager
}

func NewBlogService(manager *blog.Manager) *BlogService {
	return &BlogService{manager: manager}
}

func boundedLimit(limit *int) int {
	if limit == nil || *limit < 1 {
		return defaultLimit
	}
	if *limit > maxLimit {
		return maxLimit
	}
	return *limit
}

// Fresh retrieves the most recently published posts with tags and comment
// counts.
//
//zenrpc:limit=5 number of posts (capped at 100)
//zenrpc:return list of post summaries
//zenrpc:500 internal server error
func (s *BlogService) Fresh(ctx context.Context, req PostsRequest) (PostSummaries, error) {
	posts, err := s.manager.FreshPosts(ctx, boundedLimit(req.Limit))
	if err != nil {
		return nil, err
	}

	return NewPostSummaries(posts), nil
}

// Popular retrieves posts ranked by like count with tags and comment
// counts.
//
//zenrpc:limit=5 number of posts (capped at 100)
//zenrpc:return list of post summaries
//zenrpc:500 internal server error
func (s *BlogService) Popular(ctx context.Context, req PostsRequest) (PostSummaries, error) {
	posts, err := s.manager.PopularPosts(ctx, boundedLimit(req.Limit))
	if err != nil {
		return nil, err
	}

	return NewPostSummaries(posts), nil
}

// BySlug retrieves a single post by its slug with full text, comments,
// tags and the like count.
//
//zenrpc:slug post slug
//zenrpc:return post with full content
//zenrpc:400 slug must not be empty
//zenrpc:404 post not found
//zenrpc:500 internal server error
func (s *BlogService) BySlug(ctx context.Context, req PostBySlugRequest) (*Post, error) {
	if req.Slug == "" {
		return nil, zenrpc.NewStringError(400, "slug must not be empty")
	}

	post, err := s.manager.PostBySlug(ctx, req.Slug)
	if err != nil {
		return nil, err
	}

	if post == nil {
		return nil, zenrpc.NewStringError(404, "post not found")
	}

	result := NewPost(*post)
	return &result, nil
}

// Tags retrieves tags ranked by the number of posts carrying them.
//
//zenrpc:limit=5 number of tags (capped at 100)
//zenrpc:return list of tags with post counts
//zenrpc:500 internal server error
func (s *BlogService) Tags(ctx context.Context, req TagsRequest) (Tags, error) {
	tags, err := s.manager.PopularTags(ctx, boundedLimit(req.Limit))
	if err != nil {
		return nil, err
	}

	return NewTags(tags), nil
}
