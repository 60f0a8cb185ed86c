package web

import (
	"log/slog"
	"net/http"

	"github.com/daniilsolovey/blog-portal/internal/blog"
	"github.com/labstack/echo/v4"
)

const (
	popularPostsLimit = 5
	freshPostsLimit   = 5
	popularTagsLimit  = 5
	tagPostsLimit     = 20
)

// BlogHandler renders the public pages of the portal.
type BlogHandler struct {
	uc        *blog.Manager
	log       *slog.Logger
	mediaBase string
	mediaDir  string
}

func NewBlogHandler(uc *blog.Manager, log *slog.Logger, mediaBase, mediaDir string) *BlogHandler {
	return &BlogHandler{
		uc:        uc,
		log:       log,
		mediaBase: mediaBase,
		mediaDir:  mediaDir,
	}
}

func (h *BlogHandler) handleError(c echo.Context, err error, statusCode int, message string) error {
	h.log.Error("handleError", "error", err, "statusCode", statusCode, "message", message, "path", c.Path())
	return echo.NewHTTPError(statusCode, message)
}

// Index handles GET / with the most popular posts, the freshest posts and
// the most popular tags.
func (h *BlogHandler) Index(c echo.Context) error {
	ctx := c.Request().Context()

	popularPosts, err := h.uc.PopularPosts(ctx, popularPostsLimit)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	freshPosts, err := h.uc.FreshPosts(ctx, freshPostsLimit)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	popularTags, err := h.uc.PopularTags(ctx, popularTagsLimit)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.Render(http.StatusOK, "index.html", echo.Map{
		"most_popular_posts": NewPostSummaries(popularPosts, h.mediaBase),
		"page_posts":         NewPostSummaries(freshPosts, h.mediaBase),
		"popular_tags":       NewTagContexts(popularTags),
	})
}

// PostDetail handles GET /posts/:slug/ with the full post, its comments
// and the sidebar data.
func (h *BlogHandler) PostDetail(c echo.Context) error {
	ctx := c.Request().Context()
	slug := c.Param("slug")

	post, err := h.uc.PostBySlug(ctx, slug)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}
	if post == nil {
		return echo.NewHTTPError(http.StatusNotFound, "post not found")
	}

	popularTags, err := h.uc.PopularTags(ctx, popularTagsLimit)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	popularPosts, err := h.uc.PopularPosts(ctx, popularPostsLimit)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.Render(http.StatusOK, "post-details.html", echo.Map{
		"post":               NewPostContext(*post, h.mediaBase),
		"popular_tags":       NewTagContexts(popularTags),
		"most_popular_posts": NewPostSummaries(popularPosts, h.mediaBase),
	})
}

// TagFilter handles GET /tags/:title/ listing posts carrying the tag.
func (h *BlogHandler) TagFilter(c echo.Context) error {
	ctx := c.Request().Context()
	title := c.Param("title")

	tag, err := h.uc.TagByTitle(ctx, title)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}
	if tag == nil {
		return echo.NewHTTPError(http.StatusNotFound, "tag not found")
	}

	tagPosts, err := h.uc.TagPosts(ctx, tag.ID, tagPostsLimit)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	popularTags, err := h.uc.PopularTags(ctx, popularTagsLimit)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	popularPosts, err := h.uc.PopularPosts(ctx, popularPostsLimit)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.Render(http.StatusOK, "posts-list.html", echo.Map{
		"tag":                tag.Title,
		"popular_tags":       NewTagContexts(popularTags),
		"posts":              NewPostSummaries(tagPosts, h.mediaBase),
		"most_popular_posts": NewPostSummaries(popularPosts, h.mediaBase),
	})
}

// Contacts handles GET /contacts/ with an empty context.
func (h *BlogHandler) Contacts(c echo.Context) error {
	return c.Render(http.StatusOK, "contacts.html", echo.Map{})
}
