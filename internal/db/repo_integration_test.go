package db

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/go-pg/pg/v10"
)

var (
	testDB   *pg.DB
	testRepo *Repository
)

func TestMain(m *testing.M) {
	database, err := SetupTestDB()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to set up test database. Make sure PostgreSQL is running:")
		fmt.Fprintln(os.Stderr, "  docker-compose -f docker-compose.test.yml up -d")
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	testDB = database
	testRepo = New(testDB)

	code := m.Run()

	if err := testDB.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to close database connection: %v\n", err)
	}

	os.Exit(code)
}

func withTx(t *testing.T) (context.Context, *Repository) {
	t.Helper()
	ctx := context.Background()

	tx, err := testDB.Begin()
	if err != nil {
		t.Fatalf("failed to begin transaction: %v", err)
	}

	t.Cleanup(func() {
		if err := tx.Rollback(); err != nil {
			t.Errorf("failed to rollback transaction: %v", err)
		}
	})

	return ctx, New(tx)
}

func assertPostHydrated(t *testing.T, p *Post) {
	t.Helper()
	if p.ID == 0 {
		t.Error("post has zero id")
	}
	if p.Slug == "" {
		t.Error("post has empty slug")
	}
	if p.Author == nil || p.Author.Username == "" {
		t.Errorf("post %q has no author loaded", p.Slug)
	}
	if p.Tags == nil {
		t.Errorf("post %q has nil tags, want attached slice", p.Slug)
	}
	if len(p.Tags) != len(p.TagIDs) {
		t.Errorf("post %q has %d tags attached, want %d", p.Slug, len(p.Tags), len(p.TagIDs))
	}
}

func TestPopularPosts_Integration(t *testing.T) {
	ctx, repo := withTx(t)

	posts, err := repo.PopularPosts(ctx, 5)
	if err != nil {
		t.Fatalf("PopularPosts failed: %v", err)
	}

	wantSlugs := []string{"quantum-leap", "sourdough-notes", "hello-world", "city-guide", "vinyl-revival"}
	if len(posts) != len(wantSlugs) {
		t.Fatalf("expected %d posts, got %d", len(wantSlugs), len(posts))
	}
	for i, want := range wantSlugs {
		if posts[i].Slug != want {
			t.Errorf("posts[%d].Slug = %q, want %q", i, posts[i].Slug, want)
		}
	}

	wantLikes := []int{3, 2, 1, 0, 0}
	for i, want := range wantLikes {
		if posts[i].LikesCount != want {
			t.Errorf("posts[%d].LikesCount = %d, want %d", i, posts[i].LikesCount, want)
		}
	}

	for i := range posts {
		assertPostHydrated(t, &posts[i])
	}

	t.Run("LimitIsApplied", func(t *testing.T) {
		posts, err := repo.PopularPosts(ctx, 2)
		if err != nil {
			t.Fatalf("PopularPosts failed: %v", err)
		}
		if len(posts) != 2 {
			t.Fatalf("expected 2 posts, got %d", len(posts))
		}
		if posts[0].Slug != "quantum-leap" || posts[1].Slug != "sourdough-notes" {
			t.Errorf("unexpected order: %q, %q", posts[0].Slug, posts[1].Slug)
		}
	})

	t.Run("InvalidLimit", func(t *testing.T) {
		if _, err := repo.PopularPosts(ctx, 0); err == nil {
			t.Error("expected error for zero limit")
		}
	})
}

func TestFreshPosts_Integration(t *testing.T) {
	ctx, repo := withTx(t)

	posts, err := repo.FreshPosts(ctx, 5)
	if err != nil {
		t.Fatalf("FreshPosts failed: %v", err)
	}

	if len(posts) != 5 {
		t.Fatalf("expected 5 posts, got %d", len(posts))
	}
	for i := 1; i < len(posts); i++ {
		if posts[i].PublishedAt.After(posts[i-1].PublishedAt) {
			t.Errorf("posts not sorted by publishedAt DESC at index %d", i)
		}
	}
	if posts[0].Slug != "hello-world" {
		t.Errorf("newest post = %q, want %q", posts[0].Slug, "hello-world")
	}
	for i := range posts {
		assertPostHydrated(t, &posts[i])
	}
}

func TestWithCommentsCount_Integration(t *testing.T) {
	ctx, repo := withTx(t)

	posts, err := repo.FreshPosts(ctx, 7)
	if err != nil {
		t.Fatalf("FreshPosts failed: %v", err)
	}

	posts, err = repo.WithCommentsCount(ctx, posts)
	if err != nil {
		t.Fatalf("WithCommentsCount failed: %v", err)
	}

	wantCounts := map[string]int{
		"hello-world":  2,
		"quantum-leap": 1,
	}
	for i := range posts {
		want := wantCounts[posts[i].Slug]
		if posts[i].CommentsCount != want {
			t.Errorf("post %q CommentsCount = %d, want %d", posts[i].Slug, posts[i].CommentsCount, want)
		}
	}

	t.Run("EmptyPage", func(t *testing.T) {
		out, err := repo.WithCommentsCount(ctx, []Post{})
		if err != nil {
			t.Fatalf("WithCommentsCount failed on empty page: %v", err)
		}
		if len(out) != 0 {
			t.Errorf("expected empty result, got %d posts", len(out))
		}
	})
}

func TestPopularTags_Integration(t *testing.T) {
	ctx, repo := withTx(t)

	tags, err := repo.PopularTags(ctx, 5)
	if err != nil {
		t.Fatalf("PopularTags failed: %v", err)
	}

	want := []struct {
		title string
		count int
	}{
		{"tech", 7},
		{"food", 3},
		{"travel", 3},
		{"books", 1},
		{"music", 0},
	}
	if len(tags) != len(want) {
		t.Fatalf("expected %d tags, got %d", len(want), len(tags))
	}
	for i, w := range want {
		if tags[i].Title != w.title {
			t.Errorf("tags[%d].Title = %q, want %q", i, tags[i].Title, w.title)
		}
		if tags[i].PostsCount != w.count {
			t.Errorf("tags[%d].PostsCount = %d, want %d", i, tags[i].PostsCount, w.count)
		}
	}

	t.Run("LimitIsApplied", func(t *testing.T) {
		tags, err := repo.PopularTags(ctx, 2)
		if err != nil {
			t.Fatalf("PopularTags failed: %v", err)
		}
		if len(tags) != 2 {
			t.Fatalf("expected 2 tags, got %d", len(tags))
		}
	})
}

func TestTagByTitle_Integration(t *testing.T) {
	ctx, repo := withTx(t)

	t.Run("Found", func(t *testing.T) {
		tag, err := repo.TagByTitle(ctx, "travel")
		if err != nil {
			t.Fatalf("TagByTitle failed: %v", err)
		}
		if tag == nil {
			t.Fatal("expected tag, got nil")
		}
		if tag.Title != "travel" {
			t.Errorf("tag.Title = %q, want %q", tag.Title, "travel")
		}
		if tag.PostsCount != 3 {
			t.Errorf("tag.PostsCount = %d, want 3", tag.PostsCount)
		}
	})

	t.Run("NotFound", func(t *testing.T) {
		tag, err := repo.TagByTitle(ctx, "no-such-tag")
		if err != nil {
			t.Fatalf("TagByTitle failed: %v", err)
		}
		if tag != nil {
			t.Errorf("expected nil for missing tag, got %+v", tag)
		}
	})
}

func TestTagPosts_Integration(t *testing.T) {
	ctx, repo := withTx(t)

	tag, err := repo.TagByTitle(ctx, "travel")
	if err != nil || tag == nil {
		t.Fatalf("TagByTitle failed: %v", err)
	}

	posts, err := repo.TagPosts(ctx, tag.ID, 20)
	if err != nil {
		t.Fatalf("TagPosts failed: %v", err)
	}

	wantSlugs := []string{"hello-world", "city-guide", "night-train"}
	if len(posts) != len(wantSlugs) {
		t.Fatalf("expected %d posts, got %d", len(wantSlugs), len(posts))
	}
	for i, want := range wantSlugs {
		if posts[i].Slug != want {
			t.Errorf("posts[%d].Slug = %q, want %q", i, posts[i].Slug, want)
		}
	}

	for i := range posts {
		assertPostHydrated(t, &posts[i])
		hasTag := false
		for _, id := range posts[i].TagIDs {
			if int(id) == tag.ID {
				hasTag = true
			}
		}
		if !hasTag {
			t.Errorf("post %q does not carry the requested tag", posts[i].Slug)
		}
		if posts[i].CommentsCount < 0 {
			t.Errorf("post %q has negative comments count", posts[i].Slug)
		}
	}

	if posts[0].CommentsCount != 2 {
		t.Errorf("post %q CommentsCount = %d, want 2", posts[0].Slug, posts[0].CommentsCount)
	}

	t.Run("LimitIsApplied", func(t *testing.T) {
		posts, err := repo.TagPosts(ctx, tag.ID, 2)
		if err != nil {
			t.Fatalf("TagPosts failed: %v", err)
		}
		if len(posts) != 2 {
			t.Fatalf("expected 2 posts, got %d", len(posts))
		}
	})
}

func TestPostBySlug_Integration(t *testing.T) {
	ctx, repo := withTx(t)

	t.Run("Found", func(t *testing.T) {
		post, err := repo.PostBySlug(ctx, "hello-world")
		if err != nil {
			t.Fatalf("PostBySlug failed: %v", err)
		}
		if post == nil {
			t.Fatal("expected post, got nil")
		}

		assertPostHydrated(t, post)

		if post.CommentsCount != 2 {
			t.Errorf("CommentsCount = %d, want 2", post.CommentsCount)
		}
		if post.LikesCount != 1 {
			t.Errorf("LikesCount = %d, want 1", post.LikesCount)
		}
		if post.Image == nil {
			t.Error("expected image path, got nil")
		}

		if len(post.Comments) != 2 {
			t.Fatalf("expected 2 comments, got %d", len(post.Comments))
		}
		if post.Comments[0].Author == nil || post.Comments[0].Author.Username != "bob" {
			t.Error("first comment author not loaded")
		}
		if !post.Comments[1].PublishedAt.After(post.Comments[0].PublishedAt) {
			t.Error("comments not in insertion order")
		}

		wantTags := []string{"tech", "travel"}
		for i, want := range wantTags {
			if post.Tags[i].Title != want {
				t.Errorf("tags[%d].Title = %q, want %q", i, post.Tags[i].Title, want)
			}
		}
	})

	t.Run("NotFound", func(t *testing.T) {
		post, err := repo.PostBySlug(ctx, "no-such-post")
		if err != nil {
			t.Fatalf("PostBySlug failed: %v", err)
		}
		if post != nil {
			t.Errorf("expected nil for missing slug, got %+v", post)
		}
	})

	t.Run("NoLikesNoComments", func(t *testing.T) {
		post, err := repo.PostBySlug(ctx, "night-train")
		if err != nil {
			t.Fatalf("PostBySlug failed: %v", err)
		}
		if post == nil {
			t.Fatal("expected post, got nil")
		}
		if post.LikesCount != 0 {
			t.Errorf("LikesCount = %d, want 0", post.LikesCount)
		}
		if len(post.Comments) != 0 {
			t.Errorf("expected no comments, got %d", len(post.Comments))
		}
		if post.Image != nil {
			t.Errorf("expected nil image, got %q", *post.Image)
		}
	})
}
