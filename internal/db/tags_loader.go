package db

import (
	"context"
	"fmt"

	"github.com/go-pg/pg/v10"
)

// attachTagsBatch fills the Tags of every post on a page with a single
// query over the union of their tag ids, preserving the per-post tagIds
// order. Loaded tags come with their tagged-post count annotated.
func (r *Repository) attachTagsBatch(ctx context.Context, posts []Post) ([]Post, error) {
	if len(posts) == 0 {
		return posts, nil
	}

	tagSet := make(map[int32]struct{})
	for i := range posts {
		for _, id := range posts[i].TagIDs {
			tagSet[id] = struct{}{}
		}
	}

	if len(tagSet) == 0 {
		for i := range posts {
			posts[i].Tags = []Tag{}
		}
		return posts, nil
	}

	allTagIDs := make([]int32, 0, len(tagSet))
	for id := range tagSet {
		allTagIDs = append(allTagIDs, id)
	}

	tags, err := r.getTagsByIDs(ctx, allTagIDs)
	if err != nil {
		return nil, fmt.Errorf("get tags by ids: %w", err)
	}

	tagsByID := make(map[int32]Tag, len(tags))
	for i := range tags {
		t := tags[i]
		tagsByID[int32(t.ID)] = t
	}

	for i := range posts {
		ids := posts[i].TagIDs
		if len(ids) == 0 {
			posts[i].Tags = []Tag{}
			continue
		}

		out := make([]Tag, 0, len(ids))
		for _, id := range ids {
			if t, ok := tagsByID[id]; ok {
				out = append(out, t)
			}
		}
		posts[i].Tags = out
	}

	return posts, nil
}

func (r *Repository) getTagsByIDs(ctx context.Context, tagIDs []int32) ([]Tag, error) {
	if len(tagIDs) == 0 {
		return []Tag{}, nil
	}

	tags := []Tag{}
	err := r.db.ModelContext(ctx, &tags).
		ColumnExpr(`"t".*`).
		ColumnExpr(postsCountExpr).
		Where(`"t"."tagId" IN (?)`, pg.In(tagIDs)).
		Select()
	if err != nil {
		return nil, fmt.Errorf("get tags: %w", err)
	}

	return tags, nil
}
