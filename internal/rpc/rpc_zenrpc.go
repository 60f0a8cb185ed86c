// Code generated by zenrpc v2.3.1; DO NOT EDIT.

package rpc

import (
	"context"
	"encoding/json"

	"github.com/vmkteam/zenrpc/v2"
	"github.com/vmkteam/zenrpc/v2/smd"
)

var RPC = struct {
	BlogService struct{ Fresh, Popular, BySlug, Tags string }
}{
	BlogService: struct{ Fresh, Popular, BySlug, Tags string }{
		Fresh:   "fresh",
		Popular: "popular",
		BySlug:  "byslug",
		Tags:    "tags",
	},
}

func (BlogService) SMD() smd.ServiceInfo {
	return smd.ServiceInfo{
		Methods: map[string]smd.Service{
			"Fresh": {
				Description: `Fresh retrieves the most recently published posts with tags and comment
counts.`,
				Parameters: []smd.JSONSchema{
					{
						Name:     "req",
						Type:     smd.Object,
						TypeName: "PostsRequest",
						Properties: smd.PropertyList{
							{
								Name:     "limit",
								Optional: true,
								Type:     smd.Integer,
							},
						},
					},
				},
				Returns: smd.JSONSchema{
					Description: `list of post summaries`,
					Type:        smd.Object,
					TypeName:    "PostSummaries",
					Properties: smd.PropertyList{
						{
							Name: "postId",
							Type: smd.Integer,
						},
						{
							Name: "title",
							Type: smd.String,
						},
						{
							Name: "author",
							Type: smd.String,
						},
						{
							Name: "slug",
							Type: smd.String,
						},
						{
							Name: "publishedAt",
							Type: smd.String,
						},
						{
							Name: "commentsAmount",
							Type: smd.Integer,
						},
						{
							Name: "tags",
							Type: smd.Array,
							Items: map[string]string{
								"$ref": "#/definitions/Tag",
							},
						},
					},
					Definitions: map[string]smd.Definition{
						"Tag": {
							Type: "object",
							Properties: smd.PropertyList{
								{
									Name: "tagId",
									Type: smd.Integer,
								},
								{
									Name: "title",
									Type: smd.String,
								},
								{
									Name: "postsWithTag",
									Type: smd.Integer,
								},
							},
						},
					},
				},
				Errors: map[int]string{
					500: "internal server error",
				},
			},
			"Popular": {
				Description: `Popular retrieves posts ranked by like count with tags and comment
counts.`,
				Parameters: []smd.JSONSchema{
					{
						Name:     "req",
						Type:     smd.Object,
						TypeName: "PostsRequest",
						Properties: smd.PropertyList{
							{
								Name:     "limit",
								Optional: true,
								Type:     smd.Integer,
							},
						},
					},
				},
				Returns: smd.JSONSchema{
					Description: `list of post summaries`,
					Type:        smd.Object,
					TypeName:    "PostSummaries",
					Properties: smd.PropertyList{
						{
							Name: "postId",
							Type: smd.Integer,
						},
						{
							Name: "title",
							Type: smd.String,
						},
						{
							Name: "author",
							Type: smd.String,
						},
						{
							Name: "slug",
							Type: smd.String,
						},
						{
							Name: "publishedAt",
							Type: smd.String,
						},
						{
							Name: "commentsAmount",
							Type: smd.Integer,
						},
						{
							Name: "tags",
							Type: smd.Array,
							Items: map[string]string{
								"$ref": "#/definitions/Tag",
							},
						},
					},
					Definitions: map[string]smd.Definition{
						"Tag": {
							Type: "object",
							Properties: smd.PropertyList{
								{
									Name: "tagId",
									Type: smd.Integer,
								},
								{
									Name: "title",
									Type: smd.String,
								},
								{
									Name: "postsWithTag",
									Type: smd.Integer,
								},
							},
						},
					},
				},
				Errors: map[int]string{
					500: "internal server error",
				},
			},
			"BySlug": {
				Description: `BySlug retrieves a single post by its slug with full text, comments,
tags and the like count.`,
				Parameters: []smd.JSONSchema{
					{
						Name:     "req",
						Type:     smd.Object,
						TypeName: "PostBySlugRequest",
						Properties: smd.PropertyList{
							{
								Name: "slug",
								Type: smd.String,
							},
						},
					},
				},
				Returns: smd.JSONSchema{
					Description: `post with full content`,
					Optional:    true,
					Type:        smd.Object,
					TypeName:    "Post",
					Properties: smd.PropertyList{
						{
							Name: "postId",
							Type: smd.Integer,
						},
						{
							Name: "title",
							Type: smd.String,
						},
						{
							Name: "text",
							Type: smd.String,
						},
						{
							Name: "author",
							Type: smd.String,
						},
						{
							Name: "slug",
							Type: smd.String,
						},
						{
							Name: "publishedAt",
							Type: smd.String,
						},
						{
							Name: "likesAmount",
							Type: smd.Integer,
						},
						{
							Name: "comments",
							Type: smd.Array,
							Items: map[string]string{
								"$ref": "#/definitions/Comment",
							},
						},
						{
							Name: "tags",
							Type: smd.Array,
							Items: map[string]string{
								"$ref": "#/definitions/Tag",
							},
						},
					},
					Definitions: map[string]smd.Definition{
						"Comment": {
							Type: "object",
							Properties: smd.PropertyList{
								{
									Name: "text",
									Type: smd.String,
								},
								{
									Name: "publishedAt",
									Type: smd.String,
								},
								{
									Name: "author",
									Type: smd.String,
								},
							},
						},
						"Tag": {
							Type: "object",
							Properties: smd.PropertyList{
								{
									Name: "tagId",
									Type: smd.Integer,
								},
								{
									Name: "title",
									Type: smd.String,
								},
								{
									Name: "postsWithTag",
									Type: smd.Integer,
								},
							},
						},
					},
				},
				Errors: map[int]string{
					400: "slug must not be empty",
					404: "post not found",
					500: "internal server error",
				},
			},
			"Tags": {
				Description: `Tags retrieves tags ranked by the number of posts carrying them.`,
				Parameters: []smd.JSONSchema{
					{
						Name:     "req",
						Type:     smd.Object,
						TypeName: "TagsRequest",
						Properties: smd.PropertyList{
							{
								Name:     "limit",
								Optional: true,
								Type:     smd.Integer,
							},
						},
					},
				},
				Returns: smd.JSONSchema{
					Description: `list of tags with post counts`,
					Type:        smd.Object,
					TypeName:    "Tags",
					Properties: smd.PropertyList{
						{
							Name: "tagId",
							Type: smd.Integer,
						},
						{
							Name: "title",
							Type: smd.String,
						},
						{
							Name: "postsWithTag",
							Type: smd.Integer,
						},
					},
				},
				Errors: map[int]string{
					500: "internal server error",
				},
			},
		},
	}
}

// Invoke is as generated code from zenrpc cmd
func (s BlogService) Invoke(ctx context.Context, method string, params json.RawMessage) zenrpc.Response {
	resp := zenrpc.Response{}
	var err error

	switch method {
	case RPC.BlogService.Fresh:
		var args = struct {
			Req PostsRequest `json:"req"`
		}{}

		if zenrpc.IsArray(params) {
			if params, err = zenrpc.ConvertToObject([]string{"req"}, params); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		if len(params) > 0 {
			if err := json.Unmarshal(params, &args); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		resp.Set(s.Fresh(ctx, args.Req))

	case RPC.BlogService.Popular:
		var args = struct {
			Req PostsRequest `json:"req"`
		}{}

		if zenrpc.IsArray(params) {
			if params, err = zenrpc.ConvertToObject([]string{"req"}, params); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		if len(params) > 0 {
			if err := json.Unmarshal(params, &args); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		resp.Set(s.Popular(ctx, args.Req))

	case RPC.BlogService.BySlug:
		var args = struct {
			Req PostBySlugRequest `json:"req"`
		}{}

		if zenrpc.IsArray(params) {
			if params, err = zenrpc.ConvertToObject([]string{"req"}, params); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		if len(params) > 0 {
			if err := json.Unmarshal(params, &args); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		resp.Set(s.BySlug(ctx, args.Req))

	case RPC.BlogService.Tags:
		var args = struct {
			Req TagsRequest `json:"req"`
		}{}

		if zenrpc.IsArray(params) {
			if params, err = zenrpc.ConvertToObject([]string{"req"}, params); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		if len(params) > 0 {
			if err := json.Unmarshal(params, &args); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		resp.Set(s.Tags(ctx, args.Req))

	default:
		resp = zenrpc.NewResponseError(nil, zenrpc.MethodNotFound, "", nil)
	}

	return resp
}
