package cache

import (
	"context"
	"time"
)

const (
	CategoriesKey   = "categories:all"
	PostsListPrefix = "posts:"
)

const (
	CategoriesTTL = 10 * time.Minute
	PostsListTTL  = 5 * time.Minute
)

// PostsListKey builds the cache key for a post listing. The filter string
// encodes the query parameters so each distinct listing caches separately.
func PostsListKey(filter string) string {
	return PostsListPrefix + filter
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

// InvalidatePostsList removes every cached post listing. Called after any
// post write since a new post can appear in many filtered listings.
func InvalidatePostsList(ctx context.Context) {
	if client == nil {
		return
	}
	iter := client.Scan(ctx, 0, PostsListPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		client.Del(ctx, iter.Val())
	}
}

func InvalidateCategories(ctx context.Context) {
	Invalidate(ctx, CategoriesKey)
}
