package server

import (
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"survivalskills/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRSSFeed(t *testing.T) {
	app, srv := newTestApp(t, &fakeSender{ok: true})

	now := time.Now()
	seedPost(t, srv, &models.Post{
		Title:       "50 Ways to Slash Your Grocery Bill",
		Slug:        "slash-grocery-bill",
		Excerpt:     "Cut your food spending without cutting corners.",
		Published:   true,
		PublishedAt: now,
	})
	seedPost(t, srv, &models.Post{
		Title:     "Unfinished Draft",
		Slug:      "unfinished-draft",
		Published: false,
	})

	resp, raw := doJSON(t, app, http.MethodGet, "/api/rss", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/rss+xml; charset=utf-8", resp.Header.Get("Content-Type"))

	feed := string(raw)
	assert.True(t, strings.HasPrefix(feed, "<?xml"))
	assert.Contains(t, feed, "<title>Budget Survival Skills</title>")
	assert.Contains(t, feed, "<title>50 Ways to Slash Your Grocery Bill</title>")
	assert.Contains(t, feed, "https://budgetsurvivalskills.com/posts/slash-grocery-bill")
	assert.NotContains(t, feed, "Unfinished Draft")
}

func TestRSSFeedLimit(t *testing.T) {
	app, srv := newTestApp(t, &fakeSender{ok: true})

	for i := 0; i < rssFeedLimit+5; i++ {
		at := time.Now().Add(-time.Duration(i) * time.Hour)
		seedPost(t, srv, &models.Post{
			Title:       fmt.Sprintf("Post %d", i),
			Slug:        fmt.Sprintf("post-%d", i),
			Published:   true,
			PublishedAt: at,
		})
	}

	resp, raw := doJSON(t, app, http.MethodGet, "/api/rss", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, rssFeedLimit, strings.Count(string(raw), "<item>"))
}
